package controllers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/careerinn/careerinn/app/repository"
	"github.com/careerinn/careerinn/internal/pkg/entitlements"
	"github.com/careerinn/careerinn/internal/pkg/usercontext"
)

var dashboardTabs = map[string]bool{
	"home": true, "mentors": true, "skills": true,
	"rating": true, "resume": true, "faqs": true, "about": true,
}

// starterSkills prefills the skill list for subscribed users who have not
// entered anything yet.
var starterSkills = []string{
	"Communication",
	"Domain fundamentals",
	"Internship experience",
	"Project & Git",
	"Teamwork",
	"Problem solving",
}

func isSubscribed(userID uint) bool {
	decision, err := entGateway.CheckPremium(userID)
	return err == nil && decision == entitlements.DecisionAllow
}

// HandleDashboard renders the student workspace and processes its tab saves.
// Skills editing is subscription-gated; resume and notes are not.
func HandleDashboard(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)
	profiles := repository.GetGlobalRepositories().Profile

	profile, err := profiles.GetOrCreate(userCtx.UserID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not load profile")
	}

	tab := c.Query("tab")
	if c.Method() == fiber.MethodPost {
		if formTab := c.FormValue("tab"); formTab != "" {
			tab = formTab
		}
	}

	subscribed := isSubscribed(userCtx.UserID)

	if c.Method() == fiber.MethodPost {
		switch tab {
		case "skills", "skills_add":
			if !subscribed {
				return c.Redirect("/dashboard?tab=skills")
			}
			if tab == "skills" {
				profile.SkillsText = strings.TrimSpace(c.FormValue("skills_text"))
				profile.TargetRoles = strings.TrimSpace(c.FormValue("target_roles"))
				rating, err := strconv.Atoi(c.FormValue("self_rating"))
				if err != nil {
					rating = 0
				}
				profile.SelfRating = rating
			} else {
				profile.AddSkill(c.FormValue("new_skill"))
			}
			if err := profiles.Update(profile); err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "could not save skills")
			}
			return c.Redirect("/dashboard?tab=skills")
		case "resume":
			profile.ResumeLink = strings.TrimSpace(c.FormValue("resume_link"))
			profile.Notes = strings.TrimSpace(c.FormValue("notes"))
			if err := profiles.Update(profile); err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "could not save resume details")
			}
			return c.Redirect("/dashboard?tab=resume")
		}
	}

	if removeSkill := c.Query("remove_skill"); removeSkill != "" {
		if subscribed {
			profile.RemoveSkill(removeSkill)
			if err := profiles.Update(profile); err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "could not save skills")
			}
		}
		return c.Redirect("/dashboard?tab=skills")
	}

	if subscribed && profile.SkillsText == "" {
		profile.SkillsText = strings.Join(starterSkills, ", ")
		if err := profiles.Update(profile); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not save skills")
		}
	}

	if !dashboardTabs[tab] {
		tab = "home"
	}

	return render(c, "dashboard", "Dashboard", fiber.Map{
		"Tab":        tab,
		"Profile":    profile,
		"Skills":     profile.Skills(),
		"Subscribed": subscribed,
	})
}
