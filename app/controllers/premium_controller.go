package controllers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/careerinn/careerinn/app/models"
	"github.com/careerinn/careerinn/app/repository"
	"github.com/careerinn/careerinn/internal/pkg/conversation"
	"github.com/careerinn/careerinn/internal/pkg/entitlements"
	"github.com/careerinn/careerinn/internal/pkg/groq"
	"github.com/careerinn/careerinn/internal/pkg/session"
	"github.com/careerinn/careerinn/internal/pkg/usercontext"
)

// mockInterviewPrompt steers the collaborator for the premium interview bot.
const mockInterviewPrompt = "You are an AI mock interviewer. Ask scenario questions, give feedback."

// requirePremium checks the subscription and renders the locked page when the
// account is not subscribed. Returns true when the caller may proceed.
// Store failures deny, they never grant.
func requirePremium(c *fiber.Ctx, title string) (bool, error) {
	userCtx := usercontext.GetUserContext(c)

	decision, err := entGateway.CheckPremium(userCtx.UserID)
	if err != nil || decision != entitlements.DecisionAllow {
		return false, render(c, "premium/locked", title, fiber.Map{
			"Feature": title,
		})
	}
	return true, nil
}

// HandleMentorship lists the mentor directory for subscribed users.
func HandleMentorship(c *fiber.Ctx) error {
	ok, err := requirePremium(c, "Mentorship")
	if !ok {
		return err
	}

	mentors, err := repository.GetGlobalRepositories().Mentor.GetAll()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not load mentors")
	}

	return render(c, "premium/mentorship", "Mentorship", fiber.Map{
		"Mentors": mentors,
	})
}

// HandleMockInterviews lists practice resources and lets subscribed users
// contribute their own.
func HandleMockInterviews(c *fiber.Ctx) error {
	ok, err := requirePremium(c, "Mock Interviews")
	if !ok {
		return err
	}

	userCtx := usercontext.GetUserContext(c)
	interviews := repository.GetGlobalRepositories().MockInterview

	if c.Method() == fiber.MethodPost {
		title := strings.TrimSpace(c.FormValue("title"))
		if title != "" {
			domain := strings.TrimSpace(c.FormValue("domain"))
			if !models.IsKnownDomain(domain) {
				domain = ""
			}
			uploaderID := userCtx.UserID
			item := &models.MockInterview{
				Title:      title,
				Notes:      strings.TrimSpace(c.FormValue("notes")),
				Link:       strings.TrimSpace(c.FormValue("link")),
				UploaderID: &uploaderID,
				Domain:     domain,
			}
			if err := interviews.Create(item); err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "could not save mock interview")
			}
		}
		return c.Redirect("/mock-interviews")
	}

	items, err := interviews.GetAll()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not load mock interviews")
	}

	return render(c, "premium/mock_interviews", "Mock Interviews", fiber.Map{
		"Items":  items,
		"UserID": userCtx.UserID,
	})
}

// HandleMockInterviewAI runs the premium interview bot. Unlike the free
// career chat there is no usage latch; access rides on the subscription
// alone, and the transcript lives in its own per-session buffer.
func HandleMockInterviewAI(c *fiber.Ctx) error {
	ok, err := requirePremium(c, "AI Mock Interview")
	if !ok {
		return err
	}

	bufferID := "mock:" + session.GetSessionID(c)

	if c.Method() == fiber.MethodPost {
		message := strings.TrimSpace(c.FormValue("message"))
		if message != "" {
			if err := chatBuffer.Append(bufferID, conversation.Turn{
				Speaker: conversation.SpeakerUser,
				Text:    message,
			}); err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "could not record message")
			}

			transcript, err := chatBuffer.Snapshot(bufferID)
			if err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "could not read transcript")
			}

			reply, aiErr := aiClient.Complete(c.UserContext(), mockInterviewPrompt, transcript)
			if aiErr != nil {
				if errors.Is(aiErr, groq.ErrNotConfigured) {
					reply = "AI not configured. Please set GROQ_API_KEY."
				} else {
					reply = fmt.Sprintf("AI error: %v", aiErr)
				}
			}

			if err := chatBuffer.Append(bufferID, conversation.Turn{
				Speaker: conversation.SpeakerAssistant,
				Text:    reply,
			}); err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "could not record reply")
			}
		}
	}

	turns, err := chatBuffer.Snapshot(bufferID)
	if err != nil {
		turns = nil
	}

	return render(c, "premium/mock_interview_ai", "AI Mock Interview", fiber.Map{
		"Turns": turns,
	})
}

// HandleGlobalMatch shows abroad study and internship guidance.
func HandleGlobalMatch(c *fiber.Ctx) error {
	ok, err := requirePremium(c, "Global Match")
	if !ok {
		return err
	}

	return render(c, "premium/global_match", "Global Match", fiber.Map{})
}
