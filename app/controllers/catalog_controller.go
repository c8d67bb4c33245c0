package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/careerinn/careerinn/app/models"
	"github.com/careerinn/careerinn/app/repository"
)

// budgetRange maps the budget filter codes to fee bounds in rupees. A zero
// bound means unbounded on that side.
func budgetRange(code string) (int, int) {
	switch code {
	case "lt1":
		return 0, 100000
	case "b1_2":
		return 100000, 200000
	case "b2_3":
		return 200000, 300000
	case "gt3":
		return 300000, 0
	default:
		return 0, 0
	}
}

// HandleCourses lists the distinct courses across the college catalog.
func HandleCourses(c *fiber.Ctx) error {
	courses, err := repository.GetGlobalRepositories().College.Courses()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not load courses")
	}

	return render(c, "catalog/courses", "Courses", fiber.Map{
		"Courses": courses,
	})
}

// HandleColleges lists colleges with domain, budget and rating filters.
func HandleColleges(c *fiber.Ctx) error {
	domain := c.Query("domain")
	if !models.IsKnownDomain(domain) {
		domain = ""
	}
	budget := c.Query("budget")
	minFees, maxFees := budgetRange(budget)

	rating := c.Query("rating")
	minRating, err := strconv.ParseFloat(rating, 64)
	if err != nil {
		minRating = 0
	}

	colleges, err := repository.GetGlobalRepositories().College.Filter(domain, minFees, maxFees, minRating)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not load colleges")
	}

	return render(c, "catalog/colleges", "Colleges", fiber.Map{
		"Colleges": colleges,
		"Domain":   domain,
		"Budget":   budget,
		"Rating":   rating,
	})
}

// HandleJobs lists placement snapshots, optionally filtered by domain.
func HandleJobs(c *fiber.Ctx) error {
	domain := c.Query("domain")

	jobs := repository.GetGlobalRepositories().Job
	var (
		data []models.Job
		err  error
	)
	if models.IsKnownDomain(domain) {
		data, err = jobs.GetByDomain(domain)
	} else {
		data, err = jobs.GetAll()
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not load jobs")
	}

	return render(c, "catalog/jobs", "Jobs & Placements", fiber.Map{
		"Jobs":   data,
		"Domain": domain,
	})
}

// HandleJobDetail shows one job listing; unknown ids go back to the list.
func HandleJobDetail(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Redirect("/jobs")
	}

	job, err := repository.GetGlobalRepositories().Job.GetByID(uint(id))
	if err != nil {
		return c.Redirect("/jobs")
	}

	return render(c, "catalog/job_detail", "Job detail", fiber.Map{
		"Job": job,
	})
}

// HandlePrevPapers lists the curated previous-year paper links. View-only:
// there is no upload path.
func HandlePrevPapers(c *fiber.Ctx) error {
	domain := c.Query("domain")

	papers := repository.GetGlobalRepositories().PrevPaper
	var (
		data []models.PrevPaper
		err  error
	)
	if models.IsKnownDomain(domain) {
		data, err = papers.GetByDomain(domain)
	} else {
		data, err = papers.GetAll()
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not load papers")
	}

	return render(c, "catalog/prev_papers", "Previous Year Papers", fiber.Map{
		"Papers": data,
		"Domain": domain,
	})
}
