package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/careerinn/careerinn/app/models"
	"github.com/careerinn/careerinn/app/repository"
)

// AdminController handles admin-related HTTP requests using repository pattern
type AdminController struct {
	repos *repository.Repositories
}

// NewAdminController creates a new admin controller with repository dependencies
func NewAdminController(repos *repository.Repositories) *AdminController {
	return &AdminController{
		repos: repos,
	}
}

func (ac *AdminController) handleError(c *fiber.Ctx, message string, err error) error {
	fm := fiber.Map{
		"type":    "error",
		"message": message,
	}
	return flash.WithError(c, fm).Redirect("/admin")
}

// HandleDashboard renders the admin dashboard with catalog and user counts
func (ac *AdminController) HandleDashboard(c *fiber.Ctx) error {
	totalUsers, err := ac.repos.User.Count()
	if err != nil {
		return ac.handleError(c, "Failed to get user count", err)
	}
	totalColleges, err := ac.repos.College.Count()
	if err != nil {
		return ac.handleError(c, "Failed to get college count", err)
	}
	totalMentors, err := ac.repos.Mentor.Count()
	if err != nil {
		return ac.handleError(c, "Failed to get mentor count", err)
	}
	totalJobs, err := ac.repos.Job.Count()
	if err != nil {
		return ac.handleError(c, "Failed to get job count", err)
	}

	return render(c, "admin/dashboard", "Admin", fiber.Map{
		"TotalUsers":    totalUsers,
		"TotalColleges": totalColleges,
		"TotalMentors":  totalMentors,
		"TotalJobs":     totalJobs,
	})
}

// HandleUsers lists accounts, with optional search by name or email
func (ac *AdminController) HandleUsers(c *fiber.Ctx) error {
	query := c.Query("q")

	var (
		users []models.User
		err   error
	)
	if query != "" {
		users, err = ac.repos.User.Search(query)
	} else {
		users, err = ac.repos.User.List(0, 100)
	}
	if err != nil {
		return ac.handleError(c, "Failed to load users", err)
	}

	return render(c, "admin/users", "Admin | Users", fiber.Map{
		"Users": users,
		"Query": query,
	})
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	return uint(id), err
}

// ---- Colleges ----

func (ac *AdminController) HandleColleges(c *fiber.Ctx) error {
	colleges, err := ac.repos.College.GetAll()
	if err != nil {
		return ac.handleError(c, "Failed to load colleges", err)
	}
	return render(c, "admin/colleges", "Admin | Colleges", fiber.Map{
		"Colleges": colleges,
	})
}

func (ac *AdminController) collegeFromForm(c *fiber.Ctx, college *models.College) {
	college.Name = c.FormValue("name")
	college.Location = c.FormValue("location")
	college.Course = c.FormValue("course")
	if fees, err := strconv.Atoi(c.FormValue("fees")); err == nil {
		college.Fees = fees
	}
	if rating, err := strconv.ParseFloat(c.FormValue("rating"), 64); err == nil {
		college.Rating = rating
	}
	if domain := c.FormValue("domain"); models.IsKnownDomain(domain) {
		college.Domain = domain
	}
}

func (ac *AdminController) HandleCollegeStore(c *fiber.Ctx) error {
	var college models.College
	ac.collegeFromForm(c, &college)
	if err := ac.repos.College.Create(&college); err != nil {
		return ac.handleError(c, "Failed to create college", err)
	}
	return c.Redirect("/admin/colleges")
}

func (ac *AdminController) HandleCollegeUpdate(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Redirect("/admin/colleges")
	}
	college, err := ac.repos.College.GetByID(id)
	if err != nil {
		return ac.handleError(c, "College not found", err)
	}
	ac.collegeFromForm(c, college)
	if err := ac.repos.College.Update(college); err != nil {
		return ac.handleError(c, "Failed to update college", err)
	}
	return c.Redirect("/admin/colleges")
}

func (ac *AdminController) HandleCollegeDelete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Redirect("/admin/colleges")
	}
	if err := ac.repos.College.Delete(id); err != nil {
		return ac.handleError(c, "Failed to delete college", err)
	}
	return c.Redirect("/admin/colleges")
}

// ---- Mentors ----

func (ac *AdminController) HandleMentors(c *fiber.Ctx) error {
	mentors, err := ac.repos.Mentor.GetAll()
	if err != nil {
		return ac.handleError(c, "Failed to load mentors", err)
	}
	return render(c, "admin/mentors", "Admin | Mentors", fiber.Map{
		"Mentors": mentors,
	})
}

func (ac *AdminController) mentorFromForm(c *fiber.Ctx, mentor *models.Mentor) {
	mentor.Name = c.FormValue("name")
	mentor.Experience = c.FormValue("experience")
	mentor.Speciality = c.FormValue("speciality")
	if domain := c.FormValue("domain"); models.IsKnownDomain(domain) {
		mentor.Domain = domain
	}
}

func (ac *AdminController) HandleMentorStore(c *fiber.Ctx) error {
	var mentor models.Mentor
	ac.mentorFromForm(c, &mentor)
	if err := ac.repos.Mentor.Create(&mentor); err != nil {
		return ac.handleError(c, "Failed to create mentor", err)
	}
	return c.Redirect("/admin/mentors")
}

func (ac *AdminController) HandleMentorUpdate(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Redirect("/admin/mentors")
	}
	mentor, err := ac.repos.Mentor.GetByID(id)
	if err != nil {
		return ac.handleError(c, "Mentor not found", err)
	}
	ac.mentorFromForm(c, mentor)
	if err := ac.repos.Mentor.Update(mentor); err != nil {
		return ac.handleError(c, "Failed to update mentor", err)
	}
	return c.Redirect("/admin/mentors")
}

func (ac *AdminController) HandleMentorDelete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Redirect("/admin/mentors")
	}
	if err := ac.repos.Mentor.Delete(id); err != nil {
		return ac.handleError(c, "Failed to delete mentor", err)
	}
	return c.Redirect("/admin/mentors")
}

// ---- Jobs ----

func (ac *AdminController) HandleJobs(c *fiber.Ctx) error {
	jobs, err := ac.repos.Job.GetAll()
	if err != nil {
		return ac.handleError(c, "Failed to load jobs", err)
	}
	return render(c, "admin/jobs", "Admin | Jobs", fiber.Map{
		"Jobs": jobs,
	})
}

func (ac *AdminController) jobFromForm(c *fiber.Ctx, job *models.Job) {
	job.Title = c.FormValue("title")
	job.Company = c.FormValue("company")
	job.Location = c.FormValue("location")
	job.Salary = c.FormValue("salary")
	if domain := c.FormValue("domain"); models.IsKnownDomain(domain) {
		job.Domain = domain
	}
}

func (ac *AdminController) HandleJobStore(c *fiber.Ctx) error {
	var job models.Job
	ac.jobFromForm(c, &job)
	if err := ac.repos.Job.Create(&job); err != nil {
		return ac.handleError(c, "Failed to create job", err)
	}
	return c.Redirect("/admin/jobs")
}

func (ac *AdminController) HandleJobUpdate(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Redirect("/admin/jobs")
	}
	job, err := ac.repos.Job.GetByID(id)
	if err != nil {
		return ac.handleError(c, "Job not found", err)
	}
	ac.jobFromForm(c, job)
	if err := ac.repos.Job.Update(job); err != nil {
		return ac.handleError(c, "Failed to update job", err)
	}
	return c.Redirect("/admin/jobs")
}

func (ac *AdminController) HandleJobDelete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Redirect("/admin/jobs")
	}
	if err := ac.repos.Job.Delete(id); err != nil {
		return ac.handleError(c, "Failed to delete job", err)
	}
	return c.Redirect("/admin/jobs")
}

// ---- Chat transcript maintenance ----

// HandleChatSessions lists the live chat transcript keys in Redis with their
// turn counts. Clearing a transcript is display-only; the usage latch lives
// in the database and is untouched.
func (ac *AdminController) HandleChatSessions(c *fiber.Ctx) error {
	keys, err := ac.repos.Cache.FindKeysByPatterns([]string{"chat:*"})
	if err != nil {
		return ac.handleError(c, "Failed to scan chat sessions", err)
	}

	type chatSession struct {
		Key   string
		Turns int64
	}
	sessions := make([]chatSession, 0, len(keys))
	for _, key := range keys {
		length, err := ac.repos.Cache.GetListLength(key)
		if err != nil {
			continue
		}
		sessions = append(sessions, chatSession{Key: key, Turns: length})
	}

	return render(c, "admin/chat_sessions", "Admin | Chat Sessions", fiber.Map{
		"Sessions": sessions,
	})
}

// HandleChatSessionsClear drops all chat transcripts from Redis.
func (ac *AdminController) HandleChatSessionsClear(c *fiber.Ctx) error {
	keys, err := ac.repos.Cache.FindKeysByPatterns([]string{"chat:*"})
	if err != nil {
		return ac.handleError(c, "Failed to scan chat sessions", err)
	}
	if _, err := ac.repos.Cache.DeleteKeys(keys); err != nil {
		return ac.handleError(c, "Failed to clear chat sessions", err)
	}

	fm := fiber.Map{
		"type":    "success",
		"message": "Chat transcripts cleared",
	}
	return flash.WithSuccess(c, fm).Redirect("/admin/chat-sessions")
}
