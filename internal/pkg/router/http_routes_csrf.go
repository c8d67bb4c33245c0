package router

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/csrf"

	"github.com/careerinn/careerinn/app/controllers"
	"github.com/careerinn/careerinn/internal/pkg/env"
	"github.com/careerinn/careerinn/internal/pkg/middleware"
)

func (h HttpRouter) registerCSRFProtectedRoutes(app *fiber.App) {
	csrfConf := csrf.Config{
		KeyLookup:      "form:_csrf",
		ContextKey:     "csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		Expiration:     1 * time.Hour,
		CookieSecure:   !env.IsDev(),
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(c.Path(), "/api/")
		},
	}

	group := app.Group("", cors.New(), csrf.New(csrfConf))
	group.Get("/", loggedInMiddleware, controllers.HandleStart)

	group.Get("/login", loggedInMiddleware, controllers.HandleAuthLogin)
	group.Post("/login", loggedInMiddleware, controllers.HandleAuthLogin)
	group.Get("/register", loggedInMiddleware, controllers.HandleAuthRegister)
	group.Post("/register", loggedInMiddleware, controllers.HandleAuthRegister)
	group.Get("/forgot-password", loggedInMiddleware, controllers.HandleAuthForgotPassword)
	group.Post("/forgot-password", loggedInMiddleware, controllers.HandleAuthForgotPassword)

	group.Get("/contact", loggedInMiddleware, controllers.HandleContact)
	group.Post("/contact", loggedInMiddleware, controllers.HandleContact)

	// Student workspace
	group.Get("/dashboard", middleware.RequireAuth, controllers.HandleDashboard)
	group.Post("/dashboard", middleware.RequireAuth, controllers.HandleDashboard)
	group.Get("/profile", middleware.RequireAuth, controllers.HandleProfile)
	group.Get("/subscribe", middleware.RequireAuth, controllers.HandleSubscribe)
	group.Post("/subscribe", middleware.RequireAuth, controllers.HandleSubscribe)

	// Premium surfaces (subscription checked inside, on every request)
	group.Get("/mentorship", middleware.RequireAuth, controllers.HandleMentorship)
	group.Get("/mock-interviews", middleware.RequireAuth, controllers.HandleMockInterviews)
	group.Post("/mock-interviews", middleware.RequireAuth, controllers.HandleMockInterviews)
	group.Get("/mock-interviews/ai", middleware.RequireAuth, controllers.HandleMockInterviewAI)
	group.Post("/mock-interviews/ai", middleware.RequireAuth, controllers.HandleMockInterviewAI)
	group.Get("/global-match", middleware.RequireAuth, controllers.HandleGlobalMatch)

	// Free AI career chat
	group.Get("/chatbot", middleware.RequireAuth, controllers.HandleChatbot)
	group.Post("/chatbot", middleware.RequireAuth, controllers.HandleChatbotMessage)
	group.Post("/chatbot/end", middleware.RequireAuth, controllers.HandleChatbotEnd)
	group.Get("/finish", middleware.RequireAuth, controllers.HandleFinish)

	// Admin catalog mutations
	group.Post("/admin/colleges/store", middleware.RequireAdmin, controllers.HandleAdminCollegeStore)
	group.Post("/admin/colleges/update/:id", middleware.RequireAdmin, controllers.HandleAdminCollegeUpdate)
	group.Post("/admin/colleges/delete/:id", middleware.RequireAdmin, controllers.HandleAdminCollegeDelete)
	group.Post("/admin/mentors/store", middleware.RequireAdmin, controllers.HandleAdminMentorStore)
	group.Post("/admin/mentors/update/:id", middleware.RequireAdmin, controllers.HandleAdminMentorUpdate)
	group.Post("/admin/mentors/delete/:id", middleware.RequireAdmin, controllers.HandleAdminMentorDelete)
	group.Post("/admin/jobs/store", middleware.RequireAdmin, controllers.HandleAdminJobStore)
	group.Post("/admin/jobs/update/:id", middleware.RequireAdmin, controllers.HandleAdminJobUpdate)
	group.Post("/admin/jobs/delete/:id", middleware.RequireAdmin, controllers.HandleAdminJobDelete)
	group.Post("/admin/chat-sessions/clear", middleware.RequireAdmin, controllers.HandleAdminChatSessionsClear)
}
