package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/careerinn/careerinn/app/controllers"
	"github.com/careerinn/careerinn/internal/pkg/middleware"
)

func (h HttpRouter) registerAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin", middleware.RequireAdmin)
	adminGroup.Get("/", controllers.HandleAdminDashboard)
	adminGroup.Get("/users", controllers.HandleAdminUsers)

	// Catalog management (mutations live in the CSRF group)
	adminGroup.Get("/colleges", controllers.HandleAdminColleges)
	adminGroup.Get("/mentors", controllers.HandleAdminMentors)
	adminGroup.Get("/jobs", controllers.HandleAdminJobs)

	// Chat transcript monitor
	adminGroup.Get("/chat-sessions", controllers.HandleAdminChatSessions)
}
