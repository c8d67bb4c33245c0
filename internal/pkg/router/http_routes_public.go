package router

import (
	"github.com/gofiber/fiber/v2"
	gothfiber "github.com/shareed2k/goth_fiber"

	"github.com/careerinn/careerinn/app/controllers"
	"github.com/careerinn/careerinn/internal/pkg/middleware"
)

func (h HttpRouter) registerPublicRoutes(app *fiber.App) {
	// Static pages
	app.Get("/about", loggedInMiddleware, controllers.HandleAbout)
	app.Get("/support", loggedInMiddleware, controllers.HandleSupport)

	// Catalog (browsable without an account)
	app.Get("/courses", loggedInMiddleware, controllers.HandleCourses)
	app.Get("/colleges", loggedInMiddleware, controllers.HandleColleges)
	app.Get("/jobs", loggedInMiddleware, controllers.HandleJobs)
	app.Get("/jobs/:id", loggedInMiddleware, controllers.HandleJobDetail)
	app.Get("/prev-papers", loggedInMiddleware, controllers.HandlePrevPapers)

	// Auth
	app.Post("/logout", middleware.RequireAuth, controllers.HandleAuthLogout)

	// Social OAuth
	app.Get("/auth/:provider", gothfiber.BeginAuthHandler)
	app.Get("/auth/:provider/callback", controllers.HandleOAuthCallback)
}
