package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/careerinn/careerinn/app/controllers"
	"github.com/careerinn/careerinn/internal/pkg/middleware"
	"github.com/careerinn/careerinn/internal/pkg/oauth"
	"github.com/careerinn/careerinn/internal/pkg/session"
)

type HttpRouter struct {
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	// init session
	session.NewSessionStore()

	// init oauth providers
	oauth.Setup()

	// Apply UserContext middleware globally as first middleware
	app.Use(middleware.UserContextMiddleware)

	// Wire the entitlement gateway and reconciler over the shared stores
	controllers.InitializeEntitlements()

	// Initialize admin controller with repositories
	controllers.InitializeAdminController()

	h.registerPublicRoutes(app)
	h.registerAdminRoutes(app)
	h.registerCSRFProtectedRoutes(app)
}

func NewHttpRouter() *HttpRouter {
	return &HttpRouter{}
}

func loggedInMiddleware(c *fiber.Ctx) error {
	// UserContextMiddleware already set all user context
	// All user information is available via usercontext.GetUserContext(c)
	return c.Next()
}
