package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/careerinn/careerinn/internal/pkg/usercontext"
)

const (
	AUTH_KEY      string = "authenticated"
	USER_ID       string = "user_id"
	USER_NAME     string = "username"
	USER_IS_ADMIN string = "isAdmin"

	FROM_PROTECTED string = "from_protected"
)

func isLoggedIn(c *fiber.Ctx) bool {
	var fromProtected bool
	if protectedValue := c.Locals(FROM_PROTECTED); protectedValue != nil {
		fromProtected = protectedValue.(bool)
	}

	return fromProtected
}

// ExtractUsername gets the username from Locals (set by middleware)
func ExtractUsername(c *fiber.Ctx) string {
	if userNameValue := c.Locals(USER_NAME); userNameValue != nil {
		if userName, ok := userNameValue.(string); ok {
			return userName
		}
	}

	return ""
}

// csrfToken returns the token placed in Locals by the csrf middleware, or
// empty string on routes outside the protected group.
func csrfToken(c *fiber.Ctx) string {
	if v := c.Locals("csrf"); v != nil {
		if token, ok := v.(string); ok {
			return token
		}
	}
	return ""
}

// viewData assembles the shared layout fields and merges the page-specific
// entries on top.
func viewData(c *fiber.Ctx, title string, data fiber.Map) fiber.Map {
	userCtx := usercontext.GetUserContext(c)

	merged := fiber.Map{
		"Title":         title,
		"FromProtected": userCtx.IsLoggedIn,
		"Username":      userCtx.Username,
		"IsAdmin":       userCtx.IsAdmin,
		"Msg":           flash.Get(c),
		"CSRFToken":     csrfToken(c),
	}
	for k, v := range data {
		merged[k] = v
	}
	return merged
}

// render draws a page inside the main layout.
func render(c *fiber.Ctx, view string, title string, data fiber.Map) error {
	return c.Render(view, viewData(c, title, data), "layouts/main")
}
