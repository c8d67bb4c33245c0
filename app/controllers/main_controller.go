package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sujit-baniya/flash"

	"github.com/careerinn/careerinn/internal/pkg/usercontext"
)

// HandleStart renders the landing page. For logged-in users the hero shows
// whether the free AI chat is still open.
func HandleStart(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	freeChatLocked := false
	if userCtx.IsLoggedIn {
		locked, err := entGateway.FreeChatLocked(userCtx.UserID)
		if err != nil {
			// landing page stays up when the store is down; the chat
			// itself fails closed at the gateway
			log.Printf("free chat state unavailable for user %d: %v", userCtx.UserID, err)
		} else {
			freeChatLocked = locked
		}
	}

	return render(c, "home", "CareerInn | Home", fiber.Map{
		"FreeChatLocked": freeChatLocked,
	})
}

func HandleAbout(c *fiber.Ctx) error {
	return render(c, "about", "About Us", fiber.Map{})
}

// HandleContact shows the contact form and acknowledges submissions with a
// ticket reference the user can quote to support.
func HandleContact(c *fiber.Ctx) error {
	if c.Method() == fiber.MethodPost {
		name := c.FormValue("name")
		email := c.FormValue("email")
		message := c.FormValue("message")
		if name == "" || email == "" || message == "" {
			fm := fiber.Map{
				"type":    "error",
				"message": "Please fill in all fields",
			}
			return flash.WithError(c, fm).Redirect("/contact")
		}

		ticket := uuid.New().String()[:8]
		log.Printf("contact ticket %s from %s <%s>", ticket, name, email)

		fm := fiber.Map{
			"type":    "success",
			"message": "Thanks, we received your message. Ticket reference: " + ticket,
		}
		return flash.WithSuccess(c, fm).Redirect("/contact")
	}

	return render(c, "contact", "Contact", fiber.Map{})
}

func HandleSupport(c *fiber.Ctx) error {
	return render(c, "support", "Support & Help", fiber.Map{})
}

// HandleProfile renders the static guidance page for the logged-in student.
func HandleProfile(c *fiber.Ctx) error {
	return render(c, "profile", "Profile", fiber.Map{})
}
