package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/careerinn/careerinn/internal/pkg/entitlements"
	"github.com/careerinn/careerinn/internal/pkg/usercontext"
)

// HandleSubscribe shows the Student Pass page and activates the subscription
// on POST. No payment processing; the submit itself is the trusted signal.
// Activating twice is harmless, and it never reopens a finished free chat.
func HandleSubscribe(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	if c.Method() == fiber.MethodPost {
		if err := entGateway.Activate(userCtx.UserID); err != nil {
			fm := fiber.Map{
				"type":    "error",
				"message": "Subscription could not be activated, please try again",
			}
			return flash.WithError(c, fm).Redirect("/subscribe")
		}

		fm := fiber.Map{
			"type":    "success",
			"message": "Student Pass active. Premium sections are unlocked!",
		}
		return flash.WithSuccess(c, fm).Redirect("/dashboard")
	}

	decision, err := entGateway.CheckPremium(userCtx.UserID)
	subscribed := err == nil && decision == entitlements.DecisionAllow

	return render(c, "subscribe", "Subscribe", fiber.Map{
		"Subscribed": subscribed,
	})
}
