package controllers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/careerinn/careerinn/app/models"
	"github.com/careerinn/careerinn/app/repository"
	"github.com/careerinn/careerinn/internal/pkg/session"
)

func HandleAuthLogin(c *fiber.Ctx) error {
	if c.Method() == fiber.MethodPost {
		fm := fiber.Map{
			"type": "error",
		}

		// notice: in production you should not inform the user
		// with detailed messages about login failures
		user, err := repository.GetGlobalRepositories().User.GetByEmail(c.FormValue("email"))
		if err != nil {
			fm["message"] = "There is a problem with the login process"

			return flash.WithError(c, fm).Redirect("/login")
		}

		if !user.CheckPassword(c.FormValue("password")) {
			fm["message"] = "There is a problem with the login process"

			return flash.WithError(c, fm).Redirect("/login")
		}

		if user.Status != models.STATUS_ACTIVE {
			fm["message"] = "This account is disabled"

			return flash.WithError(c, fm).Redirect("/login")
		}

		if err := createUserSession(c, user); err != nil {
			fm["message"] = fmt.Sprintf("something went wrong: %s", err)

			return flash.WithError(c, fm).Redirect("/login")
		}

		fm = fiber.Map{
			"type":    "success",
			"message": fmt.Sprintf("Welcome back, %s!", user.Name),
		}

		return flash.WithSuccess(c, fm).Redirect("/dashboard")
	}

	return render(c, "auth/login", "Login", fiber.Map{})
}

func HandleAuthRegister(c *fiber.Ctx) error {
	if c.Method() == fiber.MethodPost {
		fm := fiber.Map{
			"type": "error",
		}

		password := c.FormValue("password")
		if password != c.FormValue("password_confirm") {
			fm["message"] = "Passwords do not match"

			return flash.WithError(c, fm).Redirect("/register")
		}

		user, err := models.CreateUser(c.FormValue("name"), c.FormValue("email"), password)
		if err != nil {
			fm["message"] = "Please check your inputs (name, valid email, password of 6+ characters)"

			return flash.WithError(c, fm).Redirect("/register")
		}

		if err := repository.GetGlobalRepositories().User.Create(user); err != nil {
			fm["message"] = "An account with this email already exists"

			return flash.WithError(c, fm).Redirect("/register")
		}

		if err := createUserSession(c, user); err != nil {
			fm["message"] = fmt.Sprintf("something went wrong: %s", err)

			return flash.WithError(c, fm).Redirect("/login")
		}

		fm = fiber.Map{
			"type":    "success",
			"message": "Your account is ready. Welcome to CareerInn!",
		}

		return flash.WithSuccess(c, fm).Redirect("/dashboard")
	}

	return render(c, "auth/register", "Sign up", fiber.Map{})
}

// HandleAuthForgotPassword shows the reset request page. Mail delivery is not
// wired; the page tells the user to contact support.
func HandleAuthForgotPassword(c *fiber.Ctx) error {
	if c.Method() == fiber.MethodPost {
		fm := fiber.Map{
			"type":    "success",
			"message": "If the address exists, our support team will contact you shortly.",
		}
		return flash.WithSuccess(c, fm).Redirect("/login")
	}
	return render(c, "auth/forgot_password", "Forgot password", fiber.Map{})
}

func HandleAuthLogout(c *fiber.Ctx) error {
	fm := fiber.Map{
		"type": "error",
	}

	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		fm["message"] = "logged out (no sess)"

		return flash.WithError(c, fm).Redirect("/login")
	}

	err = sess.Destroy()
	if err != nil {
		fm["message"] = fmt.Sprintf("something went wrong: %s", err)

		return flash.WithError(c, fm).Redirect("/login")
	}

	fm = fiber.Map{
		"type":    "success",
		"message": "You are logged out. See you soon!",
	}

	c.Locals(FROM_PROTECTED, false)

	return flash.WithSuccess(c, fm).Redirect("/login")
}

// createUserSession stores the identity keys in a fresh session. Entitlement
// state is deliberately not cached here.
func createUserSession(c *fiber.Ctx, user *models.User) error {
	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		return err
	}

	sess.Set(AUTH_KEY, true)
	sess.Set(USER_ID, user.ID)
	sess.Set(USER_NAME, user.Name)
	sess.Set(USER_IS_ADMIN, user.IsAdmin())

	if err := sess.Save(); err != nil {
		return err
	}

	now := time.Now()
	user.LastLoginAt = &now
	return repository.GetGlobalRepositories().User.Update(user)
}
