package controllers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/careerinn/careerinn/internal/pkg/cache"
	"github.com/careerinn/careerinn/internal/pkg/conversation"
	"github.com/careerinn/careerinn/internal/pkg/database"
	"github.com/careerinn/careerinn/internal/pkg/entitlements"
	"github.com/careerinn/careerinn/internal/pkg/groq"
	"github.com/careerinn/careerinn/internal/pkg/session"
	"github.com/careerinn/careerinn/internal/pkg/usercontext"
)

var (
	entGateway    *entitlements.Gateway
	entReconciler *entitlements.Reconciler
	aiClient      groq.Client
	chatBuffer    conversation.Buffer
)

// InitializeEntitlements wires the entitlement gateway and reconciler over
// the shared database, the Redis transcript buffer and the AI client.
func InitializeEntitlements() {
	repo := entitlements.NewRepository(database.GetDB())
	chatBuffer = conversation.NewRedisBuffer(cache.GetClient())
	aiClient = groq.NewClientFromEnv()

	entGateway = entitlements.NewGateway(repo, chatBuffer, aiClient)
	entReconciler = entitlements.NewReconciler(repo, chatBuffer)
}

// Gateway exposes the entitlement gateway to other packages, mainly the
// JSON API handlers.
func Gateway() *entitlements.Gateway {
	return entGateway
}

// Reconciler exposes the chat reconciler to other packages.
func Reconciler() *entitlements.Reconciler {
	return entReconciler
}

// HandleChatbot renders the AI mentor page with the current transcript.
// ?reset=1 clears the visible transcript only; the free-chat latch is not
// touched, so a locked chat stays locked.
func HandleChatbot(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)
	sessionID := session.GetSessionID(c)

	if c.Query("reset") == "1" {
		_ = entGateway.Buffer().Reset(sessionID)
		return c.Redirect("/chatbot")
	}

	locked, err := entGateway.FreeChatLocked(userCtx.UserID)
	if err != nil {
		return renderChatUnavailable(c)
	}

	turns, err := entGateway.Buffer().Snapshot(sessionID)
	if err != nil {
		// a missing transcript renders as an empty chat
		turns = nil
	}

	return render(c, "chatbot/index", "CareerInn AI Mentor", fiber.Map{
		"Turns":  turns,
		"Locked": locked,
	})
}

// HandleChatbotMessage advances the free chat by one turn.
func HandleChatbotMessage(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)
	sessionID := session.GetSessionID(c)

	message := strings.TrimSpace(c.FormValue("message"))
	if message == "" {
		return c.Redirect("/chatbot")
	}

	result, err := entGateway.CheckAndAdvanceFreeChat(c.UserContext(), userCtx.UserID, sessionID, message)
	if err != nil {
		if errors.Is(err, entitlements.ErrStoreUnavailable) {
			return renderChatUnavailable(c)
		}
		return fiber.NewError(fiber.StatusInternalServerError, "chat failed")
	}

	return render(c, "chatbot/index", "CareerInn AI Mentor", fiber.Map{
		"Turns":  result.Turns,
		"Locked": result.Decision == entitlements.DecisionQuotaExhausted,
	})
}

// HandleChatbotEnd closes the free chat for good. Safe to submit twice.
func HandleChatbotEnd(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)
	sessionID := session.GetSessionID(c)

	if _, err := entReconciler.Finalize(userCtx.UserID, sessionID); err != nil {
		if errors.Is(err, entitlements.ErrStoreUnavailable) {
			return renderChatUnavailable(c)
		}
		fm := fiber.Map{
			"type":    "error",
			"message": "Could not end the chat, please try again",
		}
		return flash.WithError(c, fm).Redirect("/chatbot")
	}

	return c.Redirect("/chatbot")
}

// HandleFinish is the historical end-of-chat link. It no longer locks
// anything; only the explicit end button does.
func HandleFinish(c *fiber.Ctx) error {
	return c.Redirect("/chatbot")
}

// renderChatUnavailable is the fail-closed page shown when the entitlement
// store cannot be reached. Input stays disabled.
func renderChatUnavailable(c *fiber.Ctx) error {
	return render(c, "chatbot/unavailable", "CareerInn AI Mentor", fiber.Map{})
}
