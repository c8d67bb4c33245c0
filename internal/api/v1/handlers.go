package apiv1

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/careerinn/careerinn/app/controllers"
	"github.com/careerinn/careerinn/internal/pkg/conversation"
	"github.com/careerinn/careerinn/internal/pkg/entitlements"
	"github.com/careerinn/careerinn/internal/pkg/middleware"
	"github.com/careerinn/careerinn/internal/pkg/session"
	"github.com/careerinn/careerinn/internal/pkg/usercontext"
)

// APIServer implements the chat API over the same gateway the web chat uses.
type APIServer struct{}

// NewAPIServer creates a new API server instance
func NewAPIServer() *APIServer {
	return &APIServer{}
}

// RegisterHandlers attaches the v1 routes. All chat routes require a logged-in
// web session; there is no separate API credential.
func RegisterHandlers(router fiber.Router, s *APIServer) {
	router.Get("/ping", s.GetPing)

	chat := router.Group("/chat", middleware.RequireAPISessionAuth)
	chat.Post("/message", s.PostChatMessage)
	chat.Post("/end", s.PostChatEnd)
	chat.Post("/reset", s.PostChatReset)
	chat.Get("/transcript", s.GetChatTranscript)
}

type chatMessageRequest struct {
	Message string `json:"message"`
}

type turnResponse struct {
	Speaker string `json:"speaker"`
	Text    string `json:"text"`
}

func turnsJSON(turns []conversation.Turn) []turnResponse {
	out := make([]turnResponse, len(turns))
	for i, t := range turns {
		out[i] = turnResponse{Speaker: string(t.Speaker), Text: t.Text}
	}
	return out
}

// GetPing handles the ping endpoint
func (s *APIServer) GetPing(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"ping": "pong",
	})
}

// PostChatMessage advances the free chat by one turn and returns the full
// transcript plus the gate state.
func (s *APIServer) PostChatMessage(c *fiber.Ctx) error {
	var req chatMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "bad_request",
			"message": "invalid JSON body",
		})
	}
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "bad_request",
			"message": "message must not be empty",
		})
	}

	userID := usercontext.GetUserID(c)
	result, err := controllers.Gateway().CheckAndAdvanceFreeChat(c.UserContext(), userID, session.GetSessionID(c), message)
	if err != nil {
		if errors.Is(err, entitlements.ErrStoreUnavailable) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error":   "store_unavailable",
				"message": "chat is temporarily unavailable",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "internal",
			"message": "chat failed",
		})
	}

	return c.JSON(fiber.Map{
		"locked":     result.Decision == entitlements.DecisionQuotaExhausted,
		"transcript": turnsJSON(result.Turns),
	})
}

// PostChatEnd closes the free chat. Idempotent.
func (s *APIServer) PostChatEnd(c *fiber.Ctx) error {
	userID := usercontext.GetUserID(c)
	result, err := controllers.Reconciler().Finalize(userID, session.GetSessionID(c))
	if err != nil {
		if errors.Is(err, entitlements.ErrStoreUnavailable) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error":   "store_unavailable",
				"message": "chat is temporarily unavailable",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "internal",
			"message": "could not end chat",
		})
	}

	return c.JSON(fiber.Map{
		"locked":          true,
		"already_consumed": result == entitlements.AlreadyConsumed,
	})
}

// PostChatReset clears the visible transcript. The latch is untouched: a
// locked chat stays locked after a reset.
func (s *APIServer) PostChatReset(c *fiber.Ctx) error {
	if err := controllers.Gateway().Buffer().Reset(session.GetSessionID(c)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "internal",
			"message": "could not reset transcript",
		})
	}
	return c.JSON(fiber.Map{"reset": true})
}

// GetChatTranscript returns the visible transcript and the gate state.
func (s *APIServer) GetChatTranscript(c *fiber.Ctx) error {
	userID := usercontext.GetUserID(c)

	locked, err := controllers.Gateway().FreeChatLocked(userID)
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error":   "store_unavailable",
			"message": "chat is temporarily unavailable",
		})
	}

	turns, err := controllers.Gateway().Buffer().Snapshot(session.GetSessionID(c))
	if err != nil {
		turns = nil
	}

	return c.JSON(fiber.Map{
		"locked":     locked,
		"transcript": turnsJSON(turns),
	})
}
