package entitlements

import (
	"context"
	"errors"
	"fmt"

	"github.com/careerinn/careerinn/internal/pkg/conversation"
	"github.com/careerinn/careerinn/internal/pkg/groq"
)

// SystemPrompt is the instruction sent with every free-chat completion.
const SystemPrompt = "You are CareerInn's AI career guide. Talk friendly and act like a mentor. Ask questions step-by-step."

// LockNotice is the single fixed message appended to an already-locked
// transcript. Appending it is the one case where a locked account still
// mutates its buffer; the counter is never touched here.
const LockNotice = "Your free AI career chat session has ended. Please subscribe for more guidance."

// notConfiguredReply mirrors the original demo-mode behavior when no API key
// is present.
const notConfiguredReply = "AI is not configured. Please set GROQ_API_KEY in the environment (demo mode)."

// ChatResult is the outcome of a free-chat turn.
type ChatResult struct {
	Decision Decision
	// Turns is the transcript after this request, in display order.
	Turns []conversation.Turn
}

// Gateway is the single entry point for gated-capability decisions. Stores
// and the AI collaborator are injected; there is no package-level state.
type Gateway struct {
	repo   Repository
	buffer conversation.Buffer
	ai     groq.Client
}

// NewGateway wires the gateway from its collaborators.
func NewGateway(repo Repository, buffer conversation.Buffer, ai groq.Client) *Gateway {
	return &Gateway{repo: repo, buffer: buffer, ai: ai}
}

// Buffer exposes the conversation buffer for display-only operations
// (transcript rendering, the reset-view action).
func (g *Gateway) Buffer() conversation.Buffer {
	return g.buffer
}

// CheckPremium decides whether the account may use subscription-gated
// features. Pure read, no side effects. A store failure is returned as an
// error so the caller denies rather than guessing.
func (g *Gateway) CheckPremium(userID uint) (Decision, error) {
	active, err := g.repo.IsSubscriptionActive(userID)
	if err != nil {
		return DecisionNeedsSubscription, err
	}
	if !active {
		return DecisionNeedsSubscription, nil
	}
	return DecisionAllow, nil
}

// Activate turns the account's subscription on. Idempotent; repeated
// activations are no-ops. Activation has no effect on the free-chat latch.
func (g *Gateway) Activate(userID uint) error {
	return g.repo.ActivateSubscription(userID)
}

// CheckAndAdvanceFreeChat handles one normal message turn of the free chat.
//
// The durable latch is checked first: a locked account never reaches the AI
// collaborator, regardless of what the buffer still contains. For an open
// account the user turn is recorded, the collaborator is called, and its
// reply is appended. A failed call appends a synthesized error reply and
// does not spend the quota.
func (g *Gateway) CheckAndAdvanceFreeChat(ctx context.Context, userID uint, sessionID, message string) (*ChatResult, error) {
	consumed, err := g.repo.HasConsumed(userID, CapabilityFreeChat)
	if err != nil {
		// Fail closed: an unreachable store must not grant a second session.
		return nil, err
	}

	if consumed {
		if err := g.buffer.Append(sessionID, conversation.Turn{
			Speaker: conversation.SpeakerAssistant,
			Text:    LockNotice,
		}); err != nil {
			return nil, fmt.Errorf("append lock notice: %w", err)
		}
		turns, err := g.buffer.Snapshot(sessionID)
		if err != nil {
			return nil, fmt.Errorf("read transcript: %w", err)
		}
		return &ChatResult{Decision: DecisionQuotaExhausted, Turns: turns}, nil
	}

	if err := g.buffer.Append(sessionID, conversation.Turn{
		Speaker: conversation.SpeakerUser,
		Text:    message,
	}); err != nil {
		return nil, fmt.Errorf("append user turn: %w", err)
	}

	transcript, err := g.buffer.Snapshot(sessionID)
	if err != nil {
		return nil, fmt.Errorf("read transcript: %w", err)
	}

	reply, aiErr := g.ai.Complete(ctx, SystemPrompt, transcript)
	if aiErr != nil {
		// The user turn stays recorded and the failure is visible in the
		// transcript; the quota is not spent by a failed call.
		if errors.Is(aiErr, groq.ErrNotConfigured) {
			reply = notConfiguredReply
		} else {
			reply = fmt.Sprintf("AI error: %v", aiErr)
		}
	}

	if err := g.buffer.Append(sessionID, conversation.Turn{
		Speaker: conversation.SpeakerAssistant,
		Text:    reply,
	}); err != nil {
		return nil, fmt.Errorf("append assistant turn: %w", err)
	}

	turns, err := g.buffer.Snapshot(sessionID)
	if err != nil {
		return nil, fmt.Errorf("read transcript: %w", err)
	}
	return &ChatResult{Decision: DecisionAllow, Turns: turns}, nil
}

// FreeChatLocked reports the current latch state for rendering the chat view.
func (g *Gateway) FreeChatLocked(userID uint) (bool, error) {
	return g.repo.HasConsumed(userID, CapabilityFreeChat)
}
