package entitlements

import (
	"fmt"

	"github.com/careerinn/careerinn/internal/pkg/conversation"
)

// Reconciler settles the end of a free chat: it closes the usage latch and
// clears the session transcript as one logical operation, so the two can
// never disagree about whether the free session is still open.
type Reconciler struct {
	repo   Repository
	buffer conversation.Buffer
}

// NewReconciler wires a reconciler from the shared store and buffer.
func NewReconciler(repo Repository, buffer conversation.Buffer) *Reconciler {
	return &Reconciler{repo: repo, buffer: buffer}
}

// Finalize is invoked by the explicit end-of-chat action. It is idempotent:
// a second call observes AlreadyConsumed and still clears the (already
// empty) buffer, which makes a double-submitted "end chat" button harmless.
func (r *Reconciler) Finalize(userID uint, sessionID string) (ConsumeResult, error) {
	result, err := r.repo.TryConsume(userID, CapabilityFreeChat)
	if err != nil {
		return AlreadyConsumed, err
	}

	// Reset regardless of whether this call or an earlier one closed the
	// latch; a stale transcript must not outlive the lock.
	if err := r.buffer.Reset(sessionID); err != nil {
		return result, fmt.Errorf("clear transcript: %w", err)
	}
	return result, nil
}
