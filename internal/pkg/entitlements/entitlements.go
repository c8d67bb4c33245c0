// Package entitlements decides, per request, whether an account may reach a
// gated capability. It combines the durable subscription flag, the durable
// usage latch and the ephemeral conversation buffer into one access decision.
// The durable latch is the single source of truth for "may chat"; the buffer
// is display-only state.
package entitlements

import (
	"errors"
	"fmt"
)

// Capability names a metered or gated feature.
type Capability string

// CapabilityFreeChat is the one-time free AI career chat. The interface is
// capability-parameterized so future quotas reuse the same latch storage.
const CapabilityFreeChat Capability = "free_chat"

// Decision is the outcome of an entitlement check.
type Decision string

const (
	DecisionAllow             Decision = "allow"
	DecisionNeedsSubscription Decision = "needs_subscription"
	DecisionQuotaExhausted    Decision = "quota_exhausted"
)

// ConsumeResult reports whether a TryConsume call closed the latch or found
// it already closed.
type ConsumeResult int

const (
	AlreadyConsumed ConsumeResult = iota
	NewlyConsumed
)

func (r ConsumeResult) String() string {
	if r == NewlyConsumed {
		return "newly_consumed"
	}
	return "already_consumed"
}

// ErrStoreUnavailable marks durable-store failures. Callers must never map it
// to a permissive default ("not subscribed" / "not consumed"); allow-path
// reads fail closed instead.
var ErrStoreUnavailable = errors.New("entitlement store unavailable")

func storeErr(err error) error {
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}
