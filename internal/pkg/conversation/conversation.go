// Package conversation holds the ephemeral per-session chat transcript.
// The buffer is display state only: it carries no entitlement knowledge and
// must never be consulted for authorization decisions.
package conversation

// Speaker identifies who produced a chat turn.
type Speaker string

const (
	SpeakerUser      Speaker = "user"
	SpeakerAssistant Speaker = "assistant"
)

// Turn is a single transcript entry.
type Turn struct {
	Speaker Speaker `json:"speaker"`
	Text    string  `json:"text"`
}

// Buffer is an ordered, resettable transcript keyed by login session.
// An absent or empty buffer is an empty sequence, not an error. Snapshot
// returns the same sequence for a session until the next mutation.
type Buffer interface {
	Append(sessionID string, turn Turn) error
	Snapshot(sessionID string) ([]Turn, error)
	Reset(sessionID string) error
}
