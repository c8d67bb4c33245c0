package conversation

import "sync"

type memoryBuffer struct {
	mu    sync.Mutex
	turns map[string][]Turn
}

// NewMemoryBuffer creates a process-local Buffer. Used by tests and as a
// degraded fallback when no cache server is configured; transcripts do not
// survive a restart, which is acceptable for display-only state.
func NewMemoryBuffer() Buffer {
	return &memoryBuffer{turns: make(map[string][]Turn)}
}

func (b *memoryBuffer) Append(sessionID string, turn Turn) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.turns[sessionID] = append(b.turns[sessionID], turn)
	return nil
}

func (b *memoryBuffer) Snapshot(sessionID string) ([]Turn, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	stored := b.turns[sessionID]
	out := make([]Turn, len(stored))
	copy(out, stored)
	return out, nil
}

func (b *memoryBuffer) Reset(sessionID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.turns, sessionID)
	return nil
}
