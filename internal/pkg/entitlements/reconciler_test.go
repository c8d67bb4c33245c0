package entitlements

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careerinn/careerinn/internal/pkg/conversation"
)

func TestFinalizeIdempotent(t *testing.T) {
	repo := newFakeRepo()
	buffer := conversation.NewMemoryBuffer()
	r := NewReconciler(repo, buffer)

	require.NoError(t, buffer.Append("sess", conversation.Turn{Speaker: conversation.SpeakerUser, Text: "bye"}))

	result, err := r.Finalize(1, "sess")
	require.NoError(t, err)
	assert.Equal(t, NewlyConsumed, result)

	result, err = r.Finalize(1, "sess")
	require.NoError(t, err)
	assert.Equal(t, AlreadyConsumed, result)

	turns, err := buffer.Snapshot("sess")
	require.NoError(t, err)
	assert.Empty(t, turns)
}

func TestFinalizeClearsStaleTranscript(t *testing.T) {
	repo := newFakeRepo()
	buffer := conversation.NewMemoryBuffer()
	r := NewReconciler(repo, buffer)

	// latch already closed by an earlier session, but a new browser session
	// has accumulated turns anyway
	repo.consumed[1] = true
	require.NoError(t, buffer.Append("sess2", conversation.Turn{Speaker: conversation.SpeakerAssistant, Text: "stale"}))

	result, err := r.Finalize(1, "sess2")
	require.NoError(t, err)
	assert.Equal(t, AlreadyConsumed, result)

	turns, err := buffer.Snapshot("sess2")
	require.NoError(t, err)
	assert.Empty(t, turns)
}

func TestFinalizeConcurrentEndSignals(t *testing.T) {
	repo := newFakeRepo()
	buffer := conversation.NewMemoryBuffer()
	r := NewReconciler(repo, buffer)

	const workers = 8
	results := make([]ConsumeResult, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			result, err := r.Finalize(1, "sess")
			require.NoError(t, err)
			results[i] = result
		}(i)
	}
	wg.Wait()

	newly := 0
	for _, result := range results {
		if result == NewlyConsumed {
			newly++
		}
	}
	assert.Equal(t, 1, newly, "double-submitted end signals must charge once")
}

// Full session shape: a few open turns, an explicit end, then a locked turn.
func TestChatLifecycle(t *testing.T) {
	repo := newFakeRepo()
	buffer := conversation.NewMemoryBuffer()
	ai := &fakeAI{reply: "noted"}
	g := NewGateway(repo, buffer, ai)
	r := NewReconciler(repo, buffer)

	for _, msg := range []string{"I study BTech", "second year", "interested in cloud roles"} {
		res, err := g.CheckAndAdvanceFreeChat(context.Background(), 1, "sess", msg)
		require.NoError(t, err)
		require.Equal(t, DecisionAllow, res.Decision)
	}
	assert.Equal(t, 3, ai.calls)

	result, err := r.Finalize(1, "sess")
	require.NoError(t, err)
	assert.Equal(t, NewlyConsumed, result)

	res, err := g.CheckAndAdvanceFreeChat(context.Background(), 1, "sess", "one more?")
	require.NoError(t, err)
	assert.Equal(t, DecisionQuotaExhausted, res.Decision)
	assert.Equal(t, 3, ai.calls)

	require.Len(t, res.Turns, 1)
	assert.Equal(t, LockNotice, res.Turns[0].Text)
}
