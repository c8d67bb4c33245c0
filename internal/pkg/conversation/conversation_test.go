package conversation

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBufferPreservesOrder(t *testing.T) {
	b := NewMemoryBuffer()

	for i := 0; i < 5; i++ {
		speaker := SpeakerUser
		if i%2 == 1 {
			speaker = SpeakerAssistant
		}
		require.NoError(t, b.Append("sess-1", Turn{Speaker: speaker, Text: fmt.Sprintf("turn %d", i)}))
	}

	turns, err := b.Snapshot("sess-1")
	require.NoError(t, err)
	require.Len(t, turns, 5)
	for i, turn := range turns {
		assert.Equal(t, fmt.Sprintf("turn %d", i), turn.Text)
	}

	// snapshot is stable until the next mutation
	again, err := b.Snapshot("sess-1")
	require.NoError(t, err)
	assert.Equal(t, turns, again)
}

func TestMemoryBufferAbsentSessionIsEmpty(t *testing.T) {
	b := NewMemoryBuffer()

	turns, err := b.Snapshot("never-seen")
	require.NoError(t, err)
	assert.Empty(t, turns)

	// resetting an absent buffer is not an error
	assert.NoError(t, b.Reset("never-seen"))
}

func TestMemoryBufferReset(t *testing.T) {
	b := NewMemoryBuffer()
	require.NoError(t, b.Append("sess-2", Turn{Speaker: SpeakerUser, Text: "hello"}))

	require.NoError(t, b.Reset("sess-2"))

	turns, err := b.Snapshot("sess-2")
	require.NoError(t, err)
	assert.Empty(t, turns)
}

func TestMemoryBufferIsolatesSessions(t *testing.T) {
	b := NewMemoryBuffer()
	require.NoError(t, b.Append("a", Turn{Speaker: SpeakerUser, Text: "for a"}))
	require.NoError(t, b.Append("b", Turn{Speaker: SpeakerUser, Text: "for b"}))

	turnsA, err := b.Snapshot("a")
	require.NoError(t, err)
	require.Len(t, turnsA, 1)
	assert.Equal(t, "for a", turnsA[0].Text)

	require.NoError(t, b.Reset("a"))
	turnsB, err := b.Snapshot("b")
	require.NoError(t, err)
	assert.Len(t, turnsB, 1)
}

func TestSnapshotCopyIsDetached(t *testing.T) {
	b := NewMemoryBuffer()
	require.NoError(t, b.Append("s", Turn{Speaker: SpeakerUser, Text: "original"}))

	turns, err := b.Snapshot("s")
	require.NoError(t, err)
	turns[0].Text = "mutated"

	fresh, err := b.Snapshot("s")
	require.NoError(t, err)
	assert.Equal(t, "original", fresh[0].Text)
}
