package entitlements

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careerinn/careerinn/internal/pkg/conversation"
	"github.com/careerinn/careerinn/internal/pkg/groq"
)

// fakeRepo is an in-memory Repository for gateway tests.
type fakeRepo struct {
	mu         sync.Mutex
	subscribed map[uint]bool
	consumed   map[uint]bool
	failReads  bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{subscribed: map[uint]bool{}, consumed: map[uint]bool{}}
}

func (f *fakeRepo) IsSubscriptionActive(userID uint) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failReads {
		return false, storeErr(errors.New("connection refused"))
	}
	return f.subscribed[userID], nil
}

func (f *fakeRepo) ActivateSubscription(userID uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.subscribed[userID] = true
	return nil
}

func (f *fakeRepo) HasConsumed(userID uint, capability Capability) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failReads {
		return false, storeErr(errors.New("connection refused"))
	}
	return f.consumed[userID], nil
}

func (f *fakeRepo) TryConsume(userID uint, capability Capability) (ConsumeResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.consumed[userID] {
		return AlreadyConsumed, nil
	}
	f.consumed[userID] = true
	return NewlyConsumed, nil
}

// fakeAI scripts the collaborator and records whether it was reached.
type fakeAI struct {
	reply string
	err   error
	calls int
}

func (f *fakeAI) Complete(ctx context.Context, system string, turns []conversation.Turn) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func newTestGateway(repo Repository, ai groq.Client) *Gateway {
	return NewGateway(repo, conversation.NewMemoryBuffer(), ai)
}

func TestCheckPremium(t *testing.T) {
	repo := newFakeRepo()
	g := newTestGateway(repo, &fakeAI{})

	d, err := g.CheckPremium(1)
	require.NoError(t, err)
	assert.Equal(t, DecisionNeedsSubscription, d)

	require.NoError(t, repo.ActivateSubscription(1))

	d, err = g.CheckPremium(1)
	require.NoError(t, err)
	assert.Equal(t, DecisionAllow, d)
}

func TestCheckPremiumFailsClosedOnStoreError(t *testing.T) {
	repo := newFakeRepo()
	repo.subscribed[1] = true
	repo.failReads = true
	g := newTestGateway(repo, &fakeAI{})

	d, err := g.CheckPremium(1)
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.NotEqual(t, DecisionAllow, d)
}

func TestFreeChatOpenTurn(t *testing.T) {
	ai := &fakeAI{reply: "Tell me about your goals."}
	g := newTestGateway(newFakeRepo(), ai)

	res, err := g.CheckAndAdvanceFreeChat(context.Background(), 1, "sess", "Hi, I study hospitality")
	require.NoError(t, err)
	assert.Equal(t, DecisionAllow, res.Decision)
	assert.Equal(t, 1, ai.calls)

	require.Len(t, res.Turns, 2)
	assert.Equal(t, conversation.SpeakerUser, res.Turns[0].Speaker)
	assert.Equal(t, "Hi, I study hospitality", res.Turns[0].Text)
	assert.Equal(t, conversation.SpeakerAssistant, res.Turns[1].Speaker)
	assert.Equal(t, "Tell me about your goals.", res.Turns[1].Text)
}

func TestFreeChatLockedNeverReachesAI(t *testing.T) {
	repo := newFakeRepo()
	repo.consumed[1] = true
	ai := &fakeAI{reply: "should never be seen"}
	g := newTestGateway(repo, ai)

	for i := 0; i < 3; i++ {
		res, err := g.CheckAndAdvanceFreeChat(context.Background(), 1, "sess", "let me back in")
		require.NoError(t, err)
		assert.Equal(t, DecisionQuotaExhausted, res.Decision)
	}
	assert.Equal(t, 0, ai.calls)
}

func TestFreeChatLockedAppendsNoticeOnly(t *testing.T) {
	repo := newFakeRepo()
	repo.consumed[1] = true
	g := newTestGateway(repo, &fakeAI{})

	res, err := g.CheckAndAdvanceFreeChat(context.Background(), 1, "sess", "hello?")
	require.NoError(t, err)

	require.Len(t, res.Turns, 1)
	assert.Equal(t, conversation.SpeakerAssistant, res.Turns[0].Speaker)
	assert.Equal(t, LockNotice, res.Turns[0].Text)

	// the user turn is not recorded for a locked account, and the latch
	// state is untouched
	consumed, err := repo.HasConsumed(1, CapabilityFreeChat)
	require.NoError(t, err)
	assert.True(t, consumed)
}

// A stale, non-empty transcript must not re-enable input once the latch is
// closed: the durable counter decides, not the buffer.
func TestStaleBufferDoesNotReopenChat(t *testing.T) {
	repo := newFakeRepo()
	ai := &fakeAI{reply: "ok"}
	g := newTestGateway(repo, ai)

	_, err := g.CheckAndAdvanceFreeChat(context.Background(), 1, "sess", "turn one")
	require.NoError(t, err)

	// latch closes elsewhere (another tab ends the chat); buffer keeps its
	// old turns
	_, err = repo.TryConsume(1, CapabilityFreeChat)
	require.NoError(t, err)

	res, err := g.CheckAndAdvanceFreeChat(context.Background(), 1, "sess", "turn two")
	require.NoError(t, err)
	assert.Equal(t, DecisionQuotaExhausted, res.Decision)
	assert.Equal(t, 1, ai.calls, "locked account must not reach the collaborator again")
}

func TestFreeChatAIFailureDoesNotSpendQuota(t *testing.T) {
	repo := newFakeRepo()
	ai := &fakeAI{err: errors.New("upstream timeout")}
	g := newTestGateway(repo, ai)

	res, err := g.CheckAndAdvanceFreeChat(context.Background(), 1, "sess", "hello")
	require.NoError(t, err)
	assert.Equal(t, DecisionAllow, res.Decision)

	// the user turn is recorded with a synthesized error reply in place of
	// the assistant turn
	require.Len(t, res.Turns, 2)
	assert.Equal(t, "hello", res.Turns[0].Text)
	assert.Contains(t, res.Turns[1].Text, "AI error")

	consumed, err := repo.HasConsumed(1, CapabilityFreeChat)
	require.NoError(t, err)
	assert.False(t, consumed)

	// a later turn is still allowed
	ai.err = nil
	ai.reply = "recovered"
	res, err = g.CheckAndAdvanceFreeChat(context.Background(), 1, "sess", "still there?")
	require.NoError(t, err)
	assert.Equal(t, DecisionAllow, res.Decision)
	assert.Equal(t, "recovered", res.Turns[len(res.Turns)-1].Text)
}

func TestFreeChatUnconfiguredAI(t *testing.T) {
	g := newTestGateway(newFakeRepo(), &fakeAI{err: groq.ErrNotConfigured})

	res, err := g.CheckAndAdvanceFreeChat(context.Background(), 1, "sess", "hi")
	require.NoError(t, err)
	assert.Equal(t, DecisionAllow, res.Decision)
	assert.Contains(t, res.Turns[1].Text, "not configured")
}

func TestFreeChatFailsClosedOnStoreError(t *testing.T) {
	repo := newFakeRepo()
	repo.failReads = true
	ai := &fakeAI{reply: "nope"}
	g := newTestGateway(repo, ai)

	_, err := g.CheckAndAdvanceFreeChat(context.Background(), 1, "sess", "hi")
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.Equal(t, 0, ai.calls)
}

// Subscribing never reopens the free chat, and locking the chat never
// touches the subscription.
func TestSubscriptionDoesNotReopenFreeChat(t *testing.T) {
	repo := newFakeRepo()
	repo.consumed[1] = true
	g := newTestGateway(repo, &fakeAI{})

	require.NoError(t, repo.ActivateSubscription(1))

	d, err := g.CheckPremium(1)
	require.NoError(t, err)
	assert.Equal(t, DecisionAllow, d)

	res, err := g.CheckAndAdvanceFreeChat(context.Background(), 1, "sess", "premium now!")
	require.NoError(t, err)
	assert.Equal(t, DecisionQuotaExhausted, res.Decision)
}
