package groq

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careerinn/careerinn/internal/pkg/conversation"
)

func TestCompleteSendsTranscriptInOrder(t *testing.T) {
	var received chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		json.NewEncoder(w).Encode(chatResponse{
			Choices: []chatChoice{{Message: chatMessage{Role: "assistant", Content: "hello there"}}},
		})
	}))
	defer srv.Close()

	c := NewClient("test-key", "llama-3.1-8b-instant", srv.URL)
	reply, err := c.Complete(context.Background(), "be a mentor", []conversation.Turn{
		{Speaker: conversation.SpeakerUser, Text: "hi"},
		{Speaker: conversation.SpeakerAssistant, Text: "hello"},
		{Speaker: conversation.SpeakerUser, Text: "what next?"},
	})
	require.NoError(t, err)
	assert.Equal(t, "hello there", reply)

	require.Len(t, received.Messages, 4)
	assert.Equal(t, "system", received.Messages[0].Role)
	assert.Equal(t, "be a mentor", received.Messages[0].Content)
	assert.Equal(t, "user", received.Messages[1].Role)
	assert.Equal(t, "assistant", received.Messages[2].Role)
	assert.Equal(t, "what next?", received.Messages[3].Content)
	assert.Equal(t, "llama-3.1-8b-instant", received.Model)
}

func TestCompleteWithoutAPIKey(t *testing.T) {
	c := NewClient("", "", "")
	_, err := c.Complete(context.Background(), "sys", nil)
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestCompleteSurfacesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"rate limit exceeded","type":"rate_limit"}}`))
	}))
	defer srv.Close()

	c := NewClient("k", "", srv.URL)
	_, err := c.Complete(context.Background(), "", []conversation.Turn{{Speaker: conversation.SpeakerUser, Text: "hi"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limit exceeded")
}

func TestCompleteEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	c := NewClient("k", "", srv.URL)
	_, err := c.Complete(context.Background(), "", nil)
	assert.Error(t, err)
}
