// Package groq talks to the Groq chat-completions API (OpenAI wire format).
// The client is the portal's only external AI collaborator; it is fallible
// and latency-bearing, and callers must already have passed the entitlement
// check before reaching it.
package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/careerinn/careerinn/internal/pkg/conversation"
	"github.com/careerinn/careerinn/internal/pkg/env"
)

const (
	groqAPIURL   = "https://api.groq.com/openai/v1/chat/completions"
	defaultModel = "llama-3.1-8b-instant"
)

// ErrNotConfigured is returned when no API key is available. Callers render
// this as an assistant-style notice instead of failing the request.
var ErrNotConfigured = errors.New("groq: api key not configured")

// Client produces an assistant reply for an ordered transcript plus a system
// instruction. Implementations must respect the context deadline.
type Client interface {
	Complete(ctx context.Context, system string, turns []conversation.Turn) (string, error)
}

// HTTPClient is the production Client backed by the Groq REST API.
type HTTPClient struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// NewClientFromEnv builds a client from GROQ_API_KEY / GROQ_MODEL.
// The returned client reports ErrNotConfigured per call when the key is
// missing, so a portal without AI still serves every other page.
func NewClientFromEnv() *HTTPClient {
	return NewClient(env.GetEnv("GROQ_API_KEY", ""), env.GetEnv("GROQ_MODEL", defaultModel), "")
}

// NewClient creates a Groq API client. An empty baseURL selects the public
// endpoint; tests point it at a local server.
func NewClient(apiKey, model, baseURL string) *HTTPClient {
	if model == "" {
		model = defaultModel
	}
	if baseURL == "" {
		baseURL = groqAPIURL
	}
	return &HTTPClient{
		apiKey:  apiKey,
		model:   model,
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []chatChoice `json:"choices"`
}

type chatChoice struct {
	Message      chatMessage `json:"message"`
	FinishReason string      `json:"finish_reason"`
}

type apiError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Complete sends the system prompt and transcript and returns the reply text.
func (c *HTTPClient) Complete(ctx context.Context, system string, turns []conversation.Turn) (string, error) {
	if c.apiKey == "" {
		return "", ErrNotConfigured
	}

	messages := make([]chatMessage, 0, len(turns)+1)
	if system != "" {
		messages = append(messages, chatMessage{Role: "system", Content: system})
	}
	for _, t := range turns {
		messages = append(messages, chatMessage{Role: string(t.Speaker), Content: t.Text})
	}

	body, err := json.Marshal(chatRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: 0.7,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("groq request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read groq response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		if err := json.Unmarshal(respBody, &apiErr); err == nil && apiErr.Error.Message != "" {
			return "", fmt.Errorf("groq API error (%d): %s", resp.StatusCode, apiErr.Error.Message)
		}
		return "", fmt.Errorf("groq API returned status %d", resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("failed to decode groq response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", errors.New("groq response contained no choices")
	}

	return parsed.Choices[0].Message.Content, nil
}
