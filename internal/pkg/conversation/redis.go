package conversation

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Transcripts live alongside the session (1h sliding window); an abandoned
// chat disappears with its login session.
const transcriptTTL = time.Hour

type redisBuffer struct {
	client *redis.Client
}

// NewRedisBuffer creates a Buffer backed by a Redis list per session.
func NewRedisBuffer(client *redis.Client) Buffer {
	return &redisBuffer{client: client}
}

func transcriptKey(sessionID string) string {
	return "chat:" + sessionID
}

func (b *redisBuffer) Append(sessionID string, turn Turn) error {
	payload, err := json.Marshal(turn)
	if err != nil {
		return fmt.Errorf("encode chat turn: %w", err)
	}

	ctx := context.Background()
	key := transcriptKey(sessionID)
	if err := b.client.RPush(ctx, key, payload).Err(); err != nil {
		return fmt.Errorf("append chat turn: %w", err)
	}
	return b.client.Expire(ctx, key, transcriptTTL).Err()
}

func (b *redisBuffer) Snapshot(sessionID string) ([]Turn, error) {
	raw, err := b.client.LRange(context.Background(), transcriptKey(sessionID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("read chat transcript: %w", err)
	}

	turns := make([]Turn, 0, len(raw))
	for _, item := range raw {
		var t Turn
		if err := json.Unmarshal([]byte(item), &t); err != nil {
			// skip entries we cannot decode instead of failing the page
			continue
		}
		turns = append(turns, t)
	}
	return turns, nil
}

func (b *redisBuffer) Reset(sessionID string) error {
	return b.client.Del(context.Background(), transcriptKey(sessionID)).Err()
}
