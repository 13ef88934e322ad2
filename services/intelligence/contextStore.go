// File: services/intelligence/contextStore.go
package ai

import (
	"context"
	"encoding/json"
	"time"

	"aptiva/models"

	"github.com/go-redis/redis/v8"
)

const chatContextPrefix = "chat:ctx:"

// RedisContextStore persists per-conversation context between turns.
// Contexts are isolated by conversation id, so independent conversations
// never share mutable state.
type RedisContextStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisContextStore(client *redis.Client, ttl time.Duration) *RedisContextStore {
	return &RedisContextStore{client: client, ttl: ttl}
}

func (s *RedisContextStore) Get(ctx context.Context, conversationID string) (*models.SessionContext, error) {
	key := chatContextPrefix + conversationID
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return &models.SessionContext{}, nil
	}
	if err != nil {
		return nil, err
	}
	var sess models.SessionContext
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *RedisContextStore) Set(ctx context.Context, conversationID string, sess *models.SessionContext) error {
	key := chatContextPrefix + conversationID
	b, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, b, s.ttl).Err()
}

func (s *RedisContextStore) Clear(ctx context.Context, conversationID string) error {
	key := chatContextPrefix + conversationID
	return s.client.Del(ctx, key).Err()
}
