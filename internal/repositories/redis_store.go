package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisClient is the subset of *redis.Client used by the Redis store
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

type redisStore struct {
	client RedisClient
}

// NewRedisStore creates a key-value store backed by Redis string keys
func NewRedisStore(client RedisClient) *redisStore {
	return &redisStore{
		client: client,
	}
}

// Get retrieves the string stored under key
func (s *redisStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get redis key: %w", err)
	}

	return value, true, nil
}

// Put stores value under key without expiry
func (s *redisStore) Put(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set redis key: %w", err)
	}
	return nil
}
