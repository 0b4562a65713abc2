package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"naturalize/internal/profile/models"
)

const defaultRedisPrefix = "profile:"

// RedisStore keeps each user's profile in one hash. Apply wraps the batch in
// MULTI/EXEC so readers never see a partial lockout write.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
}

// NewRedis constructs a Redis-backed profile store.
func NewRedis(client redis.UniversalClient) *RedisStore {
	return &RedisStore{client: client, prefix: defaultRedisPrefix}
}

func (s *RedisStore) key(userID string) string {
	return s.prefix + userID
}

func (s *RedisStore) Get(ctx context.Context, userID, key string) (string, bool, error) {
	v, err := s.client.HGet(ctx, s.key(userID), key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get user meta: %w", err)
	}
	return v, true, nil
}

func (s *RedisStore) Set(ctx context.Context, userID, key, value string) error {
	if err := s.client.HSet(ctx, s.key(userID), key, value).Err(); err != nil {
		return fmt.Errorf("set user meta: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, userID, key string) error {
	if err := s.client.HDel(ctx, s.key(userID), key).Err(); err != nil {
		return fmt.Errorf("delete user meta: %w", err)
	}
	return nil
}

func (s *RedisStore) Apply(ctx context.Context, userID string, mutations []models.Mutation) error {
	if len(mutations) == 0 {
		return nil
	}
	hash := s.key(userID)
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, m := range mutations {
			if m.Delete {
				pipe.HDel(ctx, hash, m.Key)
				continue
			}
			pipe.HSet(ctx, hash, m.Key, m.Value)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("apply user meta: %w", err)
	}
	return nil
}
