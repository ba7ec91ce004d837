package kv

import (
	"context"

	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// redisStorage shares client state across machines. Keys live under
// "<namespace>:".
type redisStorage struct {
	client    redis.UniversalClient
	namespace string
}

// NewRedisStorage wraps an existing client.
func NewRedisStorage(client redis.UniversalClient, namespace string) repository.Storage {
	return &redisStorage{client: client, namespace: namespace}
}

func (s *redisStorage) key(key string) string {
	if s.namespace == "" {
		return key
	}

	return s.namespace + ":" + key
}

func (s *redisStorage) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := s.client.Get(ctx, s.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}

		return nil, false, errors.Wrapf(err, "redis get %s", key)
	}

	return value, true, nil
}

func (s *redisStorage) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, s.key(key), value, 0).Err(); err != nil {
		return errors.Wrapf(err, "redis set %s", key)
	}

	return nil
}

func (s *redisStorage) Remove(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		return errors.Wrapf(err, "redis del %s", key)
	}

	return nil
}
