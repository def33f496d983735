package ratelimit

import (
	"context"
	"time"

	"github.com/redis/rueidis"
)

type RedisStore struct {
	client rueidis.Client
	prefix string
	window time.Duration
}

func NewRedisStore(client rueidis.Client, prefix string, window time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: prefix,
		window: window,
	}
}

func (s *RedisStore) Incr(ctx context.Context, key string) (int64, error) {
	redisKey := s.prefix + ":" + key

	cmd := s.client.B().Incr().Key(redisKey).Build()
	count, err := s.client.Do(ctx, cmd).AsInt64()
	if err != nil {
		return 0, err
	}

	// First hit in the window owns setting the expiry.
	if count == 1 {
		expireCmd := s.client.B().Expire().Key(redisKey).Seconds(int64(s.window.Seconds())).Build()
		if err := s.client.Do(ctx, expireCmd).Error(); err != nil {
			return 0, err
		}
	}

	return count, nil
}
