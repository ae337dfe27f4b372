package cache

import (
	"context"
	"encoding/json"
	"time"

	"estate/internal/domain/service"
	"estate/internal/errors"

	"github.com/redis/go-redis/v9"
)

const scanBatchSize = 200

type redisQueryCache struct {
	client *redis.Client
}

// NewQueryCache returns a service.QueryCache storing JSON values in Redis.
func NewQueryCache(client *redis.Client) service.QueryCache {
	return &redisQueryCache{client: client}
}

func (c *redisQueryCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrapf(err, "redis get %s", key)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, errors.Wrapf(err, "decode cached %s", key)
	}

	return true, nil
}

func (c *redisQueryCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "encode cached %s", key)
	}

	return errors.Wrapf(c.client.Set(ctx, key, data, ttl).Err(), "redis set %s", key)
}

func (c *redisQueryCache) InvalidatePrefix(ctx context.Context, prefix string) error {
	iter := c.client.Scan(ctx, 0, prefix+":*", scanBatchSize).Iterator()

	keys := make([]string, 0, scanBatchSize)
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return errors.Wrapf(err, "scan %s", prefix)
	}
	if len(keys) == 0 {
		return nil
	}

	return errors.Wrapf(c.client.Del(ctx, keys...).Err(), "invalidate %s", prefix)
}
