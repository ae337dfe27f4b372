// Package otp keeps one-time passwords in Redis so they survive restarts and
// are shared across API replicas.
package otp

import (
	"context"
	"time"

	"estate/internal/domain/service"
	"estate/internal/errors"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "otp:"

// consumeScript deletes the key only when the stored code matches, so a
// code can be redeemed at most once even under concurrent verifies.
var consumeScript = redis.NewScript(`
local stored = redis.call("GET", KEYS[1])
if stored and stored == ARGV[1] then
  redis.call("DEL", KEYS[1])
  return 1
end
return 0
`)

type redisStore struct {
	client *redis.Client
}

// NewRedisStore returns a service.OTPStore backed by Redis key expiry.
func NewRedisStore(client *redis.Client) service.OTPStore {
	return &redisStore{client: client}
}

func (s *redisStore) Save(ctx context.Context, phone, code string, ttl time.Duration) error {
	if err := s.client.Set(ctx, keyPrefix+phone, code, ttl).Err(); err != nil {
		return errors.Wrap(err, "store otp")
	}

	return nil
}

func (s *redisStore) Consume(ctx context.Context, phone, code string) (bool, error) {
	if code == "" {
		return false, nil
	}

	n, err := consumeScript.Run(ctx, s.client, []string{keyPrefix + phone}, code).Int()
	if err != nil {
		return false, errors.Wrap(err, "consume otp")
	}

	return n == 1, nil
}
