// Package lock serializes harness runs that share a test tenant. Two CI
// jobs creating and deleting the same fixtures concurrently produce flaky
// failures; a Redis SETNX lease keeps them sequential.
package lock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var ErrHeld = fmt.Errorf("run lock already held")

type Lock struct {
	client *redis.Client
	key    string
	value  string
	ttl    time.Duration
}

func New(redisURL, key string, ttl time.Duration) (*Lock, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return &Lock{
		client: redis.NewClient(opts),
		key:    "apicheck:lock:" + key,
		value:  uuid.NewString(),
		ttl:    ttl,
	}, nil
}

// Acquire takes the lease, returning ErrHeld if another run owns it.
func (l *Lock) Acquire(ctx context.Context) error {
	ok, err := l.client.SetNX(ctx, l.key, l.value, l.ttl).Result()
	if err != nil {
		return fmt.Errorf("acquire run lock: %w", err)
	}
	if !ok {
		return ErrHeld
	}
	return nil
}

// Release drops the lease if this run still owns it.
func (l *Lock) Release(ctx context.Context) error {
	const script = `
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0`
	if err := l.client.Eval(ctx, script, []string{l.key}, l.value).Err(); err != nil {
		return fmt.Errorf("release run lock: %w", err)
	}
	return l.client.Close()
}
