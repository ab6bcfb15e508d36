// Package lock implements ports.RunLock. The Redis lock coordinates replicas;
// the local lock covers single-instance deployments and tests.
package lock

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/photostreak/streak-service/internal/domain"
	"github.com/photostreak/streak-service/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.RunLock       = (*RedisLock)(nil)
	_ ports.HealthChecker = (*RedisLock)(nil)
)

const keyPrefix = "streak:lock:"

// releaseScript deletes the key only while it still holds our token, so an
// expired holder cannot release a lock that has since been re-acquired.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLock is a single-instance Redis lease lock.
type RedisLock struct {
	client redis.UniversalClient
}

// NewRedisLock wraps an existing client.
func NewRedisLock(client redis.UniversalClient) *RedisLock {
	return &RedisLock{client: client}
}

// Acquire implements ports.RunLock.
func (l *RedisLock) Acquire(ctx context.Context, key string, ttl time.Duration) (func(context.Context) error, bool, error) {
	token, err := newToken()
	if err != nil {
		return nil, false, err
	}

	ok, err := l.client.SetNX(ctx, keyPrefix+key, token, ttl).Result()
	if err != nil {
		return nil, false, translate(err)
	}
	if !ok {
		return nil, false, nil
	}

	release := func(ctx context.Context) error {
		if err := releaseScript.Run(ctx, l.client, []string{keyPrefix + key}, token).Err(); err != nil {
			return translate(err)
		}
		return nil
	}
	return release, true, nil
}

// Name implements ports.HealthChecker.
func (l *RedisLock) Name() string { return "redis" }

// HealthCheck implements ports.HealthChecker.
func (l *RedisLock) HealthCheck(ctx context.Context) error {
	if err := l.client.Ping(ctx).Err(); err != nil {
		return translate(err)
	}
	return nil
}

func translate(err error) error {
	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, redis.ErrClosed) {
		return fmt.Errorf("redis: %w: %w", domain.ErrUnavailable, err)
	}
	return fmt.Errorf("redis: %w", err)
}

func newToken() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generating lock token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
