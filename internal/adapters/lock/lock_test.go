package lock_test

import (
	"context"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/photostreak/streak-service/internal/adapters/lock"
	"github.com/photostreak/streak-service/internal/domain"
	"github.com/photostreak/streak-service/internal/ports"
)

// runContract exercises the behavior every ports.RunLock must share.
func runContract(t *testing.T, l ports.RunLock) {
	t.Helper()
	ctx := context.Background()

	t.Run("exclusive until released", func(t *testing.T) {
		key := "reset-" + uuid.NewString()

		release, ok, err := l.Acquire(ctx, key, time.Minute)
		require.NoError(t, err)
		require.True(t, ok)
		require.NotNil(t, release)

		again, ok, err := l.Acquire(ctx, key, time.Minute)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, again)

		require.NoError(t, release(ctx))

		release, ok, err = l.Acquire(ctx, key, time.Minute)
		require.NoError(t, err)
		require.True(t, ok)
		require.NoError(t, release(ctx))
	})

	t.Run("keys are independent", func(t *testing.T) {
		a, ok, err := l.Acquire(ctx, "a-"+uuid.NewString(), time.Minute)
		require.NoError(t, err)
		require.True(t, ok)
		b, ok, err := l.Acquire(ctx, "b-"+uuid.NewString(), time.Minute)
		require.NoError(t, err)
		require.True(t, ok)
		require.NoError(t, a(ctx))
		require.NoError(t, b(ctx))
	})

	t.Run("one winner under contention", func(t *testing.T) {
		key := "race-" + uuid.NewString()
		var (
			wg   sync.WaitGroup
			wins atomic.Int32
		)
		for range 16 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, ok, err := l.Acquire(ctx, key, time.Minute)
				assert.NoError(t, err)
				if ok {
					wins.Add(1)
				}
			}()
		}
		wg.Wait()
		assert.Equal(t, int32(1), wins.Load())
	})
}

func TestLocalLock_Contract(t *testing.T) {
	t.Parallel()
	runContract(t, lock.NewLocalLock())
}

func TestLocalLock_ExpiredLeaseCanBeTaken(t *testing.T) {
	t.Parallel()
	l := lock.NewLocalLock()
	now := time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)
	l.SetClock(func() time.Time { return now })
	ctx := context.Background()

	stale, ok, err := l.Acquire(ctx, "reset", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	now = now.Add(2 * time.Minute)
	fresh, ok, err := l.Acquire(ctx, "reset", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	// The stale holder must not release the new lease.
	require.NoError(t, stale(ctx))
	_, ok, err = l.Acquire(ctx, "reset", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, fresh(ctx))
}

// STREAK_TEST_REDIS_ADDR enables the Redis contract run, e.g. localhost:6379.
func TestRedisLock_Contract(t *testing.T) {
	addr := os.Getenv("STREAK_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("STREAK_TEST_REDIS_ADDR not set")
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })

	l := lock.NewRedisLock(client)
	require.NoError(t, l.HealthCheck(context.Background()))
	runContract(t, l)
}

func TestRedisLock_UnreachableIsUnavailable(t *testing.T) {
	t.Parallel()
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })
	l := lock.NewRedisLock(client)

	assert.Equal(t, "redis", l.Name())

	_, ok, err := l.Acquire(context.Background(), "reset", time.Minute)
	require.ErrorIs(t, err, domain.ErrUnavailable)
	assert.False(t, ok)

	require.ErrorIs(t, l.HealthCheck(context.Background()), domain.ErrUnavailable)
}
