package lock

import (
	"context"
	"sync"
	"time"

	"github.com/photostreak/streak-service/internal/ports"
)

// Compile-time interface check.
var _ ports.RunLock = (*LocalLock)(nil)

// LocalLock is an in-process lease lock with the same expiry semantics as
// RedisLock.
type LocalLock struct {
	mu     sync.Mutex
	leases map[string]lease
	seq    uint64
	now    func() time.Time
}

type lease struct {
	id      uint64
	expires time.Time
}

// NewLocalLock returns an empty lock table.
func NewLocalLock() *LocalLock {
	return &LocalLock{leases: make(map[string]lease), now: time.Now}
}

// Acquire implements ports.RunLock.
func (l *LocalLock) Acquire(_ context.Context, key string, ttl time.Duration) (func(context.Context) error, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if cur, ok := l.leases[key]; ok && now.Before(cur.expires) {
		return nil, false, nil
	}

	l.seq++
	id := l.seq
	l.leases[key] = lease{id: id, expires: now.Add(ttl)}

	release := func(context.Context) error {
		l.mu.Lock()
		defer l.mu.Unlock()
		if cur, ok := l.leases[key]; ok && cur.id == id {
			delete(l.leases, key)
		}
		return nil
	}
	return release, true, nil
}
