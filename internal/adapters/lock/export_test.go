package lock

import "time"

// SetClock replaces the lock's time source.
func (l *LocalLock) SetClock(now func() time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.now = now
}
