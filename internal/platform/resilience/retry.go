package resilience

import (
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/photostreak/streak-service/internal/domain"
	"github.com/photostreak/streak-service/internal/platform/logging"
)

// jitterFraction is the maximum jitter as a fraction of the delay (±25%).
const jitterFraction = 0.25

// doWithRetry runs fn up to maxAttempts times with exponential backoff and
// ±25% jitter between attempts. Each attempt gets its own timeout.
func (g *Guard) doWithRetry(ctx context.Context, operation string, maxAttempts int, fn func(context.Context) error) error {
	if maxAttempts <= 0 {
		return fmt.Errorf("resilience: maxAttempts must be >= 1, got %d", maxAttempts)
	}

	var lastErr error

	for attempt := range maxAttempts {
		if attempt > 0 {
			if err := g.waitForRetry(ctx, operation, attempt, maxAttempts, lastErr); err != nil {
				return err
			}
		}

		lastErr = g.attempt(ctx, fn)
		if !isRetryable(ctx, lastErr) {
			return lastErr
		}
	}

	return lastErr
}

// attempt runs fn once under the per-attempt timeout. A timeout of the
// attempt alone is reported as domain.ErrUnavailable.
func (g *Guard) attempt(ctx context.Context, fn func(context.Context) error) error {
	if g.timeout <= 0 {
		return fn(ctx)
	}

	attemptCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	err := fn(attemptCtx)
	if err != nil && ctx.Err() == nil && errors.Is(attemptCtx.Err(), context.DeadlineExceeded) &&
		!errors.Is(err, domain.ErrUnavailable) {
		return fmt.Errorf("%s: attempt timed out after %s: %w: %w", g.name, g.timeout, domain.ErrUnavailable, err)
	}
	return err
}

// waitForRetry calculates the backoff delay, logs the retry attempt at WARN
// level, and waits for the delay or context cancellation.
func (g *Guard) waitForRetry(ctx context.Context, operation string, attempt, maxAttempts int, lastErr error) error {
	delay := backoff(attempt, g.retryCfg)

	logger := logging.FromContext(ctx)
	logger.WarnContext(ctx, "retrying store operation",
		slog.String("operation", operation),
		slog.String("store", g.name),
		slog.Int("attempt", attempt+1),
		slog.Int("max_attempts", maxAttempts),
		slog.Duration("backoff", delay),
		slog.Any("error", lastErr),
	)

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// backoff calculates the delay for a given retry attempt using exponential
// backoff with ±25% jitter. The attempt parameter is 1-indexed (attempt 1 is
// the first retry).
func backoff(attempt int, cfg retryConfig) time.Duration {
	delay := float64(cfg.initialInterval) * math.Pow(cfg.multiplier, float64(attempt-1))

	// Cap at max interval before applying jitter.
	if delay > float64(cfg.maxInterval) {
		delay = float64(cfg.maxInterval)
	}

	jitter := delay * jitterFraction
	delay += jitter * (2*secureRandFloat64() - 1)

	if delay < 0 {
		delay = 0
	}

	return time.Duration(delay)
}

// IEEE 754 double-precision constants for random float generation.
const (
	significandBits = 53
	uint64Bits      = 64
)

// secureRandFloat64 returns a random float64 in [0, 1) using crypto/rand.
func secureRandFloat64() float64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0
	}
	return float64(binary.BigEndian.Uint64(b[:])>>(uint64Bits-significandBits)) / float64(uint64(1)<<significandBits)
}

// isRetryable reports whether a failed attempt should be repeated. Only
// unavailability is retried, and never once the caller's context is done.
func isRetryable(ctx context.Context, err error) bool {
	if err == nil || ctx.Err() != nil {
		return false
	}
	return errors.Is(err, domain.ErrUnavailable)
}
