// Package resilience wraps calls to remote backends with a circuit breaker,
// rate limiting, a per-attempt timeout, retry with exponential backoff, and
// OpenTelemetry tracing.
//
// A call passes through the layers in this order:
//
//	Circuit Breaker → Rate Limiter → OTEL Span → Retry → Attempt Timeout → fn
//
// Construction:
//
//	guard := resilience.New(&cfg.Resilience, "firestore", metrics, logger)
//
// Guarding a call:
//
//	err := guard.Do(ctx, "GetGroup", func(ctx context.Context) error {
//	    g, err = store.GetGroup(ctx, id)
//	    return err
//	})
//
// Only domain.ErrUnavailable counts as a failure. Not-found, conflict and
// validation errors pass through untouched, are never retried, and never
// trip the breaker.
package resilience

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/photostreak/streak-service/internal/domain"
	"github.com/photostreak/streak-service/internal/platform/config"
	"github.com/photostreak/streak-service/internal/platform/telemetry"
)

// retryConfig holds the retry policy values extracted from config.RetryConfig
// using unexported types to avoid leaking the config package through the API.
type retryConfig struct {
	maxAttempts     int
	initialInterval time.Duration
	maxInterval     time.Duration
	multiplier      float64
}

// Guard applies the resilience policy to calls against one named backend.
type Guard struct {
	name     string
	timeout  time.Duration
	breaker  *gobreaker.CircuitBreaker[struct{}]
	limiter  *rate.Limiter // nil when rate limiting is disabled
	retryCfg retryConfig
	metrics  *telemetry.Metrics
	logger   *slog.Logger
}

// New creates a Guard for the backend identified by name (e.g. "firestore").
// If metrics is nil, metric recording is skipped.
func New(cfg *config.ResilienceConfig, name string, metrics *telemetry.Metrics, logger *slog.Logger) *Guard {
	cb := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        name,
		MaxRequests: toUint32(cfg.CircuitBreaker.HalfOpenLimit),
		Timeout:     cfg.CircuitBreaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.CircuitBreaker.MaxFailures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || !errors.Is(err, domain.ErrUnavailable)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	var limiter *rate.Limiter
	if cfg.RateLimit.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.Burst)
	}

	return &Guard{
		name:    name,
		timeout: cfg.Timeout,
		breaker: cb,
		limiter: limiter,
		retryCfg: retryConfig{
			maxAttempts:     cfg.Retry.MaxAttempts,
			initialInterval: cfg.Retry.InitialInterval,
			maxInterval:     cfg.Retry.MaxInterval,
			multiplier:      cfg.Retry.Multiplier,
		},
		metrics: metrics,
		logger:  logger,
	}
}

// Do runs fn under the full policy, retrying when it fails with
// domain.ErrUnavailable or its attempt times out. fn must be safe to repeat.
func (g *Guard) Do(ctx context.Context, operation string, fn func(context.Context) error) error {
	return g.run(ctx, operation, g.retryCfg.maxAttempts, fn)
}

// Once runs fn under the policy without retrying. Use it for writes that
// would duplicate data if replayed after an ambiguous failure.
func (g *Guard) Once(ctx context.Context, operation string, fn func(context.Context) error) error {
	return g.run(ctx, operation, 1, fn)
}

func (g *Guard) run(ctx context.Context, operation string, maxAttempts int, fn func(context.Context) error) error {
	start := time.Now()

	_, err := g.breaker.Execute(func() (struct{}, error) {
		if err := g.waitForRateLimit(ctx); err != nil {
			return struct{}{}, err
		}

		spanCtx, span := g.startSpan(ctx, operation)
		defer span.End()

		retryErr := g.doWithRetry(spanCtx, operation, maxAttempts, fn)
		finishSpan(span, retryErr)

		return struct{}{}, retryErr
	})

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		err = fmt.Errorf("%s: %w: %w", g.name, domain.ErrUnavailable, err)
	}

	g.metrics.RecordStoreOp(ctx, g.name, operation, time.Since(start).Seconds(), err)

	return err
}

// Name returns the guarded backend identifier. Together with HealthCheck it
// lets Guard satisfy ports.HealthChecker.
func (g *Guard) Name() string {
	return g.name
}

// HealthCheck reports backend availability from the circuit breaker state
// without making a call.
//
// State mapping:
//   - "closed"   : backend is operating normally; returns nil.
//   - "half-open": breaker is probing recovery; returns a degraded error.
//   - "open"     : breaker is rejecting calls; returns a failing error.
func (g *Guard) HealthCheck(_ context.Context) error {
	state := g.breaker.State()
	switch state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", g.name)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", g.name)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", g.name, state)
	}
}

// waitForRateLimit blocks until the rate limiter allows the call or the
// context is canceled. Returns nil immediately when rate limiting is disabled.
func (g *Guard) waitForRateLimit(ctx context.Context) error {
	if g.limiter == nil {
		return nil
	}
	return g.limiter.Wait(ctx)
}

func (g *Guard) startSpan(ctx context.Context, operation string) (context.Context, trace.Span) {
	tracer := otel.GetTracerProvider().Tracer("resilience")

	return tracer.Start(ctx, g.name+"."+operation,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.system", g.name),
			attribute.String("db.operation", operation),
		),
	)
}

// finishSpan records the outcome on the span. Expected domain outcomes such
// as not-found are not span errors.
func finishSpan(span trace.Span, err error) {
	if err == nil || !errors.Is(err, domain.ErrUnavailable) {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

// toUint32 safely converts a non-negative int to uint32, clamping at the
// uint32 maximum. Negative values are treated as zero.
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
