package telemetry

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/photostreak/streak-service/internal/domain"
	"github.com/photostreak/streak-service/internal/ports"
)

// Compile-time interface check.
var _ ports.StreakRecorder = (*Metrics)(nil)

// Attribute keys for metric labels.
var (
	AttrHTTPMethod = attribute.Key("http.method")
	AttrHTTPRoute  = attribute.Key("http.route")
	AttrHTTPStatus = attribute.Key("http.status_code")
	AttrStore      = attribute.Key("store")
	AttrOperation  = attribute.Key("operation")
	AttrOutcome    = attribute.Key("outcome")
	AttrResult     = attribute.Key("result")
)

// Metrics holds pre-registered OpenTelemetry metric instruments.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	StoreOpDuration       metric.Float64Histogram
	StoreOpTotal          metric.Int64Counter
	StreakCreditTotal     metric.Int64Counter
	StreakConflictTotal   metric.Int64Counter
	ResetRunTotal         metric.Int64Counter
	ResetGroupTotal       metric.Int64Counter
}

// NewMetrics creates and registers all metric instruments on a meter named
// after the service.
func NewMetrics(mp metric.MeterProvider, serviceName string) (*Metrics, error) {
	meter := mp.Meter(serviceName)

	var m Metrics
	var err error

	if m.ServerRequestDuration, err = meter.Float64Histogram(
		"http.server.request.duration",
		metric.WithDescription("Duration of incoming HTTP requests"),
		metric.WithUnit("s"),
	); err != nil {
		return nil, fmt.Errorf("creating http.server.request.duration: %w", err)
	}

	if m.ServerRequestTotal, err = meter.Int64Counter(
		"http.server.request.total",
		metric.WithDescription("Total number of incoming HTTP requests"),
		metric.WithUnit("{request}"),
	); err != nil {
		return nil, fmt.Errorf("creating http.server.request.total: %w", err)
	}

	if m.StoreOpDuration, err = meter.Float64Histogram(
		"store.operation.duration",
		metric.WithDescription("Duration of guarded store operations including retries"),
		metric.WithUnit("s"),
	); err != nil {
		return nil, fmt.Errorf("creating store.operation.duration: %w", err)
	}

	if m.StoreOpTotal, err = meter.Int64Counter(
		"store.operation.total",
		metric.WithDescription("Total number of guarded store operations"),
		metric.WithUnit("{operation}"),
	); err != nil {
		return nil, fmt.Errorf("creating store.operation.total: %w", err)
	}

	if m.StreakCreditTotal, err = meter.Int64Counter(
		"streak.credit.total",
		metric.WithDescription("Days credited to group streaks"),
		metric.WithUnit("{day}"),
	); err != nil {
		return nil, fmt.Errorf("creating streak.credit.total: %w", err)
	}

	if m.StreakConflictTotal, err = meter.Int64Counter(
		"streak.conflict.total",
		metric.WithDescription("Streak compare-and-swap attempts lost to a concurrent writer"),
		metric.WithUnit("{conflict}"),
	); err != nil {
		return nil, fmt.Errorf("creating streak.conflict.total: %w", err)
	}

	if m.ResetRunTotal, err = meter.Int64Counter(
		"streak.reset.run.total",
		metric.WithDescription("Daily reset runs by result"),
		metric.WithUnit("{run}"),
	); err != nil {
		return nil, fmt.Errorf("creating streak.reset.run.total: %w", err)
	}

	if m.ResetGroupTotal, err = meter.Int64Counter(
		"streak.reset.group.total",
		metric.WithDescription("Groups visited by daily reset runs by outcome"),
		metric.WithUnit("{group}"),
	); err != nil {
		return nil, fmt.Errorf("creating streak.reset.group.total: %w", err)
	}

	return &m, nil
}

// StreakCredited implements [ports.StreakRecorder].
func (m *Metrics) StreakCredited(ctx context.Context) {
	m.StreakCreditTotal.Add(ctx, 1)
}

// StreakConflict implements [ports.StreakRecorder].
func (m *Metrics) StreakConflict(ctx context.Context, operation string) {
	m.StreakConflictTotal.Add(ctx, 1, metric.WithAttributes(AttrOperation.String(operation)))
}

// ResetCompleted implements [ports.StreakRecorder].
func (m *Metrics) ResetCompleted(ctx context.Context, res ports.ResetResult, err error) {
	m.ResetRunTotal.Add(ctx, 1, metric.WithAttributes(AttrResult.String(resetResult(err))))

	for outcome, n := range map[string]int{
		"maintained": res.StreaksMaintained,
		"reset":      res.StreaksReset,
		"skipped":    res.Skipped,
		"failed":     res.Failed,
	} {
		if n > 0 {
			m.ResetGroupTotal.Add(ctx, int64(n), metric.WithAttributes(AttrOutcome.String(outcome)))
		}
	}
}

// RecordStoreOp records one guarded store call. Safe to call on a nil receiver.
func (m *Metrics) RecordStoreOp(ctx context.Context, store, operation string, seconds float64, err error) {
	if m == nil {
		return
	}

	result := "success"
	if err != nil {
		result = "error"
	}

	attrs := metric.WithAttributes(
		AttrStore.String(store),
		AttrOperation.String(operation),
		AttrResult.String(result),
	)
	m.StoreOpDuration.Record(ctx, seconds, attrs)
	m.StoreOpTotal.Add(ctx, 1, attrs)
}

func resetResult(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, domain.ErrPartialFailure):
		return "partial"
	case errors.Is(err, domain.ErrConflict):
		return "locked"
	default:
		return "error"
	}
}
