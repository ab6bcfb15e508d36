package middleware

import (
	"context"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/photostreak/streak-service/internal/platform/telemetry"
)

const tracerName = "github.com/photostreak/streak-service/internal/adapters/http"

// Span attributes describing what a streak request touched.
const (
	attrRoute   = attribute.Key("http.route")
	attrGroupID = attribute.Key("streak.group_id")
	attrUserID  = attribute.Key("enduser.id")
)

// OpenTelemetry returns middleware that continues the caller's W3C trace and
// records server request metrics. The span starts as "HTTP <method>" and is
// renamed to "<method> <route>" once chi has matched the route, so spans and
// metrics stay bounded by the route table rather than by group IDs.
//
// A nil metrics skips metric recording.
func OpenTelemetry(metrics *telemetry.Metrics) func(http.Handler) http.Handler {
	tracer := otel.GetTracerProvider().Tracer(tracerName)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			r, state := withRequestState(r)

			ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
			ctx, span := tracer.Start(ctx, "HTTP "+r.Method,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					attribute.String("http.method", r.Method),
					attribute.String("url.path", r.URL.Path),
				),
			)
			defer span.End()

			rec := newStatusRecorder(w)
			next.ServeHTTP(rec, r.WithContext(ctx))

			route, groupID := routeOf(r)
			if route != "" {
				span.SetName(r.Method + " " + route)
				span.SetAttributes(attrRoute.String(route))
			}
			if groupID != "" {
				span.SetAttributes(attrGroupID.String(groupID))
			}
			if userID := state.user(); userID != "" {
				span.SetAttributes(attrUserID.String(userID))
			}

			span.SetAttributes(attribute.Int("http.status_code", rec.status))
			if rec.status >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(rec.status))
			}

			recordServerMetrics(ctx, metrics, r.Method, route, start, rec.status)
		})
	}
}

// recordServerMetrics is a no-op for nil metrics.
func recordServerMetrics(ctx context.Context, metrics *telemetry.Metrics, method, route string, start time.Time, status int) {
	if metrics == nil {
		return
	}

	result := "success"
	if status >= http.StatusBadRequest {
		result = "error"
	}
	if route == "" {
		route = "unmatched"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(method),
		telemetry.AttrHTTPRoute.String(route),
		telemetry.AttrHTTPStatus.Int(status),
		telemetry.AttrResult.String(result),
	)

	metrics.ServerRequestDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	metrics.ServerRequestTotal.Add(ctx, 1, attrs)
}
