package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/photostreak/streak-service/internal/platform/logging"
)

// Logging returns middleware that stores a request logger carrying the
// request and correlation IDs, then logs one completion line per request.
// The completion line names the matched route, the group from the route and
// the authenticated user, so a streak change can be traced to the call that
// made it. Server errors are logged at error level.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			r, state := withRequestState(r)
			ctx := r.Context()

			child := logger.With(
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.String("correlation_id", CorrelationIDFromContext(ctx)),
			)
			ctx = logging.WithLogger(ctx, child)

			if child.Enabled(ctx, slog.LevelDebug) {
				attrs := append([]slog.Attr{
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				}, RedactHeaders(r.Header)...)
				child.LogAttrs(ctx, slog.LevelDebug, "request started", attrs...)
			}

			rec := newStatusRecorder(w)
			next.ServeHTTP(rec, r.WithContext(ctx))

			route, groupID := routeOf(r)
			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("route", route),
				slog.Int("status", rec.status),
				slog.Int64("bytes", rec.bytes),
				slog.Duration("duration", time.Since(start)),
			}
			if groupID != "" {
				attrs = append(attrs, slog.String("group_id", groupID))
			}
			if userID := state.user(); userID != "" {
				attrs = append(attrs, slog.String("user_id", userID))
			}

			level := slog.LevelInfo
			if rec.status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			child.LogAttrs(ctx, level, "request completed", attrs...)
		})
	}
}
