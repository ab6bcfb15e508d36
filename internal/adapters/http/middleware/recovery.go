package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/photostreak/streak-service/internal/adapters/http/dto"
)

// errInternalServer is what clients see after a panic. The panic value and
// stack only go to the log.
var errInternalServer = errors.New("internal server error")

// Recovery returns middleware that turns a handler panic into an RFC 9457 500
// response and an error log naming the route, group and caller. It is the
// outermost layer, so a response already under way is left alone and only
// logged. A panic of http.ErrAbortHandler is passed through to net/http.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r, state := withRequestState(r)
			rec := newStatusRecorder(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler {
					panic(v)
				}

				route, groupID := routeOf(r)
				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("route", route),
					slog.String("group_id", groupID),
					slog.String("user_id", state.user()),
					slog.String("request_id", state.request()),
				)

				if !rec.wroteHeader {
					dto.WriteErrorResponse(rec, r, errInternalServer)
				}
			}()

			next.ServeHTTP(rec, r)
		})
	}
}
