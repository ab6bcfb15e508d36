package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

const (
	headerRequestID = "X-Request-ID"

	// maxIDLength bounds client-supplied request and correlation IDs.
	maxIDLength = 128
)

type requestIDKey struct{}

// WithRequestID returns a new context with the given request ID stored in it.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromContext returns the request ID, or "" when none is set.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// RequestID returns middleware that assigns every request an X-Request-ID.
// A client-supplied ID is kept when it is printable ASCII of at most
// maxIDLength bytes; anything else is replaced by a fresh UUID so headers
// cannot smuggle junk into the logs. The ID is echoed on the response.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(headerRequestID)
			if !acceptID(id) {
				id = uuid.NewString()
			}
			requestStateFrom(r.Context()).setRequest(id)
			w.Header().Set(headerRequestID, id)
			next.ServeHTTP(w, r.WithContext(WithRequestID(r.Context(), id)))
		})
	}
}

// acceptID reports whether a client-supplied ID may be echoed and logged.
func acceptID(id string) bool {
	if id == "" || len(id) > maxIDLength {
		return false
	}
	for i := range len(id) {
		if c := id[i]; c < '!' || c > '~' {
			return false
		}
	}
	return true
}
