package middleware

import (
	"context"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
)

// groupIDParam is the route parameter naming the group a request targets.
const groupIDParam = "groupId"

// requestState is shared by every layer handling one request. Inner layers
// record what they learn; outer layers read it after the handler returns.
type requestState struct {
	mu        sync.Mutex
	requestID string
	userID    string
}

type requestStateKey struct{}

// withRequestState returns r carrying a request state, reusing the one an
// outer middleware already attached.
func withRequestState(r *http.Request) (*http.Request, *requestState) {
	if st := requestStateFrom(r.Context()); st != nil {
		return r, st
	}
	st := &requestState{}
	return r.WithContext(context.WithValue(r.Context(), requestStateKey{}, st)), st
}

func requestStateFrom(ctx context.Context) *requestState {
	st, _ := ctx.Value(requestStateKey{}).(*requestState)
	return st
}

func (s *requestState) setUser(id string) {
	if s == nil {
		return
	}
	s.mu.Lock()
	s.userID = id
	s.mu.Unlock()
}

func (s *requestState) setRequest(id string) {
	if s == nil {
		return
	}
	s.mu.Lock()
	s.requestID = id
	s.mu.Unlock()
}

func (s *requestState) request() string {
	if s == nil {
		return ""
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requestID
}

func (s *requestState) user() string {
	if s == nil {
		return ""
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userID
}

// routeOf reports the matched route pattern and the targeted group. Both are
// empty until chi has routed the request, so outer middleware calls it after
// the handler returns.
func routeOf(r *http.Request) (pattern, groupID string) {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return "", ""
	}
	return rctx.RoutePattern(), rctx.URLParam(groupIDParam)
}

// statusRecorder captures the status and body size a handler produced.
type statusRecorder struct {
	http.ResponseWriter
	status      int
	bytes       int64
	wroteHeader bool
}

func newStatusRecorder(w http.ResponseWriter) *statusRecorder {
	return &statusRecorder{ResponseWriter: w, status: http.StatusOK}
}

func (rec *statusRecorder) WriteHeader(code int) {
	if rec.wroteHeader {
		return
	}
	rec.status = code
	rec.wroteHeader = true
	rec.ResponseWriter.WriteHeader(code)
}

func (rec *statusRecorder) Write(b []byte) (int, error) {
	rec.wroteHeader = true
	n, err := rec.ResponseWriter.Write(b)
	rec.bytes += int64(n)
	return n, err
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (rec *statusRecorder) Unwrap() http.ResponseWriter {
	return rec.ResponseWriter
}
