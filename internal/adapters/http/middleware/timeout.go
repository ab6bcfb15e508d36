package middleware

import (
	"context"
	"fmt"
	"maps"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/photostreak/streak-service/internal/adapters/http/dto"
)

// errRequestTimeout is reported to clients whose request ran out of time.
var errRequestTimeout = fmt.Errorf("request timed out: %w", context.DeadlineExceeded)

// TimeoutOption customizes Timeout.
type TimeoutOption func(*timeoutRules)

type routeTimeout struct {
	method string
	prefix string
	limit  time.Duration
}

type timeoutRules struct {
	fallback time.Duration
	routes   []routeTimeout
}

// WithRouteTimeout gives requests with the given method whose path starts
// with prefix their own limit. A limit of zero or less exempts them from the
// deadline entirely. The first matching rule wins.
func WithRouteTimeout(method, prefix string, limit time.Duration) TimeoutOption {
	return func(tr *timeoutRules) {
		tr.routes = append(tr.routes, routeTimeout{method: method, prefix: prefix, limit: limit})
	}
}

func (tr *timeoutRules) limitFor(r *http.Request) time.Duration {
	for _, rt := range tr.routes {
		if r.Method == rt.method && strings.HasPrefix(r.URL.Path, rt.prefix) {
			return rt.limit
		}
	}
	return tr.fallback
}

// Timeout returns middleware that gives each request a deadline of limit,
// or of the first WithRouteTimeout rule matching it. The handler runs on its
// own goroutine against a buffered writer; if the deadline passes first the
// client gets an RFC 9457 503 and later writes by the handler fail with
// http.ErrHandlerTimeout. A handler panic is re-raised on the serving
// goroutine so Recovery still sees it.
func Timeout(limit time.Duration, opts ...TimeoutOption) func(http.Handler) http.Handler {
	rules := &timeoutRules{fallback: limit}
	for _, opt := range opts {
		opt(rules)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			d := rules.limitFor(r)
			if d <= 0 {
				next.ServeHTTP(w, r)
				return
			}

			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()
			r = r.WithContext(ctx)

			tw := &timeoutWriter{w: w, header: make(http.Header)}
			done := make(chan struct{})
			panicked := make(chan any, 1)

			go func() {
				defer func() {
					if p := recover(); p != nil {
						panicked <- p
					}
				}()
				next.ServeHTTP(tw, r)
				close(done)
			}()

			select {
			case p := <-panicked:
				panic(p)
			case <-done:
				tw.mu.Lock()
				defer tw.mu.Unlock()
				tw.flush()
			case <-ctx.Done():
				tw.mu.Lock()
				defer tw.mu.Unlock()
				tw.timedOut = true
				dto.WriteErrorResponse(w, r, errRequestTimeout)
			}
		})
	}
}

// timeoutWriter buffers the handler's response until Timeout decides whether
// the handler or the deadline answers the client.
type timeoutWriter struct {
	w           http.ResponseWriter
	mu          sync.Mutex
	header      http.Header
	buf         []byte
	status      int
	wroteHeader bool
	timedOut    bool
}

// Header is handed to the handler goroutine, which may touch it unlocked.
// It is only read by flush, after that goroutine has finished.
func (tw *timeoutWriter) Header() http.Header {
	return tw.header
}

func (tw *timeoutWriter) Write(b []byte) (int, error) {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.timedOut {
		return 0, http.ErrHandlerTimeout
	}
	if !tw.wroteHeader {
		tw.status = http.StatusOK
		tw.wroteHeader = true
	}
	tw.buf = append(tw.buf, b...)
	return len(b), nil
}

func (tw *timeoutWriter) WriteHeader(code int) {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.timedOut || tw.wroteHeader {
		return
	}
	tw.status = code
	tw.wroteHeader = true
}

// flush copies the buffered response to the client. Callers hold tw.mu.
func (tw *timeoutWriter) flush() {
	maps.Copy(tw.w.Header(), tw.header)
	if tw.wroteHeader {
		tw.w.WriteHeader(tw.status)
	}
	if len(tw.buf) > 0 {
		_, _ = tw.w.Write(tw.buf)
	}
}
