package middleware_test

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	"github.com/photostreak/streak-service/internal/adapters/http/middleware"
	"github.com/photostreak/streak-service/internal/ports"
	"github.com/photostreak/streak-service/mocks"
)

func testLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// logEntries decodes the JSON lines written by testLogger.
func logEntries(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var entries []map[string]any
	sc := bufio.NewScanner(bytes.NewReader(buf.Bytes()))
	for sc.Scan() {
		var e map[string]any
		if err := json.Unmarshal(sc.Bytes(), &e); err != nil {
			t.Fatalf("decoding log line %q: %v", sc.Text(), err)
		}
		entries = append(entries, e)
	}
	return entries
}

// findEntry returns the first log entry with the given message.
func findEntry(t *testing.T, buf *bytes.Buffer, msg string) map[string]any {
	t.Helper()
	for _, e := range logEntries(t, buf) {
		if e["msg"] == msg {
			return e
		}
	}
	t.Fatalf("no %q log entry in:\n%s", msg, buf.String())
	return nil
}

// trustingVerifier accepts "Bearer token-<user>" for any user.
func trustingVerifier(t *testing.T) *mocks.MockTokenVerifier {
	t.Helper()
	v := mocks.NewMockTokenVerifier(t)
	v.EXPECT().VerifyToken(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, token string) (*ports.Identity, error) {
			return &ports.Identity{UserID: strings.TrimPrefix(token, "token-")}, nil
		}).Maybe()
	return v
}

// streakRouter mounts handler on the group, post and admin routes the way
// the service router does: global middleware first, then authentication
// inside /api/v1.
func streakRouter(t *testing.T, handler http.HandlerFunc, global ...func(http.Handler) http.Handler) http.Handler {
	t.Helper()
	r := chi.NewRouter()
	for _, mw := range global {
		r.Use(mw)
	}
	r.Get("/health/live", handler)
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Authenticate(trustingVerifier(t)))
		r.Get("/groups/{groupId}", handler)
		r.Post("/groups/{groupId}/posts", handler)
		r.Post("/groups/{groupId}/streak/evaluate", handler)
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin([]string{"ops"}))
			r.Post("/admin/streak-reset", handler)
		})
	})
	return r
}

// userRequest builds a request authenticated as userID.
func userRequest(method, target, userID string) *http.Request {
	req := httptest.NewRequest(method, target, http.NoBody)
	req.Header.Set("Authorization", "Bearer token-"+userID)
	return req
}
