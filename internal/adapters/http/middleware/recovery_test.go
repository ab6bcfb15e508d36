package middleware_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/photostreak/streak-service/internal/adapters/http/dto"
	"github.com/photostreak/streak-service/internal/adapters/http/middleware"
)

func TestRecovery_PassesThroughWithoutPanic(t *testing.T) {
	t.Parallel()

	router := streakRouter(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"credited":true}`))
	}, middleware.Recovery(discardLogger()))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, userRequest(http.MethodPost, "/api/v1/groups/g1/posts", "alice"))

	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusCreated)
	}
	if rec.Body.String() != `{"credited":true}` {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestRecovery_PanicBecomesProblemResponse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
	}{
		{name: "string panic", value: "streak state corrupt"},
		{name: "error panic", value: http.ErrNoCookie},
		{name: "int panic", value: 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			router := streakRouter(t, func(http.ResponseWriter, *http.Request) {
				panic(tt.value)
			}, middleware.Recovery(discardLogger()))

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, userRequest(http.MethodPost, "/api/v1/groups/g1/streak/evaluate", "alice"))

			if rec.Code != http.StatusInternalServerError {
				t.Fatalf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
				t.Errorf("Content-Type = %q, want application/problem+json", ct)
			}
			resp := decodeProblem(t, rec)
			if resp.Title != "Internal Server Error" || resp.Detail != "" {
				t.Errorf("problem = %+v, want a bare 500", resp)
			}
		})
	}
}

func TestRecovery_LogsRouteGroupAndCaller(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	router := streakRouter(t, func(http.ResponseWriter, *http.Request) {
		panic("streak state corrupt")
	}, middleware.Recovery(testLogger(&buf)), middleware.RequestID())

	req := userRequest(http.MethodPost, "/api/v1/groups/g42/streak/evaluate", "alice")
	req.Header.Set("X-Request-ID", "req-7")
	router.ServeHTTP(httptest.NewRecorder(), req)

	entry := findEntry(t, &buf, "panic recovered")
	want := map[string]string{
		"panic":      "streak state corrupt",
		"route":      "/api/v1/groups/{groupId}/streak/evaluate",
		"group_id":   "g42",
		"user_id":    "alice",
		"request_id": "req-7",
	}
	for k, v := range want {
		if entry[k] != v {
			t.Errorf("%s = %v, want %q", k, entry[k], v)
		}
	}
	if stack, _ := entry["stack"].(string); !strings.Contains(stack, "goroutine") {
		t.Error("log entry missing stack trace")
	}
}

func TestRecovery_KeepsResponseAlreadyStarted(t *testing.T) {
	t.Parallel()

	router := streakRouter(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte("partial"))
		panic("late panic")
	}, middleware.Recovery(discardLogger()))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, userRequest(http.MethodGet, "/api/v1/groups/g1", "alice"))

	if rec.Code != http.StatusAccepted {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusAccepted)
	}
	if rec.Body.String() != "partial" {
		t.Errorf("body = %q, want only the partial write", rec.Body.String())
	}
}

func TestRecovery_CatchesPanicBehindTimeout(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	router := streakRouter(t, func(http.ResponseWriter, *http.Request) {
		panic("upload handler blew up")
	}, middleware.Recovery(testLogger(&buf)), middleware.Timeout(time.Second))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, userRequest(http.MethodPost, "/api/v1/groups/g1/posts", "alice"))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
	if entry := findEntry(t, &buf, "panic recovered"); entry["panic"] != "upload handler blew up" {
		t.Errorf("panic = %v", entry["panic"])
	}
}

func TestRecovery_ReraisesAbortHandler(t *testing.T) {
	t.Parallel()

	handler := middleware.Recovery(discardLogger())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	defer func() {
		if v := recover(); v != http.ErrAbortHandler {
			t.Errorf("recovered %v, want http.ErrAbortHandler", v)
		}
	}()
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health/live", http.NoBody))
}

func decodeProblem(t *testing.T, rec *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding problem response: %v", err)
	}
	return resp
}
