package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/photostreak/streak-service/internal/adapters/http/middleware"
)

func TestRequestIDs_UploadRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		reqID      string
		corrID     string
		wantReqID  string // "" means a generated UUID
		wantCorrID string // "" means the request ID
	}{
		{name: "client IDs kept", reqID: "req-123", corrID: "upload-7f3a", wantReqID: "req-123", wantCorrID: "upload-7f3a"},
		{name: "missing IDs generated", wantReqID: "", wantCorrID: ""},
		{name: "correlation falls back to request", reqID: "req-9", wantReqID: "req-9", wantCorrID: ""},
		{name: "request ID with spaces replaced", reqID: "req 1\tinjected", corrID: "upload-1", wantCorrID: "upload-1"},
		{name: "oversized correlation ID replaced", reqID: "req-2", corrID: strings.Repeat("c", 129), wantReqID: "req-2"},
		{name: "non-ascii correlation ID replaced", reqID: "req-3", corrID: "upload-é", wantReqID: "req-3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotReq, gotCorr string
			router := streakRouter(t, func(w http.ResponseWriter, r *http.Request) {
				gotReq = middleware.RequestIDFromContext(r.Context())
				gotCorr = middleware.CorrelationIDFromContext(r.Context())
				w.WriteHeader(http.StatusCreated)
			}, middleware.RequestID(), middleware.CorrelationID())

			req := userRequest(http.MethodPost, "/api/v1/groups/g1/posts", "alice")
			if tt.reqID != "" {
				req.Header.Set("X-Request-ID", tt.reqID)
			}
			if tt.corrID != "" {
				req.Header.Set("X-Correlation-ID", tt.corrID)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if tt.wantReqID != "" {
				if gotReq != tt.wantReqID {
					t.Errorf("request ID = %q, want %q", gotReq, tt.wantReqID)
				}
			} else if _, err := uuid.Parse(gotReq); err != nil {
				t.Errorf("request ID = %q, want a generated UUID", gotReq)
			}

			wantCorr := tt.wantCorrID
			if wantCorr == "" {
				wantCorr = gotReq
			}
			if gotCorr != wantCorr {
				t.Errorf("correlation ID = %q, want %q", gotCorr, wantCorr)
			}

			if got := rec.Header().Get("X-Request-ID"); got != gotReq {
				t.Errorf("response X-Request-ID = %q, want %q", got, gotReq)
			}
			if got := rec.Header().Get("X-Correlation-ID"); got != gotCorr {
				t.Errorf("response X-Correlation-ID = %q, want %q", got, gotCorr)
			}
		})
	}
}

func TestRequestID_EchoedOnRejectedRequest(t *testing.T) {
	t.Parallel()

	router := streakRouter(t, func(http.ResponseWriter, *http.Request) {
		t.Error("handler should not be called")
	}, middleware.RequestID(), middleware.CorrelationID())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/groups/g1/posts", http.NoBody))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("401 response missing X-Request-ID")
	}
}

func TestRequestID_UniquePerRequest(t *testing.T) {
	t.Parallel()

	router := streakRouter(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}, middleware.RequestID())

	ids := make(map[string]struct{})
	for range 100 {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/live", http.NoBody))
		ids[rec.Header().Get("X-Request-ID")] = struct{}{}
	}
	if len(ids) != 100 {
		t.Errorf("unique IDs = %d, want 100", len(ids))
	}
}

func TestIDsFromContext_Empty(t *testing.T) {
	t.Parallel()

	ctx := httptest.NewRequest(http.MethodGet, "/", http.NoBody).Context()
	if id := middleware.RequestIDFromContext(ctx); id != "" {
		t.Errorf("RequestIDFromContext = %q, want empty", id)
	}
	if id := middleware.CorrelationIDFromContext(ctx); id != "" {
		t.Errorf("CorrelationIDFromContext = %q, want empty", id)
	}
}
