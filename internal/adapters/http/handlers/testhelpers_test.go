package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/photostreak/streak-service/internal/adapters/http/middleware"
	"github.com/photostreak/streak-service/internal/domain/group"
	"github.com/photostreak/streak-service/internal/domain/post"
	"github.com/photostreak/streak-service/internal/ports"
)

var testTime = time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// asUser attaches an authenticated identity, as Authenticate would.
func asUser(r *http.Request, userID string) *http.Request {
	return r.WithContext(middleware.WithIdentity(r.Context(), &ports.Identity{UserID: userID, Name: "name-" + userID}))
}

// groupRequest builds a request for a {groupId} route made by userID.
func groupRequest(method, target, groupID, userID string, body *bytes.Buffer) *http.Request {
	var req *http.Request
	if body == nil {
		req = httptest.NewRequest(method, target, http.NoBody)
	} else {
		req = httptest.NewRequest(method, target, body)
	}
	req = withChiParams(req, map[string]string{"groupId": groupID})
	if userID != "" {
		req = asUser(req, userID)
	}
	return req
}

func validGroup() group.Group {
	return group.Group{
		ID:        "g1",
		Name:      "Morning walks",
		Members:   []string{"u1", "u2"},
		CreatedBy: "u1",
		CreatedAt: testTime,
		Streak:    group.Streak{Current: 3, LastRollover: "2026-10-17"},
	}
}

func validPost() post.Post {
	return post.Post{
		ID:         "p1",
		GroupID:    "g1",
		UserID:     "u1",
		Username:   "name-u1",
		ImageURL:   "/photos/groupPhotos/g1/2026-10-17/u1_1.jpg",
		Date:       "2026-10-17",
		UploadedAt: testTime,
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
