package handlers

import (
	"net/http"
	"time"

	"github.com/photostreak/streak-service/internal/adapters/http/dto"
	"github.com/photostreak/streak-service/internal/domain/calendar"
	"github.com/photostreak/streak-service/internal/ports"
)

const (
	statusOK       = "ok"
	statusReady    = "ready"
	statusNotReady = "not_ready"
)

// HealthHandler handles liveness and readiness HTTP endpoints.
type HealthHandler struct {
	registry  ports.HealthRegistry
	calendar  *calendar.Calendar
	nextReset func() time.Time
}

// HealthOption customizes a HealthHandler.
type HealthOption func(*HealthHandler)

// WithCalendar makes liveness report the current streak day and zone, so a
// misconfigured time zone is visible without reading logs.
func WithCalendar(cal *calendar.Calendar) HealthOption {
	return func(h *HealthHandler) { h.calendar = cal }
}

// WithNextReset makes readiness report when the daily reset fires next.
// A zero time is omitted.
func WithNextReset(next func() time.Time) HealthOption {
	return func(h *HealthHandler) { h.nextReset = next }
}

// NewHealthHandler creates a new HealthHandler with the given health registry.
func NewHealthHandler(registry ports.HealthRegistry, opts ...HealthOption) *HealthHandler {
	h := &HealthHandler{registry: registry}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Liveness handles GET /health/live. Always returns 200 OK.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	resp := dto.LivenessResponse{Status: statusOK}
	if h.calendar != nil {
		resp.Day = h.calendar.Today()
		resp.TimeZone = h.calendar.Location().String()
	}
	writeJSON(w, http.StatusOK, resp)
}

// Readiness handles GET /health/ready. Returns 200 if the store, run lock and
// photo checks pass, 503 naming the failing ones otherwise.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	results := h.registry.CheckAll(r.Context())

	resp := dto.ReadinessResponse{
		Status: statusReady,
		Checks: make(map[string]string, len(results)),
	}
	code := http.StatusOK
	for name, err := range results {
		if err != nil {
			resp.Checks[name] = err.Error()
			resp.Status = statusNotReady
			code = http.StatusServiceUnavailable
			continue
		}
		resp.Checks[name] = statusOK
	}

	if h.nextReset != nil {
		if next := h.nextReset(); !next.IsZero() {
			resp.NextReset = &next
		}
	}

	writeJSON(w, code, resp)
}
