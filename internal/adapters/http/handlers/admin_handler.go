package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/photostreak/streak-service/internal/adapters/http/dto"
	"github.com/photostreak/streak-service/internal/domain"
	"github.com/photostreak/streak-service/internal/platform/logging"
	"github.com/photostreak/streak-service/internal/ports"
)

// AdminHandler exposes operator actions.
type AdminHandler struct {
	reset ports.ResetService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(reset ports.ResetService) *AdminHandler {
	return &AdminHandler{reset: reset}
}

// RunReset handles POST /api/v1/admin/streak-reset. A run that finished with
// some failed groups answers 500 and lists them; the groups that succeeded
// stay rolled over. The run is detached from the request so a client
// disconnect cannot abandon groups mid-rollover; the reset job applies its
// own run timeout. The server write deadline is lifted so a long run can
// still report its result.
func (h *AdminHandler) RunReset(w http.ResponseWriter, r *http.Request) {
	_ = http.NewResponseController(w).SetWriteDeadline(time.Time{})

	res, err := h.reset.RunReset(context.WithoutCancel(r.Context()))
	if err != nil {
		if res != nil && errors.Is(err, domain.ErrPartialFailure) {
			logging.FromContext(r.Context()).WarnContext(r.Context(), "manual reset partially failed",
				slog.Int("failed", res.Failed),
				slog.Int("processed", res.ProcessedGroups),
			)
		}
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToResetResponse(res))
}
