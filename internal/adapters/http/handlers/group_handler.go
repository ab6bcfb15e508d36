package handlers

import (
	"net/http"

	"github.com/photostreak/streak-service/internal/adapters/http/dto"
	"github.com/photostreak/streak-service/internal/adapters/http/middleware"
	"github.com/photostreak/streak-service/internal/domain"
	"github.com/photostreak/streak-service/internal/ports"
)

// GroupHandler handles HTTP requests for groups and their streaks.
type GroupHandler struct {
	groups  ports.GroupService
	streaks ports.StreakService
}

// NewGroupHandler creates a new GroupHandler with the given service ports.
func NewGroupHandler(groups ports.GroupService, streaks ports.StreakService) *GroupHandler {
	return &GroupHandler{groups: groups, streaks: streaks}
}

// CreateGroup handles POST /api/v1/groups.
func (h *GroupHandler) CreateGroup(w http.ResponseWriter, r *http.Request) {
	caller := middleware.IdentityFromContext(r.Context())
	if caller == nil {
		dto.WriteErrorResponse(w, r, domain.ErrUnauthenticated)
		return
	}

	var req dto.CreateGroupRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.groups.CreateGroup(r.Context(), req.ToGroup(caller.UserID))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToGroupResponse(created))
}

// GetGroup handles GET /api/v1/groups/{groupId}. Only members may read a group.
func (h *GroupHandler) GetGroup(w http.ResponseWriter, r *http.Request) {
	caller, groupID, ok := callerAndGroup(w, r)
	if !ok {
		return
	}

	g, err := h.groups.GetGroup(r.Context(), groupID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	if !g.HasMember(caller.UserID) {
		dto.WriteErrorResponse(w, r, domain.ErrNotAMember)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToGroupResponse(g))
}

// TodayStatus handles GET /api/v1/groups/{groupId}/today.
func (h *GroupHandler) TodayStatus(w http.ResponseWriter, r *http.Request) {
	caller, groupID, ok := callerAndGroup(w, r)
	if !ok {
		return
	}

	status, err := h.groups.TodayStatus(r.Context(), groupID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	if !status.Group.HasMember(caller.UserID) {
		dto.WriteErrorResponse(w, r, domain.ErrNotAMember)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTodayResponse(status))
}

// Evaluate handles POST /api/v1/groups/{groupId}/streak/evaluate.
func (h *GroupHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	caller, groupID, ok := callerAndGroup(w, r)
	if !ok {
		return
	}

	res, err := h.streaks.Evaluate(r.Context(), groupID, caller.UserID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToEvaluateResponse(res))
}

// Leave handles DELETE /api/v1/groups/{groupId}/members/me.
func (h *GroupHandler) Leave(w http.ResponseWriter, r *http.Request) {
	caller, groupID, ok := callerAndGroup(w, r)
	if !ok {
		return
	}

	res, err := h.streaks.Leave(r.Context(), groupID, caller.UserID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToLeaveResponse(res))
}

// Leaderboard handles GET /api/v1/leaderboard.
func (h *GroupHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	groups, err := h.groups.Leaderboard(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToLeaderboardResponse(groups))
}
