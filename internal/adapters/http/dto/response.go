// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/photostreak/streak-service/internal/domain/group"
	"github.com/photostreak/streak-service/internal/domain/post"
	"github.com/photostreak/streak-service/internal/ports"
)

// GroupResponse represents a single group and its streak in HTTP responses.
type GroupResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Members         []string `json:"members"`
	CreatedBy       string   `json:"created_by"`
	CreatedAt       string   `json:"created_at"`
	PhotoURL        string   `json:"group_photo_url,omitempty"`
	CurrentStreak   int      `json:"current_streak"`
	TodayStreak     bool     `json:"today_streak"`
	LastRolloverDay string   `json:"last_rollover_day,omitempty"`
}

// ToGroupResponse converts a domain Group to an HTTP response DTO.
func ToGroupResponse(g *group.Group) GroupResponse {
	members := g.Members
	if members == nil {
		members = []string{}
	}
	return GroupResponse{
		ID:              g.ID,
		Name:            g.Name,
		Members:         members,
		CreatedBy:       g.CreatedBy,
		CreatedAt:       g.CreatedAt.Format(time.RFC3339),
		PhotoURL:        g.PhotoURL,
		CurrentStreak:   g.Streak.Current,
		TodayStreak:     g.Streak.Today,
		LastRolloverDay: g.Streak.LastRollover,
	}
}

// LeaderboardResponse lists groups with a live streak, longest first.
type LeaderboardResponse struct {
	Groups []LeaderboardEntry `json:"groups"`
	Count  int                `json:"count"`
}

// LeaderboardEntry is one ranked group. Groups with equal streaks share a rank.
type LeaderboardEntry struct {
	Rank int `json:"rank"`
	GroupResponse
}

// ToLeaderboardResponse converts an already ordered slice of groups.
func ToLeaderboardResponse(groups []group.Group) LeaderboardResponse {
	items := make([]LeaderboardEntry, len(groups))
	for i := range groups {
		rank := i + 1
		if i > 0 && groups[i].Streak.Current == groups[i-1].Streak.Current {
			rank = items[i-1].Rank
		}
		items[i] = LeaderboardEntry{Rank: rank, GroupResponse: ToGroupResponse(&groups[i])}
	}
	return LeaderboardResponse{Groups: items, Count: len(items)}
}

// PostResponse represents a single daily photo post.
type PostResponse struct {
	ID         string `json:"id"`
	GroupID    string `json:"group_id"`
	UserID     string `json:"user_id"`
	Username   string `json:"username,omitempty"`
	ImageURL   string `json:"image_url"`
	Caption    string `json:"caption,omitempty"`
	Location   string `json:"location,omitempty"`
	Date       string `json:"date"`
	UploadedAt string `json:"uploaded_at"`
}

// ToPostResponse converts a domain Post to an HTTP response DTO.
func ToPostResponse(p *post.Post) PostResponse {
	return PostResponse{
		ID:         p.ID,
		GroupID:    p.GroupID,
		UserID:     p.UserID,
		Username:   p.Username,
		ImageURL:   p.ImageURL,
		Caption:    p.Caption,
		Location:   p.Location,
		Date:       p.Date,
		UploadedAt: p.UploadedAt.Format(time.RFC3339),
	}
}

// MemberStatus reports whether one member has posted today.
type MemberStatus struct {
	UserID string `json:"user_id"`
	Posted bool   `json:"posted"`
}

// TodayResponse is the per-day view of a group.
type TodayResponse struct {
	Group     GroupResponse  `json:"group"`
	Date      string         `json:"date"`
	AllPosted bool           `json:"all_posted"`
	Members   []MemberStatus `json:"members"`
	Posts     []PostResponse `json:"posts"`
}

// ToTodayResponse converts the today read model. Members keep group order.
func ToTodayResponse(s *ports.TodayStatus) TodayResponse {
	members := make([]MemberStatus, len(s.Group.Members))
	for i, m := range s.Group.Members {
		members[i] = MemberStatus{UserID: m, Posted: s.Posted[m]}
	}
	posts := make([]PostResponse, len(s.Posts))
	for i := range s.Posts {
		posts[i] = ToPostResponse(&s.Posts[i])
	}
	return TodayResponse{
		Group:     ToGroupResponse(&s.Group),
		Date:      s.Date,
		AllPosted: s.Group.AllPosted(s.Posted),
		Members:   members,
		Posts:     posts,
	}
}

// EvaluateResponse reports the outcome of a streak evaluation.
type EvaluateResponse struct {
	Group      GroupResponse `json:"group"`
	AllPosted  bool          `json:"all_posted"`
	Credited   bool          `json:"credited"`
	RolledOver bool          `json:"rolled_over"`
}

// ToEvaluateResponse converts an evaluation result.
func ToEvaluateResponse(r *ports.EvaluateResult) EvaluateResponse {
	return EvaluateResponse{
		Group:      ToGroupResponse(&r.Group),
		AllPosted:  r.AllPosted,
		Credited:   r.Credited,
		RolledOver: r.RolledOver,
	}
}

// CreatePostResponse is returned by the post upload. StreakError is set when
// the post was stored but the evaluation that follows it failed.
type CreatePostResponse struct {
	Post        PostResponse      `json:"post"`
	Streak      *EvaluateResponse `json:"streak,omitempty"`
	StreakError string            `json:"streak_error,omitempty"`
}

// ToCreatePostResponse converts a post result.
func ToCreatePostResponse(r *ports.PostResult) CreatePostResponse {
	resp := CreatePostResponse{Post: ToPostResponse(&r.Post)}
	if r.Streak != nil {
		ev := ToEvaluateResponse(r.Streak)
		resp.Streak = &ev
	}
	if r.StreakErr != nil {
		resp.StreakError = r.StreakErr.Error()
	}
	return resp
}

// LeaveResponse reports the outcome of leaving a group.
type LeaveResponse struct {
	Deleted     bool           `json:"deleted"`
	Group       *GroupResponse `json:"group,omitempty"`
	Credited    bool           `json:"credited"`
	StreakError string         `json:"streak_error,omitempty"`
}

// ToLeaveResponse converts a leave result.
func ToLeaveResponse(r *ports.LeaveResult) LeaveResponse {
	resp := LeaveResponse{Deleted: r.Deleted, Credited: r.Credited}
	if r.Group != nil {
		g := ToGroupResponse(r.Group)
		resp.Group = &g
	}
	if r.StreakErr != nil {
		resp.StreakError = r.StreakErr.Error()
	}
	return resp
}

// ResetResponse summarizes a reset run.
type ResetResponse struct {
	Day               string `json:"day"`
	ProcessedGroups   int    `json:"processed_groups"`
	StreaksMaintained int    `json:"streaks_maintained"`
	StreaksReset      int    `json:"streaks_reset"`
	Skipped           int    `json:"skipped"`
	Failed            int    `json:"failed"`
}

// ToResetResponse converts a reset result.
func ToResetResponse(r *ports.ResetResult) ResetResponse {
	return ResetResponse{
		Day:               r.Day,
		ProcessedGroups:   r.ProcessedGroups,
		StreaksMaintained: r.StreaksMaintained,
		StreaksReset:      r.StreaksReset,
		Skipped:           r.Skipped,
		Failed:            r.Failed,
	}
}

// LivenessResponse reports that the process is up and which streak day it
// is serving.
type LivenessResponse struct {
	Status   string `json:"status"`
	Day      string `json:"day,omitempty"`
	TimeZone string `json:"time_zone,omitempty"`
}

// ReadinessResponse reports dependency checks and the next scheduled reset.
type ReadinessResponse struct {
	Status    string            `json:"status"`
	Checks    map[string]string `json:"checks"`
	NextReset *time.Time        `json:"next_reset,omitempty"`
}
