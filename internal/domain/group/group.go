package group

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/photostreak/streak-service/internal/domain"
	"github.com/photostreak/streak-service/internal/domain/calendar"
)

// MinMembers is the smallest member count a group may have. A departure that
// would leave fewer members deletes the group instead.
const MinMembers = 2

// Group is a set of users who share a daily posting streak.
type Group struct {
	ID        string
	Name      string
	Members   []string
	CreatedBy string
	CreatedAt time.Time
	PhotoURL  string
	Streak    Streak
}

// Validate checks business rules for the Group entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (g *Group) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(g.Name) == "" {
		fields["name"] = domain.MsgRequired
	}
	if strings.TrimSpace(g.CreatedBy) == "" {
		fields["created_by"] = domain.MsgRequired
	}
	switch {
	case len(g.Members) < MinMembers:
		fields["members"] = fmt.Sprintf("must contain at least %d users, got %d", MinMembers, len(g.Members))
	case hasDuplicates(g.Members):
		fields["members"] = "must not contain duplicates"
	case slices.Contains(g.Members, ""):
		fields["members"] = "must not contain empty user ids"
	case g.CreatedBy != "" && !slices.Contains(g.Members, g.CreatedBy):
		fields["members"] = "must include the creator"
	}
	if g.Streak.Current < 0 {
		fields["current_streak"] = fmt.Sprintf("must be non-negative, got %d", g.Streak.Current)
	}
	if g.Streak.LastRollover != "" && !calendar.Valid(g.Streak.LastRollover) {
		fields["last_rollover"] = fmt.Sprintf("invalid day: %q", g.Streak.LastRollover)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// HasMember reports whether userID belongs to the group.
func (g *Group) HasMember(userID string) bool {
	return slices.Contains(g.Members, userID)
}

// AllPosted reports whether every member appears in posters. A group with no
// members never counts as complete.
func (g *Group) AllPosted(posters map[string]bool) bool {
	if len(g.Members) == 0 {
		return false
	}
	for _, m := range g.Members {
		if !posters[m] {
			return false
		}
	}
	return true
}

// Without returns the member list minus userID, preserving order.
func (g *Group) Without(userID string) []string {
	out := make([]string, 0, len(g.Members))
	for _, m := range g.Members {
		if m != userID {
			out = append(out, m)
		}
	}
	return out
}

func hasDuplicates(ids []string) bool {
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return true
		}
		seen[id] = struct{}{}
	}
	return false
}
