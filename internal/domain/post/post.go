// Package post models the daily photo posts that feed group streaks.
package post

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/photostreak/streak-service/internal/domain"
	"github.com/photostreak/streak-service/internal/domain/calendar"
)

// Post is one member's photo for one group on one calendar day. Posts are
// immutable once recorded.
type Post struct {
	ID         string
	GroupID    string
	UserID     string
	Username   string
	ImageURL   string
	Caption    string
	Location   string
	Date       string
	UploadedAt time.Time
}

// Validate checks business rules for the Post entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (p *Post) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(p.GroupID) == "" {
		fields["group_id"] = domain.MsgRequired
	}
	if strings.TrimSpace(p.UserID) == "" {
		fields["user_id"] = domain.MsgRequired
	}
	if strings.TrimSpace(p.ImageURL) == "" {
		fields["image_url"] = domain.MsgRequired
	}
	switch {
	case p.Date == "":
		fields["date"] = domain.MsgRequired
	case !calendar.Valid(p.Date):
		fields["date"] = fmt.Sprintf("invalid day: %q", p.Date)
	}
	if p.UploadedAt.IsZero() {
		fields["uploaded_at"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Posters returns the set of users who authored posts.
func Posters(posts []Post) map[string]bool {
	out := make(map[string]bool, len(posts))
	for _, p := range posts {
		out[p.UserID] = true
	}
	return out
}

// SortNewestFirst orders posts by upload time, most recent first.
func SortNewestFirst(posts []Post) {
	slices.SortStableFunc(posts, func(a, b Post) int {
		return b.UploadedAt.Compare(a.UploadedAt)
	})
}
