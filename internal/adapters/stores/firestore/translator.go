package firestore

import (
	"fmt"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/photostreak/streak-service/internal/domain"
	"github.com/photostreak/streak-service/internal/domain/group"
	"github.com/photostreak/streak-service/internal/domain/post"
)

// Document field paths used in queries and partial updates.
const (
	fieldMembers       = "members"
	fieldCurrentStreak = "currentStreak"
	fieldTodayStreak   = "todayStreak"
	fieldLastRollover  = "lastRolloverDay"
	fieldGroupID       = "groupId"
	fieldDate          = "date"
)

// groupDoc is the stored shape of a group document.
type groupDoc struct {
	Name          string    `firestore:"name"`
	CreatedBy     string    `firestore:"createdBy"`
	CreatedAt     time.Time `firestore:"createdAt"`
	Members       []string  `firestore:"members"`
	PhotoURL      string    `firestore:"groupPhotoURL"`
	CurrentStreak int64     `firestore:"currentStreak"`
	TodayStreak   bool      `firestore:"todayStreak"`
	LastRollover  string    `firestore:"lastRolloverDay"`
}

// postDoc is the stored shape of a ledger entry.
type postDoc struct {
	GroupID    string    `firestore:"groupId"`
	UserID     string    `firestore:"userId"`
	Username   string    `firestore:"username"`
	ImageURL   string    `firestore:"imageUrl"`
	Caption    string    `firestore:"caption"`
	Location   string    `firestore:"location"`
	Date       string    `firestore:"date"`
	UploadedAt time.Time `firestore:"uploadedAt"`
}

func fromGroup(g *group.Group) groupDoc {
	return groupDoc{
		Name:          g.Name,
		CreatedBy:     g.CreatedBy,
		CreatedAt:     g.CreatedAt,
		Members:       append([]string(nil), g.Members...),
		PhotoURL:      g.PhotoURL,
		CurrentStreak: int64(g.Streak.Current),
		TodayStreak:   g.Streak.Today,
		LastRollover:  g.Streak.LastRollover,
	}
}

func toGroup(id string, d groupDoc) group.Group {
	return group.Group{
		ID:        id,
		Name:      d.Name,
		Members:   d.Members,
		CreatedBy: d.CreatedBy,
		CreatedAt: d.CreatedAt,
		PhotoURL:  d.PhotoURL,
		Streak: group.Streak{
			Current:      int(d.CurrentStreak),
			Today:        d.TodayStreak,
			LastRollover: d.LastRollover,
		},
	}
}

func fromPost(p *post.Post) postDoc {
	return postDoc{
		GroupID:    p.GroupID,
		UserID:     p.UserID,
		Username:   p.Username,
		ImageURL:   p.ImageURL,
		Caption:    p.Caption,
		Location:   p.Location,
		Date:       p.Date,
		UploadedAt: p.UploadedAt,
	}
}

func toPost(id string, d postDoc) post.Post {
	return post.Post{
		ID:         id,
		GroupID:    d.GroupID,
		UserID:     d.UserID,
		Username:   d.Username,
		ImageURL:   d.ImageURL,
		Caption:    d.Caption,
		Location:   d.Location,
		Date:       d.Date,
		UploadedAt: d.UploadedAt,
	}
}

// translate maps gRPC status codes onto domain sentinels. Errors without a
// recognized status are returned unchanged.
func translate(err error) error {
	if err == nil {
		return nil
	}

	switch status.Code(err) {
	case codes.NotFound:
		return domain.ErrNotFound
	case codes.AlreadyExists, codes.Aborted:
		return fmt.Errorf("%w: %w", domain.ErrConflict, err)
	case codes.Unavailable, codes.DeadlineExceeded, codes.ResourceExhausted:
		return fmt.Errorf("%w: %w", domain.ErrUnavailable, err)
	default:
		return err
	}
}
