package firestore

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/photostreak/streak-service/internal/domain"
	"github.com/photostreak/streak-service/internal/domain/group"
	"github.com/photostreak/streak-service/internal/domain/post"
)

func TestGroupRoundTrip(t *testing.T) {
	t.Parallel()

	in := group.Group{
		ID:        "g1",
		Name:      "crew",
		Members:   []string{"a", "b"},
		CreatedBy: "a",
		CreatedAt: time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC),
		PhotoURL:  "/photos/g1.jpg",
		Streak:    group.Streak{Current: 12, Today: true, LastRollover: "2026-05-01"},
	}

	d := fromGroup(&in)
	assert.Equal(t, int64(12), d.CurrentStreak)
	assert.True(t, d.TodayStreak)

	// The document must not alias the caller's member slice.
	in.Members[0] = "mallory"
	assert.Equal(t, []string{"a", "b"}, d.Members)

	out := toGroup("g1", d)
	assert.Equal(t, "g1", out.ID)
	assert.Equal(t, in.Streak, out.Streak)
	assert.Equal(t, in.CreatedAt, out.CreatedAt)
}

func TestPostRoundTrip(t *testing.T) {
	t.Parallel()

	in := post.Post{
		GroupID: "g1", UserID: "a", Username: "Ana", ImageURL: "/photos/x.jpg",
		Caption: "hi", Location: "Skopje", Date: "2026-05-02",
		UploadedAt: time.Date(2026, 5, 2, 7, 0, 0, 0, time.UTC),
	}

	out := toPost("p1", fromPost(&in))
	in.ID = "p1"
	assert.Equal(t, in, out)
}

func TestUpdatesFor(t *testing.T) {
	t.Parallel()

	assert.Empty(t, updatesFor(group.Update{}))

	s := group.Streak{Current: 2, Today: true, LastRollover: "2026-05-02"}
	updates := updatesFor(group.Update{Streak: &s, RemoveMember: "b"})

	paths := make([]string, 0, len(updates))
	for _, u := range updates {
		paths = append(paths, u.Path)
	}
	assert.ElementsMatch(t, []string{fieldCurrentStreak, fieldTodayStreak, fieldLastRollover, fieldMembers}, paths)

	// ExpectStreak alone is a precondition, not a write.
	assert.Empty(t, updatesFor(group.Update{ExpectStreak: &s}))
}

func TestTranslate(t *testing.T) {
	t.Parallel()

	plain := errors.New("boom")

	tests := []struct {
		name string
		in   error
		want error
	}{
		{name: "not found", in: status.Error(codes.NotFound, "no doc"), want: domain.ErrNotFound},
		{name: "already exists", in: status.Error(codes.AlreadyExists, "dup"), want: domain.ErrConflict},
		{name: "aborted", in: status.Error(codes.Aborted, "contention"), want: domain.ErrConflict},
		{name: "unavailable", in: status.Error(codes.Unavailable, "down"), want: domain.ErrUnavailable},
		{name: "deadline", in: status.Error(codes.DeadlineExceeded, "slow"), want: domain.ErrUnavailable},
		{name: "quota", in: status.Error(codes.ResourceExhausted, "quota"), want: domain.ErrUnavailable},
		{name: "plain", in: plain, want: plain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.ErrorIs(t, translate(tt.in), tt.want)
		})
	}

	assert.NoError(t, translate(nil))
}
