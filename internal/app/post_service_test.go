package app

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/photostreak/streak-service/internal/adapters/stores/memory"
	"github.com/photostreak/streak-service/internal/domain"
	"github.com/photostreak/streak-service/internal/domain/group"
	"github.com/photostreak/streak-service/internal/ports"
	"github.com/photostreak/streak-service/mocks"
)

func newPost(groupID, userID string) ports.NewPost {
	return ports.NewPost{
		GroupID:  groupID,
		UserID:   userID,
		Username: strings.ToUpper(userID),
		Caption:  "  summit!  ",
		Image:    bytes.NewReader([]byte("jpeg bytes")),
	}
}

func TestPhotoKey(t *testing.T) {
	t.Parallel()

	got := PhotoKey("g1", testToday, "alice", 1746172800000)
	want := "groupPhotos/g1/2026-05-02/alice_1746172800000.jpg"
	if got != want {
		t.Errorf("PhotoKey() = %q, want %q", got, want)
	}
}

func TestPostService_CreatePost_TwoMembersCreditOnce(t *testing.T) {
	t.Parallel()
	store := memory.New()
	photos := mocks.NewMockPhotoStore(t)
	cal, _ := newTestCalendar(t)
	streaks := NewStreakService(store, store, cal, discardLogger())
	svc := NewPostService(store, store, photos, streaks, cal, discardLogger())
	ctx := context.Background()

	seedGroup(t, store, "g1", group.Streak{Current: 4, LastRollover: testToday}, "alice", "bob")
	photos.EXPECT().PutPhoto(mock.Anything, mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "groupPhotos/g1/"+testToday+"/")
	}), mock.Anything).Return("/photos/x.jpg", nil).Times(3)

	first, err := svc.CreatePost(ctx, newPost("g1", "alice"))
	if err != nil {
		t.Fatalf("CreatePost(alice) error = %v", err)
	}
	if first.Streak == nil || first.Streak.Credited {
		t.Errorf("after alice: Streak = %+v, want evaluated without credit", first.Streak)
	}
	if first.Post.Caption != "summit!" || first.Post.Date != testToday || first.Post.ID == "" {
		t.Errorf("post = %+v", first.Post)
	}

	second, err := svc.CreatePost(ctx, newPost("g1", "bob"))
	if err != nil {
		t.Fatalf("CreatePost(bob) error = %v", err)
	}
	if second.Streak == nil || !second.Streak.Credited || second.Streak.Group.Streak.Current != 5 {
		t.Errorf("after bob: Streak = %+v, want credited to 5", second.Streak)
	}

	// A second photo from alice the same day changes nothing.
	third, err := svc.CreatePost(ctx, newPost("g1", "alice"))
	if err != nil {
		t.Fatalf("CreatePost(alice again) error = %v", err)
	}
	if third.Streak.Credited {
		t.Error("repeat post credited the day again")
	}
	if got := mustGroup(t, store, "g1").Streak.Current; got != 5 {
		t.Errorf("Current = %d, want 5", got)
	}
}

func TestPostService_CreatePost_NonMemberStoresNothing(t *testing.T) {
	t.Parallel()
	store := memory.New()
	photos := mocks.NewMockPhotoStore(t)
	streaks := mocks.NewMockStreakService(t)
	cal, _ := newTestCalendar(t)
	svc := NewPostService(store, store, photos, streaks, cal, discardLogger())

	seedGroup(t, store, "g1", group.Streak{LastRollover: testToday}, "alice", "bob")

	_, err := svc.CreatePost(context.Background(), newPost("g1", "mallory"))
	if !errors.Is(err, domain.ErrNotAMember) {
		t.Errorf("CreatePost() error = %v, want ErrNotAMember", err)
	}
	posts, _ := store.ListPostsForGroupOnDate(context.Background(), "g1", testToday)
	if len(posts) != 0 {
		t.Errorf("ledger has %d posts, want 0", len(posts))
	}
}

func TestPostService_CreatePost_StreakFailureKeepsPost(t *testing.T) {
	t.Parallel()
	store := memory.New()
	photos := mocks.NewMockPhotoStore(t)
	streaks := mocks.NewMockStreakService(t)
	cal, _ := newTestCalendar(t)
	svc := NewPostService(store, store, photos, streaks, cal, discardLogger())

	seedGroup(t, store, "g1", group.Streak{LastRollover: testToday}, "alice", "bob")
	photos.EXPECT().PutPhoto(mock.Anything, mock.Anything, mock.Anything).Return("/photos/a.jpg", nil)
	streaks.EXPECT().EvaluateDay(mock.Anything, "g1", "alice", testToday).Return(nil, domain.ErrUnavailable)

	res, err := svc.CreatePost(context.Background(), newPost("g1", "alice"))
	if err != nil {
		t.Fatalf("CreatePost() error = %v, want nil", err)
	}
	if !errors.Is(res.StreakErr, domain.ErrUnavailable) {
		t.Errorf("StreakErr = %v, want ErrUnavailable", res.StreakErr)
	}
	posts, _ := store.ListPostsForGroupOnDate(context.Background(), "g1", testToday)
	if len(posts) != 1 {
		t.Errorf("ledger has %d posts, want 1", len(posts))
	}
}

func TestPostService_CreatePost_Errors(t *testing.T) {
	t.Parallel()

	t.Run("missing image is a validation error", func(t *testing.T) {
		t.Parallel()
		store := memory.New()
		cal, _ := newTestCalendar(t)
		svc := NewPostService(store, store, mocks.NewMockPhotoStore(t), mocks.NewMockStreakService(t), cal, discardLogger())

		in := newPost("g1", "alice")
		in.Image = nil
		_, err := svc.CreatePost(context.Background(), in)

		var verr *domain.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("CreatePost() error = %v, want *ValidationError", err)
		}
		if _, ok := verr.Fields["image"]; !ok {
			t.Errorf("Fields = %v, want image", verr.Fields)
		}
	})

	t.Run("photo store failure aborts the post", func(t *testing.T) {
		t.Parallel()
		store := memory.New()
		photos := mocks.NewMockPhotoStore(t)
		cal, _ := newTestCalendar(t)
		svc := NewPostService(store, store, photos, mocks.NewMockStreakService(t), cal, discardLogger())
		seedGroup(t, store, "g1", group.Streak{LastRollover: testToday}, "alice", "bob")

		photos.EXPECT().PutPhoto(mock.Anything, mock.Anything, mock.Anything).Return("", domain.ErrUnavailable)

		_, err := svc.CreatePost(context.Background(), newPost("g1", "alice"))
		if !errors.Is(err, domain.ErrUnavailable) {
			t.Errorf("CreatePost() error = %v, want ErrUnavailable", err)
		}
		posts, _ := store.ListPostsForGroupOnDate(context.Background(), "g1", testToday)
		if len(posts) != 0 {
			t.Errorf("ledger has %d posts, want 0", len(posts))
		}
	})

	t.Run("ledger failure is returned", func(t *testing.T) {
		t.Parallel()
		store := memory.New()
		ledger := mocks.NewMockPostLedger(t)
		photos := mocks.NewMockPhotoStore(t)
		cal, _ := newTestCalendar(t)
		svc := NewPostService(store, ledger, photos, mocks.NewMockStreakService(t), cal, discardLogger())
		seedGroup(t, store, "g1", group.Streak{LastRollover: testToday}, "alice", "bob")

		var stored string
		photos.EXPECT().PutPhoto(mock.Anything, mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, key string, _ io.Reader) (string, error) {
				stored = key
				return "/photos/a.jpg", nil
			})
		ledger.EXPECT().RecordPost(mock.Anything, mock.Anything).Return(nil, domain.ErrUnavailable)
		photos.EXPECT().DeletePhoto(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, key string) error {
				if key != stored {
					t.Errorf("DeletePhoto(%q), want the stored key %q", key, stored)
				}
				return nil
			}).Once()

		_, err := svc.CreatePost(context.Background(), newPost("g1", "alice"))
		if !errors.Is(err, domain.ErrUnavailable) {
			t.Errorf("CreatePost() error = %v, want ErrUnavailable", err)
		}
	})

	t.Run("rejected post removes its photo", func(t *testing.T) {
		t.Parallel()
		store := memory.New()
		photos := mocks.NewMockPhotoStore(t)
		cal, _ := newTestCalendar(t)
		svc := NewPostService(store, store, photos, mocks.NewMockStreakService(t), cal, discardLogger())
		seedGroup(t, store, "g1", group.Streak{LastRollover: testToday}, "alice", "bob")

		// A store that hands back no URL leaves the post unusable.
		photos.EXPECT().PutPhoto(mock.Anything, mock.Anything, mock.Anything).Return("", nil)
		photos.EXPECT().DeletePhoto(mock.Anything, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "groupPhotos/g1/"+testToday+"/alice_")
		})).Return(nil).Once()

		_, err := svc.CreatePost(context.Background(), newPost("g1", "alice"))
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("CreatePost() error = %v, want ErrValidation", err)
		}
		posts, _ := store.ListPostsForGroupOnDate(context.Background(), "g1", testToday)
		if len(posts) != 0 {
			t.Errorf("ledger has %d posts, want 0", len(posts))
		}
	})

	t.Run("cleanup failure keeps the original error", func(t *testing.T) {
		t.Parallel()
		store := memory.New()
		ledger := mocks.NewMockPostLedger(t)
		photos := mocks.NewMockPhotoStore(t)
		cal, _ := newTestCalendar(t)
		svc := NewPostService(store, ledger, photos, mocks.NewMockStreakService(t), cal, discardLogger())
		seedGroup(t, store, "g1", group.Streak{LastRollover: testToday}, "alice", "bob")

		photos.EXPECT().PutPhoto(mock.Anything, mock.Anything, mock.Anything).Return("/photos/a.jpg", nil)
		ledger.EXPECT().RecordPost(mock.Anything, mock.Anything).Return(nil, domain.ErrConflict)
		photos.EXPECT().DeletePhoto(mock.Anything, mock.Anything).Return(errors.New("disk gone"))

		_, err := svc.CreatePost(context.Background(), newPost("g1", "alice"))
		if !errors.Is(err, domain.ErrConflict) {
			t.Errorf("CreatePost() error = %v, want ErrConflict", err)
		}
	})
}

func TestPostService_CreatePost_UploadSpanningMidnightCreditsPostDay(t *testing.T) {
	t.Parallel()
	store := memory.New()
	photos := mocks.NewMockPhotoStore(t)
	cal, clk := newTestCalendar(t)
	streaks := NewStreakService(store, store, cal, discardLogger())
	svc := NewPostService(store, store, photos, streaks, cal, discardLogger())
	ctx := context.Background()

	seedGroup(t, store, "g1", group.Streak{Current: 3, LastRollover: testToday}, "alice", "bob")
	seedPost(t, store, "g1", "bob", testToday)

	loc := cal.Location()
	clk.Set(time.Date(2026, 5, 2, 23, 59, 59, 500_000_000, loc))

	// Decoding and resizing the upload runs past midnight.
	photos.EXPECT().PutPhoto(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, string, io.Reader) (string, error) {
			clk.Set(time.Date(2026, 5, 3, 0, 0, 1, 0, loc))
			return "/photos/alice.jpg", nil
		})

	res, err := svc.CreatePost(ctx, newPost("g1", "alice"))
	if err != nil {
		t.Fatalf("CreatePost() error = %v", err)
	}
	if res.Post.Date != testToday {
		t.Errorf("post.Date = %q, want %q", res.Post.Date, testToday)
	}
	if res.StreakErr != nil || res.Streak == nil || !res.Streak.Credited {
		t.Fatalf("Streak = %+v, StreakErr = %v, want credited", res.Streak, res.StreakErr)
	}

	want := group.Streak{Current: 4, Today: true, LastRollover: testToday}
	if got := mustGroup(t, store, "g1").Streak; got != want {
		t.Errorf("streak = %+v, want %+v", got, want)
	}

	// The midnight reset then carries the credited day forward.
	out, err := NewResetJob(store, cal, discardLogger()).RunReset(ctx)
	if err != nil {
		t.Fatalf("RunReset() error = %v", err)
	}
	if out.StreaksMaintained != 1 {
		t.Errorf("RunReset() = %+v, want the streak maintained", *out)
	}
	if got := mustGroup(t, store, "g1").Streak.Current; got != 4 {
		t.Errorf("Current after reset = %d, want 4", got)
	}
}
