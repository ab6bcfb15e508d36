package app

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/photostreak/streak-service/internal/adapters/stores/memory"
	"github.com/photostreak/streak-service/internal/domain/calendar"
	"github.com/photostreak/streak-service/internal/domain/group"
	"github.com/photostreak/streak-service/internal/domain/post"
	"github.com/photostreak/streak-service/internal/ports"
)

const (
	testZone  = "Europe/Skopje"
	testToday = "2026-05-02"
	yesterday = "2026-05-01"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// fakeClock is a settable time source shared by a test's calendar.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// newTestCalendar returns a calendar pinned to 10:00 on testToday in testZone.
func newTestCalendar(t *testing.T) (*calendar.Calendar, *fakeClock) {
	t.Helper()

	loc, err := time.LoadLocation(testZone)
	if err != nil {
		t.Fatalf("LoadLocation(%q) error = %v", testZone, err)
	}
	clk := &fakeClock{now: time.Date(2026, 5, 2, 10, 0, 0, 0, loc)}

	cal, err := calendar.New(testZone, calendar.WithClock(clk.Now))
	if err != nil {
		t.Fatalf("calendar.New() error = %v", err)
	}
	return cal, clk
}

func seedGroup(t *testing.T, store *memory.Store, id string, streak group.Streak, members ...string) {
	t.Helper()

	_, err := store.CreateGroup(context.Background(), &group.Group{
		ID:        id,
		Name:      "group " + id,
		Members:   members,
		CreatedBy: members[0],
		CreatedAt: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		Streak:    streak,
	})
	if err != nil {
		t.Fatalf("CreateGroup(%q) error = %v", id, err)
	}
}

func seedPost(t *testing.T, store *memory.Store, groupID, userID, day string) {
	t.Helper()

	_, err := store.RecordPost(context.Background(), &post.Post{
		GroupID:    groupID,
		UserID:     userID,
		ImageURL:   "/photos/" + groupID + "/" + userID + ".jpg",
		Date:       day,
		UploadedAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("RecordPost(%q, %q) error = %v", groupID, userID, err)
	}
}

func mustGroup(t *testing.T, store ports.GroupStore, id string) *group.Group {
	t.Helper()

	g, err := store.GetGroup(context.Background(), id)
	if err != nil {
		t.Fatalf("GetGroup(%q) error = %v", id, err)
	}
	return g
}

// countingRecorder tallies recorder callbacks.
type countingRecorder struct {
	mu        sync.Mutex
	credits   int
	conflicts int
	resets    []error
}

func (r *countingRecorder) StreakCredited(context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.credits++
}

func (r *countingRecorder) StreakConflict(context.Context, string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conflicts++
}

func (r *countingRecorder) ResetCompleted(_ context.Context, _ ports.ResetResult, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resets = append(r.resets, err)
}
