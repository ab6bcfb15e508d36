package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/photostreak/streak-service/internal/adapters/stores/memory"
	"github.com/photostreak/streak-service/internal/domain"
	"github.com/photostreak/streak-service/internal/domain/group"
	"github.com/photostreak/streak-service/internal/ports"
	"github.com/photostreak/streak-service/mocks"
)

// failingStore fails every UpdateGroup for the listed group IDs.
type failingStore struct {
	ports.GroupStore
	fail map[string]error
}

func (s *failingStore) UpdateGroup(ctx context.Context, id string, upd group.Update) (*group.Group, error) {
	if err, ok := s.fail[id]; ok {
		return nil, err
	}
	return s.GroupStore.UpdateGroup(ctx, id, upd)
}

// blockingStore blocks every UpdateGroup until the context is done.
type blockingStore struct {
	ports.GroupStore
}

func (s *blockingStore) UpdateGroup(ctx context.Context, _ string, _ group.Update) (*group.Group, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

// stubLock is a RunLock that either grants or refuses the lock.
type stubLock struct {
	grant    bool
	err      error
	released bool
	ttl      time.Duration
}

func (l *stubLock) Acquire(_ context.Context, _ string, ttl time.Duration) (func(context.Context) error, bool, error) {
	l.ttl = ttl
	if l.err != nil || !l.grant {
		return nil, false, l.err
	}
	return func(context.Context) error {
		l.released = true
		return nil
	}, true, nil
}

func TestResetJob_RunReset_AppliesDailyRule(t *testing.T) {
	t.Parallel()
	store := memory.New()
	cal, _ := newTestCalendar(t)
	rec := &countingRecorder{}
	job := NewResetJob(store, cal, discardLogger(), WithResetRecorder(rec))

	seedGroup(t, store, "kept", group.Streak{Current: 5, Today: true, LastRollover: yesterday}, "a", "b")
	seedGroup(t, store, "broken", group.Streak{Current: 5, Today: false, LastRollover: yesterday}, "a", "b")
	seedGroup(t, store, "fresh", group.Streak{Current: 0, Today: false, LastRollover: yesterday}, "a", "b")

	res, err := job.RunReset(context.Background())
	if err != nil {
		t.Fatalf("RunReset() error = %v", err)
	}

	want := ports.ResetResult{Day: testToday, ProcessedGroups: 3, StreaksMaintained: 1, StreaksReset: 2}
	if *res != want {
		t.Errorf("RunReset() = %+v, want %+v", *res, want)
	}

	if got := mustGroup(t, store, "kept").Streak; got != (group.Streak{Current: 5, Today: false, LastRollover: testToday}) {
		t.Errorf("kept streak = %+v", got)
	}
	if got := mustGroup(t, store, "broken").Streak; got != (group.Streak{Current: 0, Today: false, LastRollover: testToday}) {
		t.Errorf("broken streak = %+v", got)
	}
	if len(rec.resets) != 1 || rec.resets[0] != nil {
		t.Errorf("recorded resets = %v, want one successful run", rec.resets)
	}
}

func TestResetJob_RunReset_IsIdempotentWithinADay(t *testing.T) {
	t.Parallel()
	store := memory.New()
	cal, _ := newTestCalendar(t)
	job := NewResetJob(store, cal, discardLogger())

	seedGroup(t, store, "kept", group.Streak{Current: 5, Today: true, LastRollover: yesterday}, "a", "b")
	seedGroup(t, store, "broken", group.Streak{Current: 3, Today: false, LastRollover: yesterday}, "a", "b")

	if _, err := job.RunReset(context.Background()); err != nil {
		t.Fatalf("first RunReset() error = %v", err)
	}
	before := map[string]group.Streak{
		"kept":   mustGroup(t, store, "kept").Streak,
		"broken": mustGroup(t, store, "broken").Streak,
	}

	res, err := job.RunReset(context.Background())
	if err != nil {
		t.Fatalf("second RunReset() error = %v", err)
	}
	if res.Skipped != 2 || res.StreaksMaintained != 0 || res.StreaksReset != 0 {
		t.Errorf("second RunReset() = %+v, want everything skipped", *res)
	}
	for id, s := range before {
		if got := mustGroup(t, store, id).Streak; got != s {
			t.Errorf("%s streak changed on re-run: %+v -> %+v", id, s, got)
		}
	}
}

func TestResetJob_RunReset_SkipsGroupsRolledOverByEvaluator(t *testing.T) {
	t.Parallel()
	store := memory.New()
	cal, _ := newTestCalendar(t)
	streaks := NewStreakService(store, store, cal, discardLogger())
	job := NewResetJob(store, cal, discardLogger())

	// Credited yesterday; a post arrives after midnight before the job runs.
	seedGroup(t, store, "g1", group.Streak{Current: 5, Today: true, LastRollover: yesterday}, "a", "b")
	seedPost(t, store, "g1", "a", testToday)
	seedPost(t, store, "g1", "b", testToday)

	if _, err := streaks.Evaluate(context.Background(), "g1", "b"); err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}

	res, err := job.RunReset(context.Background())
	if err != nil {
		t.Fatalf("RunReset() error = %v", err)
	}
	if res.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1", res.Skipped)
	}

	want := group.Streak{Current: 6, Today: true, LastRollover: testToday}
	if got := mustGroup(t, store, "g1").Streak; got != want {
		t.Errorf("streak = %+v, want %+v", got, want)
	}
}

func TestResetJob_RunReset_FullDayCycle(t *testing.T) {
	t.Parallel()
	store := memory.New()
	cal, clk := newTestCalendar(t)
	streaks := NewStreakService(store, store, cal, discardLogger())
	job := NewResetJob(store, cal, discardLogger())
	ctx := context.Background()

	seedGroup(t, store, "g1", group.Streak{LastRollover: testToday}, "a", "b")

	// Day 1: both post.
	seedPost(t, store, "g1", "a", testToday)
	seedPost(t, store, "g1", "b", testToday)
	if _, err := streaks.Evaluate(ctx, "g1", "b"); err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}

	// Midnight: streak continues.
	clk.Set(clk.Now().Add(14 * time.Hour))
	if _, err := job.RunReset(ctx); err != nil {
		t.Fatalf("RunReset() error = %v", err)
	}
	if got := mustGroup(t, store, "g1").Streak; got.Current != 1 || got.Today {
		t.Fatalf("after first midnight streak = %+v, want Current=1 Today=false", got)
	}

	// Day 2: only a posts. Next midnight: streak breaks.
	seedPost(t, store, "g1", "a", "2026-05-03")
	if _, err := streaks.Evaluate(ctx, "g1", "a"); err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	clk.Set(clk.Now().Add(24 * time.Hour))
	if _, err := job.RunReset(ctx); err != nil {
		t.Fatalf("RunReset() error = %v", err)
	}
	want := group.Streak{Current: 0, Today: false, LastRollover: "2026-05-04"}
	if got := mustGroup(t, store, "g1").Streak; got != want {
		t.Errorf("after second midnight streak = %+v, want %+v", got, want)
	}
}

func TestResetJob_RunReset_IsolatesGroupFailures(t *testing.T) {
	t.Parallel()
	mem := memory.New()
	store := &failingStore{GroupStore: mem, fail: map[string]error{"bad": domain.ErrUnavailable}}
	cal, _ := newTestCalendar(t)
	job := NewResetJob(store, cal, discardLogger(), WithResetWorkers(2))

	seedGroup(t, mem, "bad", group.Streak{Current: 1, Today: true, LastRollover: yesterday}, "a", "b")
	seedGroup(t, mem, "ok1", group.Streak{Current: 1, Today: true, LastRollover: yesterday}, "a", "b")
	seedGroup(t, mem, "ok2", group.Streak{Current: 1, Today: false, LastRollover: yesterday}, "a", "b")

	res, err := job.RunReset(context.Background())

	var perr *domain.PartialFailureError
	if !errors.As(err, &perr) {
		t.Fatalf("RunReset() error = %v, want *PartialFailureError", err)
	}
	if !errors.Is(err, domain.ErrPartialFailure) {
		t.Errorf("errors.Is(err, ErrPartialFailure) = false")
	}
	if _, ok := perr.Failed["bad"]; !ok || len(perr.Failed) != 1 {
		t.Errorf("Failed = %v, want only bad", perr.Failed)
	}
	if res == nil {
		t.Fatal("RunReset() result = nil, want partial result")
	}
	if res.ProcessedGroups != 2 || res.Failed != 1 || res.StreaksMaintained != 1 || res.StreaksReset != 1 {
		t.Errorf("RunReset() = %+v", *res)
	}
}

func TestResetJob_RunReset_ListingFailureFailsRun(t *testing.T) {
	t.Parallel()
	groups := mocks.NewMockGroupStore(t)
	cal, _ := newTestCalendar(t)
	rec := &countingRecorder{}
	job := NewResetJob(groups, cal, discardLogger(), WithResetRecorder(rec))

	groups.EXPECT().ListGroups(mock.Anything).Return(nil, domain.ErrUnavailable)

	res, err := job.RunReset(context.Background())
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("RunReset() error = %v, want ErrUnavailable", err)
	}
	if res != nil {
		t.Errorf("RunReset() result = %+v, want nil", res)
	}
	if len(rec.resets) != 1 || rec.resets[0] == nil {
		t.Errorf("recorded resets = %v, want one failed run", rec.resets)
	}
}

func TestResetJob_RunReset_TimeoutFailsRun(t *testing.T) {
	t.Parallel()
	mem := memory.New()
	cal, _ := newTestCalendar(t)
	job := NewResetJob(&blockingStore{GroupStore: mem}, cal, discardLogger(), WithResetTimeout(20*time.Millisecond))

	seedGroup(t, mem, "g1", group.Streak{Current: 1, LastRollover: yesterday}, "a", "b")

	_, err := job.RunReset(context.Background())
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("RunReset() error = %v, want DeadlineExceeded", err)
	}
}

func TestResetJob_RunReset_RetriesLostRace(t *testing.T) {
	t.Parallel()
	groups := mocks.NewMockGroupStore(t)
	cal, _ := newTestCalendar(t)
	job := NewResetJob(groups, cal, discardLogger())

	listed := group.Group{ID: "g1", Members: []string{"a", "b"}, Streak: group.Streak{Current: 2, Today: false, LastRollover: yesterday}}
	// An evaluator credited the group between listing and the rollover.
	fresh := listed
	fresh.Streak = group.Streak{Current: 3, Today: true, LastRollover: testToday}

	groups.EXPECT().ListGroups(mock.Anything).Return([]group.Group{listed}, nil)
	groups.EXPECT().UpdateGroup(mock.Anything, "g1", mock.Anything).Return(nil, domain.ErrConflict).Once()
	groups.EXPECT().GetGroup(mock.Anything, "g1").Return(&fresh, nil).Once()

	res, err := job.RunReset(context.Background())
	if err != nil {
		t.Fatalf("RunReset() error = %v", err)
	}
	if res.Skipped != 1 || res.StreaksReset != 0 {
		t.Errorf("RunReset() = %+v, want the credited group skipped", *res)
	}
}

func TestResetJob_RunReset_RunLock(t *testing.T) {
	t.Parallel()

	t.Run("held lock fails with conflict", func(t *testing.T) {
		t.Parallel()
		groups := mocks.NewMockGroupStore(t)
		cal, _ := newTestCalendar(t)
		job := NewResetJob(groups, cal, discardLogger(), WithRunLock(&stubLock{grant: false}))

		_, err := job.RunReset(context.Background())
		if !errors.Is(err, domain.ErrConflict) {
			t.Errorf("RunReset() error = %v, want ErrConflict", err)
		}
	})

	t.Run("lock error fails the run", func(t *testing.T) {
		t.Parallel()
		groups := mocks.NewMockGroupStore(t)
		cal, _ := newTestCalendar(t)
		job := NewResetJob(groups, cal, discardLogger(), WithRunLock(&stubLock{err: domain.ErrUnavailable}))

		_, err := job.RunReset(context.Background())
		if !errors.Is(err, domain.ErrUnavailable) {
			t.Errorf("RunReset() error = %v, want ErrUnavailable", err)
		}
	})

	t.Run("granted lock is released", func(t *testing.T) {
		t.Parallel()
		store := memory.New()
		cal, _ := newTestCalendar(t)
		lock := &stubLock{grant: true}
		job := NewResetJob(store, cal, discardLogger(), WithRunLock(lock))

		if _, err := job.RunReset(context.Background()); err != nil {
			t.Fatalf("RunReset() error = %v", err)
		}
		if !lock.released {
			t.Error("lock was not released")
		}
		if lock.ttl != DefaultResetTimeout {
			t.Errorf("lock ttl = %v, want run timeout %v", lock.ttl, DefaultResetTimeout)
		}
	})

	t.Run("explicit lock ttl", func(t *testing.T) {
		t.Parallel()
		cal, _ := newTestCalendar(t)
		lock := &stubLock{grant: true}
		job := NewResetJob(memory.New(), cal, discardLogger(), WithRunLock(lock), WithRunLockTTL(42*time.Minute))

		if _, err := job.RunReset(context.Background()); err != nil {
			t.Fatalf("RunReset() error = %v", err)
		}
		if lock.ttl != 42*time.Minute {
			t.Errorf("lock ttl = %v, want 42m", lock.ttl)
		}
	})
}

func TestResetJob_RunReset_RepairsUnreadableRolloverDay(t *testing.T) {
	t.Parallel()
	store := memory.New()
	cal, _ := newTestCalendar(t)
	job := NewResetJob(store, cal, discardLogger())

	// Written by another client with a different date format.
	seedGroup(t, store, "imported", group.Streak{Current: 12, Today: true, LastRollover: "May 1, 2026"}, "a", "b")

	res, err := job.RunReset(context.Background())
	if err != nil {
		t.Fatalf("RunReset() error = %v", err)
	}
	if res.StreaksReset != 1 || res.Skipped != 0 {
		t.Errorf("RunReset() = %+v, want one reset and nothing skipped", *res)
	}

	want := group.Streak{Current: 0, Today: false, LastRollover: testToday}
	if got := mustGroup(t, store, "imported").Streak; got != want {
		t.Errorf("streak = %+v, want %+v", got, want)
	}

	// The repaired group is processed normally from now on.
	again, err := job.RunReset(context.Background())
	if err != nil {
		t.Fatalf("second RunReset() error = %v", err)
	}
	if again.Skipped != 1 {
		t.Errorf("second RunReset() = %+v, want skipped", *again)
	}
}
