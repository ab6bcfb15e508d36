package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/photostreak/streak-service/internal/app/fanout"
	"github.com/photostreak/streak-service/internal/domain"
	"github.com/photostreak/streak-service/internal/domain/calendar"
	"github.com/photostreak/streak-service/internal/domain/group"
	"github.com/photostreak/streak-service/internal/ports"
)

// ResetLockKey names the run lock that keeps replicas from overlapping runs.
const ResetLockKey = "streak-service:reset"

// Reset job defaults.
const (
	DefaultResetWorkers = 8
	DefaultResetTimeout = 5 * time.Minute
)

// Compile-time check that ResetJob implements ports.ResetService.
var _ ports.ResetService = (*ResetJob)(nil)

// ResetJob implements ports.ResetService: the once-a-day boundary that keeps
// credited streaks and zeroes the rest. Every group is processed on its own
// so one failing group never stops the others.
type ResetJob struct {
	groups      ports.GroupStore
	calendar    *calendar.Calendar
	lock        ports.RunLock
	lockTTL     time.Duration
	workers     int
	timeout     time.Duration
	maxAttempts int
	recorder    ports.StreakRecorder
	logger      *slog.Logger
}

// ResetOption configures a ResetJob.
type ResetOption func(*ResetJob)

// WithResetWorkers bounds how many groups are rolled over concurrently.
func WithResetWorkers(n int) ResetOption {
	return func(j *ResetJob) {
		if n >= 1 {
			j.workers = n
		}
	}
}

// WithResetTimeout bounds a whole run. Exceeding it fails the run.
func WithResetTimeout(d time.Duration) ResetOption {
	return func(j *ResetJob) {
		if d > 0 {
			j.timeout = d
		}
	}
}

// WithRunLock makes each run hold lock for its duration. A run that cannot
// take the lock fails with domain.ErrConflict instead of overlapping.
func WithRunLock(lock ports.RunLock) ResetOption {
	return func(j *ResetJob) { j.lock = lock }
}

// WithRunLockTTL sets how long a run lease lives when its holder crashes
// without releasing it. Defaults to the run timeout.
func WithRunLockTTL(ttl time.Duration) ResetOption {
	return func(j *ResetJob) {
		if ttl > 0 {
			j.lockTTL = ttl
		}
	}
}

// WithResetRecorder attaches a metrics recorder.
func WithResetRecorder(r ports.StreakRecorder) ResetOption {
	return func(j *ResetJob) {
		if r != nil {
			j.recorder = r
		}
	}
}

// WithResetMaxAttempts overrides DefaultMaxAttempts for per-group conflicts.
func WithResetMaxAttempts(n int) ResetOption {
	return func(j *ResetJob) {
		if n >= 1 {
			j.maxAttempts = n
		}
	}
}

// NewResetJob creates a ResetJob.
func NewResetJob(groups ports.GroupStore, cal *calendar.Calendar, logger *slog.Logger, opts ...ResetOption) *ResetJob {
	j := &ResetJob{
		groups:      groups,
		calendar:    cal,
		workers:     DefaultResetWorkers,
		timeout:     DefaultResetTimeout,
		maxAttempts: DefaultMaxAttempts,
		recorder:    noopRecorder{},
		logger:      logger,
	}
	for _, opt := range opts {
		opt(j)
	}
	if j.lockTTL == 0 {
		j.lockTTL = j.timeout
	}
	return j
}

// RunReset applies today's boundary to every group.
func (j *ResetJob) RunReset(ctx context.Context) (*ports.ResetResult, error) {
	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()

	day := j.calendar.Today()
	j.logger.InfoContext(ctx, "starting daily streak reset", slog.String("day", day))

	if j.lock != nil {
		release, acquired, err := j.lock.Acquire(ctx, ResetLockKey, j.lockTTL)
		if err != nil {
			return j.fail(ctx, nil, fmt.Errorf("acquiring reset lock: %w", err))
		}
		if !acquired {
			return j.fail(ctx, nil, fmt.Errorf("reset already running: %w", domain.ErrConflict))
		}
		defer func() {
			// The run context may already be done; release on a fresh one.
			relCtx, relCancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
			defer relCancel()
			if err := release(relCtx); err != nil {
				j.logger.WarnContext(ctx, "failed to release reset lock", slog.Any("error", err))
			}
		}()
	}

	groups, err := j.groups.ListGroups(ctx)
	if err != nil {
		return j.fail(ctx, nil, fmt.Errorf("listing groups: %w", err))
	}

	results := fanout.Run(ctx, j.workers, groups, func(ctx context.Context, g group.Group) (group.RolloverOutcome, error) {
		return j.rollover(ctx, g, day)
	})

	res := &ports.ResetResult{Day: day}
	failed := make(map[string]error)
	for i, r := range results {
		if r.Err != nil {
			failed[groups[i].ID] = r.Err
			j.logger.WarnContext(ctx, "failed to roll over group",
				slog.String("group_id", groups[i].ID),
				slog.Any("error", r.Err),
			)
			continue
		}
		res.ProcessedGroups++
		switch r.Value {
		case group.RolloverMaintained:
			res.StreaksMaintained++
		case group.RolloverReset:
			res.StreaksReset++
		case group.RolloverSkipped:
			res.Skipped++
		}
	}
	res.Failed = len(failed)

	if err := ctx.Err(); err != nil {
		return j.fail(ctx, res, fmt.Errorf("reset for %s did not finish: %w", day, err))
	}
	if len(failed) > 0 {
		return j.fail(ctx, res, &domain.PartialFailureError{Total: len(groups), Failed: failed})
	}

	j.logger.InfoContext(ctx, "daily streak reset completed",
		slog.String("day", day),
		slog.Int("processed_groups", res.ProcessedGroups),
		slog.Int("streaks_maintained", res.StreaksMaintained),
		slog.Int("streaks_reset", res.StreaksReset),
		slog.Int("skipped", res.Skipped),
	)
	j.recorder.ResetCompleted(ctx, *res, nil)
	return res, nil
}

// rollover applies the boundary to one group, re-reading it after a lost race.
func (j *ResetJob) rollover(ctx context.Context, g group.Group, day string) (group.RolloverOutcome, error) {
	cur := g
	for attempt := 1; ; attempt++ {
		next, outcome := cur.Streak.Rollover(day)
		if outcome == group.RolloverSkipped {
			return outcome, nil
		}

		prior := cur.Streak
		_, err := j.groups.UpdateGroup(ctx, cur.ID, group.Update{Streak: &next, ExpectStreak: &prior})
		switch {
		case err == nil:
			return outcome, nil
		case errors.Is(err, domain.ErrNotFound):
			// Deleted since listing.
			return group.RolloverSkipped, nil
		case !errors.Is(err, domain.ErrConflict):
			return "", err
		}

		j.recorder.StreakConflict(ctx, "RunReset")
		if attempt >= j.maxAttempts {
			return "", fmt.Errorf("rolling over after %d attempts: %w", attempt, err)
		}

		fresh, err := j.groups.GetGroup(ctx, cur.ID)
		if errors.Is(err, domain.ErrNotFound) {
			return group.RolloverSkipped, nil
		}
		if err != nil {
			return "", fmt.Errorf("reloading group: %w", err)
		}
		cur = *fresh
	}
}

func (j *ResetJob) fail(ctx context.Context, res *ports.ResetResult, err error) (*ports.ResetResult, error) {
	attrs := []any{
		slog.String("operation", "RunReset"),
		slog.Any("error", err),
	}
	if res != nil {
		attrs = append(attrs,
			slog.Int("processed_groups", res.ProcessedGroups),
			slog.Int("streaks_maintained", res.StreaksMaintained),
			slog.Int("streaks_reset", res.StreaksReset),
			slog.Int("failed", res.Failed),
		)
	}
	j.logger.ErrorContext(ctx, "daily streak reset failed", attrs...)

	var recorded ports.ResetResult
	if res != nil {
		recorded = *res
	}
	j.recorder.ResetCompleted(ctx, recorded, err)
	return res, err
}
