// Package scheduler triggers the daily streak reset on a cron schedule
// evaluated in the streak time zone.
//
//	s, err := scheduler.New("0 0 * * *", cal.Location(), resetService, logger)
//	s.Start()
//	defer s.Stop(ctx)
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/photostreak/streak-service/internal/domain"
	"github.com/photostreak/streak-service/internal/ports"
)

// Scheduler runs a ResetService on a cron schedule. Overlapping triggers are
// skipped rather than queued.
type Scheduler struct {
	cron   *cron.Cron
	spec   string
	logger *slog.Logger
}

// New parses spec as a standard five-field cron expression interpreted in loc
// and registers reset as the job.
func New(spec string, loc *time.Location, reset ports.ResetService, logger *slog.Logger) (*Scheduler, error) {
	c := cron.New(
		cron.WithLocation(loc),
		cron.WithLogger(cronLogger{logger: logger}),
		cron.WithChain(
			cron.Recover(cronLogger{logger: logger}),
			cron.SkipIfStillRunning(cronLogger{logger: logger}),
		),
	)

	s := &Scheduler{cron: c, spec: spec, logger: logger}

	if _, err := c.AddFunc(spec, func() { s.runReset(reset) }); err != nil {
		return nil, fmt.Errorf("parsing schedule %q: %w", spec, err)
	}

	return s, nil
}

// Start begins firing the schedule in a background goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()

	for _, e := range s.cron.Entries() {
		s.logger.Info("reset scheduled",
			slog.String("spec", s.spec),
			slog.Time("next_run", e.Next),
		)
	}
}

// Stop prevents new runs and waits for an in-flight run to finish or ctx
// to be done, whichever comes first.
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return fmt.Errorf("waiting for in-flight reset: %w", ctx.Err())
	}
}

// Next reports when the schedule fires next. Zero before Start.
func (s *Scheduler) Next() time.Time {
	entries := s.cron.Entries()
	if len(entries) == 0 {
		return time.Time{}
	}
	return entries[0].Next
}

func (s *Scheduler) runReset(reset ports.ResetService) {
	ctx := context.Background()

	res, err := reset.RunReset(ctx)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrConflict):
		// Another replica holds the run lock.
		s.logger.InfoContext(ctx, "scheduled reset skipped", slog.Any("reason", err))
		return
	default:
		// The reset job logs its own failure detail.
		s.logger.ErrorContext(ctx, "scheduled reset failed", slog.Any("error", err))
		return
	}

	s.logger.InfoContext(ctx, "scheduled reset finished",
		slog.String("day", res.Day),
		slog.Int("processed_groups", res.ProcessedGroups),
	)
}

// cronLogger adapts slog to the cron.Logger interface.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error("cron: "+msg, append(keysAndValues, slog.Any("error", err))...)
}
