// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/photostreak/streak-service/internal/domain"
	"github.com/photostreak/streak-service/internal/domain/calendar"
	"github.com/photostreak/streak-service/internal/domain/group"
	"github.com/photostreak/streak-service/internal/domain/post"
	"github.com/photostreak/streak-service/internal/ports"
)

// DefaultMaxAttempts bounds every compare-and-swap retry loop.
const DefaultMaxAttempts = 3

// Compile-time check that StreakService implements ports.StreakService.
var _ ports.StreakService = (*StreakService)(nil)

// StreakService implements ports.StreakService. It owns the only code paths
// that credit a day, and every credit is a compare-and-swap on the group's
// streak state so concurrent evaluations converge on a single increment.
type StreakService struct {
	groups      ports.GroupStore
	ledger      ports.PostLedger
	calendar    *calendar.Calendar
	maxAttempts int
	recorder    ports.StreakRecorder
	logger      *slog.Logger
}

// StreakOption configures a StreakService.
type StreakOption func(*StreakService)

// WithMaxAttempts overrides DefaultMaxAttempts. Values below 1 are ignored.
func WithMaxAttempts(n int) StreakOption {
	return func(s *StreakService) {
		if n >= 1 {
			s.maxAttempts = n
		}
	}
}

// WithStreakRecorder attaches a metrics recorder.
func WithStreakRecorder(r ports.StreakRecorder) StreakOption {
	return func(s *StreakService) {
		if r != nil {
			s.recorder = r
		}
	}
}

// NewStreakService creates a StreakService. The calendar decides which day
// "today" is for every evaluation.
func NewStreakService(
	groups ports.GroupStore,
	ledger ports.PostLedger,
	cal *calendar.Calendar,
	logger *slog.Logger,
	opts ...StreakOption,
) *StreakService {
	s := &StreakService{
		groups:      groups,
		ledger:      ledger,
		calendar:    cal,
		maxAttempts: DefaultMaxAttempts,
		recorder:    noopRecorder{},
		logger:      logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Evaluate recomputes today's completion for the group and credits it at most once.
func (s *StreakService) Evaluate(ctx context.Context, groupID, userID string) (*ports.EvaluateResult, error) {
	return s.evaluate(ctx, groupID, userID, s.calendar.Today())
}

// EvaluateDay evaluates day instead of today. Posts are dated when they are
// accepted, so the evaluation they trigger must not drift into the next day
// while the upload is still being processed.
func (s *StreakService) EvaluateDay(ctx context.Context, groupID, userID, day string) (*ports.EvaluateResult, error) {
	if !calendar.Valid(day) {
		return nil, &domain.ValidationError{Fields: map[string]string{"day": fmt.Sprintf("invalid day: %q", day)}}
	}
	return s.evaluate(ctx, groupID, userID, day)
}

func (s *StreakService) evaluate(ctx context.Context, groupID, userID, day string) (*ports.EvaluateResult, error) {
	s.logger.InfoContext(ctx, "evaluating streak",
		slog.String("group_id", groupID),
		slog.String("user_id", userID),
		slog.String("day", day),
	)

	requireMember := func(g *group.Group) error {
		if !g.HasMember(userID) {
			return domain.ErrNotAMember
		}
		return nil
	}

	res, err := s.settle(ctx, "Evaluate", groupID, day, requireMember)
	if err != nil {
		s.logFailure(ctx, "Evaluate", groupID, err)
		return nil, err
	}
	return res, nil
}

// Leave removes a member and re-evaluates the day for whoever remains.
func (s *StreakService) Leave(ctx context.Context, groupID, userID string) (*ports.LeaveResult, error) {
	s.logger.InfoContext(ctx, "member leaving group",
		slog.String("group_id", groupID),
		slog.String("user_id", userID),
	)

	g, err := s.groups.GetGroup(ctx, groupID)
	if err != nil {
		s.logFailure(ctx, "Leave", groupID, err)
		return nil, fmt.Errorf("loading group: %w", err)
	}
	if !g.HasMember(userID) {
		return nil, domain.ErrNotAMember
	}

	if len(g.Without(userID)) < group.MinMembers {
		return s.dissolve(ctx, groupID)
	}

	updated, err := s.groups.UpdateGroup(ctx, groupID, group.Update{RemoveMember: userID})
	if err != nil {
		s.logFailure(ctx, "Leave", groupID, err)
		return nil, fmt.Errorf("removing member: %w", err)
	}
	// A concurrent departure may have shrunk the group below the minimum
	// between our read and the removal.
	if len(updated.Members) < group.MinMembers {
		return s.dissolve(ctx, groupID)
	}

	res, err := s.settle(ctx, "Leave", groupID, s.calendar.Today(), nil)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return &ports.LeaveResult{Deleted: true}, nil
	case err != nil:
		s.logger.WarnContext(ctx, "member removed but streak evaluation failed",
			slog.String("operation", "Leave"),
			slog.String("group_id", groupID),
			slog.Any("error", err),
		)
		return &ports.LeaveResult{Group: updated, StreakErr: err}, nil
	}

	return &ports.LeaveResult{Group: &res.Group, Credited: res.Credited}, nil
}

func (s *StreakService) dissolve(ctx context.Context, groupID string) (*ports.LeaveResult, error) {
	s.logger.InfoContext(ctx, "deleting group below minimum size", slog.String("group_id", groupID))

	err := s.groups.DeleteGroup(ctx, groupID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		s.logFailure(ctx, "Leave", groupID, err)
		return nil, fmt.Errorf("deleting group: %w", err)
	}
	return &ports.LeaveResult{Deleted: true}, nil
}

// settle brings the group's streak up to date for day: it applies day's
// boundary if it is still pending, then credits day if every current member
// has posted on it. A group that has already opened a later day is reported
// as is, since day can no longer be credited. Each attempt re-reads the group
// and the ledger so the decision is always made against the member set the
// write is conditioned on. Lost races are retried up to maxAttempts before
// domain.ErrConflict surfaces.
func (s *StreakService) settle(
	ctx context.Context,
	operation, groupID, day string,
	check func(*group.Group) error,
) (*ports.EvaluateResult, error) {
	for attempt := 1; ; attempt++ {
		g, err := s.groups.GetGroup(ctx, groupID)
		if err != nil {
			return nil, fmt.Errorf("loading group: %w", err)
		}
		if check != nil {
			if err := check(g); err != nil {
				return nil, err
			}
		}

		posts, err := s.ledger.ListPostsForGroupOnDate(ctx, groupID, day)
		if err != nil {
			return nil, fmt.Errorf("listing posts for %s: %w", day, err)
		}

		if g.Streak.Passed(day) {
			s.logger.InfoContext(ctx, "day already closed, not crediting",
				slog.String("group_id", groupID),
				slog.String("day", day),
				slog.String("last_rollover", g.Streak.LastRollover),
			)
			return &ports.EvaluateResult{Group: *g, AllPosted: g.AllPosted(post.Posters(posts))}, nil
		}

		prior := g.Streak
		next := prior
		rolled := false
		if next.NeedsRollover(day) {
			next, _ = next.Rollover(day)
			rolled = true
		}

		allPosted := g.AllPosted(post.Posters(posts))
		credited := false
		if allPosted {
			next, credited = next.Credit()
		}

		if next == prior {
			return &ports.EvaluateResult{Group: *g, AllPosted: allPosted}, nil
		}

		updated, err := s.groups.UpdateGroup(ctx, groupID, group.Update{Streak: &next, ExpectStreak: &prior})
		if err == nil {
			if credited {
				s.recorder.StreakCredited(ctx)
				s.logger.InfoContext(ctx, "streak credited",
					slog.String("group_id", groupID),
					slog.String("day", day),
					slog.Int("current_streak", updated.Streak.Current),
				)
			}
			return &ports.EvaluateResult{
				Group:      *updated,
				AllPosted:  allPosted,
				Credited:   credited,
				RolledOver: rolled,
			}, nil
		}
		if !errors.Is(err, domain.ErrConflict) {
			return nil, fmt.Errorf("updating streak: %w", err)
		}

		s.recorder.StreakConflict(ctx, operation)
		if attempt >= s.maxAttempts {
			return nil, fmt.Errorf("updating streak after %d attempts: %w", attempt, err)
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		s.logger.DebugContext(ctx, "streak update lost a race, retrying",
			slog.String("group_id", groupID),
			slog.Int("attempt", attempt),
		)
	}
}

func (s *StreakService) logFailure(ctx context.Context, operation, groupID string, err error) {
	// Membership rejections are client errors, not service failures.
	if errors.Is(err, domain.ErrNotAMember) || errors.Is(err, domain.ErrNotFound) {
		return
	}
	s.logger.ErrorContext(ctx, "streak operation failed",
		slog.String("operation", operation),
		slog.String("group_id", groupID),
		slog.Any("error", err),
	)
}

type noopRecorder struct{}

func (noopRecorder) StreakCredited(context.Context)                            {}
func (noopRecorder) StreakConflict(context.Context, string)                    {}
func (noopRecorder) ResetCompleted(context.Context, ports.ResetResult, error) {}
