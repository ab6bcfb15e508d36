package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/photostreak/streak-service/internal/domain/calendar"
	"github.com/photostreak/streak-service/internal/domain/group"
	"github.com/photostreak/streak-service/internal/domain/post"
	"github.com/photostreak/streak-service/internal/ports"
)

// Compile-time check that GroupService implements ports.GroupService.
var _ ports.GroupService = (*GroupService)(nil)

// GroupService implements ports.GroupService: group creation and the read
// models built on top of groups and the post ledger.
type GroupService struct {
	groups   ports.GroupStore
	ledger   ports.PostLedger
	calendar *calendar.Calendar
	logger   *slog.Logger
}

// NewGroupService creates a GroupService.
func NewGroupService(groups ports.GroupStore, ledger ports.PostLedger, cal *calendar.Calendar, logger *slog.Logger) *GroupService {
	return &GroupService{
		groups:   groups,
		ledger:   ledger,
		calendar: cal,
		logger:   logger,
	}
}

// CreateGroup validates and stores a new group. The streak always starts at
// zero with today's boundary already applied, so the first reset a new group
// sees is tomorrow's.
func (s *GroupService) CreateGroup(ctx context.Context, g *group.Group) (*group.Group, error) {
	s.logger.InfoContext(ctx, "creating group",
		slog.String("name", g.Name),
		slog.Int("members", len(g.Members)),
	)

	now := s.calendar.Now()
	g.CreatedAt = now
	g.Streak = group.Streak{LastRollover: s.calendar.DayOf(now)}

	if err := g.Validate(); err != nil {
		return nil, err
	}

	created, err := s.groups.CreateGroup(ctx, g)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create group",
			slog.String("operation", "CreateGroup"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return created, nil
}

// GetGroup returns a single group by ID.
func (s *GroupService) GetGroup(ctx context.Context, id string) (*group.Group, error) {
	s.logger.InfoContext(ctx, "fetching group", slog.String("id", id))

	g, err := s.groups.GetGroup(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch group",
			slog.String("operation", "GetGroup"),
			slog.String("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	return g, nil
}

// TodayStatus returns today's posts, newest first, and which members posted.
func (s *GroupService) TodayStatus(ctx context.Context, id string) (*ports.TodayStatus, error) {
	day := s.calendar.Today()
	s.logger.InfoContext(ctx, "fetching today status", slog.String("id", id), slog.String("day", day))

	g, err := s.groups.GetGroup(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch group",
			slog.String("operation", "TodayStatus"),
			slog.String("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	posts, err := s.ledger.ListPostsForGroupOnDate(ctx, id, day)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list posts",
			slog.String("operation", "TodayStatus"),
			slog.String("id", id),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("listing posts for %s: %w", day, err)
	}
	post.SortNewestFirst(posts)

	posters := post.Posters(posts)
	posted := make(map[string]bool, len(g.Members))
	for _, m := range g.Members {
		posted[m] = posters[m]
	}

	return &ports.TodayStatus{
		Group:  *g,
		Date:   day,
		Posts:  posts,
		Posted: posted,
	}, nil
}

// Leaderboard returns groups with a live streak, longest first.
func (s *GroupService) Leaderboard(ctx context.Context) ([]group.Group, error) {
	s.logger.InfoContext(ctx, "building leaderboard")

	groups, err := s.groups.ListGroups(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list groups",
			slog.String("operation", "Leaderboard"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return group.Leaderboard(groups), nil
}
