package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/photostreak/streak-service/internal/domain"
	"github.com/photostreak/streak-service/internal/domain/calendar"
	"github.com/photostreak/streak-service/internal/domain/post"
	"github.com/photostreak/streak-service/internal/ports"
)

// Compile-time check that PostService implements ports.PostService.
var _ ports.PostService = (*PostService)(nil)

// PostService implements ports.PostService. A post is durable once the
// ledger accepts it; the streak evaluation that follows is best effort and
// its failure is reported alongside the stored post.
type PostService struct {
	groups   ports.GroupStore
	ledger   ports.PostLedger
	photos   ports.PhotoStore
	streaks  ports.StreakService
	calendar *calendar.Calendar
	logger   *slog.Logger
}

// NewPostService creates a PostService.
func NewPostService(
	groups ports.GroupStore,
	ledger ports.PostLedger,
	photos ports.PhotoStore,
	streaks ports.StreakService,
	cal *calendar.Calendar,
	logger *slog.Logger,
) *PostService {
	return &PostService{
		groups:   groups,
		ledger:   ledger,
		photos:   photos,
		streaks:  streaks,
		calendar: cal,
		logger:   logger,
	}
}

// PhotoKey returns the storage key of a group photo.
func PhotoKey(groupID, day, userID string, unixMillis int64) string {
	return fmt.Sprintf("groupPhotos/%s/%s/%s_%d.jpg", groupID, day, userID, unixMillis)
}

// CreatePost stores the photo, records the post, then evaluates the streak.
func (s *PostService) CreatePost(ctx context.Context, in ports.NewPost) (*ports.PostResult, error) {
	s.logger.InfoContext(ctx, "creating post",
		slog.String("group_id", in.GroupID),
		slog.String("user_id", in.UserID),
	)

	if err := validateNewPost(in); err != nil {
		return nil, err
	}

	g, err := s.groups.GetGroup(ctx, in.GroupID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch group",
			slog.String("operation", "CreatePost"),
			slog.String("group_id", in.GroupID),
			slog.Any("error", err),
		)
		return nil, err
	}
	if !g.HasMember(in.UserID) {
		return nil, domain.ErrNotAMember
	}

	now := s.calendar.Now()
	day := s.calendar.DayOf(now)

	key := PhotoKey(in.GroupID, day, in.UserID, now.UnixMilli())
	url, err := s.photos.PutPhoto(ctx, key, in.Image)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to store photo",
			slog.String("operation", "CreatePost"),
			slog.String("group_id", in.GroupID),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("storing photo: %w", err)
	}

	p := &post.Post{
		GroupID:    in.GroupID,
		UserID:     in.UserID,
		Username:   in.Username,
		ImageURL:   url,
		Caption:    strings.TrimSpace(in.Caption),
		Location:   strings.TrimSpace(in.Location),
		Date:       day,
		UploadedAt: now,
	}
	if err := p.Validate(); err != nil {
		s.discardPhoto(ctx, key)
		return nil, err
	}

	recorded, err := s.ledger.RecordPost(ctx, p)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to record post",
			slog.String("operation", "CreatePost"),
			slog.String("group_id", in.GroupID),
			slog.Any("error", err),
		)
		s.discardPhoto(ctx, key)
		return nil, fmt.Errorf("recording post: %w", err)
	}

	result := &ports.PostResult{Post: *recorded}
	eval, err := s.streaks.EvaluateDay(ctx, in.GroupID, in.UserID, day)
	if err != nil {
		s.logger.WarnContext(ctx, "post recorded but streak evaluation failed",
			slog.String("operation", "CreatePost"),
			slog.String("group_id", in.GroupID),
			slog.String("post_id", recorded.ID),
			slog.Any("error", err),
		)
		result.StreakErr = err
		return result, nil
	}

	result.Streak = eval
	return result, nil
}

// discardPhoto removes a photo no post refers to. It runs even when the
// request was canceled, since the upload already reached storage.
func (s *PostService) discardPhoto(ctx context.Context, key string) {
	ctx = context.WithoutCancel(ctx)
	if err := s.photos.DeletePhoto(ctx, key); err != nil {
		s.logger.WarnContext(ctx, "failed to remove unreferenced photo",
			slog.String("operation", "CreatePost"),
			slog.String("key", key),
			slog.Any("error", err),
		)
	}
}

func validateNewPost(in ports.NewPost) error {
	fields := make(map[string]string)
	if strings.TrimSpace(in.GroupID) == "" {
		fields["group_id"] = domain.MsgRequired
	}
	if strings.TrimSpace(in.UserID) == "" {
		fields["user_id"] = domain.MsgRequired
	}
	if in.Image == nil {
		fields["image"] = domain.MsgRequired
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
