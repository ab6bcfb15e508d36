package ports

import (
	"context"
	"io"

	"github.com/photostreak/streak-service/internal/domain/group"
	"github.com/photostreak/streak-service/internal/domain/post"
)

// StreakService defines the service port for streak state transitions driven
// by group activity. Implemented by the application layer; called by handlers,
// the post service, and the operator CLI.
type StreakService interface {
	// Evaluate recomputes whether every current member of the group has
	// posted today and credits the day at most once. Any day boundary the
	// reset job has not applied yet is applied first.
	// Returns domain.ErrNotAMember if userID does not belong to the group.
	// Returns domain.ErrConflict if concurrent writers kept winning for every
	// allowed attempt.
	Evaluate(ctx context.Context, groupID, userID string) (*EvaluateResult, error)

	// EvaluateDay is Evaluate for a given calendar day instead of today. It
	// never applies a boundary later than day. When the group has already
	// opened a later day, it reports the group unchanged without crediting.
	// Returns domain.ErrValidation if day is not a calendar day.
	EvaluateDay(ctx context.Context, groupID, userID, day string) (*EvaluateResult, error)

	// Leave removes userID from the group. When fewer than two members would
	// remain the group is deleted instead. Otherwise the remaining members
	// are re-evaluated, which may complete the day.
	// Returns domain.ErrNotAMember if userID does not belong to the group.
	Leave(ctx context.Context, groupID, userID string) (*LeaveResult, error)
}

// EvaluateResult reports what an evaluation observed and changed.
type EvaluateResult struct {
	Group      group.Group
	AllPosted  bool
	Credited   bool
	RolledOver bool
}

// LeaveResult reports the outcome of a member departure. Group is nil when
// the departure deleted the group. StreakErr is set when the member was
// removed but the follow-up evaluation failed; the caller may retry it with
// StreakService.Evaluate.
type LeaveResult struct {
	Deleted   bool
	Group     *group.Group
	Credited  bool
	StreakErr error
}

// ResetService defines the service port for the daily streak reset.
// Implemented by the application layer; called by the scheduler, the admin
// endpoint, and the operator CLI.
type ResetService interface {
	// RunReset applies today's day boundary to every group independently.
	// Re-running on the same day changes nothing.
	// Returns domain.ErrUnavailable (or another store error) if the group
	// listing fails, and the context error if the run exceeds its deadline.
	// Returns a *domain.PartialFailureError together with the result when
	// some groups failed.
	RunReset(ctx context.Context) (*ResetResult, error)
}

// ResetResult summarizes one reset run.
type ResetResult struct {
	Day               string
	ProcessedGroups   int
	StreaksMaintained int
	StreaksReset      int
	Skipped           int
	Failed            int
}

// GroupService defines the service port for group lifecycle and read models.
type GroupService interface {
	// CreateGroup stores a new group with a zero streak.
	// Returns domain.ErrValidation if the group fails validation.
	CreateGroup(ctx context.Context, g *group.Group) (*group.Group, error)

	// GetGroup returns a single group by ID.
	// Returns domain.ErrNotFound if the group does not exist.
	GetGroup(ctx context.Context, id string) (*group.Group, error)

	// TodayStatus returns today's posts for the group and which members
	// have posted.
	// Returns domain.ErrNotFound if the group does not exist.
	TodayStatus(ctx context.Context, id string) (*TodayStatus, error)

	// Leaderboard returns groups with a live streak, longest first.
	Leaderboard(ctx context.Context) ([]group.Group, error)
}

// TodayStatus is the per-day read model of a group.
type TodayStatus struct {
	Group  group.Group
	Date   string
	Posts  []post.Post
	Posted map[string]bool
}

// PostService defines the service port for daily photo posts.
type PostService interface {
	// CreatePost stores the image, records the post in the ledger, and
	// evaluates the group's streak. The post is kept even when the
	// evaluation fails; PostResult.StreakErr carries that failure.
	// Returns domain.ErrNotAMember if the author does not belong to the group.
	CreatePost(ctx context.Context, in NewPost) (*PostResult, error)
}

// NewPost is an upload request for a daily photo.
type NewPost struct {
	GroupID  string
	UserID   string
	Username string
	Caption  string
	Location string
	Image    io.Reader
}

// PostResult is the outcome of CreatePost.
type PostResult struct {
	Post      post.Post
	Streak    *EvaluateResult
	StreakErr error
}
