package ports

import (
	"context"
	"io"
	"time"

	"github.com/photostreak/streak-service/internal/domain/group"
	"github.com/photostreak/streak-service/internal/domain/post"
)

// GroupStore defines the store port for group records.
// Implemented by the memory, SQL, and Firestore adapters; called by the application layer.
// Adapters translate their native failures into domain sentinels: a missing
// record is domain.ErrNotFound, an unreachable backend is domain.ErrUnavailable.
type GroupStore interface {
	// ListGroups returns every group. Order is unspecified.
	ListGroups(ctx context.Context) ([]group.Group, error)

	// GetGroup returns a single group by ID.
	// Returns domain.ErrNotFound if the group does not exist.
	GetGroup(ctx context.Context, id string) (*group.Group, error)

	// CreateGroup stores a new group and returns it with the server-assigned ID.
	CreateGroup(ctx context.Context, g *group.Group) (*group.Group, error)

	// UpdateGroup applies upd atomically and returns the stored result.
	// When upd.ExpectStreak is set the write is a compare-and-swap on the
	// group's streak state: it returns domain.ErrConflict without writing if
	// the stored streak differs.
	// Returns domain.ErrNotFound if the group does not exist.
	UpdateGroup(ctx context.Context, id string, upd group.Update) (*group.Group, error)

	// DeleteGroup removes a group.
	// Returns domain.ErrNotFound if the group does not exist.
	DeleteGroup(ctx context.Context, id string) error
}

// PostLedger defines the store port for the append-only daily post ledger.
type PostLedger interface {
	// RecordPost appends a post and returns it with the server-assigned ID.
	RecordPost(ctx context.Context, p *post.Post) (*post.Post, error)

	// ListPostsForGroupOnDate returns every post made to groupID on the given
	// calendar day. Order is unspecified.
	ListPostsForGroupOnDate(ctx context.Context, groupID, date string) ([]post.Post, error)
}

// PhotoStore defines the port for durable image storage.
type PhotoStore interface {
	// PutPhoto normalizes the uploaded image, stores it under key, and
	// returns the URL clients use to fetch it.
	// Returns domain.ErrValidation if the upload is not a decodable image
	// or exceeds the configured size.
	PutPhoto(ctx context.Context, key string, r io.Reader) (string, error)

	// DeletePhoto removes the photo stored under key. Deleting a missing
	// photo is not an error.
	DeletePhoto(ctx context.Context, key string) error
}

// RunLock serializes work that must not overlap across service replicas,
// such as the daily reset run.
type RunLock interface {
	// Acquire tries to take the named lock for at most ttl. It does not
	// block: acquired is false when another holder owns the lock. The
	// returned release func is nil when the lock was not acquired.
	Acquire(ctx context.Context, key string, ttl time.Duration) (release func(context.Context) error, acquired bool, err error)
}

// Identity is the authenticated caller of a request.
type Identity struct {
	UserID string
	Name   string
}

// TokenVerifier validates bearer tokens issued by the identity provider.
type TokenVerifier interface {
	// VerifyToken returns the identity the token was issued to.
	// Returns domain.ErrUnauthenticated if the token is invalid or expired.
	VerifyToken(ctx context.Context, token string) (*Identity, error)
}

// StreakRecorder receives streak lifecycle events for metrics.
// Implemented by the telemetry package; a nil recorder is never passed to
// services, which fall back to a no-op.
type StreakRecorder interface {
	// StreakCredited records a day credited to a group.
	StreakCredited(ctx context.Context)

	// StreakConflict records a lost compare-and-swap in the named operation.
	StreakConflict(ctx context.Context, operation string)

	// ResetCompleted records the outcome of a reset run. err is the error
	// the run returned, if any.
	ResetCompleted(ctx context.Context, res ResetResult, err error)
}
