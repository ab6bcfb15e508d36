// Package guarded decorates a group store and post ledger with the
// resilience guard: breaker, rate limit, per-attempt timeout, retry on
// unavailability, tracing and store metrics.
//
// Reads and conditional writes are retried. Inserts run once, because a
// replay after an ambiguous failure could duplicate a post.
package guarded

import (
	"context"

	"github.com/photostreak/streak-service/internal/domain/group"
	"github.com/photostreak/streak-service/internal/domain/post"
	"github.com/photostreak/streak-service/internal/platform/resilience"
	"github.com/photostreak/streak-service/internal/ports"
)

// Backend is the store a Guard protects.
type Backend interface {
	ports.GroupStore
	ports.PostLedger
}

// Compile-time interface checks.
var (
	_ ports.GroupStore = (*Store)(nil)
	_ ports.PostLedger = (*Store)(nil)
)

// Store forwards every call to the backend through a guard.
type Store struct {
	next  Backend
	guard *resilience.Guard
}

// New wraps next with guard.
func New(next Backend, guard *resilience.Guard) *Store {
	return &Store{next: next, guard: guard}
}

// ListGroups implements ports.GroupStore.
func (s *Store) ListGroups(ctx context.Context) ([]group.Group, error) {
	var out []group.Group
	err := s.guard.Do(ctx, "ListGroups", func(ctx context.Context) error {
		var err error
		out, err = s.next.ListGroups(ctx)
		return err
	})
	return out, err
}

// GetGroup implements ports.GroupStore.
func (s *Store) GetGroup(ctx context.Context, id string) (*group.Group, error) {
	var out *group.Group
	err := s.guard.Do(ctx, "GetGroup", func(ctx context.Context) error {
		var err error
		out, err = s.next.GetGroup(ctx, id)
		return err
	})
	return out, err
}

// CreateGroup implements ports.GroupStore.
func (s *Store) CreateGroup(ctx context.Context, g *group.Group) (*group.Group, error) {
	var out *group.Group
	err := s.guard.Once(ctx, "CreateGroup", func(ctx context.Context) error {
		var err error
		out, err = s.next.CreateGroup(ctx, g)
		return err
	})
	return out, err
}

// UpdateGroup implements ports.GroupStore. Updates are safe to replay: a
// conditional write that already committed fails its precondition, and
// member removal is idempotent.
func (s *Store) UpdateGroup(ctx context.Context, id string, upd group.Update) (*group.Group, error) {
	var out *group.Group
	err := s.guard.Do(ctx, "UpdateGroup", func(ctx context.Context) error {
		var err error
		out, err = s.next.UpdateGroup(ctx, id, upd)
		return err
	})
	return out, err
}

// DeleteGroup implements ports.GroupStore.
func (s *Store) DeleteGroup(ctx context.Context, id string) error {
	return s.guard.Once(ctx, "DeleteGroup", func(ctx context.Context) error {
		return s.next.DeleteGroup(ctx, id)
	})
}

// RecordPost implements ports.PostLedger.
func (s *Store) RecordPost(ctx context.Context, p *post.Post) (*post.Post, error) {
	var out *post.Post
	err := s.guard.Once(ctx, "RecordPost", func(ctx context.Context) error {
		var err error
		out, err = s.next.RecordPost(ctx, p)
		return err
	})
	return out, err
}

// ListPostsForGroupOnDate implements ports.PostLedger.
func (s *Store) ListPostsForGroupOnDate(ctx context.Context, groupID, date string) ([]post.Post, error) {
	var out []post.Post
	err := s.guard.Do(ctx, "ListPostsForGroupOnDate", func(ctx context.Context) error {
		var err error
		out, err = s.next.ListPostsForGroupOnDate(ctx, groupID, date)
		return err
	})
	return out, err
}
