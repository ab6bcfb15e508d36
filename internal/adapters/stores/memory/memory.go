// Package memory provides in-process implementations of the store ports.
// It backs local development and the application-layer tests; every write is
// serialized under one mutex so compare-and-swap semantics match the real stores.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/photostreak/streak-service/internal/domain"
	"github.com/photostreak/streak-service/internal/domain/group"
	"github.com/photostreak/streak-service/internal/domain/post"
	"github.com/photostreak/streak-service/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.GroupStore    = (*Store)(nil)
	_ ports.PostLedger    = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

// Store keeps groups and posts in maps.
type Store struct {
	mu     sync.RWMutex
	groups map[string]group.Group
	posts  map[string][]post.Post // keyed by groupID + "/" + date
}

// New returns an empty Store.
func New() *Store {
	return &Store{
		groups: make(map[string]group.Group),
		posts:  make(map[string][]post.Post),
	}
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string { return "store-memory" }

// HealthCheck implements ports.HealthChecker. The memory store is always healthy.
func (s *Store) HealthCheck(context.Context) error { return nil }

// ListGroups returns copies of every stored group.
func (s *Store) ListGroups(_ context.Context) ([]group.Group, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]group.Group, 0, len(s.groups))
	for _, g := range s.groups {
		out = append(out, clone(g))
	}
	return out, nil
}

// GetGroup returns a copy of the stored group.
func (s *Store) GetGroup(_ context.Context, id string) (*group.Group, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.groups[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	c := clone(g)
	return &c, nil
}

// CreateGroup stores g under a new ID unless it already carries one.
func (s *Store) CreateGroup(_ context.Context, g *group.Group) (*group.Group, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := clone(*g)
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if _, exists := s.groups[c.ID]; exists {
		return nil, domain.ErrConflict
	}
	s.groups[c.ID] = c

	out := clone(c)
	return &out, nil
}

// UpdateGroup applies upd if its precondition holds.
func (s *Store) UpdateGroup(_ context.Context, id string, upd group.Update) (*group.Group, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.groups[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if !upd.Matches(g.Streak) {
		return nil, domain.ErrConflict
	}

	g = upd.Apply(clone(g))
	s.groups[id] = g

	out := clone(g)
	return &out, nil
}

// DeleteGroup removes a group.
func (s *Store) DeleteGroup(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.groups[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.groups, id)
	return nil
}

// RecordPost appends p to the ledger.
func (s *Store) RecordPost(_ context.Context, p *post.Post) (*post.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := *p
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	key := ledgerKey(c.GroupID, c.Date)
	s.posts[key] = append(s.posts[key], c)

	out := c
	return &out, nil
}

// ListPostsForGroupOnDate returns the posts recorded for groupID on date.
func (s *Store) ListPostsForGroupOnDate(_ context.Context, groupID, date string) ([]post.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.posts[ledgerKey(groupID, date)]), nil
}

func ledgerKey(groupID, date string) string { return groupID + "/" + date }

func clone(g group.Group) group.Group {
	g.Members = slices.Clone(g.Members)
	return g
}
