// Package storetest holds the behavioral contract every group store and post
// ledger adapter must satisfy. Adapter tests call Run with a factory that
// returns a fresh, empty store.
package storetest

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/photostreak/streak-service/internal/domain"
	"github.com/photostreak/streak-service/internal/domain/group"
	"github.com/photostreak/streak-service/internal/domain/post"
	"github.com/photostreak/streak-service/internal/ports"
)

// Store is the combination of ports a backend adapter implements.
type Store interface {
	ports.GroupStore
	ports.PostLedger
}

// Run exercises store against the port contract. newStore is called once per
// subtest and must return an empty store.
func Run(t *testing.T, newStore func(t *testing.T) Store) {
	t.Helper()

	t.Run("GroupLifecycle", func(t *testing.T) { testGroupLifecycle(t, newStore(t)) })
	t.Run("CreateWithExplicitID", func(t *testing.T) { testCreateWithExplicitID(t, newStore(t)) })
	t.Run("ListGroups", func(t *testing.T) { testListGroups(t, newStore(t)) })
	t.Run("CompareAndSwap", func(t *testing.T) { testCompareAndSwap(t, newStore(t)) })
	t.Run("ConcurrentCompareAndSwap", func(t *testing.T) { testConcurrentCompareAndSwap(t, newStore(t)) })
	t.Run("RemoveMemberUnderExpectation", func(t *testing.T) { testRemoveMemberUnderExpectation(t, newStore(t)) })
	t.Run("MissingGroup", func(t *testing.T) { testMissingGroup(t, newStore(t)) })
	t.Run("Ledger", func(t *testing.T) { testLedger(t, newStore(t)) })
}

func newGroup(id string, members ...string) *group.Group {
	return &group.Group{
		ID:        id,
		Name:      "crew " + id,
		Members:   members,
		CreatedBy: members[0],
		CreatedAt: time.Date(2026, 5, 1, 9, 30, 0, 0, time.UTC),
		Streak:    group.Streak{LastRollover: "2026-05-01"},
	}
}

func testGroupLifecycle(t *testing.T, s Store) {
	ctx := context.Background()

	in := newGroup("", "a", "b", "c")
	created, err := s.CreateGroup(ctx, in)
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := s.GetGroup(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, in.Name, got.Name)
	assert.Equal(t, []string{"a", "b", "c"}, got.Members)
	assert.Equal(t, "a", got.CreatedBy)
	assert.True(t, in.CreatedAt.Equal(got.CreatedAt), "CreatedAt = %v, want %v", got.CreatedAt, in.CreatedAt)
	assert.Equal(t, in.Streak, got.Streak)

	updated, err := s.UpdateGroup(ctx, created.ID, group.Update{RemoveMember: "b"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, updated.Members)

	// Removing an absent member is not an error.
	updated, err = s.UpdateGroup(ctx, created.ID, group.Update{RemoveMember: "zed"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, updated.Members)

	require.NoError(t, s.DeleteGroup(ctx, created.ID))
	_, err = s.GetGroup(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, s.DeleteGroup(ctx, created.ID), domain.ErrNotFound)
}

func testCreateWithExplicitID(t *testing.T, s Store) {
	ctx := context.Background()

	created, err := s.CreateGroup(ctx, newGroup("g1", "a", "b"))
	require.NoError(t, err)
	assert.Equal(t, "g1", created.ID)

	_, err = s.CreateGroup(ctx, newGroup("g1", "c", "d"))
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func testListGroups(t *testing.T, s Store) {
	ctx := context.Background()

	empty, err := s.ListGroups(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = s.CreateGroup(ctx, newGroup("g1", "a", "b"))
	require.NoError(t, err)
	_, err = s.CreateGroup(ctx, newGroup("g2", "c", "d", "e"))
	require.NoError(t, err)

	groups, err := s.ListGroups(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 2)

	members := make(map[string][]string)
	for _, g := range groups {
		members[g.ID] = g.Members
	}
	assert.Equal(t, []string{"a", "b"}, members["g1"])
	assert.Equal(t, []string{"c", "d", "e"}, members["g2"])
}

func testCompareAndSwap(t *testing.T, s Store) {
	ctx := context.Background()

	g, err := s.CreateGroup(ctx, newGroup("g1", "a", "b"))
	require.NoError(t, err)

	prior := g.Streak
	next := group.Streak{Current: 1, Today: true, LastRollover: prior.LastRollover}

	updated, err := s.UpdateGroup(ctx, "g1", group.Update{Streak: &next, ExpectStreak: &prior})
	require.NoError(t, err)
	assert.Equal(t, next, updated.Streak)

	// Same precondition again: the stored state moved on.
	_, err = s.UpdateGroup(ctx, "g1", group.Update{Streak: &next, ExpectStreak: &prior})
	require.ErrorIs(t, err, domain.ErrConflict)

	got, err := s.GetGroup(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, next, got.Streak, "a failed compare-and-swap must not write")

	// Unconditional writes always apply.
	reset := group.Streak{LastRollover: "2026-05-02"}
	updated, err = s.UpdateGroup(ctx, "g1", group.Update{Streak: &reset})
	require.NoError(t, err)
	assert.Equal(t, reset, updated.Streak)
}

func testConcurrentCompareAndSwap(t *testing.T, s Store) {
	ctx := context.Background()

	g, err := s.CreateGroup(ctx, newGroup("g1", "a", "b"))
	require.NoError(t, err)

	prior := g.Streak
	next := group.Streak{Current: 1, Today: true, LastRollover: prior.LastRollover}

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.UpdateGroup(ctx, "g1", group.Update{Streak: &next, ExpectStreak: &prior})
			switch {
			case err == nil:
				mu.Lock()
				wins++
				mu.Unlock()
			case !errors.Is(err, domain.ErrConflict):
				t.Errorf("UpdateGroup() error = %v, want nil or ErrConflict", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, wins)
}

func testRemoveMemberUnderExpectation(t *testing.T, s Store) {
	ctx := context.Background()

	g, err := s.CreateGroup(ctx, newGroup("g1", "a", "b", "c"))
	require.NoError(t, err)

	stale := group.Streak{Current: 9}
	_, err = s.UpdateGroup(ctx, "g1", group.Update{RemoveMember: "b", ExpectStreak: &stale})
	require.ErrorIs(t, err, domain.ErrConflict)

	got, err := s.GetGroup(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, got.Members, "a failed precondition must not remove the member")

	current := g.Streak
	updated, err := s.UpdateGroup(ctx, "g1", group.Update{RemoveMember: "b", ExpectStreak: &current})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, updated.Members)
}

func testMissingGroup(t *testing.T, s Store) {
	ctx := context.Background()

	_, err := s.GetGroup(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	next := group.Streak{Current: 1}
	_, err = s.UpdateGroup(ctx, "missing", group.Update{Streak: &next})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = s.UpdateGroup(ctx, "missing", group.Update{Streak: &next, ExpectStreak: &group.Streak{}})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = s.UpdateGroup(ctx, "missing", group.Update{RemoveMember: "a"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func testLedger(t *testing.T, s Store) {
	ctx := context.Background()
	uploaded := time.Date(2026, 5, 2, 8, 15, 0, 0, time.UTC)

	first, err := s.RecordPost(ctx, &post.Post{
		GroupID: "g1", UserID: "a", Username: "Ana", ImageURL: "/photos/a.jpg",
		Caption: "sunrise", Location: "Ohrid", Date: "2026-05-02", UploadedAt: uploaded,
	})
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)

	_, err = s.RecordPost(ctx, &post.Post{GroupID: "g1", UserID: "b", ImageURL: "/photos/b.jpg", Date: "2026-05-03", UploadedAt: uploaded})
	require.NoError(t, err)
	_, err = s.RecordPost(ctx, &post.Post{GroupID: "g2", UserID: "a", ImageURL: "/photos/c.jpg", Date: "2026-05-02", UploadedAt: uploaded})
	require.NoError(t, err)

	posts, err := s.ListPostsForGroupOnDate(ctx, "g1", "2026-05-02")
	require.NoError(t, err)
	require.Len(t, posts, 1)

	got := posts[0]
	assert.Equal(t, first.ID, got.ID)
	assert.Equal(t, "a", got.UserID)
	assert.Equal(t, "Ana", got.Username)
	assert.Equal(t, "sunrise", got.Caption)
	assert.Equal(t, "Ohrid", got.Location)
	assert.True(t, uploaded.Equal(got.UploadedAt), "UploadedAt = %v, want %v", got.UploadedAt, uploaded)

	none, err := s.ListPostsForGroupOnDate(ctx, "g3", "2026-05-02")
	require.NoError(t, err)
	assert.Empty(t, none)
}
