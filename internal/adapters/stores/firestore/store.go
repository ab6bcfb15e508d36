// Package firestore implements the group store and post ledger on Cloud
// Firestore. Groups live in one collection keyed by group ID; posts are
// documents in a flat ledger collection queried by group and day.
//
// Conditional updates run inside a Firestore transaction: the group is read,
// the expected streak compared, and the write committed atomically. The
// member list shrinks with ArrayRemove so concurrent departures never
// overwrite each other.
package firestore

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

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

// Store implements the store ports on a Firestore client.
type Store struct {
	client *firestore.Client
	groups string
	posts  string
}

// New creates a Store over the named collections.
func New(client *firestore.Client, groupsCollection, postsCollection string) *Store {
	return &Store{
		client: client,
		groups: groupsCollection,
		posts:  postsCollection,
	}
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string { return "store-firestore" }

// HealthCheck implements ports.HealthChecker with a one-document read.
func (s *Store) HealthCheck(ctx context.Context) error {
	iter := s.client.Collection(s.groups).Limit(1).Documents(ctx)
	defer iter.Stop()

	if _, err := iter.Next(); err != nil && !errors.Is(err, iterator.Done) {
		return fmt.Errorf("%s: %w", s.Name(), translate(err))
	}
	return nil
}

// ListGroups streams every group document.
func (s *Store) ListGroups(ctx context.Context) ([]group.Group, error) {
	iter := s.client.Collection(s.groups).Documents(ctx)
	defer iter.Stop()

	var groups []group.Group
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("listing groups: %w", translate(err))
		}

		var d groupDoc
		if err := snap.DataTo(&d); err != nil {
			return nil, fmt.Errorf("decoding group %s: %w", snap.Ref.ID, err)
		}
		groups = append(groups, toGroup(snap.Ref.ID, d))
	}
	return groups, nil
}

// GetGroup reads one group document.
func (s *Store) GetGroup(ctx context.Context, id string) (*group.Group, error) {
	snap, err := s.client.Collection(s.groups).Doc(id).Get(ctx)
	if err != nil {
		return nil, translate(err)
	}

	var d groupDoc
	if err := snap.DataTo(&d); err != nil {
		return nil, fmt.Errorf("decoding group %s: %w", id, err)
	}
	g := toGroup(id, d)
	return &g, nil
}

// CreateGroup writes a new group document, failing with domain.ErrConflict
// if g.ID is already taken.
func (s *Store) CreateGroup(ctx context.Context, g *group.Group) (*group.Group, error) {
	col := s.client.Collection(s.groups)

	ref := col.NewDoc()
	if g.ID != "" {
		ref = col.Doc(g.ID)
	}

	d := fromGroup(g)
	if _, err := ref.Create(ctx, d); err != nil {
		return nil, fmt.Errorf("creating group: %w", translate(err))
	}

	out := toGroup(ref.ID, d)
	return &out, nil
}

// UpdateGroup applies upd inside a transaction.
func (s *Store) UpdateGroup(ctx context.Context, id string, upd group.Update) (*group.Group, error) {
	ref := s.client.Collection(s.groups).Doc(id)

	var out group.Group
	err := s.client.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil {
			return translate(err)
		}

		var d groupDoc
		if err := snap.DataTo(&d); err != nil {
			return fmt.Errorf("decoding group %s: %w", id, err)
		}
		cur := toGroup(id, d)

		if !upd.Matches(cur.Streak) {
			return domain.ErrConflict
		}

		out = upd.Apply(cur)

		updates := updatesFor(upd)
		if len(updates) == 0 {
			return nil
		}
		return tx.Update(ref, updates)
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrConflict) {
			return nil, err
		}
		return nil, fmt.Errorf("updating group: %w", translate(err))
	}
	return &out, nil
}

// updatesFor converts upd into field-level document updates.
func updatesFor(upd group.Update) []firestore.Update {
	var updates []firestore.Update
	if s := upd.Streak; s != nil {
		updates = append(updates,
			firestore.Update{Path: fieldCurrentStreak, Value: int64(s.Current)},
			firestore.Update{Path: fieldTodayStreak, Value: s.Today},
			firestore.Update{Path: fieldLastRollover, Value: s.LastRollover},
		)
	}
	if upd.RemoveMember != "" {
		updates = append(updates, firestore.Update{Path: fieldMembers, Value: firestore.ArrayRemove(upd.RemoveMember)})
	}
	return updates
}

// DeleteGroup removes a group document. Ledger entries are kept.
func (s *Store) DeleteGroup(ctx context.Context, id string) error {
	if _, err := s.client.Collection(s.groups).Doc(id).Delete(ctx, firestore.Exists); err != nil {
		return translate(err)
	}
	return nil
}

// RecordPost appends a ledger document.
func (s *Store) RecordPost(ctx context.Context, p *post.Post) (*post.Post, error) {
	col := s.client.Collection(s.posts)

	ref := col.NewDoc()
	if p.ID != "" {
		ref = col.Doc(p.ID)
	}

	d := fromPost(p)
	if _, err := ref.Create(ctx, d); err != nil {
		return nil, fmt.Errorf("recording post: %w", translate(err))
	}

	out := toPost(ref.ID, d)
	return &out, nil
}

// ListPostsForGroupOnDate queries the ledger by group and day.
func (s *Store) ListPostsForGroupOnDate(ctx context.Context, groupID, date string) ([]post.Post, error) {
	iter := s.client.Collection(s.posts).
		Where(fieldGroupID, "==", groupID).
		Where(fieldDate, "==", date).
		Documents(ctx)
	defer iter.Stop()

	var posts []post.Post
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("listing posts: %w", translate(err))
		}

		var d postDoc
		if err := snap.DataTo(&d); err != nil {
			return nil, fmt.Errorf("decoding post %s: %w", snap.Ref.ID, err)
		}
		posts = append(posts, toPost(snap.Ref.ID, d))
	}
	return posts, nil
}
