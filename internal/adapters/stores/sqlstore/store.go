// Package sqlstore implements the group store and post ledger on
// database/sql. It runs on SQLite through the pure-Go modernc driver for
// single-node deployments and on PostgreSQL through lib/pq.
//
// Streak compare-and-swap is a conditional UPDATE whose WHERE clause carries
// the expected streak; zero affected rows on an existing group is a conflict.
package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq" // PostgreSQL driver
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/photostreak/streak-service/internal/domain"
	"github.com/photostreak/streak-service/internal/domain/group"
	"github.com/photostreak/streak-service/internal/domain/post"
	"github.com/photostreak/streak-service/internal/ports"
)

// Supported drivers, matching the database/sql driver names.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

const timeLayout = time.RFC3339Nano

// Compile-time interface checks.
var (
	_ ports.GroupStore    = (*Store)(nil)
	_ ports.PostLedger    = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

// Store implements the store ports on a SQL database.
type Store struct {
	db     *sql.DB
	driver string
}

// Open connects to the database, applies migrations, and returns a Store.
// For SQLite the DSN is a file path whose parent directory is created.
func Open(ctx context.Context, driver, dsn string) (*Store, error) {
	switch driver {
	case DriverSQLite:
		if dir := filepath.Dir(dsn); dir != "." && !strings.HasPrefix(dsn, "file:") {
			if err := os.MkdirAll(dir, 0o750); err != nil {
				return nil, fmt.Errorf("creating database directory: %w", err)
			}
		}
	case DriverPostgres:
	default:
		return nil, fmt.Errorf("unsupported sql driver %q", driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("opening %s database: %w", driver, err)
	}

	s := &Store{db: db, driver: driver}

	if driver == DriverSQLite {
		// One connection serializes writers, so SQLITE_BUSY never surfaces.
		db.SetMaxOpenConns(1)
		if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("enabling foreign keys: %w", err)
		}
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connecting to %s: %w", driver, translate(err))
	}

	if err := s.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string { return "store-" + s.driver }

// HealthCheck implements ports.HealthChecker by pinging the database.
func (s *Store) HealthCheck(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%s: %w", s.Name(), translate(err))
	}
	return nil
}

// ListGroups returns every group with its members.
func (s *Store) ListGroups(ctx context.Context) ([]group.Group, error) {
	rows, err := s.db.QueryContext(ctx, s.rebind(
		`SELECT id, name, created_by, created_at, photo_url, current_streak, today_streak, last_rollover
		FROM groups ORDER BY id`))
	if err != nil {
		return nil, fmt.Errorf("listing groups: %w", translate(err))
	}
	defer func() { _ = rows.Close() }()

	var groups []group.Group
	index := make(map[string]int)
	for rows.Next() {
		g, err := scanGroup(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning group: %w", err)
		}
		index[g.ID] = len(groups)
		groups = append(groups, *g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing groups: %w", translate(err))
	}

	members, err := s.db.QueryContext(ctx, s.rebind(
		`SELECT group_id, user_id FROM group_members ORDER BY group_id, position`))
	if err != nil {
		return nil, fmt.Errorf("listing members: %w", translate(err))
	}
	defer func() { _ = members.Close() }()

	for members.Next() {
		var groupID, userID string
		if err := members.Scan(&groupID, &userID); err != nil {
			return nil, fmt.Errorf("scanning member: %w", err)
		}
		// Members of a group created between the two queries are skipped
		// along with the group.
		if i, ok := index[groupID]; ok {
			groups[i].Members = append(groups[i].Members, userID)
		}
	}
	if err := members.Err(); err != nil {
		return nil, fmt.Errorf("listing members: %w", translate(err))
	}

	return groups, nil
}

// GetGroup returns a single group with its members.
func (s *Store) GetGroup(ctx context.Context, id string) (*group.Group, error) {
	g, err := s.getGroup(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	return g, nil
}

// CreateGroup inserts g and its members in one transaction.
func (s *Store) CreateGroup(ctx context.Context, g *group.Group) (*group.Group, error) {
	c := *g
	if c.ID == "" {
		c.ID = uuid.New().String()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", translate(err))
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, s.rebind(
		`INSERT INTO groups (id, name, created_by, created_at, photo_url, current_streak, today_streak, last_rollover)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`),
		c.ID, c.Name, c.CreatedBy, formatTime(c.CreatedAt), c.PhotoURL,
		c.Streak.Current, c.Streak.Today, c.Streak.LastRollover,
	); err != nil {
		return nil, fmt.Errorf("inserting group: %w", translate(err))
	}

	for i, userID := range c.Members {
		if _, err := tx.ExecContext(ctx, s.rebind(
			`INSERT INTO group_members (group_id, user_id, position) VALUES (?, ?, ?)`),
			c.ID, userID, i,
		); err != nil {
			return nil, fmt.Errorf("inserting member: %w", translate(err))
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing group: %w", translate(err))
	}

	c.Members = append([]string(nil), c.Members...)
	return &c, nil
}

// UpdateGroup applies upd in one transaction. When upd.ExpectStreak is set
// the streak write is conditional on the stored streak.
func (s *Store) UpdateGroup(ctx context.Context, id string, upd group.Update) (*group.Group, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", translate(err))
	}
	defer func() { _ = tx.Rollback() }()

	if err := s.writeStreak(ctx, tx, id, upd); err != nil {
		return nil, err
	}

	if upd.RemoveMember != "" {
		if _, err := tx.ExecContext(ctx, s.rebind(
			`DELETE FROM group_members WHERE group_id = ? AND user_id = ?`),
			id, upd.RemoveMember,
		); err != nil {
			return nil, fmt.Errorf("removing member: %w", translate(err))
		}
	}

	g, err := s.getGroup(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing update: %w", translate(err))
	}
	return g, nil
}

// writeStreak performs the streak half of an update. It also establishes that
// the group exists, so an update with no streak change still reports
// domain.ErrNotFound for a missing group.
func (s *Store) writeStreak(ctx context.Context, tx *sql.Tx, id string, upd group.Update) error {
	next := upd.Streak
	if next == nil {
		next = upd.ExpectStreak
	}

	if next == nil {
		return s.requireGroup(ctx, tx, id)
	}

	query := `UPDATE groups SET current_streak = ?, today_streak = ?, last_rollover = ? WHERE id = ?`
	args := []any{next.Current, next.Today, next.LastRollover, id}
	if exp := upd.ExpectStreak; exp != nil {
		query += ` AND current_streak = ? AND today_streak = ? AND last_rollover = ?`
		args = append(args, exp.Current, exp.Today, exp.LastRollover)
	}

	res, err := tx.ExecContext(ctx, s.rebind(query), args...)
	if err != nil {
		return fmt.Errorf("updating streak: %w", translate(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating streak: %w", translate(err))
	}
	if n > 0 {
		return nil
	}

	if err := s.requireGroup(ctx, tx, id); err != nil {
		return err
	}
	return domain.ErrConflict
}

func (s *Store) requireGroup(ctx context.Context, q execer, id string) error {
	var one int
	err := q.QueryRowContext(ctx, s.rebind(`SELECT 1 FROM groups WHERE id = ?`), id).Scan(&one)
	if err != nil {
		return translate(err)
	}
	return nil
}

// DeleteGroup removes a group; members cascade. Posts stay in the ledger.
func (s *Store) DeleteGroup(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", translate(err))
	}
	defer func() { _ = tx.Rollback() }()

	// Explicit delete so the cascade does not depend on SQLite's per-connection
	// foreign_keys pragma.
	if _, err := tx.ExecContext(ctx, s.rebind(`DELETE FROM group_members WHERE group_id = ?`), id); err != nil {
		return fmt.Errorf("deleting members: %w", translate(err))
	}

	res, err := tx.ExecContext(ctx, s.rebind(`DELETE FROM groups WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("deleting group: %w", translate(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting group: %w", translate(err))
	}
	if n == 0 {
		return domain.ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing delete: %w", translate(err))
	}
	return nil
}

// RecordPost appends p to the ledger.
func (s *Store) RecordPost(ctx context.Context, p *post.Post) (*post.Post, error) {
	c := *p
	if c.ID == "" {
		c.ID = uuid.New().String()
	}

	if _, err := s.db.ExecContext(ctx, s.rebind(
		`INSERT INTO posts (id, group_id, user_id, username, image_url, caption, location, post_date, uploaded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`),
		c.ID, c.GroupID, c.UserID, c.Username, c.ImageURL, c.Caption, c.Location, c.Date, formatTime(c.UploadedAt),
	); err != nil {
		return nil, fmt.Errorf("inserting post: %w", translate(err))
	}
	return &c, nil
}

// ListPostsForGroupOnDate returns the posts recorded for groupID on date.
func (s *Store) ListPostsForGroupOnDate(ctx context.Context, groupID, date string) ([]post.Post, error) {
	rows, err := s.db.QueryContext(ctx, s.rebind(
		`SELECT id, group_id, user_id, username, image_url, caption, location, post_date, uploaded_at
		FROM posts WHERE group_id = ? AND post_date = ?`),
		groupID, date,
	)
	if err != nil {
		return nil, fmt.Errorf("listing posts: %w", translate(err))
	}
	defer func() { _ = rows.Close() }()

	var posts []post.Post
	for rows.Next() {
		var (
			p          post.Post
			uploadedAt string
		)
		if err := rows.Scan(&p.ID, &p.GroupID, &p.UserID, &p.Username, &p.ImageURL,
			&p.Caption, &p.Location, &p.Date, &uploadedAt); err != nil {
			return nil, fmt.Errorf("scanning post: %w", err)
		}
		if p.UploadedAt, err = parseTime(uploadedAt); err != nil {
			return nil, fmt.Errorf("post %s: %w", p.ID, err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing posts: %w", translate(err))
	}
	return posts, nil
}

func (s *Store) getGroup(ctx context.Context, q execer, id string) (*group.Group, error) {
	row := q.QueryRowContext(ctx, s.rebind(
		`SELECT id, name, created_by, created_at, photo_url, current_streak, today_streak, last_rollover
		FROM groups WHERE id = ?`), id)

	g, err := scanGroup(row)
	if err != nil {
		return nil, translate(err)
	}

	rows, err := q.QueryContext(ctx, s.rebind(
		`SELECT user_id FROM group_members WHERE group_id = ? ORDER BY position`), id)
	if err != nil {
		return nil, fmt.Errorf("loading members: %w", translate(err))
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var userID string
		if err := rows.Scan(&userID); err != nil {
			return nil, fmt.Errorf("scanning member: %w", err)
		}
		g.Members = append(g.Members, userID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("loading members: %w", translate(err))
	}
	return g, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanGroup(sc scanner) (*group.Group, error) {
	var (
		g         group.Group
		createdAt string
	)
	if err := sc.Scan(&g.ID, &g.Name, &g.CreatedBy, &createdAt, &g.PhotoURL,
		&g.Streak.Current, &g.Streak.Today, &g.Streak.LastRollover); err != nil {
		return nil, err
	}
	t, err := parseTime(createdAt)
	if err != nil {
		return nil, fmt.Errorf("group %s: %w", g.ID, err)
	}
	g.CreatedAt = t
	return &g, nil
}

// rebind rewrites ? placeholders to $n for PostgreSQL.
func (s *Store) rebind(query string) string {
	if s.driver != DriverPostgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing timestamp %q: %w", s, err)
	}
	return t, nil
}
