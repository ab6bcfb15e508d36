package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
)

// migrations are applied in order. Each statement must be idempotent and use
// only syntax shared by SQLite and PostgreSQL.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS groups (
		id             TEXT PRIMARY KEY,
		name           TEXT NOT NULL,
		created_by     TEXT NOT NULL,
		created_at     TEXT NOT NULL,
		photo_url      TEXT NOT NULL DEFAULT '',
		current_streak INTEGER NOT NULL DEFAULT 0,
		today_streak   BOOLEAN NOT NULL DEFAULT FALSE,
		last_rollover  TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS group_members (
		group_id TEXT NOT NULL REFERENCES groups(id) ON DELETE CASCADE,
		user_id  TEXT NOT NULL,
		position INTEGER NOT NULL,
		PRIMARY KEY (group_id, user_id)
	)`,
	`CREATE TABLE IF NOT EXISTS posts (
		id          TEXT PRIMARY KEY,
		group_id    TEXT NOT NULL,
		user_id     TEXT NOT NULL,
		username    TEXT NOT NULL DEFAULT '',
		image_url   TEXT NOT NULL,
		caption     TEXT NOT NULL DEFAULT '',
		location    TEXT NOT NULL DEFAULT '',
		post_date   TEXT NOT NULL,
		uploaded_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_posts_group_date ON posts(group_id, post_date)`,
}

func (s *Store) migrate(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning migration: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, stmt := range migrations {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing migrations: %w", err)
	}
	return nil
}

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
