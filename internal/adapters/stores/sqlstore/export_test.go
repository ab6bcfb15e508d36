package sqlstore

import "context"

// Truncate empties every table so a shared test database starts clean.
func Truncate(ctx context.Context, s *Store) error {
	for _, table := range []string{"group_members", "groups", "posts"} {
		if _, err := s.db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return err
		}
	}
	return nil
}

// Rebind exposes placeholder rewriting for tests.
func Rebind(driver, query string) string {
	return (&Store{driver: driver}).rebind(query)
}
