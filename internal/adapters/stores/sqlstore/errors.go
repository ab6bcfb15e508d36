package sqlstore

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/photostreak/streak-service/internal/domain"
)

// PostgreSQL error classes and codes the store distinguishes.
const (
	pqClassConnection   = "08"
	pqClassUnavailable  = "57" // operator intervention, e.g. admin shutdown
	pqUniqueViolation   = "23505"
	pqSerializationFail = "40001"
	pqDeadlockDetected  = "40P01"
)

// translate maps driver errors onto domain sentinels. Errors it does not
// recognize are returned unchanged.
func translate(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}

	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return fmt.Errorf("%w: %w", domain.ErrUnavailable, err)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch {
		case pqErr.Code == pqUniqueViolation:
			return fmt.Errorf("%w: %w", domain.ErrConflict, err)
		case pqErr.Code == pqSerializationFail, pqErr.Code == pqDeadlockDetected:
			return fmt.Errorf("%w: %w", domain.ErrConflict, err)
		case pqErr.Code.Class() == pqClassConnection, pqErr.Code.Class() == pqClassUnavailable:
			return fmt.Errorf("%w: %w", domain.ErrUnavailable, err)
		}
		return err
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() & 0xff {
		case sqlite3.SQLITE_CONSTRAINT:
			return fmt.Errorf("%w: %w", domain.ErrConflict, err)
		case sqlite3.SQLITE_BUSY, sqlite3.SQLITE_LOCKED:
			return fmt.Errorf("%w: %w", domain.ErrUnavailable, err)
		}
		return err
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return fmt.Errorf("%w: %w", domain.ErrUnavailable, err)
	}

	return err
}
