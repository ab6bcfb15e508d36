package sqlstore

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"

	"github.com/photostreak/streak-service/internal/domain"
)

func TestTranslate(t *testing.T) {
	t.Parallel()

	plain := errors.New("syntax error")

	tests := []struct {
		name string
		in   error
		want error
	}{
		{name: "no rows", in: sql.ErrNoRows, want: domain.ErrNotFound},
		{name: "wrapped no rows", in: fmt.Errorf("scan: %w", sql.ErrNoRows), want: domain.ErrNotFound},
		{name: "bad conn", in: driver.ErrBadConn, want: domain.ErrUnavailable},
		{name: "conn done", in: sql.ErrConnDone, want: domain.ErrUnavailable},
		{name: "pq unique violation", in: &pq.Error{Code: "23505"}, want: domain.ErrConflict},
		{name: "pq serialization failure", in: &pq.Error{Code: "40001"}, want: domain.ErrConflict},
		{name: "pq connection failure", in: &pq.Error{Code: "08006"}, want: domain.ErrUnavailable},
		{name: "pq admin shutdown", in: &pq.Error{Code: "57P01"}, want: domain.ErrUnavailable},
		{name: "pq other", in: &pq.Error{Code: "42601"}, want: nil},
		{name: "unknown", in: plain, want: plain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := translate(tt.in)
			want := tt.want
			if want == nil {
				want = tt.in
			}
			if !errors.Is(got, want) {
				t.Errorf("translate(%v) = %v, want errors.Is %v", tt.in, got, want)
			}
		})
	}
}

func TestTranslate_Nil(t *testing.T) {
	t.Parallel()

	if err := translate(nil); err != nil {
		t.Errorf("translate(nil) = %v, want nil", err)
	}
}

func TestRebind(t *testing.T) {
	t.Parallel()

	const q = "UPDATE groups SET current_streak = ? WHERE id = ? AND current_streak = ?"

	if got := Rebind(DriverSQLite, q); got != q {
		t.Errorf("Rebind(sqlite) = %q, want unchanged", got)
	}

	want := "UPDATE groups SET current_streak = $1 WHERE id = $2 AND current_streak = $3"
	if got := Rebind(DriverPostgres, q); got != want {
		t.Errorf("Rebind(postgres) = %q, want %q", got, want)
	}
}
