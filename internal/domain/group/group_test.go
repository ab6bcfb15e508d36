package group

import (
	"errors"
	"testing"
	"time"

	"github.com/photostreak/streak-service/internal/domain"
)

func validGroup() Group {
	return Group{
		ID:        "g1",
		Name:      "Hiking crew",
		Members:   []string{"alice", "bob"},
		CreatedBy: "alice",
		CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Streak:    Streak{LastRollover: "2026-03-01"},
	}
}

// requireValidationField is a test helper that asserts err wraps domain.ErrValidation
// and the resulting ValidationError contains the expected field key.
func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func TestGroup_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		modify    func(*Group)
		wantErr   bool
		wantField string
	}{
		{
			name:    "valid group passes",
			modify:  func(_ *Group) {},
			wantErr: false,
		},
		{
			name:      "whitespace-only name fails",
			modify:    func(g *Group) { g.Name = "  " },
			wantErr:   true,
			wantField: "name",
		},
		{
			name:      "missing creator fails",
			modify:    func(g *Group) { g.CreatedBy = "" },
			wantErr:   true,
			wantField: "created_by",
		},
		{
			name:      "single member fails",
			modify:    func(g *Group) { g.Members = []string{"alice"} },
			wantErr:   true,
			wantField: "members",
		},
		{
			name:      "duplicate members fail",
			modify:    func(g *Group) { g.Members = []string{"alice", "alice"} },
			wantErr:   true,
			wantField: "members",
		},
		{
			name:      "creator outside members fails",
			modify:    func(g *Group) { g.Members = []string{"bob", "carol"} },
			wantErr:   true,
			wantField: "members",
		},
		{
			name:      "negative streak fails",
			modify:    func(g *Group) { g.Streak.Current = -1 },
			wantErr:   true,
			wantField: "current_streak",
		},
		{
			name:      "malformed rollover day fails",
			modify:    func(g *Group) { g.Streak.LastRollover = "03/01/2026" },
			wantErr:   true,
			wantField: "last_rollover",
		},
		{
			name:    "empty rollover day passes",
			modify:  func(g *Group) { g.Streak.LastRollover = "" },
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			g := validGroup()
			tt.modify(&g)
			err := g.Validate()

			if !tt.wantErr {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField)
		})
	}
}

func TestGroup_AllPosted(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		members []string
		posters map[string]bool
		want    bool
	}{
		{
			name:    "every member posted",
			members: []string{"a", "b"},
			posters: map[string]bool{"a": true, "b": true},
			want:    true,
		},
		{
			name:    "one member missing",
			members: []string{"a", "b"},
			posters: map[string]bool{"a": true},
			want:    false,
		},
		{
			name:    "extra posters are ignored",
			members: []string{"a"},
			posters: map[string]bool{"a": true, "departed": true},
			want:    true,
		},
		{
			name:    "no members is never complete",
			members: nil,
			posters: map[string]bool{"a": true},
			want:    false,
		},
		{
			name:    "nil posters",
			members: []string{"a"},
			posters: nil,
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := Group{Members: tt.members}
			if got := g.AllPosted(tt.posters); got != tt.want {
				t.Errorf("AllPosted(%v) = %v, want %v", tt.posters, got, tt.want)
			}
		})
	}
}

func TestGroup_Without(t *testing.T) {
	t.Parallel()

	g := Group{Members: []string{"a", "b", "c"}}
	got := g.Without("b")

	if len(got) != 2 || got[0] != "a" || got[1] != "c" {
		t.Errorf("Without(b) = %v, want [a c]", got)
	}
	if len(g.Members) != 3 {
		t.Errorf("Without mutated receiver: Members = %v", g.Members)
	}
}

func TestUpdate_ApplyAndMatches(t *testing.T) {
	t.Parallel()

	g := validGroup()
	prior := g.Streak
	next := Streak{Current: 1, Today: true, LastRollover: prior.LastRollover}

	upd := Update{Streak: &next, ExpectStreak: &prior, RemoveMember: "bob"}
	if !upd.Matches(g.Streak) {
		t.Fatal("Matches(prior) = false, want true")
	}

	got := upd.Apply(g)
	if got.Streak != next {
		t.Errorf("Apply().Streak = %+v, want %+v", got.Streak, next)
	}
	if len(got.Members) != 1 || got.Members[0] != "alice" {
		t.Errorf("Apply().Members = %v, want [alice]", got.Members)
	}
	if upd.Matches(next) {
		t.Error("Matches(next) = true, want false")
	}
	if !(Update{}).Matches(next) {
		t.Error("unconditional update should always match")
	}
}

func TestLeaderboard(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	groups := []Group{
		{ID: "zero", Streak: Streak{Current: 0}, CreatedAt: base},
		{ID: "old-three", Streak: Streak{Current: 3}, CreatedAt: base},
		{ID: "five", Streak: Streak{Current: 5}, CreatedAt: base},
		{ID: "new-three", Streak: Streak{Current: 3}, CreatedAt: base.Add(time.Hour)},
	}

	got := Leaderboard(groups)

	want := []string{"five", "new-three", "old-three"}
	if len(got) != len(want) {
		t.Fatalf("len(Leaderboard) = %d, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("Leaderboard[%d] = %q, want %q", i, got[i].ID, id)
		}
	}
}
