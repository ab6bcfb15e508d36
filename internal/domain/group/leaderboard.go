package group

import (
	"cmp"
	"slices"
)

// Leaderboard returns the groups with a live streak, longest first. Ties go
// to the newest group.
func Leaderboard(groups []Group) []Group {
	out := make([]Group, 0, len(groups))
	for _, g := range groups {
		if g.Streak.Current > 0 {
			out = append(out, g)
		}
	}
	slices.SortStableFunc(out, func(a, b Group) int {
		if c := cmp.Compare(b.Streak.Current, a.Streak.Current); c != 0 {
			return c
		}
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return out
}
