package group

// Update describes a partial write to a stored group. Nil fields are left
// untouched.
type Update struct {
	// Streak replaces the stored streak state.
	Streak *Streak

	// ExpectStreak makes the write conditional: the store applies the update
	// only if the stored streak still equals it, and returns domain.ErrConflict
	// otherwise.
	ExpectStreak *Streak

	// RemoveMember removes one user from the member list as a single atomic
	// operation. Removing an absent user is not an error.
	RemoveMember string
}

// Apply returns g with the update applied. Stores that cannot express the
// update natively use it after checking ExpectStreak themselves.
func (u Update) Apply(g Group) Group {
	if u.Streak != nil {
		g.Streak = *u.Streak
	}
	if u.RemoveMember != "" {
		g.Members = g.Without(u.RemoveMember)
	}
	return g
}

// Matches reports whether s satisfies the update's precondition.
func (u Update) Matches(s Streak) bool {
	return u.ExpectStreak == nil || *u.ExpectStreak == s
}
