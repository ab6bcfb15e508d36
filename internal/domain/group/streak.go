package group

import "github.com/photostreak/streak-service/internal/domain/calendar"

// Streak is the cached aggregate a group keeps over its post ledger.
//
// Current counts consecutive completed days. Today reports whether the day
// opened by the most recent rollover has already been credited. LastRollover
// is the day whose opening boundary was last applied; it makes rollover
// idempotent and lets a writer notice a boundary nobody has processed yet.
type Streak struct {
	Current      int
	Today        bool
	LastRollover string
}

// RolloverOutcome classifies what a rollover did to a group.
type RolloverOutcome string

// Rollover outcomes.
const (
	RolloverMaintained RolloverOutcome = "maintained"
	RolloverReset      RolloverOutcome = "reset"
	RolloverSkipped    RolloverOutcome = "skipped"
)

// Credit marks the current day complete. It returns false and the receiver
// unchanged when the day was already credited.
func (s Streak) Credit() (Streak, bool) {
	if s.Today {
		return s, false
	}
	return Streak{Current: s.Current + 1, Today: true, LastRollover: s.LastRollover}, true
}

// Rollover applies the boundary that opens day.
//
// A credited day keeps the streak and clears the flag. An uncredited day, or
// any gap of more than one day since the last rollover, zeroes it. Applying a
// boundary at or before LastRollover is a no-op reported as RolloverSkipped.
// A zero LastRollover is treated as the day before. An unparseable
// LastRollover cannot prove the previous day was credited, so it resets.
func (s Streak) Rollover(day string) (Streak, RolloverOutcome) {
	credited := s.Today
	if s.LastRollover != "" {
		gap, err := calendar.DaysBetween(s.LastRollover, day)
		switch {
		case err != nil:
			credited = false
		case gap <= 0:
			return s, RolloverSkipped
		case gap > 1:
			credited = false
		}
	}
	if credited {
		return Streak{Current: s.Current, Today: false, LastRollover: day}, RolloverMaintained
	}
	return Streak{Current: 0, Today: false, LastRollover: day}, RolloverReset
}

// Passed reports whether a boundary later than day has already been applied.
// A day that has been passed can no longer be credited.
func (s Streak) Passed(day string) bool {
	if s.LastRollover == "" {
		return false
	}
	gap, err := calendar.DaysBetween(day, s.LastRollover)
	return err == nil && gap > 0
}

// NeedsRollover reports whether the boundary opening day has not been applied.
func (s Streak) NeedsRollover(day string) bool {
	_, outcome := s.Rollover(day)
	return outcome != RolloverSkipped
}
