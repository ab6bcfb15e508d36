// Package calendar converts instants into calendar days in the single time
// zone every streak decision is made in.
package calendar

import (
	"fmt"
	"time"
)

// DayLayout is the wire and storage format of a calendar day.
const DayLayout = "2006-01-02"

// DefaultTimeZone is the zone the daily reset has always run in.
const DefaultTimeZone = "Europe/Skopje"

// Calendar answers "what day is it" for one fixed location.
type Calendar struct {
	loc *time.Location
	now func() time.Time
}

// Option configures a Calendar.
type Option func(*Calendar)

// WithClock replaces time.Now. Tests use it to pin the current instant.
func WithClock(now func() time.Time) Option {
	return func(c *Calendar) { c.now = now }
}

// New returns a Calendar for the named IANA zone.
func New(zone string, opts ...Option) (*Calendar, error) {
	if zone == "" {
		zone = DefaultTimeZone
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("loading time zone %q: %w", zone, err)
	}
	c := &Calendar{loc: loc, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Location returns the calendar's zone.
func (c *Calendar) Location() *time.Location { return c.loc }

// Now returns the current instant in the calendar's zone.
func (c *Calendar) Now() time.Time { return c.now().In(c.loc) }

// Today returns the current calendar day.
func (c *Calendar) Today() string { return c.DayOf(c.now()) }

// DayOf returns the calendar day t falls on.
func (c *Calendar) DayOf(t time.Time) string { return t.In(c.loc).Format(DayLayout) }

// Valid reports whether day is a well-formed calendar day.
func Valid(day string) bool {
	_, err := time.Parse(DayLayout, day)
	return err == nil
}

// DaysBetween returns the number of day boundaries from a to b. It is
// negative when b precedes a.
func DaysBetween(a, b string) (int, error) {
	ta, err := time.Parse(DayLayout, a)
	if err != nil {
		return 0, fmt.Errorf("parsing day %q: %w", a, err)
	}
	tb, err := time.Parse(DayLayout, b)
	if err != nil {
		return 0, fmt.Errorf("parsing day %q: %w", b, err)
	}
	return int(tb.Sub(ta).Hours() / 24), nil
}
