// Package progress holds the streak state machine. Both mutation paths —
// the user check-in and the idle on-load sweep — run through the transition
// functions here, sharing one gap predicate, so the two reset behaviors live
// side by side in a single place instead of being scattered across handlers.
package progress

import "time"

// State is the streak portion of a user record.
type State struct {
	Current     int
	Longest     int
	LastCheckIn time.Time // zero value means no check-in has ever happened
}

// Result of applying a check-in.
type Result struct {
	State   State
	Applied bool // false when today was already checked in
}

// Advance applies a check-in on the calendar day of now.
//
// Rules: a second check-in on the same day is a no-op; a check-in the day
// after the last one extends the streak; a check-in after a gap, or the
// first check-in ever, starts a streak of 1. Longest only ever grows.
func Advance(s State, now time.Time) Result {
	today := dateOf(now)

	if !s.LastCheckIn.IsZero() && sameDay(s.LastCheckIn, today) {
		return Result{State: s, Applied: false}
	}

	next := s
	switch {
	case s.LastCheckIn.IsZero():
		next.Current = 1
	case sameDay(s.LastCheckIn, today.AddDate(0, 0, -1)):
		next.Current = s.Current + 1
	case GapExceeded(s.LastCheckIn, today):
		next.Current = 1
	default:
		next.Current = s.Current + 1
	}

	if next.Current > next.Longest {
		next.Longest = next.Current
	}
	next.LastCheckIn = today
	return Result{State: next, Applied: true}
}

// SweepReset is the periodic/on-load sweep: when the user has silently
// missed more than a day, the stale streak is zeroed so the UI does not
// keep showing it. Longest and LastCheckIn are untouched; the next Advance
// will start a fresh streak of 1.
func SweepReset(s State, now time.Time) State {
	if s.LastCheckIn.IsZero() {
		return s
	}
	if GapExceeded(s.LastCheckIn, dateOf(now)) {
		s.Current = 0
	}
	return s
}

// GapExceeded reports whether more than one calendar day has passed between
// the last check-in and today. It is the single boundary both reset
// policies share.
func GapExceeded(last, today time.Time) bool {
	return daysBetween(last, today) > 1
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// daysBetween counts whole calendar days between the dates of a and b.
// Both endpoints are renormalized to UTC midnight of their (year, month,
// day) so a 23-hour DST day still counts as a full day.
func daysBetween(a, b time.Time) int {
	au := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bu := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bu.Sub(au) / (24 * time.Hour))
}
