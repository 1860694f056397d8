// Package streak implements the daily-habit streak state transition.
// All comparisons use calendar day/month/year equality in the local
// timezone, never elapsed-hours arithmetic: two check-ins 20 hours
// apart that cross midnight count as consecutive days.
package streak

import "time"

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// IsYesterday reports whether t falls on the calendar day before now.
func IsYesterday(t, now time.Time) bool {
	return SameDay(t, now.AddDate(0, 0, -1))
}

// CheckedOn reports whether a habit with the given last check-in is
// already checked for the calendar day of now. A nil lastChecked means
// the habit has never been checked.
func CheckedOn(lastChecked *time.Time, now time.Time) bool {
	return lastChecked != nil && SameDay(*lastChecked, now)
}

// Next returns the streak value after a productive check-in at now for
// a habit with the given current streak and last check-in:
//
//   - last check-in was yesterday: streak continues (current + 1)
//   - last check-in was today: no productive check-in, streak unchanged
//   - otherwise (never checked, or a gap of two or more days): streak
//     restarts at 1
//
// Callers reject the already-checked-today case before writing; it is
// handled here only so Next stays total over its inputs.
func Next(current int, lastChecked *time.Time, now time.Time) int {
	if lastChecked == nil {
		return 1
	}
	if SameDay(*lastChecked, now) {
		return current
	}
	if IsYesterday(*lastChecked, now) {
		return current + 1
	}
	return 1
}
