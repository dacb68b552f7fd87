// Package dateutil provides calendar helpers for the weekly grid.
package dateutil

import "time"

// TruncateToDay returns t with time set to midnight.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	ya, ma, da := a.Date()
	yb, mb, db := b.Date()
	return ya == yb && ma == mb && da == db
}

// WeekdayIndex returns the ISO position of t in its week: Monday is 0 and
// Sunday is 6.
func WeekdayIndex(t time.Time) int {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday becomes day 7 in ISO week
	}
	return weekday - 1
}

