// Package view provides rendering helpers for the TUI.
package view

import (
	"fmt"
	"time"

	"github.com/javiermolinar/urnik/internal/dateutil"
)

// FormatUpdated formats when the timetable was loaded, relative to now.
// The time is shown in now's location.
func FormatUpdated(at, now time.Time) string {
	if at.IsZero() {
		return "never"
	}
	at = at.In(now.Location())
	if dateutil.SameDay(at, now) {
		return "today " + at.Format("15:04")
	}
	if dateutil.SameDay(at, dateutil.TruncateToDay(now).AddDate(0, 0, -1)) {
		return "yesterday " + at.Format("15:04")
	}
	return at.Format("Mon 2 Jan 15:04")
}

// FormatHour formats an hour as a cell title, e.g. "9:00".
func FormatHour(hour int) string {
	return fmt.Sprintf("%d:00", hour)
}
