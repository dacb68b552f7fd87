package timetable

import (
	"fmt"
	"sort"
	"strings"
)

// DayEntries returns the renderable entries of one day sorted by start hour.
// Entries sharing a start hour keep their source order.
func DayEntries(entries []Entry, day int) []Entry {
	out := make([]Entry, 0)
	for _, e := range entries {
		if e.Day == day && !e.Placeholder() {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartHour < out[j].StartHour
	})
	return out
}

// FormatSpan formats the hours an entry occupies, e.g. "09:00-11:00".
func FormatSpan(e Entry) string {
	return fmt.Sprintf("%02d:00-%02d:00", e.StartHour, e.EndHour())
}

// FormatEntryLine formats one entry for the plain-text listing.
func FormatEntryLine(e Entry) string {
	parts := []string{FormatSpan(e), e.Subject.Name}
	if e.Subject.Type != "" {
		parts[1] += " (" + e.Subject.Type + ")"
	}
	if e.Professor != "" {
		parts = append(parts, e.Professor)
	}
	if e.Classroom != "" {
		parts = append(parts, e.Classroom)
	}
	return strings.Join(parts, "  ")
}

// FormatWeek renders the plain-text week listing used for copying.
func FormatWeek(entries []Entry) string {
	var b strings.Builder
	for day := 0; day < Days; day++ {
		if day > 0 {
			b.WriteString("\n")
		}
		b.WriteString(DayName(day))
		b.WriteString("\n")
		dayEntries := DayEntries(entries, day)
		if len(dayEntries) == 0 {
			b.WriteString("  -\n")
			continue
		}
		for _, e := range dayEntries {
			b.WriteString("  ")
			b.WriteString(FormatEntryLine(e))
			b.WriteString("\n")
		}
	}
	return b.String()
}
