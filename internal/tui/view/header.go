package view

import (
	"time"

	"github.com/javiermolinar/urnik/internal/dateutil"
	"github.com/javiermolinar/urnik/internal/timetable"
)

// DayLabels builds the day column labels and returns the index of today's
// column, or -1 when today is not a weekday.
func DayLabels(today time.Time) ([]string, int) {
	labels := make([]string, 0, timetable.Days)
	for i := 0; i < timetable.Days; i++ {
		labels = append(labels, timetable.DayShortName(i))
	}

	todayCol := dateutil.WeekdayIndex(today)
	if todayCol >= timetable.Days {
		todayCol = -1
	}
	return labels, todayCol
}
