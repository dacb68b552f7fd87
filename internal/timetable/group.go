package timetable

// Week buckets entries by day and anchor hour. Index as w[day][hour-FirstHour].
type Week [Days][Slots][]Entry

// Group partitions entries by day and start hour, keeping source order
// within each bucket. Placeholders and out-of-window entries are skipped.
func Group(entries []Entry) Week {
	var w Week
	for _, e := range entries {
		if e.Placeholder() {
			continue
		}
		if e.Day < 0 || e.Day >= Days || e.StartHour < FirstHour || e.StartHour > LastHour {
			continue
		}
		slot := e.StartHour - FirstHour
		w[e.Day][slot] = append(w[e.Day][slot], e)
	}
	return w
}

// At returns the entries anchored at the given day and hour.
func (w *Week) At(day, hour int) []Entry {
	if day < 0 || day >= Days || hour < FirstHour || hour > LastHour {
		return nil
	}
	return w[day][hour-FirstHour]
}

// Len returns the number of grouped entries.
func (w *Week) Len() int {
	n := 0
	for d := range w {
		for h := range w[d] {
			n += len(w[d][h])
		}
	}
	return n
}
