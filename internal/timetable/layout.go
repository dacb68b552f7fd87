package timetable

// Placement is the grid region assigned to one entry.
//
// Concurrency is resolved per anchor hour: every entry starting at the same
// (Day, RowStart) shares Columns and gets its own Column. An entry keeps the
// width it was given at its anchor for all rows it spans, so a long entry can
// intersect a later group that was sized without it. CrossAnchorOverlaps
// reports those cases.
type Placement struct {
	Day      int
	RowStart int // anchor hour
	RowSpan  int // hours
	Column   int
	Columns  int
	Entry    Entry
}

// RowEnd returns the first hour after the region.
func (p Placement) RowEnd() int {
	return p.RowStart + p.RowSpan
}

// Covers reports whether the region occupies the given hour.
func (p Placement) Covers(hour int) bool {
	return hour >= p.RowStart && hour < p.RowEnd()
}

// Layout groups entries and places them. Entries must already be
// validated; placeholders and out-of-window entries are ignored.
func Layout(entries []Entry) []Placement {
	w := Group(entries)
	return LayoutWeek(&w)
}

// LayoutWeek places grouped entries, ordered by day, then anchor hour,
// then column.
func LayoutWeek(w *Week) []Placement {
	placements := make([]Placement, 0, w.Len())
	for day := 0; day < Days; day++ {
		for hour := FirstHour; hour <= LastHour; hour++ {
			group := w.At(day, hour)
			n := len(group)
			for i, e := range group {
				placements = append(placements, Placement{
					Day:      day,
					RowStart: hour,
					RowSpan:  e.Duration,
					Column:   i,
					Columns:  n,
					Entry:    e,
				})
			}
		}
	}
	return placements
}

// Overlap is a pair of placements on the same day whose rows intersect
// although they were sized at different anchor hours.
type Overlap struct {
	First  Placement
	Second Placement
}

// CrossAnchorOverlaps lists every pair of placements that share a day and at
// least one row but not an anchor hour. First always starts earlier.
func CrossAnchorOverlaps(placements []Placement) []Overlap {
	var out []Overlap
	for i := range placements {
		a := placements[i]
		for j := i + 1; j < len(placements); j++ {
			b := placements[j]
			if a.Day != b.Day || a.RowStart == b.RowStart {
				continue
			}
			if a.RowStart >= b.RowEnd() || b.RowStart >= a.RowEnd() {
				continue
			}
			if b.RowStart < a.RowStart {
				out = append(out, Overlap{First: b, Second: a})
				continue
			}
			out = append(out, Overlap{First: a, Second: b})
		}
	}
	return out
}
