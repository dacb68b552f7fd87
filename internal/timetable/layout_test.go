package timetable

import (
	"math/rand/v2"
	"reflect"
	"testing"
)

func entry(day, start, duration int, subject string) Entry {
	return Entry{
		Day:       day,
		StartHour: start,
		Duration:  duration,
		Subject:   Subject{Name: subject},
	}
}

func TestLayout_SingleMultiHourEntry(t *testing.T) {
	got := Layout([]Entry{entry(0, 9, 2, "Algorithms")})
	if len(got) != 1 {
		t.Fatalf("placements = %d, want 1", len(got))
	}
	p := got[0]
	if p.Day != 0 || p.RowStart != 9 || p.RowSpan != 2 {
		t.Errorf("placement = day %d rows %d+%d, want day 0 rows 9+2", p.Day, p.RowStart, p.RowSpan)
	}
	if p.Column != 0 || p.Columns != 1 {
		t.Errorf("column = %d/%d, want 0/1", p.Column, p.Columns)
	}
	if !p.Covers(9) || !p.Covers(10) || p.Covers(11) || p.Covers(8) {
		t.Errorf("expected rows 9 and 10 covered only")
	}
}

func TestLayout_ConcurrentEntriesSplitColumns(t *testing.T) {
	got := Layout([]Entry{
		entry(2, 14, 1, "DB"),
		entry(2, 14, 1, "Net"),
	})
	if len(got) != 2 {
		t.Fatalf("placements = %d, want 2", len(got))
	}
	for i, want := range []string{"DB", "Net"} {
		p := got[i]
		if p.Entry.Subject.Name != want {
			t.Errorf("placement %d subject = %q, want %q", i, p.Entry.Subject.Name, want)
		}
		if p.Day != 2 || p.RowStart != 14 {
			t.Errorf("placement %d at day %d hour %d, want day 2 hour 14", i, p.Day, p.RowStart)
		}
		if p.Column != i || p.Columns != 2 {
			t.Errorf("placement %d column = %d/%d, want %d/2", i, p.Column, p.Columns, i)
		}
	}
}

func TestLayout_PlaceholderExcluded(t *testing.T) {
	got := Layout([]Entry{entry(1, 10, 0, "Ghost")})
	if len(got) != 0 {
		t.Fatalf("placements = %d, want 0", len(got))
	}
}

func TestLayout_SameAnchorDifferentDurations(t *testing.T) {
	got := Layout([]Entry{
		entry(3, 8, 3, "Lab"),
		entry(3, 8, 1, "Seminar"),
	})
	if len(got) != 2 {
		t.Fatalf("placements = %d, want 2", len(got))
	}
	if got[0].RowSpan != 3 || got[1].RowSpan != 1 {
		t.Errorf("spans = %d,%d, want 3,1", got[0].RowSpan, got[1].RowSpan)
	}
	if got[0].Columns != 2 || got[1].Columns != 2 {
		t.Errorf("columns = %d,%d, want 2,2", got[0].Columns, got[1].Columns)
	}
}

func TestLayout_OrderedByDayThenHour(t *testing.T) {
	got := Layout([]Entry{
		entry(4, 7, 1, "E"),
		entry(0, 12, 1, "B"),
		entry(0, 8, 1, "A"),
		entry(2, 10, 1, "C"),
	})
	var order []string
	for _, p := range got {
		order = append(order, p.Entry.Subject.Name)
	}
	want := []string{"A", "B", "C", "E"}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
}

func TestLayout_CrossAnchorOverlapReported(t *testing.T) {
	placements := Layout([]Entry{
		entry(1, 9, 3, "Long"),
		entry(1, 10, 1, "Short"),
		entry(1, 12, 1, "After"),
		entry(2, 10, 1, "OtherDay"),
	})

	overlaps := CrossAnchorOverlaps(placements)
	if len(overlaps) != 1 {
		t.Fatalf("overlaps = %d, want 1", len(overlaps))
	}
	o := overlaps[0]
	if o.First.Entry.Subject.Name != "Long" || o.Second.Entry.Subject.Name != "Short" {
		t.Errorf("overlap = %s/%s, want Long/Short", o.First.Entry.Subject.Name, o.Second.Entry.Subject.Name)
	}
	// The later group is sized without the long entry.
	if o.Second.Columns != 1 {
		t.Errorf("later group columns = %d, want 1", o.Second.Columns)
	}
}

func TestLayout_SameAnchorIsNotAnOverlap(t *testing.T) {
	placements := Layout([]Entry{
		entry(0, 9, 2, "A"),
		entry(0, 9, 1, "B"),
	})
	if got := CrossAnchorOverlaps(placements); len(got) != 0 {
		t.Fatalf("overlaps = %d, want 0", len(got))
	}
}

func randomEntries(rng *rand.Rand, n int) []Entry {
	subjects := []string{"Algebra", "Biology", "Chemistry", "Drawing", "Economics"}
	entries := make([]Entry, n)
	for i := range entries {
		entries[i] = entry(
			rng.IntN(Days),
			FirstHour+rng.IntN(Slots),
			1+rng.IntN(3),
			subjects[rng.IntN(len(subjects))],
		)
	}
	return entries
}

func TestLayout_EveryEntryPlacedExactlyOnce(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for round := 0; round < 50; round++ {
		entries := randomEntries(rng, rng.IntN(40))
		placements := Layout(entries)
		if len(placements) != len(entries) {
			t.Fatalf("round %d: placements = %d, want %d", round, len(placements), len(entries))
		}

		counts := make(map[Entry]int)
		for _, e := range entries {
			counts[e]++
		}
		for _, p := range placements {
			counts[p.Entry]--
		}
		for e, c := range counts {
			if c != 0 {
				t.Fatalf("round %d: entry %+v placed %d times too few", round, e, c)
			}
		}
	}
}

func TestLayout_ColumnsDistinctPerAnchor(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for round := 0; round < 50; round++ {
		entries := randomEntries(rng, 60)
		w := Group(entries)
		placements := LayoutWeek(&w)

		type anchor struct{ day, hour int }
		groups := make(map[anchor][]Placement)
		for _, p := range placements {
			k := anchor{p.Day, p.RowStart}
			groups[k] = append(groups[k], p)
		}

		for k, ps := range groups {
			n := len(w.At(k.day, k.hour))
			if len(ps) != n {
				t.Fatalf("anchor %v: placements = %d, want %d", k, len(ps), n)
			}
			seen := make(map[int]bool)
			for _, p := range ps {
				if p.Columns != n {
					t.Fatalf("anchor %v: columns = %d, want %d", k, p.Columns, n)
				}
				if p.Column < 0 || p.Column >= n {
					t.Fatalf("anchor %v: column %d out of range", k, p.Column)
				}
				if seen[p.Column] {
					t.Fatalf("anchor %v: column %d assigned twice", k, p.Column)
				}
				seen[p.Column] = true
			}
		}
	}
}

func TestLayout_Idempotent(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	entries := randomEntries(rng, 30)

	first := Layout(entries)
	second := Layout(entries)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("layout differs between runs on the same entry set")
	}
}

func TestLayout_Empty(t *testing.T) {
	if got := Layout(nil); len(got) != 0 {
		t.Fatalf("placements = %d, want 0", len(got))
	}
}
