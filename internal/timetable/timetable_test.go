package timetable

import (
	"errors"
	"math/rand/v2"
	"reflect"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestDecode(t *testing.T) {
	body := `[
		{"day": 0, "time": 9, "duration": 2, "professor": "Dr. Novak", "classroom": "P1",
		 "subject": {"name": "Algorithms", "abbreviation": "ALG", "location": "FRI", "type": "Lecture"},
		 "extra": true},
		{"day": 2, "time": 14, "duration": 1, "professor": "", "classroom": "P3",
		 "subject": {"name": "DB", "abbreviation": "DB", "location": "FRI", "type": "Lab"}}
	]`

	entries, err := Decode([]byte(body))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}

	want := Entry{
		Day:       0,
		StartHour: 9,
		Duration:  2,
		Professor: "Dr. Novak",
		Classroom: "P1",
		Subject:   Subject{Name: "Algorithms", Abbreviation: "ALG", Location: "FRI", Type: "Lecture"},
	}
	if entries[0] != want {
		t.Errorf("entry = %+v, want %+v", entries[0], want)
	}
	if entries[1].EndHour() != 15 {
		t.Errorf("end hour = %d, want 15", entries[1].EndHour())
	}
}

func TestDecode_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "<html>"},
		{name: "object instead of array", body: `{"day": 1}`},
		{name: "wrong field type", body: `[{"day": "monday"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.body))
			if !errors.Is(err, ErrDecode) {
				t.Fatalf("err = %v, want ErrDecode", err)
			}
		})
	}
}

func TestDecode_Null(t *testing.T) {
	entries, err := Decode([]byte("null"))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if entries == nil || len(entries) != 0 {
		t.Fatalf("entries = %v, want empty slice", entries)
	}
}

func TestFilter_DropsMalformedEntries(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	f := NewFilter(nil, zap.New(core))

	entries := []Entry{
		entry(0, 9, 1, "Valid"),
		entry(5, 9, 1, "BadDay"),
		entry(-1, 9, 1, "NegativeDay"),
		entry(1, 6, 1, "TooEarly"),
		entry(1, 21, 1, "TooLate"),
		entry(1, 9, 0, "Placeholder"),
		entry(1, 9, 1, ""),
		entry(4, 20, 1, "LastSlot"),
	}

	got := f.Valid(entries)
	var names []string
	for _, e := range got {
		names = append(names, e.Subject.Name)
	}
	want := []string{"Valid", "LastSlot"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("valid = %v, want %v", names, want)
	}

	skipped := logs.FilterMessage("entry skipped").All()
	if len(skipped) != 6 {
		t.Fatalf("logged skips = %d, want 6", len(skipped))
	}
	fields := skipped[len(skipped)-1].ContextMap()
	if fields["field"] != "Entry.Subject.Name" {
		t.Errorf("field = %v, want Entry.Subject.Name", fields["field"])
	}
	if fields["rule"] != "required" {
		t.Errorf("rule = %v, want required", fields["rule"])
	}
}

func TestGroup(t *testing.T) {
	entries := []Entry{
		entry(1, 10, 1, "First"),
		entry(1, 10, 2, "Second"),
		entry(1, 11, 1, "Other"),
		entry(1, 10, 0, "Placeholder"),
	}
	w := Group(entries)

	group := w.At(1, 10)
	if len(group) != 2 {
		t.Fatalf("group size = %d, want 2", len(group))
	}
	if group[0].Subject.Name != "First" || group[1].Subject.Name != "Second" {
		t.Errorf("group order = %s,%s, want First,Second", group[0].Subject.Name, group[1].Subject.Name)
	}
	if len(w.At(1, 11)) != 1 {
		t.Errorf("expected one entry at 11:00")
	}
	if len(w.At(0, 10)) != 0 {
		t.Errorf("expected empty group on Monday")
	}
	if w.At(7, 10) != nil || w.At(1, 21) != nil {
		t.Errorf("expected nil outside the grid")
	}
	if w.Len() != 3 {
		t.Errorf("grouped = %d, want 3", w.Len())
	}
}

func TestAssignColors_KeysStable(t *testing.T) {
	entries := []Entry{
		entry(0, 9, 1, "Physics"),
		entry(1, 9, 1, "Algebra"),
		entry(2, 9, 1, "Physics"),
		entry(3, 9, 1, "algebra"),
	}

	want := []string{"Algebra", "Physics", "algebra"}
	for i := 0; i < 5; i++ {
		colors := AssignColors(entries, nil)
		if !reflect.DeepEqual(colors.Names(), want) {
			t.Fatalf("names = %v, want %v", colors.Names(), want)
		}
		if colors.Len() != 3 {
			t.Fatalf("len = %d, want 3", colors.Len())
		}
		for _, name := range want {
			if !colors.Has(name) {
				t.Fatalf("missing color for %q", name)
			}
		}
	}
}

func TestAssignColors_SeededSourceIsReproducible(t *testing.T) {
	entries := []Entry{entry(0, 9, 1, "A"), entry(0, 10, 1, "B")}

	a := AssignColors(entries, rand.New(rand.NewPCG(42, 42)))
	b := AssignColors(entries, rand.New(rand.NewPCG(42, 42)))
	for _, name := range []string{"A", "B"} {
		if a.ColorFor(name) != b.ColorFor(name) {
			t.Errorf("color for %q differs with identical seeds", name)
		}
	}
}

func TestColorFor_Fallback(t *testing.T) {
	colors := AssignColors([]Entry{entry(0, 9, 1, "A")}, nil)
	if got := colors.ColorFor("Removed"); got != FallbackColor {
		t.Errorf("ColorFor(missing) = %v, want fallback", got)
	}

	var empty Colors
	if got := empty.ColorFor("A"); got != FallbackColor {
		t.Errorf("zero Colors.ColorFor = %v, want fallback", got)
	}
}

func TestColorHex(t *testing.T) {
	c := Color{R: 0x12, G: 0xab, B: 0x00}
	if got := c.Hex(); got != "#12ab00" {
		t.Errorf("Hex() = %q, want #12ab00", got)
	}
}

func TestFormatWeek(t *testing.T) {
	entries := []Entry{
		{Day: 0, StartHour: 11, Duration: 1, Subject: Subject{Name: "Late"}},
		{Day: 0, StartHour: 9, Duration: 2, Professor: "Dr. Novak", Classroom: "P1",
			Subject: Subject{Name: "Algorithms", Type: "Lecture"}},
		{Day: 1, StartHour: 8, Duration: 0, Subject: Subject{Name: "Hidden"}},
	}

	got := FormatWeek(entries)
	lines := strings.Split(got, "\n")
	if lines[0] != "Monday" {
		t.Fatalf("first line = %q, want Monday", lines[0])
	}
	if lines[1] != "  09:00-11:00  Algorithms (Lecture)  Dr. Novak  P1" {
		t.Errorf("line 1 = %q", lines[1])
	}
	if lines[2] != "  11:00-12:00  Late" {
		t.Errorf("line 2 = %q", lines[2])
	}
	if strings.Contains(got, "Hidden") {
		t.Errorf("placeholder entry should not be listed")
	}
	if !strings.Contains(got, "Friday\n  -\n") {
		t.Errorf("expected empty Friday marker, got %q", got)
	}
}

func TestDayNames(t *testing.T) {
	if DayName(0) != "Monday" || DayShortName(4) != "Fri" {
		t.Errorf("unexpected day names")
	}
	if DayName(5) != "" || DayShortName(-1) != "" {
		t.Errorf("expected empty names outside the week")
	}
}
