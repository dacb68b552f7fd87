package timetable

import (
	"fmt"
	"math/rand/v2"
	"sort"
)

// Color is an RGB display color.
type Color struct {
	R, G, B uint8
}

// Hex returns the color as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// FallbackColor is returned for subjects missing from a Colors mapping.
var FallbackColor = Color{R: 0x80, G: 0x80, B: 0x80}

// Colors maps subject names to display colors.
type Colors struct {
	names  []string
	byName map[string]Color
}

// AssignColors builds a fresh mapping for the distinct subject names in
// entries. Names are visited in sorted order so the key set is stable;
// each color is drawn independently from rng. A nil rng uses the global source.
func AssignColors(entries []Entry, rng *rand.Rand) Colors {
	seen := make(map[string]struct{}, len(entries))
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Subject.Name
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	sort.Strings(names)

	byName := make(map[string]Color, len(names))
	for _, name := range names {
		byName[name] = randomColor(rng)
	}
	return Colors{names: names, byName: byName}
}

func randomColor(rng *rand.Rand) Color {
	var v uint32
	if rng != nil {
		v = rng.Uint32()
	} else {
		v = rand.Uint32()
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}
}

// ColorFor returns the color assigned to name, or FallbackColor.
func (c Colors) ColorFor(name string) Color {
	if col, ok := c.byName[name]; ok {
		return col
	}
	return FallbackColor
}

// Has reports whether name has an assigned color.
func (c Colors) Has(name string) bool {
	_, ok := c.byName[name]
	return ok
}

// Names returns the subject names in sorted order.
func (c Colors) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Len returns the number of assigned subjects.
func (c Colors) Len() int {
	return len(c.names)
}
