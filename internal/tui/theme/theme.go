// Package theme provides color themes for the TUI.
package theme

import (
	"embed"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pelletier/go-toml/v2"
)

//go:embed embedded/*.toml
var embeddedThemes embed.FS

// Theme holds all colors for a TUI theme.
type Theme struct {
	Name        string `toml:"name"`
	Bg          string `toml:"bg"`           // Base background
	BgHighlight string `toml:"bg_highlight"` // Footer, warning box
	Fg          string `toml:"fg"`           // Primary foreground
	FgMuted     string `toml:"fg_muted"`     // Empty cells, gutter
	Accent      string `toml:"accent"`       // Headers, borders
	Warning     string `toml:"warning"`
	Error       string `toml:"error"`
}

// Color returns a lipgloss.Color for the given hex string.
func Color(hex string) lipgloss.Color {
	return lipgloss.Color(hex)
}

// Load loads a theme by name from embedded files.
// Falls back to mocha if the theme is not found.
func Load(name string) (*Theme, error) {
	if name == "" {
		name = "mocha"
	}
	name = strings.ToLower(name)

	path := "embedded/" + name + ".toml"
	data, err := embeddedThemes.ReadFile(path)
	if err != nil {
		if name != "mocha" {
			return Load("mocha")
		}
		return nil, fmt.Errorf("loading theme %q: %w", name, err)
	}

	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing theme %q: %w", name, err)
	}
	t.applyDefaults()

	return &t, nil
}

func (t *Theme) applyDefaults() {
	if t.BgHighlight == "" {
		t.BgHighlight = t.Bg
	}
	if t.FgMuted == "" {
		t.FgMuted = t.Fg
	}
	if t.Warning == "" {
		t.Warning = t.Accent
	}
	if t.Error == "" {
		t.Error = t.Warning
	}
}

func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Available returns the names of the embedded themes, sorted.
func Available() []string {
	files, err := embeddedThemes.ReadDir("embedded")
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(files))
	for _, f := range files {
		if name, ok := strings.CutSuffix(f.Name(), ".toml"); ok && !f.IsDir() {
			out = append(out, name)
		}
	}
	return out
}

// IsAvailable reports whether a theme name is available.
func IsAvailable(name string) bool {
	name = strings.ToLower(name)
	for _, themeName := range Available() {
		if themeName == name {
			return true
		}
	}
	return false
}
