package theme

import (
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		themeName string
		wantName  string
	}{
		{name: "load mocha theme", themeName: "mocha", wantName: "mocha"},
		{name: "load macchiato theme", themeName: "macchiato", wantName: "macchiato"},
		{name: "load frappe theme", themeName: "frappe", wantName: "frappe"},
		{name: "load latte theme", themeName: "latte", wantName: "latte"},
		{name: "case insensitive", themeName: "Latte", wantName: "latte"},
		{name: "empty name defaults to mocha", themeName: "", wantName: "mocha"},
		{name: "invalid theme falls back to mocha", themeName: "nonexistent", wantName: "mocha"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			theme, err := Load(tt.themeName)
			if err != nil {
				t.Fatalf("Load(%q) unexpected error: %v", tt.themeName, err)
			}
			if theme.Name != tt.wantName {
				t.Errorf("Load(%q).Name = %q, want %q", tt.themeName, theme.Name, tt.wantName)
			}
		})
	}
}

func TestLoad_ThemeColors(t *testing.T) {
	for _, name := range Available() {
		theme, err := Load(name)
		if err != nil {
			t.Fatalf("Load(%s) unexpected error: %v", name, err)
		}

		colors := map[string]string{
			"Bg":          theme.Bg,
			"BgHighlight": theme.BgHighlight,
			"Fg":          theme.Fg,
			"FgMuted":     theme.FgMuted,
			"Accent":      theme.Accent,
			"Warning":     theme.Warning,
			"Error":       theme.Error,
		}

		for field, hex := range colors {
			if len(hex) != 7 || hex[0] != '#' {
				t.Errorf("%s: theme.%s = %q, want 7-char hex string", name, field, hex)
			}
		}
	}
}

func TestApplyDefaults(t *testing.T) {
	theme := &Theme{Bg: "#000000", Fg: "#ffffff", Accent: "#ff0000"}
	theme.applyDefaults()

	if theme.BgHighlight != "#000000" {
		t.Errorf("BgHighlight = %q, want bg fallback", theme.BgHighlight)
	}
	if theme.FgMuted != "#ffffff" {
		t.Errorf("FgMuted = %q, want fg fallback", theme.FgMuted)
	}
	if theme.Warning != "#ff0000" || theme.Error != "#ff0000" {
		t.Errorf("Warning/Error = %q/%q, want accent fallback", theme.Warning, theme.Error)
	}
}

func TestAvailable_ListsEmbeddedFiles(t *testing.T) {
	got := Available()
	want := []string{"frappe", "latte", "macchiato", "mocha"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("Available() = %v, want %v", got, want)
	}
	for _, name := range got {
		th, err := Load(name)
		if err != nil {
			t.Fatalf("Load(%s): %v", name, err)
		}
		if th.Name != name {
			t.Errorf("Load(%s).Name = %q, listed theme fell back", name, th.Name)
		}
	}
}

func TestIsAvailable(t *testing.T) {
	tests := []struct {
		name     string
		theme    string
		expected bool
	}{
		{name: "exact match", theme: "mocha", expected: true},
		{name: "case insensitive", theme: "Mocha", expected: true},
		{name: "missing theme", theme: "unknown", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsAvailable(tt.theme); got != tt.expected {
				t.Errorf("IsAvailable(%q) = %t, want %t", tt.theme, got, tt.expected)
			}
		})
	}
}

func TestColor(t *testing.T) {
	hex := "#89b4fa"
	c := Color(hex)
	if string(c) != hex {
		t.Errorf("Color(%q) = %q, want %q", hex, string(c), hex)
	}
}
