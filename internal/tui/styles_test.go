package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/urnik/internal/timetable"
	"github.com/javiermolinar/urnik/internal/tui/theme"
)

func testTheme() *theme.Theme {
	return &theme.Theme{
		Name:        "test",
		Bg:          "#101010",
		BgHighlight: "#202020",
		Fg:          "#ffffff",
		FgMuted:     "#aaaaaa",
		Accent:      "#ff0000",
		Warning:     "#ff00ff",
		Error:       "#ff4040",
	}
}

func TestStylesBackgroundCoverage(t *testing.T) {
	palette := testTheme()
	styles := NewStyles(palette)

	assertBg := func(t *testing.T, name string, style lipgloss.Style, want string) {
		t.Helper()
		bg, ok := style.GetBackground().(lipgloss.Color)
		if !ok {
			t.Fatalf("%s background type = %T, want lipgloss.Color", name, style.GetBackground())
		}
		if bg != lipgloss.Color(want) {
			t.Fatalf("%s background = %q, want %q", name, bg, want)
		}
	}

	assertBg(t, "EmptyCellStyle", styles.EmptyCellStyle, palette.Bg)
	assertBg(t, "TimeColumnStyle", styles.TimeColumnStyle, palette.Bg)
	assertBg(t, "DayHeaderStyle", styles.DayHeaderStyle, palette.Bg)
	assertBg(t, "StatusStyle", styles.StatusStyle, palette.Bg)
	assertBg(t, "HelpStyle", styles.HelpStyle, palette.Bg)
	assertBg(t, "AppStyle", styles.AppStyle, palette.Bg)
	assertBg(t, "WarningBoxStyle", styles.WarningBoxStyle, palette.BgHighlight)
	assertBg(t, "WarningHintStyle", styles.WarningHintStyle, palette.BgHighlight)
}

func TestSubjectCellUsesSubjectBorder(t *testing.T) {
	styles := NewStyles(testTheme())
	subject := timetable.Color{R: 0x80, G: 0xc0, B: 0xff}

	style, border := styles.SubjectCell(subject)
	if border != lipgloss.Color("#80c0ff") {
		t.Fatalf("border = %q, want #80c0ff", border)
	}

	fg, ok := style.GetForeground().(lipgloss.Color)
	if !ok {
		t.Fatalf("foreground type = %T, want lipgloss.Color", style.GetForeground())
	}
	if fg != lipgloss.Color("#ffffff") {
		t.Fatalf("foreground = %q, want light text on a dark theme", fg)
	}

	bg, ok := style.GetBackground().(lipgloss.Color)
	if !ok {
		t.Fatalf("background type = %T, want lipgloss.Color", style.GetBackground())
	}
	if bg == lipgloss.Color("#101010") || bg == border {
		t.Fatalf("background = %q, want a shade derived from the subject color", bg)
	}
}
