package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/javiermolinar/urnik/internal/timetable"
)

// Color definitions for consistent styling across the UI.
var (
	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Warnings: yellow to make them pop
	colorWarning = color.New(color.FgYellow, color.Bold)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)
)

const (
	defaultWidth = 80
	maxRuleWidth = 60
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// formatHeader formats text as a header.
func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

// formatWarning formats a warning title.
func formatWarning(s string) string {
	return colorWarning.Sprint(s)
}

// formatMuted formats text as secondary/muted.
func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}

// formatSubject paints a subject name in its assigned color.
func formatSubject(s string, c timetable.Color) string {
	return color.RGB(int(c.R), int(c.G), int(c.B)).Add(color.Bold).Sprint(s)
}
