package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// WarningViewState holds the text and styles of the warning box.
type WarningViewState struct {
	Title      string
	Message    string
	Hint       string
	MaxWidth   int
	Border     lipgloss.Color
	BoxStyle   lipgloss.Style
	TitleStyle lipgloss.Style
	BodyStyle  lipgloss.Style
	HintStyle  lipgloss.Style
}

// RenderWarning draws the warning box: bold title, message, and hint.
func RenderWarning(state WarningViewState) string {
	box := state.BoxStyle.BorderForeground(state.Border)
	frameW, _ := box.GetFrameSize()

	lines := append([]string{state.Title, ""}, strings.Split(state.Message, "\n")...)
	if state.Hint != "" {
		lines = append(lines, "", state.Hint)
	}
	contentW := 0
	for _, line := range lines {
		contentW = max(contentW, ansi.StringWidth(line))
	}
	if state.MaxWidth > 0 {
		contentW = min(contentW, max(state.MaxWidth-frameW, 1))
	}

	title := state.TitleStyle.Foreground(state.Border).Width(contentW).Render(ansi.Truncate(state.Title, contentW, ""))
	body := make([]string, 0, len(lines))
	body = append(body, title, state.BodyStyle.Width(contentW).Render(""))
	for _, line := range strings.Split(state.Message, "\n") {
		body = append(body, state.BodyStyle.Width(contentW).Render(ansi.Truncate(line, contentW, "")))
	}
	if state.Hint != "" {
		body = append(body,
			state.BodyStyle.Width(contentW).Render(""),
			state.HintStyle.Width(contentW).Render(ansi.Truncate(state.Hint, contentW, "")),
		)
	}

	return box.Render(strings.Join(body, "\n"))
}
