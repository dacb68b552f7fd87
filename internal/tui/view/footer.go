package view

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// FooterViewState holds the content and styles of the footer.
type FooterViewState struct {
	InnerW      int
	FooterH     int
	StatusText  string
	HelpText    string
	StatusStyle lipgloss.Style
	HelpStyle   lipgloss.Style
	VAlign      lipgloss.Position
	Bg          lipgloss.Color
}

// RenderFooter renders the status line above the help line.
func RenderFooter(state FooterViewState) string {
	if state.FooterH <= 0 {
		return ""
	}

	statusLine := footerLine(state.InnerW, state.StatusStyle, state.StatusText)
	helpLine := footerLine(state.InnerW, state.HelpStyle, state.HelpText)

	s := helpLine
	if state.FooterH > 1 {
		s = statusLine + "\n" + helpLine
	}

	return PlaceBox(state.InnerW, state.FooterH, state.VAlign, s, state.Bg)
}

func footerLine(width int, style lipgloss.Style, content string) string {
	frameW, _ := style.GetFrameSize()
	contentWidth := width - frameW
	if contentWidth < 0 {
		contentWidth = 0
	}
	style = style.Width(contentWidth)
	if contentWidth > 0 {
		content = ansi.Truncate(content, contentWidth, "")
	}
	return style.Render(content)
}
