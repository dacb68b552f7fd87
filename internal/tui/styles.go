package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/urnik/internal/timetable"
	"github.com/javiermolinar/urnik/internal/tui/theme"
)

// Width of the hour label column, including its trailing space.
const gutterWidth = 6

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	palette *theme.Palette

	// Theme colors as lipgloss colors
	colorBg          lipgloss.Color
	colorBgHighlight lipgloss.Color
	colorFg          lipgloss.Color
	colorFgMuted     lipgloss.Color
	colorAccent      lipgloss.Color
	colorWarning     lipgloss.Color
	colorError       lipgloss.Color

	// Grid chrome
	DayHeaderStyle  lipgloss.Style
	TimeColumnStyle lipgloss.Style
	EmptyCellStyle  lipgloss.Style

	// Subject cells, colors filled in per subject
	CellStyle      lipgloss.Style
	CellTitleStyle lipgloss.Style

	// Footer
	StatusStyle lipgloss.Style
	HelpStyle   lipgloss.Style

	// Warning overlay
	WarningBoxStyle   lipgloss.Style
	WarningTitleStyle lipgloss.Style
	WarningBodyStyle  lipgloss.Style
	WarningHintStyle  lipgloss.Style

	// App container
	AppStyle lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	palette := theme.NewPalette(t)
	s := &Styles{palette: palette}

	s.colorBg = palette.Bg
	s.colorBgHighlight = palette.BgHighlight
	s.colorFg = palette.Fg
	s.colorFgMuted = palette.FgMuted
	s.colorAccent = palette.Accent
	s.colorWarning = palette.Warning
	s.colorError = palette.Error

	s.DayHeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Align(lipgloss.Center).
		Foreground(s.colorAccent).
		Background(s.colorBg)

	s.TimeColumnStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Background(s.colorBg).
		Width(gutterWidth)

	s.EmptyCellStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg).
		BorderForeground(s.colorFgMuted).
		BorderBackground(s.colorBg)

	s.CellStyle = lipgloss.NewStyle().
		Align(lipgloss.Left)

	s.CellTitleStyle = lipgloss.NewStyle().
		Bold(true)

	s.StatusStyle = lipgloss.NewStyle().
		Foreground(s.colorWarning).
		Background(s.colorBg).
		Bold(true)

	s.HelpStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	s.WarningBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderBackground(s.colorBgHighlight).
		Background(s.colorBgHighlight).
		Foreground(s.colorFg).
		Padding(0, 2)

	s.WarningTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Background(s.colorBgHighlight)

	s.WarningBodyStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBgHighlight)

	s.WarningHintStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBgHighlight).
		Italic(true)

	// App container - horizontal padding only, the grid uses every row
	s.AppStyle = lipgloss.NewStyle().
		Background(s.colorBg).
		PaddingLeft(1).
		PaddingRight(1)

	return s
}

// SubjectCell returns the body style and border color for a subject.
func (s *Styles) SubjectCell(c timetable.Color) (lipgloss.Style, lipgloss.Color) {
	colors := s.palette.Subject(c.Hex())
	style := s.CellStyle.
		Foreground(colors.Text).
		Background(colors.Bg).
		BorderForeground(colors.Border).
		BorderBackground(s.colorBg)
	return style, colors.Border
}

// WarningBorder returns the border color for a warning.
func (s *Styles) WarningBorder(c timetable.Color) lipgloss.Color {
	return lipgloss.Color(c.Hex())
}
