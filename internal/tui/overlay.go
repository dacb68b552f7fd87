package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/urnik/internal/tui/view"
)

const (
	overlayMinWidth  = 24
	overlayMinHeight = 5
	overlayPadX      = 2
	overlayPadY      = 1
)

// WarningOverlay draws an opaque backdrop with the warning box centered on
// top of the grid.
type WarningOverlay struct {
	active  bool
	bgColor lipgloss.Color
}

// NewWarningOverlay initializes an inactive overlay.
func NewWarningOverlay() WarningOverlay {
	return WarningOverlay{
		active:  false,
		bgColor: lipgloss.Color(""),
	}
}

// SetActive shows or hides the overlay.
func (o *WarningOverlay) SetActive(active bool) {
	o.active = active
}

// Active reports whether the overlay is visible.
func (o WarningOverlay) Active() bool {
	return o.active
}

// SetBackground updates the backdrop color.
func (o *WarningOverlay) SetBackground(color lipgloss.Color) {
	o.bgColor = color
}

// Render draws the overlay on top of base content.
func (o WarningOverlay) Render(base string, width, height int, content string) string {
	if !o.active || content == "" {
		return base
	}
	if width <= 0 || height <= 0 {
		return base
	}

	contentLines := o.contentLines(content)
	contentW, contentH := o.contentSize(contentLines)
	boxW, boxH := o.boxSize(contentW, contentH, width, height)

	top := max((height-boxH)/2, 0)
	left := max((width-boxW)/2, 0)

	canvas := view.CanvasFrom(base, width, height)
	canvas.Paint(left, top, o.backdrop(boxW, boxH))

	bgSeq := o.backgroundSeq()
	for i := range contentLines {
		contentLines[i] = o.applyOverlayBackgroundResets(contentLines[i], bgSeq)
	}
	contentTop := top + max((boxH-contentH)/2, 0)
	contentLeft := left + max((boxW-contentW)/2, 0)
	canvas.Paint(contentLeft, contentTop, strings.Join(contentLines, "\n"))

	return canvas.String()
}

func (o WarningOverlay) boxSize(contentW, contentH, width, height int) (int, int) {
	boxW := max(contentW+2*overlayPadX, overlayMinWidth)
	boxH := max(contentH+2*overlayPadY, overlayMinHeight)
	return min(boxW, width), min(boxH, height)
}

func (o WarningOverlay) backdrop(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	line := o.backgroundSeq() + strings.Repeat(" ", width) + ansi.ResetStyle
	lines := make([]string, height)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

func (o WarningOverlay) backgroundSeq() string {
	if o.bgColor == "" {
		return ""
	}
	return ansi.Style{}.BackgroundColor(ansi.HexColor(string(o.bgColor))).String()
}

func (o WarningOverlay) contentLines(content string) []string {
	lines := strings.Split(content, "\n")
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func (o WarningOverlay) contentSize(lines []string) (int, int) {
	maxWidth := 0
	for _, line := range lines {
		if w := lipgloss.Width(line); w > maxWidth {
			maxWidth = w
		}
	}
	return maxWidth, len(lines)
}

func (o WarningOverlay) applyOverlayBackgroundResets(line, bgSeq string) string {
	if bgSeq == "" || line == "" {
		return line
	}
	line = strings.ReplaceAll(line, ansi.ResetStyle, ansi.ResetStyle+bgSeq)
	line = strings.ReplaceAll(line, "\x1b[0m", "\x1b[0m"+bgSeq)
	line = strings.ReplaceAll(line, "\x1b[49m", "\x1b[49m"+bgSeq)
	return line
}
