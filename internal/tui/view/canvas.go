package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Canvas is a fixed-size grid of styled lines that blocks are painted onto.
// Later paints cover earlier ones.
type Canvas struct {
	width int
	lines []string
}

// NewCanvas returns a canvas filled with the background color.
func NewCanvas(width, height int, bg lipgloss.Color) *Canvas {
	width = max(width, 0)
	height = max(height, 0)
	blank := lipgloss.NewStyle().Background(bg).Render(strings.Repeat(" ", width))
	lines := make([]string, height)
	for i := range lines {
		lines[i] = blank
	}
	return &Canvas{width: width, lines: lines}
}

// Width returns the canvas width in cells.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in lines.
func (c *Canvas) Height() int {
	return len(c.lines)
}

// Paint places a rendered block with its top-left corner at x, y. Parts of
// the block outside the canvas are dropped.
func (c *Canvas) Paint(x, y int, block string) {
	if x >= c.width || y >= len(c.lines) || block == "" {
		return
	}
	for i, line := range strings.Split(block, "\n") {
		row := y + i
		if row < 0 {
			continue
		}
		if row >= len(c.lines) {
			break
		}

		left := x
		if left < 0 {
			line = ansi.TruncateLeft(line, -left, "")
			left = 0
		}
		line = ansi.Truncate(line, c.width-left, "")
		w := ansi.StringWidth(line)
		if w == 0 {
			continue
		}

		base := c.lines[row]
		c.lines[row] = ansi.Cut(base, 0, left) + line + ansi.ResetStyle + ansi.Cut(base, left+w, c.width)
	}
}

// String joins the canvas lines.
func (c *Canvas) String() string {
	return strings.Join(c.lines, "\n")
}

// CanvasFrom wraps rendered content, padding or cutting every line to
// width and the line count to height.
func CanvasFrom(content string, width, height int) *Canvas {
	width = max(width, 0)
	height = max(height, 0)
	lines := strings.Split(content, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	lines = lines[:height]

	for i, line := range lines {
		lineWidth := ansi.StringWidth(line)
		if lineWidth > width {
			lines[i] = ansi.Cut(line, 0, width)
			continue
		}
		if lineWidth < width {
			lines[i] = line + strings.Repeat(" ", width-lineWidth)
		}
	}
	return &Canvas{width: width, lines: lines}
}
