package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// GridCell is one placement ready to be drawn.
type GridCell struct {
	Day      int
	RowStart int // anchor hour
	RowSpan  int // hours
	Column   int
	Columns  int
	Title    string
	Lines    []string
	Primary  int            // index of the line kept when space is short
	Style    lipgloss.Style // foreground, background, border colors
}

// GridViewState holds everything needed to draw the week grid.
type GridViewState struct {
	Width       int
	Height      int
	Days        []string // column headers
	Today       int      // column of today, -1 for none
	FirstHour   int
	Hours       int // rows
	Cells       []GridCell
	HeaderStyle lipgloss.Style
	TodayStyle  lipgloss.Style
	GutterStyle lipgloss.Style
	EmptyStyle  lipgloss.Style
	Bg          lipgloss.Color
	GutterWidth int
}

// GridGeometry describes where rows and day columns land on the canvas.
type GridGeometry struct {
	GutterWidth int
	HeaderLines int
	RowLines    int
	dayWidth    []int
	dayX        []int
}

// NewGridGeometry splits the area after the gutter evenly across days.
// Rows get an equal share of the height below the header, at least one
// line each.
func NewGridGeometry(width, height, days, hours, gutter int) GridGeometry {
	g := GridGeometry{GutterWidth: gutter, HeaderLines: 1, RowLines: 1}
	if hours > 0 {
		g.RowLines = max(1, (height-g.HeaderLines)/hours)
	}
	area := max(width-gutter, 0)
	g.dayWidth = make([]int, days)
	g.dayX = make([]int, days)
	for d := 0; d < days; d++ {
		start := area * d / days
		end := area * (d + 1) / days
		g.dayX[d] = gutter + start
		g.dayWidth[d] = end - start
	}
	return g
}

// DayX returns the first column of a day.
func (g GridGeometry) DayX(day int) int {
	return g.dayX[day]
}

// DayWidth returns the width of a day column.
func (g GridGeometry) DayWidth(day int) int {
	return g.dayWidth[day]
}

// RowY returns the first line of the row index.
func (g GridGeometry) RowY(row int) int {
	return g.HeaderLines + row*g.RowLines
}

// ColumnSpan returns the x offset and width of a side-by-side column
// within a day.
func (g GridGeometry) ColumnSpan(day, column, columns int) (int, int) {
	if columns <= 0 {
		columns = 1
	}
	w := g.dayWidth[day]
	start := w * column / columns
	end := w * (column + 1) / columns
	return g.dayX[day] + start, end - start
}

// RenderGrid draws the header, hour gutter, empty slot placeholders, and
// cells. Cells running past the last row are clipped.
func RenderGrid(state GridViewState) string {
	canvas := NewCanvas(state.Width, state.Height, state.Bg)
	if state.Width <= 0 || state.Height <= 0 || len(state.Days) == 0 {
		return canvas.String()
	}

	geo := NewGridGeometry(state.Width, state.Height, len(state.Days), state.Hours, state.GutterWidth)

	for d, name := range state.Days {
		style := state.HeaderStyle
		if d == state.Today {
			style = state.TodayStyle
		}
		header := style.Width(geo.DayWidth(d)).Render(name)
		canvas.Paint(geo.DayX(d), 0, header)
	}

	bottom := geo.RowY(state.Hours)
	covered := make([][]bool, len(state.Days))
	for d := range covered {
		covered[d] = make([]bool, state.Hours)
	}
	for _, c := range state.Cells {
		if c.Day < 0 || c.Day >= len(state.Days) || c.RowSpan <= 0 {
			continue
		}
		first := max(c.RowStart-state.FirstHour, 0)
		last := min(c.RowStart-state.FirstHour+min(c.RowSpan, state.Hours), state.Hours)
		for row := first; row < last; row++ {
			covered[c.Day][row] = true
		}
	}

	for row := 0; row < state.Hours; row++ {
		y := geo.RowY(row)
		label := fmt.Sprintf("%02d:00", state.FirstHour+row)
		canvas.Paint(0, y, state.GutterStyle.Render(label))

		for d := range state.Days {
			if covered[d][row] {
				continue
			}
			canvas.Paint(geo.DayX(d), y, renderEmptySlot(state.EmptyStyle, geo.DayWidth(d), geo.RowLines))
		}
	}

	for _, c := range state.Cells {
		if c.Day < 0 || c.Day >= len(state.Days) {
			continue
		}
		row := c.RowStart - state.FirstHour
		if row < 0 || row >= state.Hours || c.RowSpan <= 0 {
			continue
		}
		x, w := geo.ColumnSpan(c.Day, c.Column, c.Columns)
		y := geo.RowY(row)
		// Spans are capped at the window before scaling to lines.
		h := min(min(c.RowSpan, state.Hours)*geo.RowLines, bottom-y)
		canvas.Paint(x, y, RenderCell(c, w, h))
	}

	return canvas.String()
}

// RenderCell draws a cell as a w x h block. Blocks with room for at least
// two body lines get a rounded border with the title set into the top edge.
// Shorter blocks keep every line and mark the subject with a bar on the
// left. The primary line always survives.
func RenderCell(c GridCell, w, h int) string {
	if w <= 0 || h <= 0 {
		return ""
	}

	if w < 2 {
		lines := fitLines(c.Lines, c.Primary, w, h)
		return c.Style.Width(w).Height(h).MaxHeight(h).Render(strings.Join(lines, "\n"))
	}
	if w < 3 || h < 4 {
		lines := fitLines(c.Lines, c.Primary, w-1, h)
		return c.Style.
			Border(lipgloss.ThickBorder(), false, false, false, true).
			Width(w - 1).
			Height(h).
			MaxHeight(h).
			Render(strings.Join(lines, "\n"))
	}

	innerW, innerH := w-2, h-2
	lines := fitLines(c.Lines, c.Primary, innerW, innerH)
	box := c.Style.
		Border(lipgloss.RoundedBorder()).
		Width(innerW).
		Height(innerH).
		MaxHeight(h).
		Render(strings.Join(lines, "\n"))

	return setTitle(box, c.Title, c.Style, w)
}

func renderEmptySlot(style lipgloss.Style, w, h int) string {
	if w <= 0 || h <= 0 {
		return ""
	}
	if w < 3 || h < 3 {
		return style.Width(w).Height(h).MaxHeight(h).Render("")
	}
	return style.
		Border(lipgloss.RoundedBorder()).
		Width(w - 2).
		Height(h - 2).
		MaxHeight(h).
		Render("")
}

// setTitle splices the title into the top border of a rendered box.
func setTitle(box, title string, style lipgloss.Style, w int) string {
	titleW := ansi.StringWidth(title)
	if title == "" || titleW > w-2 {
		return box
	}
	lines := strings.Split(box, "\n")
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(style.GetBorderTopForeground()).
		Background(style.GetBorderTopBackground())
	lines[0] = ansi.Cut(lines[0], 0, 1) + titleStyle.Render(title) + ansi.Cut(lines[0], 1+titleW, w)
	return strings.Join(lines, "\n")
}

// fitLines keeps at most h lines in their original order, each truncated to
// w cells. The primary line is always among them.
func fitLines(lines []string, primary, w, h int) []string {
	if h <= 0 {
		return nil
	}
	if primary < 0 || primary >= len(lines) {
		primary = 0
	}
	out := make([]string, 0, min(len(lines), h))
	budget := h - 1 // one slot is reserved for the primary line
	for i, line := range lines {
		if i != primary {
			if budget == 0 {
				continue
			}
			budget--
		}
		out = append(out, ansi.Truncate(line, w, ""))
	}
	return out
}
