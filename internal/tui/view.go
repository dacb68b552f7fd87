package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/urnik/internal/refresh"
	"github.com/javiermolinar/urnik/internal/timetable"
	"github.com/javiermolinar/urnik/internal/tui/view"
)

const (
	footerHeight = 2
	minGridWidth = gutterWidth + timetable.Days*3
	minGridLines = 3

	// subjectLine is the cellLines index that survives in short cells.
	subjectLine = 1
)

// screenLayout is the split of the terminal between grid and footer.
type screenLayout struct {
	InnerW  int
	GridH   int
	FooterH int
}

func computeLayout(width, height, frameW int) screenLayout {
	footerH := min(footerHeight, max(height-minGridLines, 0))
	return screenLayout{
		InnerW:  width - frameW,
		GridH:   height - footerH,
		FooterH: footerH,
	}
}

func (m Model) layout(width, height int) screenLayout {
	frameW, _ := m.styles.AppStyle.GetFrameSize()
	return computeLayout(width, height, frameW)
}

// View renders the grid with the warning overlay on top when one is active.
func (m Model) View() string {
	return view.Render(m.viewState())
}

func (m Model) viewState() view.ViewState {
	base := m.renderAppContent()
	warning := m.machine.Warning()
	content := ""
	if warning != nil {
		content = m.renderWarning(warning)
	}
	m.overlay.SetActive(warning != nil)

	return view.ViewState{
		Width:            m.width,
		Height:           m.height,
		BaseContent:      base,
		OverlayContent:   content,
		ShowOverlay:      warning != nil,
		Overlay:          m.overlay,
		EmptyPlaceholder: "Loading...",
	}
}

func (m Model) renderAppContent() string {
	l := m.layout(m.width, m.height)
	if l.InnerW < minGridWidth || l.GridH < minGridLines {
		return view.PadLinesWithBackground("Terminal too small", m.width, m.height, m.styles.colorBg)
	}

	gridBox := view.RenderGrid(m.gridViewState(l))
	footerBox := view.RenderFooter(m.footerViewState(l))

	content := lipgloss.JoinVertical(lipgloss.Left, gridBox, footerBox)
	app := m.styles.AppStyle.Render(content)
	return view.PadLinesWithBackground(app, m.width, m.height, m.styles.colorBg)
}

func (m Model) gridViewState(l screenLayout) view.GridViewState {
	days, today := view.DayLabels(m.now())

	return view.GridViewState{
		Width:       l.InnerW,
		Height:      l.GridH,
		Days:        days,
		Today:       today,
		FirstHour:   timetable.FirstHour,
		Hours:       timetable.Slots,
		Cells:       m.gridCells(m.machine.Grid()),
		HeaderStyle: m.styles.DayHeaderStyle.Foreground(m.styles.colorFg),
		TodayStyle:  m.styles.DayHeaderStyle.Underline(true),
		GutterStyle: m.styles.TimeColumnStyle,
		EmptyStyle:  m.styles.EmptyCellStyle,
		Bg:          m.styles.colorBg,
		GutterWidth: gutterWidth,
	}
}

func (m Model) gridCells(grid *refresh.Grid) []view.GridCell {
	if grid == nil {
		return nil
	}
	cells := make([]view.GridCell, 0, len(grid.Placements))
	for _, p := range grid.Placements {
		style, _ := m.styles.SubjectCell(grid.Colors.ColorFor(p.Entry.Subject.Name))
		cells = append(cells, view.GridCell{
			Day:      p.Day,
			RowStart: p.RowStart,
			RowSpan:  p.RowSpan,
			Column:   p.Column,
			Columns:  p.Columns,
			Title:    view.FormatHour(p.RowStart),
			Lines:    cellLines(p.Entry),
			Primary:  subjectLine,
			Style:    style,
		})
	}
	return cells
}

func cellLines(e timetable.Entry) []string {
	return []string{
		e.Professor,
		e.Subject.Name,
		e.Subject.Type,
		"Classroom: " + e.Classroom,
	}
}

func (m Model) renderWarning(w *refresh.Warning) string {
	return view.RenderWarning(view.WarningViewState{
		Title:      w.Title,
		Message:    w.Message,
		Hint:       w.Hint,
		MaxWidth:   m.width - 4,
		Border:     m.styles.WarningBorder(w.Color),
		BoxStyle:   m.styles.WarningBoxStyle,
		TitleStyle: m.styles.WarningTitleStyle,
		BodyStyle:  m.styles.WarningBodyStyle,
		HintStyle:  m.styles.WarningHintStyle,
	})
}

func (m Model) footerViewState(l screenLayout) view.FooterViewState {
	return view.FooterViewState{
		InnerW:      l.InnerW,
		FooterH:     l.FooterH,
		StatusText:  m.statusText(),
		HelpText:    m.help.View(m.keys),
		StatusStyle: m.styles.StatusStyle,
		HelpStyle:   m.styles.HelpStyle,
		VAlign:      lipgloss.Bottom,
		Bg:          m.styles.colorBg,
	}
}

// statusText prefers a temporary message, then the refresh state.
func (m Model) statusText() string {
	if m.statusMsg != "" {
		return m.statusMsg
	}
	grid := m.machine.Grid()
	switch {
	case m.machine.Fetching():
		return "Refreshing..."
	case grid == nil:
		return "No timetable loaded"
	case grid.Cached:
		return "Cached " + view.FormatUpdated(grid.UpdatedAt, m.now())
	default:
		return "Updated " + view.FormatUpdated(grid.UpdatedAt, m.now())
	}
}
