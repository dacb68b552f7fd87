package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// logKeyPress logs a key press and the command it mapped to.
func (m Model) logKeyPress(msg tea.KeyMsg, cmd Command) {
	m.logger.Debug("key press",
		zap.String("key", msg.String()),
		zap.Stringer("command", cmd),
		zap.Stringer("phase", m.machine.Phase()),
	)
}

// logResize logs terminal size changes with the resulting grid geometry.
func (m Model) logResize(width, height int) {
	l := m.layout(width, height)
	m.logger.Debug("resize",
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Int("grid_width", l.InnerW),
		zap.Int("grid_height", l.GridH),
		zap.Int("footer_height", l.FooterH),
	)
}
