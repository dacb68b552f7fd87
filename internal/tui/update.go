package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/javiermolinar/urnik/internal/timetable"
	"github.com/javiermolinar/urnik/internal/tui/commands"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.logResize(msg.Width, msg.Height)
		return m, nil

	case commands.RefreshResultMsg:
		return m.handleRefreshResult(msg)

	case commands.SnapshotLoadedMsg:
		if msg.Snapshot != nil && m.machine.Seed(msg.Snapshot.Entries, msg.Snapshot.FetchedAt) {
			m.logger.Info("showing stored timetable",
				zap.Int("entries", len(msg.Snapshot.Entries)),
				zap.Time("fetched_at", msg.Snapshot.FetchedAt),
			)
		}
		return m, nil

	case commands.SnapshotSavedMsg:
		m.logger.Debug("snapshot saved", zap.Int("entries", msg.Count))
		return m, nil

	case commands.CopiedMsg:
		m.statusMsg = fmt.Sprintf("Copied %d entries", msg.Entries)
		m.statusTime = m.now().Add(statusTTL)
		return m, commands.ClearStatusAfter(statusTTL)

	case commands.ErrMsg:
		m.logger.Warn("command failed", zap.Error(msg.Err))
		m.statusMsg = fmt.Sprintf("Error: %v", msg.Err)
		m.statusTime = m.now().Add(errorTTL)
		return m, commands.ClearStatusAfter(errorTTL)

	case commands.StatusMsgCmd:
		m.statusMsg = msg.Msg
		m.statusTime = m.now().Add(statusTTL)
		return m, commands.ClearStatusAfter(statusTTL)

	case commands.ClearStatusMsg:
		if !m.now().Before(m.statusTime) {
			m.statusMsg = ""
		}
		return m, nil
	}

	return m, nil
}

// handleRefreshResult applies a finished refresh and stores a successful
// entry set.
func (m Model) handleRefreshResult(msg commands.RefreshResultMsg) (tea.Model, tea.Cmd) {
	if !m.machine.Complete(msg.Outcome) {
		return m, nil
	}
	if msg.Outcome.Err != nil {
		return m, nil
	}

	grid := m.machine.Grid()
	return m, commands.SaveSnapshot(m.store, timetable.Snapshot{
		Endpoint:  msg.Outcome.Endpoint,
		FetchedAt: grid.UpdatedAt,
		Entries:   grid.Entries,
	})
}
