package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/urnik/internal/tui/commands"
)

// Command is what a key press asks the model to do.
type Command int

const (
	CommandNone Command = iota
	CommandRefresh
	CommandQuit
	CommandDismiss
	CommandCopy
)

// String returns the command name used in logs.
func (c Command) String() string {
	switch c {
	case CommandRefresh:
		return "refresh"
	case CommandQuit:
		return "quit"
	case CommandDismiss:
		return "dismiss"
	case CommandCopy:
		return "copy"
	default:
		return "none"
	}
}

// keyMap holds the key bindings shown in the help line.
type keyMap struct {
	Refresh key.Binding
	Copy    key.Binding
	Dismiss key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("enter", "esc"),
			key.WithHelp("enter/esc", "dismiss"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Refresh, k.Copy, k.Dismiss, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// commandFor maps a key press to a command. Esc dismisses an active
// warning and quits otherwise; enter only ever dismisses.
func commandFor(keys keyMap, msg tea.KeyMsg, warningActive bool) Command {
	switch {
	case key.Matches(msg, keys.Quit):
		return CommandQuit
	case key.Matches(msg, keys.Refresh):
		return CommandRefresh
	case key.Matches(msg, keys.Copy):
		return CommandCopy
	case key.Matches(msg, keys.Dismiss):
		if warningActive {
			return CommandDismiss
		}
		if msg.String() == "esc" {
			return CommandQuit
		}
	}
	return CommandNone
}

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cmd := commandFor(m.keys, msg, m.machine.Warning() != nil)
	m.logKeyPress(msg, cmd)

	switch cmd {
	case CommandQuit:
		// Abort an in-flight refresh.
		m.cancel()
		return m, tea.Quit

	case CommandRefresh:
		return m, m.startRefresh()

	case CommandDismiss:
		m.machine.Dismiss()
		return m, nil

	case CommandCopy:
		grid := m.machine.Grid()
		if grid == nil || len(grid.Entries) == 0 {
			return m, commands.Status("Nothing to copy")
		}
		return m, commands.Copy(m.copy, grid.Entries)
	}

	return m, nil
}

// startRefresh begins a refresh unless one is already running.
func (m Model) startRefresh() tea.Cmd {
	if m.acquirer == nil || !m.machine.Begin() {
		return nil
	}
	return commands.Refresh(m.ctx, m.acquirer)
}
