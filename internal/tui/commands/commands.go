// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/urnik/internal/refresh"
	"github.com/javiermolinar/urnik/internal/timetable"
)

// RefreshResultMsg carries the outcome of one acquisition back to the
// update loop.
type RefreshResultMsg struct {
	Outcome refresh.Outcome
}

// SnapshotLoadedMsg is sent when a stored entry set was read at startup.
type SnapshotLoadedMsg struct {
	Snapshot *timetable.Snapshot
}

// SnapshotSavedMsg is sent after the latest entry set was stored.
type SnapshotSavedMsg struct {
	Count int
}

// CopiedMsg is sent when the week listing was written to the clipboard.
type CopiedMsg struct {
	Entries int
}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// Acquirer runs one timetable acquisition.
type Acquirer interface {
	Acquire(ctx context.Context) refresh.Outcome
}

// Refresh runs the acquisition off the update loop. Cancelling ctx aborts
// the request; otherwise the HTTP client timeout bounds it.
func Refresh(ctx context.Context, acquirer Acquirer) tea.Cmd {
	return func() tea.Msg {
		return RefreshResultMsg{Outcome: acquirer.Acquire(ctx)}
	}
}

// LoadSnapshot reads the stored entry set. A missing store or an empty one
// produces no message.
func LoadSnapshot(store timetable.SnapshotStore) tea.Cmd {
	if store == nil {
		return nil
	}
	return func() tea.Msg {
		snap, err := store.LoadSnapshot(context.Background())
		if errors.Is(err, timetable.ErrNoSnapshot) {
			return nil
		}
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("loading snapshot: %w", err)}
		}
		return SnapshotLoadedMsg{Snapshot: snap}
	}
}

// SaveSnapshot stores the entry set of a successful refresh.
func SaveSnapshot(store timetable.SnapshotStore, snap timetable.Snapshot) tea.Cmd {
	if store == nil {
		return nil
	}
	return func() tea.Msg {
		if err := store.SaveSnapshot(context.Background(), snap); err != nil {
			return ErrMsg{Err: fmt.Errorf("saving snapshot: %w", err)}
		}
		return SnapshotSavedMsg{Count: len(snap.Entries)}
	}
}

// Copy writes the week listing with the given clipboard writer.
func Copy(write func(string) error, entries []timetable.Entry) tea.Cmd {
	return func() tea.Msg {
		text := timetable.FormatWeek(entries)
		if err := write(text); err != nil {
			return ErrMsg{Err: fmt.Errorf("copy failed: %w", err)}
		}
		return CopiedMsg{Entries: len(entries)}
	}
}

// Status shows a temporary message in the footer.
func Status(msg string) tea.Cmd {
	return func() tea.Msg {
		return StatusMsgCmd{Msg: msg}
	}
}

// ClearStatusAfter schedules a ClearStatusMsg.
func ClearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
