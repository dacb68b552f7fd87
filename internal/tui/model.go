// Package tui provides the terminal user interface for urnik.
package tui

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/javiermolinar/urnik/internal/refresh"
	"github.com/javiermolinar/urnik/internal/timetable"
	"github.com/javiermolinar/urnik/internal/tui/commands"
	"github.com/javiermolinar/urnik/internal/tui/theme"
)

const (
	statusTTL = 3 * time.Second
	errorTTL  = 5 * time.Second
)

// Deps are the collaborators of the TUI.
type Deps struct {
	Context   context.Context // cancelled on quit; defaults to Background
	Acquirer  commands.Acquirer
	Store     timetable.SnapshotStore // optional
	Logger    *zap.Logger
	Theme     string
	Clipboard func(string) error
	Rand      *rand.Rand
	Now       func() time.Time
}

// Model is the main TUI model.
type Model struct {
	// Dependencies
	ctx      context.Context
	cancel   context.CancelFunc
	acquirer commands.Acquirer
	store    timetable.SnapshotStore
	logger   *zap.Logger
	copy     func(string) error
	now      func() time.Time

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// Grid and warning state, shared by every copy of the model
	machine *refresh.Machine

	// Components
	keys    keyMap
	help    help.Model
	overlay WarningOverlay

	// Terminal dimensions
	width  int
	height int

	// Messages
	statusMsg  string    // Temporary status/error message
	statusTime time.Time // When to clear message
}

// New creates a new TUI model.
func New(deps Deps) Model {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	parent := deps.Context
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	copyFn := deps.Clipboard
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}

	t, err := theme.Load(deps.Theme)
	if err != nil {
		logger.Warn("theme not loaded, using mocha", zap.String("theme", deps.Theme), zap.Error(err))
		t, _ = theme.Load("mocha")
	}
	styles := NewStyles(t)

	h := help.New()
	h.ShortSeparator = " • "
	h.Styles.ShortKey = styles.HelpStyle.Foreground(styles.colorAccent)
	h.Styles.ShortDesc = styles.HelpStyle
	h.Styles.ShortSeparator = styles.HelpStyle

	overlay := NewWarningOverlay()
	overlay.SetBackground(styles.colorBgHighlight)

	opts := []refresh.Option{refresh.WithLogger(logger), refresh.WithClock(now)}
	if deps.Rand != nil {
		opts = append(opts, refresh.WithRand(deps.Rand))
	}

	return Model{
		ctx:      ctx,
		cancel:   cancel,
		acquirer: deps.Acquirer,
		store:    deps.Store,
		logger:   logger,
		copy:     copyFn,
		now:      now,
		theme:    t,
		styles:   styles,
		machine:  refresh.NewMachine(opts...),
		keys:     defaultKeyMap(),
		help:     h,
		overlay:  overlay,
	}
}

// Init loads the stored timetable and starts the first refresh.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		commands.LoadSnapshot(m.store),
		m.startRefresh(),
	)
}

// Run starts the TUI.
func Run(deps Deps) error {
	model := New(deps)
	model.logger.Info("tui starting", zap.String("theme", model.theme.Name))
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	if err != nil {
		model.logger.Error("tui stopped", zap.Error(err))
	}
	return err
}
