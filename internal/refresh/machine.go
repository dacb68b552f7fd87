package refresh

import (
	"fmt"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/javiermolinar/urnik/internal/timetable"
)

// Phase is the machine's current state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseFetching
	PhaseRendering
	PhaseWarning
)

// String returns the phase name used in logs.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseFetching:
		return "fetching"
	case PhaseRendering:
		return "rendering"
	case PhaseWarning:
		return "warning"
	default:
		return fmt.Sprintf("unknown(%d)", int(p))
	}
}

// Grid is everything the renderer needs for one entry set.
type Grid struct {
	Entries    []timetable.Entry
	Colors     timetable.Colors
	Placements []timetable.Placement
	Overlaps   []timetable.Overlap
	UpdatedAt  time.Time
	Cached     bool // loaded from the snapshot store, not fetched this run
}

// Machine owns the grid and warning state. It is not safe for concurrent
// use; the TUI update loop is its only caller.
type Machine struct {
	phase   Phase
	grid    *Grid
	warning *Warning
	rng     *rand.Rand
	now     func() time.Time
	logger  *zap.Logger
}

// Option configures a Machine.
type Option func(*Machine)

// WithRand sets the color source.
func WithRand(rng *rand.Rand) Option {
	return func(m *Machine) { m.rng = rng }
}

// WithClock sets the time source.
func WithClock(now func() time.Time) Option {
	return func(m *Machine) { m.now = now }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(m *Machine) {
		if l != nil {
			m.logger = l
		}
	}
}

// NewMachine returns an idle machine.
func NewMachine(opts ...Option) *Machine {
	m := &Machine{
		phase:  PhaseIdle,
		now:    time.Now,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Phase returns the current phase.
func (m *Machine) Phase() Phase {
	return m.phase
}

// Fetching reports whether a refresh is in flight.
func (m *Machine) Fetching() bool {
	return m.phase == PhaseFetching
}

// Grid returns the last good grid, or nil.
func (m *Machine) Grid() *Grid {
	return m.grid
}

// Warning returns the active warning, or nil.
func (m *Machine) Warning() *Warning {
	return m.warning
}

// Begin starts a refresh. It returns false, changing nothing, when one is
// already in flight. An active warning stays until the refresh completes.
func (m *Machine) Begin() bool {
	if m.phase == PhaseFetching {
		m.logger.Debug("refresh ignored", zap.String("reason", "already fetching"))
		return false
	}
	m.setPhase(PhaseFetching)
	return true
}

// Complete applies the result of the refresh started by Begin. It returns
// false when no refresh was in flight.
func (m *Machine) Complete(o Outcome) bool {
	if m.phase != PhaseFetching {
		m.logger.Warn("refresh result without refresh in flight")
		return false
	}

	if o.Err != nil {
		w := WarningFor(o.Err, o.ConfigPath)
		m.warning = &w
		m.logger.Info("refresh failed", zap.Stringer("kind", w.Kind), zap.Error(o.Err))
		m.setPhase(PhaseWarning)
		return true
	}

	m.grid = m.build(o.Entries, m.now(), false)
	m.warning = nil
	m.logger.Info("refresh succeeded",
		zap.Int("entries", len(o.Entries)),
		zap.Int("placements", len(m.grid.Placements)),
		zap.Int("subjects", m.grid.Colors.Len()),
	)
	m.setPhase(PhaseRendering)
	return true
}

// Seed shows a stored entry set until the first successful refresh. It only
// applies while no grid is shown.
func (m *Machine) Seed(entries []timetable.Entry, fetchedAt time.Time) bool {
	if m.grid != nil {
		return false
	}
	m.grid = m.build(entries, fetchedAt, true)
	if m.phase == PhaseIdle {
		m.setPhase(PhaseRendering)
	}
	return true
}

// Dismiss clears the active warning without touching the grid. It returns
// false when no warning is active.
func (m *Machine) Dismiss() bool {
	if m.warning == nil {
		return false
	}
	m.warning = nil
	if m.phase == PhaseWarning {
		if m.grid != nil {
			m.setPhase(PhaseRendering)
		} else {
			m.setPhase(PhaseIdle)
		}
	}
	return true
}

func (m *Machine) build(entries []timetable.Entry, at time.Time, cached bool) *Grid {
	placements := timetable.Layout(entries)
	overlaps := timetable.CrossAnchorOverlaps(placements)
	for _, o := range overlaps {
		m.logger.Debug("entries overlap across anchor hours",
			zap.Int("day", o.First.Day),
			zap.String("first", o.First.Entry.Subject.Name),
			zap.Int("first_start", o.First.RowStart),
			zap.String("second", o.Second.Entry.Subject.Name),
			zap.Int("second_start", o.Second.RowStart),
		)
	}
	return &Grid{
		Entries:    entries,
		Colors:     timetable.AssignColors(entries, m.rng),
		Placements: placements,
		Overlaps:   overlaps,
		UpdatedAt:  at,
		Cached:     cached,
	}
}

func (m *Machine) setPhase(p Phase) {
	if m.phase == p {
		return
	}
	m.logger.Debug("phase change", zap.Stringer("from", m.phase), zap.Stringer("to", p))
	m.phase = p
}
