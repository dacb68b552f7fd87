package refresh

import (
	"errors"
	"fmt"

	"github.com/javiermolinar/urnik/internal/config"
	"github.com/javiermolinar/urnik/internal/fetch"
	"github.com/javiermolinar/urnik/internal/timetable"
)

// WarningKind classifies why no fresh grid could be shown.
type WarningKind int

const (
	WarningConfigMissing WarningKind = iota
	WarningRateLimited
	WarningNotFound
	WarningTimeout
	WarningUnreachable
)

// String returns the kind name used in logs.
func (k WarningKind) String() string {
	switch k {
	case WarningConfigMissing:
		return "config_missing"
	case WarningRateLimited:
		return "rate_limited"
	case WarningNotFound:
		return "not_found"
	case WarningTimeout:
		return "timeout"
	case WarningUnreachable:
		return "unreachable"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Warning is the overlay shown instead of, or on top of, the grid.
type Warning struct {
	Kind    WarningKind
	Title   string
	Message string
	Hint    string
	Color   timetable.Color
}

// DismissHint is shown at the bottom of every warning.
const DismissHint = "enter/esc dismiss · r retry"

var (
	colorCaution = timetable.Color{R: 0xf9, G: 0xe2, B: 0xaf}
	colorError   = timetable.Color{R: 0xf3, G: 0x8b, B: 0xa8}
)

// WarningFor maps an acquisition error to the warning shown to the user.
// configPath is the endpoint file location mentioned in configuration hints.
func WarningFor(err error, configPath string) Warning {
	w := Warning{Hint: DismissHint, Color: colorError}

	switch {
	case errors.Is(err, config.ErrEndpointUnset), errors.Is(err, errEndpoint):
		w.Kind = WarningConfigMissing
		w.Title = "Missing configuration"
		w.Message = fmt.Sprintf(
			"No timetable endpoint is configured.\nWrite the endpoint URL to\n  %s\nfor example\n  %s",
			configPath, config.ExampleEndpoint,
		)
		w.Color = colorCaution
	case errors.Is(err, fetch.ErrRateLimited):
		w.Kind = WarningRateLimited
		w.Title = "Too many requests"
		w.Message = "The server is rate limiting requests.\nWait a moment before refreshing again."
		w.Color = colorCaution
	case errors.Is(err, fetch.ErrNotFound):
		w.Kind = WarningNotFound
		w.Title = "Not found"
		w.Message = "The timetable resource was not found.\nCheck the endpoint URL in\n  " + configPath
	case errors.Is(err, fetch.ErrTimeout):
		w.Kind = WarningTimeout
		w.Title = "Request timed out"
		w.Message = "The server took too long to answer.\nTry refreshing again."
		w.Color = colorCaution
	default:
		w.Kind = WarningUnreachable
		w.Title = "Host unreachable"
		w.Message = "Could not load the timetable.\nCheck your connection and the configuration in\n  " + configPath
	}

	return w
}
