// Package refresh drives timetable acquisition and tracks what the grid
// shows: nothing yet, a refresh in flight, a grid, or a warning.
package refresh

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/javiermolinar/urnik/internal/config"
	"github.com/javiermolinar/urnik/internal/timetable"
)

var errEndpoint = errors.New("resolving endpoint")

// EndpointResolver looks up the configured endpoint URL.
type EndpointResolver interface {
	// Path returns where the endpoint is configured, for user hints.
	Path() string
	// Endpoint returns the URL or config.ErrEndpointUnset.
	Endpoint() (string, error)
}

// Source fetches a raw timetable payload.
type Source interface {
	Fetch(ctx context.Context, endpoint string) ([]byte, error)
}

// Outcome is the result of one acquisition attempt.
type Outcome struct {
	ConfigPath string
	Endpoint   string
	Entries    []timetable.Entry // validated
	Err        error
}

// Acquirer resolves the endpoint, fetches, decodes, and filters entries.
type Acquirer struct {
	endpoints EndpointResolver
	source    Source
	filter    *timetable.Filter
	logger    *zap.Logger
}

// NewAcquirer creates an Acquirer. A nil filter or logger falls back to defaults.
func NewAcquirer(endpoints EndpointResolver, source Source, filter *timetable.Filter, logger *zap.Logger) *Acquirer {
	if logger == nil {
		logger = zap.NewNop()
	}
	if filter == nil {
		filter = timetable.NewFilter(nil, logger)
	}
	return &Acquirer{
		endpoints: endpoints,
		source:    source,
		filter:    filter,
		logger:    logger,
	}
}

// Acquire runs one attempt. It never touches the network when the endpoint
// is not configured.
func (a *Acquirer) Acquire(ctx context.Context) Outcome {
	out := Outcome{ConfigPath: a.endpoints.Path()}

	endpoint, err := a.endpoints.Endpoint()
	if err != nil {
		if !errors.Is(err, config.ErrEndpointUnset) {
			err = fmt.Errorf("%w: %v", errEndpoint, err)
		}
		a.logger.Info("endpoint not configured", zap.String("path", out.ConfigPath), zap.Error(err))
		out.Err = err
		return out
	}
	out.Endpoint = endpoint

	body, err := a.source.Fetch(ctx, endpoint)
	if err != nil {
		out.Err = err
		return out
	}

	entries, err := timetable.Decode(body)
	if err != nil {
		a.logger.Warn("decode failed", zap.Int("bytes", len(body)), zap.Error(err))
		out.Err = err
		return out
	}

	out.Entries = a.filter.Valid(entries)
	a.logger.Debug("entries acquired",
		zap.Int("received", len(entries)),
		zap.Int("valid", len(out.Entries)),
	)
	return out
}
