// Package fetch retrieves timetable payloads over HTTP and classifies failures.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

// Transport errors. Every failed Fetch wraps exactly one of these.
var (
	ErrRateLimited = errors.New("too many requests")
	ErrNotFound    = errors.New("resource not found")
	ErrTimeout     = errors.New("request timed out")
	ErrUnreachable = errors.New("host unreachable")
)

// DefaultTimeout bounds a request when no timeout is configured.
const DefaultTimeout = 10 * time.Second

// maxBodySize caps the payload read into memory.
const maxBodySize = 8 << 20

// Client performs timetable requests.
type Client struct {
	http   *http.Client
	logger *zap.Logger
}

// New creates a Client with the given request timeout.
func New(timeout time.Duration, logger *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		http:   &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// Fetch issues a GET to endpoint and returns the response body.
func (c *Client) Fetch(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	c.logger.Debug("fetch start", zap.String("url", redactURL(endpoint)))

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("fetch failed", zap.String("url", redactURL(endpoint)), zap.Error(err))
		return nil, classifyTransportError(err)
	}
	defer resp.Body.Close()

	c.logger.Debug("fetch done",
		zap.String("url", redactURL(endpoint)),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(start)),
	)

	if err := classifyStatus(resp.StatusCode); err != nil {
		return nil, err
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, classifyTransportError(err)
	}
	return body, nil
}

func classifyStatus(code int) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusTooManyRequests:
		return fmt.Errorf("%w: status %d", ErrRateLimited, code)
	case code == http.StatusNotFound:
		return fmt.Errorf("%w: status %d", ErrNotFound, code)
	case code == http.StatusRequestTimeout:
		return fmt.Errorf("%w: status %d", ErrTimeout, code)
	default:
		return fmt.Errorf("%w: status %d", ErrUnreachable, code)
	}
}

func classifyTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	return fmt.Errorf("%w: %v", ErrUnreachable, err)
}

// redactURL drops the query string and credentials before logging.
func redactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "<invalid url>"
	}
	u.User = nil
	u.RawQuery = ""
	return u.String()
}
