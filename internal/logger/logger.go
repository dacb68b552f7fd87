// Package logger builds the application's zap logger.
package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/javiermolinar/urnik/internal/config"
)

// DebugLogPath is the fixed path for debug logs.
const DebugLogPath = "urnik-debug.log"

// New returns a JSON-lines file logger for cfg. The TUI owns the terminal, so
// nothing is written to stdout or stderr. With debug set the level is forced
// to debug and the log goes to DebugLogPath unless a path is configured.
// A nop logger is returned when no path is available.
func New(cfg config.LogConfig, debug bool) (*zap.Logger, error) {
	path := cfg.Path
	level := cfg.Level
	if debug {
		level = "debug"
		if path == "" {
			path = DebugLogPath
		}
	}
	if path == "" {
		return zap.NewNop(), nil
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.Encoding = "json"
	zapCfg.Sampling = nil
	zapCfg.OutputPaths = []string{path}
	zapCfg.ErrorOutputPaths = []string{path}
	zapCfg.EncoderConfig.TimeKey = "ts"
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if level != "" {
		if err := zapCfg.Level.UnmarshalText([]byte(level)); err != nil {
			zapCfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
		}
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating log directory: %w", err)
		}
	}

	l, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return l, nil
}
