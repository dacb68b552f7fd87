// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/urnik/internal/tui/theme"
)

// Config holds the application configuration.
type Config struct {
	Source  SourceConfig  `toml:"source"`
	Fetch   FetchConfig   `toml:"fetch"`
	Storage StorageConfig `toml:"storage"`
	UI      UIConfig      `toml:"ui"`
	Log     LogConfig     `toml:"log"`
}

// SourceConfig points at the file holding the timetable endpoint URL.
type SourceConfig struct {
	EndpointFile string `toml:"endpoint_file"`
}

// FetchConfig holds HTTP transport settings.
type FetchConfig struct {
	Timeout string `toml:"timeout"` // e.g., "10s"
}

// StorageConfig holds database settings.
type StorageConfig struct {
	DBPath string `toml:"db_path"`
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "mocha", "macchiato", "frappe", "latte"
}

// LogConfig holds logging settings. An empty path disables logging.
type LogConfig struct {
	Level string `toml:"level"` // "debug", "info", "warn", "error"
	Path  string `toml:"path"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Source: SourceConfig{
			EndpointFile: DefaultEndpointPath(),
		},
		Fetch: FetchConfig{
			Timeout: "10s",
		},
		Storage: StorageConfig{
			DBPath: defaultDBPath(),
		},
		UI: UIConfig{
			Theme: "mocha",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

func configDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "urnik")
}

// defaultDBPath returns the default database path.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "urnik.db"
	}
	return filepath.Join(home, ".local", "share", "urnik", "urnik.db")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	return filepath.Join(configDir(), "config.toml")
}

// DefaultEndpointPath returns the default endpoint file path.
func DefaultEndpointPath() string {
	return filepath.Join(configDir(), "endpoint")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	cfg.Source.EndpointFile = expandPath(cfg.Source.EndpointFile)
	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)
	cfg.Log.Path = expandPath(cfg.Log.Path)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("URNIK_ENDPOINT_FILE"); v != "" {
		cfg.Source.EndpointFile = v
	}
	if v := os.Getenv("URNIK_FETCH_TIMEOUT"); v != "" {
		cfg.Fetch.Timeout = v
	}
	if v := os.Getenv("URNIK_DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}
	if v := os.Getenv("URNIK_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	if v := os.Getenv("URNIK_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("URNIK_LOG_PATH"); v != "" {
		cfg.Log.Path = v
	}
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Source.EndpointFile == "" {
		return errors.New("endpoint_file must be set")
	}
	if _, err := c.FetchTimeout(); err != nil {
		return err
	}
	if !theme.IsAvailable(c.UI.Theme) {
		return fmt.Errorf("unknown theme: %s (available: %s)", c.UI.Theme, strings.Join(theme.Available(), ", "))
	}
	if !isKnownLevel(c.Log.Level) {
		return fmt.Errorf("unknown log level: %s", c.Log.Level)
	}
	return nil
}

// FetchTimeout returns the parsed HTTP timeout.
func (c *Config) FetchTimeout() (time.Duration, error) {
	d, err := time.ParseDuration(c.Fetch.Timeout)
	if err != nil {
		return 0, fmt.Errorf("timeout must be a duration like \"10s\", got %q", c.Fetch.Timeout)
	}
	if d <= 0 {
		return 0, fmt.Errorf("timeout must be positive, got %q", c.Fetch.Timeout)
	}
	return d, nil
}

func isKnownLevel(level string) bool {
	switch strings.ToLower(level) {
	case "debug", "info", "warn", "error":
		return true
	default:
		return false
	}
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
