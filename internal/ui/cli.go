package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/javiermolinar/urnik/internal/config"
	"github.com/javiermolinar/urnik/internal/db"
	"github.com/javiermolinar/urnik/internal/fetch"
	"github.com/javiermolinar/urnik/internal/logger"
	"github.com/javiermolinar/urnik/internal/refresh"
	"github.com/javiermolinar/urnik/internal/timetable"
	"github.com/javiermolinar/urnik/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	config     *config.Config
	configPath string
	root       *cobra.Command
	debug      bool // Enable debug logging
	log        *zap.Logger
}

// NewApp creates a new CLI application with the given config.
func NewApp(cfg *config.Config) *App {
	a := &App{config: cfg, configPath: config.DefaultConfigPath()}

	a.root = &cobra.Command{
		Use:   "urnik",
		Short: "A terminal viewer for a weekly class timetable",
		Long: `Urnik fetches a weekly class timetable from a configured endpoint
and shows it as a day-by-hour grid.

Run without arguments to open the interactive viewer.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runTUI(cmd.Context())
		},
	}

	// Add global flags
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to "+logger.DebugLogPath+")")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.showCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "urnik %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close flushes the logger.
func (a *App) Close() error {
	if a.log == nil {
		return nil
	}
	_ = a.log.Sync()
	return nil
}

func (a *App) runTUI(ctx context.Context) error {
	log, err := a.logger()
	if err != nil {
		return err
	}
	acquirer, err := a.acquirer(log)
	if err != nil {
		return err
	}

	deps := tui.Deps{
		Context:  ctx,
		Acquirer: acquirer,
		Logger:   log,
		Theme:    a.config.UI.Theme,
	}
	// A store that fails to open only costs the cached grid.
	if store := a.openStore(log); store != nil {
		defer func() { _ = store.Close() }()
		deps.Store = store
	}

	log.Info("starting tui", zap.String("theme", a.config.UI.Theme), zap.Bool("debug", a.debug))
	return tui.Run(deps)
}

// logger builds the application logger once.
func (a *App) logger() (*zap.Logger, error) {
	if a.log != nil {
		return a.log, nil
	}
	l, err := logger.New(a.config.Log, a.debug)
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}
	a.log = l
	return l, nil
}

func (a *App) acquirer(log *zap.Logger) (*refresh.Acquirer, error) {
	timeout, err := a.config.FetchTimeout()
	if err != nil {
		return nil, err
	}
	client := fetch.New(timeout, log)
	filter := timetable.NewFilter(nil, log)
	endpoints := config.EndpointFile(a.config.Source.EndpointFile)
	return refresh.NewAcquirer(endpoints, client, filter, log), nil
}

func (a *App) openStore(log *zap.Logger) *db.SQLite {
	store, err := db.Open(a.config.Storage.DBPath)
	if err != nil {
		log.Warn("snapshot store unavailable", zap.String("path", a.config.Storage.DBPath), zap.Error(err))
		return nil
	}
	return store
}
