package ui

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/urnik/internal/config"
)

func (a *App) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "View configuration",
		Long: `Show where urnik keeps its configuration and which endpoint it uses.

If no config file exists, creates one with default values.

Example:
  urnik config
  urnik config set-endpoint ` + config.ExampleEndpoint,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runConfigShow(cmd.OutOrStdout())
		},
	}
	cmd.AddCommand(a.setEndpointCmd())
	return cmd
}

func (a *App) setEndpointCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-endpoint URL",
		Short: "Write the timetable endpoint URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			url := args[0]
			if err := validator.New().Var(url, "required,http_url"); err != nil {
				return fmt.Errorf("invalid endpoint %q: must be an http(s) URL", url)
			}
			path := a.config.Source.EndpointFile
			if err := config.SaveEndpoint(path, url); err != nil {
				return fmt.Errorf("saving endpoint: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Endpoint saved to %s\n", path)
			return nil
		},
	}
}

func (a *App) runConfigShow(w io.Writer) error {
	fmt.Fprintf(w, "Config file: %s\n\n", a.configPath)

	// Check if file exists
	_, fileErr := os.Stat(a.configPath)
	if os.IsNotExist(fileErr) {
		fmt.Fprintln(w, "No config file found. Creating with default values...")
		if err := a.config.SaveTo(a.configPath); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Fprintf(w, "Created %s\n\n", a.configPath)
	}

	printConfig(w, a.config)

	endpoint, err := config.LoadEndpoint(a.config.Source.EndpointFile)
	switch {
	case errors.Is(err, config.ErrEndpointUnset):
		endpoint = formatWarning("(not set)")
	case err != nil:
		return err
	}
	fmt.Fprintf(w, "\nEndpoint: %s\n", endpoint)
	return nil
}

func printConfig(w io.Writer, cfg *config.Config) {
	fmt.Fprintln(w, "Current configuration:")
	fmt.Fprintln(w, "──────────────────────")
	fmt.Fprintln(w, "[source]")
	fmt.Fprintf(w, "  endpoint_file    = %s\n", cfg.Source.EndpointFile)
	fmt.Fprintln(w, "\n[fetch]")
	fmt.Fprintf(w, "  timeout          = %s\n", cfg.Fetch.Timeout)
	fmt.Fprintln(w, "\n[storage]")
	fmt.Fprintf(w, "  db_path          = %s\n", cfg.Storage.DBPath)
	fmt.Fprintln(w, "\n[ui]")
	fmt.Fprintf(w, "  theme            = %s\n", cfg.UI.Theme)
	fmt.Fprintln(w, "\n[log]")
	fmt.Fprintf(w, "  level            = %s\n", cfg.Log.Level)
	if cfg.Log.Path != "" {
		fmt.Fprintf(w, "  path             = %s\n", cfg.Log.Path)
	}
}
