package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/javiermolinar/urnik/internal/refresh"
	"github.com/javiermolinar/urnik/internal/timetable"
	"github.com/javiermolinar/urnik/internal/tui/view"
)

func (a *App) showCmd() *cobra.Command {
	var cached bool
	var noColor bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the week's timetable",
		Long: `Fetch the timetable once and print it grouped by day.

With --cached the last stored timetable is printed without touching
the network.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			var (
				snap *timetable.Snapshot
				err  error
			)
			if cached {
				snap, err = a.cachedSnapshot(ctx)
			} else {
				snap, err = a.fetchSnapshot(ctx)
			}
			if err != nil {
				return err
			}
			if snap == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "No stored timetable. Run 'urnik show' to fetch one.")
				return nil
			}

			label := "Updated"
			if cached {
				label = "Cached"
			}
			header := fmt.Sprintf("%s %s", label, view.FormatUpdated(snap.FetchedAt, time.Now()))
			colors := timetable.AssignColors(snap.Entries, nil)
			printWeek(cmd.OutOrStdout(), header, snap.Entries, colors, termWidth())
			return nil
		},
	}

	cmd.Flags().BoolVar(&cached, "cached", false, "Print the stored timetable without fetching")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}

// cachedSnapshot reads the stored timetable. A nil snapshot means nothing
// has been stored yet.
func (a *App) cachedSnapshot(ctx context.Context) (*timetable.Snapshot, error) {
	log, err := a.logger()
	if err != nil {
		return nil, err
	}
	store := a.openStore(log)
	if store == nil {
		return nil, fmt.Errorf("opening snapshot store at %s", a.config.Storage.DBPath)
	}
	defer func() { _ = store.Close() }()

	snap, err := store.LoadSnapshot(ctx)
	if errors.Is(err, timetable.ErrNoSnapshot) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading snapshot: %w", err)
	}
	return snap, nil
}

// fetchSnapshot runs one acquisition and stores the result on success.
func (a *App) fetchSnapshot(ctx context.Context) (*timetable.Snapshot, error) {
	log, err := a.logger()
	if err != nil {
		return nil, err
	}
	acquirer, err := a.acquirer(log)
	if err != nil {
		return nil, err
	}

	out := acquirer.Acquire(ctx)
	if out.Err != nil {
		w := refresh.WarningFor(out.Err, out.ConfigPath)
		return nil, fmt.Errorf("%s: %s", w.Title, strings.ReplaceAll(w.Message, "\n", " "))
	}

	snap := timetable.Snapshot{
		Endpoint:  out.Endpoint,
		FetchedAt: time.Now(),
		Entries:   out.Entries,
	}
	if store := a.openStore(log); store != nil {
		if err := store.SaveSnapshot(ctx, snap); err != nil {
			log.Warn("saving snapshot failed", zap.Error(err))
		}
		_ = store.Close()
	}
	return &snap, nil
}

// printWeek writes the week listing with subject names in their colors.
func printWeek(w io.Writer, header string, entries []timetable.Entry, colors timetable.Colors, width int) {
	rule := strings.Repeat("─", min(max(width, 1), maxRuleWidth))

	fmt.Fprintln(w, formatMuted(header))
	for day := 0; day < timetable.Days; day++ {
		fmt.Fprintln(w)
		fmt.Fprintln(w, formatHeader(timetable.DayName(day)))
		fmt.Fprintln(w, formatMuted(rule))

		dayEntries := timetable.DayEntries(entries, day)
		if len(dayEntries) == 0 {
			fmt.Fprintln(w, formatMuted("  -"))
			continue
		}
		for _, e := range dayEntries {
			fmt.Fprintf(w, "  %s\n", formatEntry(e, colors))
		}
	}
}

// formatEntry mirrors timetable.FormatEntryLine with color applied.
func formatEntry(e timetable.Entry, colors timetable.Colors) string {
	subject := formatSubject(e.Subject.Name, colors.ColorFor(e.Subject.Name))
	if e.Subject.Type != "" {
		subject += " (" + e.Subject.Type + ")"
	}
	parts := []string{formatMuted(timetable.FormatSpan(e)), subject}
	if e.Professor != "" {
		parts = append(parts, e.Professor)
	}
	if e.Classroom != "" {
		parts = append(parts, e.Classroom)
	}
	return strings.Join(parts, "  ")
}
