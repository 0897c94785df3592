package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/loadscreen/internal/config"
	"github.com/vovakirdan/loadscreen/internal/logging"
	"github.com/vovakirdan/loadscreen/internal/platform/tui"
	"github.com/vovakirdan/loadscreen/internal/storage"
	"github.com/vovakirdan/loadscreen/internal/theme"
	"github.com/vovakirdan/loadscreen/internal/updates"
)

var flagUpdatesJSON bool

var updatesCmd = &cobra.Command{
	Use:   "updates",
	Short: "Print the latest server updates",
	Long: `Fetch the server updates the same way the loading screen does: from the
Discord endpoint first, then after a short pause from the fallback document.

Examples:
  loadscreen updates
  loadscreen updates --updates-config ./updates.yaml
  loadscreen updates --json`,
	Run: runUpdates,
}

func init() {
	updatesCmd.Flags().StringVar(&flagUpdatesConfig, "updates-config", "", "Path to custom updates config YAML")
	updatesCmd.Flags().BoolVar(&flagUpdatesJSON, "json", false, "Print the updates as a JSON document")
}

func runUpdates(_ *cobra.Command, _ []string) {
	logger, err := logging.Stderr(flagLogLevel, "loadscreen")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.LoadUpdates(flagUpdatesConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading updates config: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	feed := updates.NewFeed(cfg, nil, logger)
	items, err := feed.Load(ctx, func(s updates.Status) {
		if msg := s.Message(); msg != "" && s != updates.StatusFailed {
			fmt.Fprintln(os.Stderr, msg)
		}
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, updates.ErrorMessage(err))
		logger.Debug("updates load failed", "err", err)
		stop()
		os.Exit(1)
	}

	if flagUpdatesJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(map[string][]updates.Update{"updates": items}); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	styles := theme.NewStyles(currentTheme())
	width, _ := terminalSize()
	for _, u := range items {
		fmt.Println(tui.RenderUpdateCard(u, styles, min(width-2, 80)))
	}
}

// currentTheme reads the saved theme without failing when there is no
// database.
func currentTheme() theme.Theme {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return theme.Get(theme.DefaultKey)
	}
	defer closeStore(store)
	return theme.NewManager(store.Preferences(), nil, nil).Load()
}
