package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/loadscreen/internal/config"
	"github.com/vovakirdan/loadscreen/internal/games/getaway"
	"github.com/vovakirdan/loadscreen/internal/platform/tui"
	"github.com/vovakirdan/loadscreen/internal/registry"
)

var (
	flagConfig        string
	flagDifficulty    string
	flagUpdatesConfig string
	flagServerName    string
	flagLoadTime      time.Duration
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the loading screen",
	Long: `Show the full loading screen: the minigame, the server updates and
the score history in tabs, under a themed loading bar.

Controls:
  Left/Right  - Steer
  Space       - Start / restart the minigame
  Tab         - Next tab
  T           - Pick a theme
  Ctrl+P      - Cycle the loading bar style
  R           - Retry loading updates (Server Updates tab)
  Q/Ctrl+C    - Quit

Examples:
  loadscreen show
  loadscreen show --server-name "Downtown RP" --load-time 45s
  loadscreen show --updates-config ./updates.yaml`,
	Run: runShow,
}

func init() {
	addShowFlags(showCmd)
}

func addShowFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom getaway config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().StringVar(&flagUpdatesConfig, "updates-config", "", "Path to custom updates config YAML")
	cmd.Flags().StringVar(&flagServerName, "server-name", "", "Server name shown in the header")
	cmd.Flags().DurationVar(&flagLoadTime, "load-time", 30*time.Second, "Length of the simulated load")
}

func runShow(_ *cobra.Command, _ []string) {
	logger, closeLog := fileLogger()
	defer closeLog()

	updatesCfg, err := config.LoadUpdates(flagUpdatesConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading updates config: %v\n", err)
		os.Exit(1)
	}

	store := openStore(logger)
	defer closeStore(store)
	prefs := preferences(store)

	game, err := registry.Create(getaway.GameID, registry.Env{
		Prefs:      prefs,
		Logger:     logger,
		ConfigPath: flagConfig,
		Difficulty: flagDifficulty,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	err = tui.RunLoadScreen(tui.LoadScreenOptions{
		Game:       game,
		Store:      store,
		Prefs:      prefs,
		Updates:    updatesCfg,
		Runtime:    runtimeConfig(),
		ServerName: flagServerName,
		LoadTime:   flagLoadTime,
		Logger:     logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running loading screen: %v\n", err)
		closeStore(store)
		os.Exit(1)
	}
}
