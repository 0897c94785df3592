package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/loadscreen/internal/games/getaway"
	"github.com/vovakirdan/loadscreen/internal/platform/tui"
	"github.com/vovakirdan/loadscreen/internal/registry"
	"github.com/vovakirdan/loadscreen/internal/theme"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a minigame on its own",
	Long: `Start the minigame full screen, without the loading screen around it.

Controls:
  Left/Right  - Steer
  Space       - Start / restart
  R           - Reset after being busted
  Ctrl+S      - Save a screenshot
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  loadscreen play
  loadscreen play getaway --difficulty hard
  loadscreen play --config ./my-getaway.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := getaway.GameID
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'loadscreen list' to see available games.")
		os.Exit(1)
	}

	logger, closeLog := fileLogger()
	defer closeLog()

	store := openStore(logger)
	defer closeStore(store)
	prefs := preferences(store)

	game, err := registry.Create(gameID, registry.Env{
		Prefs:      prefs,
		Logger:     logger,
		ConfigPath: flagConfig,
		Difficulty: flagDifficulty,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	palette := theme.NewManager(prefs, nil, logger).Load().Palette

	if err := tui.Run(game, store, runtimeConfig(), &palette, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		closeStore(store)
		os.Exit(1)
	}
}
