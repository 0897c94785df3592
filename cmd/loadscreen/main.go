// loadscreen is a game-server loading screen for the terminal: a getaway
// driver minigame, the server's latest updates and a choice of themes.
//
// Usage:
//
//	loadscreen                   - Show the loading screen
//	loadscreen show              - Same as above
//	loadscreen play [game]       - Play the minigame on its own
//	loadscreen list              - List available minigames
//	loadscreen serve             - Serve the loading screen over SSH
//	loadscreen scores [game]     - Show the score history
//	loadscreen updates           - Print the server updates
//	loadscreen theme list|set|current|progress
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.loadscreen/loadscreen.db)
//	--log-file <path>    - Write logs to a file (interactive commands log nowhere by default)
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/loadscreen/internal/core"
	"github.com/vovakirdan/loadscreen/internal/logging"
	"github.com/vovakirdan/loadscreen/internal/storage"

	// Import games to register them
	_ "github.com/vovakirdan/loadscreen/internal/games/getaway"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "loadscreen",
	Short: "Loadscreen - a game-server loading screen in your terminal",
	Long: `Loadscreen shows what players see while a game server loads:
a getaway driver minigame, the latest server updates and a themed
loading bar.

Available commands:
  show     - The full loading screen (default)
  play     - Play the minigame on its own
  list     - Show all available minigames
  serve    - Serve the loading screen over SSH
  scores   - View the score history
  updates  - Print the server updates
  theme    - List, show or change the theme

Examples:
  loadscreen
  loadscreen show --server-name "Downtown RP"
  loadscreen play --difficulty hard
  loadscreen serve --ssh :2222
  loadscreen theme set neon`,
	Run: runShow,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to the scores and preferences database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	addShowFlags(rootCmd)

	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(updatesCmd)
	rootCmd.AddCommand(themeCmd)
	rootCmd.AddCommand(defaultsCmd)
}

// fileLogger returns the logger of an interactive command and a func that
// closes its file. It discards output unless --log-file is set.
func fileLogger() (*log.Logger, func()) {
	logger, closer, err := logging.New(flagLogFile, flagLogLevel, "loadscreen")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return logging.Discard(), func() {}
	}
	return logger, func() { closeQuietly(closer) }
}

func closeQuietly(c io.Closer) {
	if err := c.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
}

// terminalSize returns the size of stdout, or 80x24.
func terminalSize() (int, int) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return width, height
}

func runtimeConfig() core.RuntimeConfig {
	width, height := terminalSize()
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the database. Without it the loading screen still works
// but nothing persists.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		logger.Warn("could not open database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

// preferences returns the persisted preferences, or in-memory ones when
// there is no database.
func preferences(store *storage.Store) core.Preferences {
	if store == nil {
		return core.NewMemoryPreferences()
	}
	return store.Preferences()
}

func closeStore(store *storage.Store) {
	if store == nil {
		return
	}
	if err := store.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not close database: %v\n", err)
	}
}
