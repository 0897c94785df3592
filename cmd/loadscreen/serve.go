package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/loadscreen/internal/config"
	"github.com/vovakirdan/loadscreen/internal/logging"
	"github.com/vovakirdan/loadscreen/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the loading screen over SSH",
	Long: `Start an SSH server that shows the loading screen to every connection.

Each SSH session gets its own minigame, updates panel and theme. Theme,
bar style and best score are remembered per SSH user; the score history
is shared by everyone on the server.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.loadscreen/host_key

Examples:
  loadscreen serve                           # Listen on :23234 with auto-generated key
  loadscreen serve --ssh :2222               # Listen on port 2222
  loadscreen serve --host-key ./my_host_key  # Use specific host key
  loadscreen serve --db ./loadscreen.db      # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	addShowFlags(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) {
	logger, err := logging.Stderr(flagLogLevel, "loadscreen-ssh")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	updatesCfg, err := config.LoadUpdates(flagUpdatesConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading updates config: %v\n", err)
		os.Exit(1)
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.ConfigPath = flagConfig
	cfg.Difficulty = flagDifficulty
	cfg.ServerName = flagServerName
	cfg.TickRate = flagFPS
	cfg.LoadTime = flagLoadTime
	cfg.Updates = updatesCfg

	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting loadscreen SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
