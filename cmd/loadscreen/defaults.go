package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/loadscreen/internal/config"
)

var defaultsCmd = &cobra.Command{
	Use:   "defaults <getaway|updates>",
	Short: "Print a built-in config file",
	Long: `Prints the embedded default YAML for the getaway minigame or the
server updates feed. Save the output under ~/.loadscreen/configs/ or pass it
with --config / --updates-config to customize it.`,
	Example: `  loadscreen defaults getaway > ~/.loadscreen/configs/getaway.yaml
  loadscreen defaults updates`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"getaway", "updates"},
	Run:       runDefaults,
}

func runDefaults(_ *cobra.Command, args []string) {
	data := config.GetDefaultYAML(args[0])
	if data == nil {
		fmt.Fprintf(os.Stderr, "Error: unknown config %q (want getaway or updates)\n", args[0])
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
