package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/loadscreen/internal/storage"
	"github.com/vovakirdan/loadscreen/internal/theme"
)

var flagThemeVars bool

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "List, show or change the loading screen theme",
	Long: `Manage the saved theme. The choice is shared by the loading screen,
the minigame and the updates command.

Examples:
  loadscreen theme list
  loadscreen theme set vaporwave
  loadscreen theme current --vars
  loadscreen theme progress
  loadscreen theme reset`,
}

var themeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available themes",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		withThemes(func(m *theme.Manager) {
			current := m.Current().Key
			for _, t := range theme.All() {
				marker := " "
				if t.Key == current {
					marker = "*"
				}
				fmt.Printf(" %s %-10s  %-10s  %s\n", marker, t.Key, t.Label, t.Progress.Name())
			}
		})
	},
}

var themeSetCmd = &cobra.Command{
	Use:   "set <theme>",
	Short: "Apply and save a theme",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		if _, ok := theme.Lookup(args[0]); !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown theme %q\n", args[0])
			fmt.Fprintln(os.Stderr, "Run 'loadscreen theme list' to see available themes.")
			os.Exit(1)
		}
		withThemes(func(m *theme.Manager) {
			t := m.Apply(args[0])
			fmt.Printf("Theme set to %s (%s bar)\n", t.Label, m.Progress().Name())
		})
	},
}

var themeCurrentCmd = &cobra.Command{
	Use:   "current",
	Short: "Show the saved theme",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		withThemes(func(m *theme.Manager) {
			t := m.Current()
			fmt.Printf("%s (%s), %s bar\n", t.Label, t.Key, m.Progress().Name())
			if !flagThemeVars {
				return
			}
			fmt.Println()
			for _, v := range t.Palette.Vars() {
				fmt.Printf("  %-22s %s\n", v.Name, v.Value)
			}
		})
	},
}

var themeProgressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Cycle the loading bar style of the saved theme",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		withThemes(func(m *theme.Manager) {
			fmt.Printf("Loading bar style: %s\n", m.ToggleProgressStyle().Name())
		})
	},
}

var themeResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget the saved theme and loading bar styles",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
			os.Exit(1)
		}
		defer closeStore(store)

		prefs, err := store.AllPreferences()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading preferences: %v\n", err)
			os.Exit(1)
		}
		removed := 0
		for key := range prefs {
			if !theme.IsPrefKey(key) {
				continue
			}
			if err := store.DeletePreference(key); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			removed++
		}
		fmt.Printf("Removed %d theme preference(s); %s is used again\n", removed, theme.Get(theme.DefaultKey).Label)
	},
}

func init() {
	themeCurrentCmd.Flags().BoolVar(&flagThemeVars, "vars", false, "Also print the theme's colour variables")

	themeCmd.AddCommand(themeListCmd)
	themeCmd.AddCommand(themeSetCmd)
	themeCmd.AddCommand(themeCurrentCmd)
	themeCmd.AddCommand(themeProgressCmd)
	themeCmd.AddCommand(themeResetCmd)
}

// withThemes runs fn with a manager over the saved preferences, with the
// saved theme already applied.
func withThemes(fn func(m *theme.Manager)) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer closeStore(store)

	m := theme.NewManager(store.Preferences(), nil, nil)
	m.Load()
	fn(m)
}
