// jigsaw is a terminal lobby for a jigsaw puzzle game.
//
// Usage:
//
//	jigsaw play            - Open the lobby (default)
//	jigsaw plays           - Show the play journal
//	jigsaw config          - Print the resolved game configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for the score schedule
//	--db <path>           - Set database path (default: ~/.jigsaw/plays.db)
//	--log-file <path>     - Log destination (default: ~/.jigsaw/jigsaw.log)
//	--log-level <level>   - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-jigsaw/internal/config"
)

// settings holds the process options filled from flags.
var settings = config.DefaultSettings()

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "jigsaw",
	Short: "Jigsaw - pick a puzzle size and play in your terminal",
	Long: `Jigsaw opens a lobby where you pick a puzzle difficulty and press play.

Available commands:
  play     - Open the lobby
  plays    - Show the play journal
  config   - Print the resolved game configuration

Examples:
  jigsaw
  jigsaw play --config ./my-game.yaml
  jigsaw plays --limit 20
  jigsaw config`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&settings.TickRate, "fps", settings.TickRate, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&settings.Seed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&settings.DBPath, "db", settings.DBPath, "Path to play journal database")
	rootCmd.PersistentFlags().StringVar(&settings.LogFile, "log-file", settings.LogFile, "Path to log file")
	rootCmd.PersistentFlags().StringVar(&settings.LogLevel, "log-level", settings.LogLevel, "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&settings.ConfigPath, "config", "", "Path to custom game config YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(playsCmd)
	rootCmd.AddCommand(configCmd)
}
