package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-jigsaw/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the resolved game configuration",
	Long: `Resolve the game configuration using the normal search order and print it.

Search order:
  --config path
  ~/.jigsaw/configs/game.yaml
  ./configs/game.yaml
  built-in defaults`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) {
	cfg, origin, err := config.Load(settings.ConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("# source: %s\n", origin)
	fmt.Print(string(data))
}
