package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-jigsaw/internal/platform/tui"
	"github.com/vovakirdan/tui-jigsaw/internal/storage"
)

var (
	flagLimit       int
	flagInteractive bool
	flagClear       bool
)

var playsCmd = &cobra.Command{
	Use:   "plays",
	Short: "Show the play journal",
	Long: `Display the most recent play requests recorded by the lobby.

Examples:
  jigsaw plays
  jigsaw plays --limit 20
  jigsaw plays --interactive
  jigsaw plays --clear`,
	Args: cobra.NoArgs,
	Run:  runPlays,
}

func init() {
	playsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of plays to show")
	playsCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse the journal in a table")
	playsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded play")
}

func runPlays(cmd *cobra.Command, args []string) {
	store, err := storage.Open(settings.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening play journal: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.Clear(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing plays: %v\n", err)
			return
		}
		fmt.Println("Play journal cleared.")
		return
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunPlays(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	plays, err := store.RecentPlays(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving plays: %v\n", err)
		return
	}

	fmt.Println("Play Journal")
	fmt.Println()

	if len(plays) == 0 {
		fmt.Println("No plays recorded yet.")
		fmt.Println()
		fmt.Println("Run 'jigsaw play' and press play to record one!")
		return
	}

	// Print header
	fmt.Printf("  %-6s  %-6s  %-6s  %s\n", "ID", "Size", "Score", "Date")
	fmt.Printf("  %-6s  %-6s  %-6s  %s\n", "--", "----", "-----", "----")

	for _, p := range plays {
		fmt.Printf("  %-6d  %-6d  %-6d  %s\n", p.ID, p.DifficultySize, p.Score, p.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if total, err := store.PlayCount(); err == nil {
		fmt.Printf("Total: %d\n", total)
	}
}
