package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-jigsaw/internal/assets"
	"github.com/vovakirdan/tui-jigsaw/internal/config"
	"github.com/vovakirdan/tui-jigsaw/internal/content"
	"github.com/vovakirdan/tui-jigsaw/internal/core"
	"github.com/vovakirdan/tui-jigsaw/internal/game"
	"github.com/vovakirdan/tui-jigsaw/internal/loop"
	"github.com/vovakirdan/tui-jigsaw/internal/platform/tui"
	"github.com/vovakirdan/tui-jigsaw/internal/storage"
	"github.com/vovakirdan/tui-jigsaw/internal/ui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the lobby",
	Long: `Open the puzzle lobby.

Controls:
  Left/Right  - Move between difficulty buttons and play
  Enter/Space - Click the focused button
  P           - Focus the play button
  ?           - Toggle help
  Q/Ctrl+C    - Quit

Examples:
  jigsaw play
  jigsaw play --config ./my-game.yaml
  jigsaw play --assets ./my-icons --layout ./my-layout.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	for _, c := range []*cobra.Command{rootCmd, playCmd} {
		c.Flags().StringVar(&settings.AssetsDir, "assets", "", "Directory holding icons/<key>.png")
		c.Flags().StringVar(&settings.LayoutPath, "layout", "", "Path to custom UI layout YAML")
	}
}

func runPlay(cmd *cobra.Command, args []string) {
	logger, closeLog, err := openLogger(settings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:     width,
		ScreenH:     height,
		TickRate:    settings.TickRate,
		Seed:        settings.Seed,
		LoadTimeout: settings.LoadTimeout,
	}.Normalize()

	// Open play journal
	var recorder game.Recorder
	store, err := storage.Open(settings.DBPath)
	if err != nil {
		logger.Warn("could not open play journal", "error", err)
		// Continue without storage
	} else {
		recorder = store
		defer store.Close()
	}

	var src assets.Source = assets.DefaultSource()
	if settings.AssetsDir != "" {
		src = assets.DirSource(config.ExpandHome(settings.AssetsDir))
	}

	images := assets.NewStore()
	scheduler := loop.NewScheduler()
	surface := ui.NewSurface(images, logger.WithPrefix("ui"))
	root := game.New(game.Options{
		Scheduler: scheduler,
		Surface:   surface,
		Rand:      rand.New(rand.NewSource(cfg.Seed)),
		Recorder:  recorder,
		Assets:    images,
		Logger:    logger,
	})
	defer root.Shutdown()

	task := root.Initialize(&content.Loader{
		Config: config.Opener(settings.ConfigPath),
		Assets: src,
		Keys:   assets.DefaultKeys,
		Logger: logger.WithPrefix("content"),
	})

	logger.Info("starting lobby", "fps", cfg.TickRate, "seed", cfg.Seed)

	runErr := tui.Run(tui.Options{
		Root:       root,
		Scheduler:  scheduler,
		Surface:    surface,
		Task:       task,
		LayoutPath: settings.LayoutPath,
		Config:     cfg,
		Logger:     logger,
	})
	if runErr != nil {
		logger.Error("lobby exited", "error", runErr)
		fmt.Fprintf(os.Stderr, "Error running lobby: %v\n", runErr)
		root.Shutdown()
		if store != nil {
			store.Close()
		}
		os.Exit(1)
	}
}
