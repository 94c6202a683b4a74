package config

import (
	_ "embed"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

//go:embed defaults/game.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the built-in configuration.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		DifficultySizes:    []int{36, 64, 100, 144, 256, 400},
		InitialPlayerScore: 10,
	}
}

// DefaultYAML returns the embedded default configuration blob.
func DefaultYAML() []byte {
	return defaultGameYAML
}

// Settings are process-level options, filled from CLI flags.
type Settings struct {
	ConfigPath  string        // Custom game config YAML, empty = search order
	AssetsDir   string        // Directory holding icons/<key>.png, empty = embedded
	LayoutPath  string        // Custom UI layout YAML, empty = embedded
	DBPath      string        // Play journal database
	LogFile     string        // Log destination while the TUI owns the terminal
	LogLevel    string        // debug, info, warn, error
	TickRate    int           // Frames per second
	Seed        int64         // RNG seed, 0 = time based
	LoadTimeout time.Duration // Upper bound for the content load
}

// DefaultSettings returns settings with sensible defaults.
func DefaultSettings() Settings {
	return Settings{
		DBPath:      filepath.Join("~", ".jigsaw", "plays.db"),
		LogFile:     filepath.Join("~", ".jigsaw", "jigsaw.log"),
		LogLevel:    "info",
		TickRate:    60,
		LoadTimeout: 30 * time.Second,
	}
}

// Level parses LogLevel, falling back to info.
func (s Settings) Level() log.Level {
	lvl, err := log.ParseLevel(s.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
