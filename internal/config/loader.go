package config

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Blob is an open configuration handle. Close releases it.
type Blob struct {
	io.ReadCloser
	Origin string // File path, or "embedded"
}

// Open resolves the configuration blob.
// Search order: customPath -> ~/.jigsaw/configs/game.yaml -> ./configs/game.yaml -> embedded default
// A custom path that cannot be opened is an error; the other locations are optional.
func Open(customPath string) (*Blob, error) {
	// Try custom path first
	if customPath != "" {
		f, err := os.Open(ExpandHome(customPath))
		if err != nil {
			return nil, fmt.Errorf("config: open %s: %w", customPath, err)
		}
		return &Blob{ReadCloser: f, Origin: customPath}, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("game.yaml"); userCfgPath != "" {
		if f, err := os.Open(userCfgPath); err == nil {
			return &Blob{ReadCloser: f, Origin: userCfgPath}, nil
		}
	}

	// Try local configs directory
	if f, err := os.Open(filepath.Join("configs", "game.yaml")); err == nil {
		return &Blob{ReadCloser: f, Origin: filepath.Join("configs", "game.yaml")}, nil
	}

	// Use embedded default YAML
	return &Blob{ReadCloser: io.NopCloser(bytes.NewReader(defaultGameYAML)), Origin: "embedded"}, nil
}

// Opener returns a context-aware function opening the blob for customPath.
func Opener(customPath string) func(context.Context) (io.ReadCloser, error) {
	return func(ctx context.Context) (io.ReadCloser, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		blob, err := Open(customPath)
		if err != nil {
			return nil, err
		}
		return blob, nil
	}
}

// Load opens, reads and parses the configuration in one step.
func Load(customPath string) (GameConfig, string, error) {
	blob, err := Open(customPath)
	if err != nil {
		return GameConfig{}, "", err
	}
	defer blob.Close()

	data, err := io.ReadAll(blob)
	if err != nil {
		return GameConfig{}, blob.Origin, fmt.Errorf("config: read %s: %w", blob.Origin, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return GameConfig{}, blob.Origin, fmt.Errorf("%s: %w", blob.Origin, err)
	}
	return cfg, blob.Origin, nil
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".jigsaw", "configs", filename)
}
