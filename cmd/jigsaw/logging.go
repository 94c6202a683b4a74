package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-jigsaw/internal/config"
)

// openLogger creates the process logger. While the TUI owns the terminal
// logs go to the configured file. The returned func releases it.
func openLogger(s config.Settings) (*log.Logger, func() error, error) {
	var out io.Writer = os.Stderr
	closeFn := func() error { return nil }

	if s.LogFile != "" {
		path := config.ExpandHome(s.LogFile)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("log: cannot create directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("log: cannot open %s: %w", path, err)
		}
		out, closeFn = f, f.Close
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "jigsaw",
		Level:           s.Level(),
	})
	return logger, closeFn, nil
}
