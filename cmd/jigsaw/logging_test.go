package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-jigsaw/internal/config"
)

func TestOpenLoggerWritesFile(t *testing.T) {
	s := config.DefaultSettings()
	s.LogFile = filepath.Join(t.TempDir(), "logs", "jigsaw.log")
	s.LogLevel = "debug"

	logger, closeLog, err := openLogger(s)
	if err != nil {
		t.Fatalf("openLogger() failed: %v", err)
	}
	logger.Debug("hello", "key", "value")
	if err := closeLog(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	data, err := os.ReadFile(s.LogFile)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if !strings.Contains(string(data), "hello") || !strings.Contains(string(data), "key=value") {
		t.Errorf("Unexpected log contents %q", data)
	}
}
