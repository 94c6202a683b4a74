// Package core holds the host-facing runtime settings and the semantic
// input actions the lobby understands.
package core

import "time"

// RuntimeConfig contains configuration passed to the host loop at startup.
type RuntimeConfig struct {
	ScreenW     int           // Screen width in characters
	ScreenH     int           // Screen height in characters
	TickRate    int           // Frames per second (default 60)
	Seed        int64         // RNG seed for the score schedule
	LoadTimeout time.Duration // Upper bound for the content load
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:     80,
		ScreenH:     24,
		TickRate:    60,
		Seed:        0, // 0 means use current time in platform layer
		LoadTimeout: 30 * time.Second,
	}
}

// Normalize fills zero fields with defaults.
func (c RuntimeConfig) Normalize() RuntimeConfig {
	def := DefaultConfig()
	if c.ScreenW <= 0 {
		c.ScreenW = def.ScreenW
	}
	if c.ScreenH <= 0 {
		c.ScreenH = def.ScreenH
	}
	if c.TickRate <= 0 {
		c.TickRate = def.TickRate
	}
	if c.LoadTimeout <= 0 {
		c.LoadTimeout = def.LoadTimeout
	}
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	return c
}
