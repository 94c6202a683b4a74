// Package config provides YAML-based lobby configuration loading and
// the process settings shared by the CLI commands.
package config

import (
	"bytes"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// GameConfig is the content configuration blob.
type GameConfig struct {
	DifficultySizes    []int `yaml:"difficulty_sizes"`     // Puzzle sizes in pieces, in display order
	InitialPlayerScore int   `yaml:"initial_player_score"` // Score before the first refresh
}

// ErrNoDifficulties is returned when the config declares no sizes.
var ErrNoDifficulties = errors.New("config: no difficulty sizes")

// Validate checks the invariants of a loaded configuration.
func (c GameConfig) Validate() error {
	if len(c.DifficultySizes) == 0 {
		return ErrNoDifficulties
	}
	for i, size := range c.DifficultySizes {
		if size <= 0 {
			return fmt.Errorf("config: difficulty size #%d is %d, must be positive", i, size)
		}
	}
	if c.InitialPlayerScore < 0 {
		return fmt.Errorf("config: initial score %d is negative", c.InitialPlayerScore)
	}
	return nil
}

// Parse decodes and validates a configuration blob.
// Unknown keys are rejected so typos do not silently fall back to zero values.
func Parse(data []byte) (GameConfig, error) {
	var cfg GameConfig

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return GameConfig{}, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return GameConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes cfg as YAML.
func Marshal(cfg GameConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}
