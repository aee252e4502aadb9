// Package config provides YAML-based configuration loading and named presets
// for BlockDrop.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/blockdrop/internal/games/blockdrop/core"
)

// ErrInvalidConfig is returned by Validate for unusable configurations.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// BlockDropConfig contains all configuration for a BlockDrop game.
type BlockDropConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Batch   BatchConfig   `yaml:"batch"`
	Pieces  PiecesConfig  `yaml:"pieces"`
	Scoring ScoringConfig `yaml:"scoring"`
}

// BoardConfig defines the grid dimensions.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// BatchConfig defines how many pieces are offered and when they are dealt.
type BatchConfig struct {
	Size   int    `yaml:"size"`
	Refill string `yaml:"refill"` // "every_placement" or "when_exhausted"
}

// PiecesConfig lists the kinds and colors the spawner draws from.
type PiecesConfig struct {
	Kinds  []string `yaml:"kinds"`
	Colors []string `yaml:"colors"`
}

// ScoringConfig defines the scoring constants.
type ScoringConfig struct {
	BasePerLine     int `yaml:"base_per_line"`
	ComboMultiplier int `yaml:"combo_multiplier"`
	ScorePerLevel   int `yaml:"score_per_level"` // 0 disables levels
}

// Validate checks the configuration and the engine options derived from it.
func (c BlockDropConfig) Validate() error {
	if _, err := c.Options(); err != nil {
		return err
	}
	return nil
}

// Options converts the configuration into engine options.
// Piece names are parsed case-insensitively.
func (c BlockDropConfig) Options() (core.Options, error) {
	kinds := make([]core.Kind, 0, len(c.Pieces.Kinds))
	for _, name := range c.Pieces.Kinds {
		k, ok := core.ParseKind(name)
		if !ok {
			return core.Options{}, fmt.Errorf("%w: unknown piece kind %q", ErrInvalidConfig, name)
		}
		kinds = append(kinds, k)
	}

	colors := make([]core.Color, 0, len(c.Pieces.Colors))
	for _, name := range c.Pieces.Colors {
		col, ok := core.ParseColor(name)
		if !ok {
			return core.Options{}, fmt.Errorf("%w: unknown color %q", ErrInvalidConfig, name)
		}
		colors = append(colors, col)
	}

	opts := core.Options{
		Width:     c.Board.Width,
		Height:    c.Board.Height,
		BatchSize: c.Batch.Size,
		Kinds:     kinds,
		Colors:    colors,
		Rules: core.Rules{
			BaseScorePerLine: c.Scoring.BasePerLine,
			ComboMultiplier:  c.Scoring.ComboMultiplier,
			ScorePerLevel:    c.Scoring.ScorePerLevel,
		},
		Refill: core.RefillPolicy(c.Batch.Refill),
	}
	if err := opts.Validate(); err != nil {
		return core.Options{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return opts, nil
}
