// Package config provides YAML-based tuning configuration and difficulty
// presets for the Hexa Lines game.
package config

import "github.com/vovakirdan/hexalines/internal/hexboard"

// HexalinesConfig contains the tunable difficulty ramp. Defaults reproduce
// the standard game; the engine constants (board size, colors, match length)
// are compile-time and not configurable.
type HexalinesConfig struct {
	Joker JokerConfig `yaml:"joker"`
	Spawn SpawnConfig `yaml:"spawn"`
}

// JokerConfig defines the wildcard probability ramp.
type JokerConfig struct {
	Base  float64 `yaml:"base"`  // starting per-token probability
	Slope float64 `yaml:"slope"` // probability gained per move
	Cap   float64 `yaml:"cap"`   // probability ceiling
}

// SpawnConfig defines the spawn batch breakpoints.
type SpawnConfig struct {
	EarlyMoves int     `yaml:"early_moves"`
	EarlyRatio float64 `yaml:"early_ratio"`
	EarlyCount int     `yaml:"early_count"`
	MidMoves   int     `yaml:"mid_moves"`
	MidRatio   float64 `yaml:"mid_ratio"`
	MidCount   int     `yaml:"mid_count"`
	LateCount  int     `yaml:"late_count"`
}

// Tuning converts the configuration into engine tuning parameters.
func (c HexalinesConfig) Tuning() hexboard.Tuning {
	return hexboard.Tuning{
		JokerBase:  c.Joker.Base,
		JokerSlope: c.Joker.Slope,
		JokerCap:   c.Joker.Cap,
		EarlyMoves: c.Spawn.EarlyMoves,
		EarlyRatio: c.Spawn.EarlyRatio,
		EarlyCount: c.Spawn.EarlyCount,
		MidMoves:   c.Spawn.MidMoves,
		MidRatio:   c.Spawn.MidRatio,
		MidCount:   c.Spawn.MidCount,
		LateCount:  c.Spawn.LateCount,
	}
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ApplyHexalinesPreset modifies the config based on a difficulty preset.
// Unknown or empty presets leave the config untouched.
func ApplyHexalinesPreset(cfg *HexalinesConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		// The ramp arrives later and jokers stay common.
		cfg.Spawn.EarlyMoves = 18
		cfg.Spawn.MidMoves = 40
		cfg.Joker.Slope *= 2
	case DifficultyHard:
		// The late batch size arrives almost immediately.
		cfg.Spawn.EarlyMoves = 4
		cfg.Spawn.MidMoves = 12
		cfg.Joker.Slope /= 2
	case DifficultyFixed:
		// No progression: early batch size forever.
		cfg.Spawn.EarlyMoves = 1 << 30
		cfg.Spawn.EarlyRatio = 1.1
		cfg.Joker.Slope = 0
	}
}
