package config

import (
	_ "embed"
)

//go:embed defaults/hexalines.yaml
var defaultHexalinesYAML []byte

// DefaultHexalinesConfig returns the standard difficulty ramp.
func DefaultHexalinesConfig() HexalinesConfig {
	return HexalinesConfig{
		Joker: JokerConfig{
			Base:  0.03,
			Slope: 0.0015,
			Cap:   0.12,
		},
		Spawn: SpawnConfig{
			EarlyMoves: 10,
			EarlyRatio: 0.58,
			EarlyCount: 3,
			MidMoves:   25,
			MidRatio:   0.82,
			MidCount:   4,
			LateCount:  5,
		},
	}
}
