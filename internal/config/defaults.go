package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the built-in Breakout configuration.
// It mirrors defaults/breakout.yaml and is the last-resort fallback.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Arena: ArenaConfig{
			Width:  800,
			Height: 600,
		},
		Paddle: PaddleConfig{
			Width:  120,
			Height: 20,
			Y:      -250,
			Speed:  500,
		},
		Ball: BallConfig{
			Size:   15,
			StartX: 0,
			StartY: -200,
			DirX:   0.3,
			DirY:   0.5,
			Speed:  300,
		},
		Bricks: BricksConfig{
			Width:        60,
			Height:       30,
			Spacing:      5,
			Rows:         2,
			Columns:      0,
			SpecialEvery: 4,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "breakout", "breakout_classic":
		return defaultBreakoutYAML
	default:
		return nil
	}
}
