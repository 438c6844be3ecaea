// Package config provides YAML-based game configuration loading and
// layout presets for Breakout.
package config

import (
	"errors"
	"fmt"
)

// BreakoutConfig contains all configuration for the Breakout simulation.
type BreakoutConfig struct {
	Arena  ArenaConfig  `yaml:"arena"`
	Paddle PaddleConfig `yaml:"paddle"`
	Ball   BallConfig   `yaml:"ball"`
	Bricks BricksConfig `yaml:"bricks"`
}

// ArenaConfig defines the playfield. Coordinates are centered at the origin, y-up.
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PaddleConfig defines the player's paddle.
type PaddleConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Y      float64 `yaml:"y"`
	Speed  float64 `yaml:"speed"` // units per second
}

// BallConfig defines the ball and its launch.
type BallConfig struct {
	Size   float64 `yaml:"size"`
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
	DirX   float64 `yaml:"dir_x"`
	DirY   float64 `yaml:"dir_y"`
	Speed  float64 `yaml:"speed"` // units per second
}

// BricksConfig defines the brick grid spawned at round start.
type BricksConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Spacing      float64 `yaml:"spacing"`
	Rows         int     `yaml:"rows"`
	Columns      int     `yaml:"columns"`       // 0 = derive from arena width
	SpecialEvery int     `yaml:"special_every"` // special when (row+col) % SpecialEvery == 0
}

// ColumnCount resolves the number of brick columns for an arena width.
// A positive Columns wins; otherwise as many bricks as fit are used.
func (b BricksConfig) ColumnCount(arenaWidth float64) int {
	if b.Columns > 0 {
		return b.Columns
	}
	pitch := b.Width + b.Spacing
	if pitch <= 0 {
		return 0
	}
	return int((arenaWidth + b.Spacing) / pitch)
}

// Validate checks that the configuration describes a playable arena.
func (c BreakoutConfig) Validate() error {
	var errs []error

	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		errs = append(errs, fmt.Errorf("arena size must be positive, got %vx%v", c.Arena.Width, c.Arena.Height))
	}
	if c.Paddle.Width <= 0 || c.Paddle.Height <= 0 {
		errs = append(errs, fmt.Errorf("paddle size must be positive, got %vx%v", c.Paddle.Width, c.Paddle.Height))
	}
	if c.Paddle.Width > c.Arena.Width {
		errs = append(errs, fmt.Errorf("paddle width %v exceeds arena width %v", c.Paddle.Width, c.Arena.Width))
	}
	if c.Paddle.Speed < 0 {
		errs = append(errs, fmt.Errorf("paddle speed must not be negative, got %v", c.Paddle.Speed))
	}
	if c.Ball.Size <= 0 {
		errs = append(errs, fmt.Errorf("ball size must be positive, got %v", c.Ball.Size))
	}
	if c.Ball.Speed <= 0 {
		errs = append(errs, fmt.Errorf("ball speed must be positive, got %v", c.Ball.Speed))
	}
	if c.Ball.DirX == 0 && c.Ball.DirY == 0 {
		errs = append(errs, errors.New("ball direction must not be zero"))
	}
	if c.Bricks.Width <= 0 || c.Bricks.Height <= 0 {
		errs = append(errs, fmt.Errorf("brick size must be positive, got %vx%v", c.Bricks.Width, c.Bricks.Height))
	}
	if c.Bricks.Spacing < 0 {
		errs = append(errs, fmt.Errorf("brick spacing must not be negative, got %v", c.Bricks.Spacing))
	}
	if c.Bricks.Rows <= 0 {
		errs = append(errs, fmt.Errorf("brick rows must be positive, got %d", c.Bricks.Rows))
	}
	if c.Bricks.Columns < 0 {
		errs = append(errs, fmt.Errorf("brick columns must not be negative, got %d", c.Bricks.Columns))
	}
	if c.Bricks.SpecialEvery < 0 {
		errs = append(errs, fmt.Errorf("special_every must not be negative, got %d", c.Bricks.SpecialEvery))
	}

	if len(errs) == 0 {
		cols := c.Bricks.ColumnCount(c.Arena.Width)
		if cols <= 0 {
			errs = append(errs, errors.New("no brick column fits the arena"))
		}
		gridW := float64(cols)*(c.Bricks.Width+c.Bricks.Spacing) - c.Bricks.Spacing
		if gridW > c.Arena.Width {
			errs = append(errs, fmt.Errorf("%d brick columns need width %v, arena is %v", cols, gridW, c.Arena.Width))
		}
	}

	return errors.Join(errs...)
}

// LayoutPreset names a brick layout variant.
type LayoutPreset string

const (
	// LayoutFitted fills the arena width with as many columns as fit.
	LayoutFitted LayoutPreset = "fitted"
	// LayoutClassic uses ten fixed columns.
	LayoutClassic LayoutPreset = "classic"
)

// ClassicColumns is the column count of the classic layout.
const ClassicColumns = 10

// ParseLayoutPreset converts a CLI string to a preset. Empty means fitted.
func ParseLayoutPreset(s string) (LayoutPreset, error) {
	switch LayoutPreset(s) {
	case "", LayoutFitted:
		return LayoutFitted, nil
	case LayoutClassic:
		return LayoutClassic, nil
	default:
		return "", fmt.Errorf("config: unknown layout %q (want fitted or classic)", s)
	}
}

// ApplyLayoutPreset modifies the brick columns for a preset.
func ApplyLayoutPreset(cfg *BreakoutConfig, preset LayoutPreset) {
	switch preset {
	case LayoutClassic:
		cfg.Bricks.Columns = ClassicColumns
	case LayoutFitted:
		cfg.Bricks.Columns = 0
	}
}
