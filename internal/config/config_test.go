package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var fromYAML BreakoutConfig
	if err := yaml.Unmarshal(GetDefaultYAML("breakout"), &fromYAML); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}

	if fromYAML != DefaultBreakoutConfig() {
		t.Errorf("embedded defaults differ from DefaultBreakoutConfig():\n yaml=%+v\n code=%+v", fromYAML, DefaultBreakoutConfig())
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultBreakoutConfig().Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
}

func TestColumnCount(t *testing.T) {
	tests := []struct {
		name     string
		bricks   BricksConfig
		width    float64
		expected int
	}{
		{"fitted 800 arena", BricksConfig{Width: 60, Spacing: 5}, 800, 12},
		{"explicit columns win", BricksConfig{Width: 60, Spacing: 5, Columns: 10}, 800, 10},
		{"narrow arena", BricksConfig{Width: 60, Spacing: 5}, 100, 1},
		{"zero pitch", BricksConfig{}, 800, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.bricks.ColumnCount(tc.width); got != tc.expected {
				t.Errorf("ColumnCount(%v) = %d, expected %d", tc.width, got, tc.expected)
			}
		})
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BreakoutConfig)
		substr string
	}{
		{"zero arena", func(c *BreakoutConfig) { c.Arena.Width = 0 }, "arena size"},
		{"paddle wider than arena", func(c *BreakoutConfig) { c.Paddle.Width = 900 }, "exceeds arena"},
		{"zero ball speed", func(c *BreakoutConfig) { c.Ball.Speed = 0 }, "ball speed"},
		{"zero direction", func(c *BreakoutConfig) { c.Ball.DirX, c.Ball.DirY = 0, 0 }, "direction"},
		{"no rows", func(c *BreakoutConfig) { c.Bricks.Rows = 0 }, "rows"},
		{"too many columns", func(c *BreakoutConfig) { c.Bricks.Columns = 20 }, "brick columns need"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultBreakoutConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.substr) {
				t.Errorf("error %q should mention %q", err, tc.substr)
			}
		})
	}
}

func TestLayoutPresets(t *testing.T) {
	preset, err := ParseLayoutPreset("classic")
	if err != nil {
		t.Fatalf("ParseLayoutPreset(classic) failed: %v", err)
	}

	cfg := DefaultBreakoutConfig()
	ApplyLayoutPreset(&cfg, preset)
	if got := cfg.Bricks.ColumnCount(cfg.Arena.Width); got != ClassicColumns {
		t.Errorf("classic layout should have %d columns, got %d", ClassicColumns, got)
	}

	ApplyLayoutPreset(&cfg, LayoutFitted)
	if got := cfg.Bricks.ColumnCount(cfg.Arena.Width); got != 12 {
		t.Errorf("fitted layout should have 12 columns, got %d", got)
	}

	if p, err := ParseLayoutPreset(""); err != nil || p != LayoutFitted {
		t.Errorf("empty preset should default to fitted, got %q, %v", p, err)
	}
	if _, err := ParseLayoutPreset("wide"); err == nil {
		t.Error("unknown preset should be rejected")
	}
}

func TestParseBreakoutPartial(t *testing.T) {
	cfg, err := ParseBreakout([]byte("bricks:\n  rows: 3\n  columns: 8\n"))
	if err != nil {
		t.Fatalf("ParseBreakout failed: %v", err)
	}
	if cfg.Bricks.Rows != 3 || cfg.Bricks.Columns != 8 {
		t.Errorf("overrides not applied: %+v", cfg.Bricks)
	}
	if cfg.Paddle.Speed != 500 {
		t.Errorf("unset keys should keep defaults, paddle speed = %v", cfg.Paddle.Speed)
	}

	if _, err := ParseBreakout([]byte("arena: [")); err == nil {
		t.Error("malformed YAML should fail")
	}
}

func TestLoadBreakoutCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "breakout.yaml")
	if err := os.WriteFile(path, []byte("paddle:\n  speed: 650\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBreakout(path)
	if err != nil {
		t.Fatalf("LoadBreakout failed: %v", err)
	}
	if cfg.Paddle.Speed != 650 {
		t.Errorf("paddle speed = %v, expected 650", cfg.Paddle.Speed)
	}

	if _, err := LoadBreakout(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should return an error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("ball:\n  speed: -1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadBreakout(bad); err == nil {
		t.Error("invalid custom config should return an error")
	}
}
