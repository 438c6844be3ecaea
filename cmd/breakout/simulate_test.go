package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

func TestSimulateDeterministic(t *testing.T) {
	logger := log.New(io.Discard)
	run := func() simSummary {
		sim := breakout.NewSimulation(config.DefaultBreakoutConfig())
		return simulate(sim, 5000, 1.0/60.0, true, 2, logger)
	}

	a, b := run(), run()
	if a != b {
		t.Errorf("runs differ:\n%+v\n%+v", a, b)
	}
	if a.Rounds < 1 || a.Rounds > 3 {
		t.Errorf("rounds = %d, want 1..3", a.Rounds)
	}
}

func TestSimulateStopsAfterLastRound(t *testing.T) {
	sim := breakout.NewSimulation(config.DefaultBreakoutConfig())
	sum := simulate(sim, 20000, 1.0/60.0, false, 0, log.New(io.Discard))

	if sum.Frames > 20000 {
		t.Errorf("ran %d frames, limit was 20000", sum.Frames)
	}
	if sum.Rounds != 1 {
		t.Errorf("rounds = %d, want 1 with no restarts", sum.Rounds)
	}
	if sum.Status != breakout.StatusRunning && sum.HasLast {
		t.Error("no restart happened, LastScore should be absent")
	}
}

func TestSimulateZeroFrames(t *testing.T) {
	sim := breakout.NewSimulation(config.DefaultBreakoutConfig())
	sum := simulate(sim, 0, 1.0/60.0, true, 0, log.New(io.Discard))

	if sum.Frames != 0 || sum.Score != 0 || sum.Bricks != 24 {
		t.Errorf("unexpected summary %+v", sum)
	}
	if sum.Status != breakout.StatusRunning {
		t.Errorf("status = %v, want running", sum.Status)
	}
}

func TestLoadSimConfigLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "breakout.yaml")
	if err := os.WriteFile(path, []byte("bricks:\n  columns: 7\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		layout  string
		columns int
	}{
		{"no layout keeps file", "", 7},
		{"classic", "classic", config.ClassicColumns},
		{"fitted", "fitted", 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := loadSimConfig(path, tt.layout)
			if err != nil {
				t.Fatalf("loadSimConfig: %v", err)
			}
			if got := cfg.Bricks.ColumnCount(cfg.Arena.Width); got != tt.columns {
				t.Errorf("columns = %d, want %d", got, tt.columns)
			}
		})
	}

	if _, err := loadSimConfig(path, "diagonal"); err == nil {
		t.Error("unknown layout should fail")
	}
}
