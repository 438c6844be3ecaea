package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

var (
	flagFrames    int
	flagDT        float64
	flagAutopilot bool
	flagRestarts  int
	flagSimConfig string
	flagSimLayout string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the simulation without a terminal UI",
	Long: `Steps the Breakout simulation headless and prints a summary.

Events are logged to stderr (or --log-file). With --autopilot the paddle
chases the ball; otherwise it never moves. After a round ends the
simulation restarts up to --restarts times, then stops.

Examples:
  breakout simulate --frames 600
  breakout simulate --autopilot --restarts 3 --log-level debug
  breakout simulate --layout classic --dt 0.01`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagFrames, "frames", 3600, "Number of frames to step")
	simulateCmd.Flags().Float64Var(&flagDT, "dt", 0, "Frame delta in seconds (0 = 1/fps)")
	simulateCmd.Flags().BoolVar(&flagAutopilot, "autopilot", false, "Move the paddle toward the ball")
	simulateCmd.Flags().IntVar(&flagRestarts, "restarts", 0, "Rounds to restart after the first one ends")
	simulateCmd.Flags().StringVar(&flagSimConfig, "config", "", "Path to custom game config YAML")
	simulateCmd.Flags().StringVar(&flagSimLayout, "layout", "", "Brick layout: fitted, classic (default: bricks.columns from config)")
}

// simSummary is the outcome of a headless run.
type simSummary struct {
	Frames    int
	Rounds    int
	Status    breakout.Status
	Score     int
	LastScore int
	HasLast   bool
	Bricks    int
	Hash      uint64
}

func runSimulate(cmd *cobra.Command, args []string) {
	logger, closeLog, err := newLogger("simulate", os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	cfg, err := loadSimConfig(flagSimConfig, flagSimLayout)
	if err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	dt := flagDT
	if dt == 0 {
		rc := core.DefaultConfig()
		rc.TickRate = flagFPS
		dt = rc.FrameDelta()
	}
	dt = core.SanitizeDelta(dt)

	sum := simulate(breakout.NewSimulation(cfg), flagFrames, dt, flagAutopilot, flagRestarts, logger)

	fmt.Printf("frames:     %d\n", sum.Frames)
	fmt.Printf("rounds:     %d\n", sum.Rounds)
	fmt.Printf("status:     %s\n", sum.Status)
	fmt.Printf("score:      %d\n", sum.Score)
	if sum.HasLast {
		fmt.Printf("last score: %d\n", sum.LastScore)
	}
	fmt.Printf("bricks:     %d\n", sum.Bricks)
	fmt.Printf("hash:       %016x\n", sum.Hash)
}

// loadSimConfig loads the config and applies layout on top of it.
// An empty layout keeps bricks.columns from the file.
func loadSimConfig(path, layout string) (config.BreakoutConfig, error) {
	cfg, err := config.LoadBreakout(path)
	if err != nil {
		return cfg, err
	}
	if layout == "" {
		return cfg, nil
	}
	preset, err := config.ParseLayoutPreset(layout)
	if err != nil {
		return cfg, err
	}
	config.ApplyLayoutPreset(&cfg, preset)
	return cfg, nil
}

// simulate steps sim until frames run out or a round ends with no restarts left.
func simulate(sim *breakout.Simulation, frames int, dt float64, autopilot bool, restarts int, logger *log.Logger) simSummary {
	deadZone := sim.Config().Paddle.Width / 8
	rounds := 1
	n := 0

	for ; n < frames; n++ {
		var in breakout.Input
		if autopilot {
			in = breakout.Autopilot(sim.View(), deadZone)
		}
		if sim.Status() != breakout.StatusRunning {
			if rounds > restarts {
				break
			}
			in.Restart = true
		}

		for _, e := range sim.Step(in, dt) {
			logEvent(logger, sim.Frame(), e)
			if e.Kind == breakout.EventRestarted {
				rounds++
			}
		}
	}

	last, hasLast := sim.LastScore()
	snap := sim.Snapshot()
	return simSummary{
		Frames:    n,
		Rounds:    rounds,
		Status:    sim.Status(),
		Score:     sim.Score(),
		LastScore: last,
		HasLast:   hasLast,
		Bricks:    sim.BricksRemaining(),
		Hash:      snap.Hash(),
	}
}

func logEvent(logger *log.Logger, frame uint64, e breakout.Event) {
	switch e.Kind {
	case breakout.EventBrickDamaged:
		logger.Debug(e.Kind.String(), "frame", frame, "brick", e.Brick, "health", e.Health)
	case breakout.EventBrickDestroyed:
		logger.Debug(e.Kind.String(), "frame", frame, "brick", e.Brick, "score", e.Score)
	case breakout.EventShowPanel:
		logger.Info(e.Panel.Headline, "frame", frame, "comparison", e.Panel.Comparison)
	case breakout.EventClearPanel:
		logger.Debug(e.Kind.String(), "frame", frame)
	default:
		logger.Info(e.Kind.String(), "frame", frame, "score", e.Score)
	}
}
