package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

var (
	flagConfig string
	flagLayout string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified Breakout variant (default: breakout).

Controls:
  ←/A/H      - Move paddle left
  →/D/L      - Move paddle right
  P/Esc      - Pause
  R          - Restart (after the round ends)
  Ctrl+S     - Save a text screenshot
  Q/Ctrl+C   - Quit

Layout options:
  fitted   - As many brick columns as fit the arena (12)
  classic  - Ten fixed brick columns

Examples:
  breakout play
  breakout play breakout_classic
  breakout play --layout classic
  breakout play --config ./my-breakout.yaml --log-file breakout.log`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagLayout, "layout", "", "Brick layout: fitted, classic (default: per variant)")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "breakout"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'breakout list' to see available games.")
		os.Exit(1)
	}

	// The TUI owns the terminal, so logs only go to --log-file.
	logger, closeLog, err := newLogger("breakout", io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	if err := configureBreakout(); err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	breakout.SetLogger(logger)

	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	logger.Info("starting", "game", gameID, "size", fmt.Sprintf("%dx%d", cfg.ScreenW, cfg.ScreenH), "fps", flagFPS)
	if runErr := tui.Run(game, cfg, logger); runErr != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// configureBreakout applies --config and --layout. A bad config file is
// reported here rather than silently replaced by defaults in the game.
func configureBreakout() error {
	if flagConfig != "" {
		if _, err := config.LoadBreakout(flagConfig); err != nil {
			return err
		}
	}
	breakout.SetConfigPath(flagConfig)

	if flagLayout != "" {
		preset, err := config.ParseLayoutPreset(flagLayout)
		if err != nil {
			return err
		}
		breakout.SetLayoutPreset(preset)
	}
	return nil
}
