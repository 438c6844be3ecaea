package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

var (
	flagCfgPath     string
	flagCfgLayout   string
	flagCfgResolved bool
)

var configCmd = &cobra.Command{
	Use:   "config [game]",
	Short: "Print the game configuration as YAML",
	Long: `Prints the built-in configuration of a variant (default: breakout).
Save the output to ~/.breakout/configs/breakout.yaml and edit it to
change the arena, paddle, ball or brick grid.

With --resolved the config is loaded the way simulate loads it
(--config, then the usual search paths) and --layout is applied.

Examples:
  breakout config > ~/.breakout/configs/breakout.yaml
  breakout config --resolved --config ./my-breakout.yaml --layout classic`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagCfgPath, "config", "", "Path to custom game config YAML (with --resolved)")
	configCmd.Flags().StringVar(&flagCfgLayout, "layout", "", "Brick layout: fitted, classic (with --resolved)")
	configCmd.Flags().BoolVar(&flagCfgResolved, "resolved", false, "Print the loaded config instead of the built-in one")
}

func runConfig(cmd *cobra.Command, args []string) error {
	gameID := "breakout"
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q", gameID)
	}

	if !flagCfgResolved {
		return writeDefaultConfig(cmd.OutOrStdout(), gameID)
	}

	cfg, err := loadSimConfig(flagCfgPath, flagCfgLayout)
	if err != nil {
		return err
	}
	return writeConfig(cmd.OutOrStdout(), cfg)
}

func writeDefaultConfig(w io.Writer, gameID string) error {
	data := config.GetDefaultYAML(gameID)
	if data == nil {
		return fmt.Errorf("no built-in config for %q", gameID)
	}
	_, err := w.Write(data)
	return err
}

func writeConfig(w io.Writer, cfg config.BreakoutConfig) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return enc.Close()
}
