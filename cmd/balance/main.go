// balance is an interactive balance scale for solving linear equations of the
// form ax + b = cx + d.
//
// Usage:
//
//	balance play              - Play in the terminal
//	balance window            - Play in a desktop window
//	balance serve             - Host terminal sessions over SSH
//	balance problem           - Print generated equations
//	balance snapshot          - Render a scene to PNG
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 60)
//	--seed <value>    - Set RNG seed for reproducible problems
//	--config <path>   - Scale configuration file (YAML or TOML)
//	--verbose, -v     - Debug logging
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/balancing-act/internal/config"
	"github.com/vovakirdan/balancing-act/internal/core"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagVerbose bool
)

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "balance",
	Short: "Balancing Act - solve equations on a balance scale",
	Long: `Balancing Act models a linear equation as a two-pan balance scale.
Drag X blocks and unit blocks onto the pans until the beam levels out,
then type the value of x and check your answer.

Available commands:
  play      - Play in the terminal
  window    - Play in a desktop window
  serve     - Start SSH server for remote play
  problem   - Print generated equations
  snapshot  - Render a scene to PNG

Examples:
  balance play
  balance window --seed 42
  balance serve --addr :2222
  balance problem --count 10 --answers
  balance snapshot --solve --out scale.png`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		level := log.InfoLevel
		if flagVerbose {
			level = log.DebugLevel
		}
		cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", core.DefaultConfig().TickRate, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to scale config (YAML or TOML)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(problemCmd)
	rootCmd.AddCommand(snapshotCmd)
}

// loadScale resolves --config and logs where the values came from.
func loadScale(logger *log.Logger) (config.ScaleConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.ScaleConfig{}, err
	}
	logger.Debug("config loaded", "path", flagConfig, "max_stack", cfg.Pan.MaxStack, "stray", cfg.Blocks.Stray)
	return cfg, nil
}

// runtimeConfig applies the global flags over core.DefaultConfig. Non-positive
// sizes keep the defaults.
func runtimeConfig(w, h int) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w > 0 && h > 0 {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	cfg.Seed = flagSeed
	return cfg
}
