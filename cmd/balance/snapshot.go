package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/balancing-act/internal/balance"
	"github.com/vovakirdan/balancing-act/internal/config"
	"github.com/vovakirdan/balancing-act/internal/core"
	"github.com/vovakirdan/balancing-act/internal/platform/snapshot"
)

// settleTicks is long enough for the beam to reach its target from rest.
const settleTicks = 240

var (
	flagOut   string
	flagSolve bool
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Render a scene to PNG",
	Long: `Render a freshly generated problem to a 1200x800 PNG.

With --solve both pans are loaded with the blocks of the equation and the
beam is allowed to settle, which shows the scale in balance.

Examples:
  balance snapshot --seed 7
  balance snapshot --solve --out solved.png`,
	Args: cobra.NoArgs,
	RunE: runSnapshot,
}

func init() {
	snapshotCmd.Flags().StringVarP(&flagOut, "out", "o", "", "Output file (default: timestamped name in the current directory)")
	snapshotCmd.Flags().BoolVar(&flagSolve, "solve", false, "Load the equation's blocks onto the pans")
}

func runSnapshot(cmd *cobra.Command, _ []string) error {
	logger := loggerFromContext(cmd.Context())

	scale, err := loadScale(logger)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	frame, err := sceneFrame(scale, seed, flagSolve)
	if err != nil {
		return err
	}

	r, err := snapshot.New()
	if err != nil {
		return err
	}
	out := flagOut
	if out == "" {
		out = snapshot.FileName(time.Now())
	}
	if err := r.Save(out, frame); err != nil {
		return err
	}
	logger.Info("snapshot saved", "path", out, "equation", frame.Equation(), "balanced", frame.Balanced)
	return nil
}

// sceneFrame builds the frame to render, optionally with the equation loaded
// and the beam settled.
func sceneFrame(scale config.ScaleConfig, seed int64, solve bool) (balance.Frame, error) {
	sim := balance.New(scale, seed)
	ticks := 1
	if solve {
		if err := sim.LoadEquation(); err != nil {
			return balance.Frame{}, fmt.Errorf("load equation %s: %w", sim.Equation(), err)
		}
		ticks = settleTicks
	}

	in := core.NewInputFrame()
	var f balance.Frame
	for range ticks {
		f = sim.Step(in)
	}
	return f, nil
}
