package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/balancing-act/internal/balance"
	"github.com/vovakirdan/balancing-act/internal/platform/gui"
)

var flagMute bool

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open the balance scale in a 1200x800 window.

Controls are the same as the terminal version, except:
  S  - Save a PNG snapshot (asks for a file name)
  C  - Copy the equation
  N  - New problem

A short chime plays when an answer is checked. Use --mute to silence it.`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable answer chimes")
}

func runWindow(cmd *cobra.Command, _ []string) error {
	logger := loggerFromContext(cmd.Context())

	scale, err := loadScale(logger)
	if err != nil {
		return err
	}

	return gui.Run(gui.Options{
		Scale:   scale,
		Runtime: runtimeConfig(balance.WorldW, balance.WorldH),
		Logger:  logger.WithPrefix("window"),
		Mute:    flagMute,
	})
}
