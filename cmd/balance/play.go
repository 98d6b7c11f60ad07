package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/balancing-act/internal/platform/snapshot"
	"github.com/vovakirdan/balancing-act/internal/platform/tui"
)

var (
	flagLogFile     string
	flagSnapshotDir string
	flagNoClipboard bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the balance scale in the terminal. The scene scales to the
terminal size; mouse support is required.

Controls:
  Click palette    - Create an X or 1 block
  Drag             - Move blocks onto a pan or into the trash
  Type digits      - Enter your guess (click the box first)
  Enter            - Check the answer
  Backspace/Delete - Erase a digit or delete the selected block
  Ctrl+N           - New problem
  Ctrl+L           - Clear the scale
  Ctrl+S           - Save a PNG snapshot
  Ctrl+Y           - Copy the equation
  Q/Ctrl+C         - Quit

Examples:
  balance play
  balance play --seed 7 --log-file balance.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: discard)")
	playCmd.Flags().StringVar(&flagSnapshotDir, "snapshot-dir", "", "Snapshot directory (default: ~/.balance/snapshots)")
	playCmd.Flags().BoolVar(&flagNoClipboard, "no-clipboard", false, "Disable copying the equation")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	stderr := loggerFromContext(cmd.Context())

	// The terminal is the canvas, so logs go to a file or nowhere.
	var out io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		out = f
	}
	logger := newLogger(out, stderr.GetLevel())

	scale, err := loadScale(logger)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	dir := flagSnapshotDir
	if dir == "" {
		if d, dirErr := snapshot.DefaultDir(); dirErr == nil {
			dir = d
		} else {
			logger.Warn("snapshots disabled", "error", dirErr)
		}
	}

	return tui.Run(tui.Options{
		Scale:       scale,
		Runtime:     runtimeConfig(width, height),
		Logger:      logger.WithPrefix("play"),
		SnapshotDir: dir,
		Clipboard:   !flagNoClipboard,
	})
}
