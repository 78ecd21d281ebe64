package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/liquid-cat/internal/core"
	"github.com/vovakirdan/liquid-cat/internal/platform/tui"
)

var flagCellPixels int

var playCmd = &cobra.Command{
	Use:   "play <variant>",
	Short: "Play a variant in the terminal",
	Long: `Play the specified variant full screen.

Every terminal cell shows two pixels of the animation with half blocks.
Resizing the terminal is throttled and resumes the animation where it was.

Controls:
  P/Space    - Pause
  R          - Restart
  S          - Save the current frame as PNG
  Q/Ctrl+C   - Quit

Examples:
  liquidcat play liquid
  liquidcat play pinwheel --fps 30
  liquidcat play liquid --label "HELLO" --log-file liquid.log`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagCellPixels, "cell-pixels", 8, "Layout pixels per half-block pixel")
}

func runPlay(cmd *cobra.Command, args []string) error {
	v, err := loadVariant(args[0])
	if err != nil {
		return err
	}

	// The alternate screen owns the terminal; logs go to --log-file only.
	logger, closeLog, err := newLogger("liquidcat", io.Discard)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = v.Config.Timing.FPS
	cfg.CellPixels = flagCellPixels

	logger.Info("playing", "variant", v.ID, "cols", cfg.ScreenW, "rows", cfg.ScreenH)
	if err := tui.Run(v, cfg, logger); err != nil {
		return fmt.Errorf("running %s: %w", v.ID, err)
	}
	return nil
}
