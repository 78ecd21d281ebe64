package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/liquid-cat/internal/core"
	"github.com/vovakirdan/liquid-cat/internal/loader"
	"github.com/vovakirdan/liquid-cat/internal/render/raster"
)

var (
	flagFrames   int
	flagEvery    int
	flagSize     string
	flagRatio    float64
	flagScale    float64
	flagOut      string
	flagStdout   bool
	flagResizeAt int
	flagResizeTo string
)

var renderCmd = &cobra.Command{
	Use:   "render <variant>",
	Short: "Render frames to PNG files",
	Long: `Run a variant headlessly and write every Nth frame as PNG.

The last frame is always written. The run ends early when the variant
reaches its last phase.

Examples:
  liquidcat render liquid --frames 300 --every 15
  liquidcat render pinwheel --size 1280x720 --scale 0.5 --out ./out
  liquidcat render loader --resize-at 40 --resize-to 640x480
  liquidcat render liquid --frames 120 --stdout > last.png`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	addHeadlessFlags(renderCmd)
	renderCmd.Flags().IntVar(&flagEvery, "every", 10, "Write every Nth frame")
	renderCmd.Flags().Float64Var(&flagScale, "scale", 1, "Image pixels per device pixel")
	renderCmd.Flags().StringVar(&flagOut, "out", "frames", "Output directory")
	renderCmd.Flags().BoolVar(&flagStdout, "stdout", false, "Write only the last frame as PNG to stdout")
}

// addHeadlessFlags registers the flags shared by render and trace.
func addHeadlessFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&flagFrames, "frames", 240, "Maximum frames to run")
	cmd.Flags().StringVar(&flagSize, "size", "800x600", "Viewport size WxH in layout pixels")
	cmd.Flags().Float64Var(&flagRatio, "pixel-ratio", 1, "Device pixels per layout pixel")
	cmd.Flags().IntVar(&flagResizeAt, "resize-at", 0, "Frame that signals a resize (0 = never)")
	cmd.Flags().StringVar(&flagResizeTo, "resize-to", "640x480", "Viewport size of the resize")
}

// headlessViewports parses the size flags.
func headlessViewports() (start, resized core.Viewport, err error) {
	if start, err = parseSize(flagSize); err != nil {
		return start, resized, err
	}
	if resized, err = parseSize(flagResizeTo); err != nil {
		return start, resized, err
	}
	start.PixelRatio = flagRatio
	resized.PixelRatio = flagRatio
	return start, resized, nil
}

func runRender(cmd *cobra.Command, args []string) error {
	v, err := loadVariant(args[0])
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger("render", os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	vp, resized, err := headlessViewports()
	if err != nil {
		return err
	}
	w, h := vp.Scaled()
	surface := raster.New(int(w), int(h), flagScale)
	if flagStdout {
		return renderLast(surface, headlessRun{
			cfg:      v.Config,
			viewport: vp,
			surface:  surface,
			frames:   flagFrames,
			resizeAt: flagResizeAt,
			resizeTo: resized,
			logger:   logger,
		}, os.Stdout)
	}

	if err := os.MkdirAll(flagOut, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	every := max(flagEvery, 1)
	written := 0
	save := func(frame int) error {
		path := filepath.Join(flagOut, fmt.Sprintf("%s_%05d.png", v.ID, frame))
		if err := surface.SavePNG(path); err != nil {
			return err
		}
		written++
		logger.Debug("frame written", "path", path)
		return nil
	}

	lastSaved := -1
	final, err := headlessRun{
		cfg:      v.Config,
		viewport: vp,
		surface:  surface,
		frames:   flagFrames,
		resizeAt: flagResizeAt,
		resizeTo: resized,
		logger:   logger,
		onFrame: func(r loader.FrameReport) error {
			if r.Frame%every != 0 && r.Phase != loader.PhaseDone {
				return nil
			}
			lastSaved = r.Frame
			return save(r.Frame)
		},
	}.run()
	if err != nil {
		return err
	}
	if final.Frame > 0 && lastSaved != final.Frame {
		if err := save(final.Frame); err != nil {
			return err
		}
	}

	logger.Info("render finished", "variant", v.ID, "frames", final.Frame, "phase", final.Phase, "written", written, "out", flagOut)
	return nil
}

// renderLast runs h and encodes the final frame to w.
func renderLast(surface *raster.Surface, h headlessRun, w io.Writer) error {
	final, err := h.run()
	if err != nil {
		return err
	}
	if err := surface.EncodePNG(w); err != nil {
		return err
	}
	h.logger.Info("render finished", "frames", final.Frame, "phase", final.Phase)
	return nil
}
