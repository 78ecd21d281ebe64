package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/liquid-cat/internal/canvas"
	"github.com/vovakirdan/liquid-cat/internal/loader"
)

var flagOnlyTransitions bool

var traceCmd = &cobra.Command{
	Use:   "trace <variant>",
	Short: "Print the per-frame state",
	Long: `Run a variant headlessly and print one table row per frame:
phase, radius, gap offset, rotation, ring radius and label alpha.

Examples:
  liquidcat trace pinwheel
  liquidcat trace liquid --frames 400 --transitions
  liquidcat trace loader --resize-at 20 --resize-to 400x300`,
	Args: cobra.ExactArgs(1),
	RunE: runTrace,
}

func init() {
	addHeadlessFlags(traceCmd)
	traceCmd.Flags().BoolVar(&flagOnlyTransitions, "transitions", false, "Only print frames that change phase")
}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func runTrace(cmd *cobra.Command, args []string) error {
	v, err := loadVariant(args[0])
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger("trace", os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	vp, resized, err := headlessViewports()
	if err != nil {
		return err
	}

	rec := canvas.NewRecorder()
	var rows [][]string
	final, err := headlessRun{
		cfg:      v.Config,
		viewport: vp,
		surface:  rec,
		frames:   flagFrames,
		resizeAt: flagResizeAt,
		resizeTo: resized,
		logger:   logger,
		onFrame: func(r loader.FrameReport) error {
			rec.Reset()
			if flagOnlyTransitions && !r.Transition.Changed() {
				return nil
			}
			rows = append(rows, traceRow(r))
			return nil
		},
	}.run()
	if err != nil {
		return err
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("frame", "phase", "radius", "offset", "rotate", "applied", "ring", "alpha", "cmds").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	fmt.Println(t)
	fmt.Printf("%s: %d frames, final phase %s, diagonal %.1f\n", v.ID, final.Frame, final.Phase, final.Diagonal)
	return nil
}

func traceRow(r loader.FrameReport) []string {
	st := r.State
	phase := st.Phase.String()
	if r.Transition.Changed() {
		phase = r.Transition.From.String() + ">" + r.Transition.To.String()
	}
	f := func(v float64) string { return strconv.FormatFloat(v, 'f', 3, 64) }
	return []string{
		strconv.Itoa(r.Frame),
		phase,
		f(st.Radius),
		f(st.Offset),
		f(st.RotateValue),
		f(r.AppliedRotation),
		f(st.LoaderRadius),
		f(st.TextAlpha),
		strconv.Itoa(len(r.Commands)),
	}
}
