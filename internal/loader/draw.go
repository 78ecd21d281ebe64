package loader

import (
	"math"

	"github.com/vovakirdan/liquid-cat/internal/canvas"
)

const fullCircle = 2 * math.Pi

// frame is what a phase handler produces besides the next state.
type frame struct {
	cmds     []canvas.Command
	advance  bool    // Local stopping condition met
	rotation float64 // Rotation applied to the surface this frame
}

// clearSurface wipes the whole surface and puts the origin back at the
// center.
func clearSurface(ctx canvas.Context, st State, s *Setup) {
	ctx.ResetTransform()
	ctx.ClearRect(0, 0, st.Width, st.Height)
	ctx.SetFillStyle(s.Background)
	ctx.FillRect(0, 0, st.Width, st.Height)
	ctx.Translate(st.Width/2, st.Height/2)
}

// arc adds a centered arc to the path. Non-positive radii are dropped.
func arc(ctx canvas.Context, radius, start, end float64) bool {
	if radius <= 0 || math.IsNaN(radius) {
		return false
	}
	ctx.Arc(0, 0, radius, start, end)
	return true
}

// floor keeps a radius at or above the configured minimum.
func floor(s *Setup, radius float64) float64 {
	return math.Max(radius, s.Config.Pinwheel.MinRadius)
}

// drawDisc fills the gradient disc at radius.
func drawDisc(ctx canvas.Context, radius float64, s *Setup) {
	radius = floor(s, radius)
	g := canvas.NewRadialGradient(0, 0, 0, 0, 0, radius).
		AddColorStop(0, s.Primary).
		AddColorStop(1, s.PrimaryLighter)

	ctx.BeginPath()
	arc(ctx, radius, 0, fullCircle)
	ctx.SetFillStyle(g)
	ctx.Fill()
}

// drawLoaderArcs strokes the two opposite loader arcs at angle theta.
func drawLoaderArcs(ctx canvas.Context, radius, theta float64, s *Setup) {
	r := s.Config.Ring
	if radius <= 0 {
		return
	}
	ctx.SetStrokeStyle(s.Loader)
	ctx.SetLineWidth(r.LineWidth)
	ctx.SetLineCap(canvas.CapRound)
	for _, start := range []float64{theta, theta + math.Pi} {
		ctx.BeginPath()
		arc(ctx, radius, start+r.Offset, start+math.Pi-r.Offset)
		ctx.Stroke()
	}
}

// drawLabel draws the label clipped to the disc.
func drawLabel(ctx canvas.Context, st State, s *Setup) {
	l := s.Config.Label
	if !l.Enabled || l.Text == "" {
		return
	}
	ctx.Save()
	ctx.BeginPath()
	arc(ctx, floor(s, st.Radius), 0, fullCircle)
	ctx.Clip()
	ctx.SetGlobalAlpha(st.TextAlpha)
	ctx.SetFillStyle(s.Loader)
	ctx.SetFont(canvas.Font{Size: l.FontSize, Bold: true})
	ctx.SetTextAlign(canvas.AlignCenter)
	ctx.SetTextBaseline(canvas.BaselineMiddle)
	ctx.FillText(l.Text, 0, 0)
	ctx.Restore()
}
