package loader

import (
	"github.com/vovakirdan/liquid-cat/internal/canvas"
	"github.com/vovakirdan/liquid-cat/internal/easing"
)

// thirdPhase draws the settled loader with the ring pulsing along the bounce
// keyframes. It only ends when SettleFrames is set.
func thirdPhase(st State, s *Setup) (State, frame) {
	cfg := s.Config
	rec := canvas.NewRecorder()

	st.Radius = st.Diagonal
	st.LoaderRadius = st.RingTarget
	st.IncreaseRadius = cfg.Bounce.Keyframes.Value(easing.Cycle(st.PhaseFrame, s.BounceFrames))

	clearSurface(rec, st, s)
	drawDisc(rec, st.Radius, s)
	drawLoaderArcs(rec, st.LoaderRadius, st.LoaderRotate, s)

	rec.SetStrokeStyle(s.Loader)
	rec.SetLineWidth(cfg.Bounce.LineWidth)
	rec.BeginPath()
	arc(rec, floor(s, st.LoaderRadius+st.IncreaseRadius), 0, fullCircle)
	rec.Stroke()

	drawLabel(rec, st, s)
	st = stepLabel(st, s)

	settle := cfg.Timing.SettleFrames
	return st, frame{
		cmds:    rec.Commands(),
		advance: settle > 0 && st.PhaseFrame+1 >= settle,
	}
}
