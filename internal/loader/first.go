package loader

import (
	"math"

	"github.com/vovakirdan/liquid-cat/internal/canvas"
	"github.com/vovakirdan/liquid-cat/internal/easing"
)

// firstPhase draws the contracting pinwheel: four quadrant arcs whose gaps
// close while they rotate and shrink toward the minimum radius.
func firstPhase(st State, s *Setup) (State, frame) {
	p := s.Config.Pinwheel
	rec := canvas.NewRecorder()

	// The surface keeps its transform between frames, so one step rotates
	// the pinwheel further. After a remount the transform is fresh and the
	// whole accumulated angle has to be applied at once.
	rotation := p.RotateStep
	if st.ResumeAfterInterrupt {
		rotation = st.RotateValue
		st.ResumeAfterInterrupt = false
	} else {
		st.RotateValue += p.RotateStep
	}
	rec.Rotate(rotation)

	// Re-mask the previous rotated frame.
	rec.SetFillStyle(s.Background)
	rec.FillRect(-st.Diagonal, -st.Diagonal, 2*st.Diagonal, 2*st.Diagonal)

	rec.SetStrokeStyle(s.Primary)
	rec.SetLineWidth(p.LineWidth)
	rec.SetLineCap(canvas.CapRound)
	radius := floor(s, st.Radius)
	for k := 0; k < 4; k++ {
		start := float64(k) * math.Pi / 2
		rec.BeginPath()
		arc(rec, radius, start+st.Offset, start+math.Pi/2-st.Offset)
		rec.Stroke()
	}

	st.Offset -= p.OffsetSpeed

	out := frame{rotation: rotation}
	if st.Radius-p.Speed-st.RadiusAcceleration < p.MinRadius {
		st.Radius = p.MinRadius
		clearSurface(rec, st, s)
		out.advance = true
	} else {
		st.Radius, st.RadiusAcceleration = easing.NextRadius(st.Radius, p.Speed, st.RadiusAcceleration, p.AccelerationStep)
	}

	out.cmds = rec.Commands()
	return st, out
}
