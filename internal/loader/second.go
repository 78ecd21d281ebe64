package loader

import (
	"math"

	"github.com/vovakirdan/liquid-cat/internal/canvas"
	"github.com/vovakirdan/liquid-cat/internal/easing"
)

// secondPhase grows the gradient disc back to the diagonal, grows the loader
// ring to its target and winds the loader rotation down once it is there.
func secondPhase(st State, s *Setup) (State, frame) {
	cfg := s.Config
	rec := canvas.NewRecorder()

	clearSurface(rec, st, s)
	drawDisc(rec, st.Radius, s)
	drawLoaderArcs(rec, st.LoaderRadius, st.LoaderRotate, s)
	drawLabel(rec, st, s)

	st.Radius, st.RadiusSpeed = easing.Accelerate(st.Radius, st.RadiusSpeed, cfg.Growth.Acceleration, st.Diagonal)
	st = growRing(st, s)

	st.LoaderRotate += st.LoaderRotateSpeed
	if st.LoaderRadius >= st.RingTarget {
		st.WindDownFrame++
		left := 1 - float64(st.WindDownFrame)/float64(s.WindDownFrames)
		st.LoaderRotateSpeed = math.Max(0, cfg.Ring.RotateStep*left)
	}

	st = stepLabel(st, s)

	return st, frame{
		cmds:    rec.Commands(),
		advance: st.LoaderRadius >= st.RingTarget && st.LoaderRotateSpeed == 0,
	}
}

// growRing moves the loader ring toward its target. The speed accelerates
// until DecayThreshold of the target is covered, then decays to MinSpeed.
func growRing(st State, s *Setup) State {
	r := s.Config.Ring
	if st.LoaderRadius >= st.RingTarget {
		st.LoaderRadius = st.RingTarget
		return st
	}

	if easing.Progress(st.LoaderRadius, st.RingTarget) < r.DecayThreshold {
		st.LoaderRadius, st.IncreaseSpeed = easing.Accelerate(st.LoaderRadius, st.IncreaseSpeed, r.Acceleration, st.RingTarget)
		return st
	}
	st.LoaderRadius, _ = easing.Accelerate(st.LoaderRadius, st.IncreaseSpeed, 1, st.RingTarget)
	st.IncreaseSpeed = easing.DecayingSpeed(st.IncreaseSpeed, r.DecayStep, r.MinSpeed)
	return st
}

// stepLabel advances the label opacity one triangle-wave step.
func stepLabel(st State, s *Setup) State {
	l := s.Config.Label
	if !l.Enabled {
		return st
	}
	st.TextAlpha, st.NeedToAdd = easing.NextBounded(st.TextAlpha, l.AlphaStep, l.MinAlpha, l.MaxAlpha, st.NeedToAdd)
	return st
}
