package loader

import (
	"math"

	"github.com/vovakirdan/liquid-cat/internal/core"
	"github.com/vovakirdan/liquid-cat/internal/easing"
)

// State is the numeric state of the animation after a frame.
// It is a plain value: handlers return a modified copy.
type State struct {
	Width    float64 // Device-pixel surface width
	Height   float64 // Device-pixel surface height
	Diagonal float64 // Radius that covers the surface

	Phase      Phase
	PhaseFrame int // Frames handled in the current phase
	Frame      int // Frames handled in total

	// Pinwheel
	Radius             float64
	RadiusSpeed        float64 // Disc growth speed in the second phase
	RadiusAcceleration float64
	RotateValue        float64 // Accumulated rotation, never normalized
	Offset             float64

	// Loader ring
	RingTarget        float64
	LoaderRadius      float64
	IncreaseRadius    float64 // Pulse delta of the settled ring
	IncreaseSpeed     float64
	LoaderRotate      float64
	LoaderRotateSpeed float64
	WindDownFrame     int

	// Label
	TextAlpha float64
	NeedToAdd bool

	// ResumeAfterInterrupt makes the next first-phase frame apply
	// RotateValue instead of one step, after the surface was remounted.
	ResumeAfterInterrupt bool
	// AppliedRotation is the rotation the last frame applied.
	AppliedRotation float64
}

// NewState seeds the state for a surface of the given viewport.
func NewState(s *Setup, vp core.Viewport) State {
	cfg := s.Config
	st := State{
		Phase:             PhaseFirst,
		RadiusSpeed:       cfg.Growth.Speed,
		Offset:            cfg.Pinwheel.Offset,
		IncreaseSpeed:     cfg.Ring.Speed,
		LoaderRotateSpeed: cfg.Ring.RotateStep,
		TextAlpha:         cfg.Label.MinAlpha,
		NeedToAdd:         true,
	}
	st = st.WithViewport(s, vp)
	st.Radius = st.Diagonal
	return st
}

// WithViewport recomputes the dimension-derived fields for vp.
// The phase never changes; radii that already reached their targets follow
// the new targets.
func (st State) WithViewport(s *Setup, vp core.Viewport) State {
	st.Width, st.Height = vp.Scaled()
	st.Diagonal = easing.DeviceDiagonal(st.Width, st.Height, s.Config.Pinwheel.RangeDivisor)
	st.RingTarget = ringTarget(s, st.Width, st.Height)

	switch st.Phase {
	case PhaseSecond:
		st.Radius = math.Min(st.Radius, st.Diagonal)
		st.LoaderRadius = math.Min(st.LoaderRadius, st.RingTarget)
	case PhaseThird:
		st.Radius = st.Diagonal
		st.LoaderRadius = st.RingTarget
	}
	return st
}

// Empty reports whether the surface has no area to draw on.
func (st State) Empty() bool {
	return st.Width <= 0 || st.Height <= 0
}

// ringTarget caps the configured ring radius to a fraction of the surface.
func ringTarget(s *Setup, w, h float64) float64 {
	r := s.Config.Ring
	return math.Min(r.Radius, r.MaxFraction*math.Min(w, h)/2)
}
