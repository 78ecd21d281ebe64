package loader

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/liquid-cat/internal/canvas"
	"github.com/vovakirdan/liquid-cat/internal/config"
	"github.com/vovakirdan/liquid-cat/internal/core"
)

var vp800 = core.Viewport{Width: 800, Height: 600, PixelRatio: 1}

func mustSetup(t *testing.T, cfg config.LoaderConfig) *Setup {
	t.Helper()
	s, err := NewSetup(cfg)
	require.NoError(t, err)
	return s
}

// stepUntil runs frames until the state reaches phase, failing after limit.
func stepUntil(t *testing.T, c *Controller, st State, phase Phase, limit int) State {
	t.Helper()
	for i := 0; i < limit; i++ {
		if st.Phase == phase {
			return st
		}
		st, _, _ = c.Step(st)
	}
	require.Equal(t, phase, st.Phase, "phase not reached in %d frames", limit)
	return st
}

func TestNewSetupRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultLoaderConfig()
	cfg.Pinwheel.MinRadius = 0
	cfg.Colors.Primary = "blue"

	_, err := NewSetup(cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestNewSetupDerivesFrames(t *testing.T) {
	s := mustSetup(t, config.DefaultLoaderConfig())

	assert.Equal(t, PhaseThird, s.LastPhase)
	assert.Equal(t, 60, s.WindDownFrames)
	assert.Equal(t, 60, s.BounceFrames)
	assert.Equal(t, "#000048", s.Primary.Hex())
}

func TestParsePhase(t *testing.T) {
	tests := []struct {
		in       string
		expected Phase
		wantErr  bool
	}{
		{"first", PhaseFirst, false},
		{"second", PhaseSecond, false},
		{"third", PhaseThird, false},
		{"", PhaseThird, false},
		{"fourth", PhaseDone, true},
	}

	for _, tc := range tests {
		got, err := ParsePhase(tc.in)
		if tc.wantErr {
			assert.Error(t, err, tc.in)
			continue
		}
		assert.NoError(t, err, tc.in)
		assert.Equal(t, tc.expected, got, tc.in)
	}
	assert.Equal(t, "second", PhaseSecond.String())
}

func TestNewStateSeedsFromViewport(t *testing.T) {
	s := mustSetup(t, config.DefaultLoaderConfig())
	st := NewState(s, vp800)

	assert.Equal(t, 800.0, st.Width)
	assert.Equal(t, 600.0, st.Height)
	assert.InDelta(t, 526.3, st.Diagonal, 0.05)
	assert.Equal(t, st.Diagonal, st.Radius)
	assert.Equal(t, 180.0, st.RingTarget) // 0.6 * 300 caps the 200 radius
	assert.Equal(t, PhaseFirst, st.Phase)
	assert.Equal(t, 0.4, st.Offset)

	hidpi := NewState(s, core.Viewport{Width: 400, Height: 300, PixelRatio: 2})
	assert.Equal(t, st.Width, hidpi.Width)
	assert.Equal(t, st.Diagonal, hidpi.Diagonal)
}

func TestFirstPhaseTransitionFrame(t *testing.T) {
	s := mustSetup(t, config.DefaultLoaderConfig())
	st := NewState(s, vp800)
	c := NewController(s)

	// Count the frames until the floor is crossed, independently of the
	// handler.
	r, acc, n := st.Diagonal, 0.0, 0
	for !(r-5-acc < 1) {
		r = r - 5 - acc
		acc += 0.2
		n++
	}

	transitions := 0
	for i := 0; i <= n; i++ {
		require.Equal(t, PhaseFirst, st.Phase, "frame %d", i)
		var tr Transition
		st, _, tr = c.Step(st)
		if tr.Changed() {
			transitions++
			assert.Equal(t, n, i, "transition frame")
			assert.Equal(t, Transition{From: PhaseFirst, To: PhaseSecond}, tr)
		}
	}

	assert.Equal(t, 1, transitions)
	assert.Equal(t, PhaseSecond, st.Phase)
	assert.Equal(t, 1.0, st.Radius)
	assert.Equal(t, n+1, st.Frame)
	assert.Equal(t, 0, st.PhaseFrame)
}

func TestFirstPhaseRadiusFloor(t *testing.T) {
	s := mustSetup(t, config.DefaultLoaderConfig())
	st := NewState(s, vp800)
	st.Radius = 100
	c := NewController(s)

	for st.Phase == PhaseFirst {
		var cmds []canvas.Command
		st, cmds, _ = c.Step(st)
		for _, a := range canvas.Arcs(cmds) {
			assert.GreaterOrEqual(t, a.Radius, 1.0)
		}
		require.Less(t, st.Frame, 100)
	}
	assert.Equal(t, 1.0, st.Radius)

	// The first growing frame renders the disc at the floor.
	_, cmds, _ := c.Step(st)
	arcs := canvas.Arcs(cmds)
	require.NotEmpty(t, arcs)
	assert.Equal(t, 1.0, arcs[0].Radius)
}

func TestFirstPhaseClearsOnTransition(t *testing.T) {
	s := mustSetup(t, config.DefaultLoaderConfig())
	st := NewState(s, vp800)
	st.Radius = 4
	st.RadiusAcceleration = 3

	next, out := firstPhase(st, s)
	require.True(t, out.advance)
	assert.Equal(t, 1.0, next.Radius)

	var sawReset, sawClear bool
	for _, cmd := range out.cmds {
		switch c := cmd.(type) {
		case canvas.ResetTransform:
			sawReset = true
		case canvas.ClearRect:
			sawClear = sawReset && c.W == 800 && c.H == 600
		}
	}
	assert.True(t, sawClear, "expected a full clear after a transform reset")
}

func TestFirstPhaseOffsetDecay(t *testing.T) {
	s := mustSetup(t, config.DefaultLoaderConfig())
	st := NewState(s, vp800)
	c := NewController(s)

	for st.Phase == PhaseFirst {
		prev := st.Offset
		var cmds []canvas.Command
		st, cmds, _ = c.Step(st)
		assert.InDelta(t, prev-0.001, st.Offset, 1e-12)

		arcs := canvas.Arcs(cmds)
		require.Len(t, arcs, 4)
		for k, a := range arcs {
			base := float64(k) * math.Pi / 2
			assert.InDelta(t, base+prev, a.StartAngle, 1e-12)
			assert.InDelta(t, base+math.Pi/2-prev, a.EndAngle, 1e-12)
		}
	}
}

func TestFirstPhaseAppliesRotationStep(t *testing.T) {
	s := mustSetup(t, config.DefaultLoaderConfig())
	st := NewState(s, vp800)
	c := NewController(s)

	st, cmds, _ := c.Step(st)
	assert.Equal(t, []float64{math.Pi / 100}, canvas.Rotations(cmds))
	assert.Equal(t, math.Pi/100, st.AppliedRotation)
	assert.Equal(t, math.Pi/100, st.RotateValue)

	st.RotateValue = 1.234
	st.ResumeAfterInterrupt = true
	st, cmds, _ = c.Step(st)
	assert.Equal(t, []float64{1.234}, canvas.Rotations(cmds), "a resumed frame reapplies the whole rotation")
	assert.Equal(t, 1.234, st.AppliedRotation)
	assert.False(t, st.ResumeAfterInterrupt)
	assert.Equal(t, 1.234, st.RotateValue, "a resumed frame does not add a step")

	st, cmds, _ = c.Step(st)
	assert.Equal(t, []float64{math.Pi / 100}, canvas.Rotations(cmds))
	assert.InDelta(t, 1.234+math.Pi/100, st.RotateValue, 1e-12)
}

func TestLabelAlphaClampsAtBound(t *testing.T) {
	s := mustSetup(t, config.DefaultLoaderConfig())
	st := State{TextAlpha: 0.995, NeedToAdd: true}

	st = stepLabel(st, s)
	assert.Equal(t, 1.0, st.TextAlpha)
	assert.False(t, st.NeedToAdd)
}

func TestLabelAlphaBounded(t *testing.T) {
	cfg := config.DefaultLoaderConfig()
	cfg.Timing.SettleFrames = 400
	s := mustSetup(t, cfg)
	st := NewState(s, vp800)
	c := NewController(s)

	for i := 0; i < 2000 && st.Phase != PhaseDone; i++ {
		prev := st.NeedToAdd
		st, _, _ = c.Step(st)
		require.GreaterOrEqual(t, st.TextAlpha, 0.3)
		require.LessOrEqual(t, st.TextAlpha, 1.0)
		if st.NeedToAdd != prev {
			assert.Contains(t, []float64{0.3, 1.0}, st.TextAlpha, "flip away from a bound at frame %d", st.Frame)
		}
	}
	assert.Equal(t, PhaseDone, st.Phase)
}

func TestSecondPhaseGrowsAndWindsDown(t *testing.T) {
	s := mustSetup(t, config.DefaultLoaderConfig())
	c := NewController(s)
	st := stepUntil(t, c, NewState(s, vp800), PhaseSecond, 500)

	prevRing := st.LoaderRadius
	for st.Phase == PhaseSecond {
		var tr Transition
		st, _, tr = c.Step(st)
		assert.GreaterOrEqual(t, st.LoaderRadius, prevRing)
		assert.LessOrEqual(t, st.LoaderRadius, st.RingTarget)
		assert.LessOrEqual(t, st.Radius, st.Diagonal)
		if tr.Changed() {
			assert.Equal(t, st.RingTarget, st.LoaderRadius)
			assert.Equal(t, 0.0, st.LoaderRotateSpeed)
			assert.Equal(t, s.WindDownFrames, st.WindDownFrame)
		}
		prevRing = st.LoaderRadius
		require.Less(t, st.Frame, 1000)
	}
	assert.Equal(t, PhaseThird, st.Phase)
	assert.Equal(t, st.Diagonal, st.Radius)
}

func TestRingSpeedDecaysPastThreshold(t *testing.T) {
	s := mustSetup(t, config.DefaultLoaderConfig())
	st := State{RingTarget: 180, LoaderRadius: 120, IncreaseSpeed: 10}

	st = growRing(st, s)
	assert.Equal(t, 130.0, st.LoaderRadius)
	assert.Equal(t, 8.5, st.IncreaseSpeed)

	st = State{RingTarget: 180, LoaderRadius: 10, IncreaseSpeed: 10}
	st = growRing(st, s)
	assert.Equal(t, 20.0, st.LoaderRadius)
	assert.InDelta(t, 11.0, st.IncreaseSpeed, 1e-9)
}

func TestThirdPhasePulse(t *testing.T) {
	s := mustSetup(t, config.DefaultLoaderConfig())
	st := NewState(s, vp800)
	st.Phase = PhaseThird
	st.PhaseFrame = 12 // 20% of the one second bounce

	next, out := thirdPhase(st, s)
	assert.InDelta(t, 14.0, next.IncreaseRadius, 1e-9)
	assert.False(t, out.advance)

	var found bool
	for _, a := range canvas.Arcs(out.cmds) {
		if math.Abs(a.Radius-194) < 1e-9 {
			found = true
		}
	}
	assert.True(t, found, "expected the pulse ring at 180 + 14")
}

func TestThirdPhaseIdlesWithoutSettleFrames(t *testing.T) {
	s := mustSetup(t, config.DefaultLoaderConfig())
	c := NewController(s)
	st := stepUntil(t, c, NewState(s, vp800), PhaseThird, 1000)

	for i := 0; i < 500; i++ {
		var tr Transition
		st, _, tr = c.Step(st)
		require.False(t, tr.Changed())
	}
	assert.Equal(t, PhaseThird, st.Phase)
}

func TestLastPhaseStopsEarly(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.LoaderConfig
		expected []Phase
	}{
		{"pinwheel", config.DefaultPinwheelConfig(), []Phase{PhaseFirst, PhaseDone}},
		{"loader", config.DefaultLoaderOnlyConfig(), []Phase{PhaseFirst, PhaseSecond, PhaseDone}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := mustSetup(t, tc.cfg)
			c := NewController(s)
			st := NewState(s, vp800)
			seen := []Phase{st.Phase}

			for i := 0; i < 1000 && st.Phase != PhaseDone; i++ {
				prev := st.Phase
				st, _, _ = c.Step(st)
				require.GreaterOrEqual(t, st.Phase, prev)
				if st.Phase != prev {
					seen = append(seen, st.Phase)
				}
			}
			assert.Equal(t, tc.expected, seen)

			done, cmds, tr := c.Step(st)
			assert.Equal(t, st, done)
			assert.Empty(t, cmds)
			assert.False(t, tr.Changed())
		})
	}
}

func TestEmptySurfaceProducesEmptyFrames(t *testing.T) {
	s := mustSetup(t, config.DefaultLoaderConfig())
	st := NewState(s, core.Viewport{})
	c := NewController(s)

	for i := 0; i < 10; i++ {
		var cmds []canvas.Command
		st, cmds, _ = c.Step(st)
		assert.Empty(t, cmds)
	}
	assert.Equal(t, PhaseFirst, st.Phase)
	assert.Equal(t, 10, st.Frame)
}

func TestWithViewportKeepsPhase(t *testing.T) {
	s := mustSetup(t, config.DefaultLoaderConfig())
	c := NewController(s)
	st := stepUntil(t, c, NewState(s, vp800), PhaseThird, 1000)

	small := st.WithViewport(s, core.Viewport{Width: 200, Height: 100, PixelRatio: 1})
	assert.Equal(t, PhaseThird, small.Phase)
	assert.Equal(t, small.Diagonal, small.Radius)
	assert.Equal(t, 30.0, small.RingTarget)
	assert.Equal(t, small.RingTarget, small.LoaderRadius)
}
