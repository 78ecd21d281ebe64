package loader

import "github.com/vovakirdan/liquid-cat/internal/canvas"

// handler computes one frame of a phase.
type handler func(State, *Setup) (State, frame)

// Controller dispatches frames to the handler of the current phase and
// applies phase transitions.
type Controller struct {
	setup    *Setup
	handlers map[Phase]handler
}

// NewController creates a controller for s.
func NewController(s *Setup) *Controller {
	return &Controller{
		setup: s,
		handlers: map[Phase]handler{
			PhaseFirst:  firstPhase,
			PhaseSecond: secondPhase,
			PhaseThird:  thirdPhase,
		},
	}
}

// Step runs one frame. A done state is returned unchanged; an empty surface
// produces an empty frame that leaves the phase alone.
func (c *Controller) Step(st State) (State, []canvas.Command, Transition) {
	from := st.Phase
	h, ok := c.handlers[from]
	if !ok {
		return st, nil, Transition{From: from, To: from}
	}

	if st.Empty() {
		st.Frame++
		st.PhaseFrame++
		st.AppliedRotation = 0
		return st, nil, Transition{From: from, To: from}
	}

	st, out := h(st, c.setup)
	st.ResumeAfterInterrupt = false
	st.AppliedRotation = out.rotation
	st.Frame++

	to := from
	if out.advance {
		to = c.setup.next(from)
	}
	if to != from {
		st.Phase = to
		st.PhaseFrame = 0
	} else {
		st.PhaseFrame++
	}
	return st, out.cmds, Transition{From: from, To: to}
}
