// Package loader implements the loading animation: a per-frame state machine
// that contracts a rotating pinwheel into a gradient disc, grows a loader
// ring around it and settles into an idle pulse.
//
// Phase handlers are pure: they take a State and return the next State plus
// the draw commands for the frame. The Engine owns the state, the drawing
// surface and the scheduling.
package loader

import (
	"fmt"

	"github.com/vovakirdan/liquid-cat/internal/config"
)

// Phase is a stage of the animation.
type Phase int

const (
	PhaseFirst  Phase = iota // Contracting pinwheel
	PhaseSecond              // Growing disc, loader ring and label
	PhaseThird               // Settled ring with idle pulse
	PhaseDone                // Terminal: no more frames
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseFirst:
		return "first"
	case PhaseSecond:
		return "second"
	case PhaseThird:
		return "third"
	case PhaseDone:
		return "done"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// ParsePhase maps a timing.stop_after value to the last phase that runs.
func ParsePhase(name string) (Phase, error) {
	switch name {
	case config.StopAfterFirst:
		return PhaseFirst, nil
	case config.StopAfterSecond:
		return PhaseSecond, nil
	case config.StopAfterThird, "":
		return PhaseThird, nil
	default:
		return PhaseDone, fmt.Errorf("loader: unknown phase %q", name)
	}
}

// Transition records the phase before and after a frame.
type Transition struct {
	From Phase
	To   Phase
}

// Changed reports whether the frame moved to another phase.
func (t Transition) Changed() bool {
	return t.From != t.To
}
