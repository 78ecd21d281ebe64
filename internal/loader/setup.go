package loader

import (
	"fmt"

	"github.com/vovakirdan/liquid-cat/internal/canvas"
	"github.com/vovakirdan/liquid-cat/internal/config"
)

// Setup is a validated config with its derived values: parsed colors, the
// last phase to run and durations converted to frames.
type Setup struct {
	Config config.LoaderConfig

	Primary        canvas.Color
	PrimaryLighter canvas.Color
	Background     canvas.Color
	Loader         canvas.Color

	LastPhase      Phase
	WindDownFrames int
	BounceFrames   int
}

// NewSetup validates cfg and derives everything the handlers need.
func NewSetup(cfg config.LoaderConfig) (*Setup, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Setup{Config: cfg}
	var err error
	for _, c := range []struct {
		dst *canvas.Color
		hex string
	}{
		{&s.Primary, cfg.Colors.Primary},
		{&s.PrimaryLighter, cfg.Colors.PrimaryLighter},
		{&s.Background, cfg.Colors.Background},
		{&s.Loader, cfg.Colors.Loader},
	} {
		if *c.dst, err = canvas.Hex(c.hex); err != nil {
			return nil, fmt.Errorf("loader: palette: %w", err)
		}
	}

	if s.LastPhase, err = ParsePhase(cfg.Timing.StopAfter); err != nil {
		return nil, err
	}
	s.WindDownFrames = cfg.Timing.Frames(cfg.Ring.WindDown)
	s.BounceFrames = cfg.Timing.Frames(cfg.Bounce.Duration)
	return s, nil
}

// next returns the phase that follows p, honoring LastPhase.
func (s *Setup) next(p Phase) Phase {
	if p >= s.LastPhase {
		return PhaseDone
	}
	return p + 1
}
