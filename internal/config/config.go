// Package config provides YAML-based loader configuration: every tunable of
// the animation (colors, radii, speeds, easing tables, timing) lives here
// instead of being scattered through the phase code.
package config

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/liquid-cat/internal/easing"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid loader config")

// Phase names accepted by TimingConfig.StopAfter.
const (
	StopAfterFirst  = "first"
	StopAfterSecond = "second"
	StopAfterThird  = "third"
)

// LoaderConfig contains all configuration for one loader variant.
type LoaderConfig struct {
	Colors   ColorsConfig   `yaml:"colors"`
	Pinwheel PinwheelConfig `yaml:"pinwheel"`
	Growth   GrowthConfig   `yaml:"growth"`
	Ring     RingConfig     `yaml:"ring"`
	Bounce   BounceConfig   `yaml:"bounce"`
	Label    LabelConfig    `yaml:"label"`
	Timing   TimingConfig   `yaml:"timing"`
}

// ColorsConfig holds the palette as hex strings.
type ColorsConfig struct {
	Primary        string `yaml:"primary"`
	PrimaryLighter string `yaml:"primary_lighter"`
	Background     string `yaml:"background"`
	Loader         string `yaml:"loader"`
}

// PinwheelConfig drives the contracting first phase.
type PinwheelConfig struct {
	LineWidth        float64 `yaml:"line_width"`
	MinRadius        float64 `yaml:"min_radius"`
	RangeDivisor     float64 `yaml:"range_divisor"` // Diagonal / divisor = start radius
	Speed            float64 `yaml:"speed"`
	AccelerationStep float64 `yaml:"acceleration_step"`
	RotateStep       float64 `yaml:"rotate_step"` // Radians per frame
	Offset           float64 `yaml:"offset"`      // Initial gap between quadrant arcs
	OffsetSpeed      float64 `yaml:"offset_speed"`
}

// GrowthConfig drives the gradient disc growing back to the diagonal.
type GrowthConfig struct {
	Speed        float64 `yaml:"speed"`
	Acceleration float64 `yaml:"acceleration"` // Speed multiplier per frame
}

// RingConfig drives the loader ring and its rotating arcs.
type RingConfig struct {
	Radius         float64       `yaml:"radius"`
	MaxFraction    float64       `yaml:"max_fraction"` // Cap relative to min(W, H)/2
	LineWidth      float64       `yaml:"line_width"`
	Speed          float64       `yaml:"speed"`
	Acceleration   float64       `yaml:"acceleration"`    // Speed multiplier before the threshold
	DecayThreshold float64       `yaml:"decay_threshold"` // Fraction of the radius where decay starts
	DecayStep      float64       `yaml:"decay_step"`
	MinSpeed       float64       `yaml:"min_speed"`
	Offset         float64       `yaml:"offset"`
	RotateStep     float64       `yaml:"rotate_step"`
	WindDown       time.Duration `yaml:"wind_down"`
}

// BounceConfig drives the idle pulse of the settled ring.
type BounceConfig struct {
	Duration  time.Duration    `yaml:"duration"`
	LineWidth float64          `yaml:"line_width"`
	Keyframes easing.Keyframes `yaml:"keyframes"`
}

// LabelConfig describes the fading text drawn inside the disc.
type LabelConfig struct {
	Enabled   bool    `yaml:"enabled"`
	Text      string  `yaml:"text"`
	FontSize  float64 `yaml:"font_size"`
	MinAlpha  float64 `yaml:"min_alpha"`
	MaxAlpha  float64 `yaml:"max_alpha"`
	AlphaStep float64 `yaml:"alpha_step"`
}

// TimingConfig holds frame rate and lifecycle settings.
type TimingConfig struct {
	FPS            int           `yaml:"fps"`
	RedrawThrottle time.Duration `yaml:"redraw_throttle"`
	StopAfter      string        `yaml:"stop_after"`    // "first", "second" or "third"
	SettleFrames   int           `yaml:"settle_frames"` // 0 = idle forever
}

// FrameInterval returns the time between frames.
func (t TimingConfig) FrameInterval() time.Duration {
	if t.FPS <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(t.FPS)
}

// Frames converts a duration to a whole number of frames (at least 1).
func (t TimingConfig) Frames(d time.Duration) int {
	fps := t.FPS
	if fps <= 0 {
		fps = 60
	}
	n := int(math.Round(d.Seconds() * float64(fps)))
	if n < 1 {
		return 1
	}
	return n
}

// Validate reports every problem in the config at once.
func (c LoaderConfig) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	for name, hex := range map[string]string{
		"colors.primary":         c.Colors.Primary,
		"colors.primary_lighter": c.Colors.PrimaryLighter,
		"colors.background":      c.Colors.Background,
		"colors.loader":          c.Colors.Loader,
	} {
		if _, err := colorful.Hex(hex); err != nil {
			bad("%s %q is not a hex color", name, hex)
		}
	}

	p := c.Pinwheel
	if p.MinRadius <= 0 {
		bad("pinwheel.min_radius must be > 0, got %v", p.MinRadius)
	}
	if p.RangeDivisor <= 0 {
		bad("pinwheel.range_divisor must be > 0, got %v", p.RangeDivisor)
	}
	if p.Speed <= 0 && p.AccelerationStep <= 0 {
		bad("pinwheel needs a positive speed or acceleration_step")
	}
	if p.LineWidth <= 0 {
		bad("pinwheel.line_width must be > 0, got %v", p.LineWidth)
	}
	if p.Offset < 0 || p.Offset >= math.Pi/4 {
		bad("pinwheel.offset must be in [0, pi/4), got %v", p.Offset)
	}

	if c.Growth.Speed <= 0 {
		bad("growth.speed must be > 0, got %v", c.Growth.Speed)
	}
	if c.Growth.Acceleration < 1 {
		bad("growth.acceleration must be >= 1, got %v", c.Growth.Acceleration)
	}

	r := c.Ring
	if r.Radius <= 0 {
		bad("ring.radius must be > 0, got %v", r.Radius)
	}
	if r.MaxFraction <= 0 || r.MaxFraction > 1 {
		bad("ring.max_fraction must be in (0, 1], got %v", r.MaxFraction)
	}
	if r.Speed <= 0 || r.MinSpeed <= 0 {
		bad("ring.speed and ring.min_speed must be > 0")
	}
	if r.DecayThreshold < 0 || r.DecayThreshold > 1 {
		bad("ring.decay_threshold must be in [0, 1], got %v", r.DecayThreshold)
	}
	if r.Offset < 0 || r.Offset >= math.Pi/2 {
		bad("ring.offset must be in [0, pi/2), got %v", r.Offset)
	}
	if r.WindDown < 0 {
		bad("ring.wind_down must not be negative")
	}

	if c.Bounce.Duration <= 0 {
		bad("bounce.duration must be > 0")
	}
	if err := c.Bounce.Keyframes.Validate(); err != nil {
		bad("bounce.keyframes: %v", err)
	}

	l := c.Label
	if l.MinAlpha < 0 || l.MaxAlpha > 1 || l.MinAlpha > l.MaxAlpha {
		bad("label alpha bounds [%v, %v] must satisfy 0 <= min <= max <= 1", l.MinAlpha, l.MaxAlpha)
	}
	if l.Enabled && l.FontSize <= 0 {
		bad("label.font_size must be > 0 when the label is enabled")
	}

	if c.Timing.FPS <= 0 {
		bad("timing.fps must be > 0, got %d", c.Timing.FPS)
	}
	if c.Timing.RedrawThrottle < 0 {
		bad("timing.redraw_throttle must not be negative")
	}
	switch c.Timing.StopAfter {
	case StopAfterFirst, StopAfterSecond, StopAfterThird:
	default:
		bad("timing.stop_after %q must be first, second or third", c.Timing.StopAfter)
	}
	if c.Timing.SettleFrames < 0 {
		bad("timing.settle_frames must not be negative")
	}

	return errors.Join(errs...)
}
