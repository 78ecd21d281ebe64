package easing

import (
	"errors"
	"fmt"
)

// ErrKeyframes is returned by Keyframes.Validate.
var ErrKeyframes = errors.New("easing: invalid keyframes")

// Keyframe maps a fraction of an animation's duration to a value delta.
type Keyframe struct {
	At    float64 `yaml:"at"`    // 0.0 = start, 1.0 = end
	Delta float64 `yaml:"delta"` // Value offset at this point
}

// Keyframes is a table of stops ordered by At.
type Keyframes []Keyframe

// Validate checks that stops are inside [0, 1] and strictly increasing.
func (k Keyframes) Validate() error {
	for i, kf := range k {
		if kf.At < 0 || kf.At > 1 {
			return fmt.Errorf("%w: stop %d at %.3f outside [0, 1]", ErrKeyframes, i, kf.At)
		}
		if i > 0 && kf.At <= k[i-1].At {
			return fmt.Errorf("%w: stop %d at %.3f not after %.3f", ErrKeyframes, i, kf.At, k[i-1].At)
		}
	}
	return nil
}

// Value interpolates the delta at fraction t.
// Before the first stop the first delta holds, after the last the last one.
func (k Keyframes) Value(t float64) float64 {
	if len(k) == 0 {
		return 0
	}
	if t <= k[0].At {
		return k[0].Delta
	}
	for i := 1; i < len(k); i++ {
		if t <= k[i].At {
			prev := k[i-1]
			span := k[i].At - prev.At
			return prev.Delta + (k[i].Delta-prev.Delta)*(t-prev.At)/span
		}
	}
	return k[len(k)-1].Delta
}

// Cycle returns the fraction of a repeating cycle of length frames reached
// at frame. A non-positive length yields 0.
func Cycle(frame, length int) float64 {
	if length <= 0 {
		return 0
	}
	return float64(frame%length) / float64(length)
}
