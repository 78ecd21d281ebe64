// Package easing provides the pure per-frame easing steps used by the loader
// animation. Every function is total over its numeric domain: callers decide
// what a crossed bound means for the animation.
package easing

import "math"

// DeviceDiagonal returns the viewport diagonal divided by rangeDivisor.
// The loader uses it as the radius that covers the whole surface regardless
// of aspect ratio. A non-positive divisor is treated as 1.
func DeviceDiagonal(width, height, rangeDivisor float64) float64 {
	if rangeDivisor <= 0 {
		rangeDivisor = 1
	}
	return math.Hypot(width, height) / rangeDivisor
}

// NextRadius shrinks current by speed plus the accumulated acceleration and
// returns the acceleration grown by step for the next call.
func NextRadius(current, speed, acceleration, step float64) (radius, nextAcceleration float64) {
	return current - speed - acceleration, acceleration + step
}

// NextBounded advances a triangle-wave oscillator by delta.
// While rising the value moves toward max, otherwise toward min. A step that
// would cross a bound lands exactly on it and flips the direction.
func NextBounded(current, delta, min, max float64, rising bool) (value float64, nextRising bool) {
	if rising {
		value = current + delta
		if value >= max {
			return max, false
		}
		return value, true
	}

	value = current - delta
	if value <= min {
		return min, true
	}
	return value, false
}

// DecayingSpeed subtracts decayStep from current, never going below floor.
func DecayingSpeed(current, decayStep, floor float64) float64 {
	next := current - decayStep
	if next < floor {
		return floor
	}
	return next
}

// Accelerate grows current by speed, stopping at limit, and scales speed by
// factor for the next frame.
func Accelerate(current, speed, factor, limit float64) (value, nextSpeed float64) {
	value = current + speed
	if value > limit {
		value = limit
	}
	return value, speed * factor
}

// Progress reports how much of [0, target] value covers, clamped to [0, 1].
func Progress(value, target float64) float64 {
	if target <= 0 {
		return 1
	}
	return Clamp(value/target, 0, 1)
}

// Clamp restricts v to [min, max].
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
