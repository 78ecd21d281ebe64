package canvas

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Paint is a fill or stroke source: a Color or a *RadialGradient.
type Paint interface {
	paint()
}

// Color is an sRGB color with straight (non-premultiplied) alpha.
type Color struct {
	colorful.Color
	A float64
}

func (Color) paint() {}

// RGBA implements color.Color with premultiplied alpha.
func (c Color) RGBA() (r, g, b, a uint32) {
	cl := c.Clamped()
	alpha := clamp01(c.A)
	r = uint32(cl.R*alpha*65535.0 + 0.5)
	g = uint32(cl.G*alpha*65535.0 + 0.5)
	b = uint32(cl.B*alpha*65535.0 + 0.5)
	a = uint32(alpha*65535.0 + 0.5)
	return r, g, b, a
}

// Opaque wraps a colorful color with full alpha.
func Opaque(c colorful.Color) Color {
	return Color{Color: c, A: 1}
}

// Hex parses "#rrggbb" (or "#rgb") into an opaque Color.
func Hex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("canvas: bad color %q: %w", s, err)
	}
	return Opaque(c), nil
}

// MustHex is Hex for compile-time constants. It panics on malformed input.
func MustHex(s string) Color {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// WithAlpha returns c with alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = clamp01(a)
	return c
}

// Over composites c over an opaque background and returns the opaque result.
func (c Color) Over(bg Color) Color {
	return Opaque(bg.Color.BlendRgb(c.Color, clamp01(c.A)))
}

// Hex formats the color as "#rrggbb", ignoring alpha.
func (c Color) Hex() string {
	return c.Clamped().Hex()
}

// ColorStop is one stop of a gradient.
type ColorStop struct {
	Offset float64
	Color  Color
}

// RadialGradient interpolates between two circles, as createRadialGradient.
type RadialGradient struct {
	X0, Y0, R0 float64
	X1, Y1, R1 float64
	Stops      []ColorStop
}

func (*RadialGradient) paint() {}

// NewRadialGradient creates a gradient from circle (x0, y0, r0) to (x1, y1, r1).
func NewRadialGradient(x0, y0, r0, x1, y1, r1 float64) *RadialGradient {
	return &RadialGradient{X0: x0, Y0: y0, R0: r0, X1: x1, Y1: y1, R1: r1}
}

// AddColorStop appends a stop. Offsets are clamped to [0, 1].
func (g *RadialGradient) AddColorStop(offset float64, c Color) *RadialGradient {
	g.Stops = append(g.Stops, ColorStop{Offset: clamp01(offset), Color: c})
	return g
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
