// Package raster implements canvas.Context on top of an in-memory RGBA image
// rendered by fogleman/gg. Hosts read the pixels back to show them in a
// terminal or write them out as PNG.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/vovakirdan/liquid-cat/internal/canvas"
)

// drawState is the part of the context state gg does not track itself.
type drawState struct {
	fill      canvas.Paint
	stroke    canvas.Paint
	alpha     float64
	lineWidth float64
	clip      *image.Alpha // nil when unclipped
	font      canvas.Font
	align     canvas.TextAlign
	baseline  canvas.TextBaseline
}

func defaultState() drawState {
	black := canvas.MustHex("#000000")
	return drawState{
		fill:      black,
		stroke:    black,
		alpha:     1,
		lineWidth: 1,
		font:      canvas.Font{Size: 10},
	}
}

// Surface is a canvas.Context backed by a gg context.
//
// Drawing coordinates are device pixels; scale maps them to image pixels, so
// a 640x384 surface with scale 1/8 renders into an 80x48 image.
type Surface struct {
	dc    *gg.Context
	scale float64
	state drawState
	stack []drawState
	fonts *fontCache
}

// New creates a surface of width x height device pixels.
// A non-positive scale is treated as 1.
func New(width, height int, scale float64) *Surface {
	if scale <= 0 {
		scale = 1
	}
	s := &Surface{scale: scale, fonts: newFontCache()}
	s.Resize(width, height)
	return s
}

// Resize replaces the image with a blank one for the new size. Transform and
// styles are reset.
func (s *Surface) Resize(width, height int) {
	w := int(math.Round(float64(max(width, 0)) * s.scale))
	h := int(math.Round(float64(max(height, 0)) * s.scale))
	s.dc = gg.NewContext(max(w, 1), max(h, 1))
	s.state = defaultState()
	s.stack = nil
	s.ResetTransform()
}

// Scale returns the device-to-image pixel scale.
func (s *Surface) Scale() float64 {
	return s.scale
}

// Image returns the rendered image. It is reused by later frames.
func (s *Surface) Image() image.Image {
	return s.dc.Image()
}

// EncodePNG writes the current image as PNG.
func (s *Surface) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, s.dc.Image()); err != nil {
		return fmt.Errorf("raster: encode png: %w", err)
	}
	return nil
}

// SavePNG writes the current image to path.
func (s *Surface) SavePNG(path string) error {
	if err := s.dc.SavePNG(path); err != nil {
		return fmt.Errorf("raster: save %s: %w", path, err)
	}
	return nil
}

func (s *Surface) Save() {
	s.dc.Push()
	s.stack = append(s.stack, s.state)
}

func (s *Surface) Restore() {
	if len(s.stack) == 0 {
		return
	}
	s.dc.Pop()
	s.state = s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	s.applyClip()
}

func (s *Surface) ResetTransform() {
	s.dc.Identity()
	s.dc.Scale(s.scale, s.scale)
}

func (s *Surface) Translate(x, y float64) { s.dc.Translate(x, y) }
func (s *Surface) Rotate(angle float64)   { s.dc.Rotate(angle) }
func (s *Surface) BeginPath()             { s.dc.ClearPath() }

func (s *Surface) Arc(x, y, radius, startAngle, endAngle float64) {
	if radius <= 0 {
		return
	}
	s.dc.NewSubPath()
	s.dc.DrawArc(x, y, radius, startAngle, endAngle)
}

// Stroke strokes the path. gg strokes in image pixels, so the width is
// scaled by the current transform.
func (s *Surface) Stroke() {
	s.dc.SetStrokeStyle(s.pattern(s.state.stroke))
	s.dc.SetLineWidth(s.state.lineWidth * s.userScale())
	s.dc.StrokePreserve()
}

func (s *Surface) Fill() {
	s.dc.SetFillStyle(s.pattern(s.state.fill))
	s.dc.FillPreserve()
}

// Clip intersects the clip region with the current path. The mask is kept
// in the saved state so Restore can bring back the previous one.
func (s *Surface) Clip() {
	mask := s.dc.AsMask()
	if s.state.clip != nil {
		intersect(mask, s.state.clip)
	}
	s.state.clip = mask
	s.applyClip()
}

func (s *Surface) applyClip() {
	if s.state.clip == nil {
		s.dc.ResetClip()
		return
	}
	// Both masks are sized from the same image, so SetMask cannot fail.
	_ = s.dc.SetMask(s.state.clip)
}

// intersect keeps in dst only what both masks cover.
func intersect(dst, src *image.Alpha) {
	for i := range dst.Pix {
		if i < len(src.Pix) {
			dst.Pix[i] = uint8(uint16(dst.Pix[i]) * uint16(src.Pix[i]) / 255)
		}
	}
}

// ClearRect makes the transformed rectangle transparent. Only its bounding
// box is cleared, which is exact for unrotated transforms.
func (s *Surface) ClearRect(x, y, w, h float64) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range [][2]float64{{x, y}, {x + w, y}, {x, y + h}, {x + w, y + h}} {
		px, py := s.dc.TransformPoint(p[0], p[1])
		minX, maxX = math.Min(minX, px), math.Max(maxX, px)
		minY, maxY = math.Min(minY, py), math.Max(maxY, py)
	}
	r := image.Rect(int(math.Floor(minX)), int(math.Floor(minY)), int(math.Ceil(maxX)), int(math.Ceil(maxY)))
	if dst, ok := s.dc.Image().(draw.Image); ok {
		draw.Draw(dst, r.Intersect(dst.Bounds()), image.Transparent, image.Point{}, draw.Src)
	}
}

// FillRect fills a rectangle. The current path is discarded.
func (s *Surface) FillRect(x, y, w, h float64) {
	s.dc.ClearPath()
	s.dc.DrawRectangle(x, y, w, h)
	s.dc.SetFillStyle(s.pattern(s.state.fill))
	s.dc.Fill()
}

func (s *Surface) SetFillStyle(p canvas.Paint)   { s.state.fill = p }
func (s *Surface) SetStrokeStyle(p canvas.Paint) { s.state.stroke = p }
func (s *Surface) SetLineWidth(w float64)        { s.state.lineWidth = w }

func (s *Surface) SetLineCap(c canvas.LineCap) {
	switch c {
	case canvas.CapRound:
		s.dc.SetLineCap(gg.LineCapRound)
	case canvas.CapSquare:
		s.dc.SetLineCap(gg.LineCapSquare)
	default:
		s.dc.SetLineCap(gg.LineCapButt)
	}
}

func (s *Surface) SetGlobalAlpha(a float64) {
	s.state.alpha = math.Max(0, math.Min(1, a))
}

func (s *Surface) SetFont(f canvas.Font)                 { s.state.font = f }
func (s *Surface) SetTextAlign(a canvas.TextAlign)       { s.state.align = a }
func (s *Surface) SetTextBaseline(b canvas.TextBaseline) { s.state.baseline = b }

// FillText draws text with a solid fill. Gradient fills use their first
// stop.
func (s *Surface) FillText(text string, x, y float64) {
	face, err := s.fonts.face(s.state.font)
	if err != nil {
		return
	}
	s.dc.SetFontFace(face)
	s.dc.SetColor(s.solid(s.state.fill))

	ax := 0.0
	switch s.state.align {
	case canvas.AlignCenter:
		ax = 0.5
	case canvas.AlignRight:
		ax = 1
	}
	ay := 0.0
	switch s.state.baseline {
	case canvas.BaselineMiddle:
		ay = 0.5
	case canvas.BaselineTop:
		ay = 1
	}
	s.dc.DrawStringAnchored(text, x, y, ax, ay)
}

// pattern converts a paint to a gg pattern in image space.
func (s *Surface) pattern(p canvas.Paint) gg.Pattern {
	g, ok := p.(*canvas.RadialGradient)
	if !ok {
		return gg.NewSolidPattern(s.solid(p))
	}

	// gg evaluates gradients in image pixels, not user space.
	x0, y0 := s.dc.TransformPoint(g.X0, g.Y0)
	x1, y1 := s.dc.TransformPoint(g.X1, g.Y1)
	k := s.userScale()
	grad := gg.NewRadialGradient(x0, y0, g.R0*k, x1, y1, g.R1*k)
	for _, stop := range g.Stops {
		grad.AddColorStop(stop.Offset, s.withAlpha(stop.Color))
	}
	return grad
}

// solid returns the color of p with the global alpha applied.
func (s *Surface) solid(p canvas.Paint) color.Color {
	switch v := p.(type) {
	case canvas.Color:
		return s.withAlpha(v)
	case *canvas.RadialGradient:
		if len(v.Stops) > 0 {
			return s.withAlpha(v.Stops[0].Color)
		}
	}
	return color.Transparent
}

func (s *Surface) withAlpha(c canvas.Color) color.Color {
	return c.WithAlpha(c.A * s.state.alpha)
}

// userScale is the length of a unit vector after the current transform.
func (s *Surface) userScale() float64 {
	ox, oy := s.dc.TransformPoint(0, 0)
	ux, uy := s.dc.TransformPoint(1, 0)
	return math.Hypot(ux-ox, uy-oy)
}

// Ensure Surface implements Context
var _ canvas.Context = (*Surface)(nil)

// fontCache holds one face per font size and weight.
type fontCache struct {
	faces map[canvas.Font]font.Face
}

func newFontCache() *fontCache {
	return &fontCache{faces: make(map[canvas.Font]font.Face)}
}
