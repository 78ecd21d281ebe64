// Package canvas defines the 2D drawing contract the loader renders into.
// It mirrors the subset of an HTML canvas context the animation needs and
// keeps drawing as plain values: every call has a Command counterpart, so a
// frame can be computed purely and replayed onto any surface later.
package canvas

// LineCap selects how open stroke ends are drawn.
type LineCap int

const (
	CapButt LineCap = iota
	CapRound
	CapSquare
)

// String returns the canvas keyword for the cap.
func (c LineCap) String() string {
	switch c {
	case CapButt:
		return "butt"
	case CapRound:
		return "round"
	case CapSquare:
		return "square"
	default:
		return "unknown"
	}
}

// TextAlign is the horizontal anchor of FillText.
type TextAlign int

const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)

// TextBaseline is the vertical anchor of FillText.
type TextBaseline int

const (
	BaselineAlphabetic TextBaseline = iota
	BaselineMiddle
	BaselineTop
)

// Font describes the face used by FillText. Size is in surface units.
type Font struct {
	Size float64
	Bold bool
}

// Context is a stateful 2D drawing surface.
//
// Transform, styles, alpha and clip are part of the saved state and obey
// Save/Restore. The transform persists across frames until ResetTransform.
type Context interface {
	Save()
	Restore()
	ResetTransform()
	Translate(x, y float64)
	Rotate(angle float64)

	BeginPath()
	Arc(x, y, radius, startAngle, endAngle float64)
	Stroke()
	Fill()
	Clip()

	ClearRect(x, y, w, h float64)
	FillRect(x, y, w, h float64)

	SetFillStyle(p Paint)
	SetStrokeStyle(p Paint)
	SetLineWidth(w float64)
	SetLineCap(c LineCap)
	SetGlobalAlpha(a float64)

	SetFont(f Font)
	SetTextAlign(a TextAlign)
	SetTextBaseline(b TextBaseline)
	FillText(text string, x, y float64)
}
