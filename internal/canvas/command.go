package canvas

import "fmt"

// Command is one recorded drawing call.
type Command interface {
	Apply(ctx Context)
}

// Replay applies cmds to ctx in order.
func Replay(ctx Context, cmds []Command) {
	for _, c := range cmds {
		c.Apply(ctx)
	}
}

type (
	Save           struct{}
	Restore        struct{}
	ResetTransform struct{}
	BeginPath      struct{}
	Stroke         struct{}
	Fill           struct{}
	Clip           struct{}

	Translate struct{ X, Y float64 }
	Rotate    struct{ Angle float64 }

	Arc struct {
		X, Y, Radius         float64
		StartAngle, EndAngle float64
	}

	ClearRect struct{ X, Y, W, H float64 }
	FillRect  struct{ X, Y, W, H float64 }

	SetFillStyle    struct{ Paint Paint }
	SetStrokeStyle  struct{ Paint Paint }
	SetLineWidth    struct{ Width float64 }
	SetLineCap      struct{ Cap LineCap }
	SetGlobalAlpha  struct{ Alpha float64 }
	SetFont         struct{ Font Font }
	SetTextAlign    struct{ Align TextAlign }
	SetTextBaseline struct{ Baseline TextBaseline }

	FillText struct {
		Text string
		X, Y float64
	}
)

func (Save) Apply(ctx Context)             { ctx.Save() }
func (Restore) Apply(ctx Context)          { ctx.Restore() }
func (ResetTransform) Apply(ctx Context)   { ctx.ResetTransform() }
func (BeginPath) Apply(ctx Context)        { ctx.BeginPath() }
func (Stroke) Apply(ctx Context)           { ctx.Stroke() }
func (Fill) Apply(ctx Context)             { ctx.Fill() }
func (Clip) Apply(ctx Context)             { ctx.Clip() }
func (c Translate) Apply(ctx Context)      { ctx.Translate(c.X, c.Y) }
func (c Rotate) Apply(ctx Context)         { ctx.Rotate(c.Angle) }
func (c ClearRect) Apply(ctx Context)      { ctx.ClearRect(c.X, c.Y, c.W, c.H) }
func (c FillRect) Apply(ctx Context)       { ctx.FillRect(c.X, c.Y, c.W, c.H) }
func (c SetFillStyle) Apply(ctx Context)   { ctx.SetFillStyle(c.Paint) }
func (c SetStrokeStyle) Apply(ctx Context) { ctx.SetStrokeStyle(c.Paint) }
func (c SetLineWidth) Apply(ctx Context)   { ctx.SetLineWidth(c.Width) }
func (c SetLineCap) Apply(ctx Context)     { ctx.SetLineCap(c.Cap) }
func (c SetGlobalAlpha) Apply(ctx Context) { ctx.SetGlobalAlpha(c.Alpha) }
func (c SetFont) Apply(ctx Context)        { ctx.SetFont(c.Font) }
func (c SetTextAlign) Apply(ctx Context)   { ctx.SetTextAlign(c.Align) }
func (c FillText) Apply(ctx Context)       { ctx.FillText(c.Text, c.X, c.Y) }

func (c SetTextBaseline) Apply(ctx Context) { ctx.SetTextBaseline(c.Baseline) }

func (c Arc) Apply(ctx Context) {
	ctx.Arc(c.X, c.Y, c.Radius, c.StartAngle, c.EndAngle)
}

// String formats the arc for traces and test failures.
func (c Arc) String() string {
	return fmt.Sprintf("arc(%.2f, %.2f, r=%.3f, %.4f..%.4f)", c.X, c.Y, c.Radius, c.StartAngle, c.EndAngle)
}
