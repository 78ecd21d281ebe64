package canvas

// Recorder is a Context that only records calls.
// Phase handlers draw into a Recorder to stay free of side effects; tests use
// it to inspect what a frame would draw.
type Recorder struct {
	cmds []Command
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Commands returns the recorded commands.
func (r *Recorder) Commands() []Command {
	return r.cmds
}

// Reset drops everything recorded so far.
func (r *Recorder) Reset() {
	r.cmds = nil
}

// Append records already-built commands.
func (r *Recorder) Append(cmds ...Command) {
	r.cmds = append(r.cmds, cmds...)
}

func (r *Recorder) Save()                  { r.Append(Save{}) }
func (r *Recorder) Restore()               { r.Append(Restore{}) }
func (r *Recorder) ResetTransform()        { r.Append(ResetTransform{}) }
func (r *Recorder) Translate(x, y float64) { r.Append(Translate{X: x, Y: y}) }
func (r *Recorder) Rotate(angle float64)   { r.Append(Rotate{Angle: angle}) }
func (r *Recorder) BeginPath()             { r.Append(BeginPath{}) }
func (r *Recorder) Stroke()                { r.Append(Stroke{}) }
func (r *Recorder) Fill()                  { r.Append(Fill{}) }
func (r *Recorder) Clip()                  { r.Append(Clip{}) }

func (r *Recorder) Arc(x, y, radius, startAngle, endAngle float64) {
	r.Append(Arc{X: x, Y: y, Radius: radius, StartAngle: startAngle, EndAngle: endAngle})
}

func (r *Recorder) ClearRect(x, y, w, h float64) { r.Append(ClearRect{X: x, Y: y, W: w, H: h}) }
func (r *Recorder) FillRect(x, y, w, h float64)  { r.Append(FillRect{X: x, Y: y, W: w, H: h}) }

func (r *Recorder) SetFillStyle(p Paint)     { r.Append(SetFillStyle{Paint: p}) }
func (r *Recorder) SetStrokeStyle(p Paint)   { r.Append(SetStrokeStyle{Paint: p}) }
func (r *Recorder) SetLineWidth(w float64)   { r.Append(SetLineWidth{Width: w}) }
func (r *Recorder) SetLineCap(c LineCap)     { r.Append(SetLineCap{Cap: c}) }
func (r *Recorder) SetGlobalAlpha(a float64) { r.Append(SetGlobalAlpha{Alpha: a}) }
func (r *Recorder) SetFont(f Font)           { r.Append(SetFont{Font: f}) }
func (r *Recorder) SetTextAlign(a TextAlign) { r.Append(SetTextAlign{Align: a}) }

func (r *Recorder) SetTextBaseline(b TextBaseline) { r.Append(SetTextBaseline{Baseline: b}) }

func (r *Recorder) FillText(text string, x, y float64) {
	r.Append(FillText{Text: text, X: x, Y: y})
}

// Ensure Recorder implements Context
var _ Context = (*Recorder)(nil)

// Arcs returns the arcs among cmds, in order.
func Arcs(cmds []Command) []Arc {
	var arcs []Arc
	for _, c := range cmds {
		if a, ok := c.(Arc); ok {
			arcs = append(arcs, a)
		}
	}
	return arcs
}

// Rotations returns the rotation angles among cmds, in order.
func Rotations(cmds []Command) []float64 {
	var out []float64
	for _, c := range cmds {
		if r, ok := c.(Rotate); ok {
			out = append(out, r.Angle)
		}
	}
	return out
}
