package loader

import (
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/liquid-cat/internal/canvas"
	"github.com/vovakirdan/liquid-cat/internal/config"
	"github.com/vovakirdan/liquid-cat/internal/core"
)

// FrameReport describes the last frame the engine ran.
type FrameReport struct {
	Frame           int
	Phase           Phase // Phase after the frame
	Transition      Transition
	AppliedRotation float64
	Commands        []canvas.Command
	State           State
	At              time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithFrameHook registers fn to run after every frame.
func WithFrameHook(fn func(FrameReport)) Option {
	return func(e *Engine) {
		e.hook = fn
	}
}

// surfaceResizer is implemented by surfaces backed by a pixel buffer.
type surfaceResizer interface {
	Resize(width, height int)
}

// Engine owns the animation state and the drawing surface and runs one
// phase handler per scheduled frame.
//
// All methods must be called from the goroutine that runs the scheduler's
// callbacks.
type Engine struct {
	setup   *Setup
	ctrl    *Controller
	sched   Scheduler
	surface canvas.Context
	resizer *ResizeCoordinator
	logger  *log.Logger
	hook    func(FrameReport)

	vp           core.Viewport
	surfaceStale bool // vp changed after Done; the surface still has the old size
	state        State
	pending      FrameHandle
	hasPending   bool
	running      bool

	source      ResizeSource
	unsubscribe func()

	last FrameReport
}

// New creates an engine for cfg drawing on surface, seeded from vp.
func New(cfg config.LoaderConfig, vp core.Viewport, sched Scheduler, surface canvas.Context, opts ...Option) (*Engine, error) {
	setup, err := NewSetup(cfg)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		setup:   setup,
		ctrl:    NewController(setup),
		sched:   sched,
		surface: surface,
		logger:  log.New(io.Discard),
		vp:      vp,
		state:   NewState(setup, vp),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.resizer = NewResizeCoordinator(sched, cfg.Timing.RedrawThrottle, e.Resize)
	e.resizeSurface(vp)
	return e, nil
}

// Start subscribes to src (nil is allowed), mounts the surface and schedules
// the first frame. Calling Start on a running engine does nothing.
func (e *Engine) Start(src ResizeSource) {
	if e.running {
		return
	}
	e.running = true
	e.source = src
	if src != nil {
		e.unsubscribe = src.OnResize(e.resizer.Signal)
	}

	if e.state.Phase == PhaseDone {
		return
	}
	// Resuming a stopped engine: the fresh transform needs the whole
	// accumulated rotation.
	if e.state.Frame > 0 {
		e.state.ResumeAfterInterrupt = true
	}
	e.mount()
	e.schedule()
	e.logger.Info("loader started", "phase", e.state.Phase, "width", e.state.Width, "height", e.state.Height)
}

// Stop cancels the pending frame and any pending resize and unsubscribes
// from the resize source. The state is kept.
func (e *Engine) Stop() {
	if !e.running {
		return
	}
	e.running = false
	e.cancelPending()
	e.resizer.Cancel()
	if e.unsubscribe != nil {
		e.unsubscribe()
		e.unsubscribe = nil
	}
	e.logger.Info("loader stopped", "phase", e.state.Phase, "frame", e.state.Frame)
}

// Restart stops the engine, reseeds the state from the current viewport and
// starts again from the first phase.
func (e *Engine) Restart() {
	src := e.source
	e.Stop()
	e.state = NewState(e.setup, e.vp)
	e.last = FrameReport{}
	if e.surfaceStale {
		e.resizeSurface(e.vp)
		e.surfaceStale = false
	}
	e.Start(src)
}

// Resize applies a new viewport: the pending frame is cancelled, the
// dimension-derived state recomputed and the loop rescheduled from the
// current phase.
func (e *Engine) Resize(vp core.Viewport) {
	e.cancelPending()
	e.vp = vp
	e.state = e.state.WithViewport(e.setup, vp)
	e.logger.Info("loader resized", "width", e.state.Width, "height", e.state.Height, "diagonal", e.state.Diagonal)

	// A finished animation keeps its last frame; the surface catches up on
	// Restart.
	if e.state.Phase == PhaseDone {
		e.surfaceStale = true
		return
	}
	e.resizeSurface(vp)
	e.state.ResumeAfterInterrupt = true
	e.mount()
	if e.running {
		e.schedule()
	}
}

// State returns a copy of the current state.
func (e *Engine) State() State {
	return e.state
}

// Viewport returns the viewport the engine is sized for.
func (e *Engine) Viewport() core.Viewport {
	return e.vp
}

// Running reports whether the engine was started and not stopped.
func (e *Engine) Running() bool {
	return e.running
}

// Done reports whether the animation reached its terminal phase.
func (e *Engine) Done() bool {
	return e.state.Phase == PhaseDone
}

// Last returns the report of the most recent frame.
func (e *Engine) Last() FrameReport {
	return e.last
}

// Setup returns the derived configuration.
func (e *Engine) Setup() *Setup {
	return e.setup
}

// mount puts the surface origin at its center.
func (e *Engine) mount() {
	e.surface.ResetTransform()
	e.surface.Translate(e.state.Width/2, e.state.Height/2)
}

func (e *Engine) resizeSurface(vp core.Viewport) {
	r, ok := e.surface.(surfaceResizer)
	if !ok {
		return
	}
	w, h := vp.Scaled()
	r.Resize(int(math.Round(w)), int(math.Round(h)))
}

// schedule requests the next frame. The callback carries its own handle so
// a frame that was cancelled after being dequeued can be recognized.
func (e *Engine) schedule() {
	var h FrameHandle
	h = e.sched.RequestFrame(func(now time.Time) {
		e.frame(h, now)
	})
	e.pending = h
	e.hasPending = true
}

func (e *Engine) cancelPending() {
	if !e.hasPending {
		return
	}
	e.sched.CancelFrame(e.pending)
	e.hasPending = false
}

func (e *Engine) frame(h FrameHandle, now time.Time) {
	if !e.running || !e.hasPending || h != e.pending {
		e.logger.Debug("dropping stale frame", "handle", h)
		return
	}
	e.hasPending = false

	next, cmds, tr := e.ctrl.Step(e.state)
	e.state = next
	canvas.Replay(e.surface, cmds)

	e.last = FrameReport{
		Frame:           next.Frame,
		Phase:           next.Phase,
		Transition:      tr,
		AppliedRotation: next.AppliedRotation,
		Commands:        cmds,
		State:           next,
		At:              now,
	}
	if tr.Changed() {
		e.logger.Debug("phase transition", "from", tr.From, "to", tr.To, "frame", next.Frame)
	}
	if e.hook != nil {
		e.hook(e.last)
	}

	if next.Phase == PhaseDone {
		e.logger.Info("loader finished", "frames", next.Frame)
		return
	}
	// The hook may have stopped or resized the engine.
	if e.running && !e.hasPending {
		e.schedule()
	}
}
