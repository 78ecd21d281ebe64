package loader

import (
	"time"

	"github.com/vovakirdan/liquid-cat/internal/core"
)

// ResizeSource delivers viewport changes. OnResize registers fn and returns
// a function that unregisters it.
type ResizeSource interface {
	OnResize(fn func(core.Viewport)) (cancel func())
}

// ResizeSignal is an in-process ResizeSource that hosts feed with Emit.
type ResizeSignal struct {
	next int
	subs map[int]func(core.Viewport)
}

// NewResizeSignal creates a signal with no subscribers.
func NewResizeSignal() *ResizeSignal {
	return &ResizeSignal{subs: make(map[int]func(core.Viewport))}
}

// OnResize subscribes fn.
func (r *ResizeSignal) OnResize(fn func(core.Viewport)) func() {
	id := r.next
	r.next++
	r.subs[id] = fn
	return func() { delete(r.subs, id) }
}

// Emit notifies every subscriber.
func (r *ResizeSignal) Emit(vp core.Viewport) {
	for _, fn := range r.subs {
		fn(vp)
	}
}

// Subscribers returns the number of registered callbacks.
func (r *ResizeSignal) Subscribers() int {
	return len(r.subs)
}

// ResizeCoordinator throttles resize signals: at most one viewport is
// applied per interval. The first signal of a window arms the timer, later
// ones only replace the pending viewport, so the newest one is applied when
// the window closes.
type ResizeCoordinator struct {
	sched    Scheduler
	interval time.Duration
	apply    func(core.Viewport)

	latest  core.Viewport
	timer   FrameHandle
	armed   bool
	signals int
	applied int
}

// NewResizeCoordinator creates a coordinator that calls apply on sched.
// A non-positive interval applies every signal immediately.
func NewResizeCoordinator(sched Scheduler, interval time.Duration, apply func(core.Viewport)) *ResizeCoordinator {
	return &ResizeCoordinator{sched: sched, interval: interval, apply: apply}
}

// Signal records a new viewport.
func (r *ResizeCoordinator) Signal(vp core.Viewport) {
	r.signals++
	r.latest = vp
	if r.interval <= 0 {
		r.fire()
		return
	}
	if r.armed {
		return
	}
	r.timer = r.sched.AfterFunc(r.interval, r.fire)
	r.armed = true
}

func (r *ResizeCoordinator) fire() {
	r.armed = false
	r.applied++
	r.apply(r.latest)
}

// Cancel drops a pending viewport without applying it.
func (r *ResizeCoordinator) Cancel() {
	if r.armed {
		r.sched.CancelFrame(r.timer)
		r.armed = false
	}
}

// Pending reports whether a viewport is waiting for the timer.
func (r *ResizeCoordinator) Pending() bool {
	return r.armed
}

// Stats returns how many signals arrived and how many were applied.
func (r *ResizeCoordinator) Stats() (signals, applied int) {
	return r.signals, r.applied
}
