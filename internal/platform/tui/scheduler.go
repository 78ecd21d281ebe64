// Package tui provides the Bubble Tea host for the loader animation.
// It handles the terminal UI loop, key bindings, resize events and the
// half-block display of the rendered frames.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/liquid-cat/internal/loader"
)

// FrameMsg delivers a frame callback requested through the scheduler.
type FrameMsg struct {
	Handle loader.FrameHandle
	At     time.Time
}

// TimerMsg delivers an AfterFunc callback.
type TimerMsg struct {
	Handle loader.FrameHandle
}

// Scheduler is a loader.Scheduler on top of Bubble Tea commands.
//
// Every request becomes a tea.Tick command; callbacks run when the message
// comes back through Update. Cancelled handles are forgotten, so their
// messages are dropped on arrival.
type Scheduler struct {
	interval time.Duration
	next     loader.FrameHandle
	frames   map[loader.FrameHandle]func(time.Time)
	timers   map[loader.FrameHandle]func()
	cmds     []tea.Cmd
}

// NewScheduler creates a scheduler that delivers frames every interval.
func NewScheduler(interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = time.Second / 60
	}
	return &Scheduler{
		interval: interval,
		frames:   make(map[loader.FrameHandle]func(time.Time)),
		timers:   make(map[loader.FrameHandle]func()),
	}
}

// RequestFrame schedules fn for the next frame tick.
func (s *Scheduler) RequestFrame(fn func(time.Time)) loader.FrameHandle {
	s.next++
	h := s.next
	s.frames[h] = fn
	s.cmds = append(s.cmds, tea.Tick(s.interval, func(t time.Time) tea.Msg {
		return FrameMsg{Handle: h, At: t}
	}))
	return h
}

// AfterFunc schedules fn after d.
func (s *Scheduler) AfterFunc(d time.Duration, fn func()) loader.FrameHandle {
	s.next++
	h := s.next
	s.timers[h] = fn
	s.cmds = append(s.cmds, tea.Tick(d, func(time.Time) tea.Msg {
		return TimerMsg{Handle: h}
	}))
	return h
}

// CancelFrame forgets h. Its tick still arrives and is ignored.
func (s *Scheduler) CancelFrame(h loader.FrameHandle) {
	delete(s.frames, h)
	delete(s.timers, h)
}

// Now returns the wall clock.
func (s *Scheduler) Now() time.Time {
	return time.Now()
}

// Dispatch runs the callback a message refers to.
// It reports whether msg belonged to the scheduler.
func (s *Scheduler) Dispatch(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case FrameMsg:
		if fn, ok := s.frames[msg.Handle]; ok {
			delete(s.frames, msg.Handle)
			fn(msg.At)
		}
		return true
	case TimerMsg:
		if fn, ok := s.timers[msg.Handle]; ok {
			delete(s.timers, msg.Handle)
			fn()
		}
		return true
	}
	return false
}

// Drain returns the commands queued since the last call.
func (s *Scheduler) Drain() tea.Cmd {
	if len(s.cmds) == 0 {
		return nil
	}
	cmds := s.cmds
	s.cmds = nil
	return tea.Batch(cmds...)
}

// Pending returns the number of live frame and timer callbacks.
func (s *Scheduler) Pending() (frames, timers int) {
	return len(s.frames), len(s.timers)
}

// Ensure Scheduler implements loader.Scheduler
var _ loader.Scheduler = (*Scheduler)(nil)
