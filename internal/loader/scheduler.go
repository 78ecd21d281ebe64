package loader

import (
	"sort"
	"time"
)

// FrameHandle identifies a scheduled callback. The zero handle is never
// issued.
type FrameHandle uint64

// Scheduler is the host's frame facility.
//
// RequestFrame runs fn once on the next frame. AfterFunc runs fn once after d.
// CancelFrame prevents a callback from running if it has not been dequeued
// yet; it cannot interrupt one that is already running.
type Scheduler interface {
	RequestFrame(fn func(now time.Time)) FrameHandle
	AfterFunc(d time.Duration, fn func()) FrameHandle
	CancelFrame(h FrameHandle)
	Now() time.Time
}

// ManualScheduler is a deterministic Scheduler driven by its caller.
// Headless hosts and tests advance it frame by frame.
type ManualScheduler struct {
	now      time.Time
	interval time.Duration
	next     FrameHandle
	frames   []manualFrame
	timers   []manualTimer
}

type manualFrame struct {
	h  FrameHandle
	fn func(time.Time)
}

type manualTimer struct {
	h  FrameHandle
	at time.Time
	fn func()
}

// NewManualScheduler creates a scheduler whose clock starts at start and
// moves by interval on every Step.
func NewManualScheduler(start time.Time, interval time.Duration) *ManualScheduler {
	if interval <= 0 {
		interval = time.Second / 60
	}
	return &ManualScheduler{now: start, interval: interval}
}

func (m *ManualScheduler) handle() FrameHandle {
	m.next++
	return m.next
}

// RequestFrame queues fn for the next Step.
func (m *ManualScheduler) RequestFrame(fn func(time.Time)) FrameHandle {
	h := m.handle()
	m.frames = append(m.frames, manualFrame{h: h, fn: fn})
	return h
}

// AfterFunc arms a timer that fires once the clock reaches now+d.
func (m *ManualScheduler) AfterFunc(d time.Duration, fn func()) FrameHandle {
	h := m.handle()
	m.timers = append(m.timers, manualTimer{h: h, at: m.now.Add(d), fn: fn})
	return h
}

// CancelFrame removes a queued frame or timer.
func (m *ManualScheduler) CancelFrame(h FrameHandle) {
	for i, f := range m.frames {
		if f.h == h {
			m.frames = append(m.frames[:i], m.frames[i+1:]...)
			return
		}
	}
	for i, t := range m.timers {
		if t.h == h {
			m.timers = append(m.timers[:i], m.timers[i+1:]...)
			return
		}
	}
}

// Now returns the scheduler clock.
func (m *ManualScheduler) Now() time.Time {
	return m.now
}

// Advance moves the clock by d and fires every timer that became due, in
// deadline order.
func (m *ManualScheduler) Advance(d time.Duration) {
	m.now = m.now.Add(d)
	for {
		due := -1
		for i, t := range m.timers {
			if t.at.After(m.now) {
				continue
			}
			if due < 0 || t.at.Before(m.timers[due].at) {
				due = i
			}
		}
		if due < 0 {
			return
		}
		t := m.timers[due]
		m.timers = append(m.timers[:due], m.timers[due+1:]...)
		t.fn()
	}
}

// Step advances one frame interval and runs the frames queued so far.
// Frames requested by those callbacks wait for the next Step.
// It returns the number of callbacks run.
func (m *ManualScheduler) Step() int {
	m.Advance(m.interval)
	queued := m.frames
	m.frames = nil
	for _, f := range queued {
		f.fn(m.now)
	}
	return len(queued)
}

// RunFrames calls Step n times and returns the callbacks run.
func (m *ManualScheduler) RunFrames(n int) int {
	ran := 0
	for i := 0; i < n; i++ {
		ran += m.Step()
	}
	return ran
}

// PendingFrames returns the number of queued frames.
func (m *ManualScheduler) PendingFrames() int {
	return len(m.frames)
}

// PendingTimers returns the deadlines of the armed timers, earliest first.
func (m *ManualScheduler) PendingTimers() []time.Time {
	out := make([]time.Time, 0, len(m.timers))
	for _, t := range m.timers {
		out = append(out, t.at)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// Ensure ManualScheduler implements Scheduler
var _ Scheduler = (*ManualScheduler)(nil)
