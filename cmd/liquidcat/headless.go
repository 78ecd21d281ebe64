package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/liquid-cat/internal/canvas"
	"github.com/vovakirdan/liquid-cat/internal/config"
	"github.com/vovakirdan/liquid-cat/internal/core"
	"github.com/vovakirdan/liquid-cat/internal/loader"
)

// headlessRun drives an engine with a manual scheduler, one Step per frame.
type headlessRun struct {
	cfg      config.LoaderConfig
	viewport core.Viewport
	surface  canvas.Context
	frames   int
	resizeAt int           // Frame index that emits resizeTo (0 = never)
	resizeTo core.Viewport // Delivered through the resize throttle
	logger   *log.Logger
	onFrame  func(loader.FrameReport) error
}

// run returns the final state. It stops early when the animation is done
// or onFrame fails.
func (h headlessRun) run() (loader.State, error) {
	sched := loader.NewManualScheduler(time.Unix(0, 0), h.cfg.Timing.FrameInterval())
	signal := loader.NewResizeSignal()

	var hookErr error
	e, err := loader.New(h.cfg, h.viewport, sched, h.surface,
		loader.WithLogger(h.logger),
		loader.WithFrameHook(func(r loader.FrameReport) {
			if hookErr == nil && h.onFrame != nil {
				hookErr = h.onFrame(r)
			}
		}),
	)
	if err != nil {
		return loader.State{}, err
	}

	e.Start(signal)
	defer e.Stop()

	for i := 0; i < h.frames && !e.Done() && hookErr == nil; i++ {
		if h.resizeAt > 0 && i == h.resizeAt {
			signal.Emit(h.resizeTo)
		}
		sched.Step()
	}
	return e.State(), hookErr
}

// parseSize parses "WxH".
func parseSize(s string) (core.Viewport, error) {
	var w, h int
	if _, err := fmt.Sscanf(s, "%dx%d", &w, &h); err != nil || w <= 0 || h <= 0 {
		return core.Viewport{}, fmt.Errorf("invalid size %q, expected WxH", s)
	}
	return core.Viewport{Width: w, Height: h, PixelRatio: 1}, nil
}
