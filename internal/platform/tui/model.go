package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/liquid-cat/internal/core"
	"github.com/vovakirdan/liquid-cat/internal/loader"
	"github.com/vovakirdan/liquid-cat/internal/registry"
	"github.com/vovakirdan/liquid-cat/internal/render/raster"
)

// footerHeight is the number of rows reserved below the animation.
const footerHeight = 1

var (
	statusStyle = lipgloss.NewStyle().Faint(true)
	pausedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
)

// frameState is written by the engine's frame hook and read by View.
type frameState struct {
	report   loader.FrameReport
	label    label
	hasLabel bool
}

// Model is the Bubble Tea model that plays one loader variant.
type Model struct {
	variant registry.Variant
	config  core.RuntimeConfig
	logger  *log.Logger

	sched   *Scheduler
	surface *raster.Surface
	engine  *loader.Engine
	resize  *loader.ResizeSignal
	frame   *frameState
	screen  *core.Screen

	keys     KeyMap
	help     help.Model
	paused   bool
	status   string
	quitting bool
}

// NewModel creates a model for variant sized from cfg.
func NewModel(variant registry.Variant, cfg core.RuntimeConfig, logger *log.Logger) (Model, error) {
	if logger == nil {
		logger = log.New(os.Stderr)
	}
	if cfg.TickRate > 0 {
		variant.Config.Timing.FPS = cfg.TickRate
	}

	rows := core.Max(cfg.ScreenH-footerHeight, 1)
	cfg.ScreenH = rows
	vp := cfg.Viewport()

	m := Model{
		variant: variant,
		config:  cfg,
		logger:  logger,
		sched:   NewScheduler(variant.Config.Timing.FrameInterval()),
		surface: raster.New(vp.Width, vp.Height, 1/float64(core.Max(cfg.CellPixels, 1))),
		resize:  loader.NewResizeSignal(),
		frame:   &frameState{},
		screen:  core.NewScreen(cfg.ScreenW, rows),
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}

	engine, err := loader.New(variant.Config, vp, m.sched, textless{m.surface},
		loader.WithLogger(logger),
		loader.WithFrameHook(m.frame.record),
	)
	if err != nil {
		return Model{}, fmt.Errorf("tui: %w", err)
	}
	m.engine = engine
	return m, nil
}

func (f *frameState) record(r loader.FrameReport) {
	f.report = r
	f.label, f.hasLabel = labelFromCommands(r.Commands)
}

// Init starts the engine.
func (m Model) Init() tea.Cmd {
	m.engine.Start(m.resize)
	return m.sched.Drain()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.sched.Dispatch(msg) {
		return m, m.sched.Drain()
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.engine.Stop()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Pause):
		if m.paused {
			// Sizes that arrived while stopped never reached the engine.
			if vp := m.config.Viewport(); vp != m.engine.Viewport() {
				m.engine.Resize(vp)
			}
			m.engine.Start(m.resize)
		} else {
			m.engine.Stop()
		}
		m.paused = !m.paused

	case key.Matches(msg, m.keys.Restart):
		m.paused = false
		m.frame.hasLabel = false
		m.engine.Restart()

	case key.Matches(msg, m.keys.Screenshot):
		m.status = m.saveScreenshot()
	}

	return m, m.sched.Drain()
}

// handleResize forwards the new size to the engine. The engine throttles
// bursts itself.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = core.Max(msg.Height-footerHeight, 1)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width

	m.resize.Emit(m.config.Viewport())
	return m, m.sched.Drain()
}

// saveScreenshot writes the current frame as PNG and returns a status line.
func (m Model) saveScreenshot() string {
	dir := filepath.Join(os.Getenv("HOME"), ".liquidcat", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Error("screenshot directory", "err", err)
		return "screenshot failed"
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.png", m.variant.ID, timestamp))
	if err := m.surface.SavePNG(path); err != nil {
		m.logger.Error("screenshot", "err", err)
		return "screenshot failed"
	}
	m.logger.Info("screenshot saved", "path", path)
	return "saved " + path
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.FillFromImage(m.surface.Image())
	if m.frame.hasLabel {
		drawLabel(m.screen, m.frame.label)
	}

	return RenderScreen(m.screen) + "\n" + m.footer()
}

// footer shows the variant, phase and key help on one line.
func (m Model) footer() string {
	st := m.engine.State()
	status := fmt.Sprintf("%s  %s  frame %d", m.variant.Title, st.Phase, st.Frame)
	if m.status != "" {
		status += "  " + m.status
	}

	line := statusStyle.Render(status)
	if m.paused {
		line += "  " + pausedStyle.Render("PAUSED")
	}
	return line + "  " + m.help.View(m.keys)
}

// Engine exposes the running engine.
func (m Model) Engine() *loader.Engine {
	return m.engine
}

// Run starts the Bubble Tea program for variant.
func Run(variant registry.Variant, cfg core.RuntimeConfig, logger *log.Logger) error {
	model, err := NewModel(variant, cfg, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
