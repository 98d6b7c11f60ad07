package tui

import (
	"io"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/balancing-act/internal/balance"
	"github.com/vovakirdan/balancing-act/internal/config"
	"github.com/vovakirdan/balancing-act/internal/core"
	"github.com/vovakirdan/balancing-act/internal/platform/snapshot"
)

// Options configure a terminal session.
type Options struct {
	Scale   config.ScaleConfig
	Runtime core.RuntimeConfig
	Logger  *log.Logger

	// SnapshotDir receives ctrl+s PNGs. Empty disables snapshots.
	SnapshotDir string
	// Clipboard enables ctrl+y. Disabled for remote sessions, where the
	// clipboard would be the server's.
	Clipboard bool
}

// Model is the Bubble Tea model driving one balance simulation.
type Model struct {
	sim        *balance.Sim
	screen     *core.Screen
	config     core.RuntimeConfig
	opts       Options
	inputFrame core.InputFrame
	frame      balance.Frame
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	started    time.Time
	status     string
	fallbacks  int
	checks     int
	quitting   bool
}

// NewModel creates a model with a fresh simulation.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	sim := balance.New(opts.Scale, cfg.Seed)
	h := help.New()
	h.ShowAll = false

	return Model{
		sim:        sim,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		config:     cfg,
		opts:       opts,
		inputFrame: core.NewInputFrame(),
		frame:      sim.Frame(),
		keys:       DefaultKeyMap(),
		help:       h,
		logger:     logger,
		started:    time.Now(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Debug("problem", "equation", m.sim.Equation().String())
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		MapMouse(msg, m.grid(), &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Snapshot):
		m.saveSnapshot()
		return m, nil
	case key.Matches(msg, m.keys.Copy):
		m.copyEquation()
		return m, nil
	case key.Matches(msg, m.keys.New):
		m.sim.NewProblem()
		m.logger.Debug("problem", "equation", m.sim.Equation().String())
		return m, nil
	case key.Matches(msg, m.keys.Clear):
		m.sim.Clear()
		return m, nil
	}

	for _, ev := range MapKey(msg) {
		m.inputFrame.Push(ev)
	}
	return m, nil
}

// handleResize processes window resize events. The last row holds the help line.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the simulation by one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.inputFrame.Clock = time.Since(m.started)
	m.frame = m.sim.Step(m.inputFrame)
	m.inputFrame.Clear()

	if n := m.sim.Fallbacks(); n != m.fallbacks {
		m.logger.Debug("generator exhausted, using fallback", "count", n)
		m.fallbacks = n
	}
	if m.frame.Checks != m.checks {
		m.checks = m.frame.Checks
		m.logger.Info("answer checked", "message", m.frame.Feedback.Text, "guess", m.frame.Guess)
	}

	return m, tickCmd(m.config.TickRate)
}

func (m Model) grid() balance.Grid {
	return balance.Grid{Cols: m.screen.Width(), Rows: m.screen.Height()}
}

// saveSnapshot renders the current frame to a PNG.
func (m *Model) saveSnapshot() {
	if m.opts.SnapshotDir == "" {
		m.status = "snapshots disabled"
		return
	}
	r, err := snapshot.New()
	if err != nil {
		m.logger.Error("snapshot renderer", "error", err)
		m.status = "snapshot failed"
		return
	}
	path := filepath.Join(m.opts.SnapshotDir, snapshot.FileName(time.Now()))
	if err := r.Save(path, m.frame); err != nil {
		m.logger.Error("snapshot", "error", err)
		m.status = "snapshot failed"
		return
	}
	m.logger.Info("snapshot saved", "path", path)
	m.status = "saved " + path
}

// copyEquation puts the equation line on the system clipboard.
func (m *Model) copyEquation() {
	if !m.opts.Clipboard {
		m.status = "clipboard disabled"
		return
	}
	if err := clipboard.WriteAll(m.frame.Equation()); err != nil {
		m.logger.Warn("clipboard", "error", err)
		m.status = "clipboard unavailable"
		return
	}
	m.status = "copied " + m.frame.Equation()
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.frame.Render(m.screen)
	footer := helpStyle.Render(m.help.View(m.keys))
	if m.status != "" {
		footer = statusStyle.Render(m.status) + "  " + footer
	}
	return RenderScreen(m.screen) + "\n" + footer
}

// Frame returns the last simulated frame.
func (m Model) Frame() balance.Frame {
	return m.frame
}

// Run starts the Bubble Tea program on the local terminal.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
