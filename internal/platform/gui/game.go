// Package gui runs the balance scale in a desktop window with Ebiten at the
// reference 1200x800 resolution.
package gui

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/ncruces/zenity"

	"github.com/vovakirdan/balancing-act/internal/balance"
	"github.com/vovakirdan/balancing-act/internal/config"
	"github.com/vovakirdan/balancing-act/internal/core"
	"github.com/vovakirdan/balancing-act/internal/platform/fonts"
	"github.com/vovakirdan/balancing-act/internal/platform/snapshot"
)

// Options configure the window frontend.
type Options struct {
	Scale   config.ScaleConfig
	Runtime core.RuntimeConfig
	Logger  *log.Logger
	Mute    bool
}

const statusTTL = 3 * time.Second

// Game implements ebiten.Game around one simulation.
type Game struct {
	sim    *balance.Sim
	in     core.InputFrame
	frame  balance.Frame
	faces  textFaces
	chimes *chimes
	logger *log.Logger
	start  time.Time

	checks      int
	fallbacks   int
	status      string
	statusUntil time.Time
}

// NewGame creates the window game. Audio failures leave the game muted.
func NewGame(opts Options) (*Game, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	faces, err := fonts.Load()
	if err != nil {
		return nil, fmt.Errorf("gui: %w", err)
	}

	seed := opts.Runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	sim := balance.New(opts.Scale, seed)

	g := &Game{
		sim:    sim,
		in:     core.NewInputFrame(),
		frame:  sim.Frame(),
		faces:  newTextFaces(faces),
		logger: logger,
		start:  time.Now(),
	}
	if !opts.Mute {
		c, err := newChimes()
		if err != nil {
			logger.Warn("audio unavailable, continuing muted", "error", err)
		} else {
			g.chimes = c
		}
	}
	return g, nil
}

var mouseButtons = []struct {
	eb  ebiten.MouseButton
	btn core.Button
}{
	{ebiten.MouseButtonLeft, core.ButtonPrimary},
	{ebiten.MouseButtonMiddle, core.ButtonMiddle},
	{ebiten.MouseButtonRight, core.ButtonSecondary},
}

var keyEvents = map[ebiten.Key]core.Key{
	ebiten.KeyBackspace:   core.KeyBackspace,
	ebiten.KeyDelete:      core.KeyDelete,
	ebiten.KeyEnter:       core.KeyEnter,
	ebiten.KeyNumpadEnter: core.KeyEnter,
	ebiten.KeyEscape:      core.KeyEscape,
}

// Update polls input and advances the simulation one tick.
func (g *Game) Update() error {
	x, y := ebiten.CursorPosition()
	p := core.Pt(x, y)
	g.in.MoveTo(p)

	for _, mb := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(mb.eb) {
			g.in.Push(core.PointerDown(p, mb.btn))
		}
		if inpututil.IsMouseButtonJustReleased(mb.eb) {
			g.in.Push(core.PointerUp(p, mb.btn))
		}
	}

	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		if ck, ok := keyEvents[k]; ok {
			g.in.Push(core.KeyDown(ck))
		}
	}
	for _, r := range ebiten.AppendInputChars(nil) {
		switch Shortcut(r) {
		case ActionSnapshot:
			g.saveSnapshot()
		case ActionCopy:
			g.copyEquation()
		case ActionNew:
			g.sim.NewProblem()
		default:
			g.in.Push(core.RuneDown(r))
		}
	}

	g.in.Clock = time.Since(g.start)
	g.frame = g.sim.Step(g.in)
	g.in.Clear()

	if n := g.sim.Fallbacks(); n != g.fallbacks {
		g.fallbacks = n
		g.logger.Debug("generator exhausted, using fallback", "equation", g.frame.Equation())
	}
	g.onCheck(g.frame)
	return nil
}

// onCheck logs and sounds every answer check, even one that repeats the
// previous verdict.
func (g *Game) onCheck(f balance.Frame) {
	if f.Checks == g.checks {
		return
	}
	g.checks = f.Checks
	g.logger.Info("answer checked", "message", f.Feedback.Text, "guess", f.Guess)
	if notes := chimeFor(f.Feedback); notes != nil && g.chimes != nil {
		g.chimes.play(notes)
	}
}

func (g *Game) setStatus(s string) {
	g.status = s
	g.statusUntil = time.Now().Add(statusTTL)
}

// saveSnapshot asks for a destination and writes the current frame as PNG.
func (g *Game) saveSnapshot() {
	path, err := zenity.SelectFileSave(
		zenity.Title("Save snapshot"),
		zenity.Filename(snapshot.FileName(time.Now())),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "PNG image",
			Patterns: []string{"*.png"},
		}},
	)
	if err != nil {
		if !errors.Is(err, zenity.ErrCanceled) {
			g.logger.Error("save dialog", "error", err)
			g.setStatus("snapshot failed")
		}
		return
	}

	r, err := snapshot.New()
	if err == nil {
		err = r.Save(path, g.frame)
	}
	if err != nil {
		g.logger.Error("snapshot", "error", err)
		g.setStatus("snapshot failed")
		return
	}
	g.logger.Info("snapshot saved", "path", path)
	g.setStatus("saved " + path)
}

func (g *Game) copyEquation() {
	if err := clipboard.WriteAll(g.frame.Equation()); err != nil {
		g.logger.Warn("clipboard", "error", err)
		g.setStatus("clipboard unavailable")
		return
	}
	g.setStatus("copied " + g.frame.Equation())
}

// Draw renders the last frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.drawFrame(screen, g.frame)
	if g.status != "" && time.Now().Before(g.statusUntil) {
		drawText(screen, g.status, g.faces.small, 12, balance.WorldH-12, text.AlignStart, text.AlignEnd, balance.ColorText)
	}
}

// Layout keeps the logical screen at the reference size; Ebiten scales it.
func (g *Game) Layout(_, _ int) (int, int) {
	return balance.WorldW, balance.WorldH
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	g, err := NewGame(opts)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(balance.WorldW, balance.WorldH)
	ebiten.SetWindowTitle("Balancing Act!")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if opts.Runtime.TickRate > 0 {
		ebiten.SetTPS(opts.Runtime.TickRate)
	}

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}
