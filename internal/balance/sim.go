// Package balance implements the balance scale simulation: equation generation,
// block placement and stacking on two tilting pans, beam easing and the guess
// box. It is frontend-agnostic; callers feed a core.InputFrame per tick and draw
// the returned Frame.
package balance

import (
	"errors"
	"math/rand"
	"slices"
	"time"

	"github.com/vovakirdan/balancing-act/internal/config"
	"github.com/vovakirdan/balancing-act/internal/core"
)

// Sim owns all mutable state of one balance scale. It is not safe for
// concurrent use; each frontend loop owns its own Sim.
type Sim struct {
	cfg    config.ScaleConfig
	layout Layout
	rng    *rand.Rand

	eq        Equation
	fallbacks int

	blocks   []*Block
	nextID   int
	dragging *Block

	guess    GuessInput
	feedback Feedback
	checks   int

	tilt   *Tilt
	placer Placer
	pans   Pans
	clock  time.Duration
	frame  Frame
}

// New creates a simulation with a freshly generated equation.
func New(cfg config.ScaleConfig, seed int64) *Sim {
	s := &Sim{
		cfg:    cfg,
		layout: DefaultLayout(),
		rng:    rand.New(rand.NewSource(seed)),
		guess:  NewGuessInput(cfg.Input.MaxLength),
		tilt:   NewTilt(cfg.Physics),
		placer: NewPlacer(cfg.Pan.MaxStack),
		pans:   PanSurfaces(0),
	}
	s.regenerate()
	s.frame = s.buildFrame()
	return s
}

// Step applies one tick of input and returns the resulting frame.
func (s *Sim) Step(in core.InputFrame) Frame {
	s.clock = in.Clock

	for _, ev := range in.Events {
		s.handle(ev)
	}

	if s.dragging != nil {
		s.dragging.Rect = s.dragging.Rect.WithCenter(in.Pointer)
	}

	wL, wR := s.Tally().Weights(s.eq.Solution)
	s.tilt.Step(wL, wR)
	s.pans = PanSurfaces(s.tilt.Angle())
	s.placer.Relayout(s.blocks, s.pans)

	s.frame = s.buildFrame()
	return s.frame
}

func (s *Sim) handle(ev core.Event) {
	switch ev.Type {
	case core.EventPointerDown:
		if ev.Button == core.ButtonPrimary {
			s.pointerDown(ev.Pos)
		}
	case core.EventPointerUp:
		if ev.Button == core.ButtonPrimary {
			s.pointerUp(ev.Pos)
		}
	case core.EventKeyDown:
		s.key(ev)
	}
}

func (s *Sim) pointerDown(p core.Point) {
	// A lost release leaves the previous drag open; drop it where it is.
	if s.dragging != nil {
		s.pointerUp(core.Pt(s.dragging.Rect.Center()))
	}

	l := s.layout
	switch {
	case l.PaletteX.ContainsPoint(p):
		s.Spawn(KindX)
		return
	case l.PaletteUnit.ContainsPoint(p):
		s.Spawn(KindUnit)
		return
	case l.Clear.ContainsPoint(p):
		s.Clear()
		return
	case l.New.ContainsPoint(p):
		s.NewProblem()
		return
	case l.Check.ContainsPoint(p):
		s.CheckAnswer()
		return
	case l.InputBox.ContainsPoint(p):
		s.guess.SetFocus(true)
		return
	}

	s.guess.SetFocus(false)
	if b := s.topmostAt(p); b != nil {
		b.Detach()
		b.Selected = true
		s.dragging = b
	}
}

func (s *Sim) topmostAt(p core.Point) *Block {
	var top *Block
	for _, b := range s.blocks {
		if b.Rect.ContainsPoint(p) && (top == nil || b.ID > top.ID) {
			top = b
		}
	}
	return top
}

func (s *Sim) pointerUp(p core.Point) {
	b := s.dragging
	if b == nil {
		return
	}
	s.dragging = nil
	b.Rect = b.Rect.WithCenter(p)
	b.Selected = false

	if b.Rect.Intersects(s.layout.Trash) {
		s.remove(b)
		return
	}

	side := SideNone
	switch {
	case b.Rect.Intersects(s.pans.Left):
		side = SideLeft
	case b.Rect.Intersects(s.pans.Right):
		side = SideRight
	}
	if side == SideNone {
		s.stray(b)
		return
	}

	_, err := s.placer.Place(s.blocks, b, side, s.pans.Rect(side), b.Rect.CenterX())
	if errors.Is(err, ErrPanFull) {
		s.feedback = Feedback{Text: MsgPanFull, Tone: ToneBad}
		s.stray(b)
	}
}

func (s *Sim) stray(b *Block) {
	b.Detach()
	switch s.cfg.Blocks.Stray {
	case config.StrayDiscard:
		s.remove(b)
	case config.StrayKeep:
	default:
		b.Rect = s.layout.SpawnRect(b.Kind)
	}
}

func (s *Sim) key(ev core.Event) {
	switch ev.Key {
	case core.KeyBackspace, core.KeyDelete:
		if s.guess.Focused() {
			s.guess.Erase()
			return
		}
		s.RemoveSelected()
	case core.KeyEnter:
		if s.guess.Focused() {
			s.CheckAnswer()
		}
	case core.KeyRune:
		if s.guess.Focused() {
			s.guess.Type(ev.Rune)
		}
	}
}

func (s *Sim) remove(b *Block) {
	s.blocks = slices.DeleteFunc(s.blocks, func(o *Block) bool { return o == b })
	if s.dragging == b {
		s.dragging = nil
	}
}

// Spawn creates an unplaced block of kind k at its palette spawn point.
func (s *Sim) Spawn(k Kind) *Block {
	s.nextID++
	b := newBlock(s.nextID, k, s.layout.SpawnRect(k))
	s.blocks = append(s.blocks, b)
	return b
}

// PlaceOn spawns a block of kind k and drops it at dropX on the given pan using
// the current geometry.
func (s *Sim) PlaceOn(k Kind, side Side, dropX int) error {
	b := s.Spawn(k)
	if _, err := s.placer.Place(s.blocks, b, side, s.pans.Rect(side), dropX); err != nil {
		s.remove(b)
		return err
	}
	s.placer.Relayout(s.blocks, s.pans)
	return nil
}

// LoadEquation replaces the blocks with those of the current equation: X blocks
// then 1 blocks, dealt across the columns of each pan left to right.
func (s *Sim) LoadEquation() error {
	s.clearBlocks()
	sides := []struct {
		side      Side
		xs, units int
	}{
		{SideLeft, s.eq.LeftCoef, s.eq.LeftConst},
		{SideRight, s.eq.RightCoef, s.eq.RightConst},
	}
	cols := s.placer.Columns
	for _, sd := range sides {
		pan := s.pans.Rect(sd.side)
		kinds := slices.Repeat([]Kind{KindX}, sd.xs)
		kinds = append(kinds, slices.Repeat([]Kind{KindUnit}, sd.units)...)
		for i, k := range kinds {
			dropX := pan.X + cols[i%len(cols)] + BlockSize/2
			if err := s.PlaceOn(k, sd.side, dropX); err != nil {
				return err
			}
		}
	}
	return nil
}

// RemoveSelected deletes every selected block, ending any drag on them.
func (s *Sim) RemoveSelected() {
	s.blocks = slices.DeleteFunc(s.blocks, func(b *Block) bool { return b.Selected })
	if s.dragging != nil && s.dragging.Selected {
		s.dragging = nil
	}
}

// CheckAnswer evaluates the guess box and sets the feedback.
func (s *Sim) CheckAnswer() {
	s.feedback = CheckGuess(s.guess.Text(), s.eq.Solution)
	s.checks++
}

// Checks counts answer checks since creation, including repeated identical
// verdicts.
func (s *Sim) Checks() int { return s.checks }

// Clear removes all blocks and resets the guess box. The equation and the beam
// angle are kept.
func (s *Sim) Clear() {
	s.clearBlocks()
	s.guess.Reset()
	s.feedback = Feedback{}
}

// NewProblem clears the scene, levels the beam and generates a new equation.
func (s *Sim) NewProblem() {
	s.Clear()
	s.regenerate()
	s.tilt.Reset()
	s.pans = PanSurfaces(0)
}

// SetEquation replaces the equation without touching blocks or input.
func (s *Sim) SetEquation(eq Equation) {
	s.eq = eq
}

func (s *Sim) clearBlocks() {
	s.blocks = nil
	s.dragging = nil
}

func (s *Sim) regenerate() {
	eq, ok := Generate(s.rng, s.cfg.Generator)
	if !ok {
		s.fallbacks++
	}
	s.eq = eq
}

// Equation returns the current problem.
func (s *Sim) Equation() Equation { return s.eq }

// Fallbacks counts generator exhaustions since creation.
func (s *Sim) Fallbacks() int { return s.fallbacks }

// Angle returns the beam angle in degrees.
func (s *Sim) Angle() float64 { return s.tilt.Angle() }

// Feedback returns the current feedback message.
func (s *Sim) Feedback() Feedback { return s.feedback }

// Guess returns the guess box text.
func (s *Sim) Guess() string { return s.guess.Text() }

// Layout returns the static chrome.
func (s *Sim) Layout() Layout { return s.layout }

// Pans returns the geometry of the last tick.
func (s *Sim) Pans() Pans { return s.pans }

// Frame returns the frame built by the last tick.
func (s *Sim) Frame() Frame { return s.frame }

// Tally counts the placed blocks.
func (s *Sim) Tally() Tally { return Count(s.blocks) }

// Blocks returns copies of all live blocks in creation order.
func (s *Sim) Blocks() []Block {
	out := make([]Block, len(s.blocks))
	for i, b := range s.blocks {
		out[i] = *b
	}
	return out
}

// Dragging reports whether a block is being dragged.
func (s *Sim) Dragging() bool { return s.dragging != nil }
