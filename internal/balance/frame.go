package balance

import (
	"time"

	"github.com/vovakirdan/balancing-act/internal/core"
)

// BlockView is a block as drawn.
type BlockView struct {
	ID       int
	Kind     Kind
	Rect     core.Rect
	Selected bool
	Placed   bool
}

// Frame is the read-only result of one tick.
type Frame struct {
	Angle     float64 // degrees, positive lowers the right pan
	BeamLeft  core.Vec
	BeamRight core.Vec
	PanLeft   core.Rect
	PanRight  core.Rect

	// Unselected blocks first, then selected, each in creation order.
	Blocks []BlockView

	Sign     Sign
	Balanced bool

	EquationLeft  string
	EquationRight string
	LeftSummary   string
	RightSummary  string

	Guess        string
	GuessFocused bool
	CaretVisible bool
	Feedback     Feedback
	Checks       int // Answer checks so far; frontends react to changes

	Layout Layout
}

// Equation returns the full equation line.
func (f Frame) Equation() string {
	return f.EquationLeft + " = " + f.EquationRight
}

func (s *Sim) buildFrame() Frame {
	tally := s.Tally()
	wL, wR := tally.Weights(s.eq.Solution)
	sign := Compare(wL, wR, s.cfg.Physics.BalanceEpsilon)
	left, right := tally.Summaries()

	f := Frame{
		Angle:         s.pans.Angle,
		BeamLeft:      s.pans.BeamLeft,
		BeamRight:     s.pans.BeamRight,
		PanLeft:       s.pans.Left,
		PanRight:      s.pans.Right,
		Blocks:        make([]BlockView, 0, len(s.blocks)),
		Sign:          sign,
		Balanced:      sign == SignEqual,
		EquationLeft:  s.eq.Left(),
		EquationRight: s.eq.Right(),
		LeftSummary:   left,
		RightSummary:  right,
		Guess:         s.guess.Text(),
		GuessFocused:  s.guess.Focused(),
		CaretVisible:  s.guess.Focused() && caretOn(s.clock, s.cfg.Input.CaretBlinkMS),
		Feedback:      s.feedback,
		Checks:        s.checks,
		Layout:        s.layout,
	}

	for _, selected := range []bool{false, true} {
		for _, b := range s.blocks {
			if b.Selected != selected {
				continue
			}
			f.Blocks = append(f.Blocks, BlockView{
				ID:       b.ID,
				Kind:     b.Kind,
				Rect:     b.Rect,
				Selected: b.Selected,
				Placed:   b.Placed(),
			})
		}
	}
	return f
}

func caretOn(clock time.Duration, periodMS int) bool {
	if periodMS <= 0 {
		return true
	}
	return (clock.Milliseconds()/int64(periodMS))%2 == 0
}
