package balance

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/balancing-act/internal/config"
)

// Equation is one instance of aL*x + bL = aR*x + bR with its integer solution.
type Equation struct {
	LeftCoef, LeftConst   int
	RightCoef, RightConst int
	Solution              int
}

// Fallback is returned when sampling runs out of attempts.
var Fallback = Equation{LeftCoef: 2, LeftConst: 3, RightCoef: 1, RightConst: 5, Solution: 2}

// Generate samples a solvable equation. Coefficients differ and are not both
// zero, and the solution satisfies the equation exactly. If no instance lands in
// range within cfg.Attempts tries, Fallback is returned and ok is false.
func Generate(rng *rand.Rand, cfg config.GeneratorConfig) (eq Equation, ok bool) {
	for i := 0; i < cfg.Attempts; i++ {
		aL := rng.Intn(cfg.MaxCoefficient + 1)
		aR := rng.Intn(cfg.MaxCoefficient + 1)
		if aL == aR {
			// Covers both-zero too.
			continue
		}
		bL := rng.Intn(cfg.MaxConstant + 1)
		x := rng.Intn(cfg.MaxSolution + 1)
		bR := aL*x + bL - aR*x
		if bR < 0 || bR > cfg.MaxRightConstant {
			continue
		}
		return Equation{LeftCoef: aL, LeftConst: bL, RightCoef: aR, RightConst: bR, Solution: x}, true
	}
	return Fallback, false
}

// Valid reports whether the equation satisfies its own invariants.
func (e Equation) Valid() bool {
	if e.LeftCoef == e.RightCoef {
		return false
	}
	return e.LeftCoef*e.Solution+e.LeftConst == e.RightCoef*e.Solution+e.RightConst
}

// Left formats the left-hand side.
func (e Equation) Left() string {
	return FormatSide(e.LeftCoef, e.LeftConst)
}

// Right formats the right-hand side.
func (e Equation) Right() string {
	return FormatSide(e.RightCoef, e.RightConst)
}

func (e Equation) String() string {
	return e.Left() + " = " + e.Right()
}

// FormatSide renders a*x + b. The coefficient is always shown except for the
// bare "x" of a = 1.
func FormatSide(a, b int) string {
	if a == 1 {
		return fmt.Sprintf("x + %d", b)
	}
	return fmt.Sprintf("%dx + %d", a, b)
}

// Summaries returns the "Left: ..." and "Right: ..." pan content lines.
func (t Tally) Summaries() (string, string) {
	return "Left: " + FormatSide(t.LeftX, t.LeftUnits), "Right: " + FormatSide(t.RightX, t.RightUnits)
}
