package balance

import (
	"math"

	"github.com/vovakirdan/balancing-act/internal/config"
	"github.com/vovakirdan/balancing-act/internal/core"
)

// Tilt eases the beam angle toward a target derived from the weight difference.
type Tilt struct {
	cfg   config.PhysicsConfig
	theta float64
}

// NewTilt creates a level beam.
func NewTilt(cfg config.PhysicsConfig) *Tilt {
	return &Tilt{cfg: cfg}
}

// Target is the clamped angle the beam settles at for the given weights.
func (t *Tilt) Target(wL, wR int) float64 {
	return core.ClampF(float64(wR-wL)*t.cfg.Gain, -t.cfg.MaxTilt, t.cfg.MaxTilt)
}

// Step advances the angle one tick and returns it in degrees.
func (t *Tilt) Step(wL, wR int) float64 {
	t.theta += (t.Target(wL, wR) - t.theta) * t.cfg.Ease
	return t.theta
}

// Angle returns the current angle in degrees. Positive lowers the right pan.
func (t *Tilt) Angle() float64 {
	return t.theta
}

// Reset levels the beam.
func (t *Tilt) Reset() {
	t.theta = 0
}

// Sign is the fulcrum indicator.
type Sign int

const (
	SignEqual   Sign = iota // =
	SignLess                // left lighter
	SignGreater             // left heavier
)

// Compare orders the raw pan weights. The eased angle is never consulted.
func Compare(wL, wR int, eps float64) Sign {
	d := float64(wL - wR)
	switch {
	case math.Abs(d) < eps:
		return SignEqual
	case d < 0:
		return SignLess
	default:
		return SignGreater
	}
}

// Glyph returns the symbol drawn on the fulcrum.
func (s Sign) Glyph() string {
	switch s {
	case SignLess:
		return "<"
	case SignGreater:
		return ">"
	default:
		return "="
	}
}

func (s Sign) String() string {
	return s.Glyph()
}
