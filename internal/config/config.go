// Package config provides YAML/TOML configuration loading for the balance scale:
// tilt physics, pan capacity, problem generation ranges and input limits.
package config

// ScaleConfig contains all tunable parameters of the simulation.
type ScaleConfig struct {
	Physics   PhysicsConfig   `yaml:"physics" toml:"physics"`
	Pan       PanConfig       `yaml:"pan" toml:"pan"`
	Generator GeneratorConfig `yaml:"generator" toml:"generator"`
	Input     InputConfig     `yaml:"input" toml:"input"`
	Blocks    BlocksConfig    `yaml:"blocks" toml:"blocks"`
}

// PhysicsConfig defines how weight imbalance turns into beam rotation.
type PhysicsConfig struct {
	Gain           float64 `yaml:"gain" toml:"gain"`                       // Degrees of target tilt per unit of weight difference
	MaxTilt        float64 `yaml:"max_tilt" toml:"max_tilt"`               // Target clamp, degrees
	Ease           float64 `yaml:"ease" toml:"ease"`                       // Fraction of the remaining distance covered per tick, (0, 1]
	BalanceEpsilon float64 `yaml:"balance_epsilon" toml:"balance_epsilon"` // Tolerance for the = indicator
}

// PanConfig defines pan capacity.
type PanConfig struct {
	MaxStack int `yaml:"max_stack" toml:"max_stack"` // Blocks per column
}

// GeneratorConfig defines the ranges equations are sampled from.
type GeneratorConfig struct {
	Attempts         int `yaml:"attempts" toml:"attempts"`
	MaxCoefficient   int `yaml:"max_coefficient" toml:"max_coefficient"`       // aL, aR in [0, n]
	MaxConstant      int `yaml:"max_constant" toml:"max_constant"`             // bL in [0, n]
	MaxSolution      int `yaml:"max_solution" toml:"max_solution"`             // x in [0, n]
	MaxRightConstant int `yaml:"max_right_constant" toml:"max_right_constant"` // accepted bR in [0, n]
}

// InputConfig defines the guess box behavior.
type InputConfig struct {
	MaxLength    int `yaml:"max_length" toml:"max_length"`
	CaretBlinkMS int `yaml:"caret_blink_ms" toml:"caret_blink_ms"`
}

// BlocksConfig defines block lifecycle options.
type BlocksConfig struct {
	Stray StrayPolicy `yaml:"stray" toml:"stray"`
}

// StrayPolicy decides what happens to a block released outside both pans and the
// trash, or rejected by a full pan.
type StrayPolicy string

const (
	StrayReturn  StrayPolicy = "return"  // back to its palette spawn point
	StrayKeep    StrayPolicy = "keep"    // frozen where dropped
	StrayDiscard StrayPolicy = "discard" // removed from the scene
)

// Valid reports whether p is a known policy.
func (p StrayPolicy) Valid() bool {
	switch p {
	case StrayReturn, StrayKeep, StrayDiscard:
		return true
	}
	return false
}
