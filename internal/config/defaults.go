package config

import (
	_ "embed"
)

//go:embed defaults/balance.yaml
var defaultScaleYAML []byte

// DefaultScaleConfig returns the built-in configuration.
func DefaultScaleConfig() ScaleConfig {
	return ScaleConfig{
		Physics: PhysicsConfig{
			Gain:           2.0,
			MaxTilt:        12.0,
			Ease:           0.15,
			BalanceEpsilon: 1e-9,
		},
		Pan: PanConfig{
			MaxStack: 10,
		},
		Generator: GeneratorConfig{
			Attempts:         200,
			MaxCoefficient:   4,
			MaxConstant:      9,
			MaxSolution:      9,
			MaxRightConstant: 15,
		},
		Input: InputConfig{
			MaxLength:    6,
			CaretBlinkMS: 500,
		},
		Blocks: BlocksConfig{
			Stray: StrayReturn,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultScaleYAML
}
