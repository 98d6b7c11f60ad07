package config

import "fmt"

// ValidationError contains details about a rejected configuration value.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks that every value keeps the simulation well defined.
func (c ScaleConfig) Validate() error {
	p := c.Physics
	if p.Ease <= 0 || p.Ease > 1 {
		return ValidationError{Code: "INVALID_EASE", Message: fmt.Sprintf("physics.ease must be in (0, 1], got %g", p.Ease)}
	}
	if p.MaxTilt <= 0 || p.MaxTilt >= 90 {
		return ValidationError{Code: "INVALID_TILT", Message: fmt.Sprintf("physics.max_tilt must be in (0, 90), got %g", p.MaxTilt)}
	}
	if p.Gain < 0 {
		return ValidationError{Code: "INVALID_GAIN", Message: fmt.Sprintf("physics.gain must not be negative, got %g", p.Gain)}
	}
	if p.BalanceEpsilon < 0 {
		return ValidationError{Code: "INVALID_EPSILON", Message: "physics.balance_epsilon must not be negative"}
	}

	if c.Pan.MaxStack < 1 {
		return ValidationError{Code: "INVALID_STACK", Message: fmt.Sprintf("pan.max_stack must be at least 1, got %d", c.Pan.MaxStack)}
	}

	g := c.Generator
	if g.Attempts < 1 {
		return ValidationError{Code: "INVALID_ATTEMPTS", Message: "generator.attempts must be at least 1"}
	}
	if g.MaxCoefficient < 1 {
		// Two distinct coefficients need at least the range [0, 1].
		return ValidationError{Code: "INVALID_RANGE", Message: "generator.max_coefficient must be at least 1"}
	}
	if g.MaxConstant < 0 || g.MaxSolution < 0 || g.MaxRightConstant < 0 {
		return ValidationError{Code: "INVALID_RANGE", Message: "generator ranges must not be negative"}
	}

	if c.Input.MaxLength < 1 {
		return ValidationError{Code: "INVALID_INPUT", Message: "input.max_length must be at least 1"}
	}
	if c.Input.CaretBlinkMS < 1 {
		return ValidationError{Code: "INVALID_INPUT", Message: "input.caret_blink_ms must be positive"}
	}

	if !c.Blocks.Stray.Valid() {
		return ValidationError{Code: "INVALID_STRAY", Message: fmt.Sprintf("blocks.stray must be return, keep or discard, got %q", c.Blocks.Stray)}
	}
	return nil
}
