package balance

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/balancing-act/internal/config"
)

func TestGenerateInvariants(t *testing.T) {
	cfg := config.DefaultScaleConfig().Generator

	for seed := int64(0); seed < 500; seed++ {
		rng := rand.New(rand.NewSource(seed))
		eq, _ := Generate(rng, cfg)

		if !eq.Valid() {
			t.Fatalf("seed %d: invalid equation %+v", seed, eq)
		}
		if eq.LeftCoef == 0 && eq.RightCoef == 0 {
			t.Fatalf("seed %d: both coefficients zero", seed)
		}
		if eq.RightConst < 0 || eq.RightConst > cfg.MaxRightConstant {
			t.Fatalf("seed %d: right constant %d out of range", seed, eq.RightConst)
		}
		if eq.Solution < 0 || eq.Solution > cfg.MaxSolution {
			t.Fatalf("seed %d: solution %d out of range", seed, eq.Solution)
		}
		if eq.LeftCoef > cfg.MaxCoefficient || eq.RightCoef > cfg.MaxCoefficient {
			t.Fatalf("seed %d: coefficient out of range %+v", seed, eq)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	cfg := config.DefaultScaleConfig().Generator
	a, _ := Generate(rand.New(rand.NewSource(7)), cfg)
	b, _ := Generate(rand.New(rand.NewSource(7)), cfg)
	if a != b {
		t.Errorf("same seed gave %v and %v", a, b)
	}
}

func TestGenerateFallback(t *testing.T) {
	cfg := config.DefaultScaleConfig().Generator
	cfg.Attempts = 0

	eq, ok := Generate(rand.New(rand.NewSource(1)), cfg)
	if ok {
		t.Error("expected exhaustion")
	}
	if eq != Fallback {
		t.Errorf("got %+v, want fallback %+v", eq, Fallback)
	}
	if !Fallback.Valid() {
		t.Error("fallback must satisfy its own equation")
	}
}

func TestFormatSide(t *testing.T) {
	tests := []struct {
		a, b int
		want string
	}{
		{0, 5, "0x + 5"},
		{1, 5, "x + 5"},
		{3, 0, "3x + 0"},
		{2, 3, "2x + 3"},
	}

	for _, tt := range tests {
		if got := FormatSide(tt.a, tt.b); got != tt.want {
			t.Errorf("FormatSide(%d, %d) = %q, want %q", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestEquationString(t *testing.T) {
	if got := Fallback.String(); got != "2x + 3 = x + 5" {
		t.Errorf("got %q", got)
	}
}

func TestTallySummaries(t *testing.T) {
	tally := Tally{LeftX: 2, LeftUnits: 3, RightX: 1, RightUnits: 5}
	left, right := tally.Summaries()
	if left != "Left: 2x + 3" || right != "Right: x + 5" {
		t.Errorf("got %q / %q", left, right)
	}

	wL, wR := tally.Weights(2)
	if wL != 7 || wR != 7 {
		t.Errorf("weights = %d, %d, want 7, 7", wL, wR)
	}
}
