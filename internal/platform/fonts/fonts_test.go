package fonts

import (
	"testing"

	"golang.org/x/image/font"
)

func TestLoad(t *testing.T) {
	f, err := Load()
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		face font.Face
	}{
		{"title", f.Title},
		{"equation", f.Equation},
		{"bold", f.Bold},
		{"small", f.Small},
	}
	prev := 1 << 30
	for _, tt := range tests {
		if tt.face == nil {
			t.Fatalf("%s face is nil", tt.name)
		}
		h := tt.face.Metrics().Height.Ceil()
		if h <= 0 || h > prev {
			t.Errorf("%s height %d not in descending order (prev %d)", tt.name, h, prev)
		}
		prev = h
	}

	if w := font.MeasureString(f.Bold, "X"); w <= 0 {
		t.Errorf("bold X width = %v", w)
	}
}
