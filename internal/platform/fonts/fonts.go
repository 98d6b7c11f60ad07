// Package fonts loads the Go font faces used by the raster frontends.
package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Faces are the four text sizes of the scene.
type Faces struct {
	Title    font.Face // 48pt bold
	Equation font.Face // 40pt
	Bold     font.Face // 24pt bold, block labels and summaries
	Small    font.Face // 18pt, buttons and messages
}

// Load parses the embedded Go fonts.
func Load() (Faces, error) {
	bold, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return Faces{}, fmt.Errorf("fonts: parse bold: %w", err)
	}
	regular, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return Faces{}, fmt.Errorf("fonts: parse regular: %w", err)
	}

	return Faces{
		Title:    face(bold, 48),
		Equation: face(regular, 40),
		Bold:     face(bold, 24),
		Small:    face(regular, 18),
	}, nil
}

func face(f *truetype.Font, size float64) font.Face {
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
