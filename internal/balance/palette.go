package balance

import "image/color"

// Raster colors shared by the window and snapshot renderers.
var (
	ColorBackground = color.RGBA{242, 244, 247, 255}
	ColorWood       = color.RGBA{193, 154, 107, 255}
	ColorTrayShadow = color.RGBA{170, 130, 85, 255}
	ColorLine       = color.RGBA{60, 60, 60, 255}
	ColorGood       = color.RGBA{0, 105, 30, 255}
	ColorBad        = color.RGBA{133, 15, 0, 255}
	ColorText       = color.RGBA{30, 40, 50, 255}
	ColorEquation   = color.RGBA{20, 30, 50, 255}
	ColorHighlight  = color.RGBA{255, 255, 240, 255}
	ColorButton     = color.RGBA{255, 255, 255, 255}
	ColorButtonLine = color.RGBA{70, 90, 120, 255}
	ColorButtonText = color.RGBA{20, 40, 60, 255}
	ColorTrash      = color.RGBA{200, 200, 200, 255}
	ColorTrashLine  = color.RGBA{160, 160, 160, 255}
	ColorTrashText  = color.RGBA{70, 70, 70, 255}
	ColorBlockLine  = color.RGBA{40, 40, 60, 255}
	ColorSelection  = color.RGBA{50, 120, 220, 255}
)

// ToneColor returns the raster color of a feedback tone.
func ToneColor(t Tone) color.RGBA {
	if t == ToneGood {
		return ColorGood
	}
	return ColorBad
}
