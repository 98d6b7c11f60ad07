package balance

import (
	"math"
	"strings"

	"github.com/vovakirdan/balancing-act/internal/core"
)

// Terminal glyphs.
const (
	BeamChar    = '━'
	PanChar     = '▀'
	PostChar    = '┃'
	FulcrumChar = '▼'
	BlockChar   = '█'
	CaretChar   = '_'
)

// MinCols and MinRows are the smallest terminal that can show the scene.
const (
	MinCols = 60
	MinRows = 24
)

// Grid maps world pixels onto a cell grid of a given size.
type Grid struct {
	Cols, Rows int
}

func (g Grid) sx() float64 { return float64(WorldW) / float64(max(g.Cols, 1)) }
func (g Grid) sy() float64 { return float64(WorldH) / float64(max(g.Rows, 1)) }

// Cell converts a world position into a cell position.
func (g Grid) Cell(x, y float64) (int, int) {
	return int(math.Floor(x / g.sx())), int(math.Floor(y / g.sy()))
}

// World converts a cell into the world position of its center.
func (g Grid) World(cx, cy int) core.Point {
	return core.Pt(int((float64(cx)+0.5)*g.sx()), int((float64(cy)+0.5)*g.sy()))
}

// Rect converts a world rect into cells, never smaller than one cell.
func (g Grid) Rect(r core.Rect) core.Rect {
	x0, y0 := g.Cell(float64(r.X), float64(r.Y))
	x1, y1 := g.Cell(float64(r.Right()), float64(r.Bottom()))
	return core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}

// Render draws the frame onto a character screen, scaling the world to fit.
func (f Frame) Render(dst *core.Screen) {
	dst.Clear()
	g := Grid{Cols: dst.Width(), Rows: dst.Height()}
	if g.Cols < MinCols || g.Rows < MinRows {
		dst.DrawTextCentered(g.Cols/2, g.Rows/2, "Terminal too small", core.ColorBrightRed)
		return
	}
	l := f.Layout

	f.drawChrome(dst, g)
	f.drawScale(dst, g)

	tr := g.Rect(l.Trash)
	dst.DrawBox(tr, core.ColorGray)
	dst.DrawTextCentered(tr.CenterX(), tr.Bottom(), "Trash", core.ColorGray)

	for _, b := range f.Blocks {
		drawBlock(dst, g, b)
	}
}

func (f Frame) drawChrome(dst *core.Screen, g Grid) {
	l := f.Layout
	text := func(p core.Point, s string, c core.Color) {
		x, y := g.Cell(float64(p.X), float64(p.Y))
		dst.DrawTextColored(x, y, s, c)
	}
	centered := func(p core.Point, s string, c core.Color) {
		x, y := g.Cell(float64(p.X), float64(p.Y))
		dst.DrawTextCentered(x, y, s, c)
	}

	centered(l.Title, "Balancing Act!", core.ColorBrightWhite)
	centered(l.Subtitle, "Click and drag to add to the scale!", core.ColorGray)
	centered(l.Equation, f.Equation(), core.ColorBrightWhite)

	// Summary boxes, right one aligned to its right edge.
	text(l.LeftBox, "["+f.LeftSummary+"]", core.ColorDefault)
	rx, ry := g.Cell(float64(l.RightBox.X), float64(l.RightBox.Y))
	right := "[" + f.RightSummary + "]"
	dst.DrawText(rx-len([]rune(right)), ry, right)

	// Guess box on one row: "x = [12_   ]".
	text(l.InputLabel, "x =", core.ColorDefault)
	box := g.Rect(l.InputBox)
	inner := f.Guess
	if f.CaretVisible {
		inner += string(CaretChar)
	}
	width := max(box.W-2, 1)
	if n := len([]rune(inner)); n < width {
		inner += strings.Repeat(" ", width-n)
	}
	boxColor := core.ColorGray
	if f.GuessFocused {
		boxColor = core.ColorBrightBlue
	}
	dst.DrawTextColored(box.X, box.Y, "["+inner+"]", boxColor)

	if f.Feedback.Text != "" {
		c := core.ColorRed
		if f.Feedback.Tone == ToneGood {
			c = core.ColorGreen
		}
		text(l.Feedback, f.Feedback.Text, c)
	}

	for _, k := range Kinds() {
		sw := g.Rect(l.Palette(k))
		info := k.Info()
		dst.DrawRect(sw, BlockChar, info.Cell)
		dst.SetColored(sw.CenterX(), sw.Y+sw.H/2, []rune(info.Label)[0], core.ColorBrightWhite)
	}

	for _, btn := range []struct {
		r     core.Rect
		label string
	}{
		{l.Clear, "Clear"},
		{l.New, "New Problem"},
		{l.Check, "Check"},
	} {
		r := g.Rect(btn.r)
		dst.DrawTextCentered(r.CenterX(), r.Y+r.H/2, "[ "+btn.label+" ]", core.ColorBrightWhite)
	}
}

func (f Frame) drawScale(dst *core.Screen, g Grid) {
	// Fulcrum: inverted triangle hanging from the beam, indicator inside.
	indicator := core.ColorRed
	if f.Balanced {
		indicator = core.ColorGreen
	}
	_, top := g.Cell(0, FulcrumTopY)
	_, bottom := g.Cell(0, FulcrumTopY+FulcrumH)
	cx, _ := g.Cell(CenterX, 0)
	halfCells := int(float64(FulcrumHalfW) / g.sx())
	rows := max(bottom-top, 1)
	for y := top; y < bottom; y++ {
		half := (bottom - y) * halfCells / rows
		dst.DrawHLine(cx-half, y, 2*half+1, FulcrumChar, core.ColorWood)
	}
	_, glyphY := g.Cell(0, FulcrumTopY+FulcrumH*0.55)
	dst.DrawTextCentered(cx, glyphY, f.Sign.Glyph(), indicator)

	// Beam sampled per column.
	x0, _ := g.Cell(f.BeamLeft.X, 0)
	x1, _ := g.Cell(f.BeamRight.X, 0)
	for x := x0; x <= x1; x++ {
		wx := (float64(x) + 0.5) * g.sx()
		_, y := g.Cell(wx, BeamHeightAt(wx, f.Angle))
		dst.SetColored(x, y, BeamChar, core.ColorWood)
	}

	// Trays and the posts joining them to the beam.
	for _, pan := range []core.Rect{f.PanLeft, f.PanRight} {
		r := g.Rect(pan)
		dst.DrawHLine(r.X, r.Y, r.W, PanChar, core.ColorWood)
		px, _ := g.Cell(float64(pan.CenterX()), 0)
		_, beam := g.Cell(0, BeamHeightAt(float64(pan.CenterX()), f.Angle))
		if beam-r.Y-1 > 0 {
			dst.DrawVLine(px, r.Y+1, beam-r.Y-1, PostChar, core.ColorWood)
		}
	}
}

func drawBlock(dst *core.Screen, g Grid, b BlockView) {
	r := g.Rect(b.Rect)
	info := b.Kind.Info()
	if b.Selected {
		dst.DrawBox(g.Rect(b.Rect.Inflate(OutlinePad, OutlinePad)), core.ColorBrightBlue)
	}
	dst.DrawRect(r, BlockChar, info.Cell)
	dst.SetColored(r.CenterX(), r.Y+r.H/2, []rune(info.Label)[0], core.ColorBrightWhite)
}
