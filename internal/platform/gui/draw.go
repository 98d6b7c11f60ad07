package gui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/balancing-act/internal/balance"
	"github.com/vovakirdan/balancing-act/internal/core"
	"github.com/vovakirdan/balancing-act/internal/platform/fonts"
)

type textFaces struct {
	title, equation, bold, small *text.GoXFace
}

func newTextFaces(f fonts.Faces) textFaces {
	return textFaces{
		title:    text.NewGoXFace(f.Title),
		equation: text.NewGoXFace(f.Equation),
		bold:     text.NewGoXFace(f.Bold),
		small:    text.NewGoXFace(f.Small),
	}
}

func (g *Game) drawFrame(dst *ebiten.Image, f balance.Frame) {
	dst.Fill(balance.ColorBackground)
	l := f.Layout

	drawText(dst, "Balancing Act!", g.faces.title, float64(l.Title.X), float64(l.Title.Y), text.AlignCenter, text.AlignCenter, balance.ColorText)
	drawText(dst, "Click and drag to add to the scale!", g.faces.small, float64(l.Subtitle.X), float64(l.Subtitle.Y), text.AlignCenter, text.AlignCenter, balance.ColorText)
	drawText(dst, f.Equation(), g.faces.equation, float64(l.Equation.X), float64(l.Equation.Y), text.AlignCenter, text.AlignCenter, balance.ColorEquation)

	for _, k := range balance.Kinds() {
		g.drawBlock(dst, k, l.Palette(k), balance.ColorButtonLine)
	}
	g.summary(dst, f.LeftSummary, l.LeftBox, false)
	g.summary(dst, f.RightSummary, l.RightBox, true)

	g.drawInput(dst, f)
	g.drawScale(dst, f)

	for _, btn := range []struct {
		rect  core.Rect
		label string
	}{
		{l.Clear, "Clear"},
		{l.New, "New Problem"},
		{l.Check, "Check"},
	} {
		box(dst, btn.rect, balance.ColorButton, balance.ColorButtonLine)
		cx, cy := btn.rect.Center()
		drawText(dst, btn.label, g.faces.small, float64(cx), float64(cy), text.AlignCenter, text.AlignCenter, balance.ColorButtonText)
	}

	g.drawTrash(dst, l.Trash)

	for _, b := range f.Blocks {
		g.drawBlock(dst, b.Kind, b.Rect, balance.ColorBlockLine)
		if b.Selected {
			o := b.Rect.Inflate(balance.OutlinePad, balance.OutlinePad)
			vector.StrokeRect(dst, float32(o.X), float32(o.Y), float32(o.W), float32(o.H), 2, balance.ColorSelection, true)
		}
	}
}

func (g *Game) summary(dst *ebiten.Image, s string, at core.Point, alignRight bool) {
	const pad = 10
	w, h := text.Measure(s, g.faces.bold, 0)
	x := float64(at.X)
	if alignRight {
		x -= w + 2*pad
	}
	y := float64(at.Y)
	r := core.NewRect(int(x), int(y), int(w)+2*pad, int(h)+2*pad)
	box(dst, r, balance.ColorHighlight, balance.ColorButtonLine)
	drawText(dst, s, g.faces.bold, x+pad, y+pad+h/2, text.AlignStart, text.AlignCenter, balance.ColorText)
}

func (g *Game) drawInput(dst *ebiten.Image, f balance.Frame) {
	l := f.Layout
	drawText(dst, "x =", g.faces.small, float64(l.InputLabel.X), float64(l.InputLabel.Y), text.AlignStart, text.AlignStart, balance.ColorText)

	in := l.InputBox
	box(dst, in, balance.ColorButton, balance.ColorButtonLine)
	_, cy := in.Center()
	drawText(dst, f.Guess, g.faces.small, float64(in.X+10), float64(cy), text.AlignStart, text.AlignCenter, balance.ColorText)

	if f.CaretVisible {
		w, _ := text.Measure(f.Guess, g.faces.small, 0)
		x := float32(float64(in.X+10) + w + 2)
		vector.StrokeLine(dst, x, float32(in.Y+8), x, float32(in.Bottom()-8), 2, balance.ColorText, false)
	}

	if f.Feedback.Text != "" {
		drawText(dst, f.Feedback.Text, g.faces.small, float64(l.Feedback.X), float64(l.Feedback.Y), text.AlignStart, text.AlignStart, balance.ToneColor(f.Feedback.Tone))
	}
}

func (g *Game) drawScale(dst *ebiten.Image, f balance.Frame) {
	vector.StrokeLine(dst,
		float32(f.BeamLeft.X), float32(f.BeamLeft.Y),
		float32(f.BeamRight.X), float32(f.BeamRight.Y),
		balance.BeamThickness, balance.ColorWood, true)

	// Fulcrum: inverted triangle filled one scanline at a time.
	top := balance.FulcrumTopY
	for dy := range balance.FulcrumH {
		half := float32(balance.FulcrumHalfW) * float32(balance.FulcrumH-dy) / balance.FulcrumH
		y := float32(top + dy)
		vector.StrokeLine(dst, balance.CenterX-half, y, balance.CenterX+half, y, 1, balance.ColorWood, false)
	}
	apex := float32(top + balance.FulcrumH)
	vector.StrokeLine(dst, balance.CenterX-balance.FulcrumHalfW, float32(top), balance.CenterX, apex, 2, balance.ColorLine, true)
	vector.StrokeLine(dst, balance.CenterX+balance.FulcrumHalfW, float32(top), balance.CenterX, apex, 2, balance.ColorLine, true)

	signColor := balance.ColorBad
	if f.Balanced {
		signColor = balance.ColorGood
	}
	drawText(dst, f.Sign.Glyph(), g.faces.equation, balance.CenterX, float64(top)+balance.FulcrumH*0.55, text.AlignCenter, text.AlignCenter, signColor)

	for _, pan := range []core.Rect{f.PanLeft, f.PanRight} {
		vector.DrawFilledRect(dst, float32(pan.X), float32(pan.Y+10), float32(pan.W), float32(pan.H-8), balance.ColorTrayShadow, false)
		box(dst, pan, balance.ColorWood, balance.ColorLine)

		postX := float64(pan.CenterX() - balance.PostW/2)
		postY := float64(int(balance.BeamHeightAt(postX, f.Angle)) - balance.PostH)
		vector.DrawFilledRect(dst, float32(postX), float32(postY), balance.PostW, balance.PostH, balance.ColorWood, false)
	}
}

func (g *Game) drawTrash(dst *ebiten.Image, body core.Rect) {
	box(dst, body, balance.ColorTrash, balance.ColorTrashLine)
	lid := core.NewRect(body.X+12, body.Y-12, body.W-24, 14)
	box(dst, lid, balance.ColorTrash, balance.ColorTrashLine)
	vector.DrawFilledRect(dst, float32(lid.CenterX()-12), float32(lid.Y-7), 24, 7, balance.ColorTrashLine, false)
	drawText(dst, "Trash", g.faces.small, float64(body.CenterX()), float64(body.Bottom()+6), text.AlignCenter, text.AlignStart, balance.ColorTrashText)
}

func (g *Game) drawBlock(dst *ebiten.Image, k balance.Kind, r core.Rect, line color.Color) {
	info := k.Info()
	box(dst, r, info.Fill, line)
	cx, cy := r.Center()
	drawText(dst, info.Label, g.faces.bold, float64(cx), float64(cy), text.AlignCenter, text.AlignCenter, info.Text)
}

func box(dst *ebiten.Image, r core.Rect, fill, line color.Color) {
	x, y, w, h := float32(r.X), float32(r.Y), float32(r.W), float32(r.H)
	vector.DrawFilledRect(dst, x, y, w, h, fill, false)
	vector.StrokeRect(dst, x, y, w, h, 2, line, true)
}

func drawText(dst *ebiten.Image, s string, face text.Face, x, y float64, ax, ay text.Align, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = ax
	op.SecondaryAlign = ay
	text.Draw(dst, s, face, op)
}
