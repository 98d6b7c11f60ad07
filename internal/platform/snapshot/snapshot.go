// Package snapshot renders a balance frame to a PNG image at the reference
// 1200x800 resolution.
package snapshot

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fogleman/gg"

	"github.com/vovakirdan/balancing-act/internal/balance"
	"github.com/vovakirdan/balancing-act/internal/core"
	"github.com/vovakirdan/balancing-act/internal/platform/fonts"
)

const (
	radius      = 10.0
	buttonRound = 12.0
)

// Renderer draws frames with a fixed set of font faces.
type Renderer struct {
	faces fonts.Faces
}

// New loads the fonts.
func New() (*Renderer, error) {
	faces, err := fonts.Load()
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}
	return &Renderer{faces: faces}, nil
}

// Render draws f and returns the image.
func (r *Renderer) Render(f balance.Frame) image.Image {
	return r.draw(f).Image()
}

// WritePNG encodes the rendered frame to w.
func (r *Renderer) WritePNG(w io.Writer, f balance.Frame) error {
	if err := r.draw(f).EncodePNG(w); err != nil {
		return fmt.Errorf("snapshot: encode: %w", err)
	}
	return nil
}

// Save writes the rendered frame to path, creating parent directories.
func (r *Renderer) Save(path string, f balance.Frame) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("snapshot: create directory: %w", err)
	}
	if err := r.draw(f).SavePNG(path); err != nil {
		return fmt.Errorf("snapshot: save %s: %w", path, err)
	}
	return nil
}

// DefaultDir returns ~/.balance/snapshots.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("snapshot: home directory: %w", err)
	}
	return filepath.Join(home, ".balance", "snapshots"), nil
}

// FileName returns a timestamped snapshot name.
func FileName(t time.Time) string {
	return fmt.Sprintf("balance_%s.png", t.Format("20060102_150405"))
}

func (r *Renderer) draw(f balance.Frame) *gg.Context {
	dc := gg.NewContext(balance.WorldW, balance.WorldH)
	dc.SetColor(balance.ColorBackground)
	dc.Clear()

	l := f.Layout
	r.drawHeader(dc, f)
	r.drawInput(dc, f)
	r.drawScale(dc, f)

	for _, btn := range []struct {
		rect  core.Rect
		label string
	}{
		{l.Clear, "Clear"},
		{l.New, "New Problem"},
		{l.Check, "Check"},
	} {
		roundRect(dc, btn.rect, buttonRound, balance.ColorButton, balance.ColorButtonLine)
		cx, cy := btn.rect.Center()
		dc.SetFontFace(r.faces.Small)
		dc.SetColor(balance.ColorButtonText)
		dc.DrawStringAnchored(btn.label, float64(cx), float64(cy), 0.5, 0.5)
	}

	r.drawTrash(dc, l.Trash)

	for _, b := range f.Blocks {
		r.drawBlock(dc, b.Kind, b.Rect)
	}
	for _, b := range f.Blocks {
		if b.Selected {
			o := b.Rect.Inflate(balance.OutlinePad, balance.OutlinePad)
			dc.SetLineWidth(2)
			dc.SetColor(balance.ColorSelection)
			dc.DrawRoundedRectangle(float64(o.X), float64(o.Y), float64(o.W), float64(o.H), radius)
			dc.Stroke()
		}
	}
	return dc
}

func (r *Renderer) drawHeader(dc *gg.Context, f balance.Frame) {
	l := f.Layout

	dc.SetColor(balance.ColorText)
	dc.SetFontFace(r.faces.Title)
	dc.DrawStringAnchored("Balancing Act!", float64(l.Title.X), float64(l.Title.Y), 0.5, 0.5)
	dc.SetFontFace(r.faces.Small)
	dc.DrawStringAnchored("Click and drag to add to the scale!", float64(l.Subtitle.X), float64(l.Subtitle.Y), 0.5, 0.5)

	dc.SetColor(balance.ColorEquation)
	dc.SetFontFace(r.faces.Equation)
	dc.DrawStringAnchored(f.Equation(), float64(l.Equation.X), float64(l.Equation.Y), 0.5, 0.5)

	for _, k := range balance.Kinds() {
		r.drawBlockIn(dc, k, l.Palette(k), balance.ColorButtonLine)
	}

	r.summaryBox(dc, f.LeftSummary, l.LeftBox, false)
	r.summaryBox(dc, f.RightSummary, l.RightBox, true)
}

func (r *Renderer) summaryBox(dc *gg.Context, text string, at core.Point, alignRight bool) {
	const pad = 10.0
	dc.SetFontFace(r.faces.Bold)
	w, h := dc.MeasureString(text)
	x := float64(at.X)
	if alignRight {
		x -= w + 2*pad
	}
	y := float64(at.Y)

	dc.SetColor(balance.ColorHighlight)
	dc.DrawRoundedRectangle(x, y, w+2*pad, h+2*pad, radius)
	dc.FillPreserve()
	dc.SetColor(balance.ColorButtonLine)
	dc.SetLineWidth(2)
	dc.Stroke()

	dc.SetColor(balance.ColorText)
	dc.DrawStringAnchored(text, x+pad, y+pad+h/2, 0, 0.5)
}

func (r *Renderer) drawInput(dc *gg.Context, f balance.Frame) {
	l := f.Layout
	dc.SetFontFace(r.faces.Small)
	dc.SetColor(balance.ColorText)
	dc.DrawStringAnchored("x =", float64(l.InputLabel.X), float64(l.InputLabel.Y), 0, 1)

	roundRect(dc, l.InputBox, radius, balance.ColorButton, balance.ColorButtonLine)
	box := l.InputBox
	_, cy := box.Center()
	dc.SetColor(balance.ColorText)
	dc.DrawStringAnchored(f.Guess, float64(box.X+10), float64(cy), 0, 0.5)

	if f.CaretVisible {
		w, _ := dc.MeasureString(f.Guess)
		x := float64(box.X+10) + w + 2
		dc.SetLineWidth(2)
		dc.DrawLine(x, float64(box.Y+8), x, float64(box.Bottom()-8))
		dc.Stroke()
	}

	if f.Feedback.Text != "" {
		dc.SetColor(balance.ToneColor(f.Feedback.Tone))
		dc.DrawStringAnchored(f.Feedback.Text, float64(l.Feedback.X), float64(l.Feedback.Y), 0, 1)
	}
}

func (r *Renderer) drawScale(dc *gg.Context, f balance.Frame) {
	dc.SetColor(balance.ColorWood)
	dc.SetLineWidth(balance.BeamThickness)
	dc.DrawLine(f.BeamLeft.X, f.BeamLeft.Y, f.BeamRight.X, f.BeamRight.Y)
	dc.Stroke()

	// Fulcrum hangs apex-down below the beam.
	top := float64(balance.FulcrumTopY)
	cx := float64(balance.CenterX)
	dc.MoveTo(cx-balance.FulcrumHalfW, top)
	dc.LineTo(cx+balance.FulcrumHalfW, top)
	dc.LineTo(cx, top+balance.FulcrumH)
	dc.ClosePath()
	dc.SetColor(balance.ColorWood)
	dc.FillPreserve()
	dc.SetColor(balance.ColorLine)
	dc.SetLineWidth(2)
	dc.Stroke()

	dc.SetFontFace(r.faces.Equation)
	dc.SetColor(balance.ColorBad)
	if f.Balanced {
		dc.SetColor(balance.ColorGood)
	}
	dc.DrawStringAnchored(f.Sign.Glyph(), cx, top+balance.FulcrumH*0.55, 0.5, 0.5)

	for _, pan := range []core.Rect{f.PanLeft, f.PanRight} {
		shadow := core.NewRect(pan.X, pan.Y+6+4, pan.W, pan.H-8)
		fillRound(dc, shadow, radius, balance.ColorTrayShadow)
		roundRect(dc, pan, radius, balance.ColorWood, balance.ColorLine)

		postX := float64(pan.CenterX() - balance.PostW/2)
		postY := float64(int(balance.BeamHeightAt(postX, f.Angle)) - balance.PostH)
		dc.SetColor(balance.ColorWood)
		dc.DrawRectangle(postX, postY, balance.PostW, balance.PostH)
		dc.Fill()
	}
}

func (r *Renderer) drawTrash(dc *gg.Context, body core.Rect) {
	roundRect(dc, body, buttonRound, balance.ColorTrash, balance.ColorTrashLine)
	lid := core.NewRect(body.X+12, body.Y-12, body.W-24, 14)
	roundRect(dc, lid, 6, balance.ColorTrash, balance.ColorTrashLine)
	handle := core.NewRect(lid.CenterX()-12, lid.Y-7, 24, 7)
	fillRound(dc, handle, 3, balance.ColorTrashLine)

	dc.SetFontFace(r.faces.Small)
	dc.SetColor(balance.ColorTrashText)
	dc.DrawStringAnchored("Trash", float64(body.CenterX()), float64(body.Bottom()+6), 0.5, 1)
}

func (r *Renderer) drawBlock(dc *gg.Context, k balance.Kind, rect core.Rect) {
	r.drawBlockIn(dc, k, rect, balance.ColorBlockLine)
}

func (r *Renderer) drawBlockIn(dc *gg.Context, k balance.Kind, rect core.Rect, line color.Color) {
	info := k.Info()
	roundRect(dc, rect, radius, info.Fill, line)
	cx, cy := rect.Center()
	dc.SetFontFace(r.faces.Bold)
	dc.SetColor(info.Text)
	dc.DrawStringAnchored(info.Label, float64(cx), float64(cy), 0.5, 0.5)
}

func roundRect(dc *gg.Context, rect core.Rect, rad float64, fill, line color.Color) {
	dc.DrawRoundedRectangle(float64(rect.X), float64(rect.Y), float64(rect.W), float64(rect.H), rad)
	dc.SetColor(fill)
	dc.FillPreserve()
	dc.SetColor(line)
	dc.SetLineWidth(2)
	dc.Stroke()
}

func fillRound(dc *gg.Context, rect core.Rect, rad float64, fill color.Color) {
	dc.DrawRoundedRectangle(float64(rect.X), float64(rect.Y), float64(rect.W), float64(rect.H), rad)
	dc.SetColor(fill)
	dc.Fill()
}
