package balance

import (
	"math"

	"github.com/vovakirdan/balancing-act/internal/core"
)

// World geometry, in screen pixels of the reference 1200x800 scene.
// Frontends with other resolutions scale from these coordinates.
const (
	WorldW = 1200
	WorldH = 800

	BeamY         = 600 // Beam pivot height
	FulcrumTopY   = 616
	FulcrumHalfW  = 90
	FulcrumH      = 80
	LeftX         = 160 // Beam left end
	RightX        = WorldW - 160
	CenterX       = (LeftX + RightX) / 2
	BeamThickness = 18

	PanW         = 280
	PanTrayH     = 24
	PanTopMargin = 12 // Gap between the beam line and the tray
	PanMargin    = 14 // Unused border inside the tray on each side
	PostW        = 50
	PostH        = 25

	BlockSize  = 44
	SpawnDrop  = 10 // Spawn distance below a palette swatch
	OutlinePad = 6  // Selection outline growth
)

// Layout is the static screen chrome. It never moves; the simulation consumes it
// only for hit-testing and hands it to renderers unchanged.
type Layout struct {
	PaletteX    core.Rect
	PaletteUnit core.Rect
	InputBox    core.Rect
	InputLabel  core.Point
	Feedback    core.Point
	Clear       core.Rect
	New         core.Rect
	Check       core.Rect
	Trash       core.Rect
	Title       core.Point // center
	Subtitle    core.Point // center
	Equation    core.Point // center
	LeftBox     core.Point // top-left of the left summary box
	RightBox    core.Point // top-right of the right summary box
}

// DefaultLayout returns the reference scene layout.
func DefaultLayout() Layout {
	return Layout{
		PaletteX:    core.NewRect(WorldW/2-70, 260, 56, 56),
		PaletteUnit: core.NewRect(WorldW/2+14, 260, 56, 56),
		InputBox:    core.NewRect(WorldW/2-60, 200, 120, 44),
		InputLabel:  core.Pt(WorldW/2-110, 206),
		Feedback:    core.Pt(WorldW/2+80, 208),
		Clear:       core.NewRect(CenterX-330, WorldH-80, 130, 48),
		New:         core.NewRect(CenterX-90, WorldH-80, 180, 48),
		Check:       core.NewRect(WorldW/2+170, WorldH-80, 130, 48),
		Trash:       core.NewRect(20, 20, 110, 78),
		Title:       core.Pt(WorldW/2, 50),
		Subtitle:    core.Pt(WorldW/2, 96),
		Equation:    core.Pt(WorldW/2, 160),
		LeftBox:     core.Pt(40, 140),
		RightBox:    core.Pt(WorldW-40, 140),
	}
}

// Palette returns the swatch that spawns blocks of kind k.
func (l Layout) Palette(k Kind) core.Rect {
	if k == KindX {
		return l.PaletteX
	}
	return l.PaletteUnit
}

// SpawnRect is where a freshly created block of kind k appears.
func (l Layout) SpawnRect(k Kind) core.Rect {
	p := l.Palette(k)
	return core.NewRect(p.CenterX()-BlockSize/2, p.Bottom()+SpawnDrop, BlockSize, BlockSize)
}

// BeamHeightAt returns the y coordinate of the beam line at x for a tilt of
// thetaDeg degrees. Positive angles lower the right end.
func BeamHeightAt(x, thetaDeg float64) float64 {
	return BeamY + (x-CenterX)*math.Tan(thetaDeg*math.Pi/180)
}

// Pans is the tilt-dependent geometry of one frame.
type Pans struct {
	Angle     float64 // degrees
	Left      core.Rect
	Right     core.Rect
	BeamLeft  core.Vec
	BeamRight core.Vec
}

// PanSurfaces computes beam endpoints and tray rectangles for a tilt angle.
// Trays hang from the beam at their own centers and stay level.
func PanSurfaces(thetaDeg float64) Pans {
	yL := BeamHeightAt(LeftX+PanW/2, thetaDeg)
	yR := BeamHeightAt(RightX-PanW/2, thetaDeg)

	return Pans{
		Angle:     thetaDeg,
		Left:      core.NewRect(LeftX, int(yL-PanTrayH-PanTopMargin), PanW, PanTrayH),
		Right:     core.NewRect(RightX-PanW, int(yR-PanTrayH-PanTopMargin), PanW, PanTrayH),
		BeamLeft:  core.Vec{X: LeftX, Y: BeamHeightAt(LeftX, thetaDeg)},
		BeamRight: core.Vec{X: RightX, Y: BeamHeightAt(RightX, thetaDeg)},
	}
}

// Rect returns the tray of the given side. SideNone yields an empty rect.
func (p Pans) Rect(side Side) core.Rect {
	switch side {
	case SideLeft:
		return p.Left
	case SideRight:
		return p.Right
	default:
		return core.Rect{}
	}
}
