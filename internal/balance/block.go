package balance

import (
	"image/color"

	"github.com/vovakirdan/balancing-act/internal/core"
)

// Kind distinguishes the two block types.
type Kind int

const (
	KindX    Kind = iota // weighs the hidden solution
	KindUnit             // weighs 1
)

// KindInfo is the presentation and weight data for one kind.
type KindInfo struct {
	Label       string
	UsesUnknown bool
	Cell        core.Color // terminal color
	Fill        color.RGBA // raster color
	Text        color.RGBA // raster label color
}

var kindTable = map[Kind]KindInfo{
	KindX: {
		Label:       "X",
		UsesUnknown: true,
		Cell:        core.ColorPurple,
		Fill:        color.RGBA{0x77, 0x00, 0xC7, 0xFF},
		Text:        color.RGBA{0xFF, 0xFF, 0xFF, 0xFF},
	},
	KindUnit: {
		Label: "1",
		Cell:  core.ColorTeal,
		Fill:  color.RGBA{0x00, 0xE6, 0xDE, 0xFF},
		Text:  color.RGBA{0x14, 0x28, 0x28, 0xFF},
	},
}

// Kinds lists block kinds in palette order.
func Kinds() []Kind {
	return []Kind{KindX, KindUnit}
}

// Info returns the table entry for k.
func (k Kind) Info() KindInfo {
	return kindTable[k]
}

// Weight returns the weight of one block of this kind given the hidden solution.
func (k Kind) Weight(solution int) int {
	if k.Info().UsesUnknown {
		return solution
	}
	return 1
}

func (k Kind) String() string {
	return k.Info().Label
}

// Side identifies a pan.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "none"
	}
}

// NoSlot marks an unset column or level.
const NoSlot = -1

// Block is one draggable weight. A block is placed when it has a side and a
// column; the level is derived during relayout.
type Block struct {
	ID       int
	Kind     Kind
	Rect     core.Rect
	Side     Side
	Column   int
	Level    int
	Selected bool
}

func newBlock(id int, k Kind, r core.Rect) *Block {
	return &Block{ID: id, Kind: k, Rect: r, Column: NoSlot, Level: NoSlot}
}

// Placed reports whether the block belongs to a pan column.
func (b *Block) Placed() bool {
	return b.Side != SideNone && b.Column != NoSlot
}

// Detach removes the block from any pan.
func (b *Block) Detach() {
	b.Side = SideNone
	b.Column = NoSlot
	b.Level = NoSlot
}

// Tally counts placed blocks per side and kind.
type Tally struct {
	LeftX, LeftUnits   int
	RightX, RightUnits int
}

// Add counts a placed block. Unplaced blocks are ignored.
func (t *Tally) Add(b *Block) {
	if !b.Placed() {
		return
	}
	switch {
	case b.Side == SideLeft && b.Kind == KindX:
		t.LeftX++
	case b.Side == SideLeft:
		t.LeftUnits++
	case b.Side == SideRight && b.Kind == KindX:
		t.RightX++
	default:
		t.RightUnits++
	}
}

// Count tallies a set of blocks.
func Count(blocks []*Block) Tally {
	var t Tally
	for _, b := range blocks {
		t.Add(b)
	}
	return t
}

// Weights returns the left and right pan weights for the hidden solution.
func (t Tally) Weights(solution int) (int, int) {
	left := t.LeftX*KindX.Weight(solution) + t.LeftUnits*KindUnit.Weight(solution)
	right := t.RightX*KindX.Weight(solution) + t.RightUnits*KindUnit.Weight(solution)
	return left, right
}
