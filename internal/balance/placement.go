package balance

import (
	"errors"
	"sort"

	"github.com/vovakirdan/balancing-act/internal/core"
)

// ErrPanFull is returned when every column of a pan is at capacity.
var ErrPanFull = errors.New("pan is full")

// Columns are the left offsets of block slots inside a pan, in pan-local pixels.
type Columns []int

// NewColumns divides the usable pan width into as many block-wide columns as fit,
// centering the group.
func NewColumns(panW, margin, block int) Columns {
	usable := panW - 2*margin
	n := max(1, usable/block)
	start := margin + (usable-n*block)/2

	cols := make(Columns, n)
	for i := range cols {
		cols[i] = start + i*block
	}
	return cols
}

// DefaultColumns returns the columns of the reference pan.
func DefaultColumns() Columns {
	return NewColumns(PanW, PanMargin, BlockSize)
}

// Nearest returns the index of the column whose center is closest to localX.
// Ties go to the lower index.
func (c Columns) Nearest(localX int) int {
	best, bestDist := 0, -1
	for i, off := range c {
		d := core.Abs(off + BlockSize/2 - localX)
		if bestDist < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// ProbeOrder lists all column indices by increasing distance from start, lower
// index first on ties.
func (c Columns) ProbeOrder(start int) []int {
	order := make([]int, len(c))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		da, db := core.Abs(order[a]-start), core.Abs(order[b]-start)
		if da != db {
			return da < db
		}
		return order[a] < order[b]
	})
	return order
}

// Placer assigns dropped blocks to pan columns.
type Placer struct {
	Columns  Columns
	MaxStack int
}

// NewPlacer creates a placer for the reference pan.
func NewPlacer(maxStack int) Placer {
	return Placer{Columns: DefaultColumns(), MaxStack: maxStack}
}

// Height returns the number of blocks resting in a column, excluding skip.
func (p Placer) Height(blocks []*Block, side Side, col int, skip *Block) int {
	n := 0
	for _, b := range blocks {
		if b != skip && b.Side == side && b.Column == col {
			n++
		}
	}
	return n
}

// Place puts b into the column of pan nearest to dropX (absolute x), probing
// outward when it is full. On success b gets side and column; level is assigned
// by the next relayout. On ErrPanFull b is detached.
func (p Placer) Place(blocks []*Block, b *Block, side Side, pan core.Rect, dropX int) (int, error) {
	nearest := p.Columns.Nearest(dropX - pan.X)
	for _, col := range p.Columns.ProbeOrder(nearest) {
		if p.Height(blocks, side, col, b) < p.MaxStack {
			b.Side = side
			b.Column = col
			b.Level = NoSlot
			return col, nil
		}
	}
	b.Detach()
	return NoSlot, ErrPanFull
}
