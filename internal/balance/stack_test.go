package balance

import (
	"testing"

	"github.com/vovakirdan/balancing-act/internal/core"
)

func placed(id int, side Side, col int) *Block {
	b := newBlock(id, KindUnit, core.Rect{})
	b.Side = side
	b.Column = col
	return b
}

func TestRelayoutPositions(t *testing.T) {
	p := NewPlacer(10)
	pans := PanSurfaces(5)
	blocks := []*Block{placed(3, SideLeft, 1), placed(1, SideLeft, 1), placed(2, SideRight, 4)}

	p.Relayout(blocks, pans)

	tests := []struct {
		b     *Block
		level int
		rect  core.Rect
	}{
		{blocks[1], 0, core.NewRect(pans.Left.X+74, pans.Left.Y-44, 44, 44)},
		{blocks[0], 1, core.NewRect(pans.Left.X+74, pans.Left.Y-88, 44, 44)},
		{blocks[2], 0, core.NewRect(pans.Right.X+206, pans.Right.Y-44, 44, 44)},
	}
	for _, tt := range tests {
		if tt.b.Level != tt.level || tt.b.Rect != tt.rect {
			t.Errorf("block %d: level=%d rect=%+v, want level=%d rect=%+v",
				tt.b.ID, tt.b.Level, tt.b.Rect, tt.level, tt.rect)
		}
	}
}

func TestRelayoutIdempotent(t *testing.T) {
	p := NewPlacer(10)
	pans := PanSurfaces(-3.2)
	blocks := []*Block{placed(1, SideLeft, 0), placed(2, SideLeft, 0), placed(3, SideRight, 2)}

	p.Relayout(blocks, pans)
	first := make([]Block, len(blocks))
	for i, b := range blocks {
		first[i] = *b
	}
	p.Relayout(blocks, pans)
	for i, b := range blocks {
		if *b != first[i] {
			t.Errorf("block %d changed: %+v -> %+v", b.ID, first[i], *b)
		}
	}
}

func TestRelayoutFollowsTilt(t *testing.T) {
	p := NewPlacer(10)
	b := placed(1, SideRight, 0)

	p.Relayout([]*Block{b}, PanSurfaces(0))
	level := b.Rect.Y
	p.Relayout([]*Block{b}, PanSurfaces(10))
	if b.Rect.Y <= level {
		t.Errorf("right pan should sink with positive tilt: %d -> %d", level, b.Rect.Y)
	}
}

func TestRelayoutDetachesOverflow(t *testing.T) {
	p := NewPlacer(3)
	var blocks []*Block
	for i := 1; i <= 5; i++ {
		blocks = append(blocks, placed(i, SideLeft, 2))
	}
	unplaced := newBlock(6, KindX, core.NewRect(1, 2, 44, 44))
	blocks = append(blocks, unplaced)

	p.Relayout(blocks, PanSurfaces(0))

	for _, b := range blocks[:3] {
		if !b.Placed() {
			t.Errorf("block %d should stay placed", b.ID)
		}
	}
	for _, b := range blocks[3:5] {
		if b.Placed() || b.Level != NoSlot {
			t.Errorf("block %d should be detached", b.ID)
		}
	}
	if unplaced.Rect != core.NewRect(1, 2, 44, 44) {
		t.Error("unplaced block must keep its rect")
	}
}
