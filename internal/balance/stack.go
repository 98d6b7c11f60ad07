package balance

import (
	"sort"

	"github.com/vovakirdan/balancing-act/internal/core"
)

type slot struct {
	side Side
	col  int
}

// Relayout assigns stack levels and screen rectangles to every placed block for
// the given pan geometry. Within a column blocks stack in creation order; those
// beyond the placer's capacity are detached. Unplaced blocks keep their rects.
func (p Placer) Relayout(blocks []*Block, pans Pans) {
	columns := make(map[slot][]*Block)
	for _, b := range blocks {
		if !b.Placed() {
			continue
		}
		if b.Column < 0 || b.Column >= len(p.Columns) {
			b.Detach()
			continue
		}
		k := slot{b.Side, b.Column}
		columns[k] = append(columns[k], b)
	}

	for k, stack := range columns {
		sort.Slice(stack, func(i, j int) bool { return stack[i].ID < stack[j].ID })
		pan := pans.Rect(k.side)
		for level, b := range stack {
			if level >= p.MaxStack {
				b.Detach()
				continue
			}
			b.Level = level
			b.Rect = core.NewRect(pan.X+p.Columns[k.col], pan.Y-(level+1)*BlockSize, BlockSize, BlockSize)
		}
	}
}
