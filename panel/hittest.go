package panel

import (
	"github.com/iw2rmb/inkwell/internal/grapheme"
	"github.com/iw2rmb/inkwell/richtext"
)

func (m Model) buttonAt(x int) (toolbarItem, bool) {
	for _, it := range m.buttons {
		if x >= it.x0 && x < it.x1 {
			return it, true
		}
	}
	return toolbarItem{}, false
}

func (m Model) inBounds(x, y int) bool {
	if x < 0 || y < toolbarRows {
		return false
	}
	if m.width > 0 && x >= m.width {
		return false
	}
	if m.height > 0 && y >= m.height {
		return false
	}
	return true
}

func (m Model) clampToBounds(x, y int) (int, int) {
	x = max(x, 0)
	if m.width > 0 {
		x = min(x, m.width-1)
	}
	y = max(y, toolbarRows)
	if m.height > 0 {
		y = min(y, m.height-1)
	}
	return x, y
}

// screenToDocPos maps a screen cell to a document position. Rows past the
// end map to the end of the document; cells past a line's end map to its
// last offset.
func (m Model) screenToDocPos(x, y int) richtext.Pos {
	c := m.state.CurrentContent()
	row := y - toolbarRows
	if m.height > 0 {
		row += m.viewport.YOffset
	}
	if row < 0 || len(m.lines) == 0 {
		return c.StartPos()
	}
	if row >= len(m.lines) {
		return c.EndPos()
	}

	l := m.lines[row]
	b := c.Blocks()[l.block]
	col := x - l.textOffset()
	off := l.start
	acc := 0
	for off < l.end {
		w := grapheme.Width(b.Char(off))
		if acc+w > col {
			break
		}
		acc += w
		off++
	}
	// A click past a wrapped segment lands before its trailing boundary.
	if off == l.end && !l.last && off > l.start {
		off--
	}
	return richtext.Pos{Key: b.Key(), Offset: off}
}
