package panel

import (
	"fmt"
	"strings"

	"github.com/iw2rmb/inkwell/internal/grapheme"
	"github.com/iw2rmb/inkwell/richtext"
)

// visualLine is one screen row of content: a wrapped segment of a block.
type visualLine struct {
	block int // index into Content.Blocks
	start int // grapheme offset, inclusive
	end   int // grapheme offset, exclusive

	// prefix is drawn before the first segment of a block; continuation
	// segments get blanks of the same width.
	prefix  string
	indentW int
	prefixW int
	pad     int // alignment padding, in cells

	first, last bool
}

func (l visualLine) textOffset() int { return l.pad + l.indentW + l.prefixW }

// avail is the number of cells a block's text may use on one row. One cell
// stays free for the cursor at the end of a line.
func (m *Model) avail(indentW, prefixW int) int {
	if m.width <= 0 {
		return 0
	}
	return max(m.width-indentW-prefixW-1, 1)
}

func (m *Model) layout() []visualLine {
	c := m.state.CurrentContent()
	blocks := c.Blocks()
	var lines []visualLine

	// Ordered list counters, one per depth, reset by any other block.
	var counters []int
	for bi, b := range blocks {
		prefix := ""
		indentW := 0
		switch t := b.Type(); {
		case t == richtext.OrderedListItem:
			d := b.Depth()
			for len(counters) <= d {
				counters = append(counters, 0)
			}
			counters = counters[:d+1]
			counters[d]++
			prefix = fmt.Sprintf("%d. ", counters[d])
			indentW = d * 2
		case t == richtext.UnorderedListItem:
			counters = counters[:min(len(counters), b.Depth())]
			prefix = "• "
			if b.Depth() > 0 {
				prefix = "◦ "
			}
			indentW = b.Depth() * 2
		case t == richtext.Blockquote:
			counters = counters[:0]
			prefix = "│ "
		default:
			counters = counters[:0]
		}
		prefixW := grapheme.StringWidth(prefix)

		segs := wrapBlock(b, m.avail(indentW, prefixW))
		align := float64(m.classStyle(m.cfg.BlockStyleFn(b)).GetAlignHorizontal())
		for si, seg := range segs {
			l := visualLine{
				block:   bi,
				start:   seg[0],
				end:     seg[1],
				prefix:  prefix,
				indentW: indentW,
				prefixW: prefixW,
				first:   si == 0,
				last:    si == len(segs)-1,
			}
			if m.width > 0 && align > 0 {
				free := m.avail(indentW, prefixW) - blockWidth(b, seg[0], seg[1])
				if free > 0 {
					l.pad = int(float64(free) * align)
				}
			}
			lines = append(lines, l)
		}
	}
	return lines
}

// wrapBlock splits a block into [start, end) segments no wider than avail
// cells, breaking after the last space when there is one. avail <= 0
// disables wrapping.
func wrapBlock(b *richtext.Block, avail int) [][2]int {
	n := b.Len()
	if avail <= 0 || n == 0 {
		return [][2]int{{0, n}}
	}
	var segs [][2]int
	start, w, lastSpace := 0, 0, -1
	for i := 0; i < n; i++ {
		cw := grapheme.Width(b.Char(i))
		for w+cw > avail && i > start {
			end := i
			if lastSpace >= start {
				end = lastSpace + 1
			}
			segs = append(segs, [2]int{start, end})
			start = end
			w = blockWidth(b, start, i)
			lastSpace = -1
		}
		w += cw
		if grapheme.IsSpace(b.Char(i)) {
			lastSpace = i
		}
	}
	return append(segs, [2]int{start, n})
}

func blockWidth(b *richtext.Block, start, end int) int {
	w := 0
	for i := start; i < end; i++ {
		w += grapheme.Width(b.Char(i))
	}
	return w
}

func (m *Model) isPlaceholderVisible() bool {
	c := m.state.CurrentContent()
	return m.cfg.Placeholder != "" && c.BlockCount() == 1 &&
		!c.HasText() && c.FirstBlock().Type() == richtext.Unstyled
}

// lineFor returns the index of the visual line holding p. An offset at a
// wrap boundary belongs to the following segment.
func (m *Model) lineFor(p richtext.Pos) int {
	bi := m.state.CurrentContent().IndexOf(p.Key)
	for i, l := range m.lines {
		if l.block != bi {
			continue
		}
		if p.Offset < l.end || l.last {
			return i
		}
	}
	return 0
}

func (m *Model) cursorRow() int {
	return m.lineFor(m.state.Selection().Focus)
}

func blanks(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
