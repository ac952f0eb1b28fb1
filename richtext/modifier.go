package richtext

import (
	"slices"
	"strings"

	"github.com/iw2rmb/inkwell/internal/grapheme"
)

// The functions in this file transform Content. They never touch history or
// selection; callers push the result onto an EditorState.

func blockSpan(c *Content, sel Selection) (si, ei int) {
	return c.IndexOf(sel.StartKey()), c.IndexOf(sel.EndKey())
}

func setBlockType(c *Content, sel Selection, t BlockType) *Content {
	si, ei := blockSpan(c, sel)
	if si < 0 || ei < si {
		return c
	}
	repl := make([]*Block, 0, ei-si+1)
	for _, b := range c.blocks[si : ei+1] {
		nb := b.withType(t)
		if !nb.typ.IsList() {
			nb.depth = 0
		}
		repl = append(repl, nb)
	}
	return c.replaceBlocks(si, ei+1, repl...)
}

func adjustDepth(c *Content, sel Selection, delta, maxDepth int) *Content {
	si, ei := blockSpan(c, sel)
	if si < 0 || ei < si {
		return c
	}
	changed := false
	repl := make([]*Block, 0, ei-si+1)
	for _, b := range c.blocks[si : ei+1] {
		if !b.typ.IsList() {
			repl = append(repl, b)
			continue
		}
		d := clampInt(b.depth+delta, 0, maxDepth)
		if d != b.depth {
			changed = true
		}
		repl = append(repl, b.withDepth(d))
	}
	if !changed {
		return c
	}
	return c.replaceBlocks(si, ei+1, repl...)
}

func applyInlineStyle(c *Content, sel Selection, style InlineStyle, add bool) *Content {
	si, ei := blockSpan(c, sel)
	if si < 0 || ei < si {
		return c
	}
	start, end := sel.Start(), sel.End()
	repl := make([]*Block, 0, ei-si+1)
	for i := si; i <= ei; i++ {
		b := c.blocks[i]
		from, to := 0, b.Len()
		if i == si {
			from = clampInt(start.Offset, 0, b.Len())
		}
		if i == ei {
			to = clampInt(end.Offset, 0, b.Len())
		}
		if from >= to {
			repl = append(repl, b)
			continue
		}
		nb := b.clone()
		nb.styles = slices.Clone(b.styles)
		for j := from; j < to; j++ {
			if add {
				nb.styles[j] = nb.styles[j].With(style)
			} else {
				nb.styles[j] = nb.styles[j].Without(style)
			}
		}
		repl = append(repl, nb)
	}
	return c.replaceBlocks(si, ei+1, repl...)
}

// removeRange deletes the selected text. The merged block keeps the key,
// type and depth of the start block.
func removeRange(c *Content, sel Selection) (*Content, Pos) {
	start, end := sel.Start(), sel.End()
	if sel.IsCollapsed() {
		return c, start
	}
	si, ei := blockSpan(c, sel)
	if si < 0 || ei < si {
		return c, start
	}
	sb, eb := c.blocks[si], c.blocks[ei]
	hc, hs := sb.head(start.Offset)
	tc, ts := eb.tail(end.Offset)

	nb := sb.clone()
	var at int
	nb.chars, nb.styles, at = joinClusters(hc, hs, tc, ts)
	return c.replaceBlocks(si, ei+1, nb), Pos{Key: sb.key, Offset: at}
}

// insertText inserts text at p with every cluster carrying style. Newlines
// split the block; new blocks inherit the type and depth of the block at p.
func insertText(c *Content, p Pos, text string, style StyleSet) (*Content, Pos) {
	i := c.IndexOf(p.Key)
	if i < 0 {
		return c, p
	}
	b := c.blocks[i]
	hc, hs := b.head(p.Offset)
	tc, ts := b.tail(p.Offset)

	lines := strings.Split(text, "\n")
	if len(lines) == 1 {
		ins := grapheme.Split(lines[0])
		lc, ls, _ := joinClusters(hc, hs, ins, repeatStyle(style, len(ins)))
		nb := b.clone()
		var at int
		nb.chars, nb.styles, at = joinClusters(lc, ls, tc, ts)
		return c.replaceBlocks(i, i+1, nb), Pos{Key: b.key, Offset: at}
	}

	taken := make(map[string]int, len(c.index)+len(lines))
	for k, v := range c.index {
		taken[k] = v
	}

	repl := make([]*Block, 0, len(lines))
	first := grapheme.Split(lines[0])
	fb := b.clone()
	fb.chars, fb.styles, _ = joinClusters(hc, hs, first, repeatStyle(style, len(first)))
	repl = append(repl, fb)

	for _, line := range lines[1 : len(lines)-1] {
		chars := grapheme.Split(line)
		k := genKey(taken)
		taken[k] = -1
		repl = append(repl, &Block{
			key:    k,
			typ:    b.typ,
			depth:  b.depth,
			chars:  chars,
			styles: repeatStyle(style, len(chars)),
		})
	}

	last := grapheme.Split(lines[len(lines)-1])
	chars, styles, at := joinClusters(last, repeatStyle(style, len(last)), tc, ts)
	k := genKey(taken)
	repl = append(repl, &Block{
		key:    k,
		typ:    b.typ,
		depth:  b.depth,
		chars:  chars,
		styles: styles,
	})
	return c.replaceBlocks(i, i+1, repl...), Pos{Key: k, Offset: at}
}

// joinClusters concatenates two cluster runs and re-segments the pair that
// meets at the seam, so a combining mark typed after its base becomes one
// cluster. A merged cluster takes the style of its first part. The returned
// offset is where the right run starts in the result, or the end of the
// merged cluster when the seam disappeared.
func joinClusters(lc []string, ls []StyleSet, rc []string, rs []StyleSet) ([]string, []StyleSet, int) {
	if len(lc) == 0 || len(rc) == 0 {
		return slices.Concat(lc, rc), slices.Concat(ls, rs), len(lc)
	}
	last := len(lc) - 1
	seam := grapheme.Split(lc[last] + rc[0])
	seamStyles := make([]StyleSet, len(seam))
	for i := range seamStyles {
		if i == 0 {
			seamStyles[i] = ls[last]
		} else {
			seamStyles[i] = rs[0]
		}
	}
	chars := slices.Concat(lc[:last], seam, rc[1:])
	styles := slices.Concat(ls[:last], seamStyles, rs[1:])
	return chars, styles, last + max(len(seam)-1, 1)
}

func repeatStyle(style StyleSet, n int) []StyleSet {
	out := make([]StyleSet, n)
	for i := range out {
		out[i] = style
	}
	return out
}
