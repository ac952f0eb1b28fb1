package richtext

import (
	"strings"

	"github.com/iw2rmb/inkwell/internal/grapheme"
)

// Block is one structural unit of the document. Blocks are immutable.
type Block struct {
	key    string
	typ    BlockType
	depth  int
	chars  []string
	styles []StyleSet
}

// NewBlock builds an unstyled-character block of the given type.
func NewBlock(key string, typ BlockType, text string) *Block {
	chars := grapheme.Split(text)
	return &Block{
		key:    key,
		typ:    normalizeType(typ),
		chars:  chars,
		styles: make([]StyleSet, len(chars)),
	}
}

func normalizeType(t BlockType) BlockType {
	if t == "" {
		return Unstyled
	}
	return t
}

func (b *Block) Key() string     { return b.key }
func (b *Block) Type() BlockType { return b.typ }
func (b *Block) Depth() int      { return b.depth }

// Len returns the number of grapheme clusters in the block.
func (b *Block) Len() int { return len(b.chars) }

func (b *Block) Text() string { return grapheme.Join(b.chars) }

// Char returns the cluster at offset i, or "" when out of range.
func (b *Block) Char(i int) string {
	if i < 0 || i >= len(b.chars) {
		return ""
	}
	return b.chars[i]
}

// StyleAt returns the inline styles of the cluster at offset i.
func (b *Block) StyleAt(i int) StyleSet {
	if i < 0 || i >= len(b.styles) {
		return StyleSet{}
	}
	return b.styles[i]
}

// StyleRun is a maximal run of clusters sharing one StyleSet.
type StyleRun struct {
	Start, End int
	Styles     StyleSet
}

// Runs splits the block text into runs of identical inline styles.
func (b *Block) Runs() []StyleRun {
	if len(b.chars) == 0 {
		return nil
	}
	var out []StyleRun
	start := 0
	for i := 1; i <= len(b.chars); i++ {
		if i < len(b.chars) && b.styles[i].Equal(b.styles[start]) {
			continue
		}
		out = append(out, StyleRun{Start: start, End: i, Styles: b.styles[start]})
		start = i
	}
	return out
}

// Slice returns the text of clusters [start, end).
func (b *Block) Slice(start, end int) string {
	start = clampInt(start, 0, len(b.chars))
	end = clampInt(end, start, len(b.chars))
	return grapheme.Join(b.chars[start:end])
}

func (b *Block) clone() *Block {
	c := *b
	return &c
}

func (b *Block) withType(t BlockType) *Block {
	c := b.clone()
	c.typ = normalizeType(t)
	return c
}

func (b *Block) withDepth(d int) *Block {
	c := b.clone()
	c.depth = d
	return c
}

// head returns the clusters and styles before offset.
func (b *Block) head(offset int) ([]string, []StyleSet) {
	offset = clampInt(offset, 0, len(b.chars))
	return b.chars[:offset:offset], b.styles[:offset:offset]
}

// tail returns the clusters and styles from offset on.
func (b *Block) tail(offset int) ([]string, []StyleSet) {
	offset = clampInt(offset, 0, len(b.chars))
	return b.chars[offset:], b.styles[offset:]
}

// Content is an immutable ordered list of blocks.
type Content struct {
	blocks []*Block
	index  map[string]int
}

// NewContent builds content from blocks. An empty list yields a single
// empty unstyled block so the document always has a cursor home.
func NewContent(blocks ...*Block) *Content {
	if len(blocks) == 0 {
		blocks = []*Block{NewBlock(genKey(nil), Unstyled, "")}
	}
	c := &Content{blocks: blocks}
	c.reindex()
	return c
}

// ContentFromText creates one unstyled block per line of text.
func ContentFromText(text string) *Content {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	blocks := make([]*Block, 0, len(lines))
	seen := make(map[string]int, len(lines))
	for _, line := range lines {
		k := genKey(seen)
		seen[k] = len(blocks)
		blocks = append(blocks, NewBlock(k, Unstyled, line))
	}
	return NewContent(blocks...)
}

func (c *Content) reindex() {
	c.index = make(map[string]int, len(c.blocks))
	for i, b := range c.blocks {
		c.index[b.key] = i
	}
}

func (c *Content) replaceBlocks(from, to int, repl ...*Block) *Content {
	out := make([]*Block, 0, len(c.blocks)-(to-from)+len(repl))
	out = append(out, c.blocks[:from]...)
	out = append(out, repl...)
	out = append(out, c.blocks[to:]...)
	return NewContent(out...)
}

// Blocks returns the blocks in document order. The slice must not be modified.
func (c *Content) Blocks() []*Block { return c.blocks }

func (c *Content) BlockCount() int { return len(c.blocks) }

// BlockForKey returns the block with key, or nil.
func (c *Content) BlockForKey(key string) *Block {
	i, ok := c.index[key]
	if !ok {
		return nil
	}
	return c.blocks[i]
}

// IndexOf returns the position of key in document order, or -1.
func (c *Content) IndexOf(key string) int {
	i, ok := c.index[key]
	if !ok {
		return -1
	}
	return i
}

func (c *Content) FirstBlock() *Block { return c.blocks[0] }
func (c *Content) LastBlock() *Block  { return c.blocks[len(c.blocks)-1] }

// BlockBefore returns the block preceding key, or nil.
func (c *Content) BlockBefore(key string) *Block {
	i := c.IndexOf(key)
	if i <= 0 {
		return nil
	}
	return c.blocks[i-1]
}

// BlockAfter returns the block following key, or nil.
func (c *Content) BlockAfter(key string) *Block {
	i := c.IndexOf(key)
	if i < 0 || i+1 >= len(c.blocks) {
		return nil
	}
	return c.blocks[i+1]
}

// HasText reports whether any block contains text.
func (c *Content) HasText() bool {
	for _, b := range c.blocks {
		if b.Len() > 0 {
			return true
		}
	}
	return false
}

// PlainText joins block texts with newlines.
func (c *Content) PlainText() string {
	var sb strings.Builder
	for i, b := range c.blocks {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(b.Text())
	}
	return sb.String()
}

// ComparePos orders positions by block index, then offset.
func (c *Content) ComparePos(a, b Pos) int {
	ai, bi := c.IndexOf(a.Key), c.IndexOf(b.Key)
	switch {
	case ai < bi:
		return -1
	case ai > bi:
		return 1
	case a.Offset < b.Offset:
		return -1
	case a.Offset > b.Offset:
		return 1
	}
	return 0
}

// ClampPos moves p into the document. Unknown keys resolve to the start of
// the first block.
func (c *Content) ClampPos(p Pos) Pos {
	b := c.BlockForKey(p.Key)
	if b == nil {
		return Pos{Key: c.FirstBlock().key}
	}
	return Pos{Key: p.Key, Offset: clampInt(p.Offset, 0, b.Len())}
}

// NewSelection clamps anchor and focus and records their direction.
func (c *Content) NewSelection(anchor, focus Pos) Selection {
	anchor = c.ClampPos(anchor)
	focus = c.ClampPos(focus)
	return Selection{Anchor: anchor, Focus: focus, Backward: c.ComparePos(anchor, focus) > 0}
}

// TextInSelection returns the plain text covered by sel.
func (c *Content) TextInSelection(sel Selection) string {
	start, end := sel.Start(), sel.End()
	si, ei := c.IndexOf(start.Key), c.IndexOf(end.Key)
	if si < 0 || ei < 0 || si > ei {
		return ""
	}
	if si == ei {
		return c.blocks[si].Slice(start.Offset, end.Offset)
	}
	var sb strings.Builder
	for i := si; i <= ei; i++ {
		b := c.blocks[i]
		switch i {
		case si:
			sb.WriteString(b.Slice(start.Offset, b.Len()))
		case ei:
			sb.WriteByte('\n')
			sb.WriteString(b.Slice(0, end.Offset))
		default:
			sb.WriteByte('\n')
			sb.WriteString(b.Text())
		}
	}
	return sb.String()
}

// StartPos and EndPos are the document boundaries.
func (c *Content) StartPos() Pos { return Pos{Key: c.FirstBlock().key} }

func (c *Content) EndPos() Pos {
	last := c.LastBlock()
	return Pos{Key: last.key, Offset: last.Len()}
}
