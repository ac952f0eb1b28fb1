package richtext

import (
	"strings"

	"github.com/iw2rmb/inkwell/internal/grapheme"
)

// InsertText inserts text at the cursor, replacing any selected range. The
// inserted clusters carry CurrentInlineStyle. Newlines split blocks.
func InsertText(s *EditorState, text string) *EditorState {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	if text == "" {
		if s.sel.IsCollapsed() {
			return s
		}
		c, p := removeRange(s.content, s.sel)
		return Push(s, c, Collapsed(p), ChangeRemoveRange)
	}

	style := s.CurrentInlineStyle()
	change := ChangeInsertCharacters
	if strings.Contains(text, "\n") || !s.sel.IsCollapsed() {
		change = ChangeInsertFragment
	}
	c, p := removeRange(s.content, s.sel)
	c, p = insertText(c, p, text, style)
	return Push(s, c, Collapsed(p), change)
}

// DeleteBackward applies backspace semantics. At the start of a block the
// block is merged into the one above, which keeps its own type.
func DeleteBackward(s *EditorState) *EditorState {
	if !s.sel.IsCollapsed() {
		c, p := removeRange(s.content, s.sel)
		return Push(s, c, Collapsed(p), ChangeRemoveRange)
	}
	p := s.sel.Anchor
	from := Pos{Key: p.Key, Offset: p.Offset - 1}
	if p.Offset == 0 {
		prev := s.content.BlockBefore(p.Key)
		if prev == nil {
			return s
		}
		from = Pos{Key: prev.key, Offset: prev.Len()}
	}
	c, at := removeRange(s.content, s.content.NewSelection(from, p))
	return Push(s, c, Collapsed(at), ChangeBackspaceCharacter)
}

// DeleteForward applies delete-key semantics.
func DeleteForward(s *EditorState) *EditorState {
	if !s.sel.IsCollapsed() {
		c, p := removeRange(s.content, s.sel)
		return Push(s, c, Collapsed(p), ChangeRemoveRange)
	}
	p := s.sel.Anchor
	b := s.content.BlockForKey(p.Key)
	to := Pos{Key: p.Key, Offset: p.Offset + 1}
	if p.Offset >= b.Len() {
		next := s.content.BlockAfter(p.Key)
		if next == nil {
			return s
		}
		to = Pos{Key: next.key}
	}
	c, at := removeRange(s.content, s.content.NewSelection(p, to))
	return Push(s, c, Collapsed(at), ChangeDeleteCharacter)
}

// DeleteWordBackward removes the word before the cursor, or falls back to
// DeleteBackward at a block start.
func DeleteWordBackward(s *EditorState) *EditorState {
	if !s.sel.IsCollapsed() || s.sel.Anchor.Offset == 0 {
		return DeleteBackward(s)
	}
	p := s.sel.Anchor
	b := s.content.BlockForKey(p.Key)
	from := Pos{Key: p.Key, Offset: prevWordBoundary(b.chars, p.Offset)}
	c, at := removeRange(s.content, s.content.NewSelection(from, p))
	return Push(s, c, Collapsed(at), ChangeRemoveRange)
}

// DeleteToBlockStart removes everything between the block start and the cursor.
func DeleteToBlockStart(s *EditorState) *EditorState {
	if !s.sel.IsCollapsed() || s.sel.Anchor.Offset == 0 {
		return DeleteBackward(s)
	}
	p := s.sel.Anchor
	c, at := removeRange(s.content, s.content.NewSelection(Pos{Key: p.Key}, p))
	return Push(s, c, Collapsed(at), ChangeRemoveRange)
}

// SplitBlock breaks the current block at the cursor.
//
// An empty list item, quote or code block is reset to unstyled instead of
// being split, which is how the user leaves a list. A block split off the end
// of a header starts unstyled.
func SplitBlock(s *EditorState) *EditorState {
	c, p := removeRange(s.content, s.sel)
	b := c.BlockForKey(p.Key)
	if b.Len() == 0 && exitsOnEmptySplit(b.typ) {
		sel := Collapsed(p)
		return Push(s, setBlockType(c, sel, Unstyled), sel, ChangeBlockType)
	}

	c, at := insertText(c, p, "\n", StyleSet{})
	if b.typ.HeaderLevel() > 0 && p.Offset == b.Len() {
		c = setBlockType(c, Collapsed(at), Unstyled)
	}
	return Push(s, c, Collapsed(at), ChangeSplitBlock)
}

func exitsOnEmptySplit(t BlockType) bool {
	return t.IsList() || t == Blockquote || t == CodeBlock
}

// Word boundary rules: skip whitespace, then skip word clusters. A run of
// punctuation counts as its own word.
func prevWordBoundary(line []string, col int) int {
	i := clampInt(col, 0, len(line))
	for i > 0 && grapheme.IsSpace(line[i-1]) {
		i--
	}
	if i > 0 && !grapheme.IsWord(line[i-1]) {
		for i > 0 && !grapheme.IsSpace(line[i-1]) && !grapheme.IsWord(line[i-1]) {
			i--
		}
		return i
	}
	for i > 0 && grapheme.IsWord(line[i-1]) {
		i--
	}
	return i
}

func nextWordBoundary(line []string, col int) int {
	i := clampInt(col, 0, len(line))
	for i < len(line) && grapheme.IsSpace(line[i]) {
		i++
	}
	if i < len(line) && !grapheme.IsWord(line[i]) {
		for i < len(line) && !grapheme.IsSpace(line[i]) && !grapheme.IsWord(line[i]) {
			i++
		}
		return i
	}
	for i < len(line) && grapheme.IsWord(line[i]) {
		i++
	}
	return i
}
