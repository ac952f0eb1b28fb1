package richtext

// DefaultMaxDepth bounds list nesting for OnTab.
const DefaultMaxDepth = 4

// RichUtils bundles the high-level toggles the toolbar and key bindings use.
// The zero value is ready to use.
type RichUtils struct{}

// ToggleInlineStyle toggles style on the selection. A collapsed selection
// only changes the pending style for the next insertion.
func (RichUtils) ToggleInlineStyle(s *EditorState, style InlineStyle) *EditorState {
	return ToggleInlineStyle(s, style)
}

// ToggleBlockType sets t on every selected block, or resets them to
// unstyled when the start block already has t.
func (RichUtils) ToggleBlockType(s *EditorState, t BlockType) *EditorState {
	return ToggleBlockType(s, t)
}

// HandleKeyCommand resolves command against s. It reports false when the
// command is left to the surface's default handling.
func (RichUtils) HandleKeyCommand(s *EditorState, command string) (*EditorState, bool) {
	return HandleKeyCommand(s, command)
}

// OnTab indents (or with outdent, dedents) the selected list items.
func (RichUtils) OnTab(s *EditorState, outdent bool, maxDepth int) *EditorState {
	return OnTab(s, outdent, maxDepth)
}

func ToggleInlineStyle(s *EditorState, style InlineStyle) *EditorState {
	current := s.CurrentInlineStyle()
	if s.sel.IsCollapsed() {
		return SetInlineStyleOverride(s, current.Toggle(style))
	}
	c := applyInlineStyle(s.content, s.sel, style, !current.Has(style))
	return Push(s, c, s.sel, ChangeInlineStyle)
}

func ToggleBlockType(s *EditorState, t BlockType) *EditorState {
	t = normalizeType(t)
	c := s.content
	target := s.sel
	startKey, endKey := target.StartKey(), target.EndKey()

	// A selection that ends at offset 0 of a later block does not visually
	// include that block.
	if !target.IsSingleBlock() && target.EndOffset() == 0 {
		if before := c.BlockBefore(endKey); before != nil {
			target = c.NewSelection(target.Start(), Pos{Key: before.key, Offset: before.Len()})
		}
	}

	set := t
	if start := c.BlockForKey(startKey); start != nil && start.typ == t {
		set = Unstyled
	}
	return Push(s, setBlockType(c, target, set), s.sel, ChangeBlockType)
}

func HandleKeyCommand(s *EditorState, command string) (*EditorState, bool) {
	switch command {
	case CommandBold:
		return ToggleInlineStyle(s, Bold), true
	case CommandItalic:
		return ToggleInlineStyle(s, Italic), true
	case CommandUnderline:
		return ToggleInlineStyle(s, Underline), true
	case CommandStrikethrough:
		return ToggleInlineStyle(s, Strikethrough), true
	case CommandCode:
		return ToggleInlineStyle(s, Code), true
	case CommandBackspace, CommandBackspaceWord, CommandBackspaceToStartOfLine:
		if next, ok := removeBlockStyle(s); ok {
			return next, true
		}
	}
	return s, false
}

// removeBlockStyle resets the current block to unstyled when the cursor sits
// at its very start. A code block directly below non-empty code is left
// alone so backspace can join the two.
func removeBlockStyle(s *EditorState) (*EditorState, bool) {
	sel := s.sel
	if !sel.IsCollapsed() || sel.Anchor.Offset != 0 {
		return s, false
	}
	b := s.content.BlockForKey(sel.Anchor.Key)
	if b == nil || b.typ == Unstyled {
		return s, false
	}
	if b.typ == CodeBlock {
		if before := s.content.BlockBefore(b.key); before != nil && before.typ == CodeBlock && before.Len() != 0 {
			return s, false
		}
	}
	return Push(s, setBlockType(s.content, sel, Unstyled), sel, ChangeBlockType), true
}

func OnTab(s *EditorState, outdent bool, maxDepth int) *EditorState {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	delta := 1
	if outdent {
		delta = -1
	}
	c := adjustDepth(s.content, s.sel, delta, maxDepth)
	if c == s.content {
		return s
	}
	return Push(s, c, s.sel, ChangeAdjustDepth)
}
