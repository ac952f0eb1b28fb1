package richtext

// Options configures an EditorState and every state derived from it.
type Options struct {
	HistoryLimit int // default: 1000; negative disables undo
}

type snapshot struct {
	content *Content
	sel     Selection
}

// EditorState is an immutable snapshot of content, selection, pending inline
// style and undo/redo history.
type EditorState struct {
	content  *Content
	sel      Selection
	override *StyleSet

	undo []snapshot
	redo []snapshot

	lastChange  ChangeType
	lastPushSel Selection

	opt Options
}

// CreateEmpty returns a state holding a single empty unstyled block.
func CreateEmpty() *EditorState {
	return CreateWithOptions(NewContent(), Options{})
}

// CreateWithText returns a state with one unstyled block per line of text.
func CreateWithText(text string) *EditorState {
	return CreateWithOptions(ContentFromText(text), Options{})
}

func CreateWithContent(c *Content) *EditorState {
	return CreateWithOptions(c, Options{})
}

// CreateWithOptions places the cursor at the start of c.
func CreateWithOptions(c *Content, opt Options) *EditorState {
	if c == nil {
		c = NewContent()
	}
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = 1000
	}
	sel := Collapsed(c.StartPos())
	return &EditorState{
		content:     c,
		sel:         sel,
		lastPushSel: sel,
		opt:         opt,
	}
}

func (s *EditorState) CurrentContent() *Content { return s.content }

func (s *EditorState) Selection() Selection { return s.sel }

func (s *EditorState) LastChangeType() ChangeType { return s.lastChange }

func (s *EditorState) CanUndo() bool { return len(s.undo) > 0 }

func (s *EditorState) CanRedo() bool { return len(s.redo) > 0 }

// InlineStyleOverride returns the pending style for the next insertion.
func (s *EditorState) InlineStyleOverride() (StyleSet, bool) {
	if s.override == nil {
		return StyleSet{}, false
	}
	return *s.override, true
}

// CurrentBlock returns the block containing the selection start.
func (s *EditorState) CurrentBlock() *Block {
	if b := s.content.BlockForKey(s.sel.StartKey()); b != nil {
		return b
	}
	return s.content.FirstBlock()
}

// CurrentInlineStyle returns the styles that apply at the selection.
//
// A pending override wins. A collapsed cursor takes the style of the
// preceding cluster; a range takes the style of its first cluster. At the
// start of an empty block the style of the nearest text above is used.
func (s *EditorState) CurrentInlineStyle() StyleSet {
	if s.override != nil {
		return *s.override
	}
	start := s.sel.Start()
	b := s.content.BlockForKey(start.Key)
	if b == nil {
		return StyleSet{}
	}
	if s.sel.IsCollapsed() {
		if start.Offset > 0 {
			return b.StyleAt(start.Offset - 1)
		}
		if b.Len() > 0 {
			return b.StyleAt(0)
		}
		return s.styleAbove(start.Key)
	}
	if start.Offset < b.Len() {
		return b.StyleAt(start.Offset)
	}
	if start.Offset > 0 {
		return b.StyleAt(start.Offset - 1)
	}
	return s.styleAbove(start.Key)
}

func (s *EditorState) styleAbove(key string) StyleSet {
	for i := s.content.IndexOf(key) - 1; i >= 0; i-- {
		b := s.content.blocks[i]
		if b.Len() > 0 {
			return b.StyleAt(b.Len() - 1)
		}
	}
	return StyleSet{}
}

func (s *EditorState) clone() *EditorState {
	c := *s
	return &c
}

// ForceSelection moves the selection without touching history. The pending
// inline style is dropped.
func ForceSelection(s *EditorState, sel Selection) *EditorState {
	next := s.content.NewSelection(sel.Anchor, sel.Focus)
	if next == s.sel && s.override == nil {
		return s
	}
	out := s.clone()
	out.sel = next
	out.override = nil
	return out
}

// SetInlineStyleOverride sets the styles used by the next insertion.
func SetInlineStyleOverride(s *EditorState, styles StyleSet) *EditorState {
	out := s.clone()
	out.override = &styles
	return out
}

// Push records content as the next state, with sel as its selection.
//
// Consecutive typing or deleting at the position the previous change left
// the cursor folds into one undo step.
func Push(s *EditorState, c *Content, sel Selection, change ChangeType) *EditorState {
	sel = c.NewSelection(sel.Anchor, sel.Focus)
	if c == s.content && sel == s.sel {
		return s
	}

	out := s.clone()
	boundary := change != s.lastChange || !coalesces(change) || s.sel != s.lastPushSel
	if boundary && c != s.content {
		out.undo = pushSnapshot(s.undo, snapshot{content: s.content, sel: s.sel}, s.opt.HistoryLimit)
	}
	if c != s.content {
		out.redo = nil
	}
	out.content = c
	out.sel = sel
	out.lastChange = change
	out.lastPushSel = sel
	if !keepsOverride(change) {
		out.override = nil
	}
	return out
}

func coalesces(change ChangeType) bool {
	switch change {
	case ChangeInsertCharacters, ChangeBackspaceCharacter, ChangeDeleteCharacter:
		return true
	}
	return false
}

func keepsOverride(change ChangeType) bool {
	switch change {
	case ChangeAdjustDepth, ChangeBlockType, ChangeSplitBlock:
		return true
	}
	return false
}

func pushSnapshot(stack []snapshot, snap snapshot, limit int) []snapshot {
	if limit <= 0 {
		return nil
	}
	out := append(stack[:len(stack):len(stack)], snap)
	if len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out
}

// Undo restores the previous snapshot. It returns s when there is none.
func (s *EditorState) Undo() *EditorState {
	n := len(s.undo)
	if n == 0 {
		return s
	}
	prev := s.undo[n-1]
	out := s.clone()
	out.undo = s.undo[: n-1 : n-1]
	out.redo = pushSnapshot(s.redo, snapshot{content: s.content, sel: s.sel}, s.opt.HistoryLimit)
	out.content = prev.content
	out.sel = prev.sel
	out.override = nil
	out.lastChange = ChangeUndo
	out.lastPushSel = prev.sel
	return out
}

// Redo reapplies the most recently undone snapshot.
func (s *EditorState) Redo() *EditorState {
	n := len(s.redo)
	if n == 0 {
		return s
	}
	next := s.redo[n-1]
	out := s.clone()
	out.redo = s.redo[: n-1 : n-1]
	out.undo = pushSnapshot(s.undo, snapshot{content: s.content, sel: s.sel}, s.opt.HistoryLimit)
	out.content = next.content
	out.sel = next.sel
	out.override = nil
	out.lastChange = ChangeRedo
	out.lastPushSel = next.sel
	return out
}
