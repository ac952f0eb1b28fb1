package richtext

import "testing"

func TestCreateEmpty(t *testing.T) {
	s := CreateEmpty()
	c := s.CurrentContent()
	if c.BlockCount() != 1 {
		t.Fatalf("block count: got %d, want %d", c.BlockCount(), 1)
	}
	if got := s.CurrentBlock().Type(); got != Unstyled {
		t.Fatalf("block type: got %q, want %q", got, Unstyled)
	}
	if !s.Selection().IsCollapsed() || s.Selection().StartKey() != c.FirstBlock().Key() {
		t.Fatalf("selection must be collapsed at document start: %+v", s.Selection())
	}
	if !s.CurrentInlineStyle().IsEmpty() {
		t.Fatalf("empty document must have no inline style")
	}
	if s.CanUndo() || s.CanRedo() {
		t.Fatalf("fresh state must have no history")
	}
}

func TestCurrentInlineStyle_Rules(t *testing.T) {
	s := CreateWithText("abc\n\nxyz")
	s = selectRange(t, s, 0, 1, 0, 2)
	s = ToggleInlineStyle(s, Bold) // "b" bold
	s = selectRange(t, s, 0, 2, 0, 3)
	s = ToggleInlineStyle(s, Italic) // "c" italic

	cases := []struct {
		name string
		sel  func(*EditorState) *EditorState
		want StyleSet
	}{
		{"collapsed after b", func(s *EditorState) *EditorState { return selectRange(t, s, 0, 2, 0, 2) }, NewStyleSet(Bold)},
		{"collapsed at block start", func(s *EditorState) *EditorState { return selectRange(t, s, 0, 0, 0, 0) }, StyleSet{}},
		{"range starting at b", func(s *EditorState) *EditorState { return selectRange(t, s, 0, 1, 0, 3) }, NewStyleSet(Bold)},
		{"empty block looks upward", func(s *EditorState) *EditorState { return selectRange(t, s, 1, 0, 1, 0) }, NewStyleSet(Italic)},
		{"range starting in empty block", func(s *EditorState) *EditorState { return selectRange(t, s, 1, 0, 2, 1) }, NewStyleSet(Italic)},
	}
	for _, tc := range cases {
		got := tc.sel(s).CurrentInlineStyle()
		if !got.Equal(tc.want) {
			t.Fatalf("%s: got %s, want %s", tc.name, got, tc.want)
		}
	}
}

func TestPush_CoalescesTypingIntoOneUndoStep(t *testing.T) {
	s := typeText(CreateEmpty(), "abc")
	if got := s.CurrentContent().PlainText(); got != "abc" {
		t.Fatalf("text after typing: got %q, want %q", got, "abc")
	}

	u := s.Undo()
	if got := u.CurrentContent().PlainText(); got != "" {
		t.Fatalf("text after undo: got %q, want %q", got, "")
	}
	if u.CanUndo() {
		t.Fatalf("one undo step expected")
	}

	r := u.Redo()
	if got := r.CurrentContent().PlainText(); got != "abc" {
		t.Fatalf("text after redo: got %q, want %q", got, "abc")
	}
	if got := r.Selection().Anchor.Offset; got != 3 {
		t.Fatalf("cursor after redo: got %d, want %d", got, 3)
	}
}

func TestPush_SelectionMoveBreaksCoalescing(t *testing.T) {
	s := typeText(CreateEmpty(), "ab")
	s = MoveCursor(s, Move{Unit: MoveGrapheme, Dir: DirLeft})
	s = typeText(s, "X")
	if got := s.CurrentContent().PlainText(); got != "aXb" {
		t.Fatalf("text: got %q, want %q", got, "aXb")
	}
	if got := s.Undo().CurrentContent().PlainText(); got != "ab" {
		t.Fatalf("first undo: got %q, want %q", got, "ab")
	}
	if got := s.Undo().Undo().CurrentContent().PlainText(); got != "" {
		t.Fatalf("second undo: got %q, want %q", got, "")
	}
}

func TestPush_NewChangeClearsRedo(t *testing.T) {
	s := typeText(CreateEmpty(), "a").Undo()
	if !s.CanRedo() {
		t.Fatalf("expected redo after undo")
	}
	s = InsertText(s, "b")
	if s.CanRedo() {
		t.Fatalf("new change must clear redo")
	}
}

func TestHistoryLimit(t *testing.T) {
	s := CreateWithOptions(NewContent(), Options{HistoryLimit: 2})
	for _, cmd := range []BlockType{HeaderOne, Blockquote, CodeBlock} {
		s = ToggleBlockType(s, cmd)
	}
	s = s.Undo().Undo()
	if s.CanUndo() {
		t.Fatalf("history must be trimmed to the limit")
	}
	if got := s.CurrentBlock().Type(); got != HeaderOne {
		t.Fatalf("oldest kept state: got %q, want %q", got, HeaderOne)
	}

	off := CreateWithOptions(NewContent(), Options{HistoryLimit: -1})
	if InsertText(off, "x").CanUndo() {
		t.Fatalf("negative limit disables undo")
	}
}

func TestStatesAreImmutable(t *testing.T) {
	s0 := CreateWithText("hello")
	s1 := InsertText(s0, "X")
	if got := s0.CurrentContent().PlainText(); got != "hello" {
		t.Fatalf("earlier state changed: %q", got)
	}
	if got := s1.CurrentContent().PlainText(); got != "Xhello" {
		t.Fatalf("new state: got %q, want %q", got, "Xhello")
	}
}

func TestContent_HasText(t *testing.T) {
	if ContentFromText("\n\n").HasText() {
		t.Fatalf("empty blocks must not report text")
	}
	if !ContentFromText("\n\nx").HasText() {
		t.Fatalf("text in a later block must be reported")
	}
}
