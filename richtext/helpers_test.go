package richtext

import "testing"

func blockAt(t *testing.T, s *EditorState, i int) *Block {
	t.Helper()
	blocks := s.CurrentContent().Blocks()
	if i < 0 || i >= len(blocks) {
		t.Fatalf("block %d out of range (have %d)", i, len(blocks))
	}
	return blocks[i]
}

func posIn(t *testing.T, s *EditorState, block, offset int) Pos {
	t.Helper()
	return Pos{Key: blockAt(t, s, block).Key(), Offset: offset}
}

func selectRange(t *testing.T, s *EditorState, fromBlock, fromOff, toBlock, toOff int) *EditorState {
	t.Helper()
	c := s.CurrentContent()
	return ForceSelection(s, c.NewSelection(posIn(t, s, fromBlock, fromOff), posIn(t, s, toBlock, toOff)))
}

func typeText(s *EditorState, text string) *EditorState {
	for _, r := range text {
		s = InsertText(s, string(r))
	}
	return s
}
