package richtext

type MoveUnit int

const (
	MoveGrapheme MoveUnit = iota
	MoveWord
	MoveBlock
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // block start (or doc start for MoveDoc)
	DirEnd  // block end (or doc end for MoveDoc)
)

type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool // if true, keeps the anchor and moves the focus
}

// MoveCursor moves the focus by m. Without Extend, a horizontal move over a
// range collapses it to the matching edge instead of moving.
func MoveCursor(s *EditorState, m Move) *EditorState {
	c := s.content
	sel := s.sel

	if !m.Extend && !sel.IsCollapsed() && m.Unit == MoveGrapheme {
		switch m.Dir {
		case DirLeft:
			return ForceSelection(s, Collapsed(sel.Start()))
		case DirRight:
			return ForceSelection(s, Collapsed(sel.End()))
		}
	}

	focus := c.ClampPos(moveFocus(c, sel.Focus, m))
	if m.Extend {
		return ForceSelection(s, c.NewSelection(sel.Anchor, focus))
	}
	return ForceSelection(s, Collapsed(focus))
}

// SelectAll selects the whole document.
func SelectAll(s *EditorState) *EditorState {
	return ForceSelection(s, s.content.NewSelection(s.content.StartPos(), s.content.EndPos()))
}

func moveFocus(c *Content, p Pos, m Move) Pos {
	switch m.Unit {
	case MoveGrapheme:
		return moveGrapheme(c, p, m.Dir)
	case MoveWord:
		return moveWord(c, p, m.Dir)
	case MoveBlock:
		return moveBlock(c, p, m.Dir)
	case MoveDoc:
		return moveDoc(c, p, m.Dir)
	default:
		return p
	}
}

func moveGrapheme(c *Content, p Pos, dir MoveDir) Pos {
	b := c.BlockForKey(p.Key)
	switch dir {
	case DirLeft:
		if p.Offset > 0 {
			return Pos{Key: p.Key, Offset: p.Offset - 1}
		}
		if prev := c.BlockBefore(p.Key); prev != nil {
			return Pos{Key: prev.key, Offset: prev.Len()}
		}
		return p
	case DirRight:
		if p.Offset < b.Len() {
			return Pos{Key: p.Key, Offset: p.Offset + 1}
		}
		if next := c.BlockAfter(p.Key); next != nil {
			return Pos{Key: next.key}
		}
		return p
	default:
		return moveBlock(c, p, dir)
	}
}

func moveWord(c *Content, p Pos, dir MoveDir) Pos {
	b := c.BlockForKey(p.Key)
	switch dir {
	case DirLeft:
		if p.Offset == 0 {
			return moveGrapheme(c, p, DirLeft)
		}
		return Pos{Key: p.Key, Offset: prevWordBoundary(b.chars, p.Offset)}
	case DirRight:
		if p.Offset == b.Len() {
			return moveGrapheme(c, p, DirRight)
		}
		return Pos{Key: p.Key, Offset: nextWordBoundary(b.chars, p.Offset)}
	default:
		return moveBlock(c, p, dir)
	}
}

func moveBlock(c *Content, p Pos, dir MoveDir) Pos {
	b := c.BlockForKey(p.Key)
	switch dir {
	case DirHome:
		return Pos{Key: p.Key}
	case DirEnd:
		return Pos{Key: p.Key, Offset: b.Len()}
	case DirUp:
		prev := c.BlockBefore(p.Key)
		if prev == nil {
			return Pos{Key: p.Key}
		}
		return Pos{Key: prev.key, Offset: min(p.Offset, prev.Len())}
	case DirDown:
		next := c.BlockAfter(p.Key)
		if next == nil {
			return Pos{Key: p.Key, Offset: b.Len()}
		}
		return Pos{Key: next.key, Offset: min(p.Offset, next.Len())}
	default:
		return p
	}
}

func moveDoc(c *Content, p Pos, dir MoveDir) Pos {
	switch dir {
	case DirHome, DirUp:
		return c.StartPos()
	case DirEnd, DirDown:
		return c.EndPos()
	default:
		return p
	}
}
