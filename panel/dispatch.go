package panel

import "github.com/iw2rmb/inkwell/richtext"

// HandleBlockClick dispatches a block button press. An empty action is
// ignored and leaves the state untouched.
func (m Model) HandleBlockClick(action string) Model {
	if action == "" || m.cfg.ReadOnly {
		return m
	}
	m.setState(m.cfg.Engine.ToggleBlockType(m.state, richtext.BlockType(action)))
	return m
}

// HandleToggleClick dispatches an inline style button press. An empty style
// is ignored and leaves the state untouched.
func (m Model) HandleToggleClick(style string) Model {
	if style == "" || m.cfg.ReadOnly {
		return m
	}
	m.setState(m.cfg.Engine.ToggleInlineStyle(m.state, richtext.InlineStyle(style)))
	return m
}

// HandleKeyCommand offers command to the engine. NotHandled tells the caller
// to apply the surface's default behavior.
func (m Model) HandleKeyCommand(command string) (Model, HandleResult) {
	if command == "" || m.cfg.ReadOnly {
		return m, NotHandled
	}
	next, ok := m.cfg.Engine.HandleKeyCommand(m.state, command)
	if !ok {
		return m, NotHandled
	}
	m.setState(next)
	return m, Handled
}

// runCommand interprets a key command, falling back to the default surface
// behavior.
func (m Model) runCommand(command string) Model {
	m, res := m.HandleKeyCommand(command)
	if res == Handled || m.cfg.ReadOnly {
		return m
	}
	m.setState(defaultCommand(m.state, command))
	return m
}

func defaultCommand(s *richtext.EditorState, command string) *richtext.EditorState {
	switch command {
	case richtext.CommandBackspace:
		return richtext.DeleteBackward(s)
	case richtext.CommandBackspaceWord:
		return richtext.DeleteWordBackward(s)
	case richtext.CommandBackspaceToStartOfLine:
		return richtext.DeleteToBlockStart(s)
	case richtext.CommandDelete:
		return richtext.DeleteForward(s)
	case richtext.CommandSplitBlock:
		return richtext.SplitBlock(s)
	case richtext.CommandUndo:
		return s.Undo()
	case richtext.CommandRedo:
		return s.Redo()
	default:
		return s
	}
}

func (m Model) tab(outdent bool) Model {
	if m.cfg.ReadOnly {
		return m
	}
	if th, ok := m.cfg.Engine.(tabHandler); ok {
		m.setState(th.OnTab(m.state, outdent, m.cfg.MaxDepth))
	}
	return m
}
