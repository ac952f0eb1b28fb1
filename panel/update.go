package panel

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/unicode/norm"

	"github.com/iw2rmb/inkwell/richtext"
)

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg)
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	// Pasted runes are literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		m = m.insert(norm.NFC.String(string(msg.Runes)))
		return m, nil
	}

	km := m.cfg.KeyMap
	if cmd := km.Command(msg); cmd != "" {
		return m.runCommand(cmd), nil
	}

	switch {
	case key.Matches(msg, km.Left):
		m = m.move(richtext.MoveGrapheme, richtext.DirLeft, false)
	case key.Matches(msg, km.Right):
		m = m.move(richtext.MoveGrapheme, richtext.DirRight, false)
	case key.Matches(msg, km.Up):
		m = m.move(richtext.MoveBlock, richtext.DirUp, false)
	case key.Matches(msg, km.Down):
		m = m.move(richtext.MoveBlock, richtext.DirDown, false)

	case key.Matches(msg, km.ShiftLeft):
		m = m.move(richtext.MoveGrapheme, richtext.DirLeft, true)
	case key.Matches(msg, km.ShiftRight):
		m = m.move(richtext.MoveGrapheme, richtext.DirRight, true)
	case key.Matches(msg, km.ShiftUp):
		m = m.move(richtext.MoveBlock, richtext.DirUp, true)
	case key.Matches(msg, km.ShiftDown):
		m = m.move(richtext.MoveBlock, richtext.DirDown, true)

	case key.Matches(msg, km.WordLeft):
		m = m.move(richtext.MoveWord, richtext.DirLeft, false)
	case key.Matches(msg, km.WordRight):
		m = m.move(richtext.MoveWord, richtext.DirRight, false)

	case key.Matches(msg, km.Home):
		m = m.move(richtext.MoveBlock, richtext.DirHome, false)
	case key.Matches(msg, km.End):
		m = m.move(richtext.MoveBlock, richtext.DirEnd, false)
	case key.Matches(msg, km.DocStart):
		m = m.move(richtext.MoveDoc, richtext.DirHome, false)
	case key.Matches(msg, km.DocEnd):
		m = m.move(richtext.MoveDoc, richtext.DirEnd, false)
	case key.Matches(msg, km.SelectAll):
		m.setState(richtext.SelectAll(m.state))

	case key.Matches(msg, km.Indent):
		m = m.tab(false)
	case key.Matches(msg, km.Outdent):
		m = m.tab(true)

	case key.Matches(msg, km.Copy):
		m.copySelection()
	case key.Matches(msg, km.Cut):
		m = m.cutSelection()
	case key.Matches(msg, km.Paste):
		m = m.pasteClipboard()

	default:
		switch {
		case msg.Type == tea.KeySpace:
			m = m.insert(" ")
		case msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt:
			m = m.insert(string(msg.Runes))
		}
	}
	return m, nil
}

func (m Model) move(unit richtext.MoveUnit, dir richtext.MoveDir, extend bool) Model {
	m.setState(richtext.MoveCursor(m.state, richtext.Move{Unit: unit, Dir: dir, Extend: extend}))
	return m
}

func (m Model) insert(text string) Model {
	if m.cfg.ReadOnly || text == "" {
		return m
	}
	m.setState(richtext.InsertText(m.state, text))
	return m
}

func (m Model) copySelection() {
	if m.cfg.Clipboard == nil {
		return
	}
	sel := m.state.Selection()
	if sel.IsCollapsed() {
		return
	}
	_ = m.cfg.Clipboard.WriteText(m.state.CurrentContent().TextInSelection(sel))
}

func (m Model) cutSelection() Model {
	m.copySelection()
	if m.cfg.ReadOnly || m.cfg.Clipboard == nil || m.state.Selection().IsCollapsed() {
		return m
	}
	m.setState(richtext.DeleteBackward(m.state))
	return m
}

func (m Model) pasteClipboard() Model {
	if m.cfg.ReadOnly || m.cfg.Clipboard == nil {
		return m
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil || s == "" {
		return m
	}
	return m.insert(norm.NFC.String(s))
}

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	if isWheel(msg) {
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	if !m.focused {
		return m, nil
	}

	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if msg.Y == 0 {
			m = m.pressToolbar(msg.X)
			return m, nil
		}
		if msg.Y < toolbarRows || !m.inBounds(msg.X, msg.Y) {
			return m, nil
		}

		p := m.screenToDocPos(msg.X, msg.Y)
		c := m.state.CurrentContent()
		if msg.Shift {
			m.mouseAnchor = m.state.Selection().Anchor
			m.setState(richtext.ForceSelection(m.state, c.NewSelection(m.mouseAnchor, p)))
		} else {
			m.mouseAnchor = p
			m.setState(richtext.ForceSelection(m.state, richtext.Collapsed(p)))
		}
		m.mouseDragging = true

	case tea.MouseActionMotion:
		if !m.mouseDragging {
			return m, nil
		}
		x, y := m.clampToBounds(msg.X, msg.Y)
		p := m.screenToDocPos(x, y)
		sel := m.state.CurrentContent().NewSelection(m.mouseAnchor, p)
		m.setState(richtext.ForceSelection(m.state, sel))

	case tea.MouseActionRelease:
		m.mouseDragging = false
	}
	return m, nil
}

func (m Model) pressToolbar(x int) Model {
	it, ok := m.buttonAt(x)
	if !ok {
		return m
	}
	if it.toggle {
		return m.HandleToggleClick(it.action)
	}
	return m.HandleBlockClick(it.action)
}

func isWheel(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress &&
		(msg.Button == tea.MouseButtonWheelUp ||
			msg.Button == tea.MouseButtonWheelDown ||
			msg.Button == tea.MouseButtonWheelLeft ||
			msg.Button == tea.MouseButtonWheelRight)
}
