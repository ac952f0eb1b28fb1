package panel

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/inkwell/richtext"
)

// KeyMap defines the panel key bindings.
//
// Bindings must be portable across terminals: ctrl+i is tab, so italic and
// strikethrough live on alt.
type KeyMap struct {
	Left, Right, Up, Down                     key.Binding
	ShiftLeft, ShiftRight, ShiftUp, ShiftDown key.Binding
	WordLeft, WordRight                       key.Binding
	Home, End                                 key.Binding
	DocStart, DocEnd                          key.Binding
	SelectAll                                 key.Binding

	Indent, Outdent key.Binding

	// Bindings below resolve to named key commands.
	Backspace, BackspaceWord, BackspaceToStart, Delete key.Binding
	Enter                                              key.Binding
	Undo, Redo                                         key.Binding
	Bold, Italic, Underline, Strikethrough, Code       key.Binding

	Copy, Cut, Paste key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		ShiftLeft:  key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+←", "select left")),
		ShiftRight: key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("shift+→", "select right")),
		ShiftUp:    key.NewBinding(key.WithKeys("shift+up"), key.WithHelp("shift+↑", "select up")),
		ShiftDown:  key.NewBinding(key.WithKeys("shift+down"), key.WithHelp("shift+↓", "select down")),

		WordLeft:  key.NewBinding(key.WithKeys("alt+left", "ctrl+left"), key.WithHelp("alt/ctrl+←", "word left")),
		WordRight: key.NewBinding(key.WithKeys("alt+right", "ctrl+right"), key.WithHelp("alt/ctrl+→", "word right")),

		Home:      key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "block start")),
		End:       key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "block end")),
		DocStart:  key.NewBinding(key.WithKeys("ctrl+home"), key.WithHelp("ctrl+home", "document start")),
		DocEnd:    key.NewBinding(key.WithKeys("ctrl+end"), key.WithHelp("ctrl+end", "document end")),
		SelectAll: key.NewBinding(key.WithKeys("alt+a"), key.WithHelp("alt+a", "select all")),

		Indent:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "indent item")),
		Outdent: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "outdent item")),

		Backspace:        key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		BackspaceWord:    key.NewBinding(key.WithKeys("alt+backspace", "ctrl+w"), key.WithHelp("ctrl+w", "delete word")),
		BackspaceToStart: key.NewBinding(key.WithKeys("alt+k"), key.WithHelp("alt+k", "delete to block start")),
		Delete:           key.NewBinding(key.WithKeys("delete", "ctrl+d"), key.WithHelp("del", "delete right")),
		Enter:            key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "new block")),

		Undo: key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),
		Redo: key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "redo")),

		Bold:          key.NewBinding(key.WithKeys("ctrl+b"), key.WithHelp("ctrl+b", "bold")),
		Italic:        key.NewBinding(key.WithKeys("alt+i"), key.WithHelp("alt+i", "italic")),
		Underline:     key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "underline")),
		Strikethrough: key.NewBinding(key.WithKeys("alt+s"), key.WithHelp("alt+s", "strikethrough")),
		Code:          key.NewBinding(key.WithKeys("alt+j"), key.WithHelp("alt+j", "code")),

		Copy:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "copy")),
		Cut:   key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "cut")),
		Paste: key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),
	}
}

func (k KeyMap) isZero() bool {
	return len(k.Left.Keys()) == 0 && len(k.Enter.Keys()) == 0 && len(k.Backspace.Keys()) == 0
}

// Command resolves msg to a named key command, or "" when msg is not bound
// to one.
func (k KeyMap) Command(msg tea.KeyMsg) string {
	switch {
	case key.Matches(msg, k.Bold):
		return richtext.CommandBold
	case key.Matches(msg, k.Italic):
		return richtext.CommandItalic
	case key.Matches(msg, k.Underline):
		return richtext.CommandUnderline
	case key.Matches(msg, k.Strikethrough):
		return richtext.CommandStrikethrough
	case key.Matches(msg, k.Code):
		return richtext.CommandCode
	case key.Matches(msg, k.BackspaceWord):
		return richtext.CommandBackspaceWord
	case key.Matches(msg, k.BackspaceToStart):
		return richtext.CommandBackspaceToStartOfLine
	case key.Matches(msg, k.Backspace):
		return richtext.CommandBackspace
	case key.Matches(msg, k.Delete):
		return richtext.CommandDelete
	case key.Matches(msg, k.Enter):
		return richtext.CommandSplitBlock
	case key.Matches(msg, k.Undo):
		return richtext.CommandUndo
	case key.Matches(msg, k.Redo):
		return richtext.CommandRedo
	}
	return ""
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Bold, k.Italic, k.Underline, k.Strikethrough, k.Undo, k.Redo}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Bold, k.Italic, k.Underline, k.Strikethrough, k.Code},
		{k.Enter, k.Indent, k.Outdent, k.Undo, k.Redo},
		{k.WordLeft, k.WordRight, k.Home, k.End, k.SelectAll},
		{k.Backspace, k.BackspaceWord, k.Delete, k.Copy, k.Cut, k.Paste},
	}
}
