package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/iw2rmb/inkwell/richtext"
	"github.com/iw2rmb/inkwell/store"
)

type pickerKeys struct {
	Up     key.Binding
	Down   key.Binding
	Open   key.Binding
	Delete key.Binding
	Close  key.Binding
}

func defaultPickerKeys() pickerKeys {
	return pickerKeys{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Open:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Delete: key.NewBinding(key.WithKeys("delete", "ctrl+d"), key.WithHelp("del", "delete")),
		Close:  key.NewBinding(key.WithKeys("esc", "ctrl+o"), key.WithHelp("esc", "close")),
	}
}

func (k pickerKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.Delete, k.Close}
}

func (k pickerKeys) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

// draftsMsg carries a fresh listing for the picker. status, when set, reports
// the action that produced it.
type draftsMsg struct {
	drafts []store.Draft
	status string
	err    error
}

type openedMsg struct {
	name    string
	content *richtext.Content
	err     error
}

// picker lists stored drafts over the editor.
type picker struct {
	keys   pickerKeys
	open   bool
	drafts []store.Draft
	cursor int
}

func (p picker) selected() (store.Draft, bool) {
	if p.cursor < 0 || p.cursor >= len(p.drafts) {
		return store.Draft{}, false
	}
	return p.drafts[p.cursor], true
}

func (p picker) withDrafts(drafts []store.Draft) picker {
	p.open = true
	p.drafts = drafts
	p.cursor = clampInt(p.cursor, 0, max(len(drafts)-1, 0))
	return p
}

func (p picker) move(delta int) picker {
	p.cursor = clampInt(p.cursor+delta, 0, max(len(p.drafts)-1, 0))
	return p
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

var (
	pickerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)
	pickerTitleStyle    = lipgloss.NewStyle().Bold(true)
	pickerSelectedStyle = lipgloss.NewStyle().Reverse(true)
	pickerMutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

const pickerTimeFormat = "2006-01-02 15:04"

// view renders the picker box. current marks the draft being edited.
func (p picker) view(current string) string {
	rows := []string{pickerTitleStyle.Render("Drafts")}
	if len(p.drafts) == 0 {
		rows = append(rows, pickerMutedStyle.Render("no saved drafts"))
	}
	for i, d := range p.drafts {
		mark := "  "
		if d.Name == current {
			mark = "* "
		}
		row := fmt.Sprintf("%s%-20s %s", mark, d.Name, d.UpdatedAt.Local().Format(pickerTimeFormat))
		if i == p.cursor {
			row = pickerSelectedStyle.Render(row)
		}
		rows = append(rows, row)
	}
	return pickerStyle.Render(strings.Join(rows, "\n"))
}

// composite draws the picker centered over base.
func (p picker) composite(base, current string, width, height int) string {
	box := p.view(current)
	x := max((width-lipgloss.Width(box))/2, 0)
	y := max((height-lipgloss.Height(box))/2, 0)
	base = lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, base)
	return overlay.Composite(box, base, overlay.Left, overlay.Top, x, y)
}

func listDrafts(st *store.Store) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()
		drafts, err := st.List(ctx)
		return draftsMsg{drafts: drafts, err: err}
	}
}

func openDraft(st *store.Store, name string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()
		c, err := st.Load(ctx, name)
		return openedMsg{name: name, content: c, err: err}
	}
}

func deleteDraft(st *store.Store, name string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()
		if err := st.Delete(ctx, name); err != nil {
			return draftsMsg{err: fmt.Errorf("delete %q: %w", name, err)}
		}
		drafts, err := st.List(ctx)
		return draftsMsg{drafts: drafts, status: fmt.Sprintf("deleted %q", name), err: err}
	}
}
