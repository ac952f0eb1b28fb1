// Package preview renders rich-text content as styled Markdown next to the
// editor.
package preview

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/iw2rmb/inkwell/export"
	"github.com/iw2rmb/inkwell/richtext"
)

// DefaultStyle is the glamour standard style used when none is set.
const DefaultStyle = "dark"

// Model is a read-only Bubble Tea component. A render failure replaces the
// preview with the error text; it never stops the host.
type Model struct {
	style    string
	width    int
	height   int
	viewport viewport.Model

	renderer *glamour.TermRenderer
	content  *richtext.Content
	rendered string
	err      error
}

func New(style string) Model {
	if style == "" {
		style = DefaultStyle
	}
	m := Model{style: style, viewport: viewport.New(0, 0)}
	m.renderer, m.err = newRenderer(style, 0)
	return m
}

// defaultWrap is used until the first SetSize.
const defaultWrap = 80

func newRenderer(style string, width int) (*glamour.TermRenderer, error) {
	if width <= 0 {
		width = defaultWrap
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, fmt.Errorf("preview renderer %q: %w", style, err)
	}
	return r, nil
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Style() string { return m.style }

// Rendered returns the last rendered output.
func (m Model) Rendered() string { return m.rendered }

// Err returns the last render error, if any.
func (m Model) Err() error { return m.err }

func (m Model) SetSize(width, height int) Model {
	width, height = max(width, 0), max(height, 0)
	if width == m.width && height == m.height {
		return m
	}
	m.width, m.height = width, height
	m.viewport.Width, m.viewport.Height = width, height
	m.renderer, m.err = newRenderer(m.style, width)
	m.render()
	return m
}

func (m Model) SetStyle(style string) Model {
	if style == "" {
		style = DefaultStyle
	}
	if style == m.style {
		return m
	}
	m.style = style
	m.renderer, m.err = newRenderer(style, m.width)
	m.render()
	return m
}

// SetContent re-renders the preview for c.
func (m Model) SetContent(c *richtext.Content) Model {
	m.content = c
	m.render()
	return m
}

func (m *Model) render() {
	if m.content == nil {
		m.rendered = ""
		m.viewport.SetContent("")
		return
	}
	if m.renderer == nil {
		// m.err holds the renderer failure.
		m.rendered = ""
		m.viewport.SetContent(m.errorText())
		return
	}
	out, err := m.renderer.Render(export.Markdown(m.content))
	if err != nil {
		m.err = fmt.Errorf("render preview: %w", err)
		m.rendered = ""
		m.viewport.SetContent(m.errorText())
		return
	}
	m.err = nil
	m.rendered = out
	m.viewport.SetContent(out)
}

func (m Model) errorText() string {
	if m.err == nil {
		return ""
	}
	return "preview unavailable: " + m.err.Error()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.height > 0 {
		return m.viewport.View()
	}
	if m.err != nil {
		return m.errorText()
	}
	return m.rendered
}
