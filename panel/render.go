package panel

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/inkwell/internal/grapheme"
	"github.com/iw2rmb/inkwell/richtext"
)

type toolbarItem struct {
	x0, x1 int // cell span, x1 exclusive
	label  string
	action string
	toggle bool
}

// layoutToolbar places block buttons from the left edge and toggles against
// the right edge, keeping at least one cell between the groups.
func (m *Model) layoutToolbar() []toolbarItem {
	items := make([]toolbarItem, 0, len(BlockButtons)+len(ToggleButtons))
	x := 0
	for _, b := range BlockButtons {
		label := " " + m.cfg.Icons.Label(b.Icon) + " "
		w := grapheme.StringWidth(label)
		items = append(items, toolbarItem{x0: x, x1: x + w, label: label, action: b.Action})
		x += w
	}
	toggleW := 0
	for _, b := range ToggleButtons {
		toggleW += grapheme.StringWidth(" " + m.cfg.Icons.Label(b.Icon) + " ")
	}
	x = max(m.width-toggleW, x+1)
	for _, b := range ToggleButtons {
		label := " " + m.cfg.Icons.Label(b.Icon) + " "
		w := grapheme.StringWidth(label)
		items = append(items, toolbarItem{x0: x, x1: x + w, label: label, action: b.Action, toggle: true})
		x += w
	}
	return items
}

func (m *Model) isActive(it toolbarItem) bool {
	if it.toggle {
		return m.toggles[richtext.InlineStyle(it.action)]
	}
	return it.action == string(m.blockType)
}

func (m *Model) renderToolbar() string {
	var sb strings.Builder
	x := 0
	for _, it := range m.buttons {
		sb.WriteString(blanks(it.x0 - x))
		if m.isActive(it) {
			sb.WriteString(m.cfg.Style.ButtonActive.Render(it.label))
		} else {
			sb.WriteString(m.cfg.Style.Button.Render(it.label))
		}
		x = it.x1
	}
	return sb.String()
}

func (m *Model) renderContent() string {
	st := m.cfg.Style
	if m.isPlaceholderVisible() {
		ph := st.Placeholder.Render(m.cfg.Placeholder)
		if m.focused && !m.cfg.ReadOnly {
			return st.Cursor.Render(" ") + ph
		}
		return ph
	}

	blocks := m.state.CurrentContent().Blocks()
	sel := m.state.Selection()
	focusIdx := m.state.CurrentContent().IndexOf(sel.Focus.Key)

	rows := make([]string, 0, len(m.lines))
	for _, l := range m.lines {
		b := blocks[l.block]
		var sb strings.Builder
		sb.WriteString(blanks(l.pad + l.indentW))
		if l.first {
			sb.WriteString(m.prefixStyle(b.Type()).Render(l.prefix))
		} else {
			sb.WriteString(blanks(l.prefixW))
		}

		base := m.baseStyle(b.Type())
		from, to, hasSel := m.selectedRange(l.block)
		cursorAt := -1
		if m.focused && l.block == focusIdx {
			cursorAt = sel.Focus.Offset
		}

		var run strings.Builder
		runKey := ""
		var runStyle lipgloss.Style
		flush := func() {
			if run.Len() > 0 {
				sb.WriteString(runStyle.Render(run.String()))
				run.Reset()
			}
		}
		for i := l.start; i < l.end; i++ {
			styles := b.StyleAt(i)
			selected := hasSel && i >= from && i < to
			cursor := i == cursorAt
			key := styles.String()
			if selected {
				key += "+sel"
			}
			if cursor {
				key += "+cur"
			}
			if key != runKey || cursor {
				flush()
				runKey = key
				runStyle = m.charStyle(base, styles, selected, cursor)
			}
			run.WriteString(b.Char(i))
		}
		flush()
		if l.last && cursorAt == l.end {
			sb.WriteString(st.Cursor.Inherit(base).Render(" "))
		}
		rows = append(rows, sb.String())
	}
	return strings.Join(rows, "\n")
}

func (m *Model) baseStyle(t richtext.BlockType) lipgloss.Style {
	switch {
	case t.HeaderLevel() > 0:
		return m.cfg.Style.Header.Inherit(m.cfg.Style.Text)
	case t == richtext.Blockquote:
		return m.cfg.Style.Quote.Inherit(m.cfg.Style.Text)
	case t == richtext.CodeBlock:
		return m.cfg.Style.CodeBlock.Inherit(m.cfg.Style.Text)
	default:
		return m.cfg.Style.Text
	}
}

func (m *Model) prefixStyle(t richtext.BlockType) lipgloss.Style {
	if t == richtext.Blockquote {
		return m.cfg.Style.QuoteBar
	}
	return m.cfg.Style.ListMarker
}

func (m *Model) charStyle(base lipgloss.Style, styles richtext.StyleSet, selected, cursor bool) lipgloss.Style {
	out := base
	for _, s := range styles.Slice() {
		if is, ok := m.cfg.Style.Inline[s]; ok {
			out = is.Inherit(out)
		}
	}
	if selected {
		out = m.cfg.Style.Selection.Inherit(out)
	}
	if cursor {
		out = m.cfg.Style.Cursor.Inherit(out)
	}
	return out
}

// selectedRange returns the selected grapheme span within block bi.
func (m *Model) selectedRange(bi int) (from, to int, ok bool) {
	sel := m.state.Selection()
	if sel.IsCollapsed() {
		return 0, 0, false
	}
	c := m.state.CurrentContent()
	si, ei := c.IndexOf(sel.StartKey()), c.IndexOf(sel.EndKey())
	if bi < si || bi > ei {
		return 0, 0, false
	}
	from, to = 0, c.Blocks()[bi].Len()
	if bi == si {
		from = sel.StartOffset()
	}
	if bi == ei {
		to = sel.EndOffset()
	}
	return from, to, from < to
}
