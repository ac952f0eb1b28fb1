package panel

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/inkwell/richtext"
)

// Block style classes returned by BlockStyle.
const (
	ClassUnstyled    = "unstyled"
	ClassAlignLeft   = "align-left"
	ClassAlignCenter = "align-center"
	ClassAlignRight  = "align-right"
)

// BlockStyle maps a block to its style class. Only the alignment markers get
// a class of their own.
func BlockStyle(b *richtext.Block) string {
	if b == nil {
		return ClassUnstyled
	}
	switch b.Type() {
	case richtext.AlignLeft:
		return ClassAlignLeft
	case richtext.AlignCenter:
		return ClassAlignCenter
	case richtext.AlignRight:
		return ClassAlignRight
	default:
		return ClassUnstyled
	}
}

// DefaultClasses are the class styles used when Style.Classes has no entry.
func DefaultClasses() map[string]lipgloss.Style {
	return map[string]lipgloss.Style{
		ClassUnstyled:    lipgloss.NewStyle(),
		ClassAlignLeft:   lipgloss.NewStyle().Align(lipgloss.Left),
		ClassAlignCenter: lipgloss.NewStyle().Align(lipgloss.Center),
		ClassAlignRight:  lipgloss.NewStyle().Align(lipgloss.Right),
	}
}

func (m *Model) classStyle(class string) lipgloss.Style {
	if st, ok := m.cfg.Style.Classes[class]; ok {
		return st
	}
	if st, ok := defaultClasses[class]; ok {
		return st
	}
	return lipgloss.NewStyle()
}

var defaultClasses = DefaultClasses()
