package panel

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/inkwell/richtext"
)

// Style controls the panel's rendering.
type Style struct {
	// Toolbar buttons. ButtonActive is layered over Button for the active
	// block type and for every active toggle.
	Button       lipgloss.Style
	ButtonActive lipgloss.Style

	Text        lipgloss.Style
	Placeholder lipgloss.Style

	// Block type decorations.
	Header     lipgloss.Style
	Quote      lipgloss.Style
	QuoteBar   lipgloss.Style
	CodeBlock  lipgloss.Style
	ListMarker lipgloss.Style

	// Inline styles, keyed by style name.
	Inline map[richtext.InlineStyle]lipgloss.Style

	// Classes style blocks by the class BlockStyleFn returns. The horizontal
	// alignment of a class style positions the block.
	Classes map[string]lipgloss.Style

	Selection lipgloss.Style
	Cursor    lipgloss.Style
}

// ActiveButtonColor is the highlight of an active toolbar button.
const ActiveButtonColor = "#c8c9ff"

func DefaultStyle() Style {
	return Style{
		Button:       lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		ButtonActive: lipgloss.NewStyle().Background(lipgloss.Color(ActiveButtonColor)).Foreground(lipgloss.Color("#000000")),
		Text:         lipgloss.NewStyle(),
		Placeholder:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Header:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")),
		Quote:        lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("246")),
		QuoteBar:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		CodeBlock:    lipgloss.NewStyle().Background(lipgloss.Color("236")),
		ListMarker:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Inline: map[richtext.InlineStyle]lipgloss.Style{
			richtext.Bold:          lipgloss.NewStyle().Bold(true),
			richtext.Italic:        lipgloss.NewStyle().Italic(true),
			richtext.Underline:     lipgloss.NewStyle().Underline(true),
			richtext.Strikethrough: lipgloss.NewStyle().Strikethrough(true),
			richtext.Code:          lipgloss.NewStyle().Background(lipgloss.Color("237")),
		},
		Classes:   DefaultClasses(),
		Selection: lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Cursor:    lipgloss.NewStyle().Reverse(true),
	}
}
