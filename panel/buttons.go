package panel

import "github.com/iw2rmb/inkwell/richtext"

// Button pairs an icon reference with the action it dispatches.
type Button struct {
	Icon   string
	Action string
}

// BlockButtons are the block type buttons, left to right.
var BlockButtons = []Button{
	{Icon: "heading-solid", Action: string(richtext.HeaderOne)},
	{Icon: "paragraph-solid", Action: string(richtext.Unstyled)},
	{Icon: "list-ol-solid", Action: string(richtext.OrderedListItem)},
	{Icon: "list-ul-solid", Action: string(richtext.UnorderedListItem)},
	{Icon: "align-left-solid", Action: string(richtext.AlignLeft)},
	{Icon: "align-center-solid", Action: string(richtext.AlignCenter)},
	{Icon: "align-right-solid", Action: string(richtext.AlignRight)},
	{Icon: "quote-right-solid", Action: string(richtext.Blockquote)},
	{Icon: "code-solid", Action: string(richtext.CodeBlock)},
}

// ToggleButtons are the inline style buttons, left to right.
var ToggleButtons = []Button{
	{Icon: "bold-solid", Action: string(richtext.Bold)},
	{Icon: "italic-solid", Action: string(richtext.Italic)},
	{Icon: "underline-solid", Action: string(richtext.Underline)},
	{Icon: "strikethrough-solid", Action: string(richtext.Strikethrough)},
}

// IconSet resolves icon references to terminal labels.
type IconSet map[string]string

// Label returns the label for icon, falling back to the reference itself.
func (s IconSet) Label(icon string) string {
	if l, ok := s[icon]; ok {
		return l
	}
	return icon
}

func DefaultIcons() IconSet {
	return IconSet{
		"heading-solid":       "H",
		"paragraph-solid":     "¶",
		"list-ol-solid":       "1.",
		"list-ul-solid":       "•",
		"align-left-solid":    "⇤",
		"align-center-solid":  "↔",
		"align-right-solid":   "⇥",
		"quote-right-solid":   "❝",
		"code-solid":          "</>",
		"bold-solid":          "B",
		"italic-solid":        "I",
		"underline-solid":     "U",
		"strikethrough-solid": "S",
	}
}

// ASCIIIcons is for terminals without good Unicode coverage.
func ASCIIIcons() IconSet {
	return IconSet{
		"heading-solid":       "H",
		"paragraph-solid":     "P",
		"list-ol-solid":       "1.",
		"list-ul-solid":       "*",
		"align-left-solid":    "|<",
		"align-center-solid":  "><",
		"align-right-solid":   ">|",
		"quote-right-solid":   "\"",
		"code-solid":          "{}",
		"bold-solid":          "B",
		"italic-solid":        "I",
		"underline-solid":     "U",
		"strikethrough-solid": "S",
	}
}

// ToggleStyles are the inline styles tracked by Toggles.
var ToggleStyles = []richtext.InlineStyle{
	richtext.Bold,
	richtext.Italic,
	richtext.Underline,
	richtext.Strikethrough,
}

// Toggles reports, per toolbar inline style, whether it is active at the
// cursor. It always holds an entry for every style in ToggleStyles.
type Toggles map[richtext.InlineStyle]bool

func deriveToggles(set richtext.StyleSet) Toggles {
	t := make(Toggles, len(ToggleStyles))
	for _, s := range ToggleStyles {
		t[s] = set.Has(s)
	}
	return t
}
