package panel

import "github.com/iw2rmb/inkwell/richtext"

// Config configures the panel Model.
type Config struct {
	// Initial document. State wins over Text; both empty mount an empty
	// document.
	State *richtext.EditorState
	Text  string

	// Engine defaults to richtext.RichUtils.
	Engine Engine

	// BlockStyleFn resolves a block to a style class. Defaults to BlockStyle.
	BlockStyleFn func(*richtext.Block) string

	KeyMap KeyMap
	Style  Style
	Icons  IconSet

	Placeholder string
	ReadOnly    bool

	// MaxDepth bounds list nesting (default richtext.DefaultMaxDepth).
	MaxDepth int

	// Forwarded to richtext.Options when the panel creates the state.
	HistoryLimit int

	// Clipboard enables copy, cut and paste. Nil disables them.
	Clipboard Clipboard

	// OnChange is called synchronously after every adopted state change.
	OnChange func(ChangeEvent)
}

// DefaultPlaceholder is shown while the document is empty.
const DefaultPlaceholder = "Type something..."
