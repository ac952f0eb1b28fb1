package panel

import "github.com/iw2rmb/inkwell/richtext"

// Engine is the slice of the rich-text engine the panel drives.
type Engine interface {
	ToggleInlineStyle(s *richtext.EditorState, style richtext.InlineStyle) *richtext.EditorState
	ToggleBlockType(s *richtext.EditorState, t richtext.BlockType) *richtext.EditorState
	// HandleKeyCommand returns false when the surface should apply its own
	// default behavior for command.
	HandleKeyCommand(s *richtext.EditorState, command string) (*richtext.EditorState, bool)
}

// tabHandler is implemented by engines that support list indentation.
type tabHandler interface {
	OnTab(s *richtext.EditorState, outdent bool, maxDepth int) *richtext.EditorState
}

// HandleResult reports whether a key command was consumed.
type HandleResult string

const (
	Handled    HandleResult = "handled"
	NotHandled HandleResult = "not-handled"
)
