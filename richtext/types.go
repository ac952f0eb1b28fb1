package richtext

// BlockType is the structural type of a block.
type BlockType string

const (
	Unstyled          BlockType = "unstyled"
	Paragraph         BlockType = "paragraph"
	HeaderOne         BlockType = "header-one"
	HeaderTwo         BlockType = "header-two"
	HeaderThree       BlockType = "header-three"
	HeaderFour        BlockType = "header-four"
	HeaderFive        BlockType = "header-five"
	HeaderSix         BlockType = "header-six"
	UnorderedListItem BlockType = "unordered-list-item"
	OrderedListItem   BlockType = "ordered-list-item"
	Blockquote        BlockType = "blockquote"
	CodeBlock         BlockType = "code-block"

	// Alignment markers are block types in their own right.
	AlignLeft   BlockType = "left"
	AlignCenter BlockType = "center"
	AlignRight  BlockType = "right"
)

// HeaderLevel returns 1..6 for header types and 0 otherwise.
func (t BlockType) HeaderLevel() int {
	switch t {
	case HeaderOne:
		return 1
	case HeaderTwo:
		return 2
	case HeaderThree:
		return 3
	case HeaderFour:
		return 4
	case HeaderFive:
		return 5
	case HeaderSix:
		return 6
	}
	return 0
}

// IsList reports whether t is a list item type.
func (t BlockType) IsList() bool {
	return t == UnorderedListItem || t == OrderedListItem
}

// InlineStyle is a character-scoped formatting attribute.
type InlineStyle string

const (
	Bold          InlineStyle = "BOLD"
	Italic        InlineStyle = "ITALIC"
	Underline     InlineStyle = "UNDERLINE"
	Strikethrough InlineStyle = "STRIKETHROUGH"
	Code          InlineStyle = "CODE"
)

// ChangeType labels the operation that produced a pushed state. It drives
// undo coalescing.
type ChangeType string

const (
	ChangeNone               ChangeType = ""
	ChangeInsertCharacters   ChangeType = "insert-characters"
	ChangeInsertFragment     ChangeType = "insert-fragment"
	ChangeBackspaceCharacter ChangeType = "backspace-character"
	ChangeDeleteCharacter    ChangeType = "delete-character"
	ChangeRemoveRange        ChangeType = "remove-range"
	ChangeSplitBlock         ChangeType = "split-block"
	ChangeInlineStyle        ChangeType = "change-inline-style"
	ChangeBlockType          ChangeType = "change-block-type"
	ChangeAdjustDepth        ChangeType = "adjust-depth"
	ChangeUndo               ChangeType = "undo"
	ChangeRedo               ChangeType = "redo"
)

// Named editing commands produced by key bindings.
const (
	CommandBold                   = "bold"
	CommandItalic                 = "italic"
	CommandUnderline              = "underline"
	CommandStrikethrough          = "strikethrough"
	CommandCode                   = "code"
	CommandBackspace              = "backspace"
	CommandBackspaceWord          = "backspace-word"
	CommandBackspaceToStartOfLine = "backspace-to-start-of-line"
	CommandDelete                 = "delete"
	CommandSplitBlock             = "split-block"
	CommandUndo                   = "undo"
	CommandRedo                   = "redo"
)

// Pos addresses a grapheme boundary inside the block identified by Key.
type Pos struct {
	Key    string
	Offset int
}

// Selection is an anchor/focus pair. Backward is true when the focus
// precedes the anchor in document order.
type Selection struct {
	Anchor   Pos
	Focus    Pos
	Backward bool
}

// Collapsed returns an empty selection at p.
func Collapsed(p Pos) Selection {
	return Selection{Anchor: p, Focus: p}
}

func (s Selection) IsCollapsed() bool { return s.Anchor == s.Focus }

// Start returns the earlier endpoint in document order.
func (s Selection) Start() Pos {
	if s.Backward {
		return s.Focus
	}
	return s.Anchor
}

// End returns the later endpoint in document order.
func (s Selection) End() Pos {
	if s.Backward {
		return s.Anchor
	}
	return s.Focus
}

func (s Selection) StartKey() string    { return s.Start().Key }
func (s Selection) StartOffset() int    { return s.Start().Offset }
func (s Selection) EndKey() string      { return s.End().Key }
func (s Selection) EndOffset() int      { return s.End().Offset }
func (s Selection) IsSingleBlock() bool { return s.Anchor.Key == s.Focus.Key }

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
