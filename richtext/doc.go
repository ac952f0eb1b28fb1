// Package richtext implements the immutable rich-text document model that
// backs the inkwell panel.
//
// An EditorState is a snapshot of Content (an ordered list of Blocks), a
// Selection, an optional inline style override, and undo/redo history. Every
// operation returns a new EditorState; existing states are never modified, so
// hosts may keep references to old states freely.
//
// Offsets inside a block count grapheme clusters, not bytes or runes.
package richtext
