// Package panel provides the rich-text editor panel: a Bubble Tea component
// made of a formatting toolbar and an editing surface backed by the richtext
// package.
//
// The panel owns one richtext.EditorState. The active block type and the
// inline toggle highlights are projections of that state and are recomputed
// every time the panel adopts a new state. Toolbar presses and key commands
// go through an Engine, so another engine with the same semantics can be
// plugged in.
package panel
