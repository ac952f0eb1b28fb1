package panel

import "github.com/iw2rmb/inkwell/richtext"

// ChangeEvent describes an adopted state change.
type ChangeEvent struct {
	State     *richtext.EditorState
	BlockType richtext.BlockType
	Toggles   Toggles

	// Diff is the plain-text diff against the previous state. It is nil when
	// only the selection or styling changed.
	Diff []richtext.TextDiff
}

func buildChangeEvent(prev *richtext.EditorState, m *Model) ChangeEvent {
	ev := ChangeEvent{
		State:     m.state,
		BlockType: m.blockType,
		Toggles:   m.Toggles(),
	}
	if prev != nil && prev.CurrentContent() != m.state.CurrentContent() {
		ev.Diff = richtext.DiffText(prev.CurrentContent(), m.state.CurrentContent())
	}
	return ev
}
