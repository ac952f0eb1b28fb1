package panel

import (
	"testing"

	"github.com/iw2rmb/inkwell/richtext"
)

func TestNew_EmptyDocumentDerivesUnstyled(t *testing.T) {
	m := New(Config{})
	if got := m.BlockType(); got != richtext.Unstyled {
		t.Fatalf("block type: got %q, want %q", got, richtext.Unstyled)
	}
	tg := m.Toggles()
	if len(tg) != len(ToggleStyles) {
		t.Fatalf("toggles: got %d entries, want %d", len(tg), len(ToggleStyles))
	}
	for _, s := range ToggleStyles {
		if tg[s] {
			t.Fatalf("toggle %s: got true, want false", s)
		}
	}
}

func TestNew_UsesProvidedState(t *testing.T) {
	st := richtext.CreateWithText("hello")
	st = richtext.ToggleBlockType(st, richtext.HeaderTwo)
	m := New(Config{State: st})
	if m.State() != st {
		t.Fatalf("expected the provided state to be adopted")
	}
	if got := m.BlockType(); got != richtext.HeaderTwo {
		t.Fatalf("block type: got %q, want %q", got, richtext.HeaderTwo)
	}
}

func TestNew_DoesNotFireOnChange(t *testing.T) {
	calls := 0
	_ = New(Config{Text: "x", OnChange: func(ChangeEvent) { calls++ }})
	if calls != 0 {
		t.Fatalf("OnChange calls on mount: got %d, want 0", calls)
	}
}

func TestHandleBlockClick_SetsBlockType(t *testing.T) {
	for _, b := range BlockButtons {
		m := New(Config{Text: "line"})
		m = m.HandleBlockClick(b.Action)
		want := richtext.BlockType(b.Action)
		if got := m.BlockType(); got != want {
			t.Fatalf("%s: got %q, want %q", b.Icon, got, want)
		}
		if got := m.State().CurrentBlock().Type(); got != want {
			t.Fatalf("%s: state block type got %q, want %q", b.Icon, got, want)
		}
	}
}

func TestHandleBlockClick_SameTypeTwiceReturnsToUnstyled(t *testing.T) {
	m := New(Config{Text: "line"})
	m = m.HandleBlockClick(string(richtext.Blockquote))
	m = m.HandleBlockClick(string(richtext.Blockquote))
	if got := m.BlockType(); got != richtext.Unstyled {
		t.Fatalf("got %q, want %q", got, richtext.Unstyled)
	}
}

func TestEmptyAction_IsNoOp(t *testing.T) {
	calls := 0
	m := New(Config{Text: "abc", OnChange: func(ChangeEvent) { calls++ }})
	before := m.State()

	m = m.HandleBlockClick("")
	m = m.HandleToggleClick("")
	if m.State() != before {
		t.Fatalf("empty action replaced the state")
	}
	if calls != 0 {
		t.Fatalf("OnChange calls: got %d, want 0", calls)
	}
}

func TestHandleToggleClick_TwiceRestores(t *testing.T) {
	for _, style := range ToggleStyles {
		m := New(Config{})
		m = m.HandleToggleClick(string(style))
		if !m.Toggles()[style] {
			t.Fatalf("%s: expected active after one press", style)
		}
		m = m.HandleToggleClick(string(style))
		if m.Toggles()[style] {
			t.Fatalf("%s: expected inactive after two presses", style)
		}
	}
}

func TestToggles_MatchCurrentInlineStyle(t *testing.T) {
	m := New(Config{})
	presses := []richtext.InlineStyle{richtext.Bold, richtext.Italic, richtext.Bold, richtext.Underline, richtext.Strikethrough}
	for i, p := range presses {
		m = m.HandleToggleClick(string(p))
		cur := m.State().CurrentInlineStyle()
		for _, s := range ToggleStyles {
			if m.Toggles()[s] != cur.Has(s) {
				t.Fatalf("press %d: toggle %s got %v, state has %v", i, s, m.Toggles()[s], cur.Has(s))
			}
		}
	}
}

func TestToggles_FollowTypedText(t *testing.T) {
	m := New(Config{})
	m = m.HandleToggleClick(string(richtext.Italic))
	m = typeKeys(m, "hi")
	if !m.Toggles()[richtext.Italic] {
		t.Fatalf("expected italic to stay active after typing")
	}
	if got := m.State().CurrentContent().FirstBlock().StyleAt(0); !got.Has(richtext.Italic) {
		t.Fatalf("typed text styles: got %s, want italic", got)
	}
}

func TestBlockStyle(t *testing.T) {
	tests := []struct {
		typ  richtext.BlockType
		want string
	}{
		{richtext.AlignCenter, ClassAlignCenter},
		{richtext.AlignLeft, ClassAlignLeft},
		{richtext.AlignRight, ClassAlignRight},
		{richtext.UnorderedListItem, ClassUnstyled},
		{richtext.HeaderOne, ClassUnstyled},
		{richtext.Unstyled, ClassUnstyled},
	}
	for _, tt := range tests {
		if got := BlockStyle(richtext.NewBlock("k", tt.typ, "x")); got != tt.want {
			t.Fatalf("%s: got %q, want %q", tt.typ, got, tt.want)
		}
	}
	if got := BlockStyle(nil); got != ClassUnstyled {
		t.Fatalf("nil block: got %q, want %q", got, ClassUnstyled)
	}
}

func TestReadOnly_IgnoresPresses(t *testing.T) {
	m := New(Config{Text: "abc", ReadOnly: true})
	before := m.State()
	m = m.HandleBlockClick(string(richtext.HeaderOne))
	m = m.HandleToggleClick(string(richtext.Bold))
	m = typeKeys(m, "zz")
	if m.State() != before {
		t.Fatalf("read-only panel changed state")
	}
}

func TestSetState_RederivesAndNotifies(t *testing.T) {
	var got []ChangeEvent
	m := New(Config{OnChange: func(ev ChangeEvent) { got = append(got, ev) }})

	st := richtext.ToggleBlockType(richtext.CreateWithText("quote"), richtext.Blockquote)
	m = m.SetState(st)
	if m.BlockType() != richtext.Blockquote {
		t.Fatalf("block type: got %q, want %q", m.BlockType(), richtext.Blockquote)
	}
	if len(got) != 1 || got[0].State != st || got[0].BlockType != richtext.Blockquote {
		t.Fatalf("unexpected events: %+v", got)
	}
}

func TestFocusBlur(t *testing.T) {
	m := New(Config{})
	if !m.Focused() {
		t.Fatalf("expected new panel to be focused")
	}
	m = m.Blur()
	if m.Focused() {
		t.Fatalf("expected blurred panel")
	}
	m = m.Focus()
	if !m.Focused() {
		t.Fatalf("expected focused panel")
	}
}
