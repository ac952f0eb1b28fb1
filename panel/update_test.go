package panel

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/inkwell/richtext"
)

func typeKeys(m Model, text string) Model {
	for _, r := range text {
		if r == ' ' {
			m, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
			continue
		}
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func press(m Model, kt tea.KeyType) Model {
	m, _ = m.Update(tea.KeyMsg{Type: kt})
	return m
}

func alt(m Model, r rune) Model {
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}, Alt: true})
	return m
}

func plainText(m Model) string { return m.State().CurrentContent().PlainText() }

type fakeClipboard struct {
	text string
	err  error
}

func (c *fakeClipboard) ReadText() (string, error) { return c.text, c.err }

func (c *fakeClipboard) WriteText(s string) error {
	if c.err != nil {
		return c.err
	}
	c.text = s
	return nil
}

// stubEngine claims every command without changing anything.
type stubEngine struct{ richtext.RichUtils }

func (stubEngine) HandleKeyCommand(s *richtext.EditorState, _ string) (*richtext.EditorState, bool) {
	return s, true
}

func TestUpdate_TypingAndUndo(t *testing.T) {
	m := New(Config{})
	m = typeKeys(m, "hi there")
	if got := plainText(m); got != "hi there" {
		t.Fatalf("text: got %q, want %q", got, "hi there")
	}

	m = press(m, tea.KeyCtrlZ)
	if got := plainText(m); got != "" {
		t.Fatalf("after undo: got %q, want empty", got)
	}
	m = press(m, tea.KeyCtrlY)
	if got := plainText(m); got != "hi there" {
		t.Fatalf("after redo: got %q, want %q", got, "hi there")
	}
}

func TestUpdate_EnterSplitsBlock(t *testing.T) {
	m := New(Config{})
	m = typeKeys(m, "ab")
	m = press(m, tea.KeyLeft)
	m = press(m, tea.KeyEnter)
	if got := plainText(m); got != "a\nb" {
		t.Fatalf("text: got %q, want %q", got, "a\nb")
	}
	if n := m.State().CurrentContent().BlockCount(); n != 2 {
		t.Fatalf("blocks: got %d, want 2", n)
	}
}

func TestUpdate_BackspaceAndDelete(t *testing.T) {
	m := New(Config{Text: "abcd"})
	m = press(m, tea.KeyEnd)
	m = press(m, tea.KeyBackspace)
	if got := plainText(m); got != "abc" {
		t.Fatalf("after backspace: got %q", got)
	}
	m = press(m, tea.KeyHome)
	m = press(m, tea.KeyDelete)
	if got := plainText(m); got != "bc" {
		t.Fatalf("after delete: got %q", got)
	}
}

func TestUpdate_BlockedWhenNotFocused(t *testing.T) {
	m := New(Config{}).Blur()
	m = typeKeys(m, "x")
	if got := plainText(m); got != "" {
		t.Fatalf("blurred panel accepted input: %q", got)
	}
}

func TestHandleKeyCommand(t *testing.T) {
	m := New(Config{})

	m2, res := m.HandleKeyCommand(richtext.CommandBold)
	if res != Handled {
		t.Fatalf("bold: got %q, want %q", res, Handled)
	}
	if !m2.Toggles()[richtext.Bold] {
		t.Fatalf("bold: expected toggle to be active")
	}

	for _, cmd := range []string{richtext.CommandBackspace, richtext.CommandSplitBlock, "no-such-command", ""} {
		got, res := m.HandleKeyCommand(cmd)
		if res != NotHandled {
			t.Fatalf("%q: got %q, want %q", cmd, res, NotHandled)
		}
		if got.State() != m.State() {
			t.Fatalf("%q: state changed on a command that was not handled", cmd)
		}
	}
}

func TestHandleKeyCommand_BackspaceResetsStyledBlock(t *testing.T) {
	m := New(Config{Text: "title"})
	m = m.HandleBlockClick(string(richtext.HeaderOne))

	m, res := m.HandleKeyCommand(richtext.CommandBackspace)
	if res != Handled {
		t.Fatalf("got %q, want %q", res, Handled)
	}
	if m.BlockType() != richtext.Unstyled {
		t.Fatalf("block type: got %q, want %q", m.BlockType(), richtext.Unstyled)
	}
	if got := plainText(m); got != "title" {
		t.Fatalf("text: got %q, want %q", got, "title")
	}
}

func TestUpdate_HandledCommandSkipsDefault(t *testing.T) {
	m := New(Config{Text: "ab", Engine: stubEngine{}})
	m = press(m, tea.KeyEnd)
	m = press(m, tea.KeyBackspace)
	if got := plainText(m); got != "ab" {
		t.Fatalf("default backspace ran for a handled command: %q", got)
	}
}

func TestUpdate_FormattingKeys(t *testing.T) {
	m := New(Config{})
	m = press(m, tea.KeyCtrlB)
	m = alt(m, 'i')
	m = press(m, tea.KeyCtrlU)
	m = alt(m, 's')
	for _, s := range ToggleStyles {
		if !m.Toggles()[s] {
			t.Fatalf("%s: expected active", s)
		}
	}
	m = typeKeys(m, "x")
	got := m.State().CurrentContent().FirstBlock().StyleAt(0)
	for _, s := range ToggleStyles {
		if !got.Has(s) {
			t.Fatalf("typed text lacks %s: %s", s, got)
		}
	}
}

func TestUpdate_TabIndentsListItems(t *testing.T) {
	m := New(Config{Text: "a\nb", MaxDepth: 1})
	m = m.HandleBlockClick(string(richtext.UnorderedListItem))
	m = press(m, tea.KeyTab)
	m = press(m, tea.KeyTab)
	if d := m.State().CurrentBlock().Depth(); d != 1 {
		t.Fatalf("depth: got %d, want 1", d)
	}
	m = press(m, tea.KeyShiftTab)
	if d := m.State().CurrentBlock().Depth(); d != 0 {
		t.Fatalf("depth after outdent: got %d, want 0", d)
	}
}

func TestUpdate_Movement(t *testing.T) {
	m := New(Config{Text: "hello world\nnext"})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight, Alt: true})
	if got := m.State().Selection().Focus.Offset; got != 5 {
		t.Fatalf("word right: got %d, want 5", got)
	}
	m = press(m, tea.KeyDown)
	if got := m.State().CurrentBlock().Text(); got != "next" {
		t.Fatalf("down: got block %q", got)
	}
	m = press(m, tea.KeyCtrlEnd)
	if got := m.State().Selection().Focus.Offset; got != 4 {
		t.Fatalf("doc end: got %d, want 4", got)
	}
	m = press(m, tea.KeyShiftLeft)
	if got := m.State().CurrentContent().TextInSelection(m.State().Selection()); got != "t" {
		t.Fatalf("extend: got %q, want %q", got, "t")
	}
}

func TestUpdate_Clipboard(t *testing.T) {
	cb := &fakeClipboard{}
	m := New(Config{Text: "hello", Clipboard: cb})

	m = alt(m, 'a')
	m = press(m, tea.KeyCtrlC)
	if cb.text != "hello" {
		t.Fatalf("copy: got %q", cb.text)
	}
	m = press(m, tea.KeyCtrlX)
	if got := plainText(m); got != "" {
		t.Fatalf("cut: got %q, want empty", got)
	}

	cb.text = "e\u0301"
	m = press(m, tea.KeyCtrlV)
	if got := plainText(m); got != "\u00e9" {
		t.Fatalf("paste: got %q, want NFC %q", got, "\u00e9")
	}
}

func TestUpdate_ClipboardErrorsAreIgnored(t *testing.T) {
	cb := &fakeClipboard{err: errors.New("no clipboard")}
	m := New(Config{Text: "hello", Clipboard: cb})
	m = alt(m, 'a')
	m = press(m, tea.KeyCtrlX)
	m = press(m, tea.KeyCtrlV)
	if got := plainText(m); got != "" {
		t.Fatalf("got %q, want the cut to apply", got)
	}
}

func TestUpdate_BracketedPaste(t *testing.T) {
	m := New(Config{})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a\nb"), Paste: true})
	if n := m.State().CurrentContent().BlockCount(); n != 2 {
		t.Fatalf("blocks: got %d, want 2", n)
	}
}

func TestUpdate_ToolbarClick(t *testing.T) {
	m := New(Config{Text: "line"}).SetSize(60, 10)

	m, _ = m.Update(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.BlockType() != richtext.HeaderOne {
		t.Fatalf("block type: got %q, want %q", m.BlockType(), richtext.HeaderOne)
	}

	var bold toolbarItem
	for _, it := range m.buttons {
		if it.toggle && it.action == string(richtext.Bold) {
			bold = it
		}
	}
	if bold.x0 != 48 {
		t.Fatalf("bold button should sit against the right edge, got span [%d,%d)", bold.x0, bold.x1)
	}
	m, _ = m.Update(tea.MouseMsg{X: bold.x0 + 1, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if !m.Toggles()[richtext.Bold] {
		t.Fatalf("expected bold toggle after click")
	}
}

func TestUpdate_MouseClickAndDrag(t *testing.T) {
	m := New(Config{Text: "hello\nworld"}).SetSize(40, 10)
	c := m.State().CurrentContent()

	m, _ = m.Update(tea.MouseMsg{X: 3, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	want := richtext.Pos{Key: c.Blocks()[1].Key(), Offset: 3}
	if got := m.State().Selection().Focus; got != want {
		t.Fatalf("click: got %+v, want %+v", got, want)
	}

	m, _ = m.Update(tea.MouseMsg{X: 1, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = m.Update(tea.MouseMsg{X: 4, Y: 3, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	m, _ = m.Update(tea.MouseMsg{X: 4, Y: 3, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	sel := m.State().Selection()
	if got := m.State().CurrentContent().TextInSelection(sel); got != "ello\nworl" {
		t.Fatalf("drag selection: got %q", got)
	}
}

func TestOnChange_ReportsDiffForEdits(t *testing.T) {
	var events []ChangeEvent
	m := New(Config{Text: "ab", OnChange: func(ev ChangeEvent) { events = append(events, ev) }})

	m = typeKeys(m, "x")
	if len(events) != 1 || len(events[0].Diff) == 0 {
		t.Fatalf("typing: expected one event with a diff, got %+v", events)
	}
	ins, del := richtext.DiffStats(events[0].Diff)
	if ins != 1 || del != 0 {
		t.Fatalf("diff stats: got +%d -%d, want +1 -0", ins, del)
	}

	_ = press(m, tea.KeyRight)
	if len(events) != 2 || events[1].Diff != nil {
		t.Fatalf("move: expected an event without a diff, got %+v", events[len(events)-1])
	}
}
