package preview

import (
	"strings"
	"testing"

	"github.com/iw2rmb/inkwell/richtext"
)

func TestSetContent_RendersMarkdown(t *testing.T) {
	m := New("notty").SetSize(40, 0)
	c := richtext.ContentFromText("Hello preview")
	m = m.SetContent(c)

	if err := m.Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(m.View(), "Hello preview") {
		t.Fatalf("preview does not contain the text: %q", m.View())
	}
}

func TestSetContent_NilClears(t *testing.T) {
	m := New("notty").SetContent(richtext.ContentFromText("x")).SetContent(nil)
	if got := m.View(); got != "" {
		t.Fatalf("got %q, want empty", got)
	}
}

func TestNew_DefaultStyle(t *testing.T) {
	if got := New("").Style(); got != DefaultStyle {
		t.Fatalf("got %q, want %q", got, DefaultStyle)
	}
}

func TestUnknownStyle_ShowsError(t *testing.T) {
	m := New("no-such-style").SetContent(richtext.ContentFromText("x"))
	if m.Err() == nil {
		t.Fatalf("expected an error for an unknown style")
	}
	if !strings.HasPrefix(m.View(), "preview unavailable: ") {
		t.Fatalf("got %q", m.View())
	}
}

func TestSetStyle_Rerenders(t *testing.T) {
	m := New("no-such-style").SetContent(richtext.ContentFromText("again"))
	m = m.SetStyle("notty")
	if err := m.Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(m.Rendered(), "again") {
		t.Fatalf("got %q", m.Rendered())
	}
}
