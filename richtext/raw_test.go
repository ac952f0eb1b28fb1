package richtext

import (
	"errors"
	"strings"
	"testing"
)

func TestRaw_RoundTrip(t *testing.T) {
	s := CreateWithText("Title\nsome bold text\nitem")
	s = ToggleBlockType(s, HeaderOne)
	s = selectRange(t, s, 1, 5, 1, 9)
	s = ToggleInlineStyle(s, Bold)
	s = selectRange(t, s, 1, 7, 1, 14)
	s = ToggleInlineStyle(s, Italic)
	s = ForceSelection(s, Collapsed(posIn(t, s, 2, 0)))
	s = ToggleBlockType(s, UnorderedListItem)
	s = OnTab(s, false, 0)

	data, err := MarshalRaw(s.CurrentContent())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(data), `"inlineStyleRanges":[{"offset":5,"length":4,"style":"BOLD"},{"offset":7,"length":7,"style":"ITALIC"}]`) {
		t.Fatalf("unexpected style ranges in %s", data)
	}

	c, err := UnmarshalRaw(data)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	orig := s.CurrentContent()
	if c.BlockCount() != orig.BlockCount() {
		t.Fatalf("block count: got %d, want %d", c.BlockCount(), orig.BlockCount())
	}
	for i, want := range orig.Blocks() {
		got := c.Blocks()[i]
		if got.Key() != want.Key() || got.Type() != want.Type() || got.Depth() != want.Depth() || got.Text() != want.Text() {
			t.Fatalf("block %d: got %+v, want %+v", i, got, want)
		}
		for j := 0; j < want.Len(); j++ {
			if !got.StyleAt(j).Equal(want.StyleAt(j)) {
				t.Fatalf("block %d cluster %d: got %s, want %s", i, j, got.StyleAt(j), want.StyleAt(j))
			}
		}
	}
}

func TestFromRaw_Validation(t *testing.T) {
	cases := []struct {
		name string
		raw  RawContent
	}{
		{"duplicate key", RawContent{Blocks: []RawBlock{{Key: "a"}, {Key: "a"}}}},
		{"range past end", RawContent{Blocks: []RawBlock{{Key: "a", Text: "ab", InlineStyleRanges: []RawStyleRange{{Offset: 1, Length: 2, Style: Bold}}}}}},
		{"negative depth", RawContent{Blocks: []RawBlock{{Key: "a", Depth: -1}}}},
	}
	for _, tc := range cases {
		if _, err := FromRaw(tc.raw); !errors.Is(err, ErrInvalidRaw) {
			t.Fatalf("%s: got %v, want ErrInvalidRaw", tc.name, err)
		}
	}

	if _, err := UnmarshalRaw([]byte("{")); !errors.Is(err, ErrInvalidRaw) {
		t.Fatalf("bad json: got %v, want ErrInvalidRaw", err)
	}
}

func TestFromRaw_DefaultsMissingFields(t *testing.T) {
	c, err := FromRaw(RawContent{Blocks: []RawBlock{{Text: "x"}, {Text: "y"}}})
	if err != nil {
		t.Fatalf("from raw: %v", err)
	}
	a, b := c.Blocks()[0], c.Blocks()[1]
	if a.Key() == "" || a.Key() == b.Key() {
		t.Fatalf("missing keys must be generated uniquely: %q %q", a.Key(), b.Key())
	}
	if a.Type() != Unstyled {
		t.Fatalf("missing type: got %q, want %q", a.Type(), Unstyled)
	}

	empty, err := FromRaw(RawContent{})
	if err != nil || empty.BlockCount() != 1 {
		t.Fatalf("empty raw must yield one block: %v", err)
	}
}
