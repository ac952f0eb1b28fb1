package grapheme

import "testing"

const family = "\U0001F468‍\U0001F469‍\U0001F467"

func TestSplitAndCount_MultiRuneGraphemes(t *testing.T) {
	text := "a" + "é" + family + "b"
	got := Split(text)
	if len(got) != 4 {
		t.Fatalf("split len=%d, want %d", len(got), 4)
	}
	if got[1] != "é" {
		t.Fatalf("split[1]=%q, want %q", got[1], "é")
	}
	if got[2] != family {
		t.Fatalf("split[2]=%q, want family emoji", got[2])
	}
	if c := Count(text); c != 4 {
		t.Fatalf("count=%d, want %d", c, 4)
	}
	if j := Join(got); j != text {
		t.Fatalf("join=%q, want %q", j, text)
	}
}

func TestWidth(t *testing.T) {
	cases := []struct {
		cluster string
		want    int
	}{
		{cluster: "a", want: 1},
		{cluster: "\t", want: TabWidth},
		{cluster: "漢", want: 2},
		{cluster: "é", want: 1},
	}
	for _, tc := range cases {
		if got := Width(tc.cluster); got != tc.want {
			t.Fatalf("Width(%q): got %d, want %d", tc.cluster, got, tc.want)
		}
	}
	if got := StringWidth("a漢b"); got != 4 {
		t.Fatalf("StringWidth: got %d, want %d", got, 4)
	}
}

func TestClassifiers(t *testing.T) {
	if !IsSpace("\t") {
		t.Fatalf("tab should be space")
	}
	if IsSpace("a") {
		t.Fatalf("letter should not be space")
	}
	if !IsWord("_") || !IsWord("7") || !IsWord("é") {
		t.Fatalf("underscore, digit and letter should be word clusters")
	}
	if IsWord("!") || IsWord("") {
		t.Fatalf("punctuation and empty should not be word clusters")
	}
}
