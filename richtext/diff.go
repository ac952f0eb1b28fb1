package richtext

import dmp "github.com/sergi/go-diff/diffmatchpatch"

type DiffOp int8

const (
	DiffEqual DiffOp = iota
	DiffInsert
	DiffDelete
)

// TextDiff is one span of a plain-text diff.
type TextDiff struct {
	Op   DiffOp
	Text string
}

// DiffText compares the plain text of two contents. Blocks are separated by
// newlines. Identical texts yield nil.
func DiffText(before, after *Content) []TextDiff {
	a, b := before.PlainText(), after.PlainText()
	if a == b {
		return nil
	}
	d := dmp.New()
	diffs := d.DiffMain(a, b, false)
	diffs = d.DiffCleanupSemantic(diffs)

	out := make([]TextDiff, 0, len(diffs))
	for _, df := range diffs {
		var op DiffOp
		switch df.Type {
		case dmp.DiffInsert:
			op = DiffInsert
		case dmp.DiffDelete:
			op = DiffDelete
		default:
			op = DiffEqual
		}
		out = append(out, TextDiff{Op: op, Text: df.Text})
	}
	return out
}

// DiffStats counts inserted and deleted runes in diffs.
func DiffStats(diffs []TextDiff) (inserted, deleted int) {
	for _, d := range diffs {
		switch d.Op {
		case DiffInsert:
			inserted += len([]rune(d.Text))
		case DiffDelete:
			deleted += len([]rune(d.Text))
		}
	}
	return inserted, deleted
}
