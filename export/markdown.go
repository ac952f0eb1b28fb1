package export

import (
	"fmt"
	"slices"
	"strings"

	"github.com/iw2rmb/inkwell/richtext"
)

// Markdown renders content as CommonMark. Underline has no Markdown form and
// is dropped; alignment markers render as plain paragraphs.
func Markdown(c *richtext.Content) string {
	if c == nil {
		return ""
	}
	var parts []string
	var counters []int
	blocks := c.Blocks()
	for i := 0; i < len(blocks); i++ {
		b := blocks[i]
		t := b.Type()
		if !t.IsList() {
			counters = counters[:0]
		}
		switch {
		case t.IsList():
			var items []string
			for ; i < len(blocks) && blocks[i].Type().IsList(); i++ {
				items = append(items, mdListItem(blocks[i], &counters))
			}
			i--
			parts = append(parts, strings.Join(items, "\n"))
		case t == richtext.CodeBlock:
			var lines []string
			for ; i < len(blocks) && blocks[i].Type() == richtext.CodeBlock; i++ {
				lines = append(lines, blocks[i].Text())
			}
			i--
			parts = append(parts, "```\n"+strings.Join(lines, "\n")+"\n```")
		case t.HeaderLevel() > 0:
			parts = append(parts, strings.Repeat("#", t.HeaderLevel())+" "+mdInline(b))
		case t == richtext.Blockquote:
			parts = append(parts, "> "+mdInline(b))
		default:
			parts = append(parts, mdInline(b))
		}
	}
	return strings.Join(parts, "\n\n") + "\n"
}

func mdListItem(b *richtext.Block, counters *[]int) string {
	d := b.Depth()
	// Three columns clear both "- " and "1. " markers of the parent item.
	indent := strings.Repeat("   ", d)
	if b.Type() != richtext.OrderedListItem {
		*counters = (*counters)[:min(len(*counters), d)]
		return indent + "- " + mdInline(b)
	}
	for len(*counters) <= d {
		*counters = append(*counters, 0)
	}
	*counters = (*counters)[:d+1]
	(*counters)[d]++
	return fmt.Sprintf("%s%d. %s", indent, (*counters)[d], mdInline(b))
}

type mdMarker struct {
	style  richtext.InlineStyle
	marker string
}

// Italic uses "*" because "_" cannot open or close emphasis inside a word.
var mdMarkers = []mdMarker{
	{richtext.Bold, "**"},
	{richtext.Italic, "*"},
	{richtext.Strikethrough, "~~"},
}

var mdEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
	"~", `\~`,
	"#", `\#`,
	"[", `\[`,
	"]", `\]`,
)

// mdInline writes the block text with emphasis markers opened and closed only
// where the style changes, so overlapping styles nest instead of abutting.
// Markers never touch whitespace on their inner side.
func mdInline(b *richtext.Block) string {
	var sb strings.Builder
	var open []mdMarker
	var pending string
	first := true
	for _, r := range b.Runs() {
		text := b.Slice(r.Start, r.End)
		core := strings.TrimSpace(text)
		if core == "" {
			pending += text
			continue
		}
		lead := text[:strings.Index(text, core)]

		keep := 0
		for keep < len(open) && r.Styles.Has(open[keep].style) {
			keep++
		}
		for i := len(open) - 1; i >= keep; i-- {
			sb.WriteString(open[i].marker)
		}
		open = open[:keep]
		sb.WriteString(pending)
		sb.WriteString(lead)
		pending = text[len(lead)+len(core):]

		for _, m := range mdMarkers {
			if r.Styles.Has(m.style) && !slices.Contains(open, m) {
				open = append(open, m)
				sb.WriteString(m.marker)
			}
		}

		if r.Styles.Has(richtext.Code) {
			core = mdCodeSpan(core)
		} else {
			core = mdEscaper.Replace(core)
			if first {
				core = escapeBlockStart(core)
			}
		}
		first = false
		sb.WriteString(core)
	}
	for i := len(open) - 1; i >= 0; i-- {
		sb.WriteString(open[i].marker)
	}
	sb.WriteString(pending)
	return sb.String()
}

// mdCodeSpan fences text with one more backtick than its longest backtick run.
func mdCodeSpan(text string) string {
	longest, run := 0, 0
	for _, r := range text {
		if r != '`' {
			run = 0
			continue
		}
		run++
		longest = max(longest, run)
	}
	fence := strings.Repeat("`", longest+1)
	if strings.HasPrefix(text, "`") || strings.HasSuffix(text, "`") {
		text = " " + text + " "
	}
	return fence + text + fence
}

// escapeBlockStart keeps text that opens a block from reading as a list item,
// blockquote or thematic break.
func escapeBlockStart(text string) string {
	switch text[0] {
	case '-', '+', '>':
		return `\` + text
	}
	i := 0
	for i < len(text) && i < 9 && text[i] >= '0' && text[i] <= '9' {
		i++
	}
	if i > 0 && i < len(text) && (text[i] == '.' || text[i] == ')') {
		return text[:i] + `\` + text[i:]
	}
	return text
}

// PlainText returns the document text, one line per block.
func PlainText(c *richtext.Content) string {
	if c == nil {
		return ""
	}
	return c.PlainText()
}
