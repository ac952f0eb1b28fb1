package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/iw2rmb/inkwell/richtext"
)

// Options tunes HTML output.
type Options struct {
	// BlockStyleFn returns extra CSS declarations for a block, e.g.
	// "color: red". An empty result adds nothing.
	BlockStyleFn func(*richtext.Block) string
}

// HTML renders content as an HTML fragment, one top-level element per line.
func HTML(c *richtext.Content, opts Options) string {
	if c == nil {
		return ""
	}
	w := htmlWriter{opts: opts}
	blocks := c.Blocks()
	for i := 0; i < len(blocks); i++ {
		b := blocks[i]
		switch t := b.Type(); {
		case t.IsList():
			w.listItem(b)
		case t == richtext.CodeBlock:
			w.closeLists()
			j := i
			for j+1 < len(blocks) && blocks[j+1].Type() == richtext.CodeBlock {
				j++
			}
			w.codeBlock(blocks[i : j+1])
			i = j
		default:
			w.closeLists()
			w.block(b)
		}
	}
	w.closeLists()
	return w.sb.String()
}

type htmlWriter struct {
	opts  Options
	sb    strings.Builder
	lists []string // open list tags, one per depth
}

func listTag(t richtext.BlockType) string {
	if t == richtext.OrderedListItem {
		return "ol"
	}
	return "ul"
}

func (w *htmlWriter) popList() {
	n := len(w.lists) - 1
	fmt.Fprintf(&w.sb, "</li>\n</%s>\n", w.lists[n])
	w.lists = w.lists[:n]
}

func (w *htmlWriter) closeLists() {
	for len(w.lists) > 0 {
		w.popList()
	}
}

// listItem leaves its <li> open so a deeper item can nest inside it.
func (w *htmlWriter) listItem(b *richtext.Block) {
	d, tag := b.Depth(), listTag(b.Type())
	for len(w.lists) > d+1 {
		w.popList()
	}
	if len(w.lists) == d+1 && w.lists[d] != tag {
		w.popList()
	}
	if len(w.lists) == d+1 {
		w.sb.WriteString("</li>\n")
	}
	// A depth jump gets an empty item at each skipped level so every
	// nested list sits inside an <li>.
	for opened := false; len(w.lists) < d+1; opened = true {
		if opened {
			w.sb.WriteString("<li>")
		}
		fmt.Fprintf(&w.sb, "<%s>\n", tag)
		w.lists = append(w.lists, tag)
	}
	fmt.Fprintf(&w.sb, "<li%s>", w.styleAttr(b, ""))
	writeInline(&w.sb, b, false)
}

func (w *htmlWriter) block(b *richtext.Block) {
	tag, align := "p", ""
	switch t := b.Type(); {
	case t.HeaderLevel() > 0:
		tag = fmt.Sprintf("h%d", t.HeaderLevel())
	case t == richtext.Blockquote:
		tag = "blockquote"
	case t == richtext.AlignLeft, t == richtext.AlignCenter, t == richtext.AlignRight:
		align = string(t)
	}
	fmt.Fprintf(&w.sb, "<%s%s>", tag, w.styleAttr(b, align))
	writeInline(&w.sb, b, false)
	fmt.Fprintf(&w.sb, "</%s>\n", tag)
}

func (w *htmlWriter) codeBlock(blocks []*richtext.Block) {
	fmt.Fprintf(&w.sb, "<pre%s><code>", w.styleAttr(blocks[0], ""))
	for i, b := range blocks {
		if i > 0 {
			w.sb.WriteByte('\n')
		}
		writeInline(&w.sb, b, true)
	}
	w.sb.WriteString("</code></pre>\n")
}

func (w *htmlWriter) styleAttr(b *richtext.Block, align string) string {
	var decls []string
	if align != "" {
		decls = append(decls, "text-align: "+align)
	}
	if w.opts.BlockStyleFn != nil {
		if css := strings.TrimSpace(w.opts.BlockStyleFn(b)); css != "" {
			decls = append(decls, strings.TrimSuffix(css, ";"))
		}
	}
	if len(decls) == 0 {
		return ""
	}
	return fmt.Sprintf(` style="%s"`, html.EscapeString(strings.Join(decls, "; ")))
}

var inlineTags = []struct {
	style richtext.InlineStyle
	tag   string
}{
	{richtext.Code, "code"},
	{richtext.Bold, "strong"},
	{richtext.Italic, "em"},
	{richtext.Underline, "u"},
	{richtext.Strikethrough, "del"},
}

func writeInline(sb *strings.Builder, b *richtext.Block, inCode bool) {
	for _, r := range b.Runs() {
		var open []string
		for _, it := range inlineTags {
			if it.style == richtext.Code && inCode {
				continue
			}
			if r.Styles.Has(it.style) {
				open = append(open, it.tag)
			}
		}
		for _, tag := range open {
			fmt.Fprintf(sb, "<%s>", tag)
		}
		sb.WriteString(html.EscapeString(b.Slice(r.Start, r.End)))
		for i := len(open) - 1; i >= 0; i-- {
			fmt.Fprintf(sb, "</%s>", open[i])
		}
	}
}
