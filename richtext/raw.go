package richtext

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidRaw reports raw content that cannot be turned into Content.
var ErrInvalidRaw = errors.New("richtext: invalid raw content")

// RawContent is the serializable form of Content.
//
// Range offsets and lengths count grapheme clusters.
type RawContent struct {
	Blocks    []RawBlock     `json:"blocks"`
	EntityMap map[string]any `json:"entityMap"`
}

type RawBlock struct {
	Key               string          `json:"key"`
	Text              string          `json:"text"`
	Type              BlockType       `json:"type"`
	Depth             int             `json:"depth"`
	InlineStyleRanges []RawStyleRange `json:"inlineStyleRanges"`
	EntityRanges      []any           `json:"entityRanges"`
	Data              map[string]any  `json:"data"`
}

type RawStyleRange struct {
	Offset int         `json:"offset"`
	Length int         `json:"length"`
	Style  InlineStyle `json:"style"`
}

// ToRaw converts c into its serializable form.
func ToRaw(c *Content) RawContent {
	out := RawContent{
		Blocks:    make([]RawBlock, 0, len(c.blocks)),
		EntityMap: map[string]any{},
	}
	for _, b := range c.blocks {
		out.Blocks = append(out.Blocks, RawBlock{
			Key:               b.key,
			Text:              b.Text(),
			Type:              b.typ,
			Depth:             b.depth,
			InlineStyleRanges: styleRanges(b),
			EntityRanges:      []any{},
			Data:              map[string]any{},
		})
	}
	return out
}

func styleRanges(b *Block) []RawStyleRange {
	var all StyleSet
	for _, st := range b.styles {
		for _, s := range st.styles {
			all = all.With(s)
		}
	}

	ranges := []RawStyleRange{}
	for _, style := range all.styles {
		start := -1
		for i := 0; i <= len(b.styles); i++ {
			has := i < len(b.styles) && b.styles[i].Has(style)
			switch {
			case has && start < 0:
				start = i
			case !has && start >= 0:
				ranges = append(ranges, RawStyleRange{Offset: start, Length: i - start, Style: style})
				start = -1
			}
		}
	}
	sort.SliceStable(ranges, func(i, j int) bool { return ranges[i].Offset < ranges[j].Offset })
	return ranges
}

// FromRaw validates raw and builds Content from it. Blocks without a key get
// a fresh one.
func FromRaw(raw RawContent) (*Content, error) {
	if len(raw.Blocks) == 0 {
		return NewContent(), nil
	}

	taken := make(map[string]int, len(raw.Blocks))
	for _, rb := range raw.Blocks {
		if rb.Key != "" {
			taken[rb.Key] = 0
		}
	}

	seen := make(map[string]bool, len(raw.Blocks))
	blocks := make([]*Block, 0, len(raw.Blocks))
	for i, rb := range raw.Blocks {
		key := rb.Key
		if key == "" {
			key = genKey(taken)
			taken[key] = 0
		}
		if seen[key] {
			return nil, fmt.Errorf("%w: duplicate block key %q", ErrInvalidRaw, key)
		}
		seen[key] = true
		if rb.Depth < 0 {
			return nil, fmt.Errorf("%w: block %d has negative depth", ErrInvalidRaw, i)
		}

		b := NewBlock(key, rb.Type, rb.Text)
		b.depth = rb.Depth
		for _, r := range rb.InlineStyleRanges {
			if r.Offset < 0 || r.Length < 0 || r.Offset+r.Length > b.Len() {
				return nil, fmt.Errorf("%w: block %q style %s range [%d,+%d) exceeds length %d",
					ErrInvalidRaw, key, r.Style, r.Offset, r.Length, b.Len())
			}
			for j := r.Offset; j < r.Offset+r.Length; j++ {
				b.styles[j] = b.styles[j].With(r.Style)
			}
		}
		blocks = append(blocks, b)
	}
	return NewContent(blocks...), nil
}

// MarshalRaw encodes c as raw JSON.
func MarshalRaw(c *Content) ([]byte, error) {
	data, err := json.Marshal(ToRaw(c))
	if err != nil {
		return nil, fmt.Errorf("encode raw content: %w", err)
	}
	return data, nil
}

// UnmarshalRaw decodes raw JSON into Content.
func UnmarshalRaw(data []byte) (*Content, error) {
	var raw RawContent
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRaw, err)
	}
	return FromRaw(raw)
}
