package richtext

import (
	"sort"
	"strings"
)

// StyleSet is an immutable, ordered set of inline styles.
//
// The zero value is the empty set. Methods never modify the receiver.
type StyleSet struct {
	styles []InlineStyle
}

// NewStyleSet returns the set containing styles.
func NewStyleSet(styles ...InlineStyle) StyleSet {
	var s StyleSet
	for _, st := range styles {
		s = s.With(st)
	}
	return s
}

func (s StyleSet) Len() int { return len(s.styles) }

func (s StyleSet) IsEmpty() bool { return len(s.styles) == 0 }

func (s StyleSet) Has(style InlineStyle) bool {
	i := sort.Search(len(s.styles), func(i int) bool { return s.styles[i] >= style })
	return i < len(s.styles) && s.styles[i] == style
}

// With returns s plus style.
func (s StyleSet) With(style InlineStyle) StyleSet {
	if style == "" {
		return s
	}
	i := sort.Search(len(s.styles), func(i int) bool { return s.styles[i] >= style })
	if i < len(s.styles) && s.styles[i] == style {
		return s
	}
	out := make([]InlineStyle, 0, len(s.styles)+1)
	out = append(out, s.styles[:i]...)
	out = append(out, style)
	out = append(out, s.styles[i:]...)
	return StyleSet{styles: out}
}

// Without returns s minus style.
func (s StyleSet) Without(style InlineStyle) StyleSet {
	i := sort.Search(len(s.styles), func(i int) bool { return s.styles[i] >= style })
	if i >= len(s.styles) || s.styles[i] != style {
		return s
	}
	if len(s.styles) == 1 {
		return StyleSet{}
	}
	out := make([]InlineStyle, 0, len(s.styles)-1)
	out = append(out, s.styles[:i]...)
	out = append(out, s.styles[i+1:]...)
	return StyleSet{styles: out}
}

// Toggle removes style when present and adds it otherwise.
func (s StyleSet) Toggle(style InlineStyle) StyleSet {
	if s.Has(style) {
		return s.Without(style)
	}
	return s.With(style)
}

func (s StyleSet) Equal(o StyleSet) bool {
	if len(s.styles) != len(o.styles) {
		return false
	}
	for i := range s.styles {
		if s.styles[i] != o.styles[i] {
			return false
		}
	}
	return true
}

// Slice returns a copy of the styles in sorted order.
func (s StyleSet) Slice() []InlineStyle {
	return append([]InlineStyle(nil), s.styles...)
}

func (s StyleSet) String() string {
	parts := make([]string, len(s.styles))
	for i, st := range s.styles {
		parts[i] = string(st)
	}
	return "{" + strings.Join(parts, ",") + "}"
}
