// Package pane lays out child views side by side.
package pane

import "github.com/charmbracelet/lipgloss"

// Child is anything that renders to a string.
type Child interface {
	View() string
}

// Pane joins its children horizontally, top-aligned. It holds no state of
// its own.
type Pane struct {
	children []Child
}

func New(children ...Child) Pane {
	return Pane{children: children}
}

func (p Pane) Len() int { return len(p.children) }

func (p Pane) View() string {
	if len(p.children) == 0 {
		return ""
	}
	views := make([]string, 0, len(p.children))
	for _, c := range p.children {
		if c == nil {
			continue
		}
		views = append(views, c.View())
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, views...)
}

// Widths splits total columns into n equal flex shares. The remainder goes
// to the leftmost shares.
func Widths(total, n int) []int {
	if n <= 0 {
		return nil
	}
	total = max(total, 0)
	out := make([]int, n)
	base, rem := total/n, total%n
	for i := range out {
		out[i] = base
		if i < rem {
			out[i]++
		}
	}
	return out
}

// Static is a fixed-content Child.
type Static string

func (s Static) View() string { return string(s) }
