package panel

import (
	"os"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/iw2rmb/inkwell/richtext"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

// plainStyle renders text without any escape sequences.
func plainStyle() Style {
	return Style{
		Inline:  map[richtext.InlineStyle]lipgloss.Style{},
		Classes: DefaultClasses(),
	}
}
