package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/inkwell/internal/config"
	"github.com/iw2rmb/inkwell/panel"
)

func panelStyle(t config.Theme) panel.Style {
	st := panel.DefaultStyle()
	st.ButtonActive = lipgloss.NewStyle().
		Background(lipgloss.Color(t.ActiveBG)).
		Foreground(lipgloss.Color(t.ActiveFG))
	if t.Button != "" {
		st.Button = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Button))
	}
	if t.Placeholder != "" {
		st.Placeholder = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Placeholder))
	}
	if t.Selection != "" {
		st.Selection = lipgloss.NewStyle().Background(lipgloss.Color(t.Selection))
	}
	return st
}

func panelIcons(name string) panel.IconSet {
	if name == config.IconsASCII {
		return panel.ASCIIIcons()
	}
	return panel.DefaultIcons()
}
