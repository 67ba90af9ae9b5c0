package view

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme is the color palette shared by all views. Two palettes exist,
// one per appearance mode; the active one is swapped at runtime when
// the dark-mode preference changes.
type Theme struct {
	Accent  lipgloss.Color
	Success lipgloss.Color
	Error   lipgloss.Color
	Muted   lipgloss.Color
	Border  lipgloss.Color

	SelectedFg lipgloss.Color
	SelectedBg lipgloss.Color
}

func Light() Theme {
	return Theme{
		Accent:     lipgloss.Color("205"),
		Success:    lipgloss.Color("34"),
		Error:      lipgloss.Color("160"),
		Muted:      lipgloss.Color("245"),
		Border:     lipgloss.Color("250"),
		SelectedFg: lipgloss.Color("229"),
		SelectedBg: lipgloss.Color("57"),
	}
}

func Dark() Theme {
	return Theme{
		Accent:     lipgloss.Color("213"),
		Success:    lipgloss.Color("46"),
		Error:      lipgloss.Color("196"),
		Muted:      lipgloss.Color("240"),
		Border:     lipgloss.Color("238"),
		SelectedFg: lipgloss.Color("229"),
		SelectedBg: lipgloss.Color("63"),
	}
}

var current = Light()

// UseDark switches the active palette. Views pick it up on their next
// render.
func UseDark(dark bool) {
	if dark {
		current = Dark()
		return
	}

	current = Light()
}

// Palette returns the active theme.
func Palette() Theme {
	return current
}

func accentStyle(s string) string {
	return lipgloss.NewStyle().Foreground(Palette().Accent).Render(s)
}

func errorStyle(s string) string {
	return lipgloss.NewStyle().Foreground(Palette().Error).Render(s)
}

func successStyle(s string) string {
	return lipgloss.NewStyle().Foreground(Palette().Success).Render(s)
}

func mutedStyle(s string) string {
	return lipgloss.NewStyle().Foreground(Palette().Muted).Render(s)
}
