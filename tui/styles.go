package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles of a List.
type Styles struct {
	Selected lipgloss.Style
	Track    lipgloss.Style
	Thumb    lipgloss.Style
}

// DefaultStyles returns the default list styles.
func DefaultStyles() Styles {
	return Styles{
		Selected: lipgloss.NewStyle().Reverse(true),
		Track:    lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		Thumb:    lipgloss.NewStyle().Foreground(lipgloss.Color("111")),
	}
}
