package tui

import "github.com/charmbracelet/lipgloss"

// Theme holds the styles of a list screen
type Theme struct {
	Title     lipgloss.Style
	Label     lipgloss.Style
	Header    lipgloss.Style
	Cell      lipgloss.Style
	Footer    lipgloss.Style
	Error     lipgloss.Style
	Help      lipgloss.Style
	StatusTag lipgloss.Style
}

// DefaultTheme renders on dark and light terminals alike
var DefaultTheme = Theme{
	Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#1a5fb4", Dark: "#99c1f1"}),
	Label:     lipgloss.NewStyle().Faint(true),
	Header:    lipgloss.NewStyle().Bold(true).Underline(true),
	Cell:      lipgloss.NewStyle(),
	Footer:    lipgloss.NewStyle().Faint(true),
	Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	Help:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	StatusTag: lipgloss.NewStyle().Bold(true),
}
