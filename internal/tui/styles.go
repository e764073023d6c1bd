package tui

import "github.com/charmbracelet/lipgloss"

// Color Palette (Dracula-inspired)
var (
	colorPurple = lipgloss.Color("#BD93F9")
	colorGreen  = lipgloss.Color("#50FA7B")
	colorRed    = lipgloss.Color("#FF5555")
	colorPink   = lipgloss.Color("#FF79C6")
	colorGray   = lipgloss.Color("#6272A4")
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(colorPurple).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPurple)

	// Wizard Card for inputs
	wizardCardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPurple).
			Padding(1, 2).
			Width(65)

	// Step text like "Step 1/5"
	stepStyle = lipgloss.NewStyle().
			Foreground(colorPink).
			Bold(true).
			MarginBottom(1)

	successBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorGreen).
			Padding(1, 4)

	errorBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorRed).
			Padding(1, 4)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Bold(true)

	subtleStyle = lipgloss.NewStyle().Foreground(colorGray)
)
