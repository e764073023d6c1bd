package output

import "github.com/charmbracelet/lipgloss"

// Color Palette (Dracula-inspired)
var (
	colorPurple = lipgloss.Color("#BD93F9")
	colorCyan   = lipgloss.Color("#8BE9FD")
	colorGreen  = lipgloss.Color("#50FA7B")
	colorRed    = lipgloss.Color("#FF5555")
	colorGray   = lipgloss.Color("#6272A4")
)

var (
	SuccessStyle = lipgloss.NewStyle().
			Foreground(colorGreen).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Bold(true)

	// FileHeaderStyle labels each rendered file in preview output.
	FileHeaderStyle = lipgloss.NewStyle().
			Background(colorCyan).
			Foreground(lipgloss.Color("#282a36")).
			Bold(true).
			Padding(0, 2)

	TitleStyle = lipgloss.NewStyle().
			Foreground(colorPurple).
			Bold(true)

	SubtleStyle = lipgloss.NewStyle().Foreground(colorGray)
)
