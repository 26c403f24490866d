package display

import "github.com/charmbracelet/lipgloss"

var mutedColor = lipgloss.Color("#666666")

var selectedStyle = lipgloss.NewStyle().
	Background(lipgloss.Color("#7D56F4")).
	Foreground(lipgloss.Color("#FFFFFF")).
	Bold(true)
