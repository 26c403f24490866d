package adapter

import "github.com/charmbracelet/lipgloss"

var (
	containerColor  = lipgloss.Color("#FAFAFA")
	streamColor     = lipgloss.Color("#61AFEF")
	colorSpaceColor = lipgloss.Color("#FFA500")
	leafColor       = lipgloss.Color("#BBBBBB")
)

var (
	containerItemStyle  = lipgloss.NewStyle().Foreground(containerColor)
	streamItemStyle     = lipgloss.NewStyle().Foreground(streamColor)
	colorSpaceItemStyle = lipgloss.NewStyle().Foreground(colorSpaceColor).Bold(true)
	leafItemStyle       = lipgloss.NewStyle().Foreground(leafColor)
)
