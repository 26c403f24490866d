package display

import "github.com/charmbracelet/lipgloss"

// TreeItemDisplayProps is everything needed to draw one tree row. It holds
// no PDF knowledge; the adapter package decides every field.
type TreeItemDisplayProps struct {
	Name      string // node label
	Icon      string // "▼", "▶" or "•"
	CountText string // e.g. "(5)" or ""
	Trailing  string // right-justified text, the object reference
	Depth     int

	ItemStyle  lipgloss.Style
	IsSelected bool
}
