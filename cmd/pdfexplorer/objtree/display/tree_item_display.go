// Package display draws tree rows from precomputed props.
package display

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// minGap separates the name from the trailing reference.
const minGap = 2

// RenderTreeItemDisplay formats props into a single line of the given width:
//
//	<indent><icon> <name> <count><padding><trailing>
//
// The name is truncated with "…" when the line would not fit.
func RenderTreeItemDisplay(props TreeItemDisplayProps, width int) string {
	indent := strings.Repeat("  ", props.Depth)

	fixed := ansi.StringWidth(indent) + ansi.StringWidth(props.Icon) + 1
	if props.CountText != "" {
		fixed += 1 + ansi.StringWidth(props.CountText)
	}
	trailingWidth := ansi.StringWidth(props.Trailing)

	name := props.Name
	avail := width - fixed - trailingWidth - minGap
	if avail < 0 {
		avail = 0
	}
	if ansi.StringWidth(name) > avail {
		name = ansi.Truncate(name, avail, "…")
	}

	padding := width - fixed - ansi.StringWidth(name) - trailingWidth
	if padding < 1 {
		padding = 1
	}

	muted := props.ItemStyle.Foreground(mutedColor).Italic(true)

	var b strings.Builder
	b.WriteString(indent)
	b.WriteString(props.Icon)
	b.WriteString(" ")
	b.WriteString(name)
	if props.CountText != "" {
		b.WriteString(" ")
		b.WriteString(muted.Render(props.CountText))
	}
	b.WriteString(strings.Repeat(" ", padding))
	if props.Trailing != "" {
		b.WriteString(muted.Render(props.Trailing))
	}

	if props.IsSelected {
		return selectedStyle.Render(b.String())
	}
	return props.ItemStyle.Render(b.String())
}
