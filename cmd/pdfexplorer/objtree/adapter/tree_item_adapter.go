// Package adapter turns tree nodes into display props. All decisions about
// icons, counts and colours are made here.
package adapter

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/joshuapare/pdfexplorer/cmd/pdfexplorer/objtree/display"
)

// NodeKind groups nodes by how they are drawn.
type NodeKind int

const (
	KindLeaf NodeKind = iota
	KindDict
	KindArray
	KindStream
	KindColorSpace // Indexed, Separation or DeviceN array
)

// TreeItemSource is the part of a tree item the row needs.
type TreeItemSource struct {
	Label       string
	Ref         string // "N G R" or ""
	Depth       int
	HasChildren bool
	Expanded    bool
	ChildCount  int
	Kind        NodeKind
}

const (
	expandedIcon  = "▼"
	collapsedIcon = "▶"
	leafIcon      = "•"
)

// ItemToDisplayProps converts a tree item into display props.
func ItemToDisplayProps(source TreeItemSource, isCursor bool) display.TreeItemDisplayProps {
	props := display.TreeItemDisplayProps{
		Name:       source.Label,
		Depth:      source.Depth,
		Trailing:   source.Ref,
		IsSelected: isCursor,
		ItemStyle:  styleFor(source.Kind),
		Icon:       leafIcon,
	}

	if source.HasChildren {
		props.Icon = collapsedIcon
		if source.Expanded {
			props.Icon = expandedIcon
		}
		props.CountText = fmt.Sprintf("(%d)", source.ChildCount)
	}

	return props
}

func styleFor(k NodeKind) lipgloss.Style {
	switch k {
	case KindDict, KindArray:
		return containerItemStyle
	case KindStream:
		return streamItemStyle
	case KindColorSpace:
		return colorSpaceItemStyle
	default:
		return leafItemStyle
	}
}
