package objtree

import (
	"fmt"
	"slices"

	"github.com/joshuapare/pdfexplorer/cmd/pdfexplorer/logger"
)

// ExpandManager inserts and removes child rows. Children are read from the
// Source when a row is expanded and dropped again when it collapses, so a
// reference cycle only grows the tree as far as the user expands it.
type ExpandManager struct {
	state *TreeState
	nav   *Navigator
	src   Source
}

// NewExpandManager returns a manager working on state.
func NewExpandManager(state *TreeState, nav *Navigator) *ExpandManager {
	return &ExpandManager{state: state, nav: nav}
}

// SetSource sets where children come from.
func (em *ExpandManager) SetSource(src Source) {
	em.src = src
}

// ExpandAt expands the row at pos. Expanding a leaf or an expanded row does
// nothing.
func (em *ExpandManager) ExpandAt(pos int) error {
	item := em.state.GetItem(pos)
	if item == nil || !item.HasChildren || item.Expanded {
		return nil
	}
	if em.src == nil {
		return fmt.Errorf("expand %s: no document", item.Path)
	}

	nodes, err := em.src.Children(item.Node)
	if err != nil {
		return fmt.Errorf("expand %s: %w", item.Path, err)
	}
	children := buildItems(em.src, item, nodes)

	items := em.state.Items()
	items[pos].Expanded = true
	em.state.SetExpanded(items[pos].Path, true)
	em.state.SetItems(slices.Insert(items, pos+1, children...))

	if em.nav.Cursor() > pos {
		em.nav.SetCursor(em.nav.Cursor() + len(children))
	}
	logger.Debug("expanded", "path", item.Path, "children", len(children))
	return nil
}

// CollapseAt collapses the row at pos and removes its descendants. The cursor
// stays on the same row when it was inside the removed range.
func (em *ExpandManager) CollapseAt(pos int) {
	items := em.state.Items()
	if pos < 0 || pos >= len(items) || !items[pos].Expanded {
		return
	}

	depth := items[pos].Depth
	end := pos + 1
	for end < len(items) && items[end].Depth > depth {
		em.state.SetExpanded(items[end].Path, false)
		end++
	}
	removed := end - pos - 1

	items[pos].Expanded = false
	em.state.SetExpanded(items[pos].Path, false)
	em.state.SetItems(slices.Delete(items, pos+1, end))

	switch cur := em.nav.Cursor(); {
	case cur > pos && cur < end:
		em.nav.SetCursor(pos)
	case cur >= end:
		em.nav.SetCursor(cur - removed)
	}
	logger.Debug("collapsed", "path", items[pos].Path, "removed", removed)
}

// ParentIndex returns the row index of the parent of the row at pos, or -1.
func (em *ExpandManager) ParentIndex(pos int) int {
	item := em.state.GetItem(pos)
	if item == nil || item.Parent == "" {
		return -1
	}
	for i := pos - 1; i >= 0; i-- {
		if em.state.items[i].Depth < item.Depth {
			return i
		}
	}
	return -1
}
