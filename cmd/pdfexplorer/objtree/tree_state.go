package objtree

// TreeState holds the visible rows and which paths are expanded.
type TreeState struct {
	items    []Item
	expanded map[string]bool
}

// NewTreeState returns an empty state.
func NewTreeState() *TreeState {
	return &TreeState{expanded: make(map[string]bool)}
}

// Items returns the visible rows.
func (ts *TreeState) Items() []Item { return ts.items }

// SetItems replaces the visible rows.
func (ts *TreeState) SetItems(items []Item) { ts.items = items }

// ItemCount returns the number of visible rows.
func (ts *TreeState) ItemCount() int { return len(ts.items) }

// GetItem returns the row at index, or nil when out of range.
func (ts *TreeState) GetItem(index int) *Item {
	if index >= 0 && index < len(ts.items) {
		return &ts.items[index]
	}
	return nil
}

// IndexOf returns the row index of path, or -1.
func (ts *TreeState) IndexOf(path string) int {
	for i := range ts.items {
		if ts.items[i].Path == path {
			return i
		}
	}
	return -1
}

// IsExpanded reports whether path is expanded.
func (ts *TreeState) IsExpanded(path string) bool { return ts.expanded[path] }

// SetExpanded records the expansion state of path.
func (ts *TreeState) SetExpanded(path string, expanded bool) {
	if expanded {
		ts.expanded[path] = true
		return
	}
	delete(ts.expanded, path)
}

// Reset drops all rows and expansion state.
func (ts *TreeState) Reset() {
	ts.items = nil
	ts.expanded = make(map[string]bool)
}
