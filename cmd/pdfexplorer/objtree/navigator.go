package objtree

// Navigator holds the cursor row.
type Navigator struct {
	cursor int
}

// NewNavigator returns a navigator at row 0.
func NewNavigator() *Navigator {
	return &Navigator{}
}

// Cursor returns the cursor row.
func (n *Navigator) Cursor() int { return n.cursor }

// SetCursor sets the cursor row.
func (n *Navigator) SetCursor(pos int) { n.cursor = pos }
