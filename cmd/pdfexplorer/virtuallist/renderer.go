// Package virtuallist renders only the visible window of a long list.
package virtuallist

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
)

// List is implemented by components rendered through a Renderer.
type List interface {
	// ItemCount returns the number of rows.
	ItemCount() int
	// RenderItem renders row index at the given width.
	RenderItem(index int, isCursor bool, width int) string
}

// fallbackHeight is used before the first WindowSizeMsg arrives.
const fallbackHeight = 20

// Renderer keeps a cursor and a scroll offset over a List and renders the
// rows between offset and offset+height. Cost per frame depends on the
// height, never on the list length.
type Renderer struct {
	list      List
	viewport  viewport.Model
	cursor    int
	offset    int
	width     int
	height    int
	emptyText string
}

// New returns a renderer over list.
func New(list List) *Renderer {
	return &Renderer{
		list:      list,
		viewport:  viewport.New(0, 0),
		emptyText: "(empty)",
	}
}

// SetEmptyText sets what View shows for an empty list.
func (r *Renderer) SetEmptyText(s string) {
	r.emptyText = s
}

// SetSize sets the visible area.
func (r *Renderer) SetSize(width, height int) {
	r.width = width
	r.height = height
	r.viewport.Width = width
	r.viewport.Height = height
	r.scrollToCursor()
}

// SetCursor moves the cursor and scrolls it into view.
func (r *Renderer) SetCursor(cursor int) {
	r.cursor = cursor
	r.scrollToCursor()
}

// Cursor returns the cursor row.
func (r *Renderer) Cursor() int { return r.cursor }

// Offset returns the first visible row.
func (r *Renderer) Offset() int { return r.offset }

// Width returns the render width.
func (r *Renderer) Width() int { return r.width }

// Height returns the render height.
func (r *Renderer) Height() int { return r.height }

func (r *Renderer) visibleHeight() int {
	if r.height <= 0 {
		return fallbackHeight
	}
	return r.height
}

// View renders the visible rows.
func (r *Renderer) View() string {
	count := r.list.ItemCount()
	if count == 0 {
		return r.emptyText
	}

	h := r.visibleHeight()
	end := r.offset + h
	if end > count {
		end = count
	}
	// Keep the window full when scrolled to the bottom.
	start := end - h
	if start < 0 {
		start = 0
	}
	if start > r.offset {
		start = r.offset
	}
	r.offset = start

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		lines = append(lines, r.list.RenderItem(i, i == r.cursor, r.width))
	}

	r.viewport.SetContent(strings.Join(lines, "\n"))
	r.viewport.YOffset = 0
	return r.viewport.View()
}

func (r *Renderer) scrollToCursor() {
	if r.height <= 0 {
		return
	}
	if r.cursor < r.offset {
		r.offset = r.cursor
	}
	if r.cursor >= r.offset+r.height {
		r.offset = r.cursor - r.height + 1
	}

	maxOffset := r.list.ItemCount() - r.height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if r.offset > maxOffset {
		r.offset = maxOffset
	}
	if r.offset < 0 {
		r.offset = 0
	}
}
