// Package objtree is the tree pane: a lazily expanded view over the object
// graph of the open document.
package objtree

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/joshuapare/pdfexplorer/cmd/pdfexplorer/logger"
	"github.com/joshuapare/pdfexplorer/cmd/pdfexplorer/objtree/adapter"
	"github.com/joshuapare/pdfexplorer/cmd/pdfexplorer/objtree/display"
	"github.com/joshuapare/pdfexplorer/cmd/pdfexplorer/selection"
	"github.com/joshuapare/pdfexplorer/cmd/pdfexplorer/virtuallist"
	"github.com/joshuapare/pdfexplorer/pkg/pdfobj"
	"github.com/joshuapare/pdfexplorer/pkg/types"
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// Model is the tree pane. Its state lives behind pointers, so copies of a
// Model share one tree.
type Model struct {
	state    *TreeState
	nav      *Navigator
	expander *ExpandManager
	cursor   *CursorManager
	renderer *virtuallist.Renderer
	keys     Keys
}

// rows feeds the renderer straight from the tree state.
type rows struct {
	state *TreeState
}

func (r rows) ItemCount() int { return r.state.ItemCount() }

func (r rows) RenderItem(index int, isCursor bool, width int) string {
	item := r.state.GetItem(index)
	if item == nil {
		return ""
	}
	props := adapter.ItemToDisplayProps(adapter.TreeItemSource{
		Label:       item.Label,
		Ref:         item.Ref,
		Depth:       item.Depth,
		HasChildren: item.HasChildren,
		Expanded:    item.Expanded,
		ChildCount:  item.ChildCount,
		Kind:        item.Kind,
	}, isCursor)
	return display.RenderTreeItemDisplay(props, width)
}

// NewModel returns an empty tree pane.
func NewModel() Model {
	state := NewTreeState()
	nav := NewNavigator()
	renderer := virtuallist.New(rows{state: state})
	renderer.SetEmptyText("No document open. Press o to open a file.")

	return Model{
		state:    state,
		nav:      nav,
		expander: NewExpandManager(state, nav),
		cursor:   newCursorManager(nav, state),
		renderer: renderer,
		keys:     DefaultKeys(),
	}
}

// SetSelectionBus sets where cursor moves are announced.
func (m *Model) SetSelectionBus(bus *selection.Bus) {
	m.cursor.bus = bus
}

// Load replaces the tree with the children of root and selects the first row.
func (m *Model) Load(src Source, root pdfobj.Dict) error {
	nodes, err := src.Children(root)
	if err != nil {
		return fmt.Errorf("load tree: %w", err)
	}

	m.state.Reset()
	m.state.SetItems(buildItems(src, nil, nodes))
	m.expander.SetSource(src)
	m.nav.SetCursor(0)
	m.renderer.SetCursor(0)
	logger.Debug("tree loaded", "top_level", m.state.ItemCount())

	m.cursor.EmitSignal()
	return nil
}

// Clear empties the tree.
func (m *Model) Clear() {
	m.state.Reset()
	m.expander.SetSource(nil)
	m.nav.SetCursor(0)
	m.renderer.SetCursor(0)
}

// SetSize sets the pane size in cells.
func (m *Model) SetSize(width, height int) {
	m.renderer.SetSize(width, height)
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update handles keys for the tree pane.
func (m *Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		return *m, m.handleKeyMsg(msg)
	}
	return *m, nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.MoveBy(-1)
	case key.Matches(msg, m.keys.Down):
		m.MoveBy(1)
	case key.Matches(msg, m.keys.PageUp):
		m.MoveBy(-m.pageSize())
	case key.Matches(msg, m.keys.PageDown):
		m.MoveBy(m.pageSize())
	case key.Matches(msg, m.keys.Home):
		m.MoveTo(0)
	case key.Matches(msg, m.keys.End):
		m.MoveTo(m.state.ItemCount() - 1)
	case key.Matches(msg, m.keys.Toggle):
		if item := m.CurrentItem(); item != nil && item.Expanded {
			m.Collapse()
			return nil
		}
		return errCmd(m.Expand())
	case key.Matches(msg, m.keys.Right):
		return errCmd(m.Expand())
	case key.Matches(msg, m.keys.Left):
		if item := m.CurrentItem(); item != nil && !item.Expanded {
			m.GoToParent()
			return nil
		}
		m.Collapse()
	case key.Matches(msg, m.keys.Parent):
		m.GoToParent()
	case key.Matches(msg, m.keys.Copy):
		path := m.CurrentPath()
		err := m.CopyCurrentPath()
		return func() tea.Msg {
			return CopyPathRequestedMsg{Path: path, Err: err}
		}
	}
	return nil
}

func errCmd(err error) tea.Cmd {
	if err == nil {
		return nil
	}
	return func() tea.Msg { return ErrMsg{Err: err} }
}

func (m *Model) pageSize() int {
	if h := m.renderer.Height(); h > 1 {
		return h - 1
	}
	return 10
}

// View renders the visible rows.
func (m *Model) View() string {
	return m.renderer.View()
}

// ItemCount returns the number of visible rows.
func (m *Model) ItemCount() int { return m.state.ItemCount() }

// Items returns the visible rows.
func (m *Model) Items() []Item { return m.state.Items() }

// Cursor returns the cursor row.
func (m *Model) Cursor() int { return m.nav.Cursor() }

// CurrentItem returns the row under the cursor, or nil.
func (m *Model) CurrentItem() *Item {
	return m.state.GetItem(m.nav.Cursor())
}

// CurrentPath returns the tree path of the row under the cursor.
func (m *Model) CurrentPath() string {
	if item := m.CurrentItem(); item != nil {
		return item.Path
	}
	return ""
}

// MoveTo moves the cursor to pos.
func (m *Model) MoveTo(pos int) bool {
	return m.cursor.MoveTo(pos, m.renderer)
}

// MoveBy moves the cursor delta rows.
func (m *Model) MoveBy(delta int) bool {
	return m.cursor.MoveBy(delta, m.renderer)
}

// Expand expands the row under the cursor.
func (m *Model) Expand() error {
	if err := m.expander.ExpandAt(m.nav.Cursor()); err != nil {
		logger.Warn("expand failed", "error", err)
		return err
	}
	m.renderer.SetCursor(m.nav.Cursor())
	return nil
}

// Collapse collapses the row under the cursor.
func (m *Model) Collapse() {
	m.expander.CollapseAt(m.nav.Cursor())
	m.renderer.SetCursor(m.nav.Cursor())
}

// GoToParent moves the cursor to the parent row.
func (m *Model) GoToParent() {
	if i := m.expander.ParentIndex(m.nav.Cursor()); i >= 0 {
		m.MoveTo(i)
	}
}

// NavigateToPath expands the tree along path and selects the row it names.
// The selection is announced even when the cursor was already there.
func (m *Model) NavigateToPath(path string) error {
	segs, err := pdfobj.ParsePath(path)
	if err != nil {
		return err
	}
	if len(segs) == 0 {
		return types.Wrap(types.ErrKindUsage, "empty tree path", nil)
	}

	idx := -1
	for i := range segs {
		target := pdfobj.FormatPath(segs[:i+1])
		idx = m.state.IndexOf(target)
		if idx < 0 {
			return types.Wrap(types.ErrKindNotFound, fmt.Sprintf("no node %s", target), nil)
		}
		if i < len(segs)-1 {
			if err := m.expander.ExpandAt(idx); err != nil {
				return err
			}
		}
	}

	if !m.MoveTo(idx) {
		m.cursor.EmitSignal()
	}
	m.renderer.SetCursor(idx)
	return nil
}

// CopyCurrentPath writes the tree path of the cursor row to the clipboard.
func (m *Model) CopyCurrentPath() error {
	path := m.CurrentPath()
	if path == "" {
		return types.Wrap(types.ErrKindState, "nothing selected", nil)
	}
	return writeClipboard(path)
}
