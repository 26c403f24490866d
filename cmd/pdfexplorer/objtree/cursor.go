package objtree

import (
	"github.com/joshuapare/pdfexplorer/cmd/pdfexplorer/logger"
	"github.com/joshuapare/pdfexplorer/cmd/pdfexplorer/selection"
	"github.com/joshuapare/pdfexplorer/cmd/pdfexplorer/virtuallist"
)

// CursorManager performs every cursor move so each one reaches the
// selection bus.
type CursorManager struct {
	nav   *Navigator
	state *TreeState
	bus   *selection.Bus
}

func newCursorManager(nav *Navigator, state *TreeState) *CursorManager {
	return &CursorManager{nav: nav, state: state}
}

// MoveTo moves the cursor to pos and announces the new selection. It returns
// false when pos is out of range or already current.
func (cm *CursorManager) MoveTo(pos int, renderer *virtuallist.Renderer) bool {
	if pos < 0 || pos >= cm.state.ItemCount() {
		return false
	}
	if cm.nav.Cursor() == pos {
		return false
	}

	cm.nav.SetCursor(pos)
	if renderer != nil {
		renderer.SetCursor(pos)
	}
	logger.Debug("cursor moved", "pos", pos)
	cm.EmitSignal()
	return true
}

// MoveBy moves the cursor delta rows, stopping at either end.
func (cm *CursorManager) MoveBy(delta int, renderer *virtuallist.Renderer) bool {
	pos := cm.nav.Cursor() + delta
	last := cm.state.ItemCount() - 1
	if pos > last {
		pos = last
	}
	if pos < 0 {
		pos = 0
	}
	return cm.MoveTo(pos, renderer)
}

// EmitSignal announces the current row without moving, e.g. after the tree
// is rebuilt under the cursor.
func (cm *CursorManager) EmitSignal() {
	if cm.bus == nil {
		return
	}
	if item := cm.state.GetItem(cm.nav.Cursor()); item != nil {
		cm.bus.Notify(item.Path, item.Label, item.Node)
	}
}
