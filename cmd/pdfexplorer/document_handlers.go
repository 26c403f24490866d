package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joshuapare/pdfexplorer/cmd/pdfexplorer/logger"
	"github.com/joshuapare/pdfexplorer/internal/session"
	"github.com/joshuapare/pdfexplorer/pkg/pdfobj"
	"github.com/joshuapare/pdfexplorer/pkg/types"
)

// startPath is selected after a document loads.
const startPath = "Root"

// openDocument loads path and rebuilds the tree around it. On a load
// failure nothing changes and the previous document stays open. A close or
// save error after a successful load is returned with the new document shown.
func (m *Model) openDocument(path, password string) error {
	logger.Info("opening document", "path", path, "password", password != "")
	err := m.session.Open(path, password)
	if doc, cerr := m.session.Current(); cerr == nil && doc != m.shown {
		m.showDocument(doc)
	}
	if err != nil {
		logger.Warn("open failed", "path", path, "error", err)
	}
	return err
}

// showDocument points the tree at doc and selects the catalog entry of the
// trailer.
func (m *Model) showDocument(doc session.Document) {
	m.shown = doc
	m.docPath = doc.Path()
	m.bus.Reset()

	tree := doc.Tree()
	if err := m.tree.Load(tree, tree.Root()); err != nil {
		m.tree.Clear()
		m.setError(fmt.Sprintf("Cannot read trailer: %v", err))
		return
	}
	if err := m.tree.NavigateToPath(startPath); err != nil {
		logger.Warn("no catalog entry in trailer", "error", err)
	}
	m.syncSelection()
}

// tryOpen opens path from a prompt or the recent list. An encrypted file
// opened without a password switches the prompt to the password.
func (m Model) tryOpen(path, password string) (Model, tea.Cmd) {
	err := m.openDocument(path, password)
	switch {
	case err == nil:
		return m, m.setStatus(fmt.Sprintf("Opened %s", filepath.Base(m.docPath)))
	case errors.Is(err, types.ErrPassword) && password == "":
		m.inputMode = PasswordMode
		m.inputBuffer = ""
		m.pendingOpenPath = path
		return m, nil
	case errors.Is(err, types.ErrLoad):
		m.setError(fmt.Sprintf("Open failed: %v", err))
		return m, nil
	default:
		m.setError(fmt.Sprintf("Opened %s with errors: %v", filepath.Base(m.docPath), err))
		return m, nil
	}
}

// syncSelection applies the selection the tree announced while handling the
// last message, if any.
func (m *Model) syncSelection() {
	ev, ok := m.bus.Take()
	if !ok {
		return
	}
	m.selectionPath = ev.Path
	m.selectionErr = nil
	title := ev.Path

	sel, err := pdfobj.Classify(ev.Node)
	if err != nil {
		m.panel = pdfobj.PanelText
		m.selectionErr = err
		m.text.ShowError(title, err)
		return
	}

	if sel.Panel == pdfobj.PanelSeparation {
		var r pdfobj.Resolver
		if doc, derr := m.session.Current(); derr == nil {
			r = doc
		}
		sep, err := pdfobj.SeparationFor(sel, r)
		if err == nil {
			m.panel = pdfobj.PanelSeparation
			m.color.Show(title, sep)
			return
		}
		logger.Warn("unreadable separation colour space", "path", ev.Path, "error", err)
		m.selectionErr = err
		m.panel = pdfobj.PanelText
		m.text.ShowError(title, err)
		return
	}

	m.panel = pdfobj.PanelText
	m.text.Show(title, sel.Text, rawBytes(ev.Node))
}

// rawBytes returns the decoded bytes of a stream node for the hex view, or
// nil for anything else.
func rawBytes(node pdfobj.Value) []byte {
	s, ok := pdfobj.Unwrap(node).(pdfobj.Stream)
	if !ok || s.Source == nil {
		return nil
	}
	data, err := s.Source.Decoded()
	if err != nil {
		return nil
	}
	return data
}

// panelText is what the copy-text key puts on the clipboard.
func (m *Model) panelText() string {
	if m.panel == pdfobj.PanelSeparation {
		return m.color.Summary()
	}
	return m.text.Text()
}

// setStatus shows msg and clears it after two seconds.
func (m *Model) setStatus(msg string) tea.Cmd {
	m.statusMessage = msg
	m.statusIsError = false
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// setError shows msg until the next key press.
func (m *Model) setError(msg string) {
	m.statusMessage = msg
	m.statusIsError = true
}
