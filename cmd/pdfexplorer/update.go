package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/joshuapare/pdfexplorer/cmd/pdfexplorer/logger"
	"github.com/joshuapare/pdfexplorer/cmd/pdfexplorer/objtree"
	"github.com/joshuapare/pdfexplorer/cmd/pdfexplorer/recentlist"
	"github.com/joshuapare/pdfexplorer/pkg/pdfobj"
)

// Update handles all messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case clearStatusMsg:
		if !m.statusIsError {
			m.statusMessage = ""
		}
		return m, nil

	case objtree.ErrMsg:
		m.setError(msg.Error())
		return m, nil

	case objtree.CopyPathRequestedMsg:
		if msg.Err != nil {
			m.setError(fmt.Sprintf("Copy failed: %v", msg.Err))
			return m, nil
		}
		return m, m.setStatus(fmt.Sprintf("Copied path: %s", msg.Path))

	case recentlist.OpenMsg:
		m.showRecent = false
		return m.tryOpen(msg.Path, "")

	case recentlist.ForgetMsg:
		if err := m.session.Forget(msg.Path); err != nil {
			m.setError(fmt.Sprintf("Cannot update recent files: %v", err))
		}
		m.recent.SetPaths(m.session.Recent())
		return m, nil

	case recentlist.CloseMsg:
		m.showRecent = false
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		if key.Matches(msg, m.keys.Esc) || key.Matches(msg, m.keys.Help) || key.Matches(msg, m.keys.Quit) {
			m.showHelp = false
		}
		return m, nil
	}

	if m.showRecent {
		var cmd tea.Cmd
		m.recent, cmd = m.recent.Update(msg)
		return m, cmd
	}

	if m.inputMode != NormalMode {
		return m.handleInputMode(msg)
	}

	if m.statusIsError {
		m.statusMessage = ""
		m.statusIsError = false
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		if err := m.Close(); err != nil {
			logger.Warn("error closing document", "error", err)
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.Open):
		m.inputMode = OpenPathMode
		m.inputBuffer = ""
		return m, nil

	case key.Matches(msg, m.keys.Recent):
		m.recent.SetPaths(m.session.Recent())
		m.recent.Reset()
		m.showRecent = true
		return m, nil

	case key.Matches(msg, m.keys.Jump):
		if !m.session.IsOpen() {
			return m, m.setStatus("No document open")
		}
		m.inputMode = GoToPathMode
		m.inputBuffer = m.tree.CurrentPath()
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		if m.focusedPane == TreePane {
			m.focusedPane = PanelPane
		} else {
			m.focusedPane = TreePane
		}
		return m, nil

	case key.Matches(msg, m.keys.CopyText):
		if err := writeClipboard(m.panelText()); err != nil {
			m.setError(fmt.Sprintf("Copy failed: %v", err))
			return m, nil
		}
		return m, m.setStatus("Copied panel text")

	case key.Matches(msg, m.keys.HexToggle) && m.panel == pdfobj.PanelText:
		var cmd tea.Cmd
		m.text, cmd = m.text.Update(msg)
		return m, cmd

	case (key.Matches(msg, m.keys.TintUp) || key.Matches(msg, m.keys.TintDown)) && m.panel == pdfobj.PanelSeparation:
		var cmd tea.Cmd
		m.color, cmd = m.color.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	switch m.focusedPane {
	case TreePane:
		m.tree, cmd = m.tree.Update(msg)
		m.syncSelection()
	case PanelPane:
		if m.panel == pdfobj.PanelText {
			m.text, cmd = m.text.Update(msg)
		}
	}
	return m, cmd
}

// layout sizes the panes for the current window.
func (m *Model) layout() {
	treeWidth := m.width / 2
	panelWidth := m.width - treeWidth
	inner := m.paneHeight()

	m.tree.SetSize(max(treeWidth-4, 1), inner)
	m.text.SetSize(max(panelWidth-4, 1), inner)
	m.color.SetSize(max(panelWidth-4, 1), inner)
}

// paneHeight is the number of content rows inside a pane: the window less
// the header (2), status bar (2), pane border (2) and pane title (1).
func (m *Model) paneHeight() int {
	return max(m.height-7, 3)
}
