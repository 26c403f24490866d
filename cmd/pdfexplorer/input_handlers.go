package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// handleInputMode edits the status-line prompt and runs it on enter.
func (m Model) handleInputMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.inputMode = NormalMode
		m.inputBuffer = ""
		m.pendingOpenPath = ""
		return m, nil

	case tea.KeyEnter:
		mode := m.inputMode
		input := m.inputBuffer
		m.inputMode = NormalMode
		m.inputBuffer = ""

		switch mode {
		case OpenPathMode:
			path := strings.TrimSpace(input)
			if path == "" {
				return m, nil
			}
			return m.tryOpen(path, "")
		case PasswordMode:
			path := m.pendingOpenPath
			m.pendingOpenPath = ""
			return m.tryOpen(path, input)
		case GoToPathMode:
			return m.handleGoToPath(input)
		}
		return m, nil

	case tea.KeyBackspace, tea.KeyDelete:
		if r := []rune(m.inputBuffer); len(r) > 0 {
			m.inputBuffer = string(r[:len(r)-1])
		}
		return m, nil

	case tea.KeySpace:
		m.inputBuffer += " "
		return m, nil

	case tea.KeyRunes:
		m.inputBuffer += string(msg.Runes)
		return m, nil
	}

	return m, nil
}

// handleGoToPath selects the node named by a tree path such as
// "Root/Pages/Kids/[0]".
func (m Model) handleGoToPath(path string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(path) == "" {
		return m, nil
	}
	if err := m.tree.NavigateToPath(path); err != nil {
		m.setError(fmt.Sprintf("Go to path: %v", err))
		return m, nil
	}
	m.syncSelection()
	return m, nil
}
