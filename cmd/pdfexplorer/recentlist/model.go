// Package recentlist is the recent-files overlay.
package recentlist

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(1, 2)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	selectedStyle = lipgloss.NewStyle().Background(lipgloss.Color("#7D56F4")).Foreground(lipgloss.Color("#FFFFFF"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")).Italic(true)
)

// OpenMsg asks the owner to open Path.
type OpenMsg struct {
	Path string
}

// ForgetMsg asks the owner to drop Path from the recent list.
type ForgetMsg struct {
	Path string
}

// CloseMsg is sent when the overlay is dismissed.
type CloseMsg struct{}

// Keys are the overlay bindings.
type Keys struct {
	Up     key.Binding
	Down   key.Binding
	Open   key.Binding
	Forget key.Binding
	Close  key.Binding
}

// Model lists recent files newest first.
type Model struct {
	paths  []string
	cursor int
	keys   Keys
}

// New returns an empty list.
func New() Model {
	return Model{
		keys: Keys{
			Up:     key.NewBinding(key.WithKeys("up", "k")),
			Down:   key.NewBinding(key.WithKeys("down", "j")),
			Open:   key.NewBinding(key.WithKeys("enter")),
			Forget: key.NewBinding(key.WithKeys("d", "delete")),
			Close:  key.NewBinding(key.WithKeys("esc", "r", "q")),
		},
	}
}

// SetPaths replaces the list, keeping the cursor in range.
func (m *Model) SetPaths(paths []string) {
	m.paths = paths
	if m.cursor >= len(paths) {
		m.cursor = max(len(paths)-1, 0)
	}
}

// Reset moves the cursor to the newest file.
func (m *Model) Reset() { m.cursor = 0 }

// Paths returns the listed paths.
func (m *Model) Paths() []string { return m.paths }

// Selected returns the path under the cursor.
func (m *Model) Selected() (string, bool) {
	if m.cursor < len(m.paths) {
		return m.paths[m.cursor], true
	}
	return "", false
}

// Update handles navigation; opening, forgetting and closing are reported
// as messages.
func (m *Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return *m, nil
	}

	switch {
	case key.Matches(k, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(k, m.keys.Down):
		if m.cursor < len(m.paths)-1 {
			m.cursor++
		}
	case key.Matches(k, m.keys.Open):
		if p, ok := m.Selected(); ok {
			return *m, func() tea.Msg { return OpenMsg{Path: p} }
		}
	case key.Matches(k, m.keys.Forget):
		if p, ok := m.Selected(); ok {
			return *m, func() tea.Msg { return ForgetMsg{Path: p} }
		}
	case key.Matches(k, m.keys.Close):
		return *m, func() tea.Msg { return CloseMsg{} }
	}
	return *m, nil
}

// View renders the overlay box.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Recent Files"))
	b.WriteString("\n\n")

	if len(m.paths) == 0 {
		b.WriteString(mutedStyle.Render("No recent files"))
	}
	for i, p := range m.paths {
		line := "  " + p
		if i == m.cursor {
			line = selectedStyle.Render("> " + p)
		}
		b.WriteString(line)
		if i < len(m.paths)-1 {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n\n")
	b.WriteString(mutedStyle.Render("enter: open │ d: forget │ esc: close"))
	return boxStyle.Render(b.String())
}
