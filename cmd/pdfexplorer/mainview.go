package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// MainViewModel renders the main UI as the background of an overlay.
type MainViewModel struct {
	model *Model
}

func NewMainViewModel(m *Model) *MainViewModel {
	return &MainViewModel{model: m}
}

func (m *MainViewModel) Init() tea.Cmd {
	return nil
}

// Update is a no-op; the parent Model owns all state.
func (m *MainViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

func (m *MainViewModel) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.model.renderHeader(),
		m.model.renderContent(),
		m.model.renderStatus(),
	)
}

// staticView is an overlay foreground with prerendered content.
type staticView string

func (s staticView) Init() tea.Cmd                       { return nil }
func (s staticView) Update(tea.Msg) (tea.Model, tea.Cmd) { return s, nil }
func (s staticView) View() string                        { return string(s) }
