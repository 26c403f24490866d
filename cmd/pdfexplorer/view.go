package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/joshuapare/pdfexplorer/pkg/pdfobj"
	overlay "github.com/rmhubbert/bubbletea-overlay"
)

// appTitle prefixes the window title.
const appTitle = "PDF Debugger"

// View renders the entire UI.
func (m Model) View() string {
	switch {
	case m.showHelp:
		return m.withOverlay(m.renderHelpOverlay())
	case m.showRecent:
		return m.withOverlay(m.recent.View())
	}
	return NewMainViewModel(&m).View()
}

// withOverlay centres fg over the main UI.
func (m Model) withOverlay(fg string) string {
	return overlay.New(
		staticView(fg),
		NewMainViewModel(&m),
		overlay.Center,
		overlay.Center,
		0,
		0,
	).View()
}

// Title returns "PDF Debugger - <path>" with a document open and
// "PDF Debugger" without.
func (m Model) Title() string {
	if m.docPath == "" {
		return appTitle
	}
	return appTitle + " - " + m.docPath
}

func (m Model) renderHeader() string {
	return headerStyle.Render(m.Title())
}

// renderContent renders the tree pane and the right-hand panel side by side.
func (m Model) renderContent() string {
	treeWidth := m.width / 2
	panelWidth := m.width - treeWidth
	inner := m.paneHeight()

	treeTitle := "Objects"
	if n := m.tree.ItemCount(); n > 0 {
		treeTitle = fmt.Sprintf("Objects [%d/%d]", m.tree.Cursor()+1, n)
	}
	treeBody := lipgloss.NewStyle().Width(max(treeWidth-4, 1)).Height(inner).Render(m.tree.View())
	treeBox := m.paneBox(TreePane, treeWidth, inner,
		lipgloss.JoinVertical(lipgloss.Left, paneTitleStyle.Render(treeTitle), treeBody))

	var panel string
	if m.panel == pdfobj.PanelSeparation {
		panel = m.color.View()
	} else {
		panel = m.text.View()
	}
	panelBody := lipgloss.NewStyle().Width(max(panelWidth-4, 1)).Height(inner + 1).MaxHeight(inner + 1).Render(panel)
	panelBox := m.paneBox(PanelPane, panelWidth, inner, panelBody)

	return lipgloss.JoinHorizontal(lipgloss.Top, treeBox, panelBox)
}

func (m Model) paneBox(p Pane, width, inner int, content string) string {
	style := paneStyle
	if m.focusedPane == p {
		style = activePaneStyle
	}
	return style.Width(max(width-2, 1)).Height(inner + 1).Render(content)
}

// renderStatus renders the prompt, a message, or the help hints with the
// tree path of the selection.
func (m Model) renderStatus() string {
	switch m.inputMode {
	case OpenPathMode:
		return statusStyle.Width(m.width).Render(promptStyle.Render("Open file: ") + m.inputBuffer + "█")
	case PasswordMode:
		masked := strings.Repeat("*", len([]rune(m.inputBuffer)))
		return statusStyle.Width(m.width).Render(promptStyle.Render("Password for "+m.pendingOpenPath+": ") + masked + "█")
	case GoToPathMode:
		return statusStyle.Width(m.width).Render(promptStyle.Render("Go to path: ") + m.inputBuffer + "█")
	}

	if m.statusMessage != "" {
		style := promptStyle
		if m.statusIsError {
			style = errorStyle
		}
		return statusStyle.Width(m.width).Render(style.Render(m.statusMessage))
	}

	var help strings.Builder
	hints := []string{"o: Open", "r: Recent", "^G: Go to", "c: Copy path", "?: Help", "q: Quit"}
	if m.focusedPane == PanelPane {
		hints = []string{"↑/↓: Scroll", "y: Copy text", "tab: Tree", "?: Help", "q: Quit"}
	}
	for i, h := range hints {
		if i > 0 {
			help.WriteString(" │ ")
		}
		help.WriteString(helpStyle.Render(h))
	}

	var info strings.Builder
	if m.selectionPath != "" {
		info.WriteString(pathStyle.Render(truncateLeft(m.selectionPath, 60)))
	}
	if m.selectionErr != nil {
		info.WriteString(" │ ")
		info.WriteString(errorStyle.Render(m.selectionErr.Error()))
	}

	line := lipgloss.JoinHorizontal(
		lipgloss.Top,
		help.String(),
		lipgloss.NewStyle().Width(4).Render(""),
		info.String(),
	)
	return statusStyle.Width(m.width).Render(line)
}

type helpEntry struct {
	keys string
	desc string
}

// renderHelpOverlay renders the key reference shown by "?".
func (m Model) renderHelpOverlay() string {
	sections := []struct {
		title   string
		entries []helpEntry
	}{
		{"Navigation", []helpEntry{
			{"↑/↓ or k/j", "Move cursor up/down"},
			{"←/→ or h/l", "Collapse/expand node"},
			{"enter/space", "Toggle node"},
			{"g / G", "First / last row"},
			{"p", "Go to parent"},
			{"ctrl+g", "Go to tree path"},
			{"tab", "Switch tree/panel focus"},
		}},
		{"Document", []helpEntry{
			{"o", "Open file"},
			{"r", "Recent files"},
			{"q", "Close and quit"},
		}},
		{"Panel", []helpEntry{
			{"x", "Toggle hex/text view"},
			{"+ / -", "Change separation tint"},
			{"c", "Copy tree path"},
			{"y", "Copy panel text"},
		}},
	}

	var b strings.Builder
	b.WriteString(helpTitleStyle.Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	for i, s := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(helpSectionStyle.Render(s.title))
		b.WriteString("\n")
		for _, e := range s.entries {
			b.WriteString(helpKeyStyle.Render(e.keys))
			b.WriteString("  ")
			b.WriteString(helpDescStyle.Render(e.desc))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("Press ? or esc to close"))
	return modalStyle.Render(b.String())
}
