// Package textpane is the right-hand panel that shows the text of the
// selected node, either as text or as a hex dump.
package textpane

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4B4B"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")).Italic(true)
)

// Model is the text panel.
type Model struct {
	viewport viewport.Model
	title    string
	text     string
	raw      []byte
	err      error
	hex      bool
	width    int
	toggle   key.Binding
}

// New returns an empty panel.
func New() Model {
	return Model{
		viewport: viewport.New(0, 0),
		toggle:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "hex/text")),
	}
}

// Show displays text for the node titled title. raw, when not nil, is what
// the hex view dumps instead of the text bytes.
func (m *Model) Show(title, text string, raw []byte) {
	m.title = title
	m.text = text
	m.raw = raw
	m.err = nil
	m.viewport.GotoTop()
	m.refresh()
}

// ShowError displays err in place of the text of the node titled title.
func (m *Model) ShowError(title string, err error) {
	m.title = title
	m.text = ""
	m.raw = nil
	m.err = err
	m.viewport.GotoTop()
	m.refresh()
}

// Clear empties the panel.
func (m *Model) Clear() {
	m.title, m.text, m.raw, m.err = "", "", nil, nil
	m.refresh()
}

// Title returns the current title.
func (m *Model) Title() string { return m.title }

// Text returns the text on display.
func (m *Model) Text() string { return m.text }

// Err returns the error on display, if any.
func (m *Model) Err() error { return m.err }

// HexMode reports whether the hex view is active.
func (m *Model) HexMode() bool { return m.hex }

// SetSize sets the panel size including the title lines.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.viewport.Width = width
	m.viewport.Height = max(height-2, 1)
	m.refresh()
}

// Update handles the hex toggle and scrolling.
func (m *Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, m.toggle) {
		m.hex = !m.hex
		m.refresh()
		return *m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return *m, cmd
}

func (m *Model) refresh() {
	switch {
	case m.err != nil:
		m.viewport.SetContent(errorStyle.Render("Error: " + m.err.Error()))
	case m.hex:
		data := m.raw
		if data == nil {
			data = []byte(m.text)
		}
		m.viewport.SetContent(formatHexDump(data))
	case m.text == "":
		m.viewport.SetContent(mutedStyle.Render("(no text)"))
	default:
		m.viewport.SetContent(m.text)
	}
}

// View renders the title, a rule and the scrollable body.
func (m Model) View() string {
	title := m.title
	if title == "" {
		title = "Nothing selected"
	}
	mode := "text"
	if m.hex {
		mode = "hex"
	}
	header := titleStyle.Render(title) + " " + mutedStyle.Render("["+mode+"]")
	rule := strings.Repeat("─", max(m.width, 1))
	return header + "\n" + rule + "\n" + m.viewport.View()
}

// formatHexDump renders data as offset, 16 hex bytes and an ASCII column.
func formatHexDump(data []byte) string {
	if len(data) == 0 {
		return "(empty)"
	}

	const perLine = 16
	var b strings.Builder
	for off := 0; off < len(data); off += perLine {
		end := min(off+perLine, len(data))
		fmt.Fprintf(&b, "%08x  ", off)
		for i := off; i < off+perLine; i++ {
			if i < end {
				fmt.Fprintf(&b, "%02x ", data[i])
			} else {
				b.WriteString("   ")
			}
			if i == off+7 {
				b.WriteByte(' ')
			}
		}
		b.WriteString(" |")
		for _, c := range data[off:end] {
			if c >= 32 && c <= 126 {
				b.WriteByte(c)
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('|')
		if end < len(data) {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
