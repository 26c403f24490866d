// Package colorpane is the right-hand panel for Separation colour spaces:
// colorant, alternate space, tint transform and a swatch for a chosen tint.
package colorpane

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joshuapare/pdfexplorer/pkg/pdfobj"
)

const (
	tintStep   = 0.1
	sliderSize = 20
	swatchSize = 12
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).Width(13)
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")).Italic(true)
)

// Keys are the panel bindings.
type Keys struct {
	Increase key.Binding
	Decrease key.Binding
}

// Model is the Separation panel.
type Model struct {
	title string
	sep   pdfobj.Separation
	tint  float64
	width int
	keys  Keys
}

// New returns an empty panel at full tint.
func New() Model {
	return Model{
		tint: 1,
		keys: Keys{
			Increase: key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "tint up")),
			Decrease: key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "tint down")),
		},
	}
}

// Show displays sep for the node titled title. The tint is kept so that
// stepping through several spot colours compares them at the same tint.
func (m *Model) Show(title string, sep pdfobj.Separation) {
	m.title = title
	m.sep = sep
}

// Separation returns the colour space on display.
func (m *Model) Separation() pdfobj.Separation { return m.sep }

// Tint returns the current tint, 0..1.
func (m *Model) Tint() float64 { return m.tint }

// SetSize sets the panel width.
func (m *Model) SetSize(width, _ int) { m.width = width }

// Update handles the tint keys.
func (m *Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, m.keys.Increase):
			m.setTint(m.tint + tintStep)
		case key.Matches(k, m.keys.Decrease):
			m.setTint(m.tint - tintStep)
		}
	}
	return *m, nil
}

func (m *Model) setTint(t float64) {
	// Snap to the step grid so repeated steps do not drift.
	t = float64(int(t/tintStep+0.5)) * tintStep
	m.tint = min(max(t, 0), 1)
}

// Summary returns the panel content as plain text.
func (m Model) Summary() string {
	var b strings.Builder
	for _, row := range m.rows() {
		fmt.Fprintf(&b, "%s: %s\n", row[0], row[1])
	}
	if hex, ok := m.sep.Hex(m.tint); ok {
		fmt.Fprintf(&b, "Swatch: %s\n", hex)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) rows() [][2]string {
	alt := m.sep.Alternate
	if m.sep.Components > 0 {
		alt = fmt.Sprintf("%s (%d components)", alt, m.sep.Components)
	}
	rows := [][2]string{
		{"Colorant", m.sep.Colorant},
		{"Alternate", alt},
		{"Tint func", m.sep.Transform.Describe()},
		{"Tint", fmt.Sprintf("%.1f", m.tint)},
	}
	if c, ok := m.sep.Tint(m.tint); ok {
		parts := make([]string, len(c))
		for i, v := range c {
			parts[i] = fmt.Sprintf("%.3f", v)
		}
		rows = append(rows, [2]string{"Components", strings.Join(parts, " ")})
	}
	return rows
}

// View renders the panel.
func (m Model) View() string {
	var b strings.Builder
	title := m.title
	if title == "" {
		title = "Separation"
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString(" ")
	b.WriteString(mutedStyle.Render("[separation]"))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", max(m.width, 1)))
	b.WriteString("\n")

	for _, row := range m.rows() {
		b.WriteString(labelStyle.Render(row[0]))
		b.WriteString(row[1])
		b.WriteString("\n")
	}

	b.WriteString(labelStyle.Render("Slider"))
	b.WriteString(slider(m.tint))
	b.WriteString("\n\n")

	if hex, ok := m.sep.Hex(m.tint); ok {
		swatch := lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render(strings.Repeat(" ", swatchSize))
		b.WriteString(labelStyle.Render("Swatch"))
		b.WriteString(swatch + " " + hex + "\n")
		b.WriteString(labelStyle.Render(""))
		b.WriteString(swatch + "\n")
	} else {
		b.WriteString(mutedStyle.Render("No swatch: tint transform or alternate space not supported"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("+/- change tint"))
	return b.String()
}

func slider(t float64) string {
	filled := int(t*sliderSize + 0.5)
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", sliderSize-filled) + "]"
}
