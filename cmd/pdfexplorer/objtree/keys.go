package objtree

import "github.com/charmbracelet/bubbles/key"

// Keys are the bindings handled by the tree pane.
type Keys struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
	Toggle   key.Binding
	Parent   key.Binding
	Copy     key.Binding
}

// DefaultKeys returns the standard bindings.
func DefaultKeys() Keys {
	return Keys{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "collapse")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "expand")),
		PageUp:   key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdn", "page down")),
		Home:     key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first")),
		End:      key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last")),
		Toggle:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "toggle")),
		Parent:   key.NewBinding(key.WithKeys("p", "backspace"), key.WithHelp("p", "parent")),
		Copy:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy path")),
	}
}
