package main

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the application-wide bindings. Tree navigation keys live in
// objtree.Keys.
type KeyMap struct {
	Tab  key.Binding
	Esc  key.Binding
	Help key.Binding
	Quit key.Binding

	Open     key.Binding
	Recent   key.Binding
	Jump     key.Binding
	CopyText key.Binding

	HexToggle key.Binding
	TintUp    key.Binding
	TintDown  key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch pane"),
		),
		Esc: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Open: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open file"),
		),
		Recent: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "recent files"),
		),
		Jump: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("ctrl+g", "go to path"),
		),
		CopyText: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy panel text"),
		),
		HexToggle: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "hex/text"),
		),
		TintUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "tint up"),
		),
		TintDown: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "tint down"),
		),
	}
}
