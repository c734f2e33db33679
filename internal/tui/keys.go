package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of a list screen
type KeyMap struct {
	NextField key.Binding
	PrevField key.Binding
	Blur      key.Binding

	Search  key.Binding
	Reset   key.Binding
	Refresh key.Binding
	Status  key.Binding

	NextPage key.Binding
	PrevPage key.Binding

	Quit key.Binding
}

// DefaultKeyMap is the built-in key binding set. Single letter bindings only fire
// while no filter input has focus.
var DefaultKeyMap = KeyMap{
	NextField: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next filter"),
	),
	PrevField: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("S-tab", "prev filter"),
	),
	Blur: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "leave filters"),
	),
	Search: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "search"),
	),
	Reset: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("C-r", "reset"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	Status: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "status"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("n", "right"),
		key.WithHelp("n/→", "next page"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("p", "left"),
		key.WithHelp("p/←", "prev page"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp returns the bindings shown in the footer
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextField, k.Search, k.Reset, k.Status, k.PrevPage, k.NextPage, k.Refresh, k.Quit}
}
