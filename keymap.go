package chipedit

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the key bindings for the widget. Movement and deletion keys
// are non-printing on purpose: printable runes are typed into the pending
// segment, so binding letters here would shadow text entry.
type KeyMap struct {
	Left      key.Binding
	Right     key.Binding
	Backspace key.Binding
	Delete    key.Binding
	Grab      key.Binding // start reordering the chip at the cursor
	Drop      key.Binding // commit the reorder
	Cancel    key.Binding // abandon the reorder
	Commit    key.Binding // turn the pending text into a chip
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "move"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "move"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("⌫", "delete left"),
		),
		Delete: key.NewBinding(
			key.WithKeys("delete"),
			key.WithHelp("del", "delete right"),
		),
		Grab: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("ctrl+g", "grab chip"),
		),
		Drop: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "drop"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Commit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "add chip"),
		),
	}
}

// ShortHelp returns the bindings to show in a one-line help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Backspace, k.Grab, k.Commit}
}
