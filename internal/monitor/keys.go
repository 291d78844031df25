package monitor

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the dashboard's key bindings. The monitor knows a single
// command: quit.
type keyMap struct {
	Quit key.Binding
}

var keys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "Q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
