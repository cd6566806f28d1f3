package prompt

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the bindings shared by the prompt models.
type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Toggle  key.Binding
	Confirm key.Binding
	Abort   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "select"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Abort: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "abort"),
		),
	}
}

// selectHelp lists the bindings shown under a single-choice list.
type selectHelp struct{ keys keyMap }

func (h selectHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.keys.Up, h.keys.Down, h.keys.Confirm, h.keys.Abort}
}

func (h selectHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}

// multiSelectHelp lists the bindings shown under the dependency list.
type multiSelectHelp struct{ keys keyMap }

func (h multiSelectHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.keys.Up, h.keys.Down, h.keys.Toggle, h.keys.Confirm, h.keys.Abort}
}

func (h multiSelectHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}
