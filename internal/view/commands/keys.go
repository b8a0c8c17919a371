package commands

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	NewRoom  key.Binding
	ExitRoom key.Binding
	Start    key.Binding
	Hint     key.Binding
	Pass     key.Binding
	Undo     key.Binding
}

var DefaultKeyMap = KeyMap{
	NewRoom: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new room"),
	),
	ExitRoom: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "exit room"),
	),
	Start: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "start deal"),
	),
	Hint: key.NewBinding(
		key.WithKeys("h"),
		key.WithHelp("h", "signal card"),
	),
	Pass: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "pass draft"),
	),
	Undo: key.NewBinding(
		key.WithKeys("u"),
		key.WithHelp("u", "undo"),
	),
}

// ShortHelp lists the bindings available inside a room.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Hint, k.Pass, k.Undo, k.ExitRoom}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.NewRoom}}
}
