package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit      key.Binding
	Clear     key.Binding
	Evaluate  key.Binding
	Backspace key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc", "c"),
			key.WithHelp("esc", "clear"),
		),
		Evaluate: key.NewBinding(
			key.WithKeys("enter", "="),
			key.WithHelp("enter", "evaluate"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("⌫", "delete"),
		),
	}
}
