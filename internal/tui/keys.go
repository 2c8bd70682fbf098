package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	submit key.Binding
	toggle key.Binding
	copy   key.Binding
	clear  key.Binding
	quit   key.Binding
}

var keys = keyMap{
	submit: key.NewBinding(key.WithKeys("enter")),
	toggle: key.NewBinding(key.WithKeys("ctrl+t")),
	copy:   key.NewBinding(key.WithKeys("ctrl+y")),
	clear:  key.NewBinding(key.WithKeys("ctrl+l")),
	quit:   key.NewBinding(key.WithKeys("esc", "ctrl+c")),
}
