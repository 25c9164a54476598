package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	backtab key.Binding
	quit    key.Binding
	history key.Binding
	info    key.Binding
	logout  key.Binding
	copy    key.Binding
	refresh key.Binding
	newCalc key.Binding
}

// Letters are typed into the form inputs, so the form screen only reacts to
// function keys.
var keys = keyMap{
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	tab:     key.NewBinding(key.WithKeys("tab", "down")),
	backtab: key.NewBinding(key.WithKeys("shift+tab", "up")),
	quit:    key.NewBinding(key.WithKeys("ctrl+c")),
	history: key.NewBinding(key.WithKeys("f2")),
	info:    key.NewBinding(key.WithKeys("f3")),
	logout:  key.NewBinding(key.WithKeys("f4")),
	copy:    key.NewBinding(key.WithKeys("c")),
	refresh: key.NewBinding(key.WithKeys("r")),
	newCalc: key.NewBinding(key.WithKeys("n")),
}
