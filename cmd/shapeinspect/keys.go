package main

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NextPage key.Binding
	PrevPage key.Binding
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	NextPage: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next page")),
	PrevPage: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous page")),
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous picker")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next picker")),
	Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous value")),
	Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next value")),
	Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// bindings returns every binding in help order.
func (k keyMap) bindings() []key.Binding {
	return []key.Binding{k.NextPage, k.PrevPage, k.Up, k.Down, k.Left, k.Right, k.Help, k.Quit}
}
