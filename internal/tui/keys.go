package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	prev      key.Binding
	next      key.Binding
	tab       key.Binding
	newNote   key.Binding
	edit      key.Binding
	delete    key.Binding
	copy      key.Binding
	reload    key.Binding
	version   key.Binding
	quit      key.Binding
	forceQuit key.Binding
	save      key.Binding
	esc       key.Binding
	enter     key.Binding
	yes       key.Binding
	no        key.Binding
}

var keys = keyMap{
	prev:      key.NewBinding(key.WithKeys("left", "h")),
	next:      key.NewBinding(key.WithKeys("right", "l")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	newNote:   key.NewBinding(key.WithKeys("n")),
	edit:      key.NewBinding(key.WithKeys("e")),
	delete:    key.NewBinding(key.WithKeys("d")),
	copy:      key.NewBinding(key.WithKeys("c")),
	reload:    key.NewBinding(key.WithKeys("r")),
	version:   key.NewBinding(key.WithKeys("v")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
	forceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	save:      key.NewBinding(key.WithKeys("ctrl+s")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	yes:       key.NewBinding(key.WithKeys("y", "Y")),
	no:        key.NewBinding(key.WithKeys("n", "N", "esc")),
}
