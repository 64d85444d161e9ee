package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	nextTab   key.Binding
	prevTab   key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	newItem   key.Binding
	sync      key.Binding
	reload    key.Binding
	delete    key.Binding
	clear     key.Binding
	toggle    key.Binding
	copy      key.Binding
	buildInfo key.Binding
	yes       key.Binding
	no        key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	nextTab:   key.NewBinding(key.WithKeys("right", "l", "tab")),
	prevTab:   key.NewBinding(key.WithKeys("left", "h", "shift+tab")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
	newItem:   key.NewBinding(key.WithKeys("n")),
	sync:      key.NewBinding(key.WithKeys("s")),
	reload:    key.NewBinding(key.WithKeys("r")),
	delete:    key.NewBinding(key.WithKeys("d")),
	clear:     key.NewBinding(key.WithKeys("x")),
	toggle:    key.NewBinding(key.WithKeys(" ", "enter")),
	copy:      key.NewBinding(key.WithKeys("c")),
	buildInfo: key.NewBinding(key.WithKeys("v")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n")),
}
