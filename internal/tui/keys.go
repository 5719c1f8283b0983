package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the application key bindings. Screens with a focused text
// input use the arrow-only variants so vim-style letters still type.
type keyMap struct {
	up         key.Binding
	down       key.Binding
	arrowUp    key.Binding
	arrowDown  key.Binding
	arrowLeft  key.Binding
	arrowRight key.Binding
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	backtab  key.Binding
	space    key.Binding
	quit     key.Binding
	logout   key.Binding
	schedule key.Binding
	book     key.Binding
	message  key.Binding
	rate     key.Binding
	copyAddr key.Binding
	refresh  key.Binding
}

var keys = keyMap{
	up:         key.NewBinding(key.WithKeys("up", "k")),
	down:       key.NewBinding(key.WithKeys("down", "j")),
	arrowUp:    key.NewBinding(key.WithKeys("up")),
	arrowDown:  key.NewBinding(key.WithKeys("down")),
	arrowLeft:  key.NewBinding(key.WithKeys("left")),
	arrowRight: key.NewBinding(key.WithKeys("right")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab")),
	space:    key.NewBinding(key.WithKeys(" ")),
	quit:     key.NewBinding(key.WithKeys("ctrl+c")),
	logout:   key.NewBinding(key.WithKeys("ctrl+l")),
	schedule: key.NewBinding(key.WithKeys("a")),
	book:     key.NewBinding(key.WithKeys("b")),
	message:  key.NewBinding(key.WithKeys("m")),
	rate:     key.NewBinding(key.WithKeys("r")),
	copyAddr: key.NewBinding(key.WithKeys("c")),
	refresh:  key.NewBinding(key.WithKeys("ctrl+r")),
}
