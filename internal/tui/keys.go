package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up         key.Binding
	down       key.Binding
	enter      key.Binding
	esc        key.Binding
	nextType   key.Binding
	nextPanel  key.Binding
	copyPath   key.Binding
	delete     key.Binding
	openImport key.Binding
	policy     key.Binding
	yes        key.Binding
	no         key.Binding
}

var keys = keyMap{
	up:         key.NewBinding(key.WithKeys("up")),
	down:       key.NewBinding(key.WithKeys("down")),
	enter:      key.NewBinding(key.WithKeys("enter")),
	esc:        key.NewBinding(key.WithKeys("esc")),
	nextType:   key.NewBinding(key.WithKeys("tab")),
	nextPanel:  key.NewBinding(key.WithKeys("shift+tab")),
	copyPath:   key.NewBinding(key.WithKeys("ctrl+y")),
	delete:     key.NewBinding(key.WithKeys("ctrl+d")),
	openImport: key.NewBinding(key.WithKeys("ctrl+n")),
	policy:     key.NewBinding(key.WithKeys("ctrl+p")),
	yes:        key.NewBinding(key.WithKeys("y")),
	no:         key.NewBinding(key.WithKeys("n", "esc")),
}
