package editor

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Toggle key.Binding
	Blur   key.Binding
	Status key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Toggle: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "focus")),
		Blur:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "blur")),
		Status: key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "status")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Blur, k.Status, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
