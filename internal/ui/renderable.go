package ui

// Renderable is implemented by anything that can draw itself as a string.
type Renderable interface {
	View() string
}
