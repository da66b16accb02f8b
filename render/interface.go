package render

// Layer is implemented by anything with visual output
type Layer interface {
	Render(s Surface)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}

// LayerFunc adapts a plain function to Layer
type LayerFunc func(s Surface)

// Render implements Layer
func (f LayerFunc) Render(s Surface) {
	f(s)
}
