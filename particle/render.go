package particle

import (
	"github.com/lixenwraith/glimmer/parameter"
	"github.com/lixenwraith/glimmer/render"
)

// Layer draws a Field: edges first, then glowing dots
// Owns the reusable edge buffer so Field stays free of render state
type Layer struct {
	field     *Field
	edgeColor render.RGB
	edges     []Edge
	visible   bool
}

// NewLayer wraps field for rendering with edgeColor for connections
func NewLayer(field *Field, edgeColor render.RGB) *Layer {
	return &Layer{field: field, edgeColor: edgeColor, visible: true}
}

// SetVisible toggles drawing
func (l *Layer) SetVisible(v bool) {
	l.visible = v
}

// IsVisible implements render.VisibilityToggle
func (l *Layer) IsVisible() bool {
	return l.visible
}

// Render implements render.Layer
// Does not clear; the orchestrator clears once per frame before any layer
func (l *Layer) Render(s render.Surface) {
	l.edges = l.field.Connections(l.edges)
	ps := l.field.particles
	for _, e := range l.edges {
		a, b := ps[e.I], ps[e.J]
		s.Line(a.X, a.Y, b.X, b.Y, l.edgeColor, e.Opacity)
	}

	for i := range ps {
		p := &ps[i]
		s.FillCircle(p.X, p.Y, p.Radius, p.Color, p.Opacity, parameter.ParticleGlow)
	}
}

// Render clears the surface then draws the field, for standalone use
func (f *Field) Render(s render.Surface, edgeColor render.RGB) {
	s.Clear()
	NewLayer(f, edgeColor).Render(s)
}
