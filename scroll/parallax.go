package scroll

import "github.com/lixenwraith/glimmer/parameter"

// Parallax returns the vertical translation of layer index at scroll offset scrolled
func Parallax(scrolled float64, index int) float64 {
	return scrolled * parameter.ParallaxRate * float64(index+1)
}

// Navbar tracks the fixed header's appearance from successive scroll positions
type Navbar struct {
	last   float64
	solid  bool
	hidden bool
}

// Scroll feeds the current scroll position
func (n *Navbar) Scroll(y float64) {
	n.solid = y > parameter.NavbarSolidAfter
	n.hidden = y > n.last && y > parameter.NavbarHideAfter
	n.last = y
}

// Solid reports whether the navbar is drawn opaque
func (n *Navbar) Solid() bool {
	return n.solid
}

// Hidden reports whether the navbar is slid out of view
func (n *Navbar) Hidden() bool {
	return n.hidden
}

// ShowScrollTop reports whether the back-to-top control is offered at offset y
func ShowScrollTop(y float64) bool {
	return y > parameter.ScrollTopAfter
}

// MouseParallax offsets floating element index by the pointer's distance from the surface center
func MouseParallax(px, py, width, height float64, index int) (float64, float64) {
	if width <= 0 || height <= 0 {
		return 0, 0
	}
	speed := float64(index+1) * parameter.FloatParallaxSpeed
	return (px/width - 0.5) * speed, (py/height - 0.5) * speed
}
