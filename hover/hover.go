// Package hover computes pointer-driven transforms for hovered elements.
//
// Everything here is a pure function of the element rectangle and the
// pointer; the caller applies the returned transform.
package hover

// Rect is an element's bounding box in surface units
type Rect struct {
	Left, Top     float64
	Width, Height float64
}

// Center returns the local center offsets (half width, half height)
func (r Rect) Center() (float64, float64) {
	return r.Width / 2, r.Height / 2
}

// Contains reports whether (x, y) lies inside the rect
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left && x < r.Left+r.Width && y >= r.Top && y < r.Top+r.Height
}

// Local converts surface coordinates to rect-local coordinates
func (r Rect) Local(x, y float64) (float64, float64) {
	return x - r.Left, y - r.Top
}

// Transform is a 2D translate + uniform scale
type Transform struct {
	TranslateX, TranslateY float64
	Scale                  float64
}

// Rest is the identity transform applied on pointer leave
var Rest = Transform{Scale: 1}
