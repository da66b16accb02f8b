// Package trail implements the cursor-following marker chain.
//
// The head chases the pointer and each later marker chases the already
// updated position of the one before it, with a smoothing factor that
// shrinks by index. That produces a tapering, lagging tail.
package trail

import (
	"math"

	"github.com/lixenwraith/glimmer/parameter"
	"github.com/lixenwraith/glimmer/pointer"
)

// Marker is one segment of the chain
type Marker struct {
	Index int
	X, Y  float64

	// Visual attributes fixed at creation, larger and brighter toward the head
	Size  float64
	Alpha float64
	Glow  float64
}

// ElementSink positions one drawable per marker
type ElementSink interface {
	Place(m Marker)
}

// Follower owns the marker chain
type Follower struct {
	markers []Marker
	visible bool
}

// New creates count markers at the origin
func New(count int) *Follower {
	if count < 0 {
		count = 0
	}
	f := &Follower{
		markers: make([]Marker, count),
		visible: true,
	}
	for i := range f.markers {
		fi := float64(i)
		f.markers[i] = Marker{
			Index: i,
			Size:  math.Max(parameter.TrailSizeBase-fi*parameter.TrailSizeStep, parameter.TrailSizeMin),
			Alpha: math.Max(parameter.TrailAlphaBase-fi*parameter.TrailAlphaStep, 0),
			Glow:  math.Max(parameter.TrailGlowBase-fi*parameter.TrailGlowStep, 0),
		}
	}
	return f
}

// Smoothing returns the interpolation factor for marker index i
func Smoothing(i int) float64 {
	return math.Max(parameter.TrailSmoothing-float64(i)*parameter.TrailSmoothingStep, parameter.TrailSmoothingMin)
}

// Markers exposes the chain; callers must not retain it across ticks
func (f *Follower) Markers() []Marker {
	return f.markers
}

// Len returns the chain length
func (f *Follower) Len() int {
	return len(f.markers)
}

// Advance moves every marker one tick toward its target
func (f *Follower) Advance(p pointer.State) {
	tx, ty := p.X, p.Y
	for i := range f.markers {
		m := &f.markers[i]
		k := Smoothing(i)
		m.X += (tx - m.X) * k
		m.Y += (ty - m.Y) * k
		tx, ty = m.X, m.Y
	}
}

// SetVisible mirrors pointer enter/leave on the surface
func (f *Follower) SetVisible(v bool) {
	f.visible = v
}

// IsVisible reports whether markers should be drawn
func (f *Follower) IsVisible() bool {
	return f.visible
}

// Place writes every marker position to sink; hidden chains write nothing
func (f *Follower) Place(sink ElementSink) {
	if !f.visible {
		return
	}
	for _, m := range f.markers {
		sink.Place(m)
	}
}
