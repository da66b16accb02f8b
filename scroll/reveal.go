// Package scroll holds the scroll-driven page effects: reveal on enter,
// parallax layers, navbar state and active section tracking.
package scroll

import (
	"github.com/lixenwraith/glimmer/parameter"
	"github.com/lixenwraith/glimmer/vmath"
)

// ease is the CSS "ease" timing curve used by the reveal transition
var ease = vmath.CubicBezier{X1: 0.25, Y1: 0.1, X2: 0.25, Y2: 1}

// Section is an observed page region with staggered children
type Section struct {
	ID       string
	Top      float64
	Height   float64
	Children int

	revealed   bool
	revealedMs float64
}

// Revealed reports whether the section has crossed the threshold
func (s *Section) Revealed() bool {
	return s.revealed
}

// Style returns opacity and vertical offset of the section itself at nowMs
func (s *Section) Style(nowMs float64) (opacity, offset float64) {
	return s.transition(nowMs, 0)
}

// ChildStyle returns opacity and offset of child index, delayed by its stagger
func (s *Section) ChildStyle(index int, nowMs float64) (opacity, offset float64) {
	return s.transition(nowMs, float64(index)*float64(parameter.RevealStagger.Milliseconds()))
}

func (s *Section) transition(nowMs, delayMs float64) (float64, float64) {
	if !s.revealed {
		return 0, parameter.RevealOffset
	}
	duration := float64(parameter.RevealDuration.Milliseconds())
	t := ease.At((nowMs - s.revealedMs - delayMs) / duration)
	return t, parameter.RevealOffset * (1 - t)
}

// IntersectionRatio returns the visible fraction of [top, top+height) inside the viewport
func IntersectionRatio(top, height, viewTop, viewHeight float64) float64 {
	if height <= 0 {
		return 0
	}
	lo := max(top, viewTop)
	hi := min(top+height, viewTop+viewHeight)
	if hi <= lo {
		return 0
	}
	return (hi - lo) / height
}

// Observer reveals sections once their intersection ratio reaches the threshold
// Reveal is one-way; scrolling back out does not hide a section
type Observer struct {
	threshold float64
	sections  []*Section
}

// NewObserver creates an observer; threshold <= 0 uses the default
func NewObserver(threshold float64) *Observer {
	if threshold <= 0 {
		threshold = parameter.RevealThreshold
	}
	return &Observer{threshold: threshold}
}

// Observe registers a section and returns it for style queries
func (o *Observer) Observe(id string, top, height float64, children int) *Section {
	s := &Section{ID: id, Top: top, Height: height, Children: children}
	o.sections = append(o.sections, s)
	return s
}

// Sections returns observed sections in registration order
func (o *Observer) Sections() []*Section {
	return o.sections
}

// Update checks every hidden section against the viewport and returns the newly revealed ones
func (o *Observer) Update(viewTop, viewHeight, nowMs float64) []*Section {
	var fresh []*Section
	for _, s := range o.sections {
		if s.revealed {
			continue
		}
		if IntersectionRatio(s.Top, s.Height, viewTop, viewHeight) >= o.threshold {
			s.revealed = true
			s.revealedMs = nowMs
			fresh = append(fresh, s)
		}
	}
	return fresh
}

// Active returns the id of the section the scroll position is in, or ""
// Sections are matched with a leading allowance for the fixed navbar
func (o *Observer) Active(scrollY float64) string {
	for _, s := range o.sections {
		top := s.Top - parameter.ActiveSectionLead
		if scrollY > top && scrollY <= top+s.Height {
			return s.ID
		}
	}
	return ""
}
