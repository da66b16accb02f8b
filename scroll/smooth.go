package scroll

import (
	"github.com/lixenwraith/glimmer/parameter"
	"github.com/lixenwraith/glimmer/vmath"
)

// smoothEase is the ease-in-out curve of an anchor jump
var smoothEase = vmath.CubicBezier{X1: 0.42, Y1: 0, X2: 0.58, Y2: 1}

// Smooth glides a scroll offset toward a target over SmoothScrollDuration
type Smooth struct {
	from, to float64
	startMs  float64
	active   bool
}

// Start begins a glide from from to to at nowMs
func (m *Smooth) Start(from, to, nowMs float64) {
	m.from, m.to, m.startMs = from, to, nowMs
	m.active = from != to
}

// Cancel stops the glide where it is
func (m *Smooth) Cancel() {
	m.active = false
}

// Active reports whether a glide is in progress
func (m *Smooth) Active() bool {
	return m.active
}

// At returns the offset at nowMs, landing exactly on the target when done
func (m *Smooth) At(nowMs float64) float64 {
	if !m.active {
		return m.to
	}
	t := (nowMs - m.startMs) / float64(parameter.SmoothScrollDuration.Milliseconds())
	if t >= 1 {
		m.active = false
		return m.to
	}
	return m.from + (m.to-m.from)*smoothEase.At(t)
}
