// Package sparkle spawns short radial bursts at click positions.
package sparkle

import (
	"math"

	"github.com/lixenwraith/glimmer/parameter"
	"github.com/lixenwraith/glimmer/render"
	"github.com/lixenwraith/glimmer/vmath"
)

// Sparkle flies from origin along a fixed angle, shrinking and fading out
type Sparkle struct {
	OriginX, OriginY float64
	Angle            float64
	Distance         float64
	StartMs          float64
	DurationMs       float64
}

// Progress returns eased progress in [0,1] at nowMs
func (s *Sparkle) Progress(nowMs float64) float64 {
	if s.DurationMs <= 0 {
		return 1
	}
	return vmath.EaseOutQuad.At((nowMs - s.StartMs) / s.DurationMs)
}

// Position returns the sparkle center at nowMs
func (s *Sparkle) Position(nowMs float64) (float64, float64) {
	t := s.Progress(nowMs)
	return s.OriginX + math.Cos(s.Angle)*s.Distance*t, s.OriginY + math.Sin(s.Angle)*s.Distance*t
}

// Done reports whether the animation has finished
func (s *Sparkle) Done(nowMs float64) bool {
	return nowMs-s.StartMs >= s.DurationMs
}

// Emitter owns all live sparkles
type Emitter struct {
	rng      vmath.Source
	color    render.RGB
	sparkles []Sparkle
	nowMs    float64
	onBurst  func()
}

// NewEmitter creates an emitter drawing with color
func NewEmitter(rng vmath.Source, color render.RGB) *Emitter {
	return &Emitter{
		rng:      rng,
		color:    color,
		sparkles: make([]Sparkle, 0, parameter.SparkleCount*4),
	}
}

// OnBurst registers a callback fired once per Spawn, used for the audio cue
func (e *Emitter) OnBurst(fn func()) {
	e.onBurst = fn
}

// Spawn adds one burst of sparkles evenly spread around (x, y)
// Oldest sparkles are dropped once the active cap is reached
func (e *Emitter) Spawn(x, y, nowMs float64) {
	for i := 0; i < parameter.SparkleCount; i++ {
		e.sparkles = append(e.sparkles, Sparkle{
			OriginX:    x,
			OriginY:    y,
			Angle:      float64(i) / parameter.SparkleCount * 2 * math.Pi,
			Distance:   parameter.SparkleDistanceMin + e.rng.Float64()*parameter.SparkleDistanceJitter,
			StartMs:    nowMs,
			DurationMs: parameter.SparkleDurationMinMs + e.rng.Float64()*parameter.SparkleDurationJitterMs,
		})
	}
	if over := len(e.sparkles) - parameter.SparkleMaxActive; over > 0 {
		e.sparkles = append(e.sparkles[:0], e.sparkles[over:]...)
	}
	if e.onBurst != nil {
		e.onBurst()
	}
}

// Advance drops finished sparkles and records the clock for rendering
func (e *Emitter) Advance(nowMs float64) {
	e.nowMs = nowMs
	live := e.sparkles[:0]
	for _, s := range e.sparkles {
		if !s.Done(nowMs) {
			live = append(live, s)
		}
	}
	e.sparkles = live
}

// Active returns the number of live sparkles
func (e *Emitter) Active() int {
	return len(e.sparkles)
}

// Render implements render.Layer
// Scale and opacity both run 1 -> 0 along the eased progress
func (e *Emitter) Render(s render.Surface) {
	for i := range e.sparkles {
		sp := &e.sparkles[i]
		t := sp.Progress(e.nowMs)
		x, y := sp.Position(e.nowMs)
		fade := 1 - t
		s.FillCircle(x, y, parameter.SparkleRadius*fade, e.color, parameter.SparkleAlpha*fade, parameter.SparkleGlow*fade)
	}
}
