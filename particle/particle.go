// Package particle implements the pointer-attracted particle field.
//
// State updates are pure numeric operations on an in-memory slice; drawing
// goes through render.Surface only. Per tick the connection pass is O(n²)
// with n = floor(area/10000), so doubling the surface area quadruples it.
package particle

import (
	"math"

	"github.com/lixenwraith/glimmer/parameter"
	"github.com/lixenwraith/glimmer/pointer"
	"github.com/lixenwraith/glimmer/render"
	"github.com/lixenwraith/glimmer/vmath"
)

// Particle is one simulated point
type Particle struct {
	X, Y           float64
	SpeedX, SpeedY float64
	Radius         float64
	Color          render.RGB
	Opacity        float64
}

// Field owns all particles and the bounds used for reflection
type Field struct {
	particles []Particle
	width     float64
	height    float64
}

// Count returns how many particles a surface of the given size holds
func Count(width, height float64) int {
	if width <= 0 || height <= 0 {
		return 0
	}
	return int(math.Floor(width * height / parameter.ParticleAreaPerParticle))
}

// NewField creates floor(width*height/10000) particles
// Empty palette falls back to render.DefaultPalette
func NewField(width, height float64, rng vmath.Source, palette []render.RGB) *Field {
	if len(palette) == 0 {
		palette = render.DefaultPalette
	}

	n := Count(width, height)
	f := &Field{
		particles: make([]Particle, n),
		width:     width,
		height:    height,
	}

	for i := range f.particles {
		f.particles[i] = Particle{
			X:       rng.Float64() * width,
			Y:       rng.Float64() * height,
			Radius:  vmath.Range(rng, parameter.ParticleRadiusMin, parameter.ParticleRadiusMax),
			SpeedX:  (rng.Float64() - 0.5) * 2 * parameter.ParticleMaxSpeedInit,
			SpeedY:  (rng.Float64() - 0.5) * 2 * parameter.ParticleMaxSpeedInit,
			Color:   palette[vmath.Pick(rng, len(palette))],
			Opacity: vmath.Range(rng, parameter.ParticleOpacityMin, parameter.ParticleOpacityMax),
		}
	}
	return f
}

// Particles exposes the live slice; callers must not retain it across ticks
func (f *Field) Particles() []Particle {
	return f.particles
}

// Len returns the particle count
func (f *Field) Len() int {
	return len(f.particles)
}

// Bounds returns the reflection bounds
func (f *Field) Bounds() (float64, float64) {
	return f.width, f.height
}

// Resize updates reflection bounds only; particle count never changes
// Particles outside the new bounds drift back via reflection
func (f *Field) Resize(width, height float64) {
	f.width = width
	f.height = height
}

// Advance runs one tick: attract, integrate, reflect, damp, shimmer
// nowMs seeds the opacity sinusoid and is normally the frame clock in milliseconds
func (f *Field) Advance(p pointer.State, nowMs float64) {
	for i := range f.particles {
		step(&f.particles[i], p, nowMs, f.width, f.height)
	}
}

func step(pt *Particle, p pointer.State, nowMs, width, height float64) {
	// Attraction
	dx := p.X - pt.X
	dy := p.Y - pt.Y
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist < parameter.ParticleAttractRadius && dist > 0 {
		force := (parameter.ParticleAttractRadius - dist) / parameter.ParticleAttractRadius
		pt.SpeedX += dx / dist * force * parameter.ParticleAttractStrength
		pt.SpeedY += dy / dist * force * parameter.ParticleAttractStrength
	}

	// Integrate
	pt.X += pt.SpeedX
	pt.Y += pt.SpeedY

	// Reflect without clamping, only while still heading outward
	// so a particle stranded by a shrink drifts back in
	if (pt.X < 0 && pt.SpeedX < 0) || (pt.X > width && pt.SpeedX > 0) {
		pt.SpeedX = -pt.SpeedX
	}
	if (pt.Y < 0 && pt.SpeedY < 0) || (pt.Y > height && pt.SpeedY > 0) {
		pt.SpeedY = -pt.SpeedY
	}

	// Damping
	pt.SpeedX *= parameter.ParticleDamping
	pt.SpeedY *= parameter.ParticleDamping

	// Shimmer
	pt.Opacity += math.Sin(nowMs*parameter.ParticleShimmerTimeScale+pt.X*parameter.ParticleShimmerPosScale) * parameter.ParticleShimmerStep
	pt.Opacity = vmath.Clamp(pt.Opacity, parameter.ParticleOpacityMin, parameter.ParticleOpacityMax)
}
