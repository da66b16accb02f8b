package parameter

// Particle Field
const (
	// ParticleAreaPerParticle is surface area (units²) per particle at initialization
	ParticleAreaPerParticle = 10000.0

	// ParticleMaxSpeedInit bounds initial speed per axis to [-1, 1]
	ParticleMaxSpeedInit = 1.0

	// ParticleRadiusMin/Max bound the dot radius
	ParticleRadiusMin = 1.0
	ParticleRadiusMax = 4.0

	// ParticleOpacityMin/Max bound opacity after every tick
	ParticleOpacityMin = 0.1
	ParticleOpacityMax = 0.8

	// ParticleAttractRadius is the pointer influence radius
	ParticleAttractRadius = 100.0

	// ParticleAttractStrength scales the attraction impulse at zero distance
	ParticleAttractStrength = 0.01

	// ParticleDamping is the per-tick velocity multiplier, the only stability safeguard
	ParticleDamping = 0.99

	// ParticleShimmerTimeScale/PosScale seed the opacity sinusoid (per ms, per unit)
	ParticleShimmerTimeScale = 0.001
	ParticleShimmerPosScale  = 0.01

	// ParticleShimmerStep is the opacity change amplitude per tick
	ParticleShimmerStep = 0.01

	// ParticleGlow is the halo reach in surface units
	ParticleGlow = 10.0
)

// Connections
const (
	// ConnectionDistance is the maximum pair distance that draws an edge
	ConnectionDistance = 80.0

	// ConnectionMaxOpacity is edge opacity for coincident particles
	ConnectionMaxOpacity = 0.3
)
