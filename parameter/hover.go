package parameter

// Tilt
const (
	// TiltMaxDegrees is rotation at the element edge
	TiltMaxDegrees = 10.0

	// TiltPerspective is the CSS perspective distance (px)
	TiltPerspective = 1000.0

	// TiltLiftZ is translateZ while hovered (px)
	TiltLiftZ = 10.0

	// TiltScale is uniform scale while hovered
	TiltScale = 1.02
)

// Magnetic
const (
	// MagneticStrength is the default pull factor
	MagneticStrength = 0.3

	// MagneticButtonStrength is the subtler pull used on plain buttons
	MagneticButtonStrength = 0.1

	// MagneticScale is uniform scale while hovered
	MagneticScale = 1.05
)
