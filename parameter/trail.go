package parameter

// Trail Follower
const (
	// TrailMarkerCount is the default chain length
	TrailMarkerCount = 12

	// TrailSmoothing is the head smoothing factor, reduced per index by TrailSmoothingStep
	TrailSmoothing     = 0.3
	TrailSmoothingStep = 0.02

	// TrailSmoothingMin floors the factor so long chains still converge
	TrailSmoothingMin = 0.01

	// TrailSizeBase/Step give marker size 8 - i*0.5
	TrailSizeBase = 8.0
	TrailSizeStep = 0.5
	TrailSizeMin  = 1.0

	// TrailAlphaBase/Step give marker alpha 1 - i*0.08
	TrailAlphaBase = 1.0
	TrailAlphaStep = 0.08

	// TrailGlowBase/Step give halo alpha 0.8 - i*0.06
	TrailGlowBase = 0.8
	TrailGlowStep = 0.06

	// TrailGlowReach is the halo reach in surface units
	TrailGlowReach = 10.0

	// TrailMinColumns disables the trail on terminals too cramped to show it
	TrailMinColumns = 40
)
