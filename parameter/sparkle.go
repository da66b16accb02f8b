package parameter

// Click Sparkles
const (
	// SparkleCount is sparkles per click burst
	SparkleCount = 6

	// SparkleDistanceMin/Jitter give travel distance 30 + r*20
	SparkleDistanceMin    = 30.0
	SparkleDistanceJitter = 20.0

	// SparkleDurationMinMs/JitterMs give lifetime 600 + r*300 ms
	SparkleDurationMinMs    = 600.0
	SparkleDurationJitterMs = 300.0

	// SparkleRadius is the initial dot radius (scaled to 0 over lifetime)
	SparkleRadius = 2.0

	// SparkleGlow is the halo reach in surface units
	SparkleGlow = 6.0

	// SparkleAlpha is the initial opacity
	SparkleAlpha = 0.8

	// SparkleMaxActive caps live sparkles so click spam stays bounded
	SparkleMaxActive = 240
)
