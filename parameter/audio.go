package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 50 * time.Millisecond

	// MinSoundGap between consecutive plays of the same sound
	MinSoundGap = 50 * time.Millisecond
)

// Chime Sound, played once per sparkle burst
const (
	ChimeSoundNote1Duration = 60 * time.Millisecond
	ChimeSoundNote2Duration = 220 * time.Millisecond
	ChimeSoundAttack        = 4 * time.Millisecond
	ChimeSoundNote1Release  = 30 * time.Millisecond
	ChimeSoundNote2Release  = 180 * time.Millisecond
	ChimeSoundNote1Freq     = 1318.51 // E6
	ChimeSoundNote2Freq     = 1975.53 // B6
)

// Bell Sound, played when the typewriter completes its line
const (
	BellSoundDuration           = 600 * time.Millisecond
	BellSoundAttack             = 5 * time.Millisecond
	BellSoundFundamentalRelease = 550 * time.Millisecond
	BellSoundOvertoneRelease    = 200 * time.Millisecond
	BellSoundFreq               = 880.0 // A5
)

// Default volumes
const (
	DefaultMasterVolume = 0.5
	DefaultChimeVolume  = 0.6
	DefaultBellVolume   = 0.4
)
