package audio

import "errors"

// Sound identifies a synthesized effect
type Sound int

const (
	SoundChime Sound = iota // Sparkle burst
	SoundBell               // Typewriter line complete
	soundCount
)

// String returns the lowercase name used in configuration keys
func (s Sound) String() string {
	switch s {
	case SoundChime:
		return "chime"
	case SoundBell:
		return "bell"
	default:
		return "unknown"
	}
}

// ParseSound maps a configuration key back to a Sound
func ParseSound(name string) (Sound, bool) {
	for s := Sound(0); s < soundCount; s++ {
		if s.String() == name {
			return s, true
		}
	}
	return 0, false
}

// ErrNoOutput is returned when the speaker cannot be opened
var ErrNoOutput = errors.New("no audio output available")
