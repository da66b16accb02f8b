package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/glimmer/parameter"
)

// Wave selects the oscillator shape
type Wave int

const (
	WaveSine Wave = iota
	WaveTriangle
	WaveSquare
)

// oscillator emits a fixed-length periodic wave
type oscillator struct {
	freq      float64
	phase     float64
	remaining int
	wave      Wave
	rate      beep.SampleRate
}

// NewOscillator creates a tone of freq Hz lasting duration
func NewOscillator(freq float64, duration time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:      freq,
		remaining: rate.N(duration),
		wave:      wave,
		rate:      rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	if o.remaining <= 0 {
		return 0, false
	}
	for i := range samples {
		if o.remaining <= 0 {
			return i, true
		}

		var v float64
		switch o.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * o.phase)
		case WaveTriangle:
			v = 1 - 4*math.Abs(o.phase-0.5)
		case WaveSquare:
			v = 1
			if o.phase >= 0.5 {
				v = -1
			}
		}
		samples[i][0] = v
		samples[i][1] = v

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.remaining--
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s with attack and release ramps inside duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

// gain returns the envelope level at sample pos
func (e *envelope) gain(pos int) float64 {
	g := 1.0
	if e.attack > 0 && pos < e.attack {
		g = float64(pos) / float64(e.attack)
	}
	if start := e.total - e.release; e.release > 0 && pos >= start {
		r := float64(e.total-pos) / float64(e.release)
		if r < g {
			g = r
		}
	}
	return max(g, 0)
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.total {
		return 0, false
	}
	if rest := e.total - e.position; len(samples) > rest {
		samples = samples[:rest]
	}
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		g := e.gain(e.position)
		samples[i][0] *= g
		samples[i][1] *= g
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with linear gain vol
// Log2(0) is -Inf, so zero maps to a silent volume
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// CreateChimeSound generates a rising two-note sparkle
func CreateChimeSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	n1 := NewOscillator(parameter.ChimeSoundNote1Freq, parameter.ChimeSoundNote1Duration, WaveTriangle, rate)
	n1Shaped := NewEnvelope(n1, parameter.ChimeSoundNote1Duration, parameter.ChimeSoundAttack, parameter.ChimeSoundNote1Release, rate)

	n2 := NewOscillator(parameter.ChimeSoundNote2Freq, parameter.ChimeSoundNote2Duration, WaveSine, rate)
	n2Shaped := NewEnvelope(n2, parameter.ChimeSoundNote2Duration, parameter.ChimeSoundAttack, parameter.ChimeSoundNote2Release, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), cfg.Volume(SoundChime))
}

// CreateBellSound generates a soft ding with an octave overtone
func CreateBellSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	fund := NewOscillator(parameter.BellSoundFreq, parameter.BellSoundDuration, WaveSine, rate)
	fundShaped := NewEnvelope(fund, parameter.BellSoundDuration, parameter.BellSoundAttack, parameter.BellSoundFundamentalRelease, rate)

	over := NewOscillator(parameter.BellSoundFreq*2, parameter.BellSoundDuration, WaveSine, rate)
	overShaped := NewEnvelope(over, parameter.BellSoundDuration, parameter.BellSoundAttack, parameter.BellSoundOvertoneRelease, rate)

	mixed := beep.Mix(
		newVolume(fundShaped, 0.7),
		newVolume(overShaped, 0.3),
	)
	return newVolume(mixed, cfg.Volume(SoundBell))
}

// Effect returns a fresh streamer for s, or nil for an unknown sound
func Effect(s Sound, cfg *Config) beep.Streamer {
	switch s {
	case SoundChime:
		return CreateChimeSound(cfg)
	case SoundBell:
		return CreateBellSound(cfg)
	default:
		return nil
	}
}
