package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/glimmer/parameter"
)

// Player mixes synthesized effects into the speaker
// Safe for concurrent use; every method is a no-op while the output is unavailable
type Player struct {
	mu       sync.Mutex
	cfg      *Config
	mixer    *beep.Mixer
	lastPlay [soundCount]time.Time
	running  bool
	muted    bool

	// output hands a streamer to the device; replaced in tests
	output func(beep.Streamer)
	// open starts the device; replaced in tests
	open func(rate beep.SampleRate, mixer *beep.Mixer) error
	now  func() time.Time
}

// NewPlayer creates a stopped player for cfg
func NewPlayer(cfg *Config) *Player {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	p := &Player{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		muted: !cfg.Enabled,
		open:  openSpeaker,
		now:   time.Now,
	}
	p.output = p.addToMixer
	return p
}

func openSpeaker(rate beep.SampleRate, mixer *beep.Mixer) error {
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}
	speaker.Play(mixer)
	return nil
}

func (p *Player) addToMixer(s beep.Streamer) {
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Open initializes the speaker and attaches the mixer
func (p *Player) Open() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.running {
		return nil
	}
	if err := p.open(beep.SampleRate(p.cfg.SampleRate), p.mixer); err != nil {
		return fmt.Errorf("%w: %v", ErrNoOutput, err)
	}
	p.running = true
	return nil
}

// Close silences the mixer; the speaker device stays owned by the process
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.running {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.running = false
}

// Play queues sound s, returning false when muted, stopped or rate limited
func (p *Player) Play(s Sound) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.running || p.muted || s < 0 || s >= soundCount {
		return false
	}
	now := p.now()
	if now.Sub(p.lastPlay[s]) < parameter.MinSoundGap {
		return false
	}
	streamer := Effect(s, p.cfg)
	if streamer == nil {
		return false
	}
	p.lastPlay[s] = now
	p.output(streamer)
	return true
}

// ToggleMute flips mute and returns the new state
func (p *Player) ToggleMute() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = !p.muted
	return p.muted
}

// IsMuted reports the mute state
func (p *Player) IsMuted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// IsRunning reports whether the output is open
func (p *Player) IsRunning() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.running
}
