package audio

import (
	"log"
	"sync/atomic"
)

// Service wraps Player as a service.Service
// Missing audio hardware disables playback instead of failing startup
type Service struct {
	cfg      *Config
	player   *Player
	disabled atomic.Bool
}

// NewService creates an audio service for cfg
func NewService(cfg *Config) *Service {
	return &Service{cfg: cfg}
}

// Name implements service.Service
func (s *Service) Name() string {
	return "audio"
}

// Dependencies implements service.Service
func (s *Service) Dependencies() []string {
	return nil
}

// Init implements service.Service
// args[0]: bool - start muted, overriding the configured state
func (s *Service) Init(args ...any) error {
	if len(args) > 0 {
		if muted, ok := args[0].(bool); ok {
			cfg := *s.configOrDefault()
			cfg.Enabled = !muted
			s.cfg = &cfg
		}
	}
	s.player = NewPlayer(s.configOrDefault())
	return nil
}

func (s *Service) configOrDefault() *Config {
	if s.cfg == nil {
		s.cfg = DefaultConfig()
	}
	return s.cfg
}

// Start implements service.Service
func (s *Service) Start() error {
	if s.player == nil {
		s.disabled.Store(true)
		return nil
	}
	if err := s.player.Open(); err != nil {
		log.Printf("audio disabled: %v", err)
		s.disabled.Store(true)
	}
	return nil
}

// Stop implements service.Service
func (s *Service) Stop() error {
	if s.player != nil {
		s.player.Close()
	}
	return nil
}

// Disabled reports whether no output could be opened
func (s *Service) Disabled() bool {
	return s.disabled.Load()
}

// Player returns the player, or nil when audio is unavailable
func (s *Service) Player() *Player {
	if s.disabled.Load() {
		return nil
	}
	return s.player
}
