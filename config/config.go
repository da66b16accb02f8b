// Package config loads runtime settings for the effects viewer and the contact server.
//
// Sources are applied in order, later ones winning:
// defaults, TOML file, .env file, GLIMMER_* environment, command-line flags.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/glimmer/audio"
	"github.com/lixenwraith/glimmer/parameter"
	"github.com/lixenwraith/glimmer/render"
)

// ErrInvalid is wrapped by every Validate failure
var ErrInvalid = errors.New("invalid configuration")

// Config is the full runtime configuration
type Config struct {
	Effects EffectsConfig `toml:"effects"`
	Audio   AudioConfig   `toml:"audio"`
	Server  ServerConfig  `toml:"server"`
}

// EffectsConfig drives the terminal renderer
type EffectsConfig struct {
	Markers    int      `toml:"markers"`
	CellWidth  int      `toml:"cell_width"`
	CellHeight int      `toml:"cell_height"`
	FPS        int      `toml:"fps"`
	Seed       uint64   `toml:"seed"`
	Palette    []string `toml:"palette"`
	EdgeColor  string   `toml:"edge_color"`
	Tagline    string   `toml:"tagline"`
}

// AudioConfig drives the sound effects
type AudioConfig struct {
	Enabled      bool               `toml:"enabled"`
	MasterVolume float64            `toml:"master_volume"`
	Volumes      map[string]float64 `toml:"volumes"`
}

// ServerConfig drives the contact backend
type ServerConfig struct {
	Port      int    `toml:"port"`
	DataDir   string `toml:"data_dir"`
	StaticDir string `toml:"static_dir"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Effects: EffectsConfig{
			Markers:    parameter.TrailMarkerCount,
			CellWidth:  render.DefaultCellWidth,
			CellHeight: render.DefaultCellHeight,
			FPS:        int(time.Second / parameter.FrameUpdateInterval),
			Palette: []string{
				render.RgbPurple.Hex(),
				render.RgbPink.Hex(),
				render.RgbCyan.Hex(),
				render.RgbEmerald.Hex(),
				render.RgbOrange.Hex(),
			},
			EdgeColor: render.RgbPurple.Hex(),
			Tagline:   "Crafting interfaces that glow",
		},
		Audio: AudioConfig{
			Enabled:      false,
			MasterVolume: parameter.DefaultMasterVolume,
			Volumes: map[string]float64{
				audio.SoundChime.String(): parameter.DefaultChimeVolume,
				audio.SoundBell.String():  parameter.DefaultBellVolume,
			},
		},
		Server: ServerConfig{
			Port:      3001,
			DataDir:   ".",
			StaticDir: ".",
		},
	}
}

// Validate checks ranges and parses colors
func (c *Config) Validate() error {
	e := &c.Effects
	switch {
	case e.Markers < 1:
		return fmt.Errorf("%w: markers must be positive, got %d", ErrInvalid, e.Markers)
	case e.CellWidth < 1 || e.CellHeight < 1:
		return fmt.Errorf("%w: cell size must be positive, got %dx%d", ErrInvalid, e.CellWidth, e.CellHeight)
	case e.FPS < 1 || e.FPS > 240:
		return fmt.Errorf("%w: fps must be in [1,240], got %d", ErrInvalid, e.FPS)
	case len(e.Palette) == 0:
		return fmt.Errorf("%w: palette is empty", ErrInvalid)
	}
	if _, err := render.ParsePalette(e.Palette); err != nil {
		return fmt.Errorf("%w: palette: %v", ErrInvalid, err)
	}
	if _, err := render.ParseHex(e.EdgeColor); err != nil {
		return fmt.Errorf("%w: edge color: %v", ErrInvalid, err)
	}

	if v := c.Audio.MasterVolume; v < 0 || v > 1 {
		return fmt.Errorf("%w: master volume must be in [0,1], got %v", ErrInvalid, v)
	}
	for name := range c.Audio.Volumes {
		if _, ok := audio.ParseSound(name); !ok {
			return fmt.Errorf("%w: unknown sound %q", ErrInvalid, name)
		}
	}

	if p := c.Server.Port; p < 1 || p > 65535 {
		return fmt.Errorf("%w: port out of range: %d", ErrInvalid, p)
	}
	if c.Server.DataDir == "" {
		return fmt.Errorf("%w: data dir is empty", ErrInvalid)
	}
	return nil
}

// FrameInterval returns the redraw period
func (c *Config) FrameInterval() time.Duration {
	if c.Effects.FPS <= 0 {
		return parameter.FrameUpdateInterval
	}
	return time.Second / time.Duration(c.Effects.FPS)
}

// ParticlePalette returns the parsed particle colors
func (c *Config) ParticlePalette() ([]render.RGB, error) {
	return render.ParsePalette(c.Effects.Palette)
}

// Edge returns the parsed connection line color
func (c *Config) Edge() (render.RGB, error) {
	return render.ParseHex(c.Effects.EdgeColor)
}

// AudioSettings converts to the audio package configuration
func (c *Config) AudioSettings() *audio.Config {
	out := audio.DefaultConfig()
	out.Enabled = c.Audio.Enabled
	out.MasterVolume = c.Audio.MasterVolume
	for name, v := range c.Audio.Volumes {
		if s, ok := audio.ParseSound(name); ok {
			out.EffectVolumes[s] = v
		}
	}
	return out
}

// Addr returns the listen address for the contact server
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}
