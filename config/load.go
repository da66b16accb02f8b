package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// EnvPrefix prefixes every recognized environment variable
const EnvPrefix = "GLIMMER_"

// Load builds a configuration from defaults, the optional TOML file at path,
// the optional dotenv file and the process environment
// Missing files are skipped; malformed ones are errors
func Load(path, envFile string) (*Config, error) {
	cfg := Default()

	if path != "" {
		md, err := toml.DecodeFile(path, cfg)
		if err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("%w: unknown key %s in %s", ErrInvalid, undecoded[0], path)
		}
	}

	if envFile != "" {
		// Load never overrides variables already set in the process
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("env file %s: %w", envFile, err)
		}
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

// ApplyEnv overrides fields from GLIMMER_* variables resolved through lookup
// PORT is honored as a fallback for the server port
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	get := func(key string) (string, bool) {
		v, ok := lookup(EnvPrefix + key)
		if !ok || strings.TrimSpace(v) == "" {
			return "", false
		}
		return strings.TrimSpace(v), true
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"MARKERS", &c.Effects.Markers},
		{"CELL_WIDTH", &c.Effects.CellWidth},
		{"CELL_HEIGHT", &c.Effects.CellHeight},
		{"FPS", &c.Effects.FPS},
	}
	for _, f := range ints {
		if v, ok := get(f.key); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%w: %s%s: %v", ErrInvalid, EnvPrefix, f.key, err)
			}
			*f.dst = n
		}
	}

	if v, ok := get("SEED"); ok {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %sSEED: %v", ErrInvalid, EnvPrefix, err)
		}
		c.Effects.Seed = n
	}
	if v, ok := get("PALETTE"); ok {
		c.Effects.Palette = splitList(v)
	}
	if v, ok := get("EDGE_COLOR"); ok {
		c.Effects.EdgeColor = v
	}
	if v, ok := get("TAGLINE"); ok {
		c.Effects.Tagline = v
	}

	if v, ok := get("AUDIO_ENABLED"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %sAUDIO_ENABLED: %v", ErrInvalid, EnvPrefix, err)
		}
		c.Audio.Enabled = b
	}
	// Master volume is given as 0-100
	if v, ok := get("MASTER_VOLUME"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %sMASTER_VOLUME: %v", ErrInvalid, EnvPrefix, err)
		}
		c.Audio.MasterVolume = min(max(float64(n)/100, 0), 1)
	}
	// Per-effect volumes as a JSON object, e.g. {"chime":0.5}
	if v, ok := get("SFX_VOLUMES"); ok {
		var vols map[string]float64
		if err := json.Unmarshal([]byte(v), &vols); err != nil {
			return fmt.Errorf("%w: %sSFX_VOLUMES: %v", ErrInvalid, EnvPrefix, err)
		}
		if c.Audio.Volumes == nil {
			c.Audio.Volumes = make(map[string]float64, len(vols))
		}
		for name, vol := range vols {
			c.Audio.Volumes[name] = vol
		}
	}

	port, ok := get("PORT")
	if !ok {
		if v, found := lookup("PORT"); found && strings.TrimSpace(v) != "" {
			port, ok = strings.TrimSpace(v), true
		}
	}
	if ok {
		n, err := strconv.Atoi(port)
		if err != nil {
			return fmt.Errorf("%w: PORT: %v", ErrInvalid, err)
		}
		c.Server.Port = n
	}
	if v, ok := get("DATA_DIR"); ok {
		c.Server.DataDir = v
	}
	if v, ok := get("STATIC_DIR"); ok {
		c.Server.StaticDir = v
	}
	return nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
