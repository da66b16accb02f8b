package render

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Base colors
var (
	RgbBackground = RGB{26, 27, 38}   // Tokyo Night background
	RgbText       = RGB{192, 202, 245} // Tokyo Night foreground
	RgbTextDim    = RGB{86, 95, 137}
)

// Effect palette, shared by particles, trail and sparkles
var (
	RgbPurple  = RGB{139, 92, 246}
	RgbPink    = RGB{236, 72, 153}
	RgbCyan    = RGB{6, 182, 212}
	RgbEmerald = RGB{16, 185, 129}
	RgbOrange  = RGB{245, 158, 11}
)

// DefaultPalette is the particle color set, picked uniformly per particle
var DefaultPalette = []RGB{RgbPurple, RgbPink, RgbCyan, RgbEmerald, RgbOrange}

// ParseHex converts "#rrggbb" or "#rgb" to RGB
func ParseHex(s string) (RGB, error) {
	c, err := colorful.Hex(normalizeHex(s))
	if err != nil {
		return RGB{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGB{r, g, b}, nil
}

// Hex formats c as "#rrggbb"
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// normalizeHex adds the leading '#' colorful requires
func normalizeHex(s string) string {
	if len(s) > 0 && s[0] != '#' {
		s = "#" + s
	}
	return s
}

// ParsePalette parses a list of hex colors, empty input yields DefaultPalette
func ParsePalette(hexes []string) ([]RGB, error) {
	if len(hexes) == 0 {
		out := make([]RGB, len(DefaultPalette))
		copy(out, DefaultPalette)
		return out, nil
	}
	out := make([]RGB, 0, len(hexes))
	for _, h := range hexes {
		c, err := ParseHex(h)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// Glow returns a lighter tint of c for halo cores
// Blended in Lab space so hue stays stable while lightening
func Glow(c RGB, amount float64) RGB {
	base := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	white := colorful.Color{R: 1, G: 1, B: 1}
	r, g, b := base.BlendLab(white, amount).Clamped().RGB255()
	return RGB{r, g, b}
}
