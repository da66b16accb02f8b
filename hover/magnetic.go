package hover

import "github.com/lixenwraith/glimmer/parameter"

// Magnetic pulls an element toward the pointer by strength of the offset from its center
func Magnetic(r Rect, px, py, strength float64) Transform {
	cx, cy := r.Center()
	x, y := r.Local(px, py)
	return Transform{
		TranslateX: (x - cx) * strength,
		TranslateY: (y - cy) * strength,
		Scale:      parameter.MagneticScale,
	}
}

// Tracker applies Magnetic while the pointer is inside a rect and Rest otherwise
type Tracker struct {
	Rect     Rect
	Strength float64
	current  Transform
	hovered  bool
}

// NewTracker creates a tracker; strength <= 0 uses the default
func NewTracker(r Rect, strength float64) *Tracker {
	if strength <= 0 {
		strength = parameter.MagneticStrength
	}
	return &Tracker{Rect: r, Strength: strength, current: Rest}
}

// Update feeds the latest pointer position and returns the transform to apply
func (t *Tracker) Update(px, py float64, inside bool) Transform {
	t.hovered = inside && t.Rect.Contains(px, py)
	if t.hovered {
		t.current = Magnetic(t.Rect, px, py, t.Strength)
	} else {
		t.current = Rest
	}
	return t.current
}

// Hovered reports whether the last update was over the rect
func (t *Tracker) Hovered() bool {
	return t.hovered
}

// Current returns the last computed transform
func (t *Tracker) Current() Transform {
	return t.current
}
