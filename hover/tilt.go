package hover

import "github.com/lixenwraith/glimmer/parameter"

// TiltState is a perspective tilt with a glare highlight
type TiltState struct {
	// RotateX/RotateY in degrees
	RotateX, RotateY float64
	TranslateZ       float64
	Scale            float64

	// GlareX/GlareY are percentages of the element size, GlareOpacity 0 hides it
	GlareX, GlareY float64
	GlareOpacity   float64
}

// TiltRest is the state after the pointer leaves
var TiltRest = TiltState{Scale: 1}

// Tilt computes the tilt for pointer (px, py) over rect
// Degenerate rects return TiltRest
func Tilt(r Rect, px, py float64) TiltState {
	cx, cy := r.Center()
	if cx <= 0 || cy <= 0 {
		return TiltRest
	}
	x, y := r.Local(px, py)

	return TiltState{
		RotateX:      (y - cy) / cy * parameter.TiltMaxDegrees,
		RotateY:      (cx - x) / cx * parameter.TiltMaxDegrees,
		TranslateZ:   parameter.TiltLiftZ,
		Scale:        parameter.TiltScale,
		GlareX:       x / r.Width * 100,
		GlareY:       y / r.Height * 100,
		GlareOpacity: 1,
	}
}
