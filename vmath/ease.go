package vmath

import "math"

// CubicBezier is a CSS-style timing function through (0,0), P1, P2, (1,1)
type CubicBezier struct {
	X1, Y1, X2, Y2 float64
}

// EaseOutQuad matches cubic-bezier(0.25, 0.46, 0.45, 0.94)
var EaseOutQuad = CubicBezier{0.25, 0.46, 0.45, 0.94}

func bezierAxis(t, p1, p2 float64) float64 {
	u := 1 - t
	return 3*u*u*t*p1 + 3*u*t*t*p2 + t*t*t
}

func bezierAxisDeriv(t, p1, p2 float64) float64 {
	u := 1 - t
	return 3*u*u*p1 + 6*u*t*(p2-p1) + 3*t*t*(1-p2)
}

// At maps progress x in [0,1] to eased output
// Newton iterations with bisection fallback when the slope flattens
func (c CubicBezier) At(x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}

	t := x
	for i := 0; i < 8; i++ {
		err := bezierAxis(t, c.X1, c.X2) - x
		if math.Abs(err) < 1e-7 {
			return bezierAxis(t, c.Y1, c.Y2)
		}
		d := bezierAxisDeriv(t, c.X1, c.X2)
		if math.Abs(d) < 1e-6 {
			break
		}
		t -= err / d
	}

	lo, hi := 0.0, 1.0
	t = x
	for i := 0; i < 32; i++ {
		v := bezierAxis(t, c.X1, c.X2)
		if math.Abs(v-x) < 1e-7 {
			break
		}
		if v < x {
			lo = t
		} else {
			hi = t
		}
		t = (lo + hi) / 2
	}
	return bezierAxis(t, c.Y1, c.Y2)
}
