package vmath

import "math"

// TraverseF visits every grid cell crossed by the segment (x1,y1)-(x2,y2)
// Coordinates are in cell units; Supercover DDA so diagonal corners are not skipped
// Callback returning false stops the walk
func TraverseF(x1, y1, x2, y2 float64, callback func(x, y int) bool) {
	ix, iy := int(math.Floor(x1)), int(math.Floor(y1))
	targetX, targetY := int(math.Floor(x2)), int(math.Floor(y2))

	if !callback(ix, iy) {
		return
	}
	if ix == targetX && iy == targetY {
		return
	}

	dx := x2 - x1
	dy := y2 - y1

	stepX, stepY := 1, 1
	if dx < 0 {
		stepX = -1
		dx = -dx
	}
	if dy < 0 {
		stepY = -1
		dy = -dy
	}

	tMaxX, tMaxY := math.Inf(1), math.Inf(1)
	var tDeltaX, tDeltaY float64
	if dx != 0 {
		tDeltaX = 1 / dx
		fx := x1 - math.Floor(x1)
		if stepX > 0 {
			tMaxX = (1 - fx) * tDeltaX
		} else {
			tMaxX = fx * tDeltaX
		}
	}
	if dy != 0 {
		tDeltaY = 1 / dy
		fy := y1 - math.Floor(y1)
		if stepY > 0 {
			tMaxY = (1 - fy) * tDeltaY
		} else {
			tMaxY = fy * tDeltaY
		}
	}

	for ix != targetX || iy != targetY {
		switch {
		case tMaxX < tMaxY:
			if ix != targetX {
				ix += stepX
				tMaxX += tDeltaX
			} else {
				iy += stepY
				tMaxY += tDeltaY
			}
		case tMaxX > tMaxY:
			if iy != targetY {
				iy += stepY
				tMaxY += tDeltaY
			} else {
				ix += stepX
				tMaxX += tDeltaX
			}
		default:
			if ix != targetX {
				ix += stepX
				tMaxX += tDeltaX
			}
			if iy != targetY {
				iy += stepY
				tMaxY += tDeltaY
			}
		}

		if !callback(ix, iy) {
			return
		}
	}
}
