package particle

import (
	"math"

	"github.com/lixenwraith/glimmer/parameter"
)

// Edge is a connection between two particles by index, I < J
type Edge struct {
	I, J    int
	Opacity float64
}

// ConnectionOpacity maps pair distance to edge opacity: (80-d)/80 * 0.3
// Returns 0 at or beyond the connection distance
func ConnectionOpacity(d float64) float64 {
	if d >= parameter.ConnectionDistance {
		return 0
	}
	if d < 0 {
		d = 0
	}
	return (parameter.ConnectionDistance - d) / parameter.ConnectionDistance * parameter.ConnectionMaxOpacity
}

// Connections visits every unordered pair once and collects those closer than the connection distance
// dst is reused to avoid per-frame allocation
func (f *Field) Connections(dst []Edge) []Edge {
	dst = dst[:0]
	ps := f.particles
	for i := 0; i < len(ps); i++ {
		for j := i + 1; j < len(ps); j++ {
			dx := ps[i].X - ps[j].X
			dy := ps[i].Y - ps[j].Y
			d := math.Sqrt(dx*dx + dy*dy)
			if d < parameter.ConnectionDistance {
				dst = append(dst, Edge{I: i, J: j, Opacity: ConnectionOpacity(d)})
			}
		}
	}
	return dst
}
