package render

import (
	"math"

	"github.com/lixenwraith/glimmer/vmath"
)

// Surface is the drawing sink consumed by effects
// Coordinates are surface units (virtual pixels), not cells
type Surface interface {
	// Size returns surface dimensions in surface units
	Size() (width, height float64)

	// Clear erases the previous frame
	Clear()

	// FillCircle draws a filled dot with a soft halo of glow units around it
	FillCircle(x, y, radius float64, color RGB, alpha, glow float64)

	// Line draws a 1-unit stroke between two points
	Line(x1, y1, x2, y2 float64, color RGB, alpha float64)
}

// Default virtual pixel size of a terminal cell, roughly matching a 2:1 glyph box
const (
	DefaultCellWidth  = 8.0
	DefaultCellHeight = 16.0
)

// dot glyphs by radius in cells, smallest first
var dotGlyphs = [...]rune{'·', '•', '●'}

// CellSurface rasterizes Surface calls onto a Buffer
type CellSurface struct {
	buf   *Buffer
	cellW float64
	cellH float64
}

// NewCellSurface wraps buf, mapping cellW x cellH surface units to one cell
func NewCellSurface(buf *Buffer, cellW, cellH float64) *CellSurface {
	if cellW <= 0 {
		cellW = DefaultCellWidth
	}
	if cellH <= 0 {
		cellH = DefaultCellHeight
	}
	return &CellSurface{buf: buf, cellW: cellW, cellH: cellH}
}

// Buffer returns the backing compositor
func (s *CellSurface) Buffer() *Buffer {
	return s.buf
}

// Size implements Surface
func (s *CellSurface) Size() (float64, float64) {
	w, h := s.buf.Bounds()
	return float64(w) * s.cellW, float64(h) * s.cellH
}

// ToCell converts surface units to a cell coordinate
func (s *CellSurface) ToCell(x, y float64) (int, int) {
	return int(math.Floor(x / s.cellW)), int(math.Floor(y / s.cellH))
}

// FromCell returns the surface-unit center of a cell
func (s *CellSurface) FromCell(cx, cy int) (float64, float64) {
	return (float64(cx) + 0.5) * s.cellW, (float64(cy) + 0.5) * s.cellH
}

// Clear implements Surface
func (s *CellSurface) Clear() {
	s.buf.Clear()
}

// FillCircle implements Surface
// Center cell receives a glyph scaled by radius; halo cells get additive background falloff
func (s *CellSurface) FillCircle(x, y, radius float64, color RGB, alpha, glow float64) {
	if alpha <= 0 {
		return
	}
	cx, cy := s.ToCell(x, y)

	if glow > 0 {
		reach := radius + glow
		minX, minY := s.ToCell(x-reach, y-reach)
		maxX, maxY := s.ToCell(x+reach, y+reach)
		for gy := minY; gy <= maxY; gy++ {
			for gx := minX; gx <= maxX; gx++ {
				px, py := s.FromCell(gx, gy)
				d := math.Hypot(px-x, py-y)
				if d > reach {
					continue
				}
				falloff := 1 - d/reach
				s.buf.Set(gx, gy, 0, RGB{}, color, BlendAddBg, alpha*falloff*falloff*0.5, AttrNone)
			}
		}
	}

	glyph := dotGlyphs[0]
	switch cells := radius / s.cellW; {
	case cells >= 0.75:
		glyph = dotGlyphs[2]
	case cells >= 0.35:
		glyph = dotGlyphs[1]
	}

	cell := s.buf.Get(cx, cy)
	fg := Blend(cell.Bg, Glow(color, 0.15), alpha)
	s.buf.Set(cx, cy, glyph, fg, RGB{}, BlendFgOnly, 1, AttrNone)
}

// Line implements Surface
// Cells crossed by the segment get their background tinted toward color
func (s *CellSurface) Line(x1, y1, x2, y2 float64, color RGB, alpha float64) {
	if alpha <= 0 {
		return
	}
	vmath.TraverseF(x1/s.cellW, y1/s.cellH, x2/s.cellW, y2/s.cellH, func(gx, gy int) bool {
		s.buf.Set(gx, gy, 0, RGB{}, color, BlendScreenBg, alpha, AttrNone)
		return true
	})
}
