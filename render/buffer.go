package render

import (
	"github.com/mattn/go-runewidth"
)

// Buffer is a cell compositor with touched tracking
// Untouched cells receive the default background on Finalize
type Buffer struct {
	cells      []Cell
	touched    []bool
	width      int
	height     int
	background RGB
}

// NewBuffer creates a buffer with the specified dimensions
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{background: RgbBackground}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *Buffer) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
		b.touched = make([]bool, size)
	} else {
		b.cells = b.cells[:size]
		b.touched = b.touched[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// SetBackground changes the color applied to untouched cells
func (b *Buffer) SetBackground(bg RGB) {
	b.background = bg
}

// Clear resets all cells to empty using exponential copy
func (b *Buffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Fg: b.background, Bg: b.background}
	b.touched[0] = false
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
	for filled := 1; filled < len(b.touched); filled *= 2 {
		copy(b.touched[filled:], b.touched[:filled])
	}
}

// Bounds returns buffer dimensions in cells
func (b *Buffer) Bounds() (int, int) {
	return b.width, b.height
}

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at (x, y), zero Cell when out of bounds
func (b *Buffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// ===== COMPOSITOR API =====

// Set composites a cell with specified blend mode
func (b *Buffer) Set(x, y int, mainRune rune, fg, bg RGB, mode BlendMode, alpha float64, attrs Attr) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	dst := &b.cells[idx]

	op := uint8(mode) & 0x0F
	flags := uint8(mode) & 0xF0

	if mainRune != 0 {
		dst.Rune = mainRune
		dst.Attrs = attrs
	}

	if flags&flagBg != 0 {
		dst.Bg = compose(op, dst.Bg, bg, alpha)
		b.touched[idx] = true
	}

	if flags&flagFg != 0 {
		dst.Fg = compose(op, dst.Fg, fg, alpha)
	}
}

func compose(op uint8, dst, src RGB, alpha float64) RGB {
	switch op {
	case opAlpha:
		return Blend(dst, src, alpha)
	case opAdd:
		return Add(dst, src, alpha)
	case opScreen:
		return Screen(dst, src, alpha)
	default:
		return src
	}
}

// SetFgOnly writes rune, foreground, and attrs while preserving existing background
func (b *Buffer) SetFgOnly(x, y int, r rune, fg RGB, attrs Attr) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	dst.Rune = r
	dst.Fg = fg
	dst.Attrs = attrs
}

// Text writes a string starting at (x, y), advancing by display width
// Returns the number of columns consumed
func (b *Buffer) Text(x, y int, s string, fg RGB, attrs Attr) int {
	col := x
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		b.SetFgOnly(col, y, r, fg, attrs)
		// Wide runes occupy a trailing cell that must stay blank
		for i := 1; i < w; i++ {
			b.SetFgOnly(col+i, y, ' ', fg, attrs)
		}
		col += w
	}
	return col - x
}

// ===== OUTPUT =====

// Finalize sets default background to untouched cells before flush
func (b *Buffer) Finalize() {
	for i := range b.cells {
		if !b.touched[i] {
			b.cells[i].Bg = b.background
		}
	}
}

// Cells exposes the row-major cell slice: cells[y*width + x]
func (b *Buffer) Cells() []Cell {
	return b.cells
}
