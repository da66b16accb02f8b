package render

import "github.com/gdamore/tcell/v2"

// TcellToRGB converts tcell.Color to RGB
// Treats ColorDefault as the standard background color
func TcellToRGB(c tcell.Color) RGB {
	if c == tcell.ColorDefault {
		return RgbBackground
	}
	r, g, b := c.RGB()
	return RGB{uint8(r), uint8(g), uint8(b)}
}

// RGBToTcell converts RGB to tcell.Color
func RGBToTcell(rgb RGB) tcell.Color {
	return tcell.NewRGBColor(int32(rgb.R), int32(rgb.G), int32(rgb.B))
}

// CellStyle builds the tcell style for a composited cell
func CellStyle(c Cell) tcell.Style {
	style := tcell.StyleDefault.Foreground(RGBToTcell(c.Fg)).Background(RGBToTcell(c.Bg))
	if c.Attrs&AttrBold != 0 {
		style = style.Bold(true)
	}
	if c.Attrs&AttrDim != 0 {
		style = style.Dim(true)
	}
	return style
}

// FlushToScreen finalizes the buffer and copies every cell to the tcell screen
// Caller is responsible for screen.Show()
func (b *Buffer) FlushToScreen(screen tcell.Screen) {
	b.Finalize()
	for y := 0; y < b.height; y++ {
		row := y * b.width
		for x := 0; x < b.width; x++ {
			c := b.cells[row+x]
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			screen.SetContent(x, y, r, nil, CellStyle(c))
		}
	}
}
