package render

// BlendMode selects how a write composes with the cell below (Flags | Op)
type BlendMode uint8

const (
	opReplace uint8 = 0x00
	opAlpha   uint8 = 0x01
	opAdd     uint8 = 0x02
	opScreen  uint8 = 0x04
)

const (
	flagBg uint8 = 0x10
	flagFg uint8 = 0x20
)

const (
	BlendReplace = BlendMode(opReplace | flagBg | flagFg)
	BlendFgOnly  = BlendMode(opReplace | flagFg) // glyph over an existing glow

	BlendAlphaBg  = BlendMode(opAlpha | flagBg)  // navbar backdrop and section glow
	BlendScreenBg = BlendMode(opScreen | flagBg) // connection lines
	BlendAddBg    = BlendMode(opAdd | flagBg)    // glow halo accumulation
)
