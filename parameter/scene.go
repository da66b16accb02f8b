package parameter

// Scene Layout
const (
	// ScrollStep is surface units moved per wheel notch or arrow key
	ScrollStep = 48.0

	// SectionRows is the height of each content section in cells
	SectionRows = 9

	// ButtonLabel is the magnetic call-to-action under the tagline
	ButtonLabel = "[ say hello ]"

	// ButtonGapRows separates the tagline and the button
	ButtonGapRows = 2

	// GlareSpread is how many cells around the glare point get highlighted
	GlareSpread = 1

	// ScrollTopLabel is the back-to-top control drawn in the bottom right corner
	ScrollTopLabel = "[ ↑ ]"

	// ScrollTopMargin is the gap in cells between that control and the screen edge
	ScrollTopMargin = 2
)

// FloatGlyphs are the decorative elements drifting with the pointer
// Anchors are fractions of the viewport
var FloatGlyphs = []struct {
	Glyph  rune
	AX, AY float64
}{
	{'✦', 0.15, 0.25},
	{'◆', 0.82, 0.30},
	{'●', 0.25, 0.72},
	{'✧', 0.70, 0.78},
}
