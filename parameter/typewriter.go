package parameter

import "time"

// Typewriter
const (
	// TypewriterSpeed is delay per typed rune; deletion runs at half
	TypewriterSpeed = 50 * time.Millisecond

	// TypewriterHold is the pause with the full text shown
	TypewriterHold = 2 * time.Second

	// TypewriterRestart is the pause with empty text before typing again
	TypewriterRestart = 500 * time.Millisecond

	// TypewriterCaret is appended to the visible text
	TypewriterCaret = '|'
)
