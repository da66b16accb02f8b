// Package typewriter types a line out, holds it, deletes it, and repeats.
package typewriter

import (
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/glimmer/parameter"
)

// maxCatchUp bounds steps replayed in one Advance after a long stall
const maxCatchUp = 1024

// Writer is the typewriter state machine, driven by an external clock
type Writer struct {
	text     []rune
	speed    time.Duration
	index    int
	deleting bool

	started bool
	nextAt  time.Duration
}

// New creates a writer for text; speed <= 0 uses the default
func New(text string, speed time.Duration) *Writer {
	if speed <= 0 {
		speed = parameter.TypewriterSpeed
	}
	if speed < 2*time.Millisecond {
		speed = 2 * time.Millisecond
	}
	return &Writer{
		text:  []rune(text),
		speed: speed,
	}
}

// Step applies one transition and returns the visible text with the delay before the next one
func (w *Writer) Step() (string, time.Duration) {
	var next time.Duration
	switch {
	case !w.deleting && w.index < len(w.text):
		w.index++
		next = w.speed
	case w.deleting && w.index > 0:
		w.index--
		next = w.speed / 2
	case !w.deleting:
		w.deleting = true
		next = parameter.TypewriterHold
	default:
		w.deleting = false
		next = parameter.TypewriterRestart
	}
	return w.Visible(), next
}

// Advance replays every step due at or before now
// The first call anchors the schedule at now
func (w *Writer) Advance(now time.Duration) {
	if !w.started {
		w.started = true
		w.nextAt = now
	}
	for i := 0; now >= w.nextAt; i++ {
		if i == maxCatchUp {
			w.nextAt = now
			break
		}
		_, next := w.Step()
		w.nextAt += next
	}
}

// SetText replaces the text and restarts typing from empty
func (w *Writer) SetText(text string) {
	w.text = []rune(text)
	w.index = 0
	w.deleting = false
}

// Visible returns the currently typed prefix
func (w *Writer) Visible() string {
	return string(w.text[:w.index])
}

// Display returns the visible prefix followed by the caret
func (w *Writer) Display() string {
	return w.Visible() + string(parameter.TypewriterCaret)
}

// Complete reports whether the full text is showing
func (w *Writer) Complete() bool {
	return len(w.text) > 0 && w.index == len(w.text)
}

// Deleting reports whether the writer is in the erase phase
func (w *Writer) Deleting() bool {
	return w.deleting
}

// Width returns the terminal display width of the full text plus caret
// Stable across the cycle so the line can be centered without jitter
func (w *Writer) Width() int {
	return runewidth.StringWidth(string(w.text)) + runewidth.RuneWidth(parameter.TypewriterCaret)
}

// CenterColumn returns the start column that centers the text in cols
func (w *Writer) CenterColumn(cols int) int {
	x := (cols - w.Width()) / 2
	if x < 0 {
		return 0
	}
	return x
}
