// Package pointer holds the last observed pointer position.
//
// State is a plain value handed to each per-tick Advance call. Tracker is
// the single writer; it is fed by the event loop and read on the same
// goroutine, so no locking is needed.
package pointer

// State is a snapshot of the pointer for one redraw tick
// Zero value is the origin with the pointer outside the surface
type State struct {
	X, Y   float64
	Inside bool
	// Moved is true once any move notification has been observed
	Moved bool
}

// Tracker records pointer notifications between ticks
type Tracker struct {
	state State
}

// NewTracker returns a tracker at the origin
func NewTracker() *Tracker {
	return &Tracker{}
}

// OnMove records a pointer move in surface coordinates
// A move implies the pointer is inside the surface
func (t *Tracker) OnMove(x, y float64) {
	t.state.X = x
	t.state.Y = y
	t.state.Inside = true
	t.state.Moved = true
}

// OnEnter marks the pointer as inside without changing position
func (t *Tracker) OnEnter() {
	t.state.Inside = true
}

// OnLeave marks the pointer as outside; last position is kept
func (t *Tracker) OnLeave() {
	t.state.Inside = false
}

// State returns a copy for the current tick
func (t *Tracker) State() State {
	return t.state
}
