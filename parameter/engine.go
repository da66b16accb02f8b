package parameter

import "time"

// Redraw Loop Timing
const (
	// FrameUpdateInterval is the redraw tick interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// FrameBudget is the soft per-tick deadline; overruns are logged, never enforced
	FrameBudget = 16 * time.Millisecond

	// EventQueueSize is the buffered capacity between the event poller and the redraw loop
	EventQueueSize = 256
)
