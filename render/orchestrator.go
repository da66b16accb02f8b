package render

import (
	"github.com/gdamore/tcell/v2"
)

type layerEntry struct {
	layer    Layer
	priority RenderPriority
	index    int // registration order for stable sort
}

// Orchestrator coordinates the render pipeline over one CellSurface
type Orchestrator struct {
	screen   tcell.Screen
	buffer   *Buffer
	surface  *CellSurface
	layers   []layerEntry
	regCount int
}

// NewOrchestrator creates an orchestrator sized to the screen
func NewOrchestrator(screen tcell.Screen, cellW, cellH float64) *Orchestrator {
	w, h := screen.Size()
	buf := NewBuffer(w, h)
	return &Orchestrator{
		screen:  screen,
		buffer:  buf,
		surface: NewCellSurface(buf, cellW, cellH),
		layers:  make([]layerEntry, 0, 8),
	}
}

// Surface returns the drawing surface layers render onto
func (o *Orchestrator) Surface() *CellSurface {
	return o.surface
}

// Register adds a layer at the specified priority. Maintains sorted order via insertion sort
func (o *Orchestrator) Register(l Layer, priority RenderPriority) {
	entry := layerEntry{
		layer:    l,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.layers)
	for i, e := range o.layers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.layers = append(o.layers, layerEntry{})
	copy(o.layers[pos+1:], o.layers[pos:])
	o.layers[pos] = entry
}

// Resize updates buffer dimensions and syncs terminal
func (o *Orchestrator) Resize(width, height int) {
	o.buffer.Resize(width, height)
	o.screen.Sync()
}

// RenderFrame executes the render pipeline: clear, render all, flush, show
func (o *Orchestrator) RenderFrame() {
	o.buffer.Clear()

	for _, entry := range o.layers {
		if vt, ok := entry.layer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		entry.layer.Render(o.surface)
	}

	o.buffer.FlushToScreen(o.screen)
	o.screen.Show()
}
