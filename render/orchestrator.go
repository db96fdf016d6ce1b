// Package render draws game snapshots into a tcell screen
package render

import (
	"slices"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gravity-eater/engine"
)

type layerEntry struct {
	layer    Layer
	priority Priority
}

// Orchestrator composites registered layers into a buffer and flushes it to the screen
type Orchestrator struct {
	screen tcell.Screen
	buffer *Buffer
	proj   Projection
	mode   ColorMode
	layers []layerEntry
}

// NewOrchestrator creates an orchestrator sized to the screen with the standard layers
func NewOrchestrator(screen tcell.Screen, mode ColorMode) *Orchestrator {
	w, h := screen.Size()
	o := &Orchestrator{
		screen: screen,
		buffer: NewBuffer(w, h),
		proj:   DefaultProjection(),
		mode:   mode,
	}
	o.Register(foodLayer{}, PriorityFood)
	o.Register(hazardLayer{}, PriorityHazard)
	o.Register(playerLayer{}, PriorityPlayer)
	o.Register(hudLayer{}, PriorityHUD)
	o.Register(bannerLayer{}, PriorityBanner)
	return o
}

// Register adds a layer; equal priorities keep registration order
func (o *Orchestrator) Register(l Layer, p Priority) {
	o.layers = append(o.layers, layerEntry{layer: l, priority: p})
	slices.SortStableFunc(o.layers, func(a, b layerEntry) int {
		return int(a.priority) - int(b.priority)
	})
}

// Resize matches the buffer to new screen dimensions in cells
func (o *Orchestrator) Resize(width, height int) {
	o.buffer.Resize(width, height)
	o.screen.Sync()
}

// Projection returns the cell mapping used for drawing and mouse input
func (o *Orchestrator) Projection() Projection {
	return o.proj
}

// LogicalSize returns the viewport matching the current buffer
func (o *Orchestrator) LogicalSize() (float64, float64) {
	w, h := o.buffer.Size()
	return o.proj.LogicalSize(w, h)
}

// Buffer exposes the composited frame
func (o *Orchestrator) Buffer() *Buffer {
	return o.buffer
}

// RenderFrame draws snap and shows it
func (o *Orchestrator) RenderFrame(snap *engine.Snapshot) {
	o.buffer.Clear()
	for _, e := range o.layers {
		e.layer.Render(snap, o.buffer, o.proj)
	}
	o.buffer.Flush(o.screen, o.mode)
	o.screen.Show()
}
