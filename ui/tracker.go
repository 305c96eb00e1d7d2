package ui

import (
	"gioui.org/io/pointer"
	"gioui.org/op"
	"github.com/esimov/splitview/geom"
	"github.com/esimov/splitview/utils"
)

// DefaultDragThreshold is the distance, in pixels, the pointer has to travel
// with the primary button held before a press turns into a drag.
const DefaultDragThreshold = 6

// Tracker turns Gio pointer events into the polled mouse state the layout
// expects: the current position, whether the primary button is dragging and
// the distance covered since the press (or since the last reset).
type Tracker struct {
	Threshold float32

	pos      geom.Vec2
	origin   geom.Vec2
	pressed  bool
	dragging bool
}

// NewTracker returns a tracker using DefaultDragThreshold.
func NewTracker() *Tracker {
	return &Tracker{Threshold: DefaultDragThreshold}
}

// Add registers the tracker for the pointer events of the current clip area.
func (t *Tracker) Add(ops *op.Ops) {
	pointer.InputOp{
		Tag:   t,
		Types: pointer.Press | pointer.Drag | pointer.Release | pointer.Move | pointer.Cancel,
	}.Add(ops)
}

// Handle updates the state with a single event.
func (t *Tracker) Handle(e pointer.Event) {
	if e.Type == pointer.Cancel {
		t.pressed, t.dragging = false, false
		return
	}
	t.pos = geom.Pt(e.Position.X, e.Position.Y)

	switch e.Type {
	case pointer.Press:
		if e.Buttons.Contain(pointer.ButtonPrimary) && !t.pressed {
			t.pressed = true
			t.origin = t.pos
		}
	case pointer.Drag:
		if t.pressed && !t.dragging {
			d := t.pos.Sub(t.origin)
			if utils.Abs(d.X) >= t.Threshold || utils.Abs(d.Y) >= t.Threshold {
				t.dragging = true
			}
		}
	case pointer.Release:
		if !e.Buttons.Contain(pointer.ButtonPrimary) {
			t.pressed, t.dragging = false, false
		}
	}
}

// Position returns the last known pointer position.
func (t *Tracker) Position() geom.Vec2 { return t.pos }

// Dragging reports whether the primary button is held and the pointer
// moved past the threshold.
func (t *Tracker) Dragging() bool { return t.dragging }

// DragDelta returns the distance covered since the press or the last
// ResetDragDelta. It is zero while not dragging.
func (t *Tracker) DragDelta() geom.Vec2 {
	if !t.dragging {
		return geom.Vec2{}
	}
	return t.pos.Sub(t.origin)
}

// ResetDragDelta moves the drag origin to the current position.
func (t *Tracker) ResetDragDelta() {
	t.origin = t.pos
}
