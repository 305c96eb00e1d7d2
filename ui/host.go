// Package ui runs a splitview layout inside a Gio window.
package ui

import (
	"image"
	"image/color"
	"math"

	"gioui.org/f32"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/widget/material"
	"github.com/esimov/splitview"
	"github.com/esimov/splitview/geom"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

var defaultBkgColor = color.NRGBA{R: 0x1e, G: 0x1e, B: 0x22, A: 0xff}

// Host implements splitview.Host on top of a Gio frame. Call Frame once
// per system.FrameEvent.
type Host struct {
	Theme      *material.Theme
	Background color.NRGBA

	gtx     C
	tracker *Tracker
	cursor  splitview.Cursor
	pos     geom.Vec2
	next    image.Rectangle

	panel     *PanelView
	panelCall op.CallOp
	hasPanel  bool

	// Only the last layout pass of a frame is kept.
	paneMacro op.MacroOp
	paneCall  op.CallOp
	hasPanes  bool
}

var (
	_ splitview.Host         = (*Host)(nil)
	_ splitview.PaneRecorder = (*Host)(nil)
)

// NewHost returns a host drawing its widgets with th.
func NewHost(th *material.Theme) *Host {
	return &Host{
		Theme:      th,
		Background: defaultBkgColor,
		tracker:    NewTracker(),
		panel:      NewPanelView(th),
	}
}

// Tracker returns the pointer tracker of the host.
func (h *Host) Tracker() *Tracker { return h.tracker }

// Frame runs one pass of l over the whole area of gtx.
func (h *Host) Frame(gtx C, l *splitview.Layout) D {
	for _, ev := range gtx.Events(h.tracker) {
		if e, ok := ev.(pointer.Event); ok {
			h.tracker.Handle(e)
		}
	}

	h.gtx = gtx
	h.cursor = splitview.CursorDefault
	h.hasPanel = false
	h.hasPanes = false

	paint.Fill(gtx.Ops, h.Background)
	l.UpdateAndRender(h)
	h.flushPanes()

	// The control panel goes over the panes and the dividers.
	if h.hasPanel {
		h.panelCall.Add(gtx.Ops)
	}

	defer clip.Rect{Max: gtx.Constraints.Max}.Push(gtx.Ops).Pop()
	pass := pointer.PassOp{}.Push(gtx.Ops)
	h.tracker.Add(gtx.Ops)
	cursorFor(h.cursor).Add(gtx.Ops)
	pass.Pop()

	return D{Size: gtx.Constraints.Max}
}

// WorkArea returns the whole frame.
func (h *Host) WorkArea() geom.Rect {
	size := h.gtx.Constraints.Max
	return geom.R(0, 0, float32(size.X), float32(size.Y))
}

func (h *Host) Position() geom.Vec2  { return h.tracker.Position() }
func (h *Host) Dragging() bool       { return h.tracker.Dragging() }
func (h *Host) DragDelta() geom.Vec2 { return h.tracker.DragDelta() }
func (h *Host) ResetDragDelta()      { h.tracker.ResetDragDelta() }

// SetCursor requests the pointer shape for the rest of the frame.
func (h *Host) SetCursor(c splitview.Cursor) {
	h.cursor = c
}

// SetNextPanePos sets the top-left corner of the next pane.
func (h *Host) SetNextPanePos(pos geom.Vec2) {
	h.pos = pos
	h.next = image.Rectangle{Min: image.Pt(round(pos.X), round(pos.Y))}
}

// SetNextPaneSize sets the size of the next pane. Both corners are
// rounded, so adjacent panes share their edges.
func (h *Host) SetNextPaneSize(size geom.Vec2) {
	m := h.pos.Add(size)
	h.next.Max = image.Pt(round(m.X), round(m.Y))
}

// PaneRect returns the rectangle announced for the next pane.
func (h *Host) PaneRect() image.Rectangle { return h.next }

// Pane lays w out inside the rectangle announced for the next pane,
// with exact constraints and its drawing clipped to the pane.
func (h *Host) Pane(w layout.Widget) {
	r := h.next
	if r.Empty() {
		return
	}
	gtx := h.gtx
	gtx.Constraints = layout.Exact(r.Size())

	defer op.Offset(r.Min).Push(gtx.Ops).Pop()
	defer clip.Rect{Max: r.Size()}.Push(gtx.Ops).Pop()
	w(gtx)
}

// BeginPanes starts recording a layout pass. A pass recorded earlier in
// the same frame and not yet drawn is dropped.
func (h *Host) BeginPanes() {
	h.hasPanes = false
	h.paneMacro = op.Record(h.gtx.Ops)
}

// EndPanes stops recording the pass. It is drawn before the first divider
// or at the end of the frame.
func (h *Host) EndPanes() {
	h.paneCall = h.paneMacro.Stop()
	h.hasPanes = true
}

func (h *Host) flushPanes() {
	if h.hasPanes {
		h.paneCall.Add(h.gtx.Ops)
		h.hasPanes = false
	}
}

// DrawLine strokes a straight line over whatever was drawn so far.
func (h *Host) DrawLine(from, to geom.Vec2, col color.NRGBA, width float32) {
	h.flushPanes()
	if width <= 0 {
		return
	}
	var p clip.Path
	p.Begin(h.gtx.Ops)
	p.MoveTo(f32.Pt(from.X, from.Y))
	p.LineTo(f32.Pt(to.X, to.Y))
	paint.FillShape(h.gtx.Ops, col, clip.Stroke{
		Path:  p.End(),
		Width: width,
	}.Op())
}

// ControlPanel records the panel widgets; they are replayed at the end
// of the frame so they stay on top.
func (h *Host) ControlPanel(p *splitview.Panel) {
	gtx := h.gtx
	gtx.Constraints.Min = image.Point{}

	macro := op.Record(gtx.Ops)
	h.panel.Layout(gtx, p)
	h.panelCall = macro.Stop()
	h.hasPanel = true
}

func cursorFor(c splitview.Cursor) pointer.Cursor {
	switch c {
	case splitview.CursorResizeNS:
		return pointer.CursorRowResize
	case splitview.CursorResizeEW:
		return pointer.CursorColResize
	default:
		return pointer.CursorDefault
	}
}

func round(v float32) int {
	return int(math.Round(float64(v)))
}
