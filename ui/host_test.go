package ui

import (
	"image"
	"testing"

	"gioui.org/font/gofont"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/widget/material"
	"github.com/esimov/splitview"
	"github.com/esimov/splitview/geom"
	"github.com/stretchr/testify/assert"
)

func newContext(w, h int) C {
	return layout.Context{
		Ops:         new(op.Ops),
		Constraints: layout.Exact(image.Pt(w, h)),
	}
}

// rowsLayout builds two stacked panes recording the rectangle they get.
func rowsLayout(t *testing.T, h *Host, rects map[string]image.Rectangle) *splitview.Layout {
	t.Helper()

	rows := splitview.NewSplitter(splitview.Vertical, "Rows")
	for _, label := range []string{"top", "bottom"} {
		label := label
		pane := splitview.NewWindow(func() {
			rects[label] = h.PaneRect()
			h.Pane(func(gtx C) D { return D{Size: gtx.Constraints.Max} })
		}, label)
		assert.NoError(t, rows.AddVerticalChild(pane))
	}
	tree, err := splitview.NewTree(rows)
	assert.NoError(t, err)
	l, err := splitview.NewLayout(tree, splitview.DefaultConfig(), nil)
	assert.NoError(t, err)
	return l
}

func TestHost_FramePlacesPanes(t *testing.T) {
	assert := assert.New(t)

	h := NewHost(material.NewTheme(gofont.Collection()))
	rects := map[string]image.Rectangle{}
	l := rowsLayout(t, h, rects)

	gtx := newContext(800, 600)
	dims := h.Frame(gtx, l)
	assert.Equal(image.Pt(800, 600), dims.Size)
	assert.Equal(geom.R(0, 0, 800, 600), h.WorkArea())
	assert.Equal(image.Rect(0, 0, 800, 300), rects["top"])
	assert.Equal(image.Rect(0, 300, 800, 600), rects["bottom"])
	assert.Equal(splitview.Idle, l.State())
}

func TestHost_DragResizesPanes(t *testing.T) {
	assert := assert.New(t)

	h := NewHost(material.NewTheme(gofont.Collection()))
	rects := map[string]image.Rectangle{}
	l := rowsLayout(t, h, rects)

	h.Tracker().Handle(ev(pointer.Move, 400, 302, 0))
	h.Frame(newContext(800, 600), l)
	assert.Equal(splitview.Hovering, l.State())
	assert.Equal(splitview.CursorResizeNS, h.cursor)

	h.Tracker().Handle(ev(pointer.Press, 400, 302, pointer.ButtonPrimary))
	h.Tracker().Handle(ev(pointer.Drag, 400, 402, pointer.ButtonPrimary))
	h.Frame(newContext(800, 600), l)

	assert.Equal(splitview.Dragging, l.State())
	assert.Equal(image.Rect(0, 0, 800, 400), rects["top"])
	assert.Equal(image.Rect(0, 400, 800, 600), rects["bottom"])
	assert.Equal(geom.Vec2{}, h.DragDelta())

	h.Tracker().Handle(ev(pointer.Release, 400, 402, 0))
	h.Tracker().Handle(ev(pointer.Move, 10, 10, 0))
	h.Frame(newContext(800, 600), l)
	assert.Equal(splitview.Idle, l.State())
}

func TestHost_PaneRounding(t *testing.T) {
	h := NewHost(material.NewTheme(gofont.Collection()))
	h.SetNextPanePos(geom.Pt(0.4, 10.6))
	h.SetNextPaneSize(geom.Pt(99.8, 20))
	assert.Equal(t, image.Rect(0, 11, 100, 31), h.PaneRect())
}

func TestHost_Cursor(t *testing.T) {
	assert.Equal(t, pointer.CursorRowResize, cursorFor(splitview.CursorResizeNS))
	assert.Equal(t, pointer.CursorColResize, cursorFor(splitview.CursorResizeEW))
	assert.Equal(t, pointer.CursorDefault, cursorFor(splitview.CursorDefault))
}

func TestHost_KeepsTheLastPanePass(t *testing.T) {
	assert := assert.New(t)

	h := NewHost(material.NewTheme(gofont.Collection()))
	h.gtx = newContext(100, 100)

	h.BeginPanes()
	h.EndPanes()
	assert.True(h.hasPanes)
	h.BeginPanes()
	assert.False(h.hasPanes, "a new pass drops the pending one")
	h.EndPanes()

	h.DrawLine(geom.Pt(0, 50), geom.Pt(100, 50), defaultBkgColor, 1)
	assert.False(h.hasPanes, "panes are drawn below the first divider")

	rects := map[string]image.Rectangle{}
	l := rowsLayout(t, h, rects)
	h.Tracker().Handle(ev(pointer.Move, 400, 302, 0))
	h.Frame(newContext(800, 600), l)
	h.Tracker().Handle(ev(pointer.Press, 400, 302, pointer.ButtonPrimary))
	h.Tracker().Handle(ev(pointer.Drag, 400, 402, pointer.ButtonPrimary))
	h.Frame(newContext(800, 600), l)
	assert.Equal(splitview.Dragging, l.State())
	assert.False(h.hasPanes)
	assert.Equal(image.Rect(0, 400, 800, 600), rects["bottom"])
}
