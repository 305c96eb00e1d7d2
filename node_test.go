package splitview

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// windows returns n window nodes with empty panes.
func windows(labels ...string) []*Node {
	out := make([]*Node, len(labels))
	for i, l := range labels {
		out[i] = NewWindow(func() {}, l)
	}
	return out
}

// newRow builds a splitter holding one window per label.
func newRow(o Orientation, label string, children ...string) *Node {
	n := NewSplitter(o, label)
	for _, c := range windows(children...) {
		if err := n.addChild(o, c); err != nil {
			panic(err)
		}
	}
	return n
}

func TestNode_Defaults(t *testing.T) {
	assert := assert.New(t)

	v := NewSplitter(Vertical, "")
	h := NewSplitter(Horizontal, "")
	w := NewWindow(nil, "")

	assert.Equal("Vertical", v.Label())
	assert.Equal("Horizontal", h.Label())
	assert.Equal("Window", w.Label())

	assert.True(v.IsVerticalSplitter())
	assert.False(v.IsHorizontalSplitter())
	assert.True(h.IsHorizontalSplitter())
	assert.True(w.IsWindowNode())
	assert.False(w.IsVerticalSplitter())

	o, ok := h.Orientation()
	assert.True(ok)
	assert.Equal(Horizontal, o)
	_, ok = w.Orientation()
	assert.False(ok)

	assert.True(w.Visible())
	assert.Equal(float32(defaultMinRatio), v.MinRatio())
	assert.Equal(float32(0), w.MinRatio())
	assert.Equal(NodeID(0), v.ID())
	assert.Nil(w.Children())
	assert.Nil(w.Ratios())

	w.SetLabel("")
	assert.Equal("Window", w.Label())
	w.SetLabel("Console")
	assert.Equal("Console", w.Label())
}

func TestNode_AddChildErrors(t *testing.T) {
	assert := assert.New(t)

	h := NewSplitter(Horizontal, "Columns")
	w := NewWindow(nil, "Pane")

	err := h.AddVerticalChild(NewWindow(nil, ""))
	assert.True(errors.Is(err, ErrOrientation))

	err = w.AddHorizontalChild(NewWindow(nil, ""))
	assert.True(errors.Is(err, ErrWindowNode))

	err = h.AddHorizontalChild(nil)
	assert.True(errors.Is(err, ErrNilChild))

	assert.NoError(h.AddHorizontalChild(w))
	assert.Equal(h, w.Parent())

	other := NewSplitter(Horizontal, "Other")
	err = other.AddHorizontalChild(w)
	assert.True(errors.Is(err, ErrAlreadyAttached))
	assert.Len(h.Children(), 1)
	assert.Empty(other.Children())
}

func TestNode_RejectsCycles(t *testing.T) {
	assert := assert.New(t)

	self := NewSplitter(Horizontal, "Self")
	err := self.AddHorizontalChild(self)
	assert.ErrorIs(err, ErrCycle)
	assert.Empty(self.Children())
	assert.Nil(self.Parent())

	a := NewSplitter(Vertical, "A")
	b := NewSplitter(Vertical, "B")
	assert.NoError(a.AddVerticalChild(b))
	err = b.AddVerticalChild(a)
	assert.ErrorIs(err, ErrCycle)
	assert.Nil(a.Parent())
	assert.Empty(b.Children())

	c := NewSplitter(Vertical, "C")
	assert.NoError(b.AddVerticalChild(c))
	err = c.SetVerticalChildren(a)
	assert.ErrorIs(err, ErrCycle)
	assert.Empty(c.Children())

	d := NewSplitter(Vertical, "D")
	err = d.SetVerticalChildren(d)
	assert.ErrorIs(err, ErrCycle)
	assert.Empty(d.Children())

	tree, err := NewTree(a)
	assert.NoError(err)
	assert.Equal(3, tree.Len())
}

func TestNode_RejectsDuplicateSlots(t *testing.T) {
	assert := assert.New(t)

	v := NewSplitter(Vertical, "Rows")
	ws := windows("Latitude", "Longitude")
	assert.NoError(v.SetVerticalChildren(ws[0]))

	err := v.SetVerticalChildren(ws[1], ws[1])
	assert.ErrorIs(err, ErrDuplicateChild)
	assert.Equal([]*Node{ws[0]}, v.Children())
	assert.Nil(ws[1].Parent())

	// Re-listing a current child once is fine.
	assert.NoError(v.SetVerticalChildren(ws[0], ws[1]))
	assert.Len(v.Children(), 2)
}

func TestNode_IncrementalAddIsUnbounded(t *testing.T) {
	v := NewSplitter(Vertical, "")
	for _, w := range windows("a", "b", "c", "d", "e") {
		assert.NoError(t, v.AddVerticalChild(w))
	}
	assert.Len(t, v.Children(), 5)
	assert.Len(t, v.Ratios(), 5)
}

func TestNode_FixedSlotSetters(t *testing.T) {
	assert := assert.New(t)

	v := NewSplitter(Vertical, "Rows")
	ws := windows("Latitude", "Longitude", "Altitude", "Extra")

	assert.NoError(v.SetVerticalChildren(ws[0], nil, ws[1]))
	assert.Equal([]*Node{ws[0], ws[1]}, v.Children())

	err := v.SetVerticalChildren(ws...)
	assert.True(errors.Is(err, ErrTooManyChildren))
	assert.Len(v.Children(), 2)

	// Replacing the slots releases the previous children.
	assert.NoError(v.SetVerticalChildren(ws[2]))
	assert.Nil(ws[0].Parent())
	assert.Equal(v, ws[2].Parent())

	err = v.SetHorizontalChildren(ws[3])
	assert.True(errors.Is(err, ErrOrientation))
}

func TestNode_EffectiveVisibility(t *testing.T) {
	assert := assert.New(t)

	empty := NewSplitter(Vertical, "")
	assert.False(empty.IsEffectivelyVisible())

	row := newRow(Horizontal, "Row", "a", "b")
	assert.True(row.IsEffectivelyVisible())
	assert.Equal(2, row.VisibleChildCount())

	kids := row.Children()
	kids[0].SetVisible(false)
	assert.True(row.IsEffectivelyVisible())
	assert.Equal(1, row.VisibleChildCount())

	kids[1].SetVisible(false)
	assert.True(row.Visible())
	assert.False(row.IsEffectivelyVisible())

	kids[0].SetVisible(true)
	row.SetVisible(false)
	assert.False(row.IsEffectivelyVisible())
	assert.Equal(0, NewWindow(nil, "").VisibleChildCount())
}

func TestNode_SetSubtreeVisible(t *testing.T) {
	assert := assert.New(t)

	inner := newRow(Vertical, "Inner", "x", "y")
	outer := NewSplitter(Horizontal, "Outer")
	assert.NoError(outer.AddHorizontalChild(inner))
	assert.NoError(outer.AddHorizontalChild(NewWindow(nil, "z")))

	outer.SetSubtreeVisible(false)
	assert.False(outer.Visible())
	assert.False(inner.Visible())
	// Only the direct children are touched.
	for _, c := range inner.Children() {
		assert.True(c.Visible())
	}

	w := NewWindow(nil, "")
	w.SetSubtreeVisible(false)
	assert.True(w.Visible())
}

func TestNode_SetRatios(t *testing.T) {
	assert := assert.New(t)

	row := newRow(Horizontal, "", "a", "b", "c")
	assert.Error(row.SetRatios(0.5, 0.5))
	assert.NoError(row.SetRatios(0.2, 0.3, 0.5))
	assert.Equal([]float32{0.2, 0.3, 0.5}, row.Ratios())

	err := NewWindow(nil, "").SetRatios(1)
	assert.True(errors.Is(err, ErrWindowNode))
}

func TestNode_OrientationString(t *testing.T) {
	assert.Equal(t, "Vertical", Vertical.String())
	assert.Equal(t, "Horizontal", Horizontal.String())
	assert.Panics(t, func() { _ = Orientation(7).String() })
}
