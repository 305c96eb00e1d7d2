package splitview

import "github.com/esimov/splitview/geom"

// Placer receives the rectangle of a window node right before its
// PaneFunc runs.
type Placer interface {
	SetNextPanePos(pos geom.Vec2)
	SetNextPaneSize(size geom.Vec2)
}

// Resize assigns r to the node and lays out its subtree
// (ResizeNodeAndChildren). Window nodes announce their rectangle to p and
// run their PaneFunc. p may be nil, in which case only the geometry is
// computed and no pane is invoked.
func (n *Node) Resize(p Placer, r geom.Rect) {
	n.domain = r
	if !n.IsEffectivelyVisible() {
		return
	}

	switch b := n.body.(type) {
	case *window:
		if p == nil {
			return
		}
		p.SetNextPanePos(r.Pos)
		p.SetNextPaneSize(r.Size)
		if b.fn != nil {
			b.fn()
		}
	case *split:
		b.equalizeIfVisibleCountChanged()

		idx := b.visible()
		if len(idx) == 0 {
			return
		}
		ratios := b.visibleRatios(idx)
		if geom.Sum(ratios) <= geom.Epsilon {
			ratios = geom.Equal(len(idx))
			for k, i := range idx {
				b.children[i].ratio = ratios[k]
			}
		}
		rects := geom.Partition(r, b.orient.Axis(), ratios)
		for k, i := range idx {
			b.children[i].node.Resize(p, rects[k])
		}
	}
}

// EqualizeIfVisibleCountChanged resets the ratios to an equal split when
// the number of visible children differs from the one seen on the
// previous pass. It is a no-op on windows.
func (n *Node) EqualizeIfVisibleCountChanged() {
	if s, ok := n.body.(*split); ok {
		s.equalizeIfVisibleCountChanged()
	}
}

func (s *split) equalizeIfVisibleCountChanged() {
	idx := s.visible()
	count := len(idx)
	if !s.equalize {
		s.lastVisible = count
		return
	}
	if count == s.lastVisible {
		return
	}
	s.lastVisible = count
	if count == 0 {
		return
	}
	for i := range s.children {
		s.children[i].ratio = 0
	}
	eq := 1 / float32(count)
	for _, i := range idx {
		s.children[i].ratio = eq
	}
}
