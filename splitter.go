package splitview

import (
	"github.com/esimov/splitview/geom"
	"github.com/esimov/splitview/utils"
)

// DefaultHitPadding is the half width, in pixels, of the band around a
// divider which reacts to the pointer.
const DefaultHitPadding = 8

// HoveredSplitter looks for a divider whose band of ±pad pixels contains
// pos (FindHoveredSplitter). The boundary index k denotes the gap between
// the k-th and the (k+1)-th visible child. A splitter tests its own
// dividers before descending, and the first match in traversal order wins.
func (n *Node) HoveredSplitter(pos geom.Vec2, pad float32) (*Node, int, bool) {
	if !n.IsEffectivelyVisible() {
		return nil, -1, false
	}
	s, ok := n.body.(*split)
	if !ok {
		return nil, -1, false
	}

	if idx := s.visible(); len(idx) >= 2 {
		axis := s.orient.Axis()
		crossStart, crossExtent := n.domain.Span(axis.Cross())
		cross := pos.Along(axis.Cross())
		if cross >= crossStart && cross <= crossStart+crossExtent {
			along := pos.Along(axis)
			for k, at := range geom.Boundaries(n.domain, axis, s.visibleRatios(idx)) {
				if along >= at-pad && along <= at+pad {
					return n, k, true
				}
			}
		}
	}

	for _, c := range s.children {
		if found, k, ok := c.node.HoveredSplitter(pos, pad); ok {
			return found, k, true
		}
	}
	return nil, -1, false
}

// DragSplitter moves the divider at boundary by delta pixels
// (HandleSplitterDragAt). Only the two visible children around the divider
// change: the mass they share is kept, so every other visible child keeps
// its size. Neither side shrinks below the node's minimum ratio.
// It reports whether the ratios were changed.
func (n *Node) DragSplitter(boundary int, delta geom.Vec2) bool {
	if boundary < 0 || !n.IsEffectivelyVisible() {
		return false
	}
	s, ok := n.body.(*split)
	if !ok {
		return false
	}

	idx := s.visible()
	if len(idx) < 2 || boundary >= len(idx)-1 {
		return false
	}

	axis := s.orient.Axis()
	_, total := n.domain.Span(axis)
	if total <= geom.Epsilon {
		return false
	}
	dr := delta.Along(axis) / total
	if dr == 0 {
		return false
	}

	a, b := &s.children[idx[boundary]], &s.children[idx[boundary+1]]
	sumVis := geom.SafeSum(s.visibleRatios(idx))

	ra := a.ratio / sumVis
	rb := b.ratio / sumVis

	minr := s.minRatio
	newA := utils.Max(minr, geom.Clamp01(ra+dr))
	newB := utils.Max(minr, geom.Clamp01(rb-dr))

	// One side hit its floor and took more than the pair owns: give the
	// excess back from the side which grew.
	if pair := ra + rb; newA+newB > pair {
		excess := newA + newB - pair
		if dr > 0 {
			newA -= excess
		} else {
			newB -= excess
		}
		newA = utils.Max(minr, newA)
		newB = utils.Max(minr, newB)
	}

	// Rescale the pair into the raw ratio space so the others are untouched.
	norm := newA + newB
	if norm <= geom.Epsilon {
		return false
	}
	pairMass := a.ratio + b.ratio
	if pairMass <= geom.Epsilon {
		pairMass = norm
	}
	scale := pairMass / norm
	a.ratio = newA * scale
	b.ratio = newB * scale
	return true
}
