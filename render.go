package splitview

import (
	"image/color"

	"github.com/esimov/splitview/geom"
)

// Surface draws on an overlay which sits above the pane content.
type Surface interface {
	DrawLine(from, to geom.Vec2, col color.NRGBA, width float32)
}

// Render draws the divider lines between consecutive visible children of
// every splitter in the subtree (RenderNodeAndChildren). Windows draw
// nothing here: their content is produced during Resize.
func (n *Node) Render(s Surface, col color.NRGBA) {
	if !n.IsEffectivelyVisible() {
		return
	}
	sp, ok := n.body.(*split)
	if !ok {
		return
	}

	idx := sp.visible()
	if len(idx) >= 2 {
		axis := sp.orient.Axis()
		for _, at := range geom.Boundaries(n.domain, axis, sp.visibleRatios(idx)) {
			from, to := dividerLine(n.domain, axis, at)
			s.DrawLine(from, to, col, sp.thickness)
		}
	}
	for _, c := range sp.children {
		c.node.Render(s, col)
	}
}

// dividerLine returns the end points of a line crossing r at coordinate
// at on axis a.
func dividerLine(r geom.Rect, a geom.Axis, at float32) (geom.Vec2, geom.Vec2) {
	m := r.Max()
	if a == geom.AxisY {
		return geom.Pt(r.Pos.X, at), geom.Pt(m.X, at)
	}
	return geom.Pt(at, r.Pos.Y), geom.Pt(at, m.Y)
}
