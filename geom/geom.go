// Package geom holds the plain geometry used by the layout tree:
// points, axis aligned rectangles and the ratio arithmetic which
// turns split ratios into pixel extents.
package geom

import "fmt"

// Vec2 is a point or a size in window pixels.
type Vec2 struct {
	X, Y float32
}

// Pt is shorthand for Vec2{X: x, Y: y}.
func Pt(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v+u.
func (v Vec2) Add(u Vec2) Vec2 {
	return Vec2{X: v.X + u.X, Y: v.Y + u.Y}
}

// Sub returns v-u.
func (v Vec2) Sub(u Vec2) Vec2 {
	return Vec2{X: v.X - u.X, Y: v.Y - u.Y}
}

// Along returns the component of v on axis a.
func (v Vec2) Along(a Axis) float32 {
	if a == AxisY {
		return v.Y
	}
	return v.X
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%.1f,%.1f)", v.X, v.Y)
}

// Axis selects one of the two screen axes.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
)

// Cross returns the other axis.
func (a Axis) Cross() Axis {
	if a == AxisX {
		return AxisY
	}
	return AxisX
}

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	default:
		panic("invalid Axis")
	}
}

// Rect is an axis aligned rectangle given by its top-left corner and size.
type Rect struct {
	Pos  Vec2
	Size Vec2
}

// R builds a Rect from its top-left corner and size.
func R(x, y, w, h float32) Rect {
	return Rect{Pos: Pt(x, y), Size: Pt(w, h)}
}

// Max returns the bottom-right corner.
func (r Rect) Max() Vec2 {
	return r.Pos.Add(r.Size)
}

// Span returns the start coordinate and the extent of r along axis a.
func (r Rect) Span(a Axis) (start, extent float32) {
	return r.Pos.Along(a), r.Size.Along(a)
}

// Slice returns the part of r which starts at offset and spans extent
// along axis a, keeping the full cross axis span.
func (r Rect) Slice(a Axis, offset, extent float32) Rect {
	if a == AxisY {
		return Rect{Pos: Pt(r.Pos.X, offset), Size: Pt(r.Size.X, extent)}
	}
	return Rect{Pos: Pt(offset, r.Pos.Y), Size: Pt(extent, r.Size.Y)}
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Vec2) bool {
	m := r.Max()
	return p.X >= r.Pos.X && p.X <= m.X && p.Y >= r.Pos.Y && p.Y <= m.Y
}

func (r Rect) String() string {
	return fmt.Sprintf("%v+%v", r.Pos, r.Size)
}
