package splitview

import (
	"errors"
	"fmt"
	"io"

	"github.com/esimov/splitview/geom"
)

// MaxFixedChildren is the number of slots offered by the fixed slot
// setters SetVerticalChildren and SetHorizontalChildren.
const MaxFixedChildren = 3

const (
	defaultMinRatio         = 0.05
	defaultDividerThickness = 1
)

var (
	ErrNilRoot         = errors.New("root node must not be nil")
	ErrNilChild        = errors.New("child node must not be nil")
	ErrOrientation     = errors.New("child added through the wrong orientation")
	ErrTooManyChildren = errors.New("too many children for the fixed slot setter")
	ErrWindowNode      = errors.New("window nodes can't have children")
	ErrAlreadyAttached = errors.New("node already has an owner")
	ErrUnknownNode     = errors.New("unknown node")
	ErrCycle           = errors.New("node can't be its own descendant")
	ErrDuplicateChild  = errors.New("node listed more than once")
)

// Orientation tells how a splitter stacks its children.
type Orientation uint8

const (
	// Vertical splitters stack their children along the Y axis (rows).
	Vertical Orientation = iota
	// Horizontal splitters stack their children along the X axis (columns).
	Horizontal
)

// Axis returns the axis the children are stacked on.
func (o Orientation) Axis() geom.Axis {
	if o == Vertical {
		return geom.AxisY
	}
	return geom.AxisX
}

func (o Orientation) String() string {
	switch o {
	case Vertical:
		return "Vertical"
	case Horizontal:
		return "Horizontal"
	default:
		panic("invalid Orientation")
	}
}

// PaneFunc renders the content of a window node. It is told the pane
// rectangle only through the SetNextPanePos and SetNextPaneSize calls
// issued on the Placer right before it is invoked.
type PaneFunc func()

// NodeID identifies a node inside its Tree. The zero value is not a valid id.
type NodeID uint32

// body is either a *split or a *window.
type body interface {
	isBody()
}

type child struct {
	node  *Node
	ratio float32
}

type split struct {
	orient      Orientation
	children    []child
	minRatio    float32
	thickness   float32
	equalize    bool
	lastVisible int
}

type window struct {
	fn     PaneFunc
	closer io.Closer
}

func (*split) isBody()  {}
func (*window) isBody() {}

// Node is an element of the layout tree: either a splitter dividing its
// rectangle among its children, or a window hosting a PaneFunc.
type Node struct {
	id      NodeID
	owner   *Tree
	parent  *Node
	label   string
	visible bool
	domain  geom.Rect
	body    body
}

// NewSplitter creates an empty splitter node.
// An empty label is replaced by the orientation name.
func NewSplitter(o Orientation, label string) *Node {
	if label == "" {
		label = o.String()
	}
	return &Node{
		label:   label,
		visible: true,
		body: &split{
			orient:    o,
			minRatio:  defaultMinRatio,
			thickness: defaultDividerThickness,
			equalize:  true,
		},
	}
}

// NewWindow creates a window node hosting fn.
func NewWindow(fn PaneFunc, label string) *Node {
	if label == "" {
		label = "Window"
	}
	return &Node{
		label:   label,
		visible: true,
		body:    &window{fn: fn},
	}
}

// AddVerticalChild appends c to a vertical splitter.
func (n *Node) AddVerticalChild(c *Node) error {
	return n.addChild(Vertical, c)
}

// AddHorizontalChild appends c to a horizontal splitter.
func (n *Node) AddHorizontalChild(c *Node) error {
	return n.addChild(Horizontal, c)
}

func (n *Node) addChild(o Orientation, c *Node) error {
	s, err := n.splitFor(o)
	if err != nil {
		return err
	}
	if c == nil {
		return ErrNilChild
	}
	if c.parent != nil || (c.owner != nil && c.owner.root == c) {
		return fmt.Errorf("%w: %q", ErrAlreadyAttached, c.label)
	}
	if n.hasAncestor(c) {
		return fmt.Errorf("%w: %q under %q", ErrCycle, c.label, n.label)
	}
	c.parent = n
	s.children = append(s.children, child{node: c})
	s.lastVisible = 0
	n.structureChanged()
	return nil
}

// SetVerticalChildren replaces the children of a vertical splitter.
// Nil entries are skipped; at most MaxFixedChildren are accepted.
func (n *Node) SetVerticalChildren(children ...*Node) error {
	return n.setChildren(Vertical, children)
}

// SetHorizontalChildren replaces the children of a horizontal splitter.
// Nil entries are skipped; at most MaxFixedChildren are accepted.
func (n *Node) SetHorizontalChildren(children ...*Node) error {
	return n.setChildren(Horizontal, children)
}

func (n *Node) setChildren(o Orientation, nodes []*Node) error {
	s, err := n.splitFor(o)
	if err != nil {
		return err
	}
	list := make([]child, 0, len(nodes))
	seen := make(map[*Node]bool, len(nodes))
	for _, c := range nodes {
		if c == nil {
			continue
		}
		if seen[c] {
			return fmt.Errorf("%w: %q", ErrDuplicateChild, c.label)
		}
		seen[c] = true
		if (c.parent != nil && c.parent != n) || (c.owner != nil && c.owner.root == c) {
			return fmt.Errorf("%w: %q", ErrAlreadyAttached, c.label)
		}
		if n.hasAncestor(c) {
			return fmt.Errorf("%w: %q under %q", ErrCycle, c.label, n.label)
		}
		list = append(list, child{node: c})
	}
	if len(list) > MaxFixedChildren {
		return fmt.Errorf("%w: got %d, max %d", ErrTooManyChildren, len(list), MaxFixedChildren)
	}
	for _, c := range s.children {
		c.node.parent = nil
	}
	for _, c := range list {
		c.node.parent = n
	}
	s.children = list
	s.lastVisible = 0
	n.structureChanged()
	return nil
}

// hasAncestor reports whether a is n or one of its parents.
func (n *Node) hasAncestor(a *Node) bool {
	for p := n; p != nil; p = p.parent {
		if p == a {
			return true
		}
	}
	return false
}

// removeChild detaches c from n, dropping its ratio together with it.
func (n *Node) removeChild(c *Node) bool {
	s, ok := n.body.(*split)
	if !ok {
		return false
	}
	for i, ch := range s.children {
		if ch.node == c {
			s.children = append(s.children[:i], s.children[i+1:]...)
			c.parent = nil
			s.lastVisible = 0
			return true
		}
	}
	return false
}

func (n *Node) splitFor(o Orientation) (*split, error) {
	switch b := n.body.(type) {
	case *window:
		return nil, fmt.Errorf("%w: %q", ErrWindowNode, n.label)
	case *split:
		if b.orient != o {
			return nil, fmt.Errorf("%w: %q is %v, not %v", ErrOrientation, n.label, b.orient, o)
		}
		return b, nil
	}
	panic("unreachable")
}

// structureChanged lets the owning tree index new nodes and
// invalidate the handles it gave out.
func (n *Node) structureChanged() {
	if n.owner != nil {
		n.owner.reindex()
	}
}

// ID returns the handle of the node in its tree, or 0 when the node
// has not been attached to a tree yet.
func (n *Node) ID() NodeID { return n.id }

// Label returns the human readable node name.
func (n *Node) Label() string { return n.label }

// SetLabel renames the node. An empty label is ignored.
func (n *Node) SetLabel(label string) {
	if label != "" {
		n.label = label
	}
}

// SetVisible sets the node's own visibility flag.
func (n *Node) SetVisible(v bool) { n.visible = v }

// Visible returns the node's own visibility flag, regardless of its children.
func (n *Node) Visible() bool { return n.visible }

// IsEffectivelyVisible reports whether the node takes up space: its own
// flag is set and it is either a window or has at least one effectively
// visible child.
func (n *Node) IsEffectivelyVisible() bool {
	if !n.visible {
		return false
	}
	switch b := n.body.(type) {
	case *window:
		return true
	case *split:
		for _, c := range b.children {
			if c.node.IsEffectivelyVisible() {
				return true
			}
		}
	}
	return false
}

// SetSubtreeVisible sets the flag of a splitter and of its direct children.
// It does nothing on window nodes.
func (n *Node) SetSubtreeVisible(v bool) {
	s, ok := n.body.(*split)
	if !ok {
		return
	}
	n.visible = v
	for _, c := range s.children {
		c.node.SetVisible(v)
	}
}

// IsWindowNode reports whether n hosts a pane rather than splitting space.
func (n *Node) IsWindowNode() bool {
	_, ok := n.body.(*window)
	return ok
}

// IsVerticalSplitter reports whether n stacks its children along Y.
func (n *Node) IsVerticalSplitter() bool {
	s, ok := n.body.(*split)
	return ok && s.orient == Vertical
}

// IsHorizontalSplitter reports whether n stacks its children along X.
func (n *Node) IsHorizontalSplitter() bool {
	s, ok := n.body.(*split)
	return ok && s.orient == Horizontal
}

// Orientation returns the splitter orientation. ok is false for windows.
func (n *Node) Orientation() (o Orientation, ok bool) {
	s, ok := n.body.(*split)
	if !ok {
		return 0, false
	}
	return s.orient, true
}

// Parent returns the splitter owning n, or nil for a root or detached node.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the child nodes in order. Windows have none.
func (n *Node) Children() []*Node {
	s, ok := n.body.(*split)
	if !ok {
		return nil
	}
	out := make([]*Node, len(s.children))
	for i, c := range s.children {
		out[i] = c.node
	}
	return out
}

// VisibleChildCount returns the number of effectively visible children.
func (n *Node) VisibleChildCount() int {
	s, ok := n.body.(*split)
	if !ok {
		return 0
	}
	return len(s.visible())
}

// Ratios returns a copy of the raw split ratios, one per child.
func (n *Node) Ratios() []float32 {
	s, ok := n.body.(*split)
	if !ok {
		return nil
	}
	out := make([]float32, len(s.children))
	for i, c := range s.children {
		out[i] = c.ratio
	}
	return out
}

// SetRatios overwrites the split ratios. The length must match the
// number of children. The values are taken as is; they get normalized
// over the visible children at layout time.
func (n *Node) SetRatios(ratios ...float32) error {
	s, ok := n.body.(*split)
	if !ok {
		return fmt.Errorf("%w: %q", ErrWindowNode, n.label)
	}
	if len(ratios) != len(s.children) {
		return fmt.Errorf("got %d ratios for %d children", len(ratios), len(s.children))
	}
	for i := range s.children {
		s.children[i].ratio = ratios[i]
	}
	// Explicit ratios are authoritative for the current visible set.
	s.lastVisible = len(s.visible())
	return nil
}

// SetMinRatio sets the smallest share a visible child keeps while dragging.
func (n *Node) SetMinRatio(r float32) {
	if s, ok := n.body.(*split); ok {
		s.minRatio = geom.Clamp01(r)
	}
}

// MinRatio returns the drag floor of a splitter, 0 for windows.
func (n *Node) MinRatio() float32 {
	if s, ok := n.body.(*split); ok {
		return s.minRatio
	}
	return 0
}

// SetDividerThickness sets the width of the lines drawn between children.
func (n *Node) SetDividerThickness(w float32) {
	if s, ok := n.body.(*split); ok {
		s.thickness = w
	}
}

// SetEqualizeOnVisibleChange controls whether the ratios are reset to an
// equal split whenever the number of visible children changes.
func (n *Node) SetEqualizeOnVisibleChange(on bool) {
	if s, ok := n.body.(*split); ok {
		s.equalize = on
	}
}

// Domain returns the rectangle assigned by the last resize pass.
func (n *Node) Domain() geom.Rect { return n.domain }

// visible returns the indices of the effectively visible children.
func (s *split) visible() []int {
	idx := make([]int, 0, len(s.children))
	for i, c := range s.children {
		if c.node.IsEffectivelyVisible() {
			idx = append(idx, i)
		}
	}
	return idx
}

// visibleRatios returns the raw ratios of the children in idx.
func (s *split) visibleRatios(idx []int) []float32 {
	out := make([]float32, len(idx))
	for k, i := range idx {
		out[k] = s.children[i].ratio
	}
	return out
}
