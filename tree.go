package splitview

import (
	"errors"
	"fmt"
	"io"
)

// Tree owns a layout tree and hands out stable NodeID handles for its
// nodes. Every structural change bumps the generation, which lets holders
// of a Handle detect that it may no longer point where it used to.
type Tree struct {
	root   *Node
	nodes  map[NodeID]*Node
	nextID NodeID
	gen    uint64
}

// Handle is a non-owning reference to a splitter boundary.
type Handle struct {
	ID       NodeID
	Boundary int
	gen      uint64
}

// NewTree takes ownership of root and of all its descendants.
func NewTree(root *Node) (*Tree, error) {
	if root == nil {
		return nil, ErrNilRoot
	}
	if root.owner != nil || root.parent != nil {
		return nil, fmt.Errorf("%w: %q", ErrAlreadyAttached, root.label)
	}
	t := &Tree{
		root:  root,
		nodes: make(map[NodeID]*Node),
	}
	t.reindex()
	return t, nil
}

// Root returns the root node.
func (t *Tree) Root() *Node { return t.root }

// Generation returns the structural generation of the tree.
func (t *Tree) Generation() uint64 { return t.gen }

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int { return len(t.nodes) }

// Lookup resolves a node id.
func (t *Tree) Lookup(id NodeID) (*Node, bool) {
	n, ok := t.nodes[id]
	return n, ok
}

// Walk visits the nodes depth first, parents before children.
// Returning false from fn stops the walk.
func (t *Tree) Walk(fn func(n *Node, depth int) bool) {
	walk(t.root, 0, fn)
}

func walk(n *Node, depth int, fn func(*Node, int) bool) bool {
	if !fn(n, depth) {
		return false
	}
	if s, ok := n.body.(*split); ok {
		for _, c := range s.children {
			if !walk(c.node, depth+1, fn) {
				return false
			}
		}
	}
	return true
}

// Attach appends child to the splitter identified by parent, using the
// splitter's own orientation.
func (t *Tree) Attach(parent NodeID, c *Node) error {
	p, ok := t.nodes[parent]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownNode, parent)
	}
	o, ok := p.Orientation()
	if !ok {
		return fmt.Errorf("%w: %q", ErrWindowNode, p.label)
	}
	return p.addChild(o, c)
}

// Detach removes the node and its subtree from the tree and returns it.
// The root can't be detached.
func (t *Tree) Detach(id NodeID) (*Node, error) {
	n, ok := t.nodes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownNode, id)
	}
	if n == t.root {
		return nil, errors.New("the root node can't be detached")
	}
	n.parent.removeChild(n)
	t.reindex()
	return n, nil
}

// Capture returns a handle on boundary of the node n.
func (t *Tree) Capture(n *Node, boundary int) Handle {
	return Handle{ID: n.id, Boundary: boundary, gen: t.gen}
}

// Resolve returns the node a handle points to. It fails when the tree
// structure changed since the handle was captured.
func (t *Tree) Resolve(h Handle) (*Node, bool) {
	if h.ID == 0 || h.gen != t.gen {
		return nil, false
	}
	return t.Lookup(h.ID)
}

// reindex rebuilds the id table after a structural change. Nodes keep the
// id they already had; new nodes get fresh ones and removed ones drop out.
func (t *Tree) reindex() {
	seen := make(map[NodeID]*Node, len(t.nodes))
	t.Walk(func(n *Node, _ int) bool {
		if n.owner != t || n.id == 0 {
			t.nextID++
			n.id = t.nextID
			n.owner = t
		}
		seen[n.id] = n
		return true
	})
	for id, n := range t.nodes {
		if _, ok := seen[id]; !ok {
			release(n)
		}
	}
	t.nodes = seen
	t.gen++
}

// release forgets the ownership of a detached subtree so it can be
// attached elsewhere.
func release(n *Node) {
	n.owner = nil
	n.id = 0
}

// Close tears the tree down children first. Panes whose PaneFunc was
// registered through NewClosableWindow are closed; their errors are joined.
func (t *Tree) Close() error {
	var errs []error
	closeNode(t.root, &errs)
	t.nodes = map[NodeID]*Node{}
	t.gen++
	return errors.Join(errs...)
}

func closeNode(n *Node, errs *[]error) {
	switch b := n.body.(type) {
	case *split:
		for _, c := range b.children {
			closeNode(c.node, errs)
		}
		b.children = nil
	case *window:
		if b.closer != nil {
			if err := b.closer.Close(); err != nil {
				*errs = append(*errs, fmt.Errorf("closing %q: %w", n.label, err))
			}
		}
	}
	n.parent = nil
	release(n)
}

// NewClosableWindow is NewWindow for panes holding resources; c is closed
// when the owning tree is closed.
func NewClosableWindow(fn PaneFunc, c io.Closer, label string) *Node {
	n := NewWindow(fn, label)
	n.body.(*window).closer = c
	return n
}
