package splitview

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/esimov/splitview/geom"
)

// Viewport reports the area available to the layout.
type Viewport interface {
	WorkArea() geom.Rect
}

// Cursor is the pointer shape requested by the layout.
type Cursor uint8

const (
	CursorDefault Cursor = iota
	// CursorResizeNS is requested over the dividers of vertical splitters.
	CursorResizeNS
	// CursorResizeEW is requested over the dividers of horizontal splitters.
	CursorResizeEW
)

func (c Cursor) String() string {
	switch c {
	case CursorResizeNS:
		return "ResizeNS"
	case CursorResizeEW:
		return "ResizeEW"
	default:
		return "Default"
	}
}

// Pointer exposes the mouse state of the host. DragDelta is measured from
// the press position, or from the last ResetDragDelta call.
type Pointer interface {
	Position() geom.Vec2
	Dragging() bool
	DragDelta() geom.Vec2
	ResetDragDelta()
	SetCursor(c Cursor)
}

// Host is everything the layout needs from the toolkit.
type Host interface {
	Viewport
	Pointer
	Placer
	Surface
	PanelRenderer
}

// PaneRecorder is implemented by hosts whose pane output accumulates
// within a frame. Each layout pass is bracketed by BeginPanes and EndPanes;
// only the output of the last pass of a frame must be kept.
type PaneRecorder interface {
	BeginPanes()
	EndPanes()
}

// State is the interaction state of the layout.
type State uint8

const (
	Idle State = iota
	Hovering
	Dragging
)

func (s State) String() string {
	switch s {
	case Hovering:
		return "hovering"
	case Dragging:
		return "dragging"
	default:
		return "idle"
	}
}

// Layout drives a Tree once per frame: it lays the panes out over the
// host viewport, tracks which divider is under the pointer and forwards
// drags to it.
type Layout struct {
	tree   *Tree
	panel  *Panel
	cfg    Config
	logger *log.Logger

	active    Handle
	hasActive bool
	state     State
}

// NewLayout creates a layout driver over t. cfg is validated first, which
// also resolves its divider color. A nil logger discards the debug output.
func NewLayout(t *Tree, cfg Config, logger *log.Logger) (*Layout, error) {
	if t == nil || t.Root() == nil {
		return nil, ErrNilRoot
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	cfg.Apply(t)
	return &Layout{
		tree:   t,
		panel:  NewPanel(t.Root()),
		cfg:    cfg,
		logger: logger.WithPrefix("layout"),
	}, nil
}

// Tree returns the tree driven by the layout.
func (l *Layout) Tree() *Tree { return l.tree }

// Panel returns the visibility control model.
func (l *Layout) Panel() *Panel { return l.panel }

// State returns the interaction state reached by the last frame.
func (l *Layout) State() State { return l.state }

// Active returns the splitter and boundary currently hovered or dragged.
func (l *Layout) Active() (*Node, int, bool) {
	if !l.hasActive {
		return nil, -1, false
	}
	n, ok := l.tree.Resolve(l.active)
	if !ok {
		return nil, -1, false
	}
	return n, l.active.Boundary, true
}

// UpdateAndRender runs a full frame on h.
func (l *Layout) UpdateAndRender(h Host) {
	if l.cfg.ShowPanel {
		h.ControlPanel(l.panel)
	}

	root := l.tree.Root()
	area := h.WorkArea()
	l.resize(h, area)

	dragging := h.Dragging()
	if !dragging {
		if n, k, ok := root.HoveredSplitter(h.Position(), l.cfg.HitPadding); ok {
			l.active = l.tree.Capture(n, k)
			l.hasActive = true
		} else {
			l.hasActive = false
		}
	}

	n, k, ok := l.Active()
	if !ok {
		l.hasActive = false
	}
	if ok {
		if n.IsVerticalSplitter() {
			h.SetCursor(CursorResizeNS)
		} else {
			h.SetCursor(CursorResizeEW)
		}
		if dragging && n.DragSplitter(k, h.DragDelta()) {
			h.ResetDragDelta()
			l.resize(h, area)
		}
	}

	next := Idle
	switch {
	case ok && dragging:
		next = Dragging
	case ok:
		next = Hovering
	}
	l.transition(next, n, k)

	root.Render(h, l.cfg.Divider())
}

// resize runs one layout pass over the whole tree.
func (l *Layout) resize(h Host, area geom.Rect) {
	rec, ok := h.(PaneRecorder)
	if ok {
		rec.BeginPanes()
	}
	l.tree.Root().Resize(h, area)
	if ok {
		rec.EndPanes()
	}
}

func (l *Layout) transition(next State, n *Node, k int) {
	if next == l.state {
		return
	}
	if n != nil {
		l.logger.Debug("state", "from", l.state, "to", next, "splitter", n.Label(), "boundary", k)
	} else {
		l.logger.Debug("state", "from", l.state, "to", next)
	}
	l.state = next
}
