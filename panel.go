package splitview

import "strconv"

// PanelRenderer draws the visibility control panel on top of everything.
type PanelRenderer interface {
	ControlPanel(p *Panel)
}

// Panel is a toolkit independent model of the visibility controls: one
// tab per child of the root, each exposing a toggle for itself and, for
// splitters, one toggle per grandchild.
type Panel struct {
	root *Node
}

// Tab is a snapshot of one panel tab.
type Tab struct {
	Label    string
	Visible  bool
	Children []Toggle
}

// Toggle is a snapshot of one grandchild checkbox.
type Toggle struct {
	Label   string
	Visible bool
}

// NewPanel builds the panel model over the children of root.
func NewPanel(root *Node) *Panel {
	return &Panel{root: root}
}

// Tabs returns the current state of the panel. Grandchild toggles are
// only listed while the tab's own flag is set.
func (p *Panel) Tabs() []Tab {
	nodes := p.root.Children()
	tabs := make([]Tab, 0, len(nodes))
	for i, n := range nodes {
		tab := Tab{
			Label:   n.Label(),
			Visible: n.Visible(),
		}
		if tab.Label == "" {
			tab.Label = strconv.Itoa(i)
		}
		if n.Visible() && !n.IsWindowNode() {
			for c, cn := range n.Children() {
				label := cn.Label()
				if label == "" {
					label = "Child " + strconv.Itoa(c)
				}
				tab.Children = append(tab.Children, Toggle{Label: label, Visible: cn.Visible()})
			}
		}
		tabs = append(tabs, tab)
	}
	return tabs
}

// SetTabVisible toggles a root child together with its own children.
func (p *Panel) SetTabVisible(tab int, v bool) bool {
	n := p.tab(tab)
	if n == nil {
		return false
	}
	if n.IsWindowNode() {
		n.SetVisible(v)
		return true
	}
	n.SetSubtreeVisible(v)
	return true
}

// SetChildVisible toggles one grandchild. The parent flag then follows
// the parent's effective visibility, so hiding the last child hides the
// parent too.
func (p *Panel) SetChildVisible(tab, c int, v bool) bool {
	n := p.tab(tab)
	if n == nil {
		return false
	}
	children := n.Children()
	if c < 0 || c >= len(children) {
		return false
	}
	children[c].SetVisible(v)
	n.SetVisible(n.IsEffectivelyVisible())
	return true
}

// ShowAll makes every child of a tab visible.
func (p *Panel) ShowAll(tab int) bool {
	return p.setAll(tab, true)
}

// HideAll hides every child of a tab, and with them the tab itself.
func (p *Panel) HideAll(tab int) bool {
	return p.setAll(tab, false)
}

func (p *Panel) setAll(tab int, v bool) bool {
	n := p.tab(tab)
	if n == nil || n.IsWindowNode() {
		return false
	}
	if v {
		n.SetVisible(true)
	}
	for _, c := range n.Children() {
		c.SetVisible(v)
	}
	n.SetVisible(n.IsEffectivelyVisible())
	return true
}

func (p *Panel) tab(i int) *Node {
	nodes := p.root.Children()
	if i < 0 || i >= len(nodes) {
		return nil
	}
	return nodes[i]
}
