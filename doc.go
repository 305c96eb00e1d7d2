/*
Package splitview is a recursive, resizable pane layout for immediate mode user interfaces.
A layout is a tree of splitter nodes, which divide their rectangle among their children along one axis,
and window nodes, which host a pane callback. Dividers between sibling panes can be dragged with the mouse
and any subtree can be hidden at runtime, in which case its siblings take over the free space.

The package is independent of the GUI toolkit: the host is described by a few small interfaces
(Viewport, Pointer, Placer, Surface and PanelRenderer). The ui package implements them on top of Gio.

A minimal example:

	rows := splitview.NewSplitter(splitview.Vertical, "Rows")
	rows.AddVerticalChild(splitview.NewWindow(drawEditor, "Editor"))
	rows.AddVerticalChild(splitview.NewWindow(drawConsole, "Console"))

	tree, err := splitview.NewTree(rows)
	if err != nil {
		log.Fatal(err)
	}
	layout, err := splitview.NewLayout(tree, splitview.DefaultConfig(), nil)
	if err != nil {
		log.Fatal(err)
	}

	// once per frame
	layout.UpdateAndRender(host)
*/
package splitview
