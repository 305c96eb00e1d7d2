package main

import (
	"github.com/esimov/splitview"
	"github.com/esimov/splitview/ui"
)

// column describes one vertical group of the demo.
type column struct {
	label string
	panes []string
}

var demoColumns = []column{
	{label: "Geodetic", panes: []string{"Latitude", "Longitude", "Altitude"}},
	{label: "Attitude", panes: []string{"Yaw", "Pitch", "Roll"}},
}

var paneText = map[string]string{
	"Latitude":  "Lat content",
	"Longitude": "Lon content",
	"Altitude":  "Alt content",
	"Yaw":       "Yaw content",
	"Pitch":     "Pitch content",
	"Roll":      "Roll content",
}

// newDemoTree builds the telemetry demo: a row of two three pane columns
// and a console column. With a nil host the panes draw nothing, which is
// enough to compute the geometry. img, when set, is shown below the console.
func newDemoTree(h *ui.Host, img *ui.Image) (*splitview.Tree, error) {
	pane := func(label string, lines ...ui.Line) *splitview.Node {
		if h == nil {
			return splitview.NewWindow(nil, label)
		}
		return splitview.NewWindow(h.TextPane(label, lines...), label)
	}

	root := splitview.NewSplitter(splitview.Horizontal, "RootRows")
	for _, c := range demoColumns {
		col := splitview.NewSplitter(splitview.Vertical, c.label)
		nodes := make([]*splitview.Node, len(c.panes))
		for i, p := range c.panes {
			nodes[i] = pane(p, ui.Line{Text: paneText[p]})
		}
		if err := col.SetVerticalChildren(nodes...); err != nil {
			return nil, err
		}
		if err := root.AddHorizontalChild(col); err != nil {
			return nil, err
		}
	}

	console := splitview.NewSplitter(splitview.Vertical, "ConsoleRow")
	if err := console.AddVerticalChild(pane("Console", ui.Line{Text: "[INFO] Ready", Color: ui.Yellow})); err != nil {
		return nil, err
	}
	if img != nil {
		var fn splitview.PaneFunc
		if h != nil {
			fn = h.WidgetPane("Image", img.Layout)
		}
		if err := console.AddVerticalChild(splitview.NewClosableWindow(fn, img, "Image")); err != nil {
			return nil, err
		}
	}
	if err := root.AddHorizontalChild(console); err != nil {
		return nil, err
	}

	return splitview.NewTree(root)
}
