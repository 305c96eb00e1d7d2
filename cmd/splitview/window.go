package main

import (
	"errors"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"gioui.org/widget/material"
	"github.com/charmbracelet/log"
	"github.com/esimov/splitview"
	"github.com/esimov/splitview/ui"
	"github.com/esimov/splitview/utils"
)

// runWindow opens the demo window and drives the layout until the window
// is closed. The tree, and the image pane with it, is closed on exit.
func runWindow(cfg splitview.Config, img *ui.Image, logger *log.Logger) (err error) {
	host := ui.NewHost(material.NewTheme(gofont.Collection()))

	tree, err := newDemoTree(host, img)
	if err != nil {
		if img != nil {
			img.Close()
		}
		return err
	}
	defer func() {
		err = errors.Join(err, tree.Close())
	}()

	l, err := splitview.NewLayout(tree, cfg, logger)
	if err != nil {
		return err
	}
	logger.Debug("layout ready",
		"nodes", tree.Len(),
		"panel", cfg.ShowPanel,
		"divider", utils.ColorHex(cfg.Divider()),
	)

	w := app.NewWindow(
		app.Title(cfg.Window.Title),
		app.Size(unit.Dp(cfg.Window.Width), unit.Dp(cfg.Window.Height)),
	)

	var ops op.Ops
	for e := range w.Events() {
		switch e := e.(type) {
		case system.FrameEvent:
			gtx := layout.NewContext(&ops, e)
			host.Frame(gtx, l)
			e.Frame(gtx.Ops)
		case system.DestroyEvent:
			return e.Err
		}
	}
	return nil
}
