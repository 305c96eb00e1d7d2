package ui

import (
	"image/color"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"
	"github.com/esimov/splitview"
)

var (
	paneBkgColor   = color.NRGBA{R: 0x25, G: 0x27, B: 0x2c, A: 0xff}
	paneTitleColor = color.NRGBA{R: 0xdc, G: 0xdc, B: 0xdc, A: 0xff}

	// Yellow is the color of informational console lines.
	Yellow = color.NRGBA{R: 0xff, G: 0xff, B: 0x00, A: 0xff}
)

// Line is a single colored line of pane text. A zero Color uses the
// theme foreground.
type Line struct {
	Text  string
	Color color.NRGBA
}

// TextPane returns a pane callback drawing a title followed by lines of text.
func (h *Host) TextPane(title string, lines ...Line) splitview.PaneFunc {
	return func() {
		h.Pane(func(gtx C) D {
			return h.paneFrame(gtx, title, func(gtx C) D {
				children := make([]layout.FlexChild, len(lines))
				for i, l := range lines {
					lbl := material.Body2(h.Theme, l.Text)
					if l.Color != (color.NRGBA{}) {
						lbl.Color = l.Color
					}
					children[i] = layout.Rigid(lbl.Layout)
				}
				return layout.Flex{Axis: layout.Vertical}.Layout(gtx, children...)
			})
		})
	}
}

// WidgetPane returns a pane callback drawing a title above w.
func (h *Host) WidgetPane(title string, w layout.Widget) splitview.PaneFunc {
	return func() {
		h.Pane(func(gtx C) D {
			return h.paneFrame(gtx, title, w)
		})
	}
}

func (h *Host) paneFrame(gtx C, title string, body layout.Widget) D {
	paint.FillShape(gtx.Ops, paneBkgColor, clip.Rect{Max: gtx.Constraints.Max}.Op())

	return layout.UniformInset(unit.Dp(8)).Layout(gtx, func(gtx C) D {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(func(gtx C) D {
				lbl := material.Body1(h.Theme, title)
				lbl.Color = paneTitleColor
				lbl.Font.Weight = text.Bold
				return lbl.Layout(gtx)
			}),
			layout.Rigid(layout.Spacer{Height: unit.Dp(4)}.Layout),
			layout.Flexed(1, body),
		)
	})
}
