package ui

import (
	"image/color"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"github.com/esimov/splitview"
)

var (
	panelBkgColor = color.NRGBA{R: 0x2b, G: 0x2d, B: 0x33, A: 0xf0}
	tabColor      = color.NRGBA{R: 0x3c, G: 0x40, B: 0x4a, A: 0xff}
	activeColor   = color.NRGBA{R: 0x29, G: 0x6b, B: 0xb5, A: 0xff}
)

// PanelView draws a splitview.Panel as a floating box of tabs and
// checkboxes. It keeps the widget state between frames.
type PanelView struct {
	th       *material.Theme
	selected int

	tabs     []widget.Clickable
	visible  widget.Bool
	children []widget.Bool
	showAll  widget.Clickable
	hideAll  widget.Clickable
}

// NewPanelView returns a panel view drawn with th.
func NewPanelView(th *material.Theme) *PanelView {
	return &PanelView{th: th}
}

// Selected returns the index of the open tab.
func (v *PanelView) Selected() int { return v.selected }

// Layout draws the panel for p and applies the toggles the user made.
func (v *PanelView) Layout(gtx C, p *splitview.Panel) D {
	tabs := p.Tabs()
	if len(tabs) == 0 {
		return D{}
	}
	if len(v.tabs) != len(tabs) {
		v.tabs = make([]widget.Clickable, len(tabs))
	}
	if v.selected >= len(tabs) {
		v.selected = 0
	}
	for i := range v.tabs {
		for v.tabs[i].Clicked() {
			v.selected = i
		}
	}

	tab := tabs[v.selected]
	v.visible.Value = tab.Visible
	if len(v.children) < len(tab.Children) {
		v.children = make([]widget.Bool, len(tab.Children))
	}
	for i, c := range tab.Children {
		v.children[i].Value = c.Visible
	}

	dims := v.frame(gtx, tabs, tab)

	changed := false
	if v.visible.Changed() {
		changed = p.SetTabVisible(v.selected, v.visible.Value)
	}
	for i := range tab.Children {
		if v.children[i].Changed() {
			changed = p.SetChildVisible(v.selected, i, v.children[i].Value) || changed
		}
	}
	for v.showAll.Clicked() {
		changed = p.ShowAll(v.selected) || changed
	}
	for v.hideAll.Clicked() {
		changed = p.HideAll(v.selected) || changed
	}
	if changed {
		op.InvalidateOp{}.Add(gtx.Ops)
	}
	return dims
}

func (v *PanelView) frame(gtx C, tabs []splitview.Tab, tab splitview.Tab) D {
	return layout.UniformInset(unit.Dp(12)).Layout(gtx, func(gtx C) D {
		macro := op.Record(gtx.Ops)
		dims := layout.UniformInset(unit.Dp(8)).Layout(gtx, func(gtx C) D {
			return v.content(gtx, tabs, tab)
		})
		call := macro.Stop()

		paint.FillShape(gtx.Ops, panelBkgColor, clip.Rect{Max: dims.Size}.Op())
		call.Add(gtx.Ops)
		return dims
	})
}

func (v *PanelView) content(gtx C, tabs []splitview.Tab, tab splitview.Tab) D {
	rows := []layout.FlexChild{
		layout.Rigid(material.Body1(v.th, "Layout Controls").Layout),
		layout.Rigid(layout.Spacer{Height: unit.Dp(6)}.Layout),
		layout.Rigid(func(gtx C) D { return v.tabBar(gtx, tabs) }),
		layout.Rigid(layout.Spacer{Height: unit.Dp(6)}.Layout),
		layout.Rigid(material.CheckBox(v.th, &v.visible, tab.Label+" Visible").Layout),
	}
	for i, c := range tab.Children {
		cb := material.CheckBox(v.th, &v.children[i], c.Label)
		rows = append(rows, layout.Rigid(func(gtx C) D {
			return layout.Inset{Left: unit.Dp(16)}.Layout(gtx, cb.Layout)
		}))
	}
	if len(tab.Children) > 0 {
		rows = append(rows,
			layout.Rigid(layout.Spacer{Height: unit.Dp(6)}.Layout),
			layout.Rigid(func(gtx C) D {
				return layout.Flex{Spacing: layout.SpaceEnd}.Layout(gtx,
					layout.Rigid(v.button(&v.showAll, "Show All", tabColor)),
					layout.Rigid(layout.Spacer{Width: unit.Dp(6)}.Layout),
					layout.Rigid(v.button(&v.hideAll, "Hide All", tabColor)),
				)
			}),
		)
	}
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx, rows...)
}

func (v *PanelView) tabBar(gtx C, tabs []splitview.Tab) D {
	items := make([]layout.FlexChild, 0, 2*len(tabs))
	for i, t := range tabs {
		bg := tabColor
		if i == v.selected {
			bg = activeColor
		}
		if i > 0 {
			items = append(items, layout.Rigid(layout.Spacer{Width: unit.Dp(4)}.Layout))
		}
		items = append(items, layout.Rigid(v.button(&v.tabs[i], t.Label, bg)))
	}
	return layout.Flex{}.Layout(gtx, items...)
}

func (v *PanelView) button(c *widget.Clickable, label string, bg color.NRGBA) layout.Widget {
	btn := material.Button(v.th, c, label)
	btn.Background = bg
	btn.TextSize = unit.Sp(13)
	btn.Inset = layout.Inset{
		Top: unit.Dp(4), Bottom: unit.Dp(4),
		Left: unit.Dp(8), Right: unit.Dp(8),
	}
	return btn.Layout
}
