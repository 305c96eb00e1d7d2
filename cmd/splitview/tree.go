package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	ltree "github.com/charmbracelet/lipgloss/tree"
	"github.com/esimov/splitview"
	"github.com/esimov/splitview/geom"
	"github.com/spf13/cobra"
)

var (
	styleLabel  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))
	styleKind   = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
	styleDim    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	styleHidden = lipgloss.NewStyle().Foreground(lipgloss.Color("167"))
	styleBranch = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).MarginRight(1)
)

// newTreeCmd prints the demo layout resolved for the window size, without
// opening a window.
func newTreeCmd(opts *options) *cobra.Command {
	var hide []string

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Print the demo layout and the rectangle of every pane",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolveConfig(cmd)
			if err != nil {
				return err
			}
			tree, err := newDemoTree(nil, nil)
			if err != nil {
				return err
			}
			defer tree.Close()

			if _, err := splitview.NewLayout(tree, cfg, loggerFromContext(cmd.Context())); err != nil {
				return err
			}
			if err := hideNodes(tree, hide); err != nil {
				return err
			}

			area := geom.R(0, 0, float32(cfg.Window.Width), float32(cfg.Window.Height))
			tree.Root().Resize(nil, area)

			fmt.Fprintln(cmd.OutOrStdout(), renderTree(tree.Root()))
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&hide, "hide", nil, "labels of the nodes to hide")

	return cmd
}

// hideNodes hides the nodes carrying one of the labels.
func hideNodes(t *splitview.Tree, labels []string) error {
	for _, label := range labels {
		found := false
		t.Walk(func(n *splitview.Node, _ int) bool {
			if n.Label() == label {
				n.SetVisible(false)
				found = true
			}
			return true
		})
		if !found {
			return fmt.Errorf("no node labelled %q", label)
		}
	}
	return nil
}

func renderTree(n *splitview.Node) *ltree.Tree {
	t := ltree.Root(describe(n)).
		Enumerator(ltree.RoundedEnumerator).
		EnumeratorStyle(styleBranch)
	for _, c := range n.Children() {
		if c.IsWindowNode() {
			t.Child(describe(c))
		} else {
			t.Child(renderTree(c))
		}
	}
	return t
}

// describe formats one node as "label kind domain [ratios]".
func describe(n *splitview.Node) string {
	var sb strings.Builder
	sb.WriteString(styleLabel.Render(n.Label()))
	sb.WriteByte(' ')

	kind := "window"
	if o, ok := n.Orientation(); ok {
		kind = strings.ToLower(o.String())
	}
	sb.WriteString(styleKind.Render(kind))

	if !n.IsEffectivelyVisible() {
		sb.WriteByte(' ')
		sb.WriteString(styleHidden.Render("hidden"))
		return sb.String()
	}

	sb.WriteByte(' ')
	sb.WriteString(styleDim.Render(n.Domain().String()))
	if ratios := n.Ratios(); len(ratios) > 0 {
		parts := make([]string, len(ratios))
		for i, r := range ratios {
			parts[i] = fmt.Sprintf("%.2f", r)
		}
		sb.WriteByte(' ')
		sb.WriteString(styleDim.Render("[" + strings.Join(parts, " ") + "]"))
	}
	return sb.String()
}
