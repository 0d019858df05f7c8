package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"

	"github.com/grindlemire/go-boxlayout"
	"github.com/grindlemire/go-boxlayout/internal/fixture"
)

var (
	colorCyan  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("35")
	colorRed   = lipgloss.Color("167")
	colorWhite = lipgloss.Color("255")
	colorDim   = lipgloss.Color("240")
)

var (
	styleTitle    = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleName     = lipgloss.NewStyle().Foreground(colorWhite)
	styleDim      = lipgloss.NewStyle().Foreground(colorDim)
	styleNumber   = lipgloss.NewStyle().Foreground(colorCyan)
	styleMismatch = lipgloss.NewStyle().Foreground(colorRed)

	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
)

func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

func printError(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconError.Render(iconError)+" "+fmt.Sprintf(format, args...))
}

func printDetail(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, "  "+styleDim.Render(fmt.Sprintf(format, args...)))
}

// renderCase draws the computed layout of c as a tree, one node per line.
// Nodes with mismatched expectations are highlighted.
func renderCase(c *fixture.Case, mismatches []fixture.Mismatch) (string, error) {
	names := make(map[boxlayout.NodeID]string, len(c.Entries))
	for _, e := range c.Entries {
		names[e.ID] = e.Path
	}
	bad := make(map[string][]fixture.Mismatch)
	for _, m := range mismatches {
		bad[m.Path] = append(bad[m.Path], m)
	}

	t, err := renderNode(c.Tree, c.Root, names, bad)
	if err != nil {
		return "", err
	}
	return t.String(), nil
}

func renderNode(lt *boxlayout.Tree, id boxlayout.NodeID, names map[boxlayout.NodeID]string, bad map[string][]fixture.Mismatch) (*tree.Tree, error) {
	l, err := lt.Layout(id)
	if err != nil {
		return nil, err
	}
	t := tree.Root(nodeLabel(names[id], l, bad[names[id]])).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(styleDim)

	kids, err := lt.Children(id)
	if err != nil {
		return nil, err
	}
	for _, k := range kids {
		child, err := renderNode(lt, k, names, bad)
		if err != nil {
			return nil, err
		}
		t.Child(child)
	}
	return t, nil
}

func nodeLabel(path string, l boxlayout.Layout, mismatches []fixture.Mismatch) string {
	label := fmt.Sprintf("%s %s %s",
		styleName.Render(lastSegment(path)),
		styleDim.Render("at"),
		styleNumber.Render(fmt.Sprintf("(%g, %g) %g×%g", l.Location.X, l.Location.Y, l.Size.Width, l.Size.Height)),
	)
	for _, m := range mismatches {
		label += " " + styleMismatch.Render(fmt.Sprintf("%s want %g", m.Field, m.Want))
	}
	return label
}

func lastSegment(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' {
			return path[i+1:]
		}
	}
	return path
}
