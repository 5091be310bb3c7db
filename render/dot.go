package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/arr-ai/grammarguide/graph"
)

type Style struct {
	Shape string // line style for edges
	Color string
	Size  int
}

// Styles maps vertex and edge categories to their look.
type Styles map[graph.Category]Style

func DefaultStyles() Styles {
	return Styles{
		graph.RuleVertex:     {Shape: "box", Color: "#aaf", Size: 20},
		graph.TerminalVertex: {Shape: "ellipse", Color: "#dc0", Size: 10},
		graph.CalledBy:       {Shape: "dashed"},
	}
}

// DOT writes g as a strict graphviz digraph.
func DOT(w io.Writer, g graph.Graph, styles Styles) error {
	var sb strings.Builder
	sb.WriteString("strict digraph {\n")
	for _, v := range g.Vertices {
		s := styles[v.Category]
		label := v.Label
		if v.Description != "" {
			label += "\n" + v.Description
		}
		fmt.Fprintf(&sb, "\t%q [label=%q", v.ID, label)
		if s.Shape != "" {
			fmt.Fprintf(&sb, " shape=%s", s.Shape)
		}
		if s.Color != "" {
			fmt.Fprintf(&sb, " style=filled fillcolor=%q", s.Color)
		}
		if s.Size > 0 {
			fmt.Fprintf(&sb, " fontsize=%d", s.Size)
		}
		sb.WriteString("];\n")
	}
	for _, e := range g.Edges {
		fmt.Fprintf(&sb, "\t%q -> %q [class=%q", e.Source, e.Target, e.Category)
		if s, has := styles[e.Category]; has && s.Shape != "" {
			fmt.Fprintf(&sb, " style=%s", s.Shape)
		}
		sb.WriteString("];\n")
	}
	sb.WriteString("}\n")
	_, err := io.WriteString(w, sb.String())
	return err
}
