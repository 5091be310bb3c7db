// Package graph turns a parsed grammar into vertices and typed edges.
package graph

import (
	"golang.org/x/exp/slices"

	"github.com/arr-ai/grammarguide/grammar"
)

type Category string

const (
	RuleVertex     Category = "rule"
	TerminalVertex Category = "terminal"

	TerminalUse Category = "terminal-use" // terminal -> rule using it
	RuleUse     Category = "rule-use"     // referenced rule -> rule using it
	CalledBy    Category = "called-by"    // calling rule -> called rule
)

type Vertex struct {
	ID          string   `json:"id" yaml:"id"`
	Label       string   `json:"label" yaml:"label"`
	Category    Category `json:"category" yaml:"category"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
}

type Edge struct {
	Source   string   `json:"source" yaml:"source"`
	Target   string   `json:"target" yaml:"target"`
	Category Category `json:"category" yaml:"category"`
}

type Graph struct {
	Vertices []Vertex `json:"vertices" yaml:"vertices"`
	Edges    []Edge   `json:"edges" yaml:"edges"`
}

// Build derives the graph of a table. Rules come first in definition order,
// then terminals in first-use order. Duplicate edges are dropped.
func Build(t *grammar.Table) Graph {
	b := builder{seen: map[string]bool{}, edges: map[Edge]bool{}}

	for _, r := range t.Rules() {
		b.vertex(Vertex{ID: r.Name, Label: r.Name, Category: RuleVertex})
	}
	for _, r := range t.Rules() {
		for _, tok := range r.Tokens {
			switch tok.Type {
			case grammar.RuleToken:
				b.edge(Edge{Source: tok.Value, Target: r.Name, Category: RuleUse})
			default:
				// terminal values never collide with rule names
				b.vertex(Vertex{
					ID:          tok.Value,
					Label:       tok.Value,
					Category:    TerminalVertex,
					Description: grammar.DescribeTerminal(tok.Value),
				})
				b.edge(Edge{Source: tok.Value, Target: r.Name, Category: TerminalUse})
			}
		}
	}
	for _, r := range t.Rules() {
		for _, caller := range r.CalledBy {
			b.edge(Edge{Source: caller, Target: r.Name, Category: CalledBy})
		}
	}
	return b.g
}

type builder struct {
	g     Graph
	seen  map[string]bool
	edges map[Edge]bool
}

func (b *builder) vertex(v Vertex) {
	if !b.seen[v.ID] {
		b.seen[v.ID] = true
		b.g.Vertices = append(b.g.Vertices, v)
	}
}

func (b *builder) edge(e Edge) {
	if !b.edges[e] {
		b.edges[e] = true
		b.g.Edges = append(b.g.Edges, e)
	}
}

// Vertex looks up a vertex by id.
func (g Graph) Vertex(id string) (Vertex, bool) {
	i := slices.IndexFunc(g.Vertices, func(v Vertex) bool { return v.ID == id })
	if i < 0 {
		return Vertex{}, false
	}
	return g.Vertices[i], true
}

// Without returns a copy of g lacking edges of the given categories.
func (g Graph) Without(categories ...Category) Graph {
	out := Graph{Vertices: append([]Vertex{}, g.Vertices...)}
	for _, e := range g.Edges {
		if !slices.Contains(categories, e.Category) {
			out.Edges = append(out.Edges, e)
		}
	}
	return out
}

// EdgesOf returns the edges of one category.
func (g Graph) EdgesOf(category Category) []Edge {
	var out []Edge
	for _, e := range g.Edges {
		if e.Category == category {
			out = append(out, e)
		}
	}
	return out
}
