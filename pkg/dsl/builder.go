package dsl

import (
	"fmt"

	"github.com/aretw0/automata/pkg/domain"
)

// Builder manages the graph construction. States keep their declaration order.
type Builder struct {
	states map[string]*StateBuilder
	order  []string
}

// New creates a new graph builder.
func New() *Builder {
	return &Builder{
		states: make(map[string]*StateBuilder),
	}
}

// Add creates a new state in the graph.
// If the state already exists, it returns the existing builder.
func (b *Builder) Add(id string) *StateBuilder {
	if sb, ok := b.states[id]; ok {
		return sb
	}
	sb := &StateBuilder{
		state:   domain.State{ID: id},
		builder: b,
	}
	b.states[id] = sb
	b.order = append(b.order, id)
	return sb
}

// Build returns the graph and the start states in declaration order.
// Options sharing a source and target are merged into one edge.
func (b *Builder) Build() (domain.Graph, []string, error) {
	var graph domain.Graph
	var starts []string
	edgeAt := make(map[[2]string]int)

	for _, id := range b.order {
		sb := b.states[id]
		graph.States = append(graph.States, sb.state)
		if sb.start {
			starts = append(starts, id)
		}
		for _, a := range sb.arcs {
			if _, ok := b.states[a.to]; !ok {
				return domain.Graph{}, nil, fmt.Errorf("state %q: transition to undeclared state %q", id, a.to)
			}
			key := [2]string{id, a.to}
			pos, ok := edgeAt[key]
			if !ok {
				pos = len(graph.Edges)
				edgeAt[key] = pos
				graph.Edges = append(graph.Edges, domain.Edge{From: id, To: a.to})
			}
			graph.Edges[pos].Options = append(graph.Edges[pos].Options, a.option)
		}
	}

	return graph, starts, nil
}
