// Package compiler normalises a graph into the dense tables the engines run on.
package compiler

import (
	"errors"
	"fmt"
	"slices"

	"github.com/aretw0/automata/pkg/domain"
)

var (
	ErrDuplicateState = errors.New("duplicate state id")
	ErrUnknownState   = errors.New("unknown state reference")
	ErrEmptyStateID   = errors.New("state id is empty")
)

// startLink is the option synthesised between declared start states.
var startLink = domain.TransitionOption{
	Symbol: domain.Epsilon,
	Pop:    domain.Epsilon,
	Push:   []string{domain.Epsilon},
}

// Compile builds the alphabet, logical states and transition matrix of graph.
// The graph is not retained.
func Compile(graph domain.Graph, starts []string) (*Table, error) {
	t := &Table{
		States:   make([]LogicalState, len(graph.States)),
		Alphabet: newAlphabet(),
		index:    make(map[string]int, len(graph.States)),
	}

	for i, s := range graph.States {
		if s.ID == "" {
			return nil, fmt.Errorf("state #%d: %w", i, ErrEmptyStateID)
		}
		if _, dup := t.index[s.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateState, s.ID)
		}
		t.index[s.ID] = i
		t.States[i] = LogicalState{ID: s.ID, Index: i, Accepting: s.Accepting, Output: s.Output}
	}

	type resolved struct {
		from, to int
		edge     domain.Edge
	}
	edges := make([]resolved, 0, len(graph.Edges))
	for _, e := range graph.Edges {
		from, ok := t.index[e.From]
		if !ok {
			return nil, fmt.Errorf("edge %s->%s: %w: %q", e.From, e.To, ErrUnknownState, e.From)
		}
		to, ok := t.index[e.To]
		if !ok {
			return nil, fmt.Errorf("edge %s->%s: %w: %q", e.From, e.To, ErrUnknownState, e.To)
		}
		edges = append(edges, resolved{from: from, to: to, edge: e})
	}
	slices.SortStableFunc(edges, func(a, b resolved) int { return a.from - b.from })

	for _, s := range starts {
		idx, ok := t.index[s]
		if !ok {
			return nil, fmt.Errorf("start: %w: %q", ErrUnknownState, s)
		}
		if !slices.Contains(t.Starts, idx) {
			t.Starts = append(t.Starts, idx)
		}
	}

	// First pass fixes the alphabet so that every row has its final width.
	for _, r := range edges {
		for _, o := range r.edge.Options {
			t.Alphabet.add(domain.NormalizeSymbol(o.Symbol))
		}
	}
	if len(t.Starts) > 1 {
		t.Alphabet.add(domain.Epsilon)
	}

	t.Matrix = make([][][]Cell, len(t.States))
	for i := range t.Matrix {
		t.Matrix[i] = make([][]Cell, t.Alphabet.Len())
	}

	for _, r := range edges {
		for _, o := range r.edge.Options {
			t.addCell(r.from, Cell{Target: r.to, Option: NormalizeOption(o)})
		}
	}
	for _, a := range t.Starts {
		for _, b := range t.Starts {
			if a != b {
				t.addCell(a, Cell{Target: b, Option: startLink})
			}
		}
	}

	return t, nil
}

func (t *Table) addCell(from int, c Cell) {
	sym, _ := t.Alphabet.Index(c.Option.Symbol)
	row := t.Matrix[from]
	for _, existing := range row[sym] {
		if existing.Target == c.Target && existing.Option.Equal(c.Option) {
			return
		}
	}
	row[sym] = append(row[sym], c)
}

// NormalizeOption maps epsilon spellings onto Epsilon, an empty pop onto the
// wildcard and a nil push list onto [Epsilon].
func NormalizeOption(o domain.TransitionOption) domain.TransitionOption {
	out := domain.TransitionOption{
		Symbol: domain.NormalizeSymbol(o.Symbol),
		Pop:    domain.NormalizeSymbol(o.Pop),
		Move:   o.Move,
		Output: o.Output,
	}
	if out.Pop == "" {
		out.Pop = domain.Epsilon
	}
	if len(o.Push) == 0 {
		out.Push = []string{domain.Epsilon}
	} else {
		out.Push = make([]string, len(o.Push))
		for i, p := range o.Push {
			out.Push[i] = domain.NormalizeSymbol(p)
		}
	}
	return out
}
