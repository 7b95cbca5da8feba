package compiler

import "github.com/aretw0/automata/pkg/domain"

// LogicalState is the normalised form of a graph state.
type LogicalState struct {
	ID        string
	Index     int
	Accepting bool
	Output    string
}

// Cell is one entry of a transition matrix cell: a target and the option that leads there.
type Cell struct {
	Target int
	Option domain.TransitionOption
}

// Table is the compiled, read-only form of a graph.
type Table struct {
	States   []LogicalState
	Alphabet *Alphabet

	// Matrix is indexed by [state][symbol].
	Matrix [][][]Cell

	// Starts lists the declared start states in declaration order.
	Starts []int

	index map[string]int
}

// Start returns the first declared start state, or -1 when there is none.
func (t *Table) Start() int {
	if len(t.Starts) == 0 {
		return -1
	}
	return t.Starts[0]
}

// StateIndex resolves a state id.
func (t *Table) StateIndex(id string) (int, bool) {
	i, ok := t.index[id]
	return i, ok
}

// Cells returns the options of state under the symbol at index sym.
func (t *Table) Cells(state, sym int) []Cell {
	return t.Matrix[state][sym]
}

// CellsFor returns the options of state under the symbol label.
// Unknown symbols have no options.
func (t *Table) CellsFor(state int, symbol string) []Cell {
	sym, ok := t.Alphabet.Index(symbol)
	if !ok {
		return nil
	}
	return t.Matrix[state][sym]
}

// EpsilonCells returns the epsilon options of state.
func (t *Table) EpsilonCells(state int) []Cell {
	return t.CellsFor(state, domain.Epsilon)
}

// HasEpsilon reports whether any state has an epsilon option.
func (t *Table) HasEpsilon() bool {
	eps, ok := t.Alphabet.EpsilonIndex()
	if !ok {
		return false
	}
	for s := range t.Matrix {
		if len(t.Matrix[s][eps]) > 0 {
			return true
		}
	}
	return false
}

// OutgoingCells returns every option leaving state, in symbol order.
func (t *Table) OutgoingCells(state int) []Cell {
	var out []Cell
	for _, cells := range t.Matrix[state] {
		out = append(out, cells...)
	}
	return out
}

// Configuration builds a stackless configuration for state.
func (t *Table) Configuration(state int) domain.Configuration {
	s := t.States[state]
	return domain.Configuration{StateID: s.ID, Accepting: s.Accepting}
}

// Graph rebuilds a graph from the table, one edge per (source, target) pair.
// Synthesised start links are included.
func (t *Table) Graph() domain.Graph {
	g := domain.Graph{States: make([]domain.State, len(t.States))}
	for i, s := range t.States {
		g.States[i] = domain.State{ID: s.ID, Accepting: s.Accepting, Output: s.Output}
	}
	for from := range t.Matrix {
		edgeAt := make(map[int]int)
		for _, c := range t.OutgoingCells(from) {
			pos, ok := edgeAt[c.Target]
			if !ok {
				pos = len(g.Edges)
				edgeAt[c.Target] = pos
				g.Edges = append(g.Edges, domain.Edge{From: t.States[from].ID, To: t.States[c.Target].ID})
			}
			g.Edges[pos].Options = append(g.Edges[pos].Options, c.Option)
		}
	}
	return g
}
