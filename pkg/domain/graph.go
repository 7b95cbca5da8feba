package domain

// Graph is the caller-supplied description of an automaton.
// Engines take a snapshot of it at construction and never mutate it.
type Graph struct {
	States []State `json:"states" yaml:"states" mapstructure:"states"`
	Edges  []Edge  `json:"edges" yaml:"edges" mapstructure:"edges"`
}

// State returns the state with the given id.
func (g Graph) State(id string) (State, bool) {
	for _, s := range g.States {
		if s.ID == id {
			return s, true
		}
	}
	return State{}, false
}

// Clone returns a deep copy of the graph.
func (g Graph) Clone() Graph {
	out := Graph{
		States: append([]State(nil), g.States...),
		Edges:  make([]Edge, len(g.Edges)),
	}
	for i, e := range g.Edges {
		opts := make([]TransitionOption, len(e.Options))
		for j, o := range e.Options {
			o.Push = append([]string(nil), o.Push...)
			opts[j] = o
		}
		out.Edges[i] = Edge{From: e.From, To: e.To, Options: opts}
	}
	return out
}

// HasEpsilon reports whether any option of the graph is labeled Epsilon.
func (g Graph) HasEpsilon() bool {
	for _, e := range g.Edges {
		for _, o := range e.Options {
			if o.Symbol == Epsilon {
				return true
			}
		}
	}
	return false
}
