package runtime_test

import (
	"github.com/aretw0/automata/pkg/domain"
)

// edge builds a single-option edge.
func edge(from, to string, symbols ...string) domain.Edge {
	e := domain.Edge{From: from, To: to}
	for _, s := range symbols {
		e.Options = append(e.Options, domain.TransitionOption{Symbol: s})
	}
	return e
}

func states(accepting map[string]bool, ids ...string) []domain.State {
	out := make([]domain.State, len(ids))
	for i, id := range ids {
		out[i] = domain.State{ID: id, Accepting: accepting[id]}
	}
	return out
}

// words returns every word over letters with length at most n.
func words(letters []string, n int) [][]string {
	out := [][]string{{}}
	frontier := [][]string{{}}
	for l := 0; l < n; l++ {
		var next [][]string
		for _, w := range frontier {
			for _, s := range letters {
				nw := append(append([]string(nil), w...), s)
				next = append(next, nw)
			}
		}
		out = append(out, next...)
		frontier = next
	}
	return out
}

func split(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

// scenarioDFA has four states over {0,1}; S2 and S3 accept.
func scenarioDFA() domain.Graph {
	return domain.Graph{
		States: states(map[string]bool{"S2": true, "S3": true}, "S0", "S1", "S2", "S3"),
		Edges: []domain.Edge{
			edge("S0", "S1", "0"),
			edge("S0", "S2", "1"),
			edge("S1", "S0", "0"),
			edge("S1", "S3", "1"),
			edge("S2", "S3", "0"),
			edge("S2", "S1", "1"),
			edge("S3", "S3", "0"),
			edge("S3", "S1", "1"),
		},
	}
}

// scenarioENFA branches by epsilon into "011" and "1011".
func scenarioENFA() domain.Graph {
	return domain.Graph{
		States: states(map[string]bool{"a3": true, "b4": true},
			"s", "a0", "a1", "a2", "a3", "b0", "b1", "b2", "b3", "b4"),
		Edges: []domain.Edge{
			edge("s", "a0", domain.Epsilon),
			edge("s", "b0", "eps"),
			edge("a0", "a1", "0"),
			edge("a1", "a2", "1"),
			edge("a2", "a3", "1"),
			edge("b0", "b1", "1"),
			edge("b1", "b2", "0"),
			edge("b2", "b3", "1"),
			edge("b3", "b4", "1"),
		},
	}
}

func phaseIDs(ps domain.PhaseSet) []string {
	ids := make([]string, len(ps.Configurations))
	for i, c := range ps.Configurations {
		ids[i] = c.StateID
	}
	return ids
}
