package runtime

import (
	"fmt"
	"slices"

	"github.com/aretw0/automata/pkg/domain"
)

// MooreToMealy moves every state output onto the options entering that state.
func (t *Transducer) MooreToMealy() (domain.Graph, []string, error) {
	g := t.graph.Clone()
	outputs := make(map[string]string, len(g.States))
	for i, s := range g.States {
		outputs[s.ID] = s.Output
		g.States[i].Output = ""
	}
	for i, e := range g.Edges {
		out := outputs[e.To]
		if out == "" {
			return domain.Graph{}, nil, fmt.Errorf("%w: state %q", domain.ErrMissingOutput, e.To)
		}
		for j := range e.Options {
			g.Edges[i].Options[j].Output = out
		}
	}
	return g, slices.Clone(t.starts), nil
}

// MealyToMoore splits every state once per distinct output entering it.
// Split states are named "q/o"; a state nothing enters keeps its id. A start
// entered by transitions also keeps an unsplit copy "q" without output, so
// the start list does not grow.
func (t *Transducer) MealyToMoore() (domain.Graph, []string, error) {
	incoming := make(map[string][]string)
	for _, e := range t.graph.Edges {
		for _, o := range e.Options {
			if o.Output == "" {
				return domain.Graph{}, nil, fmt.Errorf("%w: %s --%s--> %s", domain.ErrMissingOutput, e.From, o.Symbol, e.To)
			}
			if !slices.Contains(incoming[e.To], o.Output) {
				incoming[e.To] = append(incoming[e.To], o.Output)
			}
		}
	}
	isStart := func(id string) bool { return slices.Contains(t.starts, id) }
	sources := func(id string) []string {
		outs := incoming[id]
		if len(outs) == 0 {
			return []string{id}
		}
		ids := make([]string, 0, len(outs)+1)
		if isStart(id) {
			ids = append(ids, id)
		}
		for _, o := range outs {
			ids = append(ids, splitID(id, o))
		}
		return ids
	}

	var states []domain.State
	for _, s := range t.graph.States {
		outs := incoming[s.ID]
		if len(outs) == 0 || isStart(s.ID) {
			states = append(states, domain.State{ID: s.ID, Accepting: s.Accepting, Output: s.Output})
		}
		for _, o := range outs {
			states = append(states, domain.State{ID: splitID(s.ID, o), Accepting: s.Accepting, Output: o})
		}
	}

	var b graphBuilder
	for _, e := range t.graph.Edges {
		for _, o := range e.Options {
			opt := o
			opt.Output = ""
			opt.Push = slices.Clone(o.Push)
			for _, from := range sources(e.From) {
				b.link(from, splitID(e.To, o.Output), opt)
			}
		}
	}

	var starts []string
	for _, s := range t.starts {
		if !slices.Contains(starts, s) {
			starts = append(starts, s)
		}
	}
	return b.graph(states), starts, nil
}

func splitID(id, output string) string { return id + "/" + output }
