// Package validator checks that a graph is structurally sound for a kind
// before an engine is built from it.
package validator

import (
	"fmt"
	"slices"

	"github.com/aretw0/automata/pkg/domain"
)

// ReasonNoStart marks the only failure an engine can still be built with:
// the result is an uninitialized engine.
const ReasonNoStart = "no start state"

// ValidateGraph reports every structural problem of graph for kind.
// It returns nil or an *AggregateError.
func ValidateGraph(kind domain.Kind, graph domain.Graph, starts []string) error {
	v := &validation{kind: kind, ids: make(map[string]domain.State, len(graph.States))}

	for i, s := range graph.States {
		switch {
		case s.ID == "":
			v.add(fmt.Sprintf("state #%d", i), "empty id", nil)
		case v.has(s.ID):
			v.add(s.ID, "duplicate state id", nil)
		default:
			v.ids[s.ID] = s
		}
	}

	if len(starts) == 0 {
		v.add("start", ReasonNoStart, nil)
	}
	for _, s := range starts {
		if !v.has(s) {
			v.add("start", "unknown state", s)
		}
	}
	if kind == domain.KindDFA && len(starts) > 1 {
		v.add("start", "a dfa has exactly one start state", len(starts))
	}

	incoming := make(map[string]int)
	bySymbol := make(map[[2]string]int)
	for _, e := range graph.Edges {
		key := e.From + "->" + e.To
		if !v.has(e.From) {
			v.add(key, "unknown source state", e.From)
		}
		if !v.has(e.To) {
			v.add(key, "unknown target state", e.To)
		}
		if len(e.Options) == 0 {
			v.add(key, "edge has no transition options", nil)
		}
		incoming[e.To] += len(e.Options)
		for _, o := range e.Options {
			v.option(key, o)
			bySymbol[[2]string{e.From, domain.NormalizeSymbol(o.Symbol)}]++
		}
	}

	if kind == domain.KindDFA {
		for k, n := range bySymbol {
			if n > 1 {
				v.add(k[0], "several transitions on one symbol", k[1])
			}
		}
	}
	if kind == domain.KindMoore || kind == domain.KindDMoore {
		for _, s := range graph.States {
			if incoming[s.ID] > 0 && s.Output == "" {
				v.add(s.ID, "moore state entered by a transition has no output", nil)
			}
		}
	}

	if len(v.errs) > 0 {
		return &AggregateError{Errors: v.errs}
	}
	return nil
}

// Unreachable lists the states no start can reach, in declaration order.
func Unreachable(graph domain.Graph, starts []string) []string {
	adj := make(map[string][]string)
	for _, e := range graph.Edges {
		adj[e.From] = append(adj[e.From], e.To)
	}

	visited := make(map[string]bool)
	queue := slices.Clone(starts)
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if visited[current] {
			continue
		}
		visited[current] = true
		for _, next := range adj[current] {
			if !visited[next] {
				queue = append(queue, next)
			}
		}
	}

	var out []string
	for _, s := range graph.States {
		if !visited[s.ID] {
			out = append(out, s.ID)
		}
	}
	return out
}

type validation struct {
	kind domain.Kind
	ids  map[string]domain.State
	errs []error
}

func (v *validation) has(id string) bool {
	_, ok := v.ids[id]
	return ok
}

func (v *validation) add(key, reason string, value any) {
	v.errs = append(v.errs, &ValidationError{Key: key, Reason: reason, Value: value})
}

func (v *validation) option(key string, o domain.TransitionOption) {
	symbol := domain.NormalizeSymbol(o.Symbol)
	if symbol == "" {
		v.add(key, "option has no symbol", nil)
	}

	switch v.kind {
	case domain.KindDFA:
		if symbol == domain.Epsilon {
			v.add(key, "a dfa has no epsilon transitions", nil)
		}
	case domain.KindNFA:
		if symbol == domain.Epsilon {
			v.add(key, "a plain nfa has no epsilon transitions, declare it as nfa-eps", nil)
		}
	case domain.KindPDA, domain.KindDPDA:
		if len(o.Push) > 1 && slices.ContainsFunc(o.Push, domain.IsEpsilon) {
			v.add(key, "epsilon inside a push list", o.Push)
		}
	case domain.KindTM:
		if o.Pop == "" {
			v.add(key, "tape transition reads nothing", nil)
		}
		if len(o.Push) != 1 || domain.IsEpsilon(o.Push[0]) {
			v.add(key, "tape transition must write exactly one symbol", o.Push)
		}
		if _, ok := domain.ParseMove(string(o.Move)); !ok {
			v.add(key, "tape transition must move L or R", o.Move)
		}
	case domain.KindMealy, domain.KindDMealy:
		if o.Output == "" {
			v.add(key, "mealy transition has no output", nil)
		}
	}
}
