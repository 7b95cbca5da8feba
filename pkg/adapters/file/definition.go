package file

import (
	"fmt"
	"slices"

	"github.com/aretw0/automata/pkg/domain"
)

// Definition is the on-disk form of a machine.
// Keys follow the lower-case names used in YAML and JSON documents.
type Definition struct {
	Kind       string         `json:"kind" yaml:"kind" mapstructure:"kind"`
	Acceptance string         `json:"acceptance,omitempty" yaml:"acceptance,omitempty" mapstructure:"acceptance"`
	Starts     []string       `json:"starts" yaml:"starts" mapstructure:"starts"`
	Input      []string       `json:"input,omitempty" yaml:"input,omitempty" mapstructure:"input"`
	States     []domain.State `json:"states" yaml:"states" mapstructure:"states"`
	Edges      []domain.Edge  `json:"edges" yaml:"edges" mapstructure:"edges"`
}

// FromGraph wraps a graph produced in memory (for instance by a conversion).
func FromGraph(kind domain.Kind, graph domain.Graph, starts []string) Definition {
	g := graph.Clone()
	return Definition{
		Kind:   string(kind),
		Starts: slices.Clone(starts),
		States: g.States,
		Edges:  g.Edges,
	}
}

// MachineKind parses the declared kind.
func (d Definition) MachineKind() (domain.Kind, error) {
	return domain.ParseKind(d.Kind)
}

// AcceptanceMode parses the declared acceptance mode; empty means final state.
func (d Definition) AcceptanceMode() (domain.Acceptance, error) {
	return domain.ParseAcceptance(d.Acceptance)
}

// Graph returns a copy of the machine graph with epsilon spellings normalised.
func (d Definition) Graph() domain.Graph {
	g := domain.Graph{States: d.States, Edges: d.Edges}.Clone()
	for i := range g.Edges {
		for j := range g.Edges[i].Options {
			opt := &g.Edges[i].Options[j]
			opt.Symbol = domain.NormalizeSymbol(opt.Symbol)
			opt.Pop = domain.NormalizeSymbol(opt.Pop)
			for k := range opt.Push {
				opt.Push[k] = domain.NormalizeSymbol(opt.Push[k])
			}
		}
	}
	return g
}

// InputSymbols returns the declared input with epsilon spellings dropped.
func (d Definition) InputSymbols() []string {
	out := make([]string, 0, len(d.Input))
	for _, s := range d.Input {
		if domain.IsEpsilon(s) {
			continue
		}
		out = append(out, s)
	}
	return out
}

func (d Definition) check() error {
	if d.Kind == "" {
		return fmt.Errorf("definition: missing kind")
	}
	if _, err := d.MachineKind(); err != nil {
		return fmt.Errorf("definition: %w", err)
	}
	if _, err := d.AcceptanceMode(); err != nil {
		return fmt.Errorf("definition: %w", err)
	}
	for _, e := range d.Edges {
		for _, o := range e.Options {
			if o.Move == "" {
				continue
			}
			if _, ok := domain.ParseMove(string(o.Move)); !ok {
				return fmt.Errorf("definition: edge %s->%s: invalid move %q", e.From, e.To, o.Move)
			}
		}
	}
	return nil
}
