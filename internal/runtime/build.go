package runtime

import (
	"fmt"

	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/ports"
)

// Build constructs the engine for kind. Deterministic pushdown and transducer
// kinds are wrapped by Strict.
func Build(kind domain.Kind, graph domain.Graph, starts []string, opts ...Option) (ports.Automaton, error) {
	switch kind {
	case domain.KindDFA:
		return NewDFA(graph, starts, opts...)
	case domain.KindNFA, domain.KindENFA:
		return NewNFA(kind, graph, starts, opts...)
	case domain.KindPDA:
		return NewPDA(graph, starts, opts...)
	case domain.KindDPDA:
		p, err := newPDA(kind, graph, starts, opts)
		if err != nil {
			return nil, err
		}
		return Strict(p, kind), nil
	case domain.KindTM:
		return NewTM(graph, starts, opts...)
	case domain.KindMealy, domain.KindMoore:
		return NewTransducer(kind, graph, starts, opts...)
	case domain.KindDMealy, domain.KindDMoore:
		t, err := NewTransducer(kind, graph, starts, opts...)
		if err != nil {
			return nil, err
		}
		return Strict(t, kind), nil
	}
	return nil, fmt.Errorf("%w: %q", domain.ErrUnknownKind, kind)
}
