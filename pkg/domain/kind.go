package domain

import (
	"fmt"
	"strings"
)

// Kind names the automaton family an engine interprets a graph as.
type Kind string

const (
	KindDFA    Kind = "dfa"
	KindNFA    Kind = "nfa"
	KindENFA   Kind = "nfa-eps"
	KindPDA    Kind = "pda"
	KindDPDA   Kind = "dpda"
	KindTM     Kind = "tm"
	KindMealy  Kind = "mealy"
	KindDMealy Kind = "dmealy"
	KindMoore  Kind = "moore"
	KindDMoore Kind = "dmoore"
)

// Kinds lists every supported kind in a stable order.
var Kinds = []Kind{
	KindDFA, KindNFA, KindENFA,
	KindPDA, KindDPDA, KindTM,
	KindMealy, KindDMealy, KindMoore, KindDMoore,
}

// ParseKind resolves a kind name case-insensitively.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// UsesStack reports whether configurations of this kind carry a stack.
func (k Kind) UsesStack() bool {
	return k == KindPDA || k == KindDPDA
}

// IsTransducer reports whether the kind emits output.
func (k Kind) IsTransducer() bool {
	switch k {
	case KindMealy, KindDMealy, KindMoore, KindDMoore:
		return true
	}
	return false
}

// IsStrict reports whether the kind only runs on deterministic tables.
func (k Kind) IsStrict() bool {
	switch k {
	case KindDFA, KindDPDA, KindTM, KindDMealy, KindDMoore:
		return true
	}
	return false
}
