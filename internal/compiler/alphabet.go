package compiler

import "github.com/aretw0/automata/pkg/domain"

// Alphabet is a bijection between symbol labels and dense indices.
// Indices follow first-seen order and never change once assigned.
type Alphabet struct {
	symbols []string
	index   map[string]int
}

func newAlphabet() *Alphabet {
	return &Alphabet{index: make(map[string]int)}
}

func (a *Alphabet) add(sym string) int {
	if i, ok := a.index[sym]; ok {
		return i
	}
	a.index[sym] = len(a.symbols)
	a.symbols = append(a.symbols, sym)
	return len(a.symbols) - 1
}

// Index returns the dense index of sym.
func (a *Alphabet) Index(sym string) (int, bool) {
	i, ok := a.index[sym]
	return i, ok
}

// Symbol returns the label at index i.
func (a *Alphabet) Symbol(i int) string { return a.symbols[i] }

func (a *Alphabet) Len() int { return len(a.symbols) }

// Symbols returns every label in index order.
func (a *Alphabet) Symbols() []string {
	return append([]string(nil), a.symbols...)
}

// Letters returns every label except Epsilon, in index order.
func (a *Alphabet) Letters() []string {
	out := make([]string, 0, len(a.symbols))
	for _, s := range a.symbols {
		if s != domain.Epsilon {
			out = append(out, s)
		}
	}
	return out
}

// EpsilonIndex returns the index of Epsilon if it is part of the alphabet.
func (a *Alphabet) EpsilonIndex() (int, bool) {
	return a.Index(domain.Epsilon)
}
