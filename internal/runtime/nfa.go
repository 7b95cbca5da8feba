package runtime

import (
	"slices"

	"github.com/aretw0/automata/pkg/domain"
)

// NFA runs nondeterministic finite automata, with or without epsilon moves.
// The configuration set is kept epsilon-closed and sorted by logical index.
type NFA struct {
	*core
	closures closureTable
	current  []int
}

// NewNFA compiles graph as an NFA of the given kind (nfa or nfa-eps).
func NewNFA(kind domain.Kind, graph domain.Graph, starts []string, opts ...Option) (*NFA, error) {
	c, err := newCore(kind, graph, starts, opts)
	if err != nil {
		return nil, err
	}
	n := &NFA{core: c, closures: newClosureTable(c.table)}
	n.Restart()
	n.emitBuild()
	return n, nil
}

func (n *NFA) Restart() {
	n.counter = 0
	n.history = nil
	n.current = n.closures.closeSet(n.table.Starts)
}

func (n *NFA) SetInput(input []string) {
	n.setInput(input)
	n.Restart()
}

// Closure returns the epsilon closure of the given states.
func (n *NFA) Closure(states []string) []string {
	idx := make([]int, 0, len(states))
	for _, id := range states {
		if i, ok := n.table.StateIndex(id); ok {
			idx = append(idx, i)
		}
	}
	return n.ids(n.closures.closeSet(idx))
}

func (n *NFA) Step() (domain.StepResult, error) {
	if !n.Initialized() {
		return domain.StepResult{}, nil
	}
	if n.exhausted() {
		n.current = n.closures.closeSet(n.current)
		return n.result(), nil
	}

	symbol := n.symbol()
	var moved []int
	if sym, ok := n.table.Alphabet.Index(symbol); ok && symbol != domain.Epsilon {
		moved = image(n.table, n.current, sym)
	}
	n.counter++
	n.record(n.counter, domain.PhaseByLetter, n.export(moved))
	n.current = n.closures.closeSet(moved)
	if n.table.HasEpsilon() {
		n.record(n.counter, domain.PhasePostEpsilon, n.export(n.current))
	}

	res := n.result()
	n.emitStep(symbol, res)
	return res, nil
}

func (n *NFA) Run() (domain.StepResult, error) {
	n.Restart()
	if !n.Initialized() {
		return domain.StepResult{}, nil
	}
	for !n.exhausted() {
		if _, err := n.Step(); err != nil {
			return domain.StepResult{}, err
		}
	}
	return n.result(), nil
}

func (n *NFA) Configurations() []domain.Configuration {
	return n.export(n.current)
}

func (n *NFA) export(set []int) []domain.Configuration {
	out := make([]domain.Configuration, len(set))
	for i, s := range set {
		out[i] = n.table.Configuration(s)
	}
	return out
}

// IsDeterministic reports whether the graph is a DFA: one start, no epsilon
// moves and at most one option per cell.
func (n *NFA) IsDeterministic() bool {
	return len(n.table.Starts) == 1 && n.deterministicCells()
}

func (n *NFA) NFAToDFA() (domain.Graph, string, error) {
	return determinize(n.table, n.closures)
}

func (n *NFA) MinimizeDFA() (domain.Graph, string, error) {
	return minimize(n.table)
}

func (n *NFA) result() domain.StepResult {
	configs := n.Configurations()
	return domain.StepResult{
		Configurations: configs,
		Step:           n.counter,
		Accepting:      slices.ContainsFunc(configs, func(c domain.Configuration) bool { return c.Accepting }),
		Trace:          n.trace(),
	}
}

func (n *NFA) ids(set []int) []string {
	out := make([]string, len(set))
	for i, s := range set {
		out[i] = n.table.States[s].ID
	}
	return out
}
