package runtime

import (
	"fmt"

	"github.com/aretw0/automata/pkg/domain"
)

// DFA runs a deterministic finite automaton. It holds a single configuration.
type DFA struct {
	*core
	current int
	stuck   bool
}

// NewDFA compiles graph and fails with ErrNonDeterministic unless it is a DFA.
func NewDFA(graph domain.Graph, starts []string, opts ...Option) (*DFA, error) {
	c, err := newCore(domain.KindDFA, graph, starts, opts)
	if err != nil {
		return nil, err
	}
	if len(c.table.Starts) != 1 {
		return nil, fmt.Errorf("dfa needs exactly one start state, got %d: %w", len(c.table.Starts), domain.ErrNonDeterministic)
	}
	if !c.deterministicCells() {
		return nil, fmt.Errorf("dfa has epsilon moves or parallel choices: %w", domain.ErrNonDeterministic)
	}
	d := &DFA{core: c}
	d.Restart()
	d.emitBuild()
	return d, nil
}

func (d *DFA) Restart() {
	d.counter = 0
	d.history = nil
	d.stuck = false
	d.current = d.table.Start()
}

func (d *DFA) SetInput(input []string) {
	d.setInput(input)
	d.Restart()
}

// Step takes the transition for the next symbol. Without one the machine is
// stuck: the configuration and counter stay where they are.
func (d *DFA) Step() (domain.StepResult, error) {
	if d.exhausted() {
		return d.result(), nil
	}

	symbol := d.symbol()
	cells := d.table.CellsFor(d.current, symbol)
	if len(cells) == 0 {
		d.stuck = true
		d.logger.Debug("dfa stuck", "state", d.table.States[d.current].ID, "symbol", symbol)
	} else {
		d.stuck = false
		d.current = cells[0].Target
		d.counter++
		d.record(d.counter, domain.PhaseByLetter, d.Configurations())
	}

	res := d.result()
	d.emitStep(symbol, res)
	return res, nil
}

func (d *DFA) Run() (domain.StepResult, error) {
	d.Restart()
	for !d.exhausted() && !d.stuck {
		if _, err := d.Step(); err != nil {
			return domain.StepResult{}, err
		}
	}
	return d.result(), nil
}

func (d *DFA) Configurations() []domain.Configuration {
	return []domain.Configuration{d.table.Configuration(d.current)}
}

func (d *DFA) IsDeterministic() bool { return true }

// NFAToDFA on a DFA renumbers its reachable part.
func (d *DFA) NFAToDFA() (domain.Graph, string, error) {
	return determinize(d.table, newClosureTable(d.table))
}

func (d *DFA) MinimizeDFA() (domain.Graph, string, error) {
	return minimize(d.table)
}

func (d *DFA) result() domain.StepResult {
	cfg := d.table.Configuration(d.current)
	return domain.StepResult{
		Configurations: []domain.Configuration{cfg},
		Step:           d.counter,
		Accepting:      !d.stuck && cfg.Accepting,
		Stuck:          d.stuck,
		Trace:          d.trace(),
	}
}
