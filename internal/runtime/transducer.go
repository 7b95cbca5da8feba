package runtime

import (
	"fmt"
	"slices"

	"github.com/aretw0/automata/pkg/domain"
)

type outcome struct {
	target int
	output string
}

// Transducer runs Mealy and Moore machines. Moore outputs are copied onto the
// options entering each state so that both kinds step the same way.
type Transducer struct {
	*core
	current []int
	output  []string
	stuck   bool
}

// NewTransducer compiles graph as a Mealy or Moore machine of the given kind.
func NewTransducer(kind domain.Kind, graph domain.Graph, starts []string, opts ...Option) (*Transducer, error) {
	if !kind.IsTransducer() {
		return nil, fmt.Errorf("%w: %q is not a transducer", domain.ErrUnknownKind, kind)
	}
	c, err := newCore(kind, graph, starts, opts)
	if err != nil {
		return nil, err
	}
	if kind == domain.KindMoore || kind == domain.KindDMoore {
		copyStateOutputs(c)
	}
	t := &Transducer{core: c}
	t.Restart()
	t.emitBuild()
	return t, nil
}

func copyStateOutputs(c *core) {
	for _, row := range c.table.Matrix {
		for _, cell := range row {
			for i := range cell {
				cell[i].Option.Output = c.table.States[cell[i].Target].Output
			}
		}
	}
	for i, e := range c.graph.Edges {
		target, _ := c.graph.State(e.To)
		for j := range e.Options {
			c.graph.Edges[i].Options[j].Output = target.Output
		}
	}
}

func (t *Transducer) Restart() {
	t.counter = 0
	t.history = nil
	t.output = nil
	t.stuck = false
	t.current = slices.Clone(t.table.Starts)
	slices.Sort(t.current)
}

func (t *Transducer) SetInput(input []string) {
	t.setInput(input)
	t.Restart()
}

// Step emits the outputs of every option matched by the next symbol.
// When nothing matches the machine is stuck and keeps its configuration.
func (t *Transducer) Step() (domain.StepResult, error) {
	if !t.Initialized() {
		return domain.StepResult{}, nil
	}
	if t.exhausted() {
		return t.result(nil), nil
	}

	symbol := t.symbol()
	mask := make([]bool, len(t.table.States))
	seen := make(map[outcome]struct{})
	var emitted []string
	matched := false
	if symbol != domain.Epsilon {
		for _, s := range t.current {
			for _, c := range t.table.CellsFor(s, symbol) {
				if c.Option.Output == "" {
					return domain.StepResult{}, t.fail("step", fmt.Errorf("%w: %s --%s--> %s",
						domain.ErrMissingOutput, t.table.States[s].ID, symbol, t.table.States[c.Target].ID))
				}
				matched = true
				mask[c.Target] = true
				// Branches meeting in the same state with the same output emit once.
				o := outcome{c.Target, c.Option.Output}
				if _, dup := seen[o]; !dup {
					seen[o] = struct{}{}
					emitted = append(emitted, c.Option.Output)
				}
			}
		}
	}

	if !matched {
		t.stuck = true
	} else {
		t.stuck = false
		t.current = collect(mask)
		t.output = append(t.output, emitted...)
		t.counter++
		t.record(t.counter, domain.PhaseByLetter, t.Configurations())
	}

	res := t.result(emitted)
	t.emitStep(symbol, res)
	return res, nil
}

// Run restarts, consumes the input and returns the whole output sequence.
func (t *Transducer) Run() (domain.StepResult, error) {
	t.Restart()
	if !t.Initialized() {
		return domain.StepResult{}, nil
	}
	for !t.exhausted() && !t.stuck {
		if _, err := t.Step(); err != nil {
			return domain.StepResult{}, err
		}
	}
	return t.result(slices.Clone(t.output)), nil
}

func (t *Transducer) Configurations() []domain.Configuration {
	out := make([]domain.Configuration, len(t.current))
	for i, s := range t.current {
		out[i] = t.table.Configuration(s)
	}
	return out
}

// IsDeterministic reports whether each (state, symbol) has at most one
// distinct (target, output) outcome and there is a single start.
func (t *Transducer) IsDeterministic() bool {
	if len(t.table.Starts) > 1 {
		return false
	}
	for _, row := range t.table.Matrix {
		for _, cell := range row {
			seen := make(map[outcome]struct{}, len(cell))
			for _, c := range cell {
				seen[outcome{c.Target, c.Option.Output}] = struct{}{}
			}
			if len(seen) > 1 {
				return false
			}
		}
	}
	return true
}

func (t *Transducer) result(output []string) domain.StepResult {
	configs := t.Configurations()
	return domain.StepResult{
		Configurations: configs,
		Step:           t.counter,
		Accepting:      slices.ContainsFunc(configs, func(c domain.Configuration) bool { return c.Accepting }),
		Stuck:          t.stuck,
		Output:         output,
		Trace:          t.trace(),
	}
}
