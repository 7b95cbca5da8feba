package runtime

import (
	"log/slog"
	"slices"

	"github.com/aretw0/automata/internal/compiler"
	"github.com/aretw0/automata/pkg/domain"
)

// core holds what every engine shares: the compiled table, the graph snapshot,
// the input, the step counter and the history trace.
type core struct {
	kind   domain.Kind
	table  *compiler.Table
	graph  domain.Graph
	starts []string

	input   []string
	counter int
	history []domain.PhaseSet

	logger *slog.Logger
	hooks  domain.Hooks
	cfg    config
}

func newCore(kind domain.Kind, graph domain.Graph, starts []string, opts []Option) (*core, error) {
	cfg := newConfig(opts)
	table, err := compiler.Compile(graph, starts)
	if err != nil {
		return nil, err
	}

	c := &core{
		kind:   kind,
		table:  table,
		graph:  graph.Clone(),
		starts: slices.Clone(starts),
		input:  cfg.input,
		logger: cfg.logger.With("kind", string(kind)),
		hooks:  cfg.hooks,
		cfg:    cfg,
	}
	if len(table.Starts) == 0 {
		c.logger.Warn("automaton has no start state; steps will return empty results")
	}
	return c, nil
}

func (c *core) emitBuild() {
	starts := make([]string, len(c.table.Starts))
	for i, s := range c.table.Starts {
		starts[i] = c.table.States[s].ID
	}
	c.hooks.Build(&domain.BuildEvent{
		EventBase: domain.NewEventBase(domain.EventBuild, c.kind),
		States:    len(c.table.States),
		Alphabet:  c.table.Alphabet.Symbols(),
		Starts:    starts,
	})
	c.logger.Debug("automaton built",
		"states", len(c.table.States),
		"alphabet", c.table.Alphabet.Len(),
		"starts", starts)
}

func (c *core) emitStep(symbol string, res domain.StepResult) {
	c.hooks.Stepped(&domain.StepEvent{
		EventBase:      domain.NewEventBase(domain.EventStep, c.kind),
		Step:           res.Step,
		Symbol:         symbol,
		Configurations: len(res.Configurations),
		Accepting:      res.Accepting,
		Stuck:          res.Stuck,
		Halted:         res.Halted,
	})
	c.logger.Debug("step",
		"step", res.Step,
		"symbol", symbol,
		"configurations", len(res.Configurations),
		"accepting", res.Accepting)
}

// record appends a phase to the history trace and reports it through the hooks.
func (c *core) record(step int, phase domain.Phase, configs []domain.Configuration) {
	c.history = append(c.history, domain.PhaseSet{Step: step, Phase: phase, Configurations: configs})
	c.hooks.Phase(&domain.PhaseEvent{
		EventBase:      domain.NewEventBase(domain.EventPhase, c.kind),
		Step:           step,
		Phase:          phase,
		Configurations: len(configs),
	})
}

func (c *core) trace() []domain.PhaseSet { return slices.Clone(c.history) }

// fail reports err through the hooks and returns it.
func (c *core) fail(op string, err error) error {
	c.hooks.Error(&domain.ErrorEvent{
		EventBase: domain.NewEventBase(domain.EventError, c.kind),
		Op:        op,
		Err:       err,
	})
	c.logger.Debug("operation failed", "op", op, "error", err)
	return err
}

func (c *core) Kind() domain.Kind { return c.kind }

func (c *core) Initialized() bool { return len(c.table.Starts) > 0 }

func (c *core) HasEpsilon() bool { return c.table.HasEpsilon() }

// Table exposes the compiled table for validation and inspection.
func (c *core) Table() *compiler.Table { return c.table }

// Graph returns a copy of the graph snapshot the engine was built from.
func (c *core) Graph() domain.Graph { return c.graph.Clone() }

func (c *core) exhausted() bool { return c.counter >= len(c.input) }

func (c *core) symbol() string {
	if c.exhausted() {
		return ""
	}
	return c.input[c.counter]
}

func (c *core) setInput(input []string) {
	c.input = slices.Clone(input)
}

// deterministicCells reports whether every cell has at most one option
// and no epsilon moves exist.
func (c *core) deterministicCells() bool {
	if c.table.HasEpsilon() {
		return false
	}
	for _, row := range c.table.Matrix {
		for _, cell := range row {
			if len(cell) > 1 {
				return false
			}
		}
	}
	return true
}
