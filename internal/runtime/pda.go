package runtime

import (
	"slices"
	"strings"

	"github.com/aretw0/automata/internal/compiler"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/memory"
)

// stackConfig is one branch of a pushdown automaton. Branches never share stacks.
type stackConfig struct {
	state   int
	stack   *memory.Stack[string]
	lineage *domain.Lineage
}

// configKey identifies a branch by state and stack contents.
type configKey struct {
	state int
	stack string
}

func (c stackConfig) key() configKey {
	return configKey{state: c.state, stack: strings.Join(c.stack.Items(), "\x1f")}
}

// configSet is an insertion-ordered set of branches.
type configSet struct {
	items []stackConfig
	seen  map[configKey]struct{}
}

func newConfigSet() *configSet {
	return &configSet{seen: make(map[configKey]struct{})}
}

// add keeps the first branch seen for a key.
func (s *configSet) add(c stackConfig) bool {
	k := c.key()
	if _, ok := s.seen[k]; ok {
		return false
	}
	s.seen[k] = struct{}{}
	s.items = append(s.items, c)
	return true
}

// PDA runs pushdown automata with final-state or empty-stack acceptance.
type PDA struct {
	*core
	acceptance domain.Acceptance
	current    []stackConfig
}

// NewPDA compiles graph as a nondeterministic pushdown automaton.
func NewPDA(graph domain.Graph, starts []string, opts ...Option) (*PDA, error) {
	return newPDA(domain.KindPDA, graph, starts, opts)
}

func newPDA(kind domain.Kind, graph domain.Graph, starts []string, opts []Option) (*PDA, error) {
	c, err := newCore(kind, graph, starts, opts)
	if err != nil {
		return nil, err
	}
	p := &PDA{core: c, acceptance: c.cfg.acceptance}
	p.Restart()
	p.emitBuild()
	return p, nil
}

func (p *PDA) Restart() {
	p.counter = 0
	p.history = nil
	p.current = p.current[:0]
	for _, s := range p.table.Starts {
		p.current = append(p.current, stackConfig{state: s, stack: memory.NewStack(domain.Bottom)})
	}
}

// RestartWithAcceptance switches the acceptance mode and restarts.
func (p *PDA) RestartWithAcceptance(mode domain.Acceptance) {
	p.acceptance = mode
	p.Restart()
}

func (p *PDA) Acceptance() domain.Acceptance { return p.acceptance }

func (p *PDA) SetInput(input []string) {
	p.setInput(input)
	p.Restart()
}

// Step runs an epsilon closure, consumes one symbol and closes again.
// At the end of input it only closes the current set.
func (p *PDA) Step() (domain.StepResult, error) {
	if !p.Initialized() {
		return domain.StepResult{}, nil
	}
	if p.exhausted() {
		closed, err := p.closure(p.current)
		if err != nil {
			return domain.StepResult{}, p.fail("step", err)
		}
		p.current = closed
		return p.result(), nil
	}

	symbol := p.symbol()
	step := p.counter + 1
	pre, err := p.closure(p.current)
	if err != nil {
		return domain.StepResult{}, p.fail("step", err)
	}
	byLetter, err := p.consume(pre, symbol)
	if err != nil {
		return domain.StepResult{}, p.fail("step", err)
	}
	post, err := p.closure(byLetter)
	if err != nil {
		return domain.StepResult{}, p.fail("step", err)
	}

	p.recordSet(step, domain.PhasePreEpsilon, pre)
	p.recordSet(step, domain.PhaseByLetter, byLetter)
	p.recordSet(step, domain.PhasePostEpsilon, post)
	p.current = post
	p.counter = step

	res := p.result()
	p.emitStep(symbol, res)
	return res, nil
}

func (p *PDA) Run() (domain.StepResult, error) {
	p.Restart()
	if !p.Initialized() {
		return domain.StepResult{}, nil
	}
	for !p.exhausted() {
		if _, err := p.Step(); err != nil {
			return domain.StepResult{}, err
		}
	}
	// Close once more so that epsilon-only acceptance is seen on empty input.
	return p.Step()
}

func (p *PDA) Configurations() []domain.Configuration {
	return p.export(p.current)
}

// IsDeterministic reports whether no epsilon moves exist and no two options
// of a cell can match the same stack top.
func (p *PDA) IsDeterministic() bool {
	if len(p.table.Starts) > 1 || p.table.HasEpsilon() {
		return false
	}
	for _, row := range p.table.Matrix {
		for _, cell := range row {
			if conflicting(cell) {
				return false
			}
		}
	}
	return true
}

func conflicting(cell []compiler.Cell) bool {
	for i := range cell {
		for j := i + 1; j < len(cell); j++ {
			a, b := cell[i].Option, cell[j].Option
			if a.PopsAny() || b.PopsAny() || a.Pop == b.Pop {
				return true
			}
		}
	}
	return false
}

// NFAToDFA determinizes the state skeleton, ignoring stacks.
func (p *PDA) NFAToDFA() (domain.Graph, string, error) {
	return determinize(p.table, newClosureTable(p.table))
}

// MinimizeDFA minimizes the state skeleton, ignoring stacks.
func (p *PDA) MinimizeDFA() (domain.Graph, string, error) {
	return minimize(p.table)
}

// closure follows epsilon options transitively. A branch is revisited only
// when it reaches a new (state, stack) pair.
func (p *PDA) closure(from []stackConfig) ([]stackConfig, error) {
	set := newConfigSet()
	for _, c := range from {
		set.add(c)
	}
	for i := 0; i < len(set.items); i++ {
		if len(set.items) >= p.cfg.closureLimit {
			p.logger.Warn("epsilon closure limit reached", "limit", p.cfg.closureLimit, "step", p.counter)
			break
		}
		cfg := set.items[i]
		for _, cell := range p.table.EpsilonCells(cfg.state) {
			next, ok, err := p.apply(cfg, cell)
			if err != nil {
				return nil, err
			}
			if ok {
				set.add(next)
			}
		}
	}
	return set.items, nil
}

// consume applies the options labeled symbol to every branch.
func (p *PDA) consume(from []stackConfig, symbol string) ([]stackConfig, error) {
	if symbol == domain.Epsilon {
		return nil, nil
	}
	set := newConfigSet()
	for _, cfg := range from {
		for _, cell := range p.table.CellsFor(cfg.state, symbol) {
			next, ok, err := p.apply(cfg, cell)
			if err != nil {
				return nil, err
			}
			if ok {
				set.add(next)
			}
		}
	}
	return set.items, nil
}

// apply takes one option from cfg. An exact pop must match the top; the push
// list goes on reversed so that its first symbol ends on top.
func (p *PDA) apply(cfg stackConfig, cell compiler.Cell) (stackConfig, bool, error) {
	opt := cell.Option
	stack := cfg.stack.Clone()
	if !opt.PopsAny() {
		top, ok := stack.Peek()
		if !ok || top != opt.Pop {
			return stackConfig{}, false, nil
		}
		stack.Pop()
	}
	if !opt.PushesNothing() {
		if slices.Contains(opt.Push, domain.Epsilon) {
			return stackConfig{}, false, &domain.MalformedStackOperationError{
				From:   p.table.States[cfg.state].ID,
				Symbol: opt.Symbol,
				Push:   slices.Clone(opt.Push),
			}
		}
		for i := len(opt.Push) - 1; i >= 0; i-- {
			stack.Push(opt.Push[i])
		}
	}
	return stackConfig{
		state: cell.Target,
		stack: stack,
		lineage: &domain.Lineage{
			From:      p.table.States[cfg.state].ID,
			Via:       opt.Symbol,
			PrevStack: cfg.stack.Items(),
		},
	}, true, nil
}

func (p *PDA) accepts(set []stackConfig) bool {
	for _, c := range set {
		switch p.acceptance {
		case domain.ByEmptyStack:
			top, _ := c.stack.Peek()
			if c.stack.IsEmpty() || (c.stack.Len() == 1 && top == domain.Bottom) {
				return true
			}
		default:
			if p.table.States[c.state].Accepting {
				return true
			}
		}
	}
	return false
}

func (p *PDA) recordSet(step int, phase domain.Phase, set []stackConfig) {
	p.record(step, phase, p.export(set))
}

func (p *PDA) export(set []stackConfig) []domain.Configuration {
	out := make([]domain.Configuration, len(set))
	for i, c := range set {
		cfg := p.table.Configuration(c.state)
		cfg.Stack = c.stack.Items()
		if c.lineage != nil {
			l := *c.lineage
			l.PrevStack = slices.Clone(l.PrevStack)
			cfg.Lineage = &l
		}
		out[i] = cfg
	}
	return out
}

func (p *PDA) result() domain.StepResult {
	return domain.StepResult{
		Configurations: p.export(p.current),
		Step:           p.counter,
		Accepting:      p.accepts(p.current),
		Trace:          p.trace(),
	}
}
