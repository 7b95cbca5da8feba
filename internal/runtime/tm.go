package runtime

import (
	"fmt"
	"slices"

	"github.com/aretw0/automata/internal/compiler"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/memory"
)

// TM runs a deterministic single-tape Turing machine. The Pop field of an
// option is matched against the symbol under the head, whatever the label.
type TM struct {
	*core
	current int
	tape    *memory.Tape
	halted  bool
}

// NewTM compiles graph as a Turing machine. The tape is built from the input.
func NewTM(graph domain.Graph, starts []string, opts ...Option) (*TM, error) {
	c, err := newCore(domain.KindTM, graph, starts, opts)
	if err != nil {
		return nil, err
	}
	m := &TM{core: c}
	m.Restart()
	m.emitBuild()
	return m, nil
}

func (m *TM) Restart() {
	m.counter = 0
	m.halted = false
	m.current = m.table.Start()
	m.tape = memory.NewTape(m.input)
}

// SetInput rewrites the tape and restarts.
func (m *TM) SetInput(input []string) {
	m.setInput(input)
	m.Restart()
}

// Step executes one move. With no applicable option the machine halts and
// the configuration is left unchanged.
func (m *TM) Step() (domain.StepResult, error) {
	if !m.Initialized() {
		return domain.StepResult{}, nil
	}
	if !m.IsDeterministic() {
		return domain.StepResult{}, m.fail("step", domain.ErrNonDeterministic)
	}

	read := m.tape.Read()
	cell, ok := m.match(read)
	if !ok {
		m.halted = true
		res := m.result()
		m.emitStep(read, res)
		return res, nil
	}

	opt := cell.Option
	if len(opt.Push) != 1 || opt.Push[0] == domain.Epsilon {
		return domain.StepResult{}, m.fail("step", &domain.MalformedStackOperationError{
			From:   m.table.States[m.current].ID,
			Symbol: opt.Symbol,
			Push:   slices.Clone(opt.Push),
		})
	}
	move, ok := domain.ParseMove(string(opt.Move))
	if !ok {
		return domain.StepResult{}, m.fail("step", fmt.Errorf("%w: move %q on %s", domain.ErrMalformedStackOperation, opt.Move, m.table.States[m.current].ID))
	}

	m.tape.Write(opt.Push[0])
	m.tape.Move(move)
	m.current = cell.Target
	m.counter++
	m.halted = false

	res := m.result()
	m.emitStep(read, res)
	return res, nil
}

// Run is not supported: a Turing machine may never halt.
func (m *TM) Run() (domain.StepResult, error) {
	return domain.StepResult{}, m.fail("run", domain.ErrRunUnsupported)
}

func (m *TM) Configurations() []domain.Configuration {
	if !m.Initialized() {
		return nil
	}
	return []domain.Configuration{m.table.Configuration(m.current)}
}

// IsDeterministic reports whether no state has two options reading the same
// symbol with different outcomes.
func (m *TM) IsDeterministic() bool {
	for s := range m.table.States {
		cells := m.table.OutgoingCells(s)
		for i := range cells {
			for j := i + 1; j < len(cells); j++ {
				a, b := cells[i], cells[j]
				if a.Option.Pop != b.Option.Pop {
					continue
				}
				if a.Target != b.Target || a.Option.Move != b.Option.Move || !slices.Equal(a.Option.Push, b.Option.Push) {
					return false
				}
			}
		}
	}
	return true
}

func (m *TM) match(read string) (compiler.Cell, bool) {
	for _, c := range m.table.OutgoingCells(m.current) {
		if c.Option.Pop == read {
			return c, true
		}
	}
	return compiler.Cell{}, false
}

func (m *TM) result() domain.StepResult {
	cfg := m.table.Configuration(m.current)
	return domain.StepResult{
		Configurations: []domain.Configuration{cfg},
		Step:           m.counter,
		Accepting:      cfg.Accepting,
		Halted:         m.halted,
		Tape:           m.tape.Snapshot(),
	}
}
