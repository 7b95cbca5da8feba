package cli

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/aretw0/automata/internal/validator"
	"github.com/aretw0/automata/pkg/adapters/file"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/session"
)

// MachineOptions carries the CLI flags that shape an engine.
type MachineOptions struct {
	Logger       *slog.Logger
	Hooks        domain.Hooks
	Acceptance   string // overrides the definition when set
	ClosureLimit int
	Input        []string // overrides the definition input when non-nil
}

// Machine is a loaded definition bound to a live session.
type Machine struct {
	Path       string
	Definition file.Definition
	Kind       domain.Kind
	Session    *session.Session

	opts MachineOptions
}

// Reloaded reports what a reload changed.
type Reloaded struct {
	Diff       *domain.GraphDiff // nil when the topology is unchanged
	Input      []string          // the new input when it changed
	Acceptance *domain.Acceptance
}

// Changed reports whether the machine has to run again.
func (r Reloaded) Changed() bool {
	return r.Diff != nil || r.Input != nil || r.Acceptance != nil
}

// LoadMachine reads, validates and builds the machine stored at path.
// A definition without start states still loads; stepping it fails with domain.ErrUninitialized.
func LoadMachine(path string, opts MachineOptions) (*Machine, error) {
	def, err := file.Load(path)
	if err != nil {
		return nil, err
	}
	m, err := NewMachine(def, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	m.Path = path
	return m, nil
}

// NewMachine validates def and opens a session on it.
func NewMachine(def file.Definition, opts MachineOptions) (*Machine, error) {
	kind, err := def.MachineKind()
	if err != nil {
		return nil, err
	}
	mode, err := def.AcceptanceMode()
	if err != nil {
		return nil, err
	}
	if opts.Acceptance != "" {
		if mode, err = domain.ParseAcceptance(opts.Acceptance); err != nil {
			return nil, err
		}
	}

	graph := def.Graph()
	if err := validator.WithoutReason(validator.ValidateGraph(kind, graph, def.Starts), validator.ReasonNoStart); err != nil {
		return nil, err
	}

	sessOpts := []session.Option{
		session.WithHooks(opts.Hooks),
		session.WithAcceptance(mode),
		session.WithClosureLimit(opts.ClosureLimit),
	}
	if opts.Logger != nil {
		sessOpts = append(sessOpts, session.WithLogger(opts.Logger))
	}
	sess, err := session.New(kind, graph, def.Starts, sessOpts...)
	if err != nil {
		return nil, err
	}

	input := def.InputSymbols()
	if opts.Input != nil {
		input = opts.Input
	}
	sess.SetInput(input)

	return &Machine{Definition: def, Kind: kind, Session: sess, opts: opts}, nil
}

// Reload re-reads the definition file and updates the session in place.
// Input and acceptance changes are applied unless a flag overrides them.
func (m *Machine) Reload() (Reloaded, error) {
	def, err := file.Load(m.Path)
	if err != nil {
		return Reloaded{}, err
	}
	kind, err := def.MachineKind()
	if err != nil {
		return Reloaded{}, err
	}
	if kind != m.Kind {
		return Reloaded{}, fmt.Errorf("kind changed from %s to %s, restart to switch", m.Kind, kind)
	}
	mode, err := def.AcceptanceMode()
	if err != nil {
		return Reloaded{}, err
	}
	graph := def.Graph()
	if err := validator.WithoutReason(validator.ValidateGraph(kind, graph, def.Starts), validator.ReasonNoStart); err != nil {
		return Reloaded{}, err
	}

	var r Reloaded
	if r.Diff, err = m.Session.Update(graph, def.Starts); err != nil {
		return Reloaded{}, err
	}
	if m.opts.Input == nil {
		if input := def.InputSymbols(); !slices.Equal(input, m.Definition.InputSymbols()) {
			m.Session.SetInput(input)
			r.Input = input
		}
	}
	if m.opts.Acceptance == "" {
		if prev, _ := m.Definition.AcceptanceMode(); mode != prev {
			m.Session.SetAcceptance(mode)
			r.Acceptance = &mode
		}
	}
	m.Definition = def
	return r, nil
}

// DefaultMaxMoves caps Turing machine runs.
const DefaultMaxMoves = 10000

// Execute consumes the whole input. Turing machines cannot Run, so they are
// stepped until they halt, giving up after maxMoves moves (DefaultMaxMoves when 0).
func (m *Machine) Execute(maxMoves int) (domain.StepResult, error) {
	if m.Kind != domain.KindTM {
		return m.Session.Run()
	}
	if maxMoves <= 0 {
		maxMoves = DefaultMaxMoves
	}
	m.Session.Restart()
	var res domain.StepResult
	for i := 0; i < maxMoves; i++ {
		var err error
		if res, err = m.Session.Step(); err != nil {
			return res, err
		}
		if res.Halted {
			return res, nil
		}
	}
	return res, fmt.Errorf("machine did not halt after %d moves", maxMoves)
}
