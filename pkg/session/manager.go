package session

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/aretw0/automata/internal/logging"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/ports"
	"github.com/aretw0/automata/pkg/registry"
)

// Session binds an engine to the latest version of a graph.
type Session struct {
	kind   domain.Kind
	graph  domain.Graph
	starts []string
	input  []string

	registry *registry.Registry
	cfg      registry.Config
	logger   *slog.Logger

	engine   ports.Automaton
	rebuilds int
}

// Option configures the Session.
type Option func(*Session)

// WithLogger configures a logger for the Session and its engines.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithHooks registers hooks on every engine the Session builds.
func WithHooks(hooks domain.Hooks) Option {
	return func(s *Session) {
		s.cfg.Hooks = hooks
	}
}

// WithAcceptance sets the initial acceptance mode of pushdown engines.
func WithAcceptance(mode domain.Acceptance) Option {
	return func(s *Session) {
		s.cfg.Acceptance = mode
	}
}

// WithClosureLimit caps pushdown epsilon closures.
func WithClosureLimit(n int) Option {
	return func(s *Session) {
		s.cfg.ClosureLimit = n
	}
}

// WithRegistry replaces the built-in kind registry.
func WithRegistry(r *registry.Registry) Option {
	return func(s *Session) {
		s.registry = r
	}
}

// New builds the first engine for graph.
func New(kind domain.Kind, graph domain.Graph, starts []string, opts ...Option) (*Session, error) {
	s := &Session{
		kind:     kind,
		graph:    graph.Clone(),
		starts:   slices.Clone(starts),
		registry: registry.Default(),
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("kind", string(kind))
	s.cfg.Logger = s.logger

	engine, err := s.build()
	if err != nil {
		return nil, err
	}
	s.engine = engine
	return s, nil
}

func (s *Session) build() (ports.Automaton, error) {
	cfg := s.cfg
	cfg.Input = s.input
	engine, err := s.registry.Build(s.kind, s.graph, s.starts, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s engine: %w", s.kind, err)
	}
	return engine, nil
}

// Update replaces the graph. The engine is rebuilt (and restarted) only when
// the topology or the start list differs; the returned diff is nil otherwise.
// On a build error the previous graph and engine stay in place.
func (s *Session) Update(graph domain.Graph, starts []string) (*domain.GraphDiff, error) {
	diff := domain.DiffGraphs(s.graph, graph)
	startsChanged := !slices.Equal(s.starts, starts)
	if diff == nil && !startsChanged {
		return nil, nil
	}
	if diff == nil {
		diff = &domain.GraphDiff{}
	}

	prevGraph, prevStarts := s.graph, s.starts
	s.graph, s.starts = graph.Clone(), slices.Clone(starts)
	engine, err := s.build()
	if err != nil {
		s.graph, s.starts = prevGraph, prevStarts
		return nil, err
	}
	s.engine = engine
	s.rebuilds++
	s.logger.Debug("graph changed, engine rebuilt",
		"added_states", len(diff.AddedStates),
		"removed_states", len(diff.RemovedStates),
		"changed_edges", len(diff.ChangedEdges)+len(diff.AddedEdges)+len(diff.RemovedEdges),
		"starts_changed", startsChanged,
	)
	return diff, nil
}

// SetInput replaces the input and restarts the engine.
func (s *Session) SetInput(input []string) {
	s.input = slices.Clone(input)
	s.engine.SetInput(s.input)
}

// SetAcceptance switches the acceptance mode of a pushdown engine and restarts it.
// Other kinds ignore the mode.
func (s *Session) SetAcceptance(mode domain.Acceptance) {
	s.cfg.Acceptance = mode
	if sm, ok := ports.As[ports.StackMachine](s.engine); ok {
		sm.RestartWithAcceptance(mode)
	}
}

// Restart resets the engine to the start configurations.
func (s *Session) Restart() {
	s.engine.Restart()
}

// Step advances the engine once.
// Returns domain.ErrUninitialized if the graph declares no start state.
func (s *Session) Step() (domain.StepResult, error) {
	if !s.engine.Initialized() {
		return domain.StepResult{}, fmt.Errorf("step: %w", domain.ErrUninitialized)
	}
	return s.engine.Step()
}

// Run restarts the engine and consumes the whole input.
// Returns domain.ErrUninitialized if the graph declares no start state.
func (s *Session) Run() (domain.StepResult, error) {
	if !s.engine.Initialized() {
		return domain.StepResult{}, fmt.Errorf("run: %w", domain.ErrUninitialized)
	}
	return s.engine.Run()
}

// Engine returns the current engine. It is replaced by every rebuild.
func (s *Session) Engine() ports.Automaton { return s.engine }

// Graph returns a copy of the current graph.
func (s *Session) Graph() domain.Graph { return s.graph.Clone() }

// Starts returns the current start list.
func (s *Session) Starts() []string { return slices.Clone(s.starts) }

// Rebuilds counts the engines built after the first one.
func (s *Session) Rebuilds() int { return s.rebuilds }
