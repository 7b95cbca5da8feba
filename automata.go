package automata

import (
	"log/slog"

	"github.com/aretw0/automata/internal/logging"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/ports"
	"github.com/aretw0/automata/pkg/registry"
)

type options struct {
	registry *registry.Registry
	cfg      registry.Config
}

// Option defines a functional option for configuring an engine.
type Option func(*options)

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.cfg.Logger = logger
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks domain.Hooks) Option {
	return func(o *options) {
		o.cfg.Hooks = hooks
	}
}

// WithAcceptance sets the acceptance mode of pushdown automata (default: final state).
func WithAcceptance(mode domain.Acceptance) Option {
	return func(o *options) {
		o.cfg.Acceptance = mode
	}
}

// WithClosureLimit caps the configurations one pushdown epsilon closure may visit.
func WithClosureLimit(n int) Option {
	return func(o *options) {
		o.cfg.ClosureLimit = n
	}
}

// WithInput sets the initial input sequence.
func WithInput(input []string) Option {
	return func(o *options) {
		o.cfg.Input = input
	}
}

// WithRegistry replaces the built-in kind registry.
func WithRegistry(r *registry.Registry) Option {
	return func(o *options) {
		o.registry = r
	}
}

// New builds the engine for kind from a snapshot of graph.
// A graph without start states yields a usable but empty engine; check Initialized.
func New(kind domain.Kind, graph domain.Graph, starts []string, opts ...Option) (ports.Automaton, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.registry == nil {
		o.registry = registry.Default()
	}
	// Ensure logger is initialized so engines do not fall back silently.
	if o.cfg.Logger == nil {
		o.cfg.Logger = logging.NewNop()
	}
	return o.registry.Build(kind, graph, starts, o.cfg)
}

// AsDeterminizer returns the subset construction capability of a.
func AsDeterminizer(a ports.Automaton) (ports.Determinizer, bool) {
	return ports.As[ports.Determinizer](a)
}

// AsMinimizer returns the minimization capability of a.
func AsMinimizer(a ports.Automaton) (ports.Minimizer, bool) {
	return ports.As[ports.Minimizer](a)
}

// AsStackMachine returns the acceptance-mode control of a pushdown automaton.
func AsStackMachine(a ports.Automaton) (ports.StackMachine, bool) {
	return ports.As[ports.StackMachine](a)
}

// AsConverter returns the Moore/Mealy conversions of a transducer.
func AsConverter(a ports.Automaton) (ports.Converter, bool) {
	return ports.As[ports.Converter](a)
}
