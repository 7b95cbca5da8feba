package registry

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/aretw0/automata/internal/runtime"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/ports"
)

// Config carries the construction settings handed to a factory.
type Config struct {
	Logger       *slog.Logger
	Hooks        domain.Hooks
	Acceptance   domain.Acceptance
	ClosureLimit int
	Input        []string
}

// Factory defines the signature for an engine constructor.
type Factory func(graph domain.Graph, starts []string, cfg Config) (ports.Automaton, error)

// Registry manages the available automaton kinds.
type Registry struct {
	mu        sync.RWMutex
	factories map[domain.Kind]Factory
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[domain.Kind]Factory),
	}
}

// Default returns a registry with every built-in kind.
func Default() *Registry {
	r := NewRegistry()
	for _, k := range domain.Kinds {
		r.Register(k, builtin(k))
	}
	return r
}

func builtin(kind domain.Kind) Factory {
	return func(graph domain.Graph, starts []string, cfg Config) (ports.Automaton, error) {
		return runtime.Build(kind, graph, starts, cfg.Options()...)
	}
}

// Options translates the config into engine options.
func (c Config) Options() []runtime.Option {
	opts := []runtime.Option{
		runtime.WithHooks(c.Hooks),
		runtime.WithClosureLimit(c.ClosureLimit),
	}
	if c.Logger != nil {
		opts = append(opts, runtime.WithLogger(c.Logger))
	}
	if c.Acceptance != "" {
		opts = append(opts, runtime.WithAcceptance(c.Acceptance))
	}
	if c.Input != nil {
		opts = append(opts, runtime.WithInput(c.Input))
	}
	return opts
}

// Register adds a factory to the registry.
// If a factory for the same kind exists, it is overwritten.
func (r *Registry) Register(kind domain.Kind, fn Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[kind] = fn
}

// Build looks up a factory by kind and executes it.
// Returns an error wrapping domain.ErrUnknownKind if the kind is not found.
func (r *Registry) Build(kind domain.Kind, graph domain.Graph, starts []string, cfg Config) (ports.Automaton, error) {
	r.mu.RLock()
	fn, ok := r.factories[kind]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownKind, kind)
	}

	return fn(graph, starts, cfg)
}

// Kinds lists the registered kinds in sorted order.
func (r *Registry) Kinds() []domain.Kind {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]domain.Kind, 0, len(r.factories))
	for k := range r.factories {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	return kinds
}
