package runtime

import (
	"log/slog"

	"github.com/aretw0/automata/internal/logging"
	"github.com/aretw0/automata/pkg/domain"
)

// DefaultClosureLimit bounds the configurations explored by one pushdown
// epsilon closure.
const DefaultClosureLimit = 4096

// Option configures an engine at construction.
type Option func(*config)

type config struct {
	logger       *slog.Logger
	hooks        domain.Hooks
	acceptance   domain.Acceptance
	closureLimit int
	input        []string
}

func newConfig(opts []Option) config {
	c := config{
		acceptance:   domain.ByFinalState,
		closureLimit: DefaultClosureLimit,
	}
	for _, opt := range opts {
		opt(&c)
	}
	if c.logger == nil {
		c.logger = logging.NewNop()
	}
	return c
}

// WithLogger sets the engine logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks domain.Hooks) Option {
	return func(c *config) {
		c.hooks = hooks
	}
}

// WithAcceptance sets the initial acceptance mode of a pushdown automaton.
func WithAcceptance(mode domain.Acceptance) Option {
	return func(c *config) {
		c.acceptance = mode
	}
}

// WithClosureLimit caps the configurations one pushdown closure may visit.
// Non-positive values keep the default.
func WithClosureLimit(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.closureLimit = n
		}
	}
}

// WithInput sets the initial input sequence.
func WithInput(input []string) Option {
	return func(c *config) {
		c.input = append([]string(nil), input...)
	}
}
