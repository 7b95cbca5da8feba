package ports

import (
	"github.com/aretw0/automata/pkg/domain"
)

// Automaton is a steppable machine bound to one graph version.
// Implementations are single-owner and not safe for concurrent use.
type Automaton interface {
	// SetInput replaces the input sequence and restarts.
	SetInput(input []string)

	// Restart resets configurations and counters in place.
	Restart()

	// Step consumes one input symbol (one move for a Turing machine).
	Step() (domain.StepResult, error)

	// Run restarts and consumes the whole input.
	Run() (domain.StepResult, error)

	// Configurations returns a copy of the current configuration set.
	Configurations() []domain.Configuration

	HasEpsilon() bool
	IsDeterministic() bool

	// Initialized reports whether the graph declared at least one start state.
	Initialized() bool

	Kind() domain.Kind
}

// Determinizer builds an equivalent DFA by subset construction.
type Determinizer interface {
	NFAToDFA() (domain.Graph, string, error)
}

// Minimizer builds the minimal DFA by partition refinement.
type Minimizer interface {
	MinimizeDFA() (domain.Graph, string, error)
}

// StackMachine is implemented by pushdown automata.
type StackMachine interface {
	// RestartWithAcceptance switches the acceptance mode and restarts.
	RestartWithAcceptance(mode domain.Acceptance)
	Acceptance() domain.Acceptance
}

// Converter is implemented by transducers.
type Converter interface {
	MooreToMealy() (domain.Graph, []string, error)
	MealyToMoore() (domain.Graph, []string, error)
}

// Unwrapper is implemented by decorators around an Automaton.
type Unwrapper interface {
	Unwrap() Automaton
}

// As finds the first automaton in the decorator chain of a that implements T.
func As[T any](a Automaton) (T, bool) {
	for a != nil {
		if t, ok := a.(T); ok {
			return t, true
		}
		u, ok := a.(Unwrapper)
		if !ok {
			break
		}
		a = u.Unwrap()
	}
	var zero T
	return zero, false
}
