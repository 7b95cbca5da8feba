package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNonDeterministic is returned when a deterministic-only operation is
// attempted on a machine with nondeterministic choices.
var ErrNonDeterministic = errors.New("automaton is not deterministic")

// ErrNonMinimizable is returned when minimization preconditions do not hold.
var ErrNonMinimizable = errors.New("automaton cannot be minimized")

// ErrMalformedStackOperation is returned when a push list mixes epsilon with
// other symbols, or a tape write is not exactly one symbol.
var ErrMalformedStackOperation = errors.New("malformed stack operation")

// ErrUninitialized is returned when stepping a machine that has no start state.
var ErrUninitialized = errors.New("automaton has no start state")

// ErrRunUnsupported is returned by kinds that only support single steps.
var ErrRunUnsupported = errors.New("run is not supported for this kind")

// ErrMissingOutput is returned when a transducer transition carries no output.
var ErrMissingOutput = errors.New("transition has no output")

// ErrUnknownKind is returned when a kind name is not registered.
var ErrUnknownKind = errors.New("unknown automaton kind")

// NonMinimizableError carries the failed precondition.
type NonMinimizableError struct {
	Reason string
}

func (e *NonMinimizableError) Error() string {
	return fmt.Sprintf("%s: %s", ErrNonMinimizable, e.Reason)
}

func (e *NonMinimizableError) Unwrap() error { return ErrNonMinimizable }

// MalformedStackOperationError identifies the offending transition.
type MalformedStackOperationError struct {
	From   string
	Symbol string
	Push   []string
}

func (e *MalformedStackOperationError) Error() string {
	return fmt.Sprintf("%s: %s --%s--> push [%s]",
		ErrMalformedStackOperation, e.From, e.Symbol, strings.Join(e.Push, ","))
}

func (e *MalformedStackOperationError) Unwrap() error { return ErrMalformedStackOperation }
