package dsl

import "github.com/aretw0/automata/pkg/domain"

// OptionFunc adjusts a transition option.
type OptionFunc func(*domain.TransitionOption)

// Pop requires sym on top of the stack.
func Pop(sym string) OptionFunc {
	return func(o *domain.TransitionOption) { o.Pop = sym }
}

// Push lists the symbols pushed, first one on top.
func Push(syms ...string) OptionFunc {
	return func(o *domain.TransitionOption) { o.Push = append([]string(nil), syms...) }
}

// Emit sets the Mealy output of the option.
func Emit(out string) OptionFunc {
	return func(o *domain.TransitionOption) { o.Output = out }
}

type arc struct {
	to     string
	option domain.TransitionOption
}

// StateBuilder provides a fluent API for configuring a state.
type StateBuilder struct {
	state   domain.State
	start   bool
	arcs    []arc
	builder *Builder
}

// Start marks the state as a start state.
func (s *StateBuilder) Start() *StateBuilder {
	s.start = true
	return s
}

// Accept marks the state as accepting.
func (s *StateBuilder) Accept() *StateBuilder {
	s.state.Accepting = true
	return s
}

// Output sets the Moore output of the state.
func (s *StateBuilder) Output(out string) *StateBuilder {
	s.state.Output = out
	return s
}

// On adds a transition consuming symbol.
func (s *StateBuilder) On(symbol, target string, opts ...OptionFunc) *StateBuilder {
	o := domain.TransitionOption{Symbol: symbol}
	for _, fn := range opts {
		fn(&o)
	}
	s.arcs = append(s.arcs, arc{to: target, option: o})
	return s
}

// Epsilon adds a transition that consumes no input.
func (s *StateBuilder) Epsilon(target string, opts ...OptionFunc) *StateBuilder {
	return s.On(domain.Epsilon, target, opts...)
}

// Read adds a Turing machine transition: on read, write and move.
func (s *StateBuilder) Read(read, target, write string, move domain.Move) *StateBuilder {
	s.arcs = append(s.arcs, arc{to: target, option: domain.TransitionOption{
		Symbol: read,
		Pop:    read,
		Push:   []string{write},
		Move:   move,
	}})
	return s
}

// Add continues with another state of the same builder.
func (s *StateBuilder) Add(id string) *StateBuilder {
	return s.builder.Add(id)
}

// State returns the underlying domain.State.
func (s *StateBuilder) State() domain.State {
	return s.state
}
