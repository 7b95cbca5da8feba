package runtime

import (
	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/ports"
)

// StrictAutomaton refuses to step a machine whose table is not deterministic.
type StrictAutomaton struct {
	ports.Automaton
	kind domain.Kind
}

// Strict wraps a and reports kind as its own.
func Strict(a ports.Automaton, kind domain.Kind) *StrictAutomaton {
	return &StrictAutomaton{Automaton: a, kind: kind}
}

func (s *StrictAutomaton) Step() (domain.StepResult, error) {
	if !s.IsDeterministic() {
		return domain.StepResult{}, domain.ErrNonDeterministic
	}
	return s.Automaton.Step()
}

func (s *StrictAutomaton) Run() (domain.StepResult, error) {
	if !s.IsDeterministic() {
		return domain.StepResult{}, domain.ErrNonDeterministic
	}
	return s.Automaton.Run()
}

func (s *StrictAutomaton) Kind() domain.Kind { return s.kind }

// Unwrap returns the decorated engine.
func (s *StrictAutomaton) Unwrap() ports.Automaton { return s.Automaton }
