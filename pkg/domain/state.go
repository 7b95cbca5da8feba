package domain

import (
	"fmt"
	"strings"
)

// Acceptance selects how a stack machine decides acceptance.
type Acceptance string

const (
	// ByFinalState accepts when any configuration sits in an accepting state.
	ByFinalState Acceptance = "final-state"
	// ByEmptyStack accepts when any configuration holds nothing but the
	// bottom marker (or nothing at all).
	ByEmptyStack Acceptance = "empty-stack"
)

// ParseAcceptance accepts the mode names plus the short forms "final" and "empty".
// An empty string selects ByFinalState.
func ParseAcceptance(s string) (Acceptance, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "final", string(ByFinalState):
		return ByFinalState, nil
	case "empty", string(ByEmptyStack):
		return ByEmptyStack, nil
	}
	return "", fmt.Errorf("unknown acceptance mode %q", s)
}

// Lineage records how a configuration was produced.
type Lineage struct {
	From      string   `json:"from"`
	Via       string   `json:"via"`
	PrevStack []string `json:"prev_stack,omitempty"`
}

// Configuration is one branch of execution. It is a value: engines hand out
// private copies and never alias their internal stacks.
type Configuration struct {
	StateID   string `json:"state_id"`
	Accepting bool   `json:"accepting"`

	// Stack lists the stack from bottom to top. Nil for stackless kinds.
	Stack []string `json:"stack,omitempty"`

	Lineage *Lineage `json:"lineage,omitempty"`
}

// Phase names the part of a step that produced a configuration set.
type Phase string

const (
	PhasePreEpsilon  Phase = "pre-epsilon"
	PhaseByLetter    Phase = "by-letter"
	PhasePostEpsilon Phase = "post-epsilon"
)

// PhaseSet is one entry of a history trace.
type PhaseSet struct {
	Step           int             `json:"step"`
	Phase          Phase           `json:"phase"`
	Configurations []Configuration `json:"configurations"`
}

// TapeSnapshot is a copy of a Turing machine tape.
type TapeSnapshot struct {
	Cells []string `json:"cells"`
	Head  int      `json:"head"`
}

// StepResult is returned by every Step and Run call. It is read-only to the caller.
type StepResult struct {
	Configurations []Configuration `json:"configurations"`

	// Step counts consumed input symbols (executed moves for a TM).
	Step int `json:"step"`

	Accepting bool `json:"accepting"`

	// Stuck is set when no transition matched and the configuration was kept.
	Stuck bool `json:"stuck,omitempty"`

	// Halted is set when a Turing machine has no applicable transition.
	Halted bool `json:"halted,omitempty"`

	Tape   *TapeSnapshot `json:"tape,omitempty"`
	Output []string      `json:"output,omitempty"`
	Trace  []PhaseSet    `json:"trace,omitempty"`
}

// StateIDs lists the state of every configuration in order.
func (r StepResult) StateIDs() []string {
	ids := make([]string, len(r.Configurations))
	for i, c := range r.Configurations {
		ids[i] = c.StateID
	}
	return ids
}
