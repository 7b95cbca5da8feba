package domain

import "strings"

// Move is the head direction of a tape transition.
type Move string

const (
	MoveLeft  Move = "L"
	MoveRight Move = "R"
)

// ParseMove accepts "L", "R", "left" and "right" in any case.
func ParseMove(s string) (Move, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "l", "left":
		return MoveLeft, true
	case "r", "right":
		return MoveRight, true
	}
	return "", false
}

// TransitionOption is a single parallel choice on an edge.
// Several options on the same edge are "or" branches.
type TransitionOption struct {
	// Symbol is the input symbol consumed, or Epsilon.
	Symbol string `json:"symbol" yaml:"symbol" mapstructure:"symbol"`

	// Pop is the required top of stack (PDA) or the symbol under the head (TM).
	// Empty and Epsilon both mean "any top, pop nothing".
	Pop string `json:"pop,omitempty" yaml:"pop,omitempty" mapstructure:"pop"`

	// Push lists the symbols pushed after the pop, first element on top.
	// A nil list or [Epsilon] pushes nothing. For a TM it holds the single
	// symbol written under the head.
	Push []string `json:"push,omitempty" yaml:"push,omitempty" mapstructure:"push"`

	// Move is the head movement of a TM transition.
	Move Move `json:"move,omitempty" yaml:"move,omitempty" mapstructure:"move"`

	// Output is the symbol a Mealy machine emits when taking this option.
	Output string `json:"output,omitempty" yaml:"output,omitempty" mapstructure:"output"`
}

// PopsAny reports whether the option matches any stack top without popping.
func (o TransitionOption) PopsAny() bool {
	return o.Pop == "" || o.Pop == Epsilon
}

// PushesNothing reports whether the push list is empty or the single Epsilon marker.
func (o TransitionOption) PushesNothing() bool {
	return len(o.Push) == 0 || (len(o.Push) == 1 && o.Push[0] == Epsilon)
}

// Equal compares two options field by field.
func (o TransitionOption) Equal(other TransitionOption) bool {
	if o.Symbol != other.Symbol || o.Pop != other.Pop || o.Move != other.Move || o.Output != other.Output {
		return false
	}
	if len(o.Push) != len(other.Push) {
		return false
	}
	for i := range o.Push {
		if o.Push[i] != other.Push[i] {
			return false
		}
	}
	return true
}

// Edge connects two states with one or more transition options.
type Edge struct {
	From    string             `json:"from" yaml:"from" mapstructure:"from"`
	To      string             `json:"to" yaml:"to" mapstructure:"to"`
	Options []TransitionOption `json:"options" yaml:"options" mapstructure:"options"`
}
