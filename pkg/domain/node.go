package domain

// State represents a vertex of the automaton graph as the caller sees it.
type State struct {
	ID string `json:"id" yaml:"id" mapstructure:"id"`

	// Accepting marks a final state.
	Accepting bool `json:"accepting,omitempty" yaml:"accepting,omitempty" mapstructure:"accepting"`

	// Output is the symbol a Moore machine emits on entering this state.
	// Other kinds ignore it.
	Output string `json:"output,omitempty" yaml:"output,omitempty" mapstructure:"output"`
}
