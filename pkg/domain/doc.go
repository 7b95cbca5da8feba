/*
Package domain contains the core models of the automata engine.

It defines the graph description supplied by callers, the configuration and
step result values the engines hand back, the lifecycle events used for
tracing, and the error taxonomy. This package is kept pure and free of
external dependencies, following Hexagonal Architecture principles.

# Key Entities

  - Graph: States plus labeled edges carrying one or more TransitionOptions.
  - Kind: The automaton family an engine interprets the graph as (dfa, pda, tm, ...).
  - Configuration: One branch of execution (state, stack snapshot, lineage).
  - StepResult: What a Step or Run call returns to the caller.
  - Hooks: Optional, inert-by-default callbacks for tracing engine activity.
*/
package domain
