/*
Package ports defines the interfaces between automaton engines and their callers.

These interfaces decouple the callers (CLI, session, metrics) from the concrete
engines in internal/runtime.

# Key Interfaces

  - Automaton: the steppable machine every kind implements.
  - Determinizer: subset construction (NFA, PDA skeleton).
  - Minimizer: partition refinement (DFA, NFA, PDA skeleton).
  - StackMachine: acceptance-mode control for pushdown automata.
  - Converter: Moore and Mealy conversions for transducers.

Deterministic kinds are decorated; use the root package helpers (AsMinimizer, ...)
to reach capabilities through the decorator.
*/
package ports
