/*
Package dsl provides a Go DSL for programmatically constructing automaton graphs.

It allows developers to define machines using a type-safe, fluent builder
instead of YAML or JSON files. This is particularly useful for tests and
generated machines.

Example usage:

	b := dsl.New()

	b.Add("q").Start().
		On("0", "q", dsl.Pop(domain.Bottom), dsl.Push("0", domain.Bottom)).
		On("1", "q", dsl.Pop("0"), dsl.Push(domain.Epsilon))

	graph, starts, err := b.Build()
	if err != nil {
		log.Fatal(err)
	}

	pda, err := automata.New(domain.KindPDA, graph, starts,
		automata.WithAcceptance(domain.ByEmptyStack))
*/
package dsl
