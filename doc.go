/*
Package automata is an in-process engine that executes and transforms abstract computing devices.

It runs deterministic and nondeterministic finite automata (with or without
epsilon moves), pushdown automata accepting by final state or by empty stack,
single-tape Turing machines and Mealy/Moore transducers. It also implements
NFA to DFA subset construction, DFA minimization by partition refinement and
Moore/Mealy conversion.

# Concept

A machine is described by a domain.Graph: states with accept flags (and Moore
outputs), and edges carrying one or more transition options. The engine takes
a snapshot of the graph at construction, normalises it into dense tables and
then steps a set of configurations over an input sequence. Nondeterminism is
explored breadth first inside one step; nothing runs concurrently.

# Usage

	package main

	import (
		"fmt"
		"log"

		"github.com/aretw0/automata"
		"github.com/aretw0/automata/pkg/dsl"
		"github.com/aretw0/automata/pkg/domain"
	)

	func main() {
		b := dsl.New()
		b.Add("even").Start().Accept().On("1", "odd").On("0", "even")
		b.Add("odd").On("1", "even").On("0", "odd")

		graph, starts, err := b.Build()
		if err != nil {
			log.Fatal(err)
		}

		dfa, err := automata.New(domain.KindDFA, graph, starts,
			automata.WithInput([]string{"1", "1"}))
		if err != nil {
			log.Fatal(err)
		}

		res, err := dfa.Run()
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(res.Accepting) // true
	}

Transformations are optional capabilities; reach them with AsDeterminizer,
AsMinimizer, AsStackMachine and AsConverter, which see through the
determinism decorator of the strict kinds.
*/
package automata
