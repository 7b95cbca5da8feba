package dsl

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/aretw0/automata/pkg/domain"
)

func TestBuilder_DFA(t *testing.T) {
	b := New()

	b.Add("even").Start().Accept().
		On("1", "odd").
		On("0", "even")

	b.Add("odd").
		On("1", "even").
		On("0", "odd")

	graph, starts, err := b.Build()
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}

	want := domain.Graph{
		States: []domain.State{{ID: "even", Accepting: true}, {ID: "odd"}},
		Edges: []domain.Edge{
			{From: "even", To: "odd", Options: []domain.TransitionOption{{Symbol: "1"}}},
			{From: "even", To: "even", Options: []domain.TransitionOption{{Symbol: "0"}}},
			{From: "odd", To: "even", Options: []domain.TransitionOption{{Symbol: "1"}}},
			{From: "odd", To: "odd", Options: []domain.TransitionOption{{Symbol: "0"}}},
		},
	}
	if diff := cmp.Diff(want, graph); diff != "" {
		t.Errorf("graph mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"even"}, starts); diff != "" {
		t.Errorf("starts mismatch (-want +got):\n%s", diff)
	}
}

func TestBuilder_MergesOptions(t *testing.T) {
	b := New()
	b.Add("q").Start().
		On("0", "q", Pop(domain.Bottom), Push("0", domain.Bottom)).
		On("1", "q", Pop("0"), Push(domain.Epsilon))

	graph, _, err := b.Build()
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	if len(graph.Edges) != 1 {
		t.Fatalf("Expected 1 merged edge, got %d", len(graph.Edges))
	}
	opts := graph.Edges[0].Options
	if len(opts) != 2 {
		t.Fatalf("Expected 2 options, got %d", len(opts))
	}
	if opts[0].Pop != domain.Bottom || opts[0].Push[0] != "0" {
		t.Errorf("unexpected first option %+v", opts[0])
	}
}

func TestBuilder_TapeAndOutputs(t *testing.T) {
	b := New()
	b.Add("a").Start().Output("x").Read("1", "b", "0", domain.MoveLeft)
	b.Add("b").Accept().Epsilon("a", Emit("y"))

	graph, _, err := b.Build()
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}

	tape := graph.Edges[0].Options[0]
	want := domain.TransitionOption{Symbol: "1", Pop: "1", Push: []string{"0"}, Move: domain.MoveLeft}
	if diff := cmp.Diff(want, tape); diff != "" {
		t.Errorf("tape option mismatch (-want +got):\n%s", diff)
	}
	if graph.States[0].Output != "x" {
		t.Errorf("Expected Moore output x, got %q", graph.States[0].Output)
	}
	if got := graph.Edges[1].Options[0]; got.Symbol != domain.Epsilon || got.Output != "y" {
		t.Errorf("unexpected epsilon option %+v", got)
	}
}

func TestBuilder_UndeclaredTarget(t *testing.T) {
	b := New()
	b.Add("a").Start().On("x", "ghost")

	if _, _, err := b.Build(); err == nil {
		t.Fatal("Expected error for undeclared target")
	}
}

func TestBuilder_AddIsIdempotent(t *testing.T) {
	b := New()
	first := b.Add("a")
	first.Accept()
	if b.Add("a") != first {
		t.Fatal("Expected Add to return the existing builder")
	}
	if !b.Add("a").State().Accepting {
		t.Error("Expected state to stay accepting")
	}
}
