package validator

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/automata/pkg/domain"
)

func TestValidateGraph(t *testing.T) {
	// Scenario A: valid dfa p -a-> q
	valid := domain.Graph{
		States: []domain.State{{ID: "p"}, {ID: "q", Accepting: true}},
		Edges:  []domain.Edge{{From: "p", To: "q", Options: []domain.TransitionOption{{Symbol: "a"}}}},
	}
	assert.NoError(t, ValidateGraph(domain.KindDFA, valid, []string{"p"}))

	// Scenario B: broken link and missing start
	broken := domain.Graph{
		States: []domain.State{{ID: "p"}},
		Edges:  []domain.Edge{{From: "p", To: "ghost", Options: []domain.TransitionOption{{Symbol: "a"}}}},
	}
	err := ValidateGraph(domain.KindNFA, broken, nil)
	require.Error(t, err)
	errs := ValidationErrors(err)
	require.Len(t, errs, 2)
	assert.Contains(t, err.Error(), "no start state")
	assert.Contains(t, err.Error(), "unknown target state")
}

func TestValidateGraph_KindRules(t *testing.T) {
	one := func(o domain.TransitionOption) domain.Graph {
		return domain.Graph{
			States: []domain.State{{ID: "q"}},
			Edges:  []domain.Edge{{From: "q", To: "q", Options: []domain.TransitionOption{o}}},
		}
	}

	tests := []struct {
		name   string
		kind   domain.Kind
		graph  domain.Graph
		reason string
	}{
		{"dfa epsilon", domain.KindDFA, one(domain.TransitionOption{Symbol: "eps"}), "no epsilon"},
		{"nfa epsilon", domain.KindNFA, one(domain.TransitionOption{Symbol: "ε"}), "nfa-eps"},
		{"pda push", domain.KindPDA, one(domain.TransitionOption{Symbol: "a", Push: []string{"A", "ε"}}), "push list"},
		{"tm write", domain.KindTM, one(domain.TransitionOption{Symbol: "0", Pop: "0", Move: domain.MoveRight}), "exactly one symbol"},
		{"tm move", domain.KindTM, one(domain.TransitionOption{Symbol: "0", Pop: "0", Push: []string{"1"}}), "move L or R"},
		{"mealy output", domain.KindMealy, one(domain.TransitionOption{Symbol: "a"}), "no output"},
		{"moore output", domain.KindMoore, one(domain.TransitionOption{Symbol: "a"}), "no output"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateGraph(tt.kind, tt.graph, []string{"q"})
			require.Error(t, err)
			assert.True(t, strings.Contains(err.Error(), tt.reason), err.Error())
		})
	}
	assert.NoError(t, ValidateGraph(domain.KindENFA, one(domain.TransitionOption{Symbol: "ε"}), []string{"q"}))
}

func TestValidateGraph_DFAChoices(t *testing.T) {
	g := domain.Graph{
		States: []domain.State{{ID: "p"}, {ID: "q"}},
		Edges: []domain.Edge{
			{From: "p", To: "q", Options: []domain.TransitionOption{{Symbol: "a"}}},
			{From: "p", To: "p", Options: []domain.TransitionOption{{Symbol: "a"}}},
		},
	}
	err := ValidateGraph(domain.KindDFA, g, []string{"p", "q"})
	require.Error(t, err)
	assert.Len(t, ValidationErrors(err), 2)
	assert.NoError(t, ValidateGraph(domain.KindNFA, g, []string{"p", "q"}))
}

func TestUnreachable(t *testing.T) {
	g := domain.Graph{
		States: []domain.State{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}},
		Edges: []domain.Edge{
			{From: "a", To: "b"},
			{From: "b", To: "a"},
			{From: "d", To: "c"},
		},
	}
	assert.Equal(t, []string{"c", "d"}, Unreachable(g, []string{"a"}))
	assert.Empty(t, Unreachable(g, []string{"a", "d"}))
}

func TestWithoutReason(t *testing.T) {
	g := domain.Graph{States: []domain.State{{ID: "a"}}}

	err := ValidateGraph(domain.KindNFA, g, nil)
	require.Error(t, err)
	assert.NoError(t, WithoutReason(err, ReasonNoStart))

	g.Edges = []domain.Edge{{From: "a", To: "b", Options: []domain.TransitionOption{{Symbol: "x"}}}}
	err = WithoutReason(ValidateGraph(domain.KindNFA, g, nil), ReasonNoStart)
	require.Error(t, err)
	assert.Len(t, ValidationErrors(err), 1)

	plain := errors.New("boom")
	assert.Same(t, plain, WithoutReason(plain, ReasonNoStart))
}
