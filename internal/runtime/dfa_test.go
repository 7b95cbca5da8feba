package runtime_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/automata/internal/runtime"
	"github.com/aretw0/automata/pkg/domain"
)

func TestDFA_Scenario(t *testing.T) {
	dfa, err := runtime.NewDFA(scenarioDFA(), []string{"S0"})
	require.NoError(t, err)

	tests := []struct {
		input     string
		final     string
		accepting bool
	}{
		{"11", "S1", false},
		{"10", "S3", true},
		{"1", "S2", true},
		{"0100", "S3", true},
		{"", "S0", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			dfa.SetInput(split(tt.input))
			res, err := dfa.Run()
			require.NoError(t, err)

			assert.Equal(t, []string{tt.final}, res.StateIDs())
			assert.Equal(t, tt.accepting, res.Accepting)
			assert.Equal(t, len(tt.input), res.Step)
			assert.False(t, res.Stuck)
		})
	}
}

func TestDFA_Stuck(t *testing.T) {
	g := domain.Graph{
		States: states(map[string]bool{"q": true}, "p", "q"),
		Edges:  []domain.Edge{edge("p", "q", "a")},
	}
	dfa, err := runtime.NewDFA(g, []string{"p"}, runtime.WithInput([]string{"a", "b"}))
	require.NoError(t, err)

	res, err := dfa.Step()
	require.NoError(t, err)
	assert.Equal(t, 1, res.Step)
	assert.True(t, res.Accepting)

	res, err = dfa.Step()
	require.NoError(t, err)
	assert.True(t, res.Stuck)
	assert.False(t, res.Accepting)
	assert.Equal(t, 1, res.Step, "stuck step does not advance")
	assert.Equal(t, []string{"q"}, res.StateIDs())
	require.Len(t, res.Trace, 1, "stuck step records nothing")
	assert.Equal(t, domain.PhaseByLetter, res.Trace[0].Phase)
	assert.Equal(t, 1, res.Trace[0].Step)
	assert.Equal(t, []string{"q"}, phaseIDs(res.Trace[0]))

	res, err = dfa.Run()
	require.NoError(t, err)
	assert.True(t, res.Stuck)
	assert.False(t, res.Accepting)
}

func TestNewDFA_RejectsNonDFA(t *testing.T) {
	base := domain.Graph{States: states(nil, "p", "q")}

	t.Run("Two Starts", func(t *testing.T) {
		_, err := runtime.NewDFA(base, []string{"p", "q"})
		assert.ErrorIs(t, err, domain.ErrNonDeterministic)
	})
	t.Run("No Start", func(t *testing.T) {
		_, err := runtime.NewDFA(base, nil)
		assert.ErrorIs(t, err, domain.ErrNonDeterministic)
	})
	t.Run("Epsilon", func(t *testing.T) {
		g := base
		g.Edges = []domain.Edge{edge("p", "q", domain.Epsilon)}
		_, err := runtime.NewDFA(g, []string{"p"})
		assert.ErrorIs(t, err, domain.ErrNonDeterministic)
	})
	t.Run("Parallel Choice", func(t *testing.T) {
		g := base
		g.Edges = []domain.Edge{edge("p", "q", "a"), edge("p", "p", "a")}
		_, err := runtime.NewDFA(g, []string{"p"})
		assert.ErrorIs(t, err, domain.ErrNonDeterministic)
	})
}

func redundantDFA() domain.Graph {
	return domain.Graph{
		States: states(map[string]bool{"B": true, "C": true}, "A", "B", "C"),
		Edges: []domain.Edge{
			edge("A", "B", "a"),
			edge("A", "C", "b"),
			edge("B", "B", "a", "b"),
			edge("C", "C", "a", "b"),
		},
	}
}

func TestMinimizeDFA(t *testing.T) {
	dfa, err := runtime.NewDFA(redundantDFA(), []string{"A"})
	require.NoError(t, err)

	g, start, err := dfa.MinimizeDFA()
	require.NoError(t, err)
	assert.Equal(t, "G0", start)
	require.Len(t, g.States, 2)
	assert.Equal(t, domain.State{ID: "G0"}, g.States[0])
	assert.Equal(t, domain.State{ID: "G1", Accepting: true}, g.States[1])

	// One edge per (group, target), options merged.
	require.Len(t, g.Edges, 2)
	assert.Equal(t, "G0", g.Edges[0].From)
	assert.Equal(t, "G1", g.Edges[0].To)
	assert.Len(t, g.Edges[0].Options, 2)
}

func TestMinimizeDFA_PreservesLanguage(t *testing.T) {
	for name, tc := range map[string]struct {
		graph domain.Graph
		start string
	}{
		"scenario":  {scenarioDFA(), "S0"},
		"redundant": {redundantDFA(), "A"},
	} {
		t.Run(name, func(t *testing.T) {
			dfa, err := runtime.NewDFA(tc.graph, []string{tc.start})
			require.NoError(t, err)

			g, start, err := dfa.MinimizeDFA()
			require.NoError(t, err)
			minimal, err := runtime.NewDFA(g, []string{start})
			require.NoError(t, err)

			letters := minimal.Table().Alphabet.Letters()
			for _, w := range words(letters, 6) {
				dfa.SetInput(w)
				minimal.SetInput(w)
				want, err := dfa.Run()
				require.NoError(t, err)
				got, err := minimal.Run()
				require.NoError(t, err)
				assert.Equal(t, want.Accepting, got.Accepting, "word %v", w)
			}

			// Idempotence.
			g2, _, err := minimal.MinimizeDFA()
			require.NoError(t, err)
			assert.Len(t, g2.States, len(g.States))
		})
	}
}

func TestMinimizeDFA_Preconditions(t *testing.T) {
	t.Run("No Accepting State", func(t *testing.T) {
		g := domain.Graph{
			States: states(nil, "p"),
			Edges:  []domain.Edge{edge("p", "p", "a")},
		}
		dfa, err := runtime.NewDFA(g, []string{"p"})
		require.NoError(t, err)

		_, _, err = dfa.MinimizeDFA()
		assert.ErrorIs(t, err, domain.ErrNonMinimizable)
		var nm *domain.NonMinimizableError
		require.ErrorAs(t, err, &nm)
		assert.Equal(t, "no accepting state", nm.Reason)
	})

	t.Run("Partial Function", func(t *testing.T) {
		g := domain.Graph{
			States: states(map[string]bool{"q": true}, "p", "q"),
			Edges:  []domain.Edge{edge("p", "q", "a")},
		}
		dfa, err := runtime.NewDFA(g, []string{"p"})
		require.NoError(t, err)

		_, _, err = dfa.MinimizeDFA()
		assert.ErrorIs(t, err, domain.ErrNonMinimizable)
		assert.Contains(t, err.Error(), "not total")
	})

	t.Run("Epsilon", func(t *testing.T) {
		nfa, err := runtime.NewNFA(domain.KindENFA, scenarioENFA(), []string{"s"})
		require.NoError(t, err)

		_, _, err = nfa.MinimizeDFA()
		assert.ErrorIs(t, err, domain.ErrNonMinimizable)
	})
}
