package runtime_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/automata/internal/logging"
	"github.com/aretw0/automata/internal/runtime"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/ports"
)

// balanced pushes a marker on '0' over the bottom and pops it on '1'.
func balanced() domain.Graph {
	return domain.Graph{
		States: []domain.State{{ID: "q"}},
		Edges: []domain.Edge{{
			From: "q", To: "q",
			Options: []domain.TransitionOption{
				{Symbol: "0", Pop: domain.Bottom, Push: []string{"0", domain.Bottom}},
				{Symbol: "1", Pop: "0", Push: []string{domain.Epsilon}},
			},
		}},
	}
}

func TestPDA_Scenario(t *testing.T) {
	pda, err := runtime.NewPDA(balanced(), []string{"q"}, runtime.WithAcceptance(domain.ByEmptyStack))
	require.NoError(t, err)
	assert.Equal(t, domain.ByEmptyStack, pda.Acceptance())
	assert.True(t, pda.IsDeterministic())

	pda.SetInput(split("01"))
	res, err := pda.Run()
	require.NoError(t, err)
	assert.True(t, res.Accepting)
	require.Len(t, res.Configurations, 1)
	assert.Equal(t, []string{domain.Bottom}, res.Configurations[0].Stack)

	pda.SetInput(split("0011"))
	res, err = pda.Run()
	require.NoError(t, err)
	assert.False(t, res.Accepting)
	assert.Empty(t, res.Configurations)

	// Same machine, final-state mode: q is not accepting.
	pda.SetInput(split("01"))
	pda.RestartWithAcceptance(domain.ByFinalState)
	res, err = pda.Run()
	require.NoError(t, err)
	assert.False(t, res.Accepting)
}

func TestPDA_PushOrderAndTrace(t *testing.T) {
	pda, err := runtime.NewPDA(balanced(), []string{"q"}, runtime.WithInput([]string{"0"}))
	require.NoError(t, err)

	res, err := pda.Step()
	require.NoError(t, err)
	require.Len(t, res.Configurations, 1)

	cfg := res.Configurations[0]
	assert.Equal(t, []string{domain.Bottom, "0"}, cfg.Stack, "first pushed symbol ends on top")
	require.NotNil(t, cfg.Lineage)
	assert.Equal(t, domain.Lineage{From: "q", Via: "0", PrevStack: []string{domain.Bottom}}, *cfg.Lineage)

	require.Len(t, res.Trace, 3)
	assert.Equal(t, domain.PhasePreEpsilon, res.Trace[0].Phase)
	assert.Equal(t, domain.PhaseByLetter, res.Trace[1].Phase)
	assert.Equal(t, domain.PhasePostEpsilon, res.Trace[2].Phase)
	for _, ps := range res.Trace {
		assert.Equal(t, 1, ps.Step)
	}

	// Snapshots are private copies.
	cfg.Stack[0] = "X"
	assert.Equal(t, domain.Bottom, pda.Configurations()[0].Stack[0])
}

func TestPDA_EpsilonClosure(t *testing.T) {
	g := balanced()
	g.States = append(g.States, domain.State{ID: "f", Accepting: true})
	g.Edges = append(g.Edges, domain.Edge{
		From: "q", To: "f",
		Options: []domain.TransitionOption{{Symbol: domain.Epsilon, Pop: domain.Bottom, Push: []string{domain.Bottom}}},
	})

	pda, err := runtime.NewPDA(g, []string{"q"})
	require.NoError(t, err)
	assert.False(t, pda.IsDeterministic())

	t.Run("Empty Input", func(t *testing.T) {
		pda.SetInput(nil)
		res, err := pda.Run()
		require.NoError(t, err)
		assert.True(t, res.Accepting)
		assert.ElementsMatch(t, []string{"q", "f"}, res.StateIDs())
	})

	t.Run("Balanced", func(t *testing.T) {
		pda.SetInput(split("01"))
		res, err := pda.Run()
		require.NoError(t, err)
		assert.True(t, res.Accepting)
	})

	t.Run("Unbalanced", func(t *testing.T) {
		pda.SetInput(split("0"))
		res, err := pda.Run()
		require.NoError(t, err)
		assert.False(t, res.Accepting)
	})
}

func TestPDA_MalformedPush(t *testing.T) {
	g := domain.Graph{
		States: []domain.State{{ID: "q"}},
		Edges: []domain.Edge{{
			From: "q", To: "q",
			Options: []domain.TransitionOption{{Symbol: "a", Push: []string{"A", "eps"}}},
		}},
	}
	pda, err := runtime.NewPDA(g, []string{"q"}, runtime.WithInput([]string{"a"}))
	require.NoError(t, err)

	_, err = pda.Step()
	assert.ErrorIs(t, err, domain.ErrMalformedStackOperation)
	var malformed *domain.MalformedStackOperationError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "q", malformed.From)
}

func TestPDA_ClosureLimit(t *testing.T) {
	g := domain.Graph{
		States: []domain.State{{ID: "q"}},
		Edges: []domain.Edge{{
			From: "q", To: "q",
			Options: []domain.TransitionOption{{Symbol: domain.Epsilon, Push: []string{"A"}}},
		}},
	}
	var buf bytes.Buffer
	pda, err := runtime.NewPDA(g, []string{"q"},
		runtime.WithClosureLimit(10),
		runtime.WithLogger(logging.NewWriter(&buf, slog.LevelWarn)))
	require.NoError(t, err)

	res, err := pda.Run()
	require.NoError(t, err)
	assert.Len(t, res.Configurations, 10)
	assert.Contains(t, buf.String(), "epsilon closure limit reached")
}

func TestDPDA_Strict(t *testing.T) {
	a, err := runtime.Build(domain.KindDPDA, balanced(), []string{"q"}, runtime.WithAcceptance(domain.ByEmptyStack))
	require.NoError(t, err)
	assert.Equal(t, domain.KindDPDA, a.Kind())

	a.SetInput(split("0101"))
	res, err := a.Run()
	require.NoError(t, err)
	assert.True(t, res.Accepting)

	g := balanced()
	g.Edges[0].Options = append(g.Edges[0].Options, domain.TransitionOption{Symbol: "0", Push: []string{"X"}})
	a, err = runtime.Build(domain.KindDPDA, g, []string{"q"})
	require.NoError(t, err)

	_, err = a.Step()
	assert.ErrorIs(t, err, domain.ErrNonDeterministic)
	_, err = a.Run()
	assert.ErrorIs(t, err, domain.ErrNonDeterministic)

	u, ok := a.(ports.Unwrapper)
	require.True(t, ok)
	sm, ok := u.Unwrap().(ports.StackMachine)
	require.True(t, ok)
	assert.Equal(t, domain.ByFinalState, sm.Acceptance())
}

func TestPDA_Skeleton(t *testing.T) {
	pda, err := runtime.NewPDA(balanced(), []string{"q"})
	require.NoError(t, err)

	g, start, err := pda.NFAToDFA()
	require.NoError(t, err)
	assert.Equal(t, "0", start)
	assert.Len(t, g.States, 1)

	_, _, err = pda.MinimizeDFA()
	assert.ErrorIs(t, err, domain.ErrNonMinimizable, "no accepting state")
}
