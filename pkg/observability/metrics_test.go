package observability_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/automata/internal/logging"
	"github.com/aretw0/automata/internal/runtime"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/observability"
)

func pushdown() domain.Graph {
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

func TestMetrics_Hooks(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := observability.NewMetrics(reg)
	require.NoError(t, err)

	pda, err := runtime.NewPDA(pushdown(), []string{"q"},
		runtime.WithHooks(m.Hooks()),
		runtime.WithAcceptance(domain.ByEmptyStack),
		runtime.WithInput([]string{"0", "1"}))
	require.NoError(t, err)

	_, err = pda.Run()
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Builds.WithLabelValues("pda")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Steps.WithLabelValues("pda", "rejecting")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Steps.WithLabelValues("pda", "accepting")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Phases.WithLabelValues("pda", string(domain.PhaseByLetter))))
	assert.Equal(t, 1, testutil.CollectAndCount(m.Configurations))

	tm, err := runtime.NewTM(domain.Graph{States: []domain.State{{ID: "t"}}}, []string{"t"}, runtime.WithHooks(m.Hooks()))
	require.NoError(t, err)
	_, err = tm.Run()
	require.ErrorIs(t, err, domain.ErrRunUnsupported)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Errors.WithLabelValues("tm", "run")))

	res, err := tm.Step()
	require.NoError(t, err)
	assert.True(t, res.Halted)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Steps.WithLabelValues("tm", "halted")))
}

func TestNewMetrics_RegistersTwice(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := observability.NewMetrics(reg)
	require.NoError(t, err)
	second, err := observability.NewMetrics(reg)
	require.NoError(t, err)
	assert.Same(t, first.Builds, second.Builds)
}

func TestLogHooks(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWriter(&buf, slog.LevelDebug)
	hooks := observability.LogHooks(logger)

	m, err := observability.NewMetrics(nil)
	require.NoError(t, err)

	_, err = runtime.NewNFA(domain.KindNFA, domain.Graph{States: []domain.State{{ID: "a"}}}, []string{"a"},
		runtime.WithHooks(hooks.Merge(m.Hooks())))
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "msg=build")
	assert.Contains(t, buf.String(), "kind=nfa")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Builds.WithLabelValues("nfa")))
}

func TestWriteSummary(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := observability.NewMetrics(reg)
	require.NoError(t, err)

	pda, err := runtime.NewPDA(pushdown(), []string{"q"},
		runtime.WithHooks(m.Hooks()),
		runtime.WithInput([]string{"0"}))
	require.NoError(t, err)
	_, err = pda.Run()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, observability.WriteSummary(&buf, reg))
	out := buf.String()
	assert.Contains(t, out, `automata_builds_total{kind="pda"} 1`)
	assert.Contains(t, out, "automata_configurations{")
	assert.Contains(t, out, "count=")
}
