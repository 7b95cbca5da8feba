package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/ports"
	"github.com/aretw0/automata/pkg/registry"
)

func TestDefault_BuildsEveryKind(t *testing.T) {
	r := registry.Default()
	assert.Len(t, r.Kinds(), len(domain.Kinds))

	g := domain.Graph{States: []domain.State{{ID: "q", Output: "o"}}}
	for _, k := range r.Kinds() {
		a, err := r.Build(k, g, []string{"q"}, registry.Config{})
		require.NoError(t, err, k)
		assert.Equal(t, k, a.Kind())
	}
}

func TestRegistry_Unknown(t *testing.T) {
	r := registry.NewRegistry()
	_, err := r.Build(domain.KindDFA, domain.Graph{}, nil, registry.Config{})
	assert.ErrorIs(t, err, domain.ErrUnknownKind)
}

func TestRegistry_Override(t *testing.T) {
	r := registry.Default()
	called := false
	r.Register(domain.KindDFA, func(g domain.Graph, starts []string, cfg registry.Config) (ports.Automaton, error) {
		called = true
		return registry.Default().Build(domain.KindNFA, g, starts, cfg)
	})

	a, err := r.Build(domain.KindDFA, domain.Graph{States: []domain.State{{ID: "q"}}}, []string{"q"}, registry.Config{Input: []string{"a"}})
	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, domain.KindNFA, a.Kind())
}
