package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/automata"
	"github.com/aretw0/automata/pkg/adapters/file"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/dsl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunValidate(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	require.NoError(t, os.WriteFile(good, []byte("kind: nfa\nstarts: [a]\nstates: [{id: a}, {id: island}]\n"), 0644))
	assert.NoError(t, runValidate(good))

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"kind": "dfa", "states": [{"id": "a"}], "edges": [{"from": "a", "to": "b", "options": [{"symbol": "x"}]}]}`), 0644))
	err := runValidate(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no start state")
	assert.Contains(t, err.Error(), "unknown target state")
}

func TestConversions(t *testing.T) {
	b := dsl.New()
	b.Add("s").Start().On("a", "s").On("a", "t")
	b.Add("t").Accept()
	g, starts, err := b.Build()
	require.NoError(t, err)

	nfa, err := automata.New(domain.KindNFA, g, starts)
	require.NoError(t, err)

	dfaGraph, dfaStarts, err := conversions["nfa2dfa"].run(nfa)
	require.NoError(t, err)
	assert.Equal(t, []string{"0"}, dfaStarts)

	dfa, err := automata.New(conversions["nfa2dfa"].kind, dfaGraph, dfaStarts, automata.WithInput([]string{"a"}))
	require.NoError(t, err)
	res, err := dfa.Run()
	require.NoError(t, err)
	assert.True(t, res.Accepting)

	_, _, err = conversions["moore2mealy"].run(nfa)
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "dfa.json")
	require.NoError(t, file.Save(path, file.FromGraph(domain.KindDFA, dfaGraph, dfaStarts)))
	assert.NoError(t, runValidate(path))
}
