package runtime

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/automata/internal/compiler"
	"github.com/aretw0/automata/pkg/domain"
)

// determinize runs the subset construction over the state skeleton of t.
// Sets are visited breadth first from the closure of the starts and named
// "0", "1", ... in visit order. Empty images produce no edge.
func determinize(t *compiler.Table, ct closureTable) (domain.Graph, string, error) {
	if len(t.Starts) == 0 {
		return domain.Graph{}, "", fmt.Errorf("subset construction: %w", domain.ErrUninitialized)
	}

	letters := t.Alphabet.Letters()
	ids := make(map[string]int)
	var sets [][]int
	visit := func(set []int) int {
		key := intsKey(set)
		if id, ok := ids[key]; ok {
			return id
		}
		ids[key] = len(sets)
		sets = append(sets, set)
		return len(sets) - 1
	}

	var b graphBuilder
	visit(ct.closeSet(t.Starts))
	for from := 0; from < len(sets); from++ {
		for _, letter := range letters {
			sym, _ := t.Alphabet.Index(letter)
			img := ct.closeSet(image(t, sets[from], sym))
			if len(img) == 0 {
				continue
			}
			to := visit(img)
			b.link(strconv.Itoa(from), strconv.Itoa(to), domain.TransitionOption{Symbol: letter})
		}
	}

	states := make([]domain.State, len(sets))
	for i, set := range sets {
		states[i] = domain.State{ID: strconv.Itoa(i), Accepting: anyAccepting(t, set)}
	}
	return b.graph(states), "0", nil
}

func anyAccepting(t *compiler.Table, set []int) bool {
	for _, s := range set {
		if t.States[s].Accepting {
			return true
		}
	}
	return false
}

func intsKey(set []int) string {
	var sb strings.Builder
	for i, v := range set {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(v))
	}
	return sb.String()
}

// graphBuilder merges options of the same (from, to) pair into one edge.
type graphBuilder struct {
	edges []domain.Edge
	at    map[[2]string]int
}

func (b *graphBuilder) link(from, to string, opt domain.TransitionOption) {
	if b.at == nil {
		b.at = make(map[[2]string]int)
	}
	key := [2]string{from, to}
	pos, ok := b.at[key]
	if !ok {
		pos = len(b.edges)
		b.at[key] = pos
		b.edges = append(b.edges, domain.Edge{From: from, To: to})
	}
	for _, existing := range b.edges[pos].Options {
		if existing.Equal(opt) {
			return
		}
	}
	b.edges[pos].Options = append(b.edges[pos].Options, opt)
}

func (b *graphBuilder) graph(states []domain.State) domain.Graph {
	return domain.Graph{States: states, Edges: b.edges}
}
