package runtime

import (
	"fmt"

	"github.com/aretw0/automata/internal/compiler"
	"github.com/aretw0/automata/pkg/domain"
)

// minimize runs Moore partition refinement over the state skeleton of t.
// Groups are named "G0", "G1", ... by their first member.
func minimize(t *compiler.Table) (domain.Graph, string, error) {
	if len(t.Starts) == 0 {
		return domain.Graph{}, "", fmt.Errorf("minimization: %w", domain.ErrUninitialized)
	}
	if t.HasEpsilon() {
		return domain.Graph{}, "", &domain.NonMinimizableError{Reason: "epsilon transitions present"}
	}
	if !anyAccepting(t, allStates(t)) {
		return domain.Graph{}, "", &domain.NonMinimizableError{Reason: "no accepting state"}
	}

	letters := t.Alphabet.Letters()
	delta, err := totalFunction(t, letters)
	if err != nil {
		return domain.Graph{}, "", err
	}

	group := make([]int, len(t.States))
	count := renumber(group, func(s int) string {
		if t.States[s].Accepting {
			return "1"
		}
		return "0"
	})
	for {
		prev := append([]int(nil), group...)
		next := renumber(group, func(s int) string {
			sig := make([]int, 0, len(letters)+1)
			sig = append(sig, prev[s])
			for _, target := range delta[s] {
				sig = append(sig, prev[target])
			}
			return intsKey(sig)
		})
		if next == count {
			break
		}
		count = next
	}

	states := make([]domain.State, count)
	rep := make([]int, count)
	for i := range rep {
		rep[i] = -1
	}
	for s, g := range group {
		if rep[g] < 0 {
			rep[g] = s
			states[g] = domain.State{ID: groupID(g)}
		}
		if t.States[s].Accepting {
			states[g].Accepting = true
		}
	}

	var b graphBuilder
	for g, s := range rep {
		for li, letter := range letters {
			b.link(groupID(g), groupID(group[delta[s][li]]), domain.TransitionOption{Symbol: letter})
		}
	}
	return b.graph(states), groupID(group[t.Start()]), nil
}

// totalFunction returns delta[state][letter] or a NonMinimizableError when a
// move is missing or ambiguous.
func totalFunction(t *compiler.Table, letters []string) ([][]int, error) {
	delta := make([][]int, len(t.States))
	for s := range t.States {
		delta[s] = make([]int, len(letters))
		for li, letter := range letters {
			target := -1
			for _, c := range t.CellsFor(s, letter) {
				if target >= 0 && c.Target != target {
					return nil, &domain.NonMinimizableError{
						Reason: fmt.Sprintf("state %q has several targets on %q", t.States[s].ID, letter),
					}
				}
				target = c.Target
			}
			if target < 0 {
				return nil, &domain.NonMinimizableError{
					Reason: fmt.Sprintf("transition function is not total: state %q has no move on %q", t.States[s].ID, letter),
				}
			}
			delta[s][li] = target
		}
	}
	return delta, nil
}

// renumber assigns group ids by first appearance of each signature and
// returns the number of groups.
func renumber(group []int, signature func(s int) string) int {
	ids := make(map[string]int)
	for s := range group {
		key := signature(s)
		id, ok := ids[key]
		if !ok {
			id = len(ids)
			ids[key] = id
		}
		group[s] = id
	}
	return len(ids)
}

func groupID(g int) string { return fmt.Sprintf("G%d", g) }

func allStates(t *compiler.Table) []int {
	out := make([]int, len(t.States))
	for i := range out {
		out[i] = i
	}
	return out
}
