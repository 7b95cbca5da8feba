package runtime

import (
	"github.com/aretw0/automata/internal/compiler"
)

// closureTable memoises the epsilon closure of every state of a table,
// ignoring stacks. Each closure is sorted by logical index.
type closureTable [][]int

func newClosureTable(t *compiler.Table) closureTable {
	ct := make(closureTable, len(t.States))
	for s := range t.States {
		visited := make([]bool, len(t.States))
		var visit func(v int)
		visit = func(v int) {
			if visited[v] {
				return
			}
			visited[v] = true
			for _, c := range t.EpsilonCells(v) {
				visit(c.Target)
			}
		}
		visit(s)
		ct[s] = collect(visited)
	}
	return ct
}

// closeSet returns the sorted union of the closures of every state in set.
func (ct closureTable) closeSet(set []int) []int {
	mask := make([]bool, len(ct))
	for _, s := range set {
		for _, r := range ct[s] {
			mask[r] = true
		}
	}
	return collect(mask)
}

// image returns the sorted targets of set under the symbol at index sym.
func image(t *compiler.Table, set []int, sym int) []int {
	mask := make([]bool, len(t.States))
	for _, s := range set {
		for _, c := range t.Cells(s, sym) {
			mask[c.Target] = true
		}
	}
	return collect(mask)
}

func collect(mask []bool) []int {
	var out []int
	for i, ok := range mask {
		if ok {
			out = append(out, i)
		}
	}
	return out
}
