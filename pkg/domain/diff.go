package domain

// GraphDiff lists what changed between two versions of a graph.
// Only topology counts: state ids, accepting flags, outputs and edge options.
type GraphDiff struct {
	AddedStates   []string `json:"added_states,omitempty"`
	RemovedStates []string `json:"removed_states,omitempty"`
	ChangedStates []string `json:"changed_states,omitempty"`

	// Edge keys are "from->to".
	AddedEdges   []string `json:"added_edges,omitempty"`
	RemovedEdges []string `json:"removed_edges,omitempty"`
	ChangedEdges []string `json:"changed_edges,omitempty"`
}

// DiffGraphs calculates the difference between oldGraph and newGraph.
// A nil result means the topology is unchanged.
func DiffGraphs(oldGraph, newGraph Graph) *GraphDiff {
	diff := &GraphDiff{}

	oldStates := indexStates(oldGraph)
	newStates := indexStates(newGraph)
	for _, s := range newGraph.States {
		prev, ok := oldStates[s.ID]
		switch {
		case !ok:
			diff.AddedStates = append(diff.AddedStates, s.ID)
		case prev != s:
			diff.ChangedStates = append(diff.ChangedStates, s.ID)
		}
	}
	for _, s := range oldGraph.States {
		if _, ok := newStates[s.ID]; !ok {
			diff.RemovedStates = append(diff.RemovedStates, s.ID)
		}
	}

	oldEdges, oldOrder := indexEdges(oldGraph)
	newEdges, newOrder := indexEdges(newGraph)
	for _, key := range newOrder {
		prev, ok := oldEdges[key]
		switch {
		case !ok:
			diff.AddedEdges = append(diff.AddedEdges, key)
		case !sameOptions(prev, newEdges[key]):
			diff.ChangedEdges = append(diff.ChangedEdges, key)
		}
	}
	for _, key := range oldOrder {
		if _, ok := newEdges[key]; !ok {
			diff.RemovedEdges = append(diff.RemovedEdges, key)
		}
	}

	if diff.IsEmpty() {
		return nil
	}
	return diff
}

// TopologyChanged reports whether an engine built from oldGraph must be rebuilt.
func TopologyChanged(oldGraph, newGraph Graph) bool {
	return DiffGraphs(oldGraph, newGraph) != nil
}

// IsEmpty checks if the diff contains any changes.
func (d *GraphDiff) IsEmpty() bool {
	return len(d.AddedStates) == 0 &&
		len(d.RemovedStates) == 0 &&
		len(d.ChangedStates) == 0 &&
		len(d.AddedEdges) == 0 &&
		len(d.RemovedEdges) == 0 &&
		len(d.ChangedEdges) == 0
}

func indexStates(g Graph) map[string]State {
	m := make(map[string]State, len(g.States))
	for _, s := range g.States {
		m[s.ID] = s
	}
	return m
}

// indexEdges merges parallel edges so that splitting one edge into two with
// the same endpoints is not reported as a change.
func indexEdges(g Graph) (map[string][]TransitionOption, []string) {
	m := make(map[string][]TransitionOption, len(g.Edges))
	var order []string
	for _, e := range g.Edges {
		key := e.From + "->" + e.To
		if _, ok := m[key]; !ok {
			order = append(order, key)
		}
		m[key] = append(m[key], e.Options...)
	}
	return m, order
}

// sameOptions compares option multisets, ignoring order.
func sameOptions(a, b []TransitionOption) bool {
	if len(a) != len(b) {
		return false
	}
	used := make([]bool, len(b))
	for _, x := range a {
		found := false
		for j, y := range b {
			if !used[j] && x.Equal(y) {
				used[j] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
