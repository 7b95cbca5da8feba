package cli

import (
	"fmt"
	"strings"

	"github.com/aretw0/automata/pkg/domain"
	"github.com/charmbracelet/glamour"
)

var kindNotes = map[domain.Kind]string{
	domain.KindDFA:    "Deterministic finite automaton. One start state, at most one move per symbol.",
	domain.KindNFA:    "Nondeterministic finite automaton. Several starts and parallel choices, no epsilon moves.",
	domain.KindENFA:   "NFA with epsilon moves, closed before and after every symbol.",
	domain.KindPDA:    "Pushdown automaton. Accepts by final state or by empty stack.",
	domain.KindDPDA:   "PDA that refuses to step when two options could fire together.",
	domain.KindTM:     "Single-tape Turing machine. Steps until no rule matches the head.",
	domain.KindMealy:  "Transducer emitting one output per transition.",
	domain.KindDMealy: "Mealy machine with at most one outcome per state and symbol.",
	domain.KindMoore:  "Transducer emitting the output of every state entered.",
	domain.KindDMoore: "Moore machine with at most one outcome per state and symbol.",
}

// KindsMarkdown documents kinds as a markdown table.
func KindsMarkdown(kinds []domain.Kind) string {
	var sb strings.Builder
	sb.WriteString("# Automaton kinds\n\n| Kind | Stack | Output | Description |\n|---|---|---|---|\n")
	for _, k := range kinds {
		fmt.Fprintf(&sb, "| `%s` | %s | %s | %s |\n", k, yesNo(k.UsesStack()), yesNo(k.IsTransducer()), kindNotes[k])
	}
	return sb.String()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// RenderMarkdown styles markdown for the terminal. When styling is off or
// fails the source is returned unchanged.
func RenderMarkdown(markdown string, styled bool) string {
	if !styled {
		return markdown
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
	)
	if err != nil {
		return markdown
	}
	out, err := r.Render(markdown)
	if err != nil {
		return markdown
	}
	return out
}
