package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/automata/pkg/domain"
	"github.com/muesli/termenv"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/term"
)

// Printer renders engine results for humans.
type Printer struct {
	out   io.Writer
	color bool
	p     termenv.Profile
}

// NewPrinter writes to out. Colours are used only when out is a terminal
// and noColor is false.
func NewPrinter(out io.Writer, noColor bool) *Printer {
	pr := &Printer{out: out, p: termenv.Ascii}
	if !noColor && IsTerminal(out) {
		pr.color = true
		pr.p = termenv.ColorProfile()
	}
	return pr
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w any) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (pr *Printer) paint(s, hex string) string {
	if !pr.color {
		return s
	}
	return termenv.String(s).Foreground(pr.p.Color(hex)).Bold().String()
}

// Verdict is the coloured ACCEPT/REJECT word for res.
func (pr *Printer) Verdict(res domain.StepResult) string {
	switch {
	case res.Accepting:
		return pr.paint("ACCEPT", "#22c55e")
	case res.Halted:
		return pr.paint("HALT", "#f59e0b")
	default:
		return pr.paint("REJECT", "#ef4444")
	}
}

// Result prints the verdict line followed by the configurations.
func (pr *Printer) Result(res domain.StepResult) {
	status := pr.Verdict(res)
	if res.Stuck {
		status += " (stuck)"
	}
	fmt.Fprintf(pr.out, "step %d: %s\n", res.Step, status)
	if len(res.Output) > 0 {
		fmt.Fprintf(pr.out, "output: %s\n", strings.Join(res.Output, " "))
	}
	if res.Tape != nil {
		fmt.Fprintf(pr.out, "tape: %s\n", FormatTape(*res.Tape))
	}
	pr.Configurations(res.Configurations)
}

// Configurations prints one row per configuration.
func (pr *Printer) Configurations(cfgs []domain.Configuration) {
	if len(cfgs) == 0 {
		fmt.Fprintln(pr.out, "(no configurations)")
		return
	}
	table := tablewriter.NewWriter(pr.out)
	table.Header([]string{"State", "Accepting", "Stack", "From", "Via"})
	for _, c := range cfgs {
		table.Append(configRow(c))
	}
	table.Render()
}

// Trace prints a phase history.
func (pr *Printer) Trace(trace []domain.PhaseSet) {
	table := tablewriter.NewWriter(pr.out)
	table.Header([]string{"Step", "Phase", "State", "Accepting", "Stack", "From", "Via"})
	for _, ps := range trace {
		for _, c := range ps.Configurations {
			row := append([]string{fmt.Sprint(ps.Step), string(ps.Phase)}, configRow(c)...)
			table.Append(row)
		}
	}
	table.Render()
}

// Transitions prints the flattened transition list of graph.
func (pr *Printer) Transitions(graph domain.Graph) {
	table := tablewriter.NewWriter(pr.out)
	table.Header([]string{"From", "Symbol", "Pop", "Push", "Move", "Output", "To"})
	for _, e := range graph.Edges {
		for _, o := range e.Options {
			table.Append([]string{e.From, o.Symbol, o.Pop, strings.Join(o.Push, " "), string(o.Move), o.Output, e.To})
		}
	}
	table.Render()
}

// Diff prints what a reload changed.
func (pr *Printer) Diff(d *domain.GraphDiff) {
	if d == nil {
		fmt.Fprintln(pr.out, "no topology change")
		return
	}
	list := func(label string, items []string) {
		if len(items) > 0 {
			fmt.Fprintf(pr.out, "  %s: %s\n", label, strings.Join(items, ", "))
		}
	}
	fmt.Fprintln(pr.out, "graph changed:")
	list("added states", d.AddedStates)
	list("removed states", d.RemovedStates)
	list("changed states", d.ChangedStates)
	list("added edges", d.AddedEdges)
	list("removed edges", d.RemovedEdges)
	list("changed edges", d.ChangedEdges)
}

// Reload prints the topology diff followed by input and acceptance changes.
func (pr *Printer) Reload(r Reloaded) {
	pr.Diff(r.Diff)
	if r.Input != nil {
		fmt.Fprintf(pr.out, "input changed: [%s]\n", strings.Join(r.Input, " "))
	}
	if r.Acceptance != nil {
		fmt.Fprintf(pr.out, "acceptance changed: %s\n", *r.Acceptance)
	}
}

func configRow(c domain.Configuration) []string {
	from, via := "", ""
	if c.Lineage != nil {
		from, via = c.Lineage.From, c.Lineage.Via
	}
	return []string{c.StateID, fmt.Sprint(c.Accepting), FormatStack(c.Stack), from, via}
}

// FormatStack renders a stack top first.
func FormatStack(items []string) string {
	if len(items) == 0 {
		return ""
	}
	top := make([]string, len(items))
	for i, s := range items {
		top[len(items)-1-i] = s
	}
	return strings.Join(top, " ")
}

// FormatTape renders the tape with the head cell in brackets.
func FormatTape(t domain.TapeSnapshot) string {
	cells := make([]string, len(t.Cells))
	for i, c := range t.Cells {
		if i == t.Head {
			c = "[" + c + "]"
		}
		cells[i] = c
	}
	return strings.Join(cells, " ")
}
