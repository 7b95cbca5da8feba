package main

import (
	"fmt"
	"os"

	"github.com/aretw0/automata"
	"github.com/aretw0/automata/pkg/adapters/file"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/ports"
	"github.com/spf13/cobra"
)

// conversions maps an operation name to its output kind and implementation.
var conversions = map[string]struct {
	kind domain.Kind
	run  func(a ports.Automaton) (domain.Graph, []string, error)
}{
	"nfa2dfa": {domain.KindDFA, func(a ports.Automaton) (domain.Graph, []string, error) {
		d, ok := automata.AsDeterminizer(a)
		if !ok {
			return domain.Graph{}, nil, fmt.Errorf("%s cannot be determinized", a.Kind())
		}
		g, start, err := d.NFAToDFA()
		return g, []string{start}, err
	}},
	"minimize": {domain.KindDFA, func(a ports.Automaton) (domain.Graph, []string, error) {
		m, ok := automata.AsMinimizer(a)
		if !ok {
			return domain.Graph{}, nil, fmt.Errorf("%s cannot be minimized", a.Kind())
		}
		g, start, err := m.MinimizeDFA()
		return g, []string{start}, err
	}},
	"moore2mealy": {domain.KindMealy, func(a ports.Automaton) (domain.Graph, []string, error) {
		c, ok := automata.AsConverter(a)
		if !ok {
			return domain.Graph{}, nil, fmt.Errorf("%s is not a transducer", a.Kind())
		}
		return c.MooreToMealy()
	}},
	"mealy2moore": {domain.KindMoore, func(a ports.Automaton) (domain.Graph, []string, error) {
		c, ok := automata.AsConverter(a)
		if !ok {
			return domain.Graph{}, nil, fmt.Errorf("%s is not a transducer", a.Kind())
		}
		return c.MealyToMoore()
	}},
}

var convertCmd = &cobra.Command{
	Use:   "convert <file> <nfa2dfa|minimize|moore2mealy|mealy2moore>",
	Short: "Transform a machine into an equivalent one",
	Long: `Builds the machine and writes the transformed definition to --out
(YAML or JSON by extension) or, without --out, prints it as YAML.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runConvert(cmd, args[0], args[1]); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().StringP("out", "o", "", "Destination file")
	convertCmd.Flags().Bool("table", false, "Also print the resulting transitions")
}

func runConvert(cmd *cobra.Command, path, op string) error {
	conv, ok := conversions[op]
	if !ok {
		return fmt.Errorf("unknown conversion %q", op)
	}

	e, err := newEnv(cmd)
	if err != nil {
		return err
	}
	defer e.finish()

	m, err := e.load(cmd, path)
	if err != nil {
		return err
	}

	graph, starts, err := conv.run(m.Session.Engine())
	if err != nil {
		return err
	}
	out := file.FromGraph(conv.kind, graph, starts)

	if table, _ := cmd.Flags().GetBool("table"); table {
		e.printer.Transitions(graph)
	}

	dest, _ := cmd.Flags().GetString("out")
	if dest == "" {
		data, err := file.Encode(out, file.FormatYAML)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := file.Save(dest, out); err != nil {
		return err
	}
	fmt.Printf("Wrote %s (%d states) to %s\n", conv.kind, len(graph.States), dest)
	return nil
}
