package main

import (
	"fmt"
	"os"

	"github.com/aretw0/automata/internal/cli"
	"github.com/spf13/cobra"
)

var stepCmd = &cobra.Command{
	Use:   "step <file>",
	Short: "Step through a machine one symbol at a time",
	Long: `On a terminal, prompts before every step (enter steps, r restarts, q quits).
Otherwise, or with --batch, prints every step until the input is consumed.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runStep(cmd, args[0]); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(stepCmd)
	machineFlags(stepCmd)
	stepCmd.Flags().Bool("batch", false, "Never prompt")
	stepCmd.Flags().Int("steps", cli.DefaultMaxMoves, "Maximum number of steps (0 for no limit)")
	stepCmd.Flags().Bool("trace", false, "Print the pushdown phases of every step")
}

func runStep(cmd *cobra.Command, path string) error {
	e, err := newEnv(cmd)
	if err != nil {
		return err
	}
	defer e.finish()

	m, err := e.load(cmd, path)
	if err != nil {
		return err
	}

	steps, _ := cmd.Flags().GetInt("steps")
	trace, _ := cmd.Flags().GetBool("trace")
	s := &cli.Stepper{Session: m.Session, Printer: e.printer, Steps: steps, Trace: trace}

	batch, _ := cmd.Flags().GetBool("batch")
	if batch || !cli.IsTerminal(os.Stdin) || !cli.IsTerminal(os.Stdout) {
		_, err := s.Batch()
		return err
	}
	return s.Interactive(os.Stdin, os.Stdout)
}
