package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/aretw0/automata/internal/cli"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Run a machine over its whole input",
	Long: `Loads the definition and consumes the whole input, printing the final
configurations and the ACCEPT/REJECT verdict. Turing machines are stepped until
they halt or --max-moves is reached. With --watch the machine is re-run every
time the file changes.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runRun(cmd, args[0]); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	machineFlags(runCmd)
	runCmd.Flags().Int("max-moves", cli.DefaultMaxMoves, "Move limit for Turing machines")
	runCmd.Flags().Bool("json", false, "Print the result as JSON")
	runCmd.Flags().Bool("trace", false, "Print the pushdown phase trace")
	runCmd.Flags().BoolP("watch", "w", false, "Re-run when the definition changes")
}

func runRun(cmd *cobra.Command, path string) error {
	e, err := newEnv(cmd)
	if err != nil {
		return err
	}
	defer e.finish()

	m, err := e.load(cmd, path)
	if err != nil {
		return err
	}

	if watch, _ := cmd.Flags().GetBool("watch"); watch {
		sigCtx := cli.NewSignalContext(context.Background())
		defer sigCtx.Cancel()
		return cli.RunWatch(sigCtx, m, e.printer, os.Stdout, e.logger)
	}

	maxMoves, _ := cmd.Flags().GetInt("max-moves")
	res, err := m.Execute(maxMoves)
	if err != nil {
		return err
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	e.printer.Result(res)
	if trace, _ := cmd.Flags().GetBool("trace"); trace && len(res.Trace) > 0 {
		e.printer.Trace(res.Trace)
	}
	return nil
}
