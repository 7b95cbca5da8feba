package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/aretw0/automata/internal/validator"
	"github.com/aretw0/automata/pkg/adapters/file"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Check machine definitions for consistency",
	Long: `Reports dangling references, missing start states and rules the kind
forbids. Unreachable states are reported as warnings.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		failed := false
		for _, path := range args {
			if err := runValidate(path); err != nil {
				fmt.Printf("%s: validation failed: %v\n", path, err)
				failed = true
				continue
			}
			fmt.Printf("%s: machine is valid! ✅\n", path)
		}
		if failed {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(path string) error {
	def, err := file.Load(path)
	if err != nil {
		return err
	}
	kind, err := def.MachineKind()
	if err != nil {
		return err
	}
	graph := def.Graph()
	if err := validator.ValidateGraph(kind, graph, def.Starts); err != nil {
		if errs := validator.ValidationErrors(err); len(errs) > 1 {
			return errors.Join(errs...)
		}
		return err
	}
	for _, id := range validator.Unreachable(graph, def.Starts) {
		fmt.Printf("%s: warning: state %q is unreachable\n", path, id)
	}
	return nil
}
