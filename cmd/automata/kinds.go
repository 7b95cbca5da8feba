package main

import (
	"fmt"
	"os"

	"github.com/aretw0/automata/internal/cli"
	"github.com/aretw0/automata/pkg/registry"
	"github.com/spf13/cobra"
)

var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List the supported automaton kinds",
	Run: func(cmd *cobra.Command, args []string) {
		noColor, _ := cmd.Flags().GetBool("no-color")
		md := cli.KindsMarkdown(registry.Default().Kinds())
		fmt.Print(cli.RenderMarkdown(md, !noColor && cli.IsTerminal(os.Stdout)))
	},
}

func init() {
	rootCmd.AddCommand(kindsCmd)
}
