package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/automata/internal/cli"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "automata",
	Short: "Automata runs and transforms finite, pushdown and Turing machines",
	Long: `Automata loads machine definitions from YAML or JSON files and runs them
step by step or over a whole input. It also converts NFAs to DFAs, minimizes
DFAs and converts between Moore and Mealy transducers.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("log-level", "off", "Log level on stderr: off, debug, info, warn, error")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable coloured output")
	rootCmd.PersistentFlags().Bool("metrics", false, "Print engine metrics after the command")
}

// env bundles what every machine command needs.
type env struct {
	logger   *slog.Logger
	printer  *cli.Printer
	hooks    domain.Hooks
	registry *prometheus.Registry
	noColor  bool
}

func newEnv(cmd *cobra.Command) (*env, error) {
	level, _ := cmd.Flags().GetString("log-level")
	noColor, _ := cmd.Flags().GetBool("no-color")
	withMetrics, _ := cmd.Flags().GetBool("metrics")

	logger, err := cli.NewLogger(level)
	if err != nil {
		return nil, err
	}
	e := &env{
		logger:  logger,
		printer: cli.NewPrinter(os.Stdout, noColor),
		hooks:   observability.LogHooks(logger),
		noColor: noColor,
	}
	if withMetrics {
		e.registry = prometheus.NewRegistry()
		m, err := observability.NewMetrics(e.registry)
		if err != nil {
			return nil, err
		}
		e.hooks = e.hooks.Merge(m.Hooks())
	}
	return e, nil
}

// machineFlags registers the flags shared by commands that build an engine.
func machineFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("input", "i", "", "Input symbols, overriding the definition input")
	cmd.Flags().String("sep", "", "Input separator (default: one symbol per character)")
	cmd.Flags().String("acceptance", "", "Pushdown acceptance: final-state or empty-stack")
	cmd.Flags().Int("closure-limit", 0, "Cap on configurations per pushdown epsilon closure")
}

func (e *env) load(cmd *cobra.Command, path string) (*cli.Machine, error) {
	opts := cli.MachineOptions{
		Logger: e.logger,
		Hooks:  e.hooks,
	}
	opts.Acceptance, _ = cmd.Flags().GetString("acceptance")
	opts.ClosureLimit, _ = cmd.Flags().GetInt("closure-limit")
	if cmd.Flags().Changed("input") {
		raw, _ := cmd.Flags().GetString("input")
		sep, _ := cmd.Flags().GetString("sep")
		opts.Input = cli.ParseInput(raw, sep)
	}
	return cli.LoadMachine(path, opts)
}

// finish prints gathered metrics when --metrics is set.
func (e *env) finish() {
	if e.registry == nil {
		return
	}
	fmt.Println("--- metrics ---")
	if err := observability.WriteSummary(os.Stdout, e.registry); err != nil {
		e.logger.Error("Failed to print metrics", "err", err)
	}
}
