package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/knapsack/config"
	"github.com/katalvlaran/knapsack/logging"
	"github.com/katalvlaran/knapsack/metrics"
	"github.com/katalvlaran/knapsack/solver"
)

// app carries the state shared by the subcommands of one invocation.
type app struct {
	stdout io.Writer
	stderr io.Writer

	configPath  string
	logLevel    string
	format      string
	showMetrics bool

	cfg      config.File
	logger   *slog.Logger
	registry *prometheus.Registry
	recorder *metrics.Recorder
	runID    string
}

// newRootCmd builds the command tree writing to stdout and stderr.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	rootCmd := &cobra.Command{
		Use:   "knapsack",
		Short: "Solve 0/1 knapsack problems",
		Long: `knapsack solves 0/1 knapsack instances read from YAML or JSON files.

Exact solvers (bruteforce, dp, dp_recursive, bnb) return optimal selections.
Approximations (greedy, approx, fptas) and metaheuristics (ga, sa, aco, pso,
cuckoo) trade optimality for speed. Configuration comes from --config, then KNAPSACK_*
environment variables, then flags.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error { return a.setup() },
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error { return usage(err) })
	rootCmd.SetErr(stderr)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "configuration file (YAML or JSON)")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&a.format, "format", formatAuto, "output format: auto, text, json")
	pf.BoolVar(&a.showMetrics, "metrics", false, "print Prometheus metrics after the run")

	rootCmd.AddCommand(
		newSolveCmd(a),
		newCompareCmd(a),
		newAlgorithmsCmd(a),
		newSysinfoCmd(a),
	)

	return rootCmd
}

// setup loads the configuration and builds the logger and metrics registry.
func (a *app) setup() error {
	switch a.format {
	case formatAuto, formatText, formatJSON:
	default:
		return usage(fmt.Errorf("unknown format %q (want auto, text or json)", a.format))
	}

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return usage(err)
	}
	if a.logLevel != "" {
		cfg.LogLevel = strings.ToLower(a.logLevel)
		if err := cfg.Validate(); err != nil {
			return usage(err)
		}
	}
	a.cfg = cfg

	a.runID = uuid.NewString()
	a.logger = logging.New(logging.Config{
		Level:  cfg.Level(),
		JSON:   a.resolvedFormat() == formatJSON,
		Output: a.stderr,
	}).With("run_id", a.runID)

	a.registry = prometheus.NewRegistry()
	a.recorder = metrics.NewRecorder(a.registry)

	return nil
}

// options returns solver options from the configuration, with the memory
// preflight applied and the ambient hooks attached.
func (a *app) options() solver.Options {
	opts := a.cfg.ToOptions()
	opts.Logger = a.logger
	opts.Metrics = a.recorder
	capTables(&opts, a.logger)

	return opts
}

// finish prints the collected metrics when requested.
func (a *app) finish() error {
	if !a.showMetrics {
		return nil
	}

	return writeMetrics(a.stderr, a.registry)
}

// exactArgs is cobra.ExactArgs reporting a usage error.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		return usage(cobra.ExactArgs(n)(cmd, args))
	}
}
