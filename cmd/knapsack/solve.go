package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/knapsack/instance"
	"github.com/katalvlaran/knapsack/solver"
)

func newSolveCmd(a *app) *cobra.Command {
	var (
		algo string
		seed uint64
	)

	cmd := &cobra.Command{
		Use:   "solve <problem>",
		Short: "Solve a problem file with one algorithm",
		Long: `Solve reads a YAML or JSON problem file and runs one algorithm on it.

The algorithm defaults to the configured one (dp unless overridden).`,
		Example: "  knapsack solve items.yaml --algo bnb\n  knapsack solve items.json --algo ga --seed 42 --format json",
		Args:    exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			selected := a.cfg.AlgorithmValue()
			if cmd.Flags().Changed("algo") {
				parsed, err := solver.ParseAlgorithm(algo)
				if err != nil {
					return usage(err)
				}
				selected = parsed
			}

			p, err := instance.Load(args[0])
			if err != nil {
				return usage(err)
			}

			opts := a.options()
			if cmd.Flags().Changed("seed") {
				opts.Seed = seed
			}

			a.logger.Info("solving", "problem", args[0], "algorithm", selected.String(), "items", p.Len())
			res, err := solver.Solve(p, selected, opts)
			if err != nil {
				return err
			}

			rep := solveReport{RunID: a.runID, Capacity: p.Capacity(), Items: p.Len(), Result: res}
			if a.resolvedFormat() == formatJSON {
				err = writeJSON(a.stdout, rep)
			} else {
				err = writeSolveText(a.stdout, rep)
			}
			if err != nil {
				return err
			}

			return a.finish()
		},
	}

	cmd.Flags().StringVarP(&algo, "algo", "a", "", "algorithm selector, as listed by the algorithms command")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed for stochastic algorithms (0 selects the default)")

	return cmd
}
