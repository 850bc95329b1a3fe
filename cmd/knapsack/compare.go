package main

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/knapsack/core"
	"github.com/katalvlaran/knapsack/instance"
	"github.com/katalvlaran/knapsack/solver"
)

func newCompareCmd(a *app) *cobra.Command {
	var (
		algos    []string
		verify   bool
		parallel int
		seed     uint64
	)

	cmd := &cobra.Command{
		Use:   "compare <problem>",
		Short: "Run several algorithms on one problem and compare them",
		Long: `Compare runs the selected algorithms (all by default) concurrently, each on
its own copy of the problem, and prints value, weight, steps and the gap to
the best exact value.

With --verify the exact solvers are cross-checked first; a disagreement
fails the command.`,
		Example: "  knapsack compare items.yaml\n  knapsack compare items.yaml --algos dp,greedy,ga --verify",
		Args:    exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			selected, err := parseSelectors(algos)
			if err != nil {
				return usage(err)
			}
			if parallel < 1 {
				return usage(fmt.Errorf("--parallel must be at least 1, got %d", parallel))
			}

			p, err := instance.Load(args[0])
			if err != nil {
				return usage(err)
			}

			opts := a.options()
			if cmd.Flags().Changed("seed") {
				opts.Seed = seed
			}

			rep := compareReport{RunID: a.runID, Capacity: p.Capacity(), Items: p.Len()}
			if verify {
				results, err := solver.CrossCheck(p, opts)
				if err != nil {
					return err
				}
				optimum := results[0].Solution.Value
				rep.Optimal = &optimum
				rep.Verified = true
			}

			rows, err := compareAll(p, selected, opts, parallel)
			if err != nil {
				return err
			}
			rep.Rows = rows
			if rep.Optimal == nil {
				rep.Optimal = bestExact(rows)
			}
			if rep.Optimal != nil {
				for i := range rep.Rows {
					if rep.Rows[i].Error == "" {
						gap := solver.Gap(rep.Rows[i].Value, *rep.Optimal)
						rep.Rows[i].Gap = &gap
					}
				}
			}

			a.logger.Info("compare finished", "problem", args[0], "algorithms", len(rows), "verified", rep.Verified)
			if a.resolvedFormat() == formatJSON {
				err = writeJSON(a.stdout, rep)
			} else {
				err = writeCompareText(a.stdout, rep)
			}
			if err != nil {
				return err
			}

			return a.finish()
		},
	}

	cmd.Flags().StringSliceVar(&algos, "algos", nil, "comma-separated selectors (default: all)")
	cmd.Flags().BoolVar(&verify, "verify", false, "cross-check the exact solvers before comparing")
	cmd.Flags().IntVar(&parallel, "parallel", runtime.NumCPU(), "maximum concurrent solver calls")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed for stochastic algorithms (0 selects the default)")

	return cmd
}

// parseSelectors resolves selectors, defaulting to every algorithm.
func parseSelectors(names []string) ([]solver.Algorithm, error) {
	if len(names) == 0 {
		return solver.Algorithms(), nil
	}
	out := make([]solver.Algorithm, 0, len(names))
	for _, name := range names {
		algo, err := solver.ParseAlgorithm(name)
		if err != nil {
			return nil, err
		}
		out = append(out, algo)
	}

	return out, nil
}

// compareAll solves p with every algorithm, at most parallel at a time. Each
// call gets its own copy of p and its own random stream. Per-algorithm
// failures are recorded in the rows; only an infeasible result aborts.
func compareAll(p *core.Problem, algos []solver.Algorithm, opts solver.Options, parallel int) ([]compareRow, error) {
	rows := make([]compareRow, len(algos))

	var g errgroup.Group
	g.SetLimit(parallel)
	for i, algo := range algos {
		g.Go(func() error {
			local, err := core.NewProblem(p.Items(), p.Capacity())
			if err != nil {
				return err
			}
			callOpts := opts
			callOpts.Source = nil

			row := compareRow{Algorithm: algo, Family: algo.Family()}
			res, err := solver.Solve(local, algo, callOpts)
			switch {
			case errors.Is(err, solver.ErrInfeasibleResult):
				return err
			case err != nil:
				row.Error = err.Error()
			default:
				row.Value = res.Solution.Value
				row.Weight = res.Solution.Weight
				row.Steps = res.Solution.Steps
				row.ElapsedNS = res.Elapsed.Nanoseconds()
			}
			rows[i] = row

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return rows, nil
}

// bestExact returns the highest value among the successful exact rows.
func bestExact(rows []compareRow) *float64 {
	var best *float64
	for _, row := range rows {
		if row.Family != solver.FamilyExact || row.Error != "" {
			continue
		}
		if best == nil || row.Value > *best {
			v := row.Value
			best = &v
		}
	}

	return best
}
