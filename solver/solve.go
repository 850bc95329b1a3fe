// Package solver - unified dispatcher for knapsack solvers.
//
// Design principles:
//   - Deterministic: stochastic solvers are seeded from Options; no time-based randomness.
//   - Strict sentinels: failures wrap the core error taxonomy and match with errors.Is.
//   - One shape: every algorithm returns a Result with a feasible Solution.
package solver

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/knapsack/approx"
	"github.com/katalvlaran/knapsack/core"
	"github.com/katalvlaran/knapsack/exact"
	"github.com/katalvlaran/knapsack/heuristic"
	"github.com/katalvlaran/knapsack/logging"
	"github.com/katalvlaran/knapsack/metrics"
)

// Solve runs algo on p.
//
// Contracts:
//   - p must be non-nil (else ErrInvalidInput).
//   - algo must be Valid (else ErrUnknownAlgorithm).
//   - A Problem without items yields the empty Solution for every algorithm.
//
// Errors: those of the selected solver, plus ErrInfeasibleResult if the
// returned selection exceeds the capacity. FPTAS with all-zero values
// returns the empty Solution together with ErrDegenerateInput.
func Solve(p *core.Problem, algo Algorithm, opts Options) (Result, error) {
	if p == nil {
		return Result{Algorithm: algo}, fmt.Errorf("%w: nil problem", core.ErrInvalidInput)
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	if !algo.Valid() {
		err := fmt.Errorf("%w: %d", core.ErrUnknownAlgorithm, int(algo))
		opts.Metrics.Observe(algo.String(), metrics.OutcomeUnknownAlgorithm, 0, 0, 0)
		logger.Warn("solve rejected", "algorithm", algo.String(), "error", err)
		return Result{Algorithm: algo}, err
	}

	logger.Debug("solve start",
		slog.String("algorithm", algo.String()),
		slog.Int("items", p.Len()),
		slog.Float64("capacity", p.Capacity()))

	start := time.Now()
	var (
		sol core.Solution
		err error
	)
	if p.Len() == 0 {
		sol = core.EmptySolution(0)
	} else {
		sol, err = dispatch(p, algo, opts)
	}
	elapsed := time.Since(start)

	if err == nil && !sol.Feasible(p) {
		err = fmt.Errorf("%w: %s selected weight %v over capacity %v",
			ErrInfeasibleResult, algo, sol.Weight, p.Capacity())
		sol = core.Solution{}
	}

	res := Result{Algorithm: algo, Solution: sol, Elapsed: elapsed}
	outcome := classify(err)
	opts.Metrics.Observe(algo.String(), outcome, elapsed, sol.Steps, sol.Value)
	if err != nil {
		logger.Warn("solve failed",
			slog.String("algorithm", algo.String()),
			slog.String("outcome", outcome),
			slog.Duration("elapsed", elapsed),
			slog.Any("error", err))
		return res, err
	}

	logger.Debug("solve done",
		slog.String("algorithm", algo.String()),
		slog.Int("items", p.Len()),
		slog.Float64("capacity", p.Capacity()),
		slog.Float64("value", sol.Value),
		slog.Float64("weight", sol.Weight),
		slog.Int64("steps", sol.Steps),
		slog.Duration("elapsed", elapsed))

	return res, nil
}

// SolveNamed parses selector and runs Solve.
func SolveNamed(p *core.Problem, selector string, opts Options) (Result, error) {
	algo, err := ParseAlgorithm(selector)
	if err != nil {
		opts.Metrics.Observe(selector, metrics.OutcomeUnknownAlgorithm, 0, 0, 0)
		return Result{Algorithm: -1}, err
	}

	return Solve(p, algo, opts)
}

// dispatch routes to the implementation of algo.
func dispatch(p *core.Problem, algo Algorithm, opts Options) (core.Solution, error) {
	switch algo {
	case BruteForce:
		return exact.BruteForce(p, opts.Exact)
	case DynamicProgramming:
		return exact.DynamicProgramming(p, opts.Exact)
	case RecursiveDP:
		return exact.RecursiveDP(p, opts.Exact)
	case BranchAndBound:
		return exact.BranchAndBound(p, opts.Exact)
	case Greedy:
		return approx.Greedy(p), nil
	case ValueApproximation:
		return approx.ValueApproximation(p), nil
	case FPTAS:
		return approx.FPTAS(p, opts.FPTAS)
	}

	src := opts.Source
	if src == nil {
		src = heuristic.NewSource(opts.Seed)
	}
	switch algo {
	case Genetic:
		return heuristic.GeneticAlgorithm(p, opts.GA, src)
	case Annealing:
		return heuristic.SimulatedAnnealing(p, opts.SA, src)
	case AntColony:
		return heuristic.AntColony(p, opts.ACO, src)
	case ParticleSwarm:
		return heuristic.ParticleSwarm(p, opts.PSO, src)
	case Cuckoo:
		return heuristic.CuckooSearch(p, opts.Cuckoo, src)
	default:
		return core.Solution{}, fmt.Errorf("%w: %d", core.ErrUnknownAlgorithm, int(algo))
	}
}

// classify maps an error to a metrics outcome label.
func classify(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case errors.Is(err, core.ErrInvalidInput):
		return metrics.OutcomeInvalidInput
	case errors.Is(err, core.ErrComplexityExceeded):
		return metrics.OutcomeComplexityExceeded
	case errors.Is(err, core.ErrDegenerateInput):
		return metrics.OutcomeDegenerateInput
	case errors.Is(err, core.ErrBudgetExceeded):
		return metrics.OutcomeBudgetExceeded
	case errors.Is(err, core.ErrUnknownAlgorithm):
		return metrics.OutcomeUnknownAlgorithm
	default:
		return metrics.OutcomeError
	}
}
