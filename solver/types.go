package solver

import (
	"errors"
	"log/slog"
	"time"

	"github.com/katalvlaran/knapsack/approx"
	"github.com/katalvlaran/knapsack/core"
	"github.com/katalvlaran/knapsack/exact"
	"github.com/katalvlaran/knapsack/heuristic"
	"github.com/katalvlaran/knapsack/metrics"
)

var (
	// ErrInfeasibleResult indicates a solver returned a selection heavier than
	// the capacity. It signals a solver bug and is never expected.
	ErrInfeasibleResult = errors.New("solver: infeasible result")

	// ErrInconsistentExact indicates the exact solvers disagree on the optimum.
	ErrInconsistentExact = errors.New("solver: exact solvers disagree")
)

// Options bundles the per-family options and the ambient hooks.
type Options struct {
	Exact  exact.Options
	FPTAS  approx.FPTASOptions
	GA     heuristic.GAOptions
	SA     heuristic.SAOptions
	ACO    heuristic.ACOOptions
	PSO    heuristic.PSOOptions
	Cuckoo heuristic.CuckooOptions

	// Seed seeds stochastic solvers when Source is nil (0 selects the default seed).
	Seed uint64

	// Source, when set, is used instead of Seed. It must not be shared by
	// concurrent calls.
	Source heuristic.Source

	// Logger receives debug and warn records; nil discards them.
	Logger *slog.Logger

	// Metrics, when set, records every call.
	Metrics *metrics.Recorder
}

// DefaultOptions returns the default parameters of every solver.
func DefaultOptions() Options {
	return Options{
		Exact:  exact.DefaultOptions(),
		FPTAS:  approx.DefaultFPTASOptions(),
		GA:     heuristic.DefaultGAOptions(),
		SA:     heuristic.DefaultSAOptions(),
		ACO:    heuristic.DefaultACOOptions(),
		PSO:    heuristic.DefaultPSOOptions(),
		Cuckoo: heuristic.DefaultCuckooOptions(),
	}
}

// Result is the uniform output of Solve.
type Result struct {
	Algorithm Algorithm     `json:"algorithm"`
	Solution  core.Solution `json:"solution"`
	Elapsed   time.Duration `json:"elapsed_ns"`
}
