package exact

import (
	"fmt"
	"time"

	"github.com/katalvlaran/knapsack/core"
)

const (
	// DefaultMaxBruteForceItems caps BruteForce at 2^24 subsets.
	DefaultMaxBruteForceItems = 24

	// HardMaxBruteForceItems is the largest cap accepted; masks are uint64.
	HardMaxBruteForceItems = 62

	// DefaultMaxBranchAndBoundItems caps the depth of the branch-and-bound tree.
	DefaultMaxBranchAndBoundItems = 64

	// DefaultMaxTableCells caps (n+1)·(capacity+1) for the tabular solvers
	// (256 MiB of float64 cells).
	DefaultMaxTableCells int64 = 1 << 25

	// deadlineMask makes wall-clock checks happen once every 4096 work units.
	deadlineMask = 4095
)

// Options configures the exact solvers.
//
// Fields:
//   - MaxSteps: work units allowed before ErrBudgetExceeded (0 = unlimited).
//   - TimeLimit: wall-clock budget (0 = unlimited).
//   - MaxBruteForceItems: item count above which BruteForce refuses to run.
//   - MaxBranchAndBoundItems: item count above which BranchAndBound refuses to run.
//   - MaxTableCells: table size above which the tabular solvers refuse to run.
//   - RecordCombinations: BruteForce also returns every enumerated subset.
//
// Zero caps fall back to the defaults; negative values are rejected.
type Options struct {
	MaxSteps               int64
	TimeLimit              time.Duration
	MaxBruteForceItems     int
	MaxBranchAndBoundItems int
	MaxTableCells          int64
	RecordCombinations     bool
}

// DefaultOptions returns Options with no budget and the default caps.
func DefaultOptions() Options {
	return Options{
		MaxBruteForceItems:     DefaultMaxBruteForceItems,
		MaxBranchAndBoundItems: DefaultMaxBranchAndBoundItems,
		MaxTableCells:          DefaultMaxTableCells,
	}
}

// normalize validates opts and fills zero caps with defaults.
func (o Options) normalize() (Options, error) {
	if o.MaxSteps < 0 {
		return o, fmt.Errorf("%w: MaxSteps must be non-negative, got %d", core.ErrInvalidInput, o.MaxSteps)
	}
	if o.TimeLimit < 0 {
		return o, fmt.Errorf("%w: TimeLimit must be non-negative, got %v", core.ErrInvalidInput, o.TimeLimit)
	}
	if o.MaxBruteForceItems < 0 || o.MaxBruteForceItems > HardMaxBruteForceItems {
		return o, fmt.Errorf("%w: MaxBruteForceItems must be in [0,%d], got %d",
			core.ErrInvalidInput, HardMaxBruteForceItems, o.MaxBruteForceItems)
	}
	if o.MaxBranchAndBoundItems < 0 {
		return o, fmt.Errorf("%w: MaxBranchAndBoundItems must be non-negative, got %d", core.ErrInvalidInput, o.MaxBranchAndBoundItems)
	}
	if o.MaxTableCells < 0 {
		return o, fmt.Errorf("%w: MaxTableCells must be non-negative, got %d", core.ErrInvalidInput, o.MaxTableCells)
	}

	if o.MaxBruteForceItems == 0 {
		o.MaxBruteForceItems = DefaultMaxBruteForceItems
	}
	if o.MaxBranchAndBoundItems == 0 {
		o.MaxBranchAndBoundItems = DefaultMaxBranchAndBoundItems
	}
	if o.MaxTableCells == 0 {
		o.MaxTableCells = DefaultMaxTableCells
	}

	return o, nil
}

// tableShape checks that p can index a table of (n+1)×(capacity+1) cells
// within maxCells and returns the integral capacity.
func tableShape(p *core.Problem, maxCells int64) (int, error) {
	if !p.IsIntegral() {
		return 0, fmt.Errorf("%w: tabular solvers need integral weights and capacity", core.ErrInvalidInput)
	}
	rows := int64(p.Len()) + 1
	cols := int64(p.Capacity()) + 1
	if cols > maxCells/rows {
		return 0, fmt.Errorf("%w: table of %d×%d cells exceeds limit %d", core.ErrComplexityExceeded, rows, cols, maxCells)
	}

	return int(p.Capacity()), nil
}
