package solver

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/knapsack/core"
)

// valueTolerance is the relative slack when comparing optimal values that
// were summed in different orders.
const valueTolerance = 1e-9

// CrossCheck runs every exact solver that accepts p and verifies that all
// of them report the same optimal value.
//
// Solvers that decline the instance (ErrComplexityExceeded, or
// ErrInvalidInput for fractional weights on the tabular solvers) are
// skipped. At least branch-and-bound or brute force normally runs.
//
// Returns the results of the solvers that ran, in selector order.
// Errors:
//   - ErrInconsistentExact if two optimal values differ.
//   - ErrComplexityExceeded if no exact solver accepted p.
//   - Any other solver error (e.g. ErrBudgetExceeded) as is.
func CrossCheck(p *core.Problem, opts Options) ([]Result, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: nil problem", core.ErrInvalidInput)
	}
	var results []Result
	for _, algo := range Algorithms() {
		if algo.Family() != FamilyExact {
			continue
		}
		res, err := Solve(p, algo, opts)
		switch {
		case err == nil:
			results = append(results, res)
		case errors.Is(err, core.ErrComplexityExceeded):
			continue
		case errors.Is(err, core.ErrInvalidInput) && tabular(algo) && !p.IsIntegral():
			continue
		default:
			return results, err
		}
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("%w: no exact solver accepts %d items", core.ErrComplexityExceeded, p.Len())
	}

	ref := results[0]
	for _, r := range results[1:] {
		if !sameValue(ref.Solution.Value, r.Solution.Value) {
			return results, fmt.Errorf("%w: %s=%v %s=%v", ErrInconsistentExact,
				ref.Algorithm, ref.Solution.Value, r.Algorithm, r.Solution.Value)
		}
	}

	return results, nil
}

// Gap returns the relative optimality gap (optimal-value)/optimal, or 0 when
// optimal is 0.
func Gap(value, optimal float64) float64 {
	if optimal == 0 {
		return 0
	}

	return (optimal - value) / optimal
}

// tabular reports whether algo needs integral weights.
func tabular(algo Algorithm) bool {
	return algo == DynamicProgramming || algo == RecursiveDP
}

func sameValue(a, b float64) bool {
	return math.Abs(a-b) <= valueTolerance*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}
