package exact

import (
	"fmt"

	"github.com/katalvlaran/knapsack/core"
)

// BruteForce enumerates every subset of p's items and returns one with the
// highest total value whose weight fits the capacity. Ties keep the subset
// with the smallest mask, so the result is deterministic.
//
// Steps counts one unit per subset plus one per item inspected in it.
// With opts.RecordCombinations every subset is also returned, in mask order.
//
// Errors:
//   - ErrInvalidInput if opts are malformed.
//   - ErrComplexityExceeded if p.Len() > opts.MaxBruteForceItems.
//   - ErrBudgetExceeded if opts.MaxSteps or opts.TimeLimit fire.
func BruteForce(p *core.Problem, opts Options) (core.Solution, error) {
	opts, err := opts.normalize()
	if err != nil {
		return core.Solution{}, err
	}
	n := p.Len()
	if n == 0 {
		return core.EmptySolution(0), nil
	}
	if n > opts.MaxBruteForceItems {
		return core.Solution{}, fmt.Errorf("%w: brute force over %d items exceeds limit %d",
			core.ErrComplexityExceeded, n, opts.MaxBruteForceItems)
	}

	// Prefetch into dense slices for the hot loop.
	values := p.Values()
	weights := p.Weights()
	capacity := p.Capacity()

	guard := newBudget(opts)
	total := uint64(1) << uint(n)
	var (
		steps     int64
		bestMask  uint64
		bestValue float64
		combos    []core.Combination
	)
	if opts.RecordCombinations {
		combos = make([]core.Combination, 0, total)
	}

	for mask := uint64(0); mask < total; mask++ {
		if guard.tick() {
			return core.Solution{}, guard.err("brute force")
		}
		steps++

		var v, w float64
		for j := 0; j < n; j++ {
			steps++
			if mask&(1<<uint(j)) != 0 {
				v += values[j]
				w += weights[j]
			}
		}

		feasible := w <= capacity
		if opts.RecordCombinations {
			combos = append(combos, core.Combination{
				Indices:  maskIndices(mask, n),
				Value:    v,
				Weight:   w,
				Feasible: feasible,
			})
		}
		if feasible && v > bestValue {
			bestValue = v
			bestMask = mask
		}
	}

	sol := core.NewSolution(p, maskIndices(bestMask, n), steps)
	sol.Combinations = combos

	return sol, nil
}

// maskIndices lists the set bits of mask below n in ascending order.
func maskIndices(mask uint64, n int) []int {
	idx := make([]int, 0, n)
	for j := 0; j < n; j++ {
		if mask&(1<<uint(j)) != 0 {
			idx = append(idx, j)
		}
	}

	return idx
}
