package approx

import (
	"github.com/katalvlaran/knapsack/core"
)

// Greedy adds items in descending value/weight ratio order while they fit.
// An item that does not fit is skipped and the scan continues.
//
// Steps counts sort comparisons plus one per scanned item.
func Greedy(p *core.Problem) core.Solution {
	var steps int64
	order := core.ByRatio(p, &steps)

	return fill(p, order, steps)
}

// ValueApproximation adds items in descending value order, ignoring weight,
// while they fit. It does not fall back to the best single item, so it can
// fall below half of the optimum (one light valuable item ahead of a heavy
// one that alone is worth more).
//
// Steps counts sort comparisons plus one per scanned item.
func ValueApproximation(p *core.Problem) core.Solution {
	var steps int64
	order := core.ByValue(p, &steps)

	return fill(p, order, steps)
}

// fill takes items in the given order whenever they fit the remaining capacity.
func fill(p *core.Problem, order []int, steps int64) core.Solution {
	capacity := p.Capacity()
	selected := make([]int, 0, len(order))
	var weight float64
	for _, idx := range order {
		steps++
		w := p.Item(idx).Weight
		if weight+w <= capacity {
			selected = append(selected, idx)
			weight += w
		}
	}

	return core.NewSolution(p, selected, steps)
}
