package core

import "sort"

// Ordering utilities shared by branch-and-bound and the greedy approximations.
// Both return permutations of item indices and use a stable sort, so ties keep
// Problem order and runs are reproducible.

// ByRatio returns item indices sorted by descending Value/Weight ratio.
// compares, when non-nil, is incremented once per comparison.
//
// Complexity: O(n log n).
func ByRatio(p *Problem, compares *int64) []int {
	return orderBy(p, compares, func(it Item) float64 { return it.Ratio() })
}

// ByValue returns item indices sorted by descending Value, ignoring weight.
// compares, when non-nil, is incremented once per comparison.
//
// Complexity: O(n log n).
func ByValue(p *Problem, compares *int64) []int {
	return orderBy(p, compares, func(it Item) float64 { return it.Value })
}

// orderBy sorts indices by key descending with a stable sort.
func orderBy(p *Problem, compares *int64, key func(Item) float64) []int {
	n := len(p.items)
	keys := make([]float64, n)
	order := make([]int, n)
	for i := 0; i < n; i++ {
		keys[i] = key(p.items[i])
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		if compares != nil {
			*compares++
		}

		return keys[order[a]] > keys[order[b]]
	})

	return order
}
