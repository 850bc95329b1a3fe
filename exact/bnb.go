// Package exact: Branch-and-Bound (depth-first search with a fractional bound).
//
// BranchAndBound explores the include/exclude tree over items sorted by
// value/weight ratio (descending, stable), trying "include" before "exclude".
//
// Rationale (succinct):
//  1. Items are prefetched into dense slices in ratio order so the bound
//     loop never goes through the Problem accessors.
//  2. Upper bound at a node: current value plus the greedy fractional fill
//     of the remaining capacity with the remaining items. It is admissible
//     (≥ any completion) because ratio order maximizes the fractional fill.
//  3. A node is abandoned when it is overweight, or when its bound is
//     strictly below the incumbent. Nodes whose bound only ties the
//     incumbent are still explored.
//  4. The incumbent starts as the empty selection (value 0) and is replaced
//     only by strictly better leaves.
//  5. Budgets: MaxSteps and a sparse deadline check (every 4096 nodes).
//
// Complexity:
//   - Worst case O(n·2ⁿ); practical speed comes from pruning.
//   - Memory: O(n) for the current path and the dense buffers.

package exact

import (
	"fmt"

	"github.com/katalvlaran/knapsack/core"
)

// bbEngine holds all search data and policies.
type bbEngine struct {
	// Configuration
	n        int
	capacity float64

	// Items in ratio order (dense): v[k], w[k] belong to problem index order[k].
	order []int
	v     []float64
	w     []float64

	// Budget
	guard   budget
	aborted bool

	// Current search state: positions (in ratio order) on the include path.
	path []int

	// Incumbent
	bestPath  []int
	bestValue float64

	// Instrumentation: nodes visited plus bound iterations, and nodes alone.
	steps int64
	nodes int64
}

// BranchAndBound solves p exactly with depth-first branch-and-bound.
//
// Steps counts visited nodes, bound evaluations, the items each bound
// inspects, and the comparisons of the initial ratio sort.
//
// Errors:
//   - ErrInvalidInput if opts are malformed.
//   - ErrComplexityExceeded if p.Len() > opts.MaxBranchAndBoundItems.
//   - ErrBudgetExceeded if opts.MaxSteps or opts.TimeLimit fire.
func BranchAndBound(p *core.Problem, opts Options) (core.Solution, error) {
	opts, err := opts.normalize()
	if err != nil {
		return core.Solution{}, err
	}
	n := p.Len()
	if n == 0 {
		return core.EmptySolution(0), nil
	}
	if n > opts.MaxBranchAndBoundItems {
		return core.Solution{}, fmt.Errorf("%w: branch and bound over %d items exceeds limit %d",
			core.ErrComplexityExceeded, n, opts.MaxBranchAndBoundItems)
	}

	e := newBBEngine(p, opts)
	e.branch(0, 0, 0)
	if e.aborted {
		return core.Solution{}, e.guard.err("branch and bound")
	}

	return e.solution(p), nil
}

// newBBEngine prefetches the items of a non-empty p in ratio order.
func newBBEngine(p *core.Problem, opts Options) *bbEngine {
	n := p.Len()
	e := &bbEngine{
		n:        n,
		capacity: p.Capacity(),
		v:        make([]float64, n),
		w:        make([]float64, n),
		guard:    newBudget(opts),
		path:     make([]int, 0, n),
		bestPath: make([]int, 0, n),
	}
	e.order = core.ByRatio(p, &e.steps)
	for k, idx := range e.order {
		it := p.Item(idx)
		e.v[k] = it.Value
		e.w[k] = it.Weight
	}

	return e
}

// solution maps the incumbent path back to problem indices.
func (e *bbEngine) solution(p *core.Problem) core.Solution {
	selected := make([]int, len(e.bestPath))
	for i, k := range e.bestPath {
		selected[i] = e.order[k]
	}

	return core.NewSolution(p, selected, e.steps)
}

// branch explores the subtree rooted at position level with the given
// accumulated value and weight.
func (e *bbEngine) branch(level int, value, weight float64) {
	if e.aborted {
		return
	}
	if e.guard.tick() {
		e.aborted = true
		return
	}
	e.steps++
	e.nodes++

	if weight > e.capacity {
		return
	}
	if level == e.n {
		if value > e.bestValue {
			e.bestValue = value
			e.bestPath = append(e.bestPath[:0], e.path...)
		}
		return
	}
	if e.bound(level, value, weight) < e.bestValue {
		return
	}

	// Include first, then exclude.
	e.path = append(e.path, level)
	e.branch(level+1, value+e.v[level], weight+e.w[level])
	e.path = e.path[:len(e.path)-1]
	e.branch(level+1, value, weight)
}

// bound returns value plus the fractional fill of the remaining capacity
// using items from position level onward.
func (e *bbEngine) bound(level int, value, weight float64) float64 {
	e.steps++
	b, tw := value, weight
	for k := level; k < e.n; k++ {
		e.steps++
		if tw+e.w[k] <= e.capacity {
			tw += e.w[k]
			b += e.v[k]
			continue
		}
		b += e.v[k] * (e.capacity - tw) / e.w[k]
		break
	}

	return b
}
