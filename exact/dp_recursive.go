package exact

import (
	"github.com/katalvlaran/knapsack/core"
)

// memoKey identifies a subproblem: the first i items with r capacity left.
type memoKey struct {
	i, r int
}

// memoEntry is a solved subproblem and whether item i-1 is taken in it.
type memoEntry struct {
	value float64
	take  bool
}

// recEngine holds the per-call state of RecursiveDP. The memo lives only for
// one call, so concurrent solves never share it.
type recEngine struct {
	values  []float64
	weights []int
	memo    map[memoKey]memoEntry
	steps   int64
	guard   budget
	aborted bool
}

// RecursiveDP solves p exactly with the top-down form of the DP recurrence,
// memoizing every (i, remaining) state it visits. Item i-1 is taken only
// when that is strictly better than skipping it.
//
// Steps counts recursive calls, memo hits included.
// Errors are those of Tabulate: integral input, table cap, budget.
func RecursiveDP(p *core.Problem, opts Options) (core.Solution, error) {
	e, capacity, err := newRecEngine(p, opts)
	if err != nil {
		return core.Solution{}, err
	}
	if e == nil {
		return core.EmptySolution(0), nil
	}

	e.solve(p.Len(), capacity)
	if e.aborted {
		return core.Solution{}, e.guard.err("recursive dynamic programming")
	}

	return core.NewSolution(p, e.reconstruct(p.Len(), capacity), e.steps), nil
}

// newRecEngine validates p and opts. A nil engine with nil error means p is empty.
func newRecEngine(p *core.Problem, opts Options) (*recEngine, int, error) {
	opts, err := opts.normalize()
	if err != nil {
		return nil, 0, err
	}
	if p.Len() == 0 {
		return nil, 0, nil
	}
	capacity, err := tableShape(p, opts.MaxTableCells)
	if err != nil {
		return nil, 0, err
	}

	weights := make([]int, p.Len())
	for i, w := range p.Weights() {
		weights[i] = int(w)
	}

	return &recEngine{
		values:  p.Values(),
		weights: weights,
		memo:    make(map[memoKey]memoEntry),
		guard:   newBudget(opts),
	}, capacity, nil
}

// solve returns the best value of the first i items within capacity r.
func (e *recEngine) solve(i, r int) float64 {
	e.steps++
	if e.aborted {
		return 0
	}
	if e.guard.tick() {
		e.aborted = true
		return 0
	}
	if i == 0 || r == 0 {
		return 0
	}
	key := memoKey{i: i, r: r}
	if ent, ok := e.memo[key]; ok {
		return ent.value
	}

	var ent memoEntry
	wi := e.weights[i-1]
	if wi > r {
		ent.value = e.solve(i-1, r)
	} else {
		skip := e.solve(i-1, r)
		take := e.solve(i-1, r-wi) + e.values[i-1]
		if take > skip {
			ent = memoEntry{value: take, take: true}
		} else {
			ent = memoEntry{value: skip}
		}
	}
	e.memo[key] = ent

	return ent.value
}

// reconstruct follows the recorded decisions from (n, capacity) down.
func (e *recEngine) reconstruct(n, capacity int) []int {
	selected := make([]int, 0, n)
	i, r := n, capacity
	for i > 0 && r > 0 {
		e.steps++
		ent, ok := e.memo[memoKey{i: i, r: r}]
		if !ok {
			break
		}
		if ent.take {
			selected = append(selected, i-1)
			r -= e.weights[i-1]
		}
		i--
	}

	return selected
}
