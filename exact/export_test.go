package exact

import "github.com/katalvlaran/knapsack/core"

// MemoStates runs the recursive solver and reports how many subproblems it memoized.
func MemoStates(p *core.Problem, opts Options) (int, error) {
	e, capacity, err := newRecEngine(p, opts)
	if err != nil || e == nil {
		return 0, err
	}
	e.solve(p.Len(), capacity)
	if e.aborted {
		return 0, e.guard.err("recursive dynamic programming")
	}

	return len(e.memo), nil
}

// BranchAndBoundNodes runs branch-and-bound on a non-empty p and reports the
// selection together with the number of tree nodes visited.
func BranchAndBoundNodes(p *core.Problem, opts Options) (core.Solution, int64, error) {
	opts, err := opts.normalize()
	if err != nil {
		return core.Solution{}, 0, err
	}
	e := newBBEngine(p, opts)
	e.branch(0, 0, 0)
	if e.aborted {
		return core.Solution{}, e.nodes, e.guard.err("branch and bound")
	}

	return e.solution(p), e.nodes, nil
}
