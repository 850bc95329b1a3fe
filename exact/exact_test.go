// Package exact_test validates the exact solvers.
// Focus:
//  1. Known optimum on the classic instance for every solver.
//  2. Agreement of all four solvers on random instances.
//  3. Edge cases: empty input, nothing fits, capacity zero.
//  4. Complexity caps, budgets and option validation.
package exact_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knapsack/core"
	"github.com/katalvlaran/knapsack/exact"
)

func TestExact_Classic(t *testing.T) {
	p := classic(t)
	for _, s := range allSolvers {
		t.Run(s.name, func(t *testing.T) {
			sol, err := s.solve(p, exact.DefaultOptions())
			require.NoError(t, err)
			requireValid(t, p, sol)
			assert.Equal(t, 220.0, sol.Value)
			assert.Equal(t, 50.0, sol.Weight)
			assert.Equal(t, []string{"2", "3"}, sol.IDs())
			assert.Positive(t, sol.Steps)
		})
	}
}

func TestExact_CrossValidation(t *testing.T) {
	for seed := uint64(1); seed <= 40; seed++ {
		n := 1 + int(seed%20) // 1..20
		p := randomIntegral(t, seed, n)

		ref, err := exact.BruteForce(p, exact.DefaultOptions())
		require.NoError(t, err)
		requireValid(t, p, ref)

		for _, s := range allSolvers[1:] {
			sol, err := s.solve(p, exact.DefaultOptions())
			require.NoError(t, err, "%s seed=%d", s.name, seed)
			requireValid(t, p, sol)
			assert.InDelta(t, ref.Value, sol.Value, eps, "%s seed=%d n=%d", s.name, seed, n)
		}
	}
}

func TestExact_Empty(t *testing.T) {
	p, err := core.NewProblem(nil, 7.5)
	require.NoError(t, err)
	for _, s := range allSolvers {
		sol, err := s.solve(p, exact.DefaultOptions())
		require.NoError(t, err, s.name)
		assert.Equal(t, 0.0, sol.Value, s.name)
		assert.Empty(t, sol.Items, s.name)
		assert.NotNil(t, sol.Items, s.name)
	}
}

func TestExact_NothingFits(t *testing.T) {
	p, err := core.NewProblem([]core.Item{
		{ID: "a", Value: 10, Weight: 8},
		{ID: "b", Value: 20, Weight: 9},
	}, 5)
	require.NoError(t, err)
	for _, s := range allSolvers {
		sol, err := s.solve(p, exact.DefaultOptions())
		require.NoError(t, err, s.name)
		assert.Equal(t, 0.0, sol.Value, s.name)
		assert.Equal(t, 0.0, sol.Weight, s.name)
		assert.Empty(t, sol.Indices, s.name)
	}
}

func TestExact_ZeroCapacity(t *testing.T) {
	p, err := core.NewProblem([]core.Item{{ID: "a", Value: 1, Weight: 1}}, 0)
	require.NoError(t, err)
	for _, s := range allSolvers {
		sol, err := s.solve(p, exact.DefaultOptions())
		require.NoError(t, err, s.name)
		assert.Equal(t, 0.0, sol.Value, s.name)
	}
}

func TestExact_SingleExactFit(t *testing.T) {
	p, err := core.NewProblem([]core.Item{{ID: "only", Value: 5, Weight: 4}}, 4)
	require.NoError(t, err)
	for _, s := range allSolvers {
		sol, err := s.solve(p, exact.DefaultOptions())
		require.NoError(t, err, s.name)
		assert.Equal(t, []string{"only"}, sol.IDs(), s.name)
	}
}

func TestExact_FractionalWeights(t *testing.T) {
	p, err := core.NewProblem([]core.Item{
		{ID: "a", Value: 3, Weight: 1.5},
		{ID: "b", Value: 4, Weight: 2.5},
		{ID: "c", Value: 2, Weight: 1.25},
	}, 3)
	require.NoError(t, err)

	_, err = exact.DynamicProgramming(p, exact.DefaultOptions())
	assert.ErrorIs(t, err, core.ErrInvalidInput)
	_, err = exact.RecursiveDP(p, exact.DefaultOptions())
	assert.ErrorIs(t, err, core.ErrInvalidInput)

	bf, err := exact.BruteForce(p, exact.DefaultOptions())
	require.NoError(t, err)
	bb, err := exact.BranchAndBound(p, exact.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 5.0, bf.Value)
	assert.Equal(t, bf.Value, bb.Value)
}

func TestBruteForce_ComplexityCap(t *testing.T) {
	p := randomIntegral(t, 7, 10)
	opts := exact.DefaultOptions()
	opts.MaxBruteForceItems = 9
	_, err := exact.BruteForce(p, opts)
	assert.ErrorIs(t, err, core.ErrComplexityExceeded)
}

func TestBranchAndBound_ComplexityCap(t *testing.T) {
	p := randomIntegral(t, 7, 10)
	opts := exact.DefaultOptions()
	opts.MaxBranchAndBoundItems = 5
	_, err := exact.BranchAndBound(p, opts)
	assert.ErrorIs(t, err, core.ErrComplexityExceeded)
}

func TestDP_TableCap(t *testing.T) {
	p := classic(t)
	opts := exact.DefaultOptions()
	opts.MaxTableCells = 100 // 4×51 cells needed
	_, err := exact.DynamicProgramming(p, opts)
	assert.ErrorIs(t, err, core.ErrComplexityExceeded)
	_, err = exact.RecursiveDP(p, opts)
	assert.ErrorIs(t, err, core.ErrComplexityExceeded)
}

func TestExact_StepBudget(t *testing.T) {
	p := randomIntegral(t, 3, 12)
	opts := exact.DefaultOptions()
	opts.MaxSteps = 10
	for _, s := range allSolvers {
		_, err := s.solve(p, opts)
		assert.ErrorIs(t, err, core.ErrBudgetExceeded, s.name)
	}
}

func TestExact_TimeBudget(t *testing.T) {
	p := randomIntegral(t, 5, 22)
	opts := exact.DefaultOptions()
	opts.TimeLimit = time.Nanosecond
	_, err := exact.BruteForce(p, opts)
	assert.ErrorIs(t, err, core.ErrBudgetExceeded)
}

func TestExact_InvalidOptions(t *testing.T) {
	p := classic(t)
	bad := []exact.Options{
		{MaxSteps: -1},
		{TimeLimit: -time.Second},
		{MaxBruteForceItems: -1},
		{MaxBruteForceItems: exact.HardMaxBruteForceItems + 1},
		{MaxBranchAndBoundItems: -3},
		{MaxTableCells: -1},
	}
	for i, opts := range bad {
		for _, s := range allSolvers {
			_, err := s.solve(p, opts)
			assert.ErrorIs(t, err, core.ErrInvalidInput, "case %d %s", i, s.name)
		}
	}
}

func TestExact_ZeroOptionsUseDefaults(t *testing.T) {
	p := classic(t)
	for _, s := range allSolvers {
		sol, err := s.solve(p, exact.Options{})
		require.NoError(t, err, s.name)
		assert.Equal(t, 220.0, sol.Value, s.name)
	}
}

func TestBruteForce_RecordCombinations(t *testing.T) {
	p := classic(t)
	opts := exact.DefaultOptions()
	opts.RecordCombinations = true
	sol, err := exact.BruteForce(p, opts)
	require.NoError(t, err)
	require.Len(t, sol.Combinations, 8)

	feasible := 0
	for mask, c := range sol.Combinations {
		assert.Equal(t, c.Weight <= p.Capacity(), c.Feasible, "mask %d", mask)
		if c.Feasible {
			feasible++
			assert.LessOrEqual(t, c.Value, sol.Value)
		}
	}
	// Only {1,2,3} (weight 60) is infeasible.
	assert.Equal(t, 7, feasible)
	assert.Equal(t, []int{0, 1, 2}, sol.Combinations[7].Indices)

	plain, err := exact.BruteForce(p, exact.DefaultOptions())
	require.NoError(t, err)
	assert.Nil(t, plain.Combinations)
}

func TestBruteForce_Steps(t *testing.T) {
	p := classic(t)
	sol, err := exact.BruteForce(p, exact.DefaultOptions())
	require.NoError(t, err)
	// 8 subsets, each with one unit plus three item checks.
	assert.Equal(t, int64(8*4), sol.Steps)
}

func TestTabulate(t *testing.T) {
	p := classic(t)
	tbl, err := exact.Tabulate(p, exact.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 4, tbl.Rows())
	assert.Equal(t, 51, tbl.Cols())
	assert.Equal(t, 220.0, tbl.At(3, 50))
	assert.Equal(t, 160.0, tbl.At(2, 50))
	assert.Equal(t, 60.0, tbl.At(1, 50))
	assert.Equal(t, 0.0, tbl.At(0, 50))
	assert.Equal(t, 0.0, tbl.At(3, 9))
	assert.Equal(t, int64(3*51), tbl.Steps())

	// Rows are monotone in capacity.
	for i := 0; i < tbl.Rows(); i++ {
		for w := 1; w < tbl.Cols(); w++ {
			assert.GreaterOrEqual(t, tbl.At(i, w), tbl.At(i, w-1))
		}
	}
	assert.Panics(t, func() { tbl.At(4, 0) })
}

func TestRecursiveDP_MemoBounded(t *testing.T) {
	for seed := uint64(1); seed <= 10; seed++ {
		p := randomIntegral(t, seed, 12)
		states, err := exact.MemoStates(p, exact.DefaultOptions())
		require.NoError(t, err)
		assert.LessOrEqual(t, states, p.Len()*(int(p.Capacity())+1))
	}
}

func TestBranchAndBound_ExploresEqualBounds(t *testing.T) {
	// {x} and {y} are both optimal. After the include-x leaf sets the
	// incumbent to 1, the exclude-x subtree has bound exactly 1: it is still
	// searched (nodes 5, 6, 7) but cannot replace the incumbent.
	p := core.MustProblem([]core.Item{
		{ID: "x", Value: 1, Weight: 1},
		{ID: "y", Value: 1, Weight: 1},
	}, 1)

	sol, nodes, err := exact.BranchAndBoundNodes(p, exact.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, sol.IDs())
	assert.Equal(t, 1.0, sol.Value)
	assert.Equal(t, int64(7), nodes, "a tie-pruning search would stop after 5 nodes")
}

func TestBranchAndBound_Deterministic(t *testing.T) {
	p := randomIntegral(t, 11, 30)
	a, err := exact.BranchAndBound(p, exact.DefaultOptions())
	require.NoError(t, err)
	b, err := exact.BranchAndBound(p, exact.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, a, b)

	dp, err := exact.DynamicProgramming(p, exact.DefaultOptions())
	require.NoError(t, err)
	assert.InDelta(t, dp.Value, a.Value, eps)
}
