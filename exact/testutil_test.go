// Package exact_test holds helpers shared by the exact solver tests.
package exact_test

import (
	"math/rand/v2"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knapsack/core"
	"github.com/katalvlaran/knapsack/exact"
)

// eps is the tolerance for comparing optimal values from different solvers.
const eps = 1e-9

// solverFunc is the common shape of every exact solver.
type solverFunc func(*core.Problem, exact.Options) (core.Solution, error)

// allSolvers lists the exact solvers by name for table-driven tests.
var allSolvers = []struct {
	name  string
	solve solverFunc
}{
	{"bruteforce", exact.BruteForce},
	{"dp", exact.DynamicProgramming},
	{"dp_recursive", exact.RecursiveDP},
	{"bnb", exact.BranchAndBound},
}

// classic is the textbook instance: optimum 220 with items "2" and "3".
func classic(t *testing.T) *core.Problem {
	t.Helper()
	p, err := core.NewProblem([]core.Item{
		{ID: "1", Value: 60, Weight: 10},
		{ID: "2", Value: 100, Weight: 20},
		{ID: "3", Value: 120, Weight: 30},
	}, 50)
	require.NoError(t, err)

	return p
}

// randomIntegral builds a reproducible instance with n integral items and a
// capacity of roughly half the total weight.
func randomIntegral(t *testing.T, seed uint64, n int) *core.Problem {
	t.Helper()
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	items := make([]core.Item, n)
	total := 0.0
	for i := range items {
		items[i] = core.Item{
			ID:     "it" + strconv.Itoa(i),
			Value:  float64(1 + rng.IntN(100)),
			Weight: float64(1 + rng.IntN(50)),
		}
		total += items[i].Weight
	}
	p, err := core.NewProblem(items, float64(int(total/2)))
	require.NoError(t, err)

	return p
}

// requireValid checks the structural invariants every Solution must hold.
func requireValid(t *testing.T, p *core.Problem, sol core.Solution) {
	t.Helper()
	require.True(t, sol.Feasible(p), "weight %v exceeds capacity %v", sol.Weight, p.Capacity())
	var v, w float64
	seen := make(map[int]bool, len(sol.Indices))
	for k, idx := range sol.Indices {
		require.False(t, seen[idx], "index %d repeated", idx)
		seen[idx] = true
		if k > 0 {
			require.Less(t, sol.Indices[k-1], idx, "indices not ascending")
		}
		v += p.Item(idx).Value
		w += p.Item(idx).Weight
		require.Equal(t, p.Item(idx), sol.Items[k])
	}
	require.InDelta(t, v, sol.Value, eps)
	require.InDelta(t, w, sol.Weight, eps)
}
