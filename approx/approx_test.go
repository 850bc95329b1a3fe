// Package approx_test validates the approximation solvers against exact optima.
package approx_test

import (
	"math"
	"math/rand/v2"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knapsack/approx"
	"github.com/katalvlaran/knapsack/core"
	"github.com/katalvlaran/knapsack/exact"
)

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

// randomIntegral builds a reproducible instance with capacity of half the total weight.
func randomIntegral(t *testing.T, seed uint64, n int) *core.Problem {
	t.Helper()
	rng := rand.New(rand.NewPCG(seed, ^seed))
	items := make([]core.Item, n)
	total := 0.0
	for i := range items {
		items[i] = core.Item{
			ID:     "it" + strconv.Itoa(i),
			Value:  float64(rng.IntN(200)),
			Weight: float64(1 + rng.IntN(40)),
		}
		total += items[i].Weight
	}
	p, err := core.NewProblem(items, math.Floor(total/2))
	require.NoError(t, err)

	return p
}

// optimum is the exact optimal value by dynamic programming.
func optimum(t *testing.T, p *core.Problem) float64 {
	t.Helper()
	sol, err := exact.DynamicProgramming(p, exact.DefaultOptions())
	require.NoError(t, err)

	return sol.Value
}

func TestGreedy_Classic(t *testing.T) {
	p := classic(t)
	sol := approx.Greedy(p)
	// Ratios 6, 5, 4: items 1 and 2 fit, item 3 no longer does.
	assert.Equal(t, []string{"1", "2"}, sol.IDs())
	assert.Equal(t, 160.0, sol.Value)
	assert.Positive(t, sol.Steps)
}

func TestGreedy_SkipsAndContinues(t *testing.T) {
	p, err := core.NewProblem([]core.Item{
		{ID: "a", Value: 50, Weight: 5},
		{ID: "b", Value: 50, Weight: 10},
		{ID: "c", Value: 2, Weight: 2},
	}, 8)
	require.NoError(t, err)
	sol := approx.Greedy(p)
	assert.Equal(t, []string{"a", "c"}, sol.IDs())
	assert.Equal(t, 7.0, sol.Weight)
}

func TestValueApproximation_Classic(t *testing.T) {
	p := classic(t)
	sol := approx.ValueApproximation(p)
	assert.Equal(t, []string{"2", "3"}, sol.IDs())
	assert.Equal(t, 220.0, sol.Value)
}

// With value proportional to weight and every item fitting alone, the
// value-ordered fill reaches at least half of the optimum.
func TestValueApproximation_HalfOnProportionalInstances(t *testing.T) {
	for seed := uint64(1); seed <= 30; seed++ {
		rng := rand.New(rand.NewPCG(seed, 7))
		n := 3 + rng.IntN(12)
		capacity := float64(20 + rng.IntN(60))
		items := make([]core.Item, n)
		for i := range items {
			w := float64(1 + rng.IntN(int(capacity)))
			items[i] = core.Item{ID: strconv.Itoa(i), Value: 3 * w, Weight: w}
		}
		p, err := core.NewProblem(items, capacity)
		require.NoError(t, err)

		sol := approx.ValueApproximation(p)
		require.True(t, sol.Feasible(p))
		assert.GreaterOrEqual(t, sol.Value, 0.5*optimum(t, p), "seed=%d", seed)
	}
}

// Without the single-best-item fallback the guarantee can break: the most
// valuable item fills the knapsack and blocks many light ones.
func TestValueApproximation_NoSingleItemFallback(t *testing.T) {
	items := []core.Item{{ID: "heavy", Value: 10, Weight: 10}}
	for i := 0; i < 10; i++ {
		items = append(items, core.Item{ID: "light" + strconv.Itoa(i), Value: 9, Weight: 1})
	}
	p, err := core.NewProblem(items, 10)
	require.NoError(t, err)

	sol := approx.ValueApproximation(p)
	assert.Equal(t, []string{"heavy"}, sol.IDs())
	assert.Equal(t, 90.0, optimum(t, p))
}

func TestApprox_Empty(t *testing.T) {
	p, err := core.NewProblem(nil, 3)
	require.NoError(t, err)
	assert.Equal(t, 0.0, approx.Greedy(p).Value)
	assert.Empty(t, approx.ValueApproximation(p).Items)
	sol, err := approx.FPTAS(p, approx.DefaultFPTASOptions())
	require.NoError(t, err)
	assert.Equal(t, 0.0, sol.Value)
	assert.NotNil(t, sol.Items)
}

func TestApprox_NothingFits(t *testing.T) {
	p, err := core.NewProblem([]core.Item{{ID: "x", Value: 9, Weight: 9}}, 4)
	require.NoError(t, err)
	assert.Empty(t, approx.Greedy(p).Indices)
	assert.Empty(t, approx.ValueApproximation(p).Indices)
	sol, err := approx.FPTAS(p, approx.DefaultFPTASOptions())
	require.NoError(t, err)
	assert.Empty(t, sol.Indices)
}

func TestFPTAS_Classic(t *testing.T) {
	sol, err := approx.FPTAS(classic(t), approx.DefaultFPTASOptions())
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "3"}, sol.IDs())
	assert.Equal(t, 220.0, sol.Value)
}

func TestFPTAS_Guarantee(t *testing.T) {
	for _, eps := range []float64{0.05, 0.1, 0.2, 0.5, 0.9} {
		for seed := uint64(1); seed <= 15; seed++ {
			p := randomIntegral(t, seed, 4+int(seed%12))
			opt := optimum(t, p)

			sol, err := approx.FPTAS(p, approx.FPTASOptions{Epsilon: eps})
			if p.MaxValue() == 0 {
				assert.ErrorIs(t, err, core.ErrDegenerateInput)
				continue
			}
			require.NoError(t, err)
			require.True(t, sol.Feasible(p))
			assert.GreaterOrEqual(t, sol.Value, (1-eps)*opt-1e-9, "eps=%v seed=%d", eps, seed)
			assert.LessOrEqual(t, sol.Value, opt+1e-9)
		}
	}
}

func TestFPTAS_FractionalWeights(t *testing.T) {
	p, err := core.NewProblem([]core.Item{
		{ID: "a", Value: 3, Weight: 1.5},
		{ID: "b", Value: 4, Weight: 2.5},
		{ID: "c", Value: 2, Weight: 1.25},
	}, 3)
	require.NoError(t, err)
	sol, err := approx.FPTAS(p, approx.FPTASOptions{Epsilon: 0.1})
	require.NoError(t, err)
	assert.Equal(t, 5.0, sol.Value)
}

func TestFPTAS_Degenerate(t *testing.T) {
	p, err := core.NewProblem([]core.Item{
		{ID: "a", Value: 0, Weight: 1},
		{ID: "b", Value: 0, Weight: 2},
	}, 5)
	require.NoError(t, err)
	sol, err := approx.FPTAS(p, approx.DefaultFPTASOptions())
	assert.ErrorIs(t, err, core.ErrDegenerateInput)
	assert.Equal(t, 0.0, sol.Value)
	assert.Empty(t, sol.Items)
}

func TestFPTAS_InvalidOptions(t *testing.T) {
	p := classic(t)
	for _, eps := range []float64{-0.1, 1, 1.5, math.NaN()} {
		_, err := approx.FPTAS(p, approx.FPTASOptions{Epsilon: eps})
		assert.ErrorIs(t, err, core.ErrInvalidInput, "eps=%v", eps)
	}
	_, err := approx.FPTAS(p, approx.FPTASOptions{MaxTableCells: -1})
	assert.ErrorIs(t, err, core.ErrInvalidInput)
}

func TestFPTAS_TableCap(t *testing.T) {
	_, err := approx.FPTAS(classic(t), approx.FPTASOptions{Epsilon: 0.2, MaxTableCells: 10})
	assert.ErrorIs(t, err, core.ErrComplexityExceeded)
}

func TestFPTAS_TinyEpsilonHitsTableCap(t *testing.T) {
	p := core.MustProblem([]core.Item{
		{ID: "a", Value: 1, Weight: 1},
		{ID: "b", Value: 2, Weight: 1},
	}, 1)

	for _, eps := range []float64{1e-300, 1e-12} {
		assert.NotPanics(t, func() {
			_, err := approx.FPTAS(p, approx.FPTASOptions{Epsilon: eps})
			assert.ErrorIs(t, err, core.ErrComplexityExceeded, "epsilon=%v", eps)
		})
	}
}

func BenchmarkFPTAS(b *testing.B) {
	rng := rand.New(rand.NewPCG(1, 2))
	items := make([]core.Item, 60)
	for i := range items {
		items[i] = core.Item{ID: strconv.Itoa(i), Value: rng.Float64() * 1000, Weight: 1 + rng.Float64()*50}
	}
	p := core.MustProblem(items, 500)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := approx.FPTAS(p, approx.DefaultFPTASOptions()); err != nil {
			b.Fatal(err)
		}
	}
}
