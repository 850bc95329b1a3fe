package heuristic

import "github.com/katalvlaran/knapsack/core"

// includeThreshold decodes a continuous coordinate into "take the item".
const includeThreshold = 0.5

// evaluator scores candidates with the hard-penalty rule and counts calls.
type evaluator struct {
	values   []float64
	weights  []float64
	capacity float64
	evals    int64
}

func newEvaluator(p *core.Problem) *evaluator {
	return &evaluator{values: p.Values(), weights: p.Weights(), capacity: p.Capacity()}
}

// bits returns the total value of b, or 0 if b is overweight.
func (e *evaluator) bits(b []bool) float64 {
	e.evals++
	var v, w float64
	for i, on := range b {
		if on {
			v += e.values[i]
			w += e.weights[i]
		}
	}
	if w > e.capacity {
		return 0
	}

	return v
}

// position scores a continuous vector through the 0.5 threshold.
func (e *evaluator) position(x []float64) float64 {
	e.evals++
	var v, w float64
	for i, c := range x {
		if c >= includeThreshold {
			v += e.values[i]
			w += e.weights[i]
		}
	}
	if w > e.capacity {
		return 0
	}

	return v
}

// decode turns a continuous position into a selection mask.
func decode(x []float64) []bool {
	mask := make([]bool, len(x))
	for i, c := range x {
		mask[i] = c >= includeThreshold
	}

	return mask
}

// randomBits draws each bit with probability 1/2.
func randomBits(src Source, n int) []bool {
	b := make([]bool, n)
	for i := range b {
		b[i] = src.Float64() < 0.5
	}

	return b
}

// randomPosition draws a point uniformly in [0,1)ⁿ.
func randomPosition(src Source, n int) []float64 {
	x := make([]float64, n)
	for i := range x {
		x[i] = src.Float64()
	}

	return x
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}

	return x
}

// positionSolution builds the Solution for the best position found, or the
// empty Solution when nothing better than fitness 0 was seen.
func positionSolution(p *core.Problem, best []float64, bestFit float64, steps int64) core.Solution {
	if best == nil || bestFit <= 0 {
		return core.EmptySolution(steps)
	}

	return core.FromMask(p, decode(best), steps)
}
