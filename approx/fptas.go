package approx

import (
	"fmt"
	"math"

	"github.com/katalvlaran/knapsack/core"
)

// FPTAS returns a selection worth at least (1-ε)·OPT.
//
// Algorithm:
//  1. K = ε·maxValue/n; scaled value sᵢ = ⌊vᵢ/K⌋.
//  2. dp[i][j] = minimum weight reaching scaled value exactly j with the
//     first i items; dp[0][0] = 0, every other entry starts at +Inf.
//  3. The answer is the largest j with dp[n][j] ≤ capacity; items are
//     recovered backward, taking item i iff dp[i][j] ≠ dp[i-1][j].
//
// Steps counts filled cells, the final scan and reconstruction steps.
//
// Errors:
//   - ErrInvalidInput if opts are malformed.
//   - ErrDegenerateInput (with the empty Solution) if all values are zero.
//   - ErrComplexityExceeded if the table exceeds opts.MaxTableCells.
func FPTAS(p *core.Problem, opts FPTASOptions) (core.Solution, error) {
	opts, err := opts.normalize()
	if err != nil {
		return core.Solution{}, err
	}
	n := p.Len()
	if n == 0 {
		return core.EmptySolution(0), nil
	}
	maxValue := p.MaxValue()
	if maxValue == 0 {
		return core.EmptySolution(0), fmt.Errorf("%w: FPTAS needs at least one positive value", core.ErrDegenerateInput)
	}

	// Scaling stays in float64 until the table size is known to fit; a tiny
	// Epsilon makes v/k overflow int.
	k := opts.Epsilon * maxValue / float64(n)
	if !(k > 0) {
		return core.Solution{}, fmt.Errorf("%w: FPTAS scaling factor underflows (epsilon %v)",
			core.ErrComplexityExceeded, opts.Epsilon)
	}
	rows := int64(n) + 1
	maxSum := float64(opts.MaxTableCells/rows - 1)
	values := p.Values()
	weights := p.Weights()
	scaled := make([]int, n)
	var fsum float64
	for i, v := range values {
		fs := math.Floor(v / k)
		fsum += fs
		if fsum > maxSum {
			return core.Solution{}, fmt.Errorf("%w: FPTAS table of %d rows by more than %.0f columns exceeds limit %d",
				core.ErrComplexityExceeded, rows, maxSum+1, opts.MaxTableCells)
		}
		scaled[i] = int(fs)
	}
	sum := int(fsum)

	var steps int64
	width := sum + 1
	dp := make([]float64, (n+1)*width)
	for j := 1; j < width; j++ {
		dp[j] = math.Inf(1)
	}
	for i := 1; i <= n; i++ {
		s, w := scaled[i-1], weights[i-1]
		prev := dp[(i-1)*width : i*width]
		cur := dp[i*width : (i+1)*width]
		for j := 0; j < width; j++ {
			steps++
			best := prev[j]
			if j >= s {
				if cand := prev[j-s] + w; cand < best {
					best = cand
				}
			}
			cur[j] = best
		}
	}

	capacity := p.Capacity()
	last := dp[n*width:]
	bestJ := 0
	for j := 0; j < width; j++ {
		steps++
		if last[j] <= capacity {
			bestJ = j
		}
	}

	selected := make([]int, 0, n)
	j := bestJ
	for i := n; i > 0; i-- {
		steps++
		if dp[i*width+j] != dp[(i-1)*width+j] {
			selected = append(selected, i-1)
			j -= scaled[i-1]
		}
	}

	return core.NewSolution(p, selected, steps), nil
}
