package heuristic

import (
	"math"

	"github.com/katalvlaran/knapsack/core"
)

// SimulatedAnnealing walks a single bit-vector through one-bit-flip neighbors.
//
// Schedule: starting at InitialTemperature, TrialsPerTemperature neighbors
// are tried, then T ← T·CoolingRate, until T ≤ MinTemperature.
// Acceptance: a strictly fitter neighbor is always taken; otherwise it is
// taken when exp(Δ/T) exceeds a fresh uniform draw (Δ ≤ 0).
// The best state seen is tracked separately from the current one.
//
// Errors: ErrInvalidInput for malformed opts.
func SimulatedAnnealing(p *core.Problem, opts SAOptions, src Source) (core.Solution, error) {
	opts, err := opts.normalize()
	if err != nil {
		return core.Solution{}, err
	}
	n := p.Len()
	if n == 0 {
		return core.EmptySolution(0), nil
	}
	src = orDefault(src)
	eval := newEvaluator(p)

	cur := randomBits(src, n)
	curFit := eval.bits(cur)
	best := make([]bool, n)
	bestFit := 0.0
	if curFit > bestFit {
		bestFit = curFit
		copy(best, cur)
	}

	var steps int64
	neighbor := make([]bool, n)
	for t := opts.InitialTemperature; t > opts.MinTemperature; t *= opts.CoolingRate {
		steps++
		for k := 0; k < opts.TrialsPerTemperature; k++ {
			copy(neighbor, cur)
			j := src.IntN(n)
			neighbor[j] = !neighbor[j]

			nf := eval.bits(neighbor)
			delta := nf - curFit
			if delta > 0 || math.Exp(delta/t) > src.Float64() {
				cur, neighbor = neighbor, cur
				curFit = nf
			}
			if curFit > bestFit {
				bestFit = curFit
				copy(best, cur)
			}
		}
	}

	return core.FromMask(p, best, steps+eval.evals), nil
}
