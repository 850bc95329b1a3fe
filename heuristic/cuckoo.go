package heuristic

import (
	"cmp"
	"math"
	"slices"

	"github.com/katalvlaran/knapsack/core"
)

// nest is one candidate position in cuckoo search.
type nest struct {
	pos []float64
	fit float64
}

// CuckooSearch explores [0,1]ⁿ with Lévy flights; coordinate i ≥ 0.5 takes item i.
//
// Each iteration:
//  1. One nest, chosen uniformly, gets a new egg: every coordinate moves by
//     StepScale·Lévy(LevyBeta) and is clamped to [0,1]. The nest keeps the
//     egg only if it is strictly fitter.
//  2. Nests are sorted by fitness, descending and stable, and the worst
//     ⌊Abandon·Nests⌋ are rebuilt at uniform random positions.
//
// The best position ever seen is returned; the Solution is empty unless it
// has positive fitness.
//
// Errors: ErrInvalidInput for malformed opts.
func CuckooSearch(p *core.Problem, opts CuckooOptions, src Source) (core.Solution, error) {
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
	flight := newLevy(opts.LevyBeta)

	var (
		best    []float64
		bestFit = -1.0
		steps   int64
	)
	track := func(pos []float64, f float64) {
		if f > bestFit {
			best = append(best[:0], pos...)
			bestFit = f
		}
	}

	nests := make([]nest, opts.Nests)
	for i := range nests {
		pos := randomPosition(src, n)
		nests[i] = nest{pos: pos, fit: eval.position(pos)}
		track(pos, nests[i].fit)
	}

	abandon := int(math.Floor(opts.Abandon * float64(opts.Nests)))
	for it := 0; it < opts.Iterations; it++ {
		steps++

		i := src.IntN(opts.Nests)
		egg := append([]float64(nil), nests[i].pos...)
		for d := range egg {
			egg[d] = clamp01(egg[d] + opts.StepScale*flight.step(src))
		}
		if f := eval.position(egg); f > nests[i].fit {
			nests[i] = nest{pos: egg, fit: f}
			track(egg, f)
		}

		slices.SortStableFunc(nests, func(a, b nest) int { return cmp.Compare(b.fit, a.fit) })
		for k := opts.Nests - abandon; k < opts.Nests; k++ {
			pos := randomPosition(src, n)
			nests[k] = nest{pos: pos, fit: eval.position(pos)}
			track(pos, nests[k].fit)
		}
	}

	return positionSolution(p, best, bestFit, steps+eval.evals), nil
}
