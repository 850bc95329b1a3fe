package heuristic

import (
	"math"

	"github.com/katalvlaran/knapsack/core"
)

// initialPheromone is the trail level of every item before the first iteration.
const initialPheromone = 1.0

// AntColony builds selections with a colony of ants guided by per-item pheromone.
//
// Construction: an ant repeatedly considers the items it has not taken.
// Items that no longer fit get weight 0; the rest get pheromone^Alpha ·
// (value/weight)^Beta. The next item is drawn by roulette (first cumulative
// weight ≥ r, r uniform in [0, sum)). The ant stops when the sum is 0.
// Every ant selection is feasible by construction.
//
// Update: after all ants of an iteration, every trail is multiplied by
// (1 - Evaporation), then each ant adds Deposit·value/capacity to the trail
// of every item it took.
//
// With capacity 0 no item fits, so every ant returns empty-handed and the
// empty Solution is returned.
//
// Errors: ErrInvalidInput for malformed opts.
func AntColony(p *core.Problem, opts ACOOptions, src Source) (core.Solution, error) {
	opts, err := opts.normalize()
	if err != nil {
		return core.Solution{}, err
	}
	n := p.Len()
	if n == 0 {
		return core.EmptySolution(0), nil
	}
	capacity := p.Capacity()
	src = orDefault(src)

	values := p.Values()
	weights := p.Weights()
	desirability := make([]float64, n)
	pheromone := make([]float64, n)
	for i := range pheromone {
		pheromone[i] = initialPheromone
		desirability[i] = math.Pow(values[i]/weights[i], opts.Beta)
	}

	var (
		steps     int64
		best      = make([]int, 0, n)
		bestValue float64
		antSel    = make([][]int, opts.Ants)
		antValue  = make([]float64, opts.Ants)
		avail     = make([]int, 0, n)
		probs     = make([]float64, n)
	)
	for a := range antSel {
		antSel[a] = make([]int, 0, n)
	}

	for it := 0; it < opts.Iterations; it++ {
		steps++
		for a := 0; a < opts.Ants; a++ {
			avail = avail[:0]
			for i := 0; i < n; i++ {
				avail = append(avail, i)
			}
			sel := antSel[a][:0]
			var weight, value float64

			for len(avail) > 0 {
				sum := 0.0
				for k, i := range avail {
					steps++
					if weight+weights[i] > capacity {
						probs[k] = 0
						continue
					}
					probs[k] = math.Pow(pheromone[i], opts.Alpha) * desirability[i]
					sum += probs[k]
				}
				if sum == 0 {
					break
				}

				pick := roulette(probs[:len(avail)], src.Float64()*sum)
				i := avail[pick]
				sel = append(sel, i)
				weight += weights[i]
				value += values[i]
				avail = append(avail[:pick], avail[pick+1:]...)
			}

			antSel[a] = sel
			antValue[a] = value
			if value > bestValue {
				bestValue = value
				best = append(best[:0], sel...)
			}
		}

		for i := range pheromone {
			pheromone[i] *= 1 - opts.Evaporation
		}
		for a, sel := range antSel {
			if len(sel) == 0 {
				continue
			}
			deposit := opts.Deposit * antValue[a] / capacity
			for _, i := range sel {
				pheromone[i] += deposit
			}
		}
	}

	return core.NewSolution(p, best, steps), nil
}

// roulette returns the first index whose cumulative weight reaches r,
// skipping zero-weight entries. If rounding leaves r above the total, the
// last positive entry is returned. At least one entry must be positive.
func roulette(probs []float64, r float64) int {
	last := -1
	cum := 0.0
	for k, pr := range probs {
		if pr <= 0 {
			continue
		}
		last = k
		cum += pr
		if cum >= r {
			return k
		}
	}

	return last
}
