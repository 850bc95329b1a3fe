package heuristic

import "github.com/katalvlaran/knapsack/core"

// GeneticAlgorithm evolves a population of bit-vectors.
//
// Each generation builds a full new population: two parents are chosen by
// tournament (uniform draws with replacement, first-drawn wins ties), a cut
// is drawn uniformly in [0,n), the child takes the parent-1 prefix and the
// parent-2 suffix, then every bit flips with probability MutationRate.
// The best individual ever evaluated, initial population included, is
// returned. There is no elitism beyond that.
//
// Errors: ErrInvalidInput for malformed opts.
func GeneticAlgorithm(p *core.Problem, opts GAOptions, src Source) (core.Solution, error) {
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
	size := opts.PopulationSize

	best := make([]bool, n)
	bestFit := 0.0
	track := func(ind []bool, f float64) {
		if f > bestFit {
			bestFit = f
			copy(best, ind)
		}
	}

	pop := make([][]bool, size)
	fit := make([]float64, size)
	for i := range pop {
		pop[i] = randomBits(src, n)
		fit[i] = eval.bits(pop[i])
		track(pop[i], fit[i])
	}

	next := make([][]bool, size)
	nextFit := make([]float64, size)
	for i := range next {
		next[i] = make([]bool, n)
	}

	var steps int64
	for g := 0; g < opts.Generations; g++ {
		steps++
		for i := 0; i < size; i++ {
			a := tournament(src, fit, opts.TournamentSize)
			b := tournament(src, fit, opts.TournamentSize)

			child := next[i]
			cut := src.IntN(n)
			copy(child[:cut], pop[a][:cut])
			copy(child[cut:], pop[b][cut:])
			for j := range child {
				if src.Float64() < opts.MutationRate {
					child[j] = !child[j]
				}
			}

			nextFit[i] = eval.bits(child)
			track(child, nextFit[i])
		}
		pop, next = next, pop
		fit, nextFit = nextFit, fit
	}

	return core.FromMask(p, best, steps+eval.evals), nil
}

// tournament draws size indices uniformly with replacement and returns the
// fittest; the earliest draw wins ties.
func tournament(src Source, fit []float64, size int) int {
	winner := src.IntN(len(fit))
	for k := 1; k < size; k++ {
		c := src.IntN(len(fit))
		if fit[c] > fit[winner] {
			winner = c
		}
	}

	return winner
}
