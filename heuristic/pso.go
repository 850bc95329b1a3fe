package heuristic

import "github.com/katalvlaran/knapsack/core"

// particle is one member of the swarm.
type particle struct {
	pos, vel []float64
	best     []float64
	fit      float64
	bestFit  float64
}

// ParticleSwarm moves particles through [0,1]ⁿ; coordinate i ≥ 0.5 takes item i.
//
// Initialization: positions uniform in [0,1), velocities uniform in [-1,1).
// Update per particle and dimension, with fresh r1, r2 uniform in [0,1):
//
//	v ← Inertia·v + Cognitive·r1·(personalBest − x) + Social·r2·(globalBest − x)
//	x ← clamp(x + v, 0, 1)
//
// The personal best is replaced on strict improvement, and the global best
// is replaced only when such an improvement also beats it. The global best
// still guides the swarm when it is infeasible; the returned Solution is
// empty unless it has positive fitness.
//
// Errors: ErrInvalidInput for malformed opts.
func ParticleSwarm(p *core.Problem, opts PSOOptions, src Source) (core.Solution, error) {
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

	var (
		global    []float64
		globalFit = -1.0
		steps     int64
	)
	swarm := make([]particle, opts.Particles)
	for k := range swarm {
		pt := &swarm[k]
		pt.pos = randomPosition(src, n)
		pt.vel = make([]float64, n)
		for d := range pt.vel {
			pt.vel[d] = src.Float64()*2 - 1
		}
		pt.fit = eval.position(pt.pos)
		pt.best = append([]float64(nil), pt.pos...)
		pt.bestFit = pt.fit
		if pt.fit > globalFit {
			global = append(global[:0], pt.pos...)
			globalFit = pt.fit
		}
	}

	for it := 0; it < opts.Iterations; it++ {
		steps++
		for k := range swarm {
			pt := &swarm[k]
			for d := 0; d < n; d++ {
				r1 := src.Float64()
				cognitive := opts.Cognitive * r1 * (pt.best[d] - pt.pos[d])
				r2 := src.Float64()
				social := opts.Social * r2 * (global[d] - pt.pos[d])
				pt.vel[d] = opts.Inertia*pt.vel[d] + cognitive + social
				pt.pos[d] = clamp01(pt.pos[d] + pt.vel[d])
			}

			pt.fit = eval.position(pt.pos)
			if pt.fit > pt.bestFit {
				copy(pt.best, pt.pos)
				pt.bestFit = pt.fit
				if pt.fit > globalFit {
					copy(global, pt.pos)
					globalFit = pt.fit
				}
			}
		}
	}

	return positionSolution(p, global, globalFit, steps+eval.evals), nil
}
