// Package heuristic provides seeded metaheuristic solvers for the 0/1 knapsack.
//
// It includes five algorithms over a core.Problem:
//
//   - GeneticAlgorithm: bit-vector population, tournament selection,
//     single-point crossover and per-bit mutation.
//
//   - SimulatedAnnealing: single bit-vector, one-bit-flip neighbors,
//     geometric cooling and Metropolis acceptance.
//
//   - AntColony: per-item pheromone; ants build feasible selections by
//     roulette over pheromone^α · (value/weight)^β.
//
//   - ParticleSwarm: continuous positions in [0,1]ⁿ, an item is taken
//     iff its coordinate is ≥ 0.5.
//
//   - CuckooSearch: the same encoding as ParticleSwarm, explored with
//     Lévy flights (Mantegna) and abandonment of the worst nests.
//
// Fitness:
//
//	Every solver scores a candidate by its total value when it fits the
//	capacity and by 0 otherwise. The incumbent starts as the empty selection
//	(fitness 0) and is replaced only by strictly fitter candidates, so the
//	returned Solution is always feasible even though the search visits
//	infeasible points.
//
// Determinism:
//
//	All randomness is drawn from the Source passed in. A nil Source means
//	NewSource(0). The same seed and Options always yield the same Solution.
//	A Source is not safe for concurrent use; derive one per goroutine with
//	DeriveSource.
//
// Every solver returns the empty Solution for a Problem without items.
// Steps counts fitness evaluations plus one per iteration (and, for
// AntColony, one per candidate item examined).
package heuristic
