// Package solver is the single entry point to every knapsack algorithm.
//
// It maps an Algorithm (or its selector string) to the implementation in
// the exact, approx and heuristic packages and returns a uniform Result:
//
//	p := core.MustProblem(items, 50)
//	res, err := solver.Solve(p, solver.DynamicProgramming, solver.DefaultOptions())
//
// Selectors:
//
//	bruteforce, dp, dp_recursive, greedy, bnb, ga, sa, aco, pso, cuckoo, approx, fptas
//
// Around each call the facade:
//   - returns the empty Solution for a Problem without items, whatever the algorithm;
//   - seeds stochastic solvers from Options.Source, or from Options.Seed;
//   - re-checks that the returned selection fits the capacity;
//   - logs start and end through Options.Logger (nil means discard);
//   - records the outcome on Options.Metrics when set.
//
// Each call owns all of its state, so separate calls may run in parallel as
// long as they do not share a Source.
package solver
