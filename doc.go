// Package knapsack is a suite of 0/1 knapsack solvers: four exact
// algorithms, three approximations and five seeded metaheuristics behind one
// dispatch facade.
//
// What is 0/1 knapsack?
//
//	Given items with a value and a weight and a capacity, choose a subset
//	whose total weight fits the capacity and whose total value is maximal.
//	Every item is taken at most once.
//
// Why this suite?
//
//   - One problem model: validated once, immutable, shared by every solver
//   - One result shape: selected items, totals and a step counter, so the
//     algorithms can be compared on equal terms
//   - Deterministic: stochastic solvers draw from an explicit seeded source
//   - Bounded: exact solvers refuse inputs past their complexity caps and
//     honour step and wall-clock budgets
//
// Packages:
//
//	core/      Item, Problem, Solution, sentinel errors, ordering helpers
//	exact/     brute force, tabular DP, memoized DP, branch-and-bound
//	approx/    greedy by ratio, value approximation, FPTAS
//	heuristic/ genetic, annealing, ant colony, particle swarm, cuckoo search
//	solver/    Algorithm selectors, Solve dispatch, exact cross-check
//	config/    YAML/JSON configuration with KNAPSACK_* overrides
//	instance/  problem files in YAML or JSON
//	logging/   slog construction
//	metrics/   Prometheus solve counters and histograms
//	cmd/knapsack  command line front end
//
// Quick example:
//
//	p, _ := core.NewProblem([]core.Item{
//		{ID: "a", Value: 60, Weight: 10},
//		{ID: "b", Value: 100, Weight: 20},
//		{ID: "c", Value: 120, Weight: 30},
//	}, 50)
//	res, _ := solver.Solve(p, solver.DynamicProgramming, solver.DefaultOptions())
//	// res.Solution.Value == 220, items b and c
//
//	go get github.com/katalvlaran/knapsack
package knapsack
