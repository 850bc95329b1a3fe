// Package core defines the immutable knapsack Problem model shared by every
// solver: Item, Problem, Solution and the brute-force Combination record,
// together with the error taxonomy and the ordering utilities used by the
// exact and approximation solvers.
//
// What is the 0/1 knapsack problem?
//
//	Given items with a value and a weight and a capacity bound, select a
//	subset that maximizes total value subject to total weight ≤ capacity.
//	Every item is either taken whole or left out.
//
// Model guarantees:
//
//   - Problems are validated once by NewProblem and never change afterwards.
//     Accessors return copies, so solvers prefetch values and weights into
//     dense local buffers and can never mutate shared state.
//   - Item IDs are unique within a Problem; item order only matters for
//     reproducibility of tie-breaks.
//   - Solutions are built by NewSolution from item indices; totals are derived,
//     never supplied, and indices are kept ascending.
//
// Errors:
//
//	ErrInvalidInput       - malformed Problem or solver parameters.
//	ErrComplexityExceeded - instance too large for an exponential or tabular solver.
//	ErrDegenerateInput    - all-zero values where a scaling factor is needed (FPTAS).
//	ErrUnknownAlgorithm   - unrecognized algorithm selector.
//	ErrBudgetExceeded     - a step budget or wall-clock guard fired.
//
// Example:
//
//	p, err := core.NewProblem([]core.Item{
//		{ID: "1", Value: 60, Weight: 10},
//		{ID: "2", Value: 100, Weight: 20},
//		{ID: "3", Value: 120, Weight: 30},
//	}, 50)
//	if err != nil {
//		// handle ErrInvalidInput
//	}
//	sol := core.NewSolution(p, []int{1, 2}, 0) // value 220, weight 50
package core
