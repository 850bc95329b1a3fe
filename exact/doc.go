// Package exact provides optimal 0/1 knapsack solvers.
//
// It includes four algorithms over a core.Problem.
//
// # BruteForce
//
// Enumerates all 2ⁿ subsets by integer mask. O(n·2ⁿ) time and O(n) memory,
// or O(n·2ⁿ) memory with RecordCombinations. Guarded by
// Options.MaxBruteForceItems (default 24).
//
// # DynamicProgramming
//
// Bottom-up table dp[i][w] over integral weights. O(n·C) time and memory
// with C the capacity. This is a hard limit: the table is allocated in full
// and guarded by Options.MaxTableCells.
//
// # RecursiveDP
//
// The same recurrence computed top-down with a per-call memo keyed by
// (i, remaining). It visits only reachable states, never more than the table
// has cells, and shares the MaxTableCells guard.
//
// # BranchAndBound
//
// Depth-first include/exclude search in ratio order, pruned by a
// fractional-knapsack upper bound. Exponential in the worst case, usually
// far better thanks to pruning. Guarded by Options.MaxBranchAndBoundItems
// (default 64).
//
// # Budgets
//
// Options.MaxSteps and Options.TimeLimit bound the work of every solver.
// Zero means unlimited. When a budget fires the solver returns
// core.ErrBudgetExceeded instead of a silently incomplete answer.
//
// Every solver returns the empty Solution (value 0) for a Problem without
// items, whatever the capacity.
package exact
