// Package approx provides fast approximate 0/1 knapsack solvers.
//
// It includes three algorithms over a core.Problem.
//
// # Greedy
//
// Fills the knapsack in descending value/weight ratio order, skipping items
// that no longer fit. O(n log n), no optimality guarantee.
//
// # ValueApproximation
//
// The same fill in descending value order, O(n log n). The textbook 1/2
// guarantee needs a final comparison with the best single item that fits
// alone. This solver does not make it, so the guarantee holds only on
// instances where that item is not better.
//
// # FPTAS
//
// Scales values by K = ε·maxValue/n, runs an exact minimum-weight DP over
// scaled values and returns a selection worth at least (1-ε)·OPT.
// O(n³/ε) time and memory, independent of raw values. Guarded by
// FPTASOptions.MaxTableCells; a scaled table past the cap, however small ε
// is, yields core.ErrComplexityExceeded.
//
// Every solver returns the empty Solution for a Problem without items.
// FPTAS on a non-empty Problem whose values are all zero returns the empty
// Solution together with core.ErrDegenerateInput.
package approx
