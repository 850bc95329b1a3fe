package core

import "errors"

// Sentinel errors shared by all solver packages. Callers match them with
// errors.Is; solvers wrap them with detail via fmt.Errorf("%w: ...").
var (
	// ErrInvalidInput indicates a malformed Problem (negative value, non-positive
	// weight, duplicate or empty ID, bad capacity) or invalid solver parameters.
	ErrInvalidInput = errors.New("core: invalid input")

	// ErrComplexityExceeded indicates the instance is beyond the safe bound of an
	// exponential (brute force, branch-and-bound) or tabular (DP, FPTAS) solver.
	ErrComplexityExceeded = errors.New("core: complexity bound exceeded")

	// ErrDegenerateInput indicates all item values are zero where a value-based
	// scaling factor is required.
	ErrDegenerateInput = errors.New("core: degenerate input")

	// ErrUnknownAlgorithm indicates an unrecognized algorithm selector.
	ErrUnknownAlgorithm = errors.New("core: unknown algorithm")

	// ErrBudgetExceeded indicates that a caller-provided step budget or
	// wall-clock limit was exhausted before the search completed.
	ErrBudgetExceeded = errors.New("core: search budget exceeded")
)

// Item is a single candidate for the knapsack.
//
// ID uniquely identifies the Item within its Problem.
// Value must be finite and ≥ 0; Weight must be finite and > 0.
type Item struct {
	// ID is the unique identifier of this Item.
	ID string `json:"id" yaml:"id"`

	// Value is the profit gained by selecting the Item.
	Value float64 `json:"value" yaml:"value"`

	// Weight is the capacity consumed by selecting the Item.
	Weight float64 `json:"weight" yaml:"weight"`
}

// Ratio returns Value/Weight. Weight is positive for every validated Item.
func (it Item) Ratio() float64 { return it.Value / it.Weight }

// Problem is an immutable knapsack instance: an ordered item sequence plus a
// capacity. Construct it with NewProblem.
type Problem struct {
	items    []Item
	capacity float64
	integral bool // all weights and the capacity are whole numbers
}

// Solution is the uniform result shape produced by every solver.
//
// Indices are positions in the originating Problem, ascending; Items holds
// the corresponding Items in the same order. Value and Weight are derived.
// Steps is instrumentation only and never affects the selection.
type Solution struct {
	Items   []Item `json:"items"`
	Indices []int  `json:"indices"`

	Value  float64 `json:"value"`
	Weight float64 `json:"weight"`

	// Steps counts elementary operations performed by the solver. Counts are
	// comparable within an algorithm family, not across families.
	Steps int64 `json:"steps"`

	// Combinations is the brute-force diagnostic side channel: every subset
	// enumerated, in mask order. Nil unless explicitly requested.
	Combinations []Combination `json:"combinations,omitempty"`
}

// Combination records one enumerated subset of a brute-force run.
type Combination struct {
	Indices  []int   `json:"indices"`
	Value    float64 `json:"value"`
	Weight   float64 `json:"weight"`
	Feasible bool    `json:"feasible"`
}
