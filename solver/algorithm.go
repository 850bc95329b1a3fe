package solver

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/knapsack/core"
)

// Algorithm selects one of the twelve solvers.
type Algorithm int

const (
	BruteForce Algorithm = iota
	DynamicProgramming
	RecursiveDP
	Greedy
	BranchAndBound
	Genetic
	Annealing
	AntColony
	ParticleSwarm
	Cuckoo
	ValueApproximation
	FPTAS

	numAlgorithms
)

var selectors = [numAlgorithms]string{
	BruteForce:         "bruteforce",
	DynamicProgramming: "dp",
	RecursiveDP:        "dp_recursive",
	Greedy:             "greedy",
	BranchAndBound:     "bnb",
	Genetic:            "ga",
	Annealing:          "sa",
	AntColony:          "aco",
	ParticleSwarm:      "pso",
	Cuckoo:             "cuckoo",
	ValueApproximation: "approx",
	FPTAS:              "fptas",
}

// Family groups algorithms by the kind of answer they give.
type Family string

const (
	FamilyExact       Family = "exact"
	FamilyApproximate Family = "approximate"
	FamilyHeuristic   Family = "heuristic"
)

// String returns the selector, e.g. "dp".
func (a Algorithm) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}

	return selectors[a]
}

// Valid reports whether a names a known algorithm.
func (a Algorithm) Valid() bool { return a >= 0 && a < numAlgorithms }

// Family returns the algorithm family.
func (a Algorithm) Family() Family {
	switch a {
	case BruteForce, DynamicProgramming, RecursiveDP, BranchAndBound:
		return FamilyExact
	case Greedy, ValueApproximation, FPTAS:
		return FamilyApproximate
	default:
		return FamilyHeuristic
	}
}

// Stochastic reports whether a draws from a random Source.
func (a Algorithm) Stochastic() bool { return a.Valid() && a.Family() == FamilyHeuristic }

// MarshalText encodes a as its selector.
func (a Algorithm) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("%w: %d", core.ErrUnknownAlgorithm, int(a))
	}

	return []byte(selectors[a]), nil
}

// UnmarshalText decodes a selector.
func (a *Algorithm) UnmarshalText(text []byte) error {
	parsed, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = parsed

	return nil
}

// ParseAlgorithm maps a selector to its Algorithm, ignoring case and
// surrounding space.
func ParseAlgorithm(s string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for a, sel := range selectors {
		if sel == key {
			return Algorithm(a), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", core.ErrUnknownAlgorithm, s)
}

// Algorithms returns every Algorithm in selector order.
func Algorithms() []Algorithm {
	out := make([]Algorithm, numAlgorithms)
	for i := range out {
		out[i] = Algorithm(i)
	}

	return out
}
