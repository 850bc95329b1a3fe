package heuristic_test

import (
	"fmt"

	"github.com/katalvlaran/knapsack/core"
	"github.com/katalvlaran/knapsack/heuristic"
)

// ExampleSimulatedAnnealing runs a seeded annealing; the same seed always
// gives the same answer.
func ExampleSimulatedAnnealing() {
	p := core.MustProblem([]core.Item{
		{ID: "1", Value: 60, Weight: 10},
		{ID: "2", Value: 100, Weight: 20},
		{ID: "3", Value: 120, Weight: 30},
	}, 50)

	sol, err := heuristic.SimulatedAnnealing(p, heuristic.DefaultSAOptions(), heuristic.NewSource(2024))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(sol.IDs(), sol.Value, sol.Feasible(p))
	// Output: [2 3] 220 true
}
