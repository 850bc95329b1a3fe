package core_test

import (
	"fmt"

	"github.com/katalvlaran/knapsack/core"
)

// ExampleNewSolution builds the optimal selection of the classic instance by hand.
func ExampleNewSolution() {
	p, err := core.NewProblem([]core.Item{
		{ID: "1", Value: 60, Weight: 10},
		{ID: "2", Value: 100, Weight: 20},
		{ID: "3", Value: 120, Weight: 30},
	}, 50)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	sol := core.NewSolution(p, []int{2, 1}, 0)
	fmt.Println(sol.IDs(), sol.Value, sol.Weight, sol.Feasible(p))
	// Output:
	// [2 3] 220 50 true
}
