package approx_test

import (
	"fmt"

	"github.com/katalvlaran/knapsack/approx"
	"github.com/katalvlaran/knapsack/core"
)

// ExampleGreedy fills by ratio and misses the optimum of 220.
func ExampleGreedy() {
	p := core.MustProblem([]core.Item{
		{ID: "1", Value: 60, Weight: 10},
		{ID: "2", Value: 100, Weight: 20},
		{ID: "3", Value: 120, Weight: 30},
	}, 50)

	sol := approx.Greedy(p)
	fmt.Println(sol.IDs(), sol.Value)
	// Output: [1 2] 160
}

// ExampleFPTAS trades a bounded loss for polynomial time.
func ExampleFPTAS() {
	p := core.MustProblem([]core.Item{
		{ID: "1", Value: 60, Weight: 10},
		{ID: "2", Value: 100, Weight: 20},
		{ID: "3", Value: 120, Weight: 30},
	}, 50)

	sol, err := approx.FPTAS(p, approx.FPTASOptions{Epsilon: 0.1})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(sol.IDs(), sol.Value)
	// Output: [2 3] 220
}
