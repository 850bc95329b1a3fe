package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/knapsack/core"
)

func TestByRatio_DescendingStable(t *testing.T) {
	p := core.MustProblem([]core.Item{
		{ID: "a", Value: 10, Weight: 5},  // 2
		{ID: "b", Value: 30, Weight: 10}, // 3
		{ID: "c", Value: 4, Weight: 2},   // 2 (ties with a, keeps order)
		{ID: "d", Value: 1, Weight: 4},   // 0.25
	}, 10)

	var compares int64
	order := core.ByRatio(p, &compares)
	assert.Equal(t, []int{1, 0, 2, 3}, order)
	assert.Positive(t, compares)
}

func TestByValue_IgnoresWeight(t *testing.T) {
	p := core.MustProblem([]core.Item{
		{ID: "a", Value: 5, Weight: 1},
		{ID: "b", Value: 50, Weight: 100},
		{ID: "c", Value: 5, Weight: 2},
	}, 10)

	assert.Equal(t, []int{1, 0, 2}, core.ByValue(p, nil))
}
