package core

import (
	"fmt"
	"sort"
)

// NewSolution builds a Solution from item indices of p. Indices are copied and
// sorted ascending; Value and Weight are summed from p. steps is stored as-is.
//
// It panics on an out-of-range or repeated index: solvers only pass indices
// they derived from p, so either is a programming error.
//
// Complexity: O(k log k) for k selected indices.
func NewSolution(p *Problem, indices []int, steps int64) Solution {
	idx := make([]int, len(indices))
	copy(idx, indices)
	sort.Ints(idx)

	sol := Solution{
		Items:   make([]Item, len(idx)),
		Indices: idx,
		Steps:   steps,
	}
	for k, i := range idx {
		if i < 0 || i >= len(p.items) {
			panic(fmt.Sprintf("core: solution index %d out of range [0,%d)", i, len(p.items)))
		}
		if k > 0 && idx[k-1] == i {
			panic(fmt.Sprintf("core: solution index %d repeated", i))
		}
		sol.Items[k] = p.items[i]
		sol.Value += p.items[i].Value
		sol.Weight += p.items[i].Weight
	}

	return sol
}

// FromMask builds a Solution from an inclusion mask (mask[i] selects item i).
func FromMask(p *Problem, mask []bool, steps int64) Solution {
	indices := make([]int, 0, len(mask))
	for i, on := range mask {
		if on {
			indices = append(indices, i)
		}
	}

	return NewSolution(p, indices, steps)
}

// EmptySolution returns the feasible empty selection (value 0, weight 0).
func EmptySolution(steps int64) Solution {
	return Solution{Items: []Item{}, Indices: []int{}, Steps: steps}
}

// Feasible reports whether the Solution respects the capacity of p.
func (s Solution) Feasible(p *Problem) bool { return s.Weight <= p.capacity }

// Len returns the number of selected items.
func (s Solution) Len() int { return len(s.Indices) }

// IDs returns the selected item IDs in index order.
func (s Solution) IDs() []string {
	out := make([]string, len(s.Items))
	for i := range s.Items {
		out[i] = s.Items[i].ID
	}

	return out
}

// Contains reports whether the item with the given ID is selected.
func (s Solution) Contains(id string) bool {
	for i := range s.Items {
		if s.Items[i].ID == id {
			return true
		}
	}

	return false
}
