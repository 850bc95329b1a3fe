package core

// NewProblem validates items and capacity and returns an immutable Problem.
// The items slice is copied; later changes by the caller are not observed.
//
// Errors:
//   - ErrInvalidInput (wrapped) for empty/duplicate IDs, negative or non-finite
//     values, non-positive or non-finite weights, negative or non-finite capacity.
//
// Complexity: O(n) time and space.
func NewProblem(items []Item, capacity float64) (*Problem, error) {
	integral, err := validateAll(items, capacity)
	if err != nil {
		return nil, err
	}

	cp := make([]Item, len(items))
	copy(cp, items)

	return &Problem{items: cp, capacity: capacity, integral: integral}, nil
}

// MustProblem is like NewProblem but panics on invalid input.
// Intended for tests and package examples with literal data.
func MustProblem(items []Item, capacity float64) *Problem {
	p, err := NewProblem(items, capacity)
	if err != nil {
		panic(err)
	}

	return p
}

// Len returns the number of items.
func (p *Problem) Len() int { return len(p.items) }

// Capacity returns the weight bound.
func (p *Problem) Capacity() float64 { return p.capacity }

// Item returns the item at index i. It panics if i is out of range, like a
// slice index would.
func (p *Problem) Item(i int) Item { return p.items[i] }

// Items returns a copy of the item sequence.
func (p *Problem) Items() []Item {
	cp := make([]Item, len(p.items))
	copy(cp, p.items)

	return cp
}

// Values returns a fresh dense buffer of item values, in item order.
func (p *Problem) Values() []float64 {
	out := make([]float64, len(p.items))
	for i := range p.items {
		out[i] = p.items[i].Value
	}

	return out
}

// Weights returns a fresh dense buffer of item weights, in item order.
func (p *Problem) Weights() []float64 {
	out := make([]float64, len(p.items))
	for i := range p.items {
		out[i] = p.items[i].Weight
	}

	return out
}

// IsIntegral reports whether the capacity and every weight are whole numbers,
// which tabular solvers require to index their tables.
func (p *Problem) IsIntegral() bool { return p.integral }

// MaxValue returns the largest item value, or 0 for an empty Problem.
func (p *Problem) MaxValue() float64 {
	var best float64
	for i := range p.items {
		if p.items[i].Value > best {
			best = p.items[i].Value
		}
	}

	return best
}

// Evaluate returns the total value and weight of the items selected by mask,
// where mask[i] reports whether item i is included. len(mask) must equal Len().
func (p *Problem) Evaluate(mask []bool) (value, weight float64) {
	for i, on := range mask {
		if on {
			value += p.items[i].Value
			weight += p.items[i].Weight
		}
	}

	return value, weight
}
