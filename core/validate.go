// Package core - validation helpers for Problem construction.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No panics on user input; every failure wraps ErrInvalidInput with the
//     offending index or ID so callers can report it verbatim.
//   - O(n) time, O(n) extra space for the ID uniqueness check.
package core

import (
	"fmt"
	"math"
)

// validateAll verifies capacity and items in two stages and reports whether
// the instance is integral (all weights and the capacity are whole numbers).
func validateAll(items []Item, capacity float64) (bool, error) {
	// Stage 1: capacity.
	if err := validateCapacity(capacity); err != nil {
		return false, err
	}

	// Stage 2: items (values, weights, IDs).
	if err := validateItems(items); err != nil {
		return false, err
	}

	integral := isWhole(capacity)
	for i := range items {
		if !isWhole(items[i].Weight) {
			integral = false
			break
		}
	}

	return integral, nil
}

// validateCapacity rejects negative, NaN and infinite capacities.
// Zero is allowed: nothing fits and every solver returns the empty selection.
func validateCapacity(capacity float64) error {
	if math.IsNaN(capacity) || math.IsInf(capacity, 0) {
		return fmt.Errorf("%w: capacity must be finite, got %v", ErrInvalidInput, capacity)
	}
	if capacity < 0 {
		return fmt.Errorf("%w: capacity must be non-negative, got %v", ErrInvalidInput, capacity)
	}

	return nil
}

// validateItems enforces non-empty unique IDs, finite non-negative values and
// finite positive weights.
func validateItems(items []Item) error {
	seen := make(map[string]struct{}, len(items))

	var (
		i  int
		it Item
		ok bool
	)
	for i, it = range items {
		if it.ID == "" {
			return fmt.Errorf("%w: item %d has an empty ID", ErrInvalidInput, i)
		}
		if _, ok = seen[it.ID]; ok {
			return fmt.Errorf("%w: duplicate item ID %q", ErrInvalidInput, it.ID)
		}
		seen[it.ID] = struct{}{}

		if math.IsNaN(it.Value) || math.IsInf(it.Value, 0) || it.Value < 0 {
			return fmt.Errorf("%w: item %q value must be finite and non-negative, got %v", ErrInvalidInput, it.ID, it.Value)
		}
		if math.IsNaN(it.Weight) || math.IsInf(it.Weight, 0) || it.Weight <= 0 {
			return fmt.Errorf("%w: item %q weight must be finite and positive, got %v", ErrInvalidInput, it.ID, it.Weight)
		}
	}

	return nil
}

// maxExactInt is the largest float64 below which every integer is representable.
const maxExactInt = 1 << 53

// isWhole reports whether x has no fractional part and is exactly representable.
func isWhole(x float64) bool {
	return x == math.Trunc(x) && x <= maxExactInt
}
