package approx

import (
	"fmt"
	"math"

	"github.com/katalvlaran/knapsack/core"
)

const (
	// DefaultEpsilon is the FPTAS error tolerance: results are ≥ 80% of optimal.
	DefaultEpsilon = 0.2

	// DefaultMaxTableCells caps (n+1)·(scaledValueSum+1) for FPTAS.
	DefaultMaxTableCells int64 = 1 << 25
)

// FPTASOptions configures FPTAS.
//
// Fields:
//   - Epsilon: error tolerance in (0,1); 0 selects DefaultEpsilon.
//   - MaxTableCells: table size above which FPTAS refuses to run; 0 selects the default.
type FPTASOptions struct {
	Epsilon       float64
	MaxTableCells int64
}

// DefaultFPTASOptions returns Epsilon 0.2 and the default table cap.
func DefaultFPTASOptions() FPTASOptions {
	return FPTASOptions{Epsilon: DefaultEpsilon, MaxTableCells: DefaultMaxTableCells}
}

// normalize validates o and fills zero fields with defaults.
func (o FPTASOptions) normalize() (FPTASOptions, error) {
	if math.IsNaN(o.Epsilon) || o.Epsilon < 0 || o.Epsilon >= 1 {
		return o, fmt.Errorf("%w: Epsilon must be in (0,1), got %v", core.ErrInvalidInput, o.Epsilon)
	}
	if o.MaxTableCells < 0 {
		return o, fmt.Errorf("%w: MaxTableCells must be non-negative, got %d", core.ErrInvalidInput, o.MaxTableCells)
	}
	if o.Epsilon == 0 {
		o.Epsilon = DefaultEpsilon
	}
	if o.MaxTableCells == 0 {
		o.MaxTableCells = DefaultMaxTableCells
	}

	return o, nil
}
