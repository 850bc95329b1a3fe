package exact

import (
	"github.com/katalvlaran/knapsack/core"
)

// Table is the filled dynamic-programming table of a Problem.
// At(i, w) is the best value reachable with the first i items and capacity w.
type Table struct {
	rows, cols int
	cells      []float64
	steps      int64
}

// Rows returns n+1.
func (t *Table) Rows() int { return t.rows }

// Cols returns capacity+1.
func (t *Table) Cols() int { return t.cols }

// At returns dp[i][w]. It panics if i or w is out of range.
func (t *Table) At(i, w int) float64 {
	if i < 0 || i >= t.rows || w < 0 || w >= t.cols {
		panic("exact: table index out of range")
	}

	return t.cells[i*t.cols+w]
}

// Steps returns the number of cells computed while filling the table.
func (t *Table) Steps() int64 { return t.steps }

// Tabulate fills the (n+1)×(capacity+1) table for p bottom-up:
//
//	dp[0][w] = 0
//	dp[i][w] = dp[i-1][w]                              if wᵢ > w
//	dp[i][w] = max(dp[i-1][w], dp[i-1][w-wᵢ] + vᵢ)     otherwise
//
// Errors:
//   - ErrInvalidInput if weights or capacity are not integral, or opts are malformed.
//   - ErrComplexityExceeded if the table exceeds opts.MaxTableCells.
//   - ErrBudgetExceeded if opts.MaxSteps or opts.TimeLimit fire.
func Tabulate(p *core.Problem, opts Options) (*Table, error) {
	opts, err := opts.normalize()
	if err != nil {
		return nil, err
	}
	capacity, err := tableShape(p, opts.MaxTableCells)
	if err != nil {
		return nil, err
	}

	n := p.Len()
	values := p.Values()
	weights := p.Weights()
	cols := capacity + 1
	t := &Table{rows: n + 1, cols: cols, cells: make([]float64, (n+1)*cols)}
	guard := newBudget(opts)

	for i := 1; i <= n; i++ {
		wi := int(weights[i-1])
		vi := values[i-1]
		prev := t.cells[(i-1)*cols : i*cols]
		cur := t.cells[i*cols : (i+1)*cols]
		for w := 0; w < cols; w++ {
			if guard.tick() {
				return nil, guard.err("dynamic programming")
			}
			t.steps++

			best := prev[w]
			if wi <= w {
				if cand := prev[w-wi] + vi; cand > best {
					best = cand
				}
			}
			cur[w] = best
		}
	}

	return t, nil
}

// DynamicProgramming solves p exactly with the bottom-up table and walks it
// back from dp[n][capacity]: item i is selected iff dp[i][w] ≠ dp[i-1][w].
//
// Steps counts filled cells plus reconstruction steps.
// Errors are those of Tabulate.
func DynamicProgramming(p *core.Problem, opts Options) (core.Solution, error) {
	if p.Len() == 0 {
		return core.EmptySolution(0), nil
	}
	t, err := Tabulate(p, opts)
	if err != nil {
		return core.Solution{}, err
	}

	steps := t.steps
	weights := p.Weights()
	w := t.cols - 1
	selected := make([]int, 0, p.Len())
	for i := t.rows - 1; i > 0; i-- {
		steps++
		if t.At(i, w) != t.At(i-1, w) {
			selected = append(selected, i-1)
			w -= int(weights[i-1])
		}
	}

	return core.NewSolution(p, selected, steps), nil
}
