package exact

import (
	"fmt"
	"time"

	"github.com/katalvlaran/knapsack/core"
)

// budget enforces Options.MaxSteps and Options.TimeLimit. It counts its own
// work units so the reported step counter stays pure instrumentation.
type budget struct {
	maxSteps    int64
	useDeadline bool
	deadline    time.Time
	limit       time.Duration
	work        int64
	exceeded    bool
}

// newBudget arms the guard; the deadline starts counting immediately.
func newBudget(opts Options) budget {
	b := budget{maxSteps: opts.MaxSteps, limit: opts.TimeLimit}
	if opts.TimeLimit > 0 {
		b.useDeadline = true
		b.deadline = time.Now().Add(opts.TimeLimit)
	}

	return b
}

// tick records one unit of work and reports whether the budget is exhausted.
// The wall clock is read only once every 4096 units.
func (b *budget) tick() bool {
	if b.exceeded {
		return true
	}
	b.work++
	if b.maxSteps > 0 && b.work > b.maxSteps {
		b.exceeded = true
	} else if b.useDeadline && (b.work&deadlineMask) == 0 && time.Now().After(b.deadline) {
		b.exceeded = true
	}

	return b.exceeded
}

// err describes which limit fired.
func (b *budget) err(solver string) error {
	if b.maxSteps > 0 && b.work > b.maxSteps {
		return fmt.Errorf("%w: %s used more than %d steps", core.ErrBudgetExceeded, solver, b.maxSteps)
	}

	return fmt.Errorf("%w: %s exceeded time limit %v", core.ErrBudgetExceeded, solver, b.limit)
}
