// Package metrics records solver outcomes as Prometheus collectors.
//
// Collectors are registered on the Registerer given to NewRecorder, never on
// the global default registry, so tests and CLI runs stay isolated:
//
//	reg := prometheus.NewRegistry()
//	rec := metrics.NewRecorder(reg)
//	rec.Observe("dp", metrics.OutcomeOK, elapsed, steps, value)
//
// A nil *Recorder is valid and records nothing.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "knapsack"

// Outcome labels.
const (
	OutcomeOK                 = "ok"
	OutcomeInvalidInput       = "invalid_input"
	OutcomeComplexityExceeded = "complexity_exceeded"
	OutcomeDegenerateInput    = "degenerate_input"
	OutcomeBudgetExceeded     = "budget_exceeded"
	OutcomeUnknownAlgorithm   = "unknown_algorithm"
	OutcomeError              = "error"
)

// Recorder holds the solver collectors.
type Recorder struct {
	// SolvesTotal counts solve calls.
	// Labels: algorithm (dp, ga, ...), outcome (ok, invalid_input, ...)
	SolvesTotal *prometheus.CounterVec

	// SolveDurationSeconds measures wall-clock time per solve.
	// Labels: algorithm
	SolveDurationSeconds *prometheus.HistogramVec

	// SolveSteps tracks the step counter reported by successful solves.
	// Labels: algorithm
	SolveSteps *prometheus.HistogramVec

	// SolutionValue is the value of the last successful solution.
	// Labels: algorithm
	SolutionValue *prometheus.GaugeVec
}

// NewRecorder registers the collectors on reg. It panics if they are already
// registered there, as promauto does.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)

	return &Recorder{
		SolvesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "solves_total",
				Help:      "Total number of solve calls by algorithm and outcome",
			},
			[]string{"algorithm", "outcome"},
		),
		SolveDurationSeconds: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "solve_duration_seconds",
				Help:      "Solve duration in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 12), // 10µs to ~40s
			},
			[]string{"algorithm"},
		),
		SolveSteps: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "solve_steps",
				Help:      "Step counter reported by successful solves",
				Buckets:   prometheus.ExponentialBuckets(10, 10, 9), // 10 to 1e9
			},
			[]string{"algorithm"},
		),
		SolutionValue: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Name:      "solution_value",
				Help:      "Total value of the last successful solution",
			},
			[]string{"algorithm"},
		),
	}
}

// Observe records one solve call. Steps and value are recorded only when
// outcome is OutcomeOK.
func (r *Recorder) Observe(algorithm, outcome string, elapsed time.Duration, steps int64, value float64) {
	if r == nil {
		return
	}
	r.SolvesTotal.WithLabelValues(algorithm, outcome).Inc()
	r.SolveDurationSeconds.WithLabelValues(algorithm).Observe(elapsed.Seconds())
	if outcome != OutcomeOK {
		return
	}
	r.SolveSteps.WithLabelValues(algorithm).Observe(float64(steps))
	r.SolutionValue.WithLabelValues(algorithm).Set(value)
}
