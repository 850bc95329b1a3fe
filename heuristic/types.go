package heuristic

import (
	"fmt"
	"math"

	"github.com/katalvlaran/knapsack/core"
)

// GAOptions configures GeneticAlgorithm.
type GAOptions struct {
	PopulationSize int     // individuals per generation (default 50)
	Generations    int     // generations to breed (default 100)
	MutationRate   float64 // per-bit flip probability in [0,1] (default 0.05)
	TournamentSize int     // draws per tournament, with replacement (default 3)
}

// DefaultGAOptions returns the standard genetic algorithm parameters.
func DefaultGAOptions() GAOptions {
	return GAOptions{PopulationSize: 50, Generations: 100, MutationRate: 0.05, TournamentSize: 3}
}

func (o GAOptions) normalize() (GAOptions, error) {
	if o == (GAOptions{}) {
		return DefaultGAOptions(), nil
	}
	switch {
	case o.PopulationSize < 1:
		return o, invalid("PopulationSize", o.PopulationSize)
	case o.Generations < 1:
		return o, invalid("Generations", o.Generations)
	case !inUnit(o.MutationRate):
		return o, invalid("MutationRate", o.MutationRate)
	case o.TournamentSize < 1:
		return o, invalid("TournamentSize", o.TournamentSize)
	}

	return o, nil
}

// SAOptions configures SimulatedAnnealing.
type SAOptions struct {
	InitialTemperature   float64 // starting temperature (default 100)
	CoolingRate          float64 // geometric factor in (0,1) (default 0.95)
	TrialsPerTemperature int     // neighbors tried before cooling (default 50)
	MinTemperature       float64 // annealing stops once T ≤ MinTemperature (default 1)
}

// DefaultSAOptions returns the standard annealing schedule.
func DefaultSAOptions() SAOptions {
	return SAOptions{InitialTemperature: 100, CoolingRate: 0.95, TrialsPerTemperature: 50, MinTemperature: 1}
}

func (o SAOptions) normalize() (SAOptions, error) {
	if o == (SAOptions{}) {
		return DefaultSAOptions(), nil
	}
	switch {
	case !positive(o.InitialTemperature):
		return o, invalid("InitialTemperature", o.InitialTemperature)
	case !(o.CoolingRate > 0 && o.CoolingRate < 1):
		return o, invalid("CoolingRate", o.CoolingRate)
	case o.TrialsPerTemperature < 1:
		return o, invalid("TrialsPerTemperature", o.TrialsPerTemperature)
	case !positive(o.MinTemperature):
		return o, invalid("MinTemperature", o.MinTemperature)
	}

	return o, nil
}

// ACOOptions configures AntColony.
type ACOOptions struct {
	Ants        int     // ants per iteration (default 20)
	Iterations  int     // colony iterations (default 50)
	Alpha       float64 // pheromone exponent (default 1)
	Beta        float64 // value/weight exponent (default 2)
	Evaporation float64 // fraction of pheromone lost per iteration in [0,1] (default 0.5)
	Deposit     float64 // Q: deposit is Q·antValue/capacity per chosen item (default 100)
}

// DefaultACOOptions returns the standard colony parameters.
func DefaultACOOptions() ACOOptions {
	return ACOOptions{Ants: 20, Iterations: 50, Alpha: 1, Beta: 2, Evaporation: 0.5, Deposit: 100}
}

func (o ACOOptions) normalize() (ACOOptions, error) {
	if o == (ACOOptions{}) {
		return DefaultACOOptions(), nil
	}
	switch {
	case o.Ants < 1:
		return o, invalid("Ants", o.Ants)
	case o.Iterations < 1:
		return o, invalid("Iterations", o.Iterations)
	case !nonNegative(o.Alpha):
		return o, invalid("Alpha", o.Alpha)
	case !nonNegative(o.Beta):
		return o, invalid("Beta", o.Beta)
	case !inUnit(o.Evaporation):
		return o, invalid("Evaporation", o.Evaporation)
	case !nonNegative(o.Deposit):
		return o, invalid("Deposit", o.Deposit)
	}

	return o, nil
}

// PSOOptions configures ParticleSwarm.
type PSOOptions struct {
	Particles  int     // swarm size (default 30)
	Iterations int     // swarm iterations (default 50)
	Inertia    float64 // w (default 0.7)
	Cognitive  float64 // c1, pull toward the personal best (default 1.5)
	Social     float64 // c2, pull toward the global best (default 1.5)
}

// DefaultPSOOptions returns the standard swarm parameters.
func DefaultPSOOptions() PSOOptions {
	return PSOOptions{Particles: 30, Iterations: 50, Inertia: 0.7, Cognitive: 1.5, Social: 1.5}
}

func (o PSOOptions) normalize() (PSOOptions, error) {
	if o == (PSOOptions{}) {
		return DefaultPSOOptions(), nil
	}
	switch {
	case o.Particles < 1:
		return o, invalid("Particles", o.Particles)
	case o.Iterations < 1:
		return o, invalid("Iterations", o.Iterations)
	case !nonNegative(o.Inertia):
		return o, invalid("Inertia", o.Inertia)
	case !nonNegative(o.Cognitive):
		return o, invalid("Cognitive", o.Cognitive)
	case !nonNegative(o.Social):
		return o, invalid("Social", o.Social)
	}

	return o, nil
}

// CuckooOptions configures CuckooSearch.
type CuckooOptions struct {
	Nests      int     // population size (default 25)
	Iterations int     // search iterations (default 50)
	Abandon    float64 // pa, fraction of worst nests rebuilt each iteration (default 0.25)
	StepScale  float64 // multiplier applied to every Lévy step (default 0.1)
	LevyBeta   float64 // stability index in (0,2] (default 1.5)
}

// DefaultCuckooOptions returns the standard cuckoo search parameters.
func DefaultCuckooOptions() CuckooOptions {
	return CuckooOptions{Nests: 25, Iterations: 50, Abandon: 0.25, StepScale: 0.1, LevyBeta: 1.5}
}

func (o CuckooOptions) normalize() (CuckooOptions, error) {
	if o == (CuckooOptions{}) {
		return DefaultCuckooOptions(), nil
	}
	switch {
	case o.Nests < 1:
		return o, invalid("Nests", o.Nests)
	case o.Iterations < 1:
		return o, invalid("Iterations", o.Iterations)
	case !inUnit(o.Abandon):
		return o, invalid("Abandon", o.Abandon)
	case !nonNegative(o.StepScale):
		return o, invalid("StepScale", o.StepScale)
	case !(o.LevyBeta > 0 && o.LevyBeta <= 2):
		return o, invalid("LevyBeta", o.LevyBeta)
	}

	return o, nil
}

// invalid wraps ErrInvalidInput with the offending field.
func invalid(field string, v any) error {
	return fmt.Errorf("%w: %s out of range: %v", core.ErrInvalidInput, field, v)
}

func finite(x float64) bool      { return !math.IsNaN(x) && !math.IsInf(x, 0) }
func positive(x float64) bool    { return finite(x) && x > 0 }
func nonNegative(x float64) bool { return finite(x) && x >= 0 }
func inUnit(x float64) bool      { return x >= 0 && x <= 1 }
