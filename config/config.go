// Package config loads solver parameters for the knapsack CLI.
//
// Priority: environment > file > defaults.
//
//	cfg, err := config.Load("knapsack.yaml") // "" skips the file
//	if err != nil { ... }
//	opts := cfg.ToOptions()
//
// Files are YAML (JSON is accepted too). Every field is optional; missing
// fields keep their defaults. Durations use Go syntax ("250ms", "2s").
//
// Environment overrides:
//
//	KNAPSACK_SEED               uint64
//	KNAPSACK_EPSILON            float, FPTAS ε in (0,1)
//	KNAPSACK_MAX_STEPS          int64, exact step budget (0 = unlimited)
//	KNAPSACK_TIME_LIMIT         duration, exact wall-clock budget
//	KNAPSACK_GA_GENERATIONS     int
//	KNAPSACK_SA_TEMPERATURE     float, initial temperature
//	KNAPSACK_ACO_ITERATIONS     int
//	KNAPSACK_PSO_ITERATIONS     int
//	KNAPSACK_CUCKOO_ITERATIONS  int
//	KNAPSACK_LOG_LEVEL          debug|info|warn|error
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/knapsack/approx"
	"github.com/katalvlaran/knapsack/exact"
	"github.com/katalvlaran/knapsack/heuristic"
	"github.com/katalvlaran/knapsack/logging"
	"github.com/katalvlaran/knapsack/solver"
)

// ErrInvalidConfig is wrapped by every load, parse and validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// validate is the shared validator instance.
var validate = validator.New()

// File is the on-disk configuration.
type File struct {
	// Algorithm is the default selector for commands that take one.
	Algorithm string `json:"algorithm" yaml:"algorithm" validate:"required"`

	// Seed seeds the stochastic solvers (0 selects the built-in default).
	Seed uint64 `json:"seed" yaml:"seed"`

	// LogLevel is debug, info, warn or error.
	LogLevel string `json:"log_level" yaml:"log_level" validate:"omitempty,oneof=debug info warn warning error"`

	Exact  ExactConfig  `json:"exact" yaml:"exact"`
	FPTAS  FPTASConfig  `json:"fptas" yaml:"fptas"`
	GA     GAConfig     `json:"ga" yaml:"ga"`
	SA     SAConfig     `json:"sa" yaml:"sa"`
	ACO    ACOConfig    `json:"aco" yaml:"aco"`
	PSO    PSOConfig    `json:"pso" yaml:"pso"`
	Cuckoo CuckooConfig `json:"cuckoo" yaml:"cuckoo"`
}

// ExactConfig mirrors exact.Options.
type ExactConfig struct {
	MaxSteps               int64         `json:"max_steps" yaml:"max_steps" validate:"gte=0"`
	TimeLimit              time.Duration `json:"time_limit" yaml:"time_limit" validate:"gte=0s"`
	MaxBruteForceItems     int           `json:"max_bruteforce_items" yaml:"max_bruteforce_items" validate:"gte=1,lte=62"`
	MaxBranchAndBoundItems int           `json:"max_bnb_items" yaml:"max_bnb_items" validate:"gte=1"`
	MaxTableCells          int64         `json:"max_table_cells" yaml:"max_table_cells" validate:"gte=1"`
	RecordCombinations     bool          `json:"record_combinations" yaml:"record_combinations"`
}

// FPTASConfig mirrors approx.FPTASOptions.
type FPTASConfig struct {
	Epsilon       float64 `json:"epsilon" yaml:"epsilon" validate:"gt=0,lt=1"`
	MaxTableCells int64   `json:"max_table_cells" yaml:"max_table_cells" validate:"gte=1"`
}

// GAConfig mirrors heuristic.GAOptions.
type GAConfig struct {
	PopulationSize int     `json:"population_size" yaml:"population_size" validate:"gte=1"`
	Generations    int     `json:"generations" yaml:"generations" validate:"gte=1"`
	MutationRate   float64 `json:"mutation_rate" yaml:"mutation_rate" validate:"gte=0,lte=1"`
	TournamentSize int     `json:"tournament_size" yaml:"tournament_size" validate:"gte=1"`
}

// SAConfig mirrors heuristic.SAOptions.
type SAConfig struct {
	InitialTemperature   float64 `json:"initial_temperature" yaml:"initial_temperature" validate:"gt=0"`
	CoolingRate          float64 `json:"cooling_rate" yaml:"cooling_rate" validate:"gt=0,lt=1"`
	TrialsPerTemperature int     `json:"trials_per_temperature" yaml:"trials_per_temperature" validate:"gte=1"`
	MinTemperature       float64 `json:"min_temperature" yaml:"min_temperature" validate:"gt=0"`
}

// ACOConfig mirrors heuristic.ACOOptions.
type ACOConfig struct {
	Ants        int     `json:"ants" yaml:"ants" validate:"gte=1"`
	Iterations  int     `json:"iterations" yaml:"iterations" validate:"gte=1"`
	Alpha       float64 `json:"alpha" yaml:"alpha" validate:"gte=0"`
	Beta        float64 `json:"beta" yaml:"beta" validate:"gte=0"`
	Evaporation float64 `json:"evaporation" yaml:"evaporation" validate:"gte=0,lte=1"`
	Deposit     float64 `json:"deposit" yaml:"deposit" validate:"gte=0"`
}

// PSOConfig mirrors heuristic.PSOOptions.
type PSOConfig struct {
	Particles  int     `json:"particles" yaml:"particles" validate:"gte=1"`
	Iterations int     `json:"iterations" yaml:"iterations" validate:"gte=1"`
	Inertia    float64 `json:"inertia" yaml:"inertia" validate:"gte=0"`
	Cognitive  float64 `json:"cognitive" yaml:"cognitive" validate:"gte=0"`
	Social     float64 `json:"social" yaml:"social" validate:"gte=0"`
}

// CuckooConfig mirrors heuristic.CuckooOptions.
type CuckooConfig struct {
	Nests      int     `json:"nests" yaml:"nests" validate:"gte=1"`
	Iterations int     `json:"iterations" yaml:"iterations" validate:"gte=1"`
	Abandon    float64 `json:"abandon" yaml:"abandon" validate:"gte=0,lte=1"`
	StepScale  float64 `json:"step_scale" yaml:"step_scale" validate:"gte=0"`
	LevyBeta   float64 `json:"levy_beta" yaml:"levy_beta" validate:"gt=0,lte=2"`
}

// Default returns the built-in configuration: algorithm dp, info logging and
// the default parameters of every solver.
func Default() File {
	e := exact.DefaultOptions()
	f := approx.DefaultFPTASOptions()
	ga := heuristic.DefaultGAOptions()
	sa := heuristic.DefaultSAOptions()
	aco := heuristic.DefaultACOOptions()
	pso := heuristic.DefaultPSOOptions()
	ck := heuristic.DefaultCuckooOptions()

	return File{
		Algorithm: solver.DynamicProgramming.String(),
		LogLevel:  "info",
		Exact: ExactConfig{
			MaxSteps:               e.MaxSteps,
			TimeLimit:              e.TimeLimit,
			MaxBruteForceItems:     e.MaxBruteForceItems,
			MaxBranchAndBoundItems: e.MaxBranchAndBoundItems,
			MaxTableCells:          e.MaxTableCells,
			RecordCombinations:     e.RecordCombinations,
		},
		FPTAS:  FPTASConfig{Epsilon: f.Epsilon, MaxTableCells: f.MaxTableCells},
		GA:     GAConfig(ga),
		SA:     SAConfig(sa),
		ACO:    ACOConfig(aco),
		PSO:    PSOConfig(pso),
		Cuckoo: CuckooConfig(ck),
	}
}

// Load builds a File from defaults, the file at path (skipped when path is
// empty) and the environment, then validates it.
func Load(path string) (File, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("%w: read %s: %v", ErrInvalidConfig, path, err)
		}
		if err := Decode(data, &cfg); err != nil {
			return cfg, err
		}
	}

	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Decode overlays YAML (or, failing that, JSON) data onto cfg.
func Decode(data []byte, cfg *File) error {
	if yamlErr := yaml.Unmarshal(data, cfg); yamlErr != nil {
		if jsonErr := json.Unmarshal(data, cfg); jsonErr != nil {
			return fmt.Errorf("%w: parse (tried YAML and JSON): YAML error: %v, JSON error: %v",
				ErrInvalidConfig, yamlErr, jsonErr)
		}
	}

	return nil
}

// Validate checks field ranges, the algorithm selector and the log level.
func (f File) Validate() error {
	if err := validate.Struct(f); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := solver.ParseAlgorithm(f.Algorithm); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// AlgorithmValue returns the parsed default algorithm. Call after Validate.
func (f File) AlgorithmValue() solver.Algorithm {
	a, err := solver.ParseAlgorithm(f.Algorithm)
	if err != nil {
		return solver.DynamicProgramming
	}

	return a
}

// Level returns the parsed log level, LevelInfo if unset.
func (f File) Level() logging.Level {
	l, err := logging.ParseLevel(f.LogLevel)
	if err != nil {
		return logging.LevelInfo
	}

	return l
}

// ToOptions converts f to solver options. Logger and Metrics are left nil.
func (f File) ToOptions() solver.Options {
	return solver.Options{
		Exact: exact.Options{
			MaxSteps:               f.Exact.MaxSteps,
			TimeLimit:              f.Exact.TimeLimit,
			MaxBruteForceItems:     f.Exact.MaxBruteForceItems,
			MaxBranchAndBoundItems: f.Exact.MaxBranchAndBoundItems,
			MaxTableCells:          f.Exact.MaxTableCells,
			RecordCombinations:     f.Exact.RecordCombinations,
		},
		FPTAS:  approx.FPTASOptions{Epsilon: f.FPTAS.Epsilon, MaxTableCells: f.FPTAS.MaxTableCells},
		GA:     heuristic.GAOptions(f.GA),
		SA:     heuristic.SAOptions(f.SA),
		ACO:    heuristic.ACOOptions(f.ACO),
		PSO:    heuristic.PSOOptions(f.PSO),
		Cuckoo: heuristic.CuckooOptions(f.Cuckoo),
		Seed:   f.Seed,
	}
}

// lookupFunc matches os.LookupEnv.
type lookupFunc func(key string) (string, bool)

// applyEnv overrides cfg from the KNAPSACK_* variables. A set but malformed
// variable is an error.
func applyEnv(cfg *File, lookup lookupFunc) error {
	var err error
	setUint := func(key string, dst *uint64) {
		if v, ok := lookup(key); ok && err == nil {
			var u uint64
			if u, err = strconv.ParseUint(v, 10, 64); err == nil {
				*dst = u
			} else {
				err = fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, key, v, err)
			}
		}
	}
	setInt64 := func(key string, dst *int64) {
		if v, ok := lookup(key); ok && err == nil {
			var i int64
			if i, err = strconv.ParseInt(v, 10, 64); err == nil {
				*dst = i
			} else {
				err = fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, key, v, err)
			}
		}
	}
	setInt := func(key string, dst *int) {
		if v, ok := lookup(key); ok && err == nil {
			var i int
			if i, err = strconv.Atoi(v); err == nil {
				*dst = i
			} else {
				err = fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, key, v, err)
			}
		}
	}
	setFloat := func(key string, dst *float64) {
		if v, ok := lookup(key); ok && err == nil {
			var x float64
			if x, err = strconv.ParseFloat(v, 64); err == nil {
				*dst = x
			} else {
				err = fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, key, v, err)
			}
		}
	}
	setDuration := func(key string, dst *time.Duration) {
		if v, ok := lookup(key); ok && err == nil {
			var d time.Duration
			if d, err = time.ParseDuration(v); err == nil {
				*dst = d
			} else {
				err = fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, key, v, err)
			}
		}
	}

	setUint("KNAPSACK_SEED", &cfg.Seed)
	setFloat("KNAPSACK_EPSILON", &cfg.FPTAS.Epsilon)
	setInt64("KNAPSACK_MAX_STEPS", &cfg.Exact.MaxSteps)
	setDuration("KNAPSACK_TIME_LIMIT", &cfg.Exact.TimeLimit)
	setInt("KNAPSACK_GA_GENERATIONS", &cfg.GA.Generations)
	setFloat("KNAPSACK_SA_TEMPERATURE", &cfg.SA.InitialTemperature)
	setInt("KNAPSACK_ACO_ITERATIONS", &cfg.ACO.Iterations)
	setInt("KNAPSACK_PSO_ITERATIONS", &cfg.PSO.Iterations)
	setInt("KNAPSACK_CUCKOO_ITERATIONS", &cfg.Cuckoo.Iterations)
	if v, ok := lookup("KNAPSACK_ALGORITHM"); ok && err == nil {
		cfg.Algorithm = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := lookup("KNAPSACK_LOG_LEVEL"); ok && err == nil {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(v))
	}

	return err
}
