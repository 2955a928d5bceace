package genarith

import (
	"fmt"
	"math"
)

type SimulationParams struct {
	// Value the decoded expression must equal exactly. Invalid expressions never match,
	// even when the target equals InvalidResult.
	TargetValue int64 `toml:"target"`

	// Number of genes each Chromosome will have
	ChromosomeSize int `toml:"chromosome_size"`

	// Hard cap on the generation counter. The counter starts at 1, so at most
	// MaxGenerations-1 generations are evaluated.
	MaxGenerations int `toml:"max_generations"`

	// Number of Chromosomes in each generation.
	// Must be a multiple of 2.
	PopulationSize int `toml:"population_size"`

	// Probability that a selected pair of parents is crossed over
	CrossoverRate float64 `toml:"crossover_rate"`

	// Per-gene probability of being redrawn after crossover
	MutationRate float64 `toml:"mutation_rate"`

	// Seed of the Simulation's random source. Equal seeds and params reproduce a run.
	Seed int64 `toml:"seed"`

	FitnessShaping FitnessShaping `toml:"fitness_shaping"`

	// Number of decoded gene sequences to memoize. Set to 0 to disable the cache.
	DecodeCacheSize int `toml:"decode_cache_size"`

	// Write a progress line every ReportInterval generations. Set to 0 to disable.
	ReportInterval int `toml:"report_interval"`
}

func DefaultSimulationParams() *SimulationParams {
	return &SimulationParams{
		TargetValue: 154,

		ChromosomeSize: 20,
		MaxGenerations: 400,

		PopulationSize: 10,
		CrossoverRate:  0.1,
		MutationRate:   0.07,

		FitnessShaping:  FitnessReciprocal,
		DecodeCacheSize: 0,
		ReportInterval:  100,
	}
}

// ConfigError describes a parameter outside its valid domain
type ConfigError struct {
	Field  string
	Value  interface{}
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

// Validate returns a *ConfigError for the first parameter outside its domain
func (p *SimulationParams) Validate() error {
	switch {
	case p.ChromosomeSize <= 0:
		return &ConfigError{"chromosome_size", p.ChromosomeSize, "must be positive"}
	case p.MaxGenerations <= 0:
		return &ConfigError{"max_generations", p.MaxGenerations, "must be positive"}
	case p.PopulationSize <= 0:
		return &ConfigError{"population_size", p.PopulationSize, "must be positive"}
	case p.PopulationSize%2 != 0:
		return &ConfigError{"population_size", p.PopulationSize, "must be even, parents are paired"}
	case !isRate(p.CrossoverRate):
		return &ConfigError{"crossover_rate", p.CrossoverRate, "must be within [0, 1]"}
	case !isRate(p.MutationRate):
		return &ConfigError{"mutation_rate", p.MutationRate, "must be within [0, 1]"}
	case p.FitnessShaping != FitnessReciprocal && p.FitnessShaping != FitnessAbsolute:
		return &ConfigError{"fitness_shaping", p.FitnessShaping, "unknown shaping"}
	case p.DecodeCacheSize < 0:
		return &ConfigError{"decode_cache_size", p.DecodeCacheSize, "must not be negative"}
	case p.ReportInterval < 0:
		return &ConfigError{"report_interval", p.ReportInterval, "must not be negative"}
	}
	return nil
}

func isRate(r float64) bool {
	return !math.IsNaN(r) && r >= 0 && r <= 1
}
