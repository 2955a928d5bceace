package genarith

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var numPrinter = message.NewPrinter(language.English)

type Result struct {
	RunID  uuid.UUID
	Target int64

	// Generation counter when the run stopped
	Generations int
	State       State
	Elapsed     time.Duration

	// Nil unless State is StateFound
	Solution *Chromosome
}

func (r *Result) Found() bool {
	return r.Solution != nil
}

func (r *Result) String() string {
	if r.Found() {
		return numPrinter.Sprintf("Found a solution in generation %d (target %d): %s",
			r.Generations, r.Target, r.Solution.Expression())
	}
	return numPrinter.Sprintf("Found no solution in %d generations (target %d)", r.Generations, r.Target)
}

// AvgGenerationTime is the elapsed time spread evenly over the evaluated generations
func (r *Result) AvgGenerationTime() time.Duration {
	if r.Generations <= 0 {
		return 0
	}
	return r.Elapsed / time.Duration(r.Generations)
}

func (sim *Simulation) writeProgress() {
	fittest := sim.population.Fittest()
	stats := sim.population.Stats()

	numPrinter.Fprintf(sim.progress, "Generation %d — solving for: %d\n", sim.generation, sim.params.TargetValue)
	numPrinter.Fprintf(sim.progress, "  fittest: %s = %d (fitness %.6f)\n",
		fittest.Expression(), fittest.result, fittest.fitness)
	numPrinter.Fprintf(sim.progress, "  fitness mean %.6f, stddev %.6f, %d/%d distinct\n",
		stats.MeanFitness, stats.StdDevFitness, stats.Distinct, len(sim.population))
}

// String describes the run parameters on one line
func (p SimulationParams) String() string {
	return fmt.Sprintf("target=%d genes=%d population=%d crossover=%.3f mutation=%.3f max-generations=%d shaping=%s seed=%d",
		p.TargetValue, p.ChromosomeSize, p.PopulationSize, p.CrossoverRate, p.MutationRate,
		p.MaxGenerations, p.FitnessShaping, p.Seed)
}
