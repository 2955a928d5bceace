package genarith

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/gofrs/uuid"
)

type State int

const (
	StateInitializing State = iota
	StateEvaluating
	StateSelecting
	StateFound
	StateExhausted
)

var stateNames = [...]string{
	StateInitializing: "initializing",
	StateEvaluating:   "evaluating",
	StateSelecting:    "selecting",
	StateFound:        "found",
	StateExhausted:    "exhausted",
}

func (s State) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Terminated reports whether no further Step will change the Simulation
func (s State) Terminated() bool {
	return s == StateFound || s == StateExhausted
}

type Simulation struct {
	params    SimulationParams
	id        uuid.UUID
	rng       *rand.Rand
	evaluator *Evaluator

	state      State
	generation int
	population Population
	solution   *Chromosome

	progress  io.Writer
	startedAt time.Time
}

// NewSimulation validates params and prepares a Simulation; the population is created by
// Init, or lazily by the first Step
func NewSimulation(params *SimulationParams) (*Simulation, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	evaluator, err := NewEvaluator(params.TargetValue, params.FitnessShaping, params.DecodeCacheSize)
	if err != nil {
		return nil, err
	}

	return &Simulation{
		params:     *params,
		id:         uuid.Must(uuid.NewV4()),
		rng:        rand.New(rand.NewSource(params.Seed)),
		evaluator:  evaluator,
		state:      StateInitializing,
		generation: 1,
		progress:   io.Discard,
	}, nil
}

// SetProgressOutput directs periodic progress lines to w
func (sim *Simulation) SetProgressOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	sim.progress = w
}

// Init creates the initial random Population
func (sim *Simulation) Init() {
	sim.population = RandomPopulation(sim.params.PopulationSize, sim.params.ChromosomeSize, sim.rng)
	sim.solution = nil
	sim.generation = 1
	sim.startedAt = time.Now()

	if sim.generation >= sim.params.MaxGenerations {
		sim.state = StateExhausted
	} else {
		sim.state = StateEvaluating
	}
}

func (sim *Simulation) ID() uuid.UUID {
	return sim.id
}

func (sim *Simulation) Params() SimulationParams {
	return sim.params
}

func (sim *Simulation) State() State {
	return sim.state
}

func (sim *Simulation) Generation() int {
	return sim.generation
}

func (sim *Simulation) Population() Population {
	return sim.population
}

// Solution is the first Chromosome found to evaluate to the target, or nil
func (sim *Simulation) Solution() *Chromosome {
	return sim.solution
}

// Step runs one generational cycle and returns the resulting state
func (sim *Simulation) Step() State {
	switch sim.state {
	case StateFound, StateExhausted:
		return sim.state
	case StateInitializing:
		sim.Init()
		if sim.state.Terminated() {
			return sim.state
		}
	}

	sim.state = StateEvaluating
	totalFitness, found := sim.evaluatePopulation()
	if found {
		sim.state = StateFound
		return sim.state
	}

	if sim.params.ReportInterval > 0 && sim.generation%sim.params.ReportInterval == 0 {
		sim.writeProgress()
	}

	sim.state = StateSelecting
	sim.population = sim.nextGeneration(totalFitness)
	sim.generation++

	if sim.generation >= sim.params.MaxGenerations {
		sim.state = StateExhausted
	} else {
		sim.state = StateEvaluating
	}
	return sim.state
}

// Run steps the Simulation until a solution is found or the generation cap is reached
func (sim *Simulation) Run() *Result {
	if sim.state == StateInitializing {
		sim.Init()
	}

	for !sim.Step().Terminated() {
	}

	return sim.Result()
}

// Result reports the outcome so far
func (sim *Simulation) Result() *Result {
	result := &Result{
		RunID:       sim.id,
		Target:      sim.params.TargetValue,
		Generations: sim.generation,
		State:       sim.state,
	}
	if !sim.startedAt.IsZero() {
		result.Elapsed = time.Since(sim.startedAt)
	}
	if sim.solution != nil {
		result.Solution = sim.solution.Copy()
	}
	return result
}

// evaluatePopulation stamps every member in order, stopping at the first exact match
func (sim *Simulation) evaluatePopulation() (float64, bool) {
	totalFitness := 0.0
	for _, c := range sim.population {
		if sim.evaluator.Evaluate(c) {
			sim.solution = c
			return totalFitness, true
		}
		totalFitness += c.fitness
	}
	return totalFitness, false
}

// nextGeneration breeds PopulationSize children from pairs of roulette-selected parents,
// then mutates all of them
func (sim *Simulation) nextGeneration(totalFitness float64) Population {
	generation := make(Population, 0, sim.params.PopulationSize)

	for i := 0; i < sim.params.PopulationSize; i += 2 {
		a, b := selectPair(sim.population, totalFitness, sim.rng)
		Crossover(a, b, sim.params.CrossoverRate, sim.rng)
		generation = append(generation, a, b)
	}

	for _, c := range generation {
		Mutate(c, sim.params.MutationRate, sim.rng)
	}

	return generation
}
