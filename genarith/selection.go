package genarith

import "math/rand"

// Roulette picks a member of pop with probability proportional to its share of
// totalFitness, and returns an independent copy of it.
//
// If the wheel lands nowhere, which happens when totalFitness is not positive, the first
// member is returned.
func Roulette(pop Population, totalFitness float64, rng *rand.Rand) *Chromosome {
	slice := rng.Float64() * totalFitness
	tally := 0.0

	for _, chromosome := range pop {
		tally += chromosome.fitness
		if tally >= slice {
			return chromosome.Copy()
		}
	}

	return pop[0].Copy()
}

// selectPair draws two parents independently; the same member may be drawn twice
func selectPair(pop Population, totalFitness float64, rng *rand.Rand) (*Chromosome, *Chromosome) {
	a := Roulette(pop, totalFitness, rng)
	b := Roulette(pop, totalFitness, rng)
	return a, b
}
