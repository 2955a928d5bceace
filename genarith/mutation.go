package genarith

import "math/rand"

// Mutate redraws each gene of c from the whole alphabet with probability rate.
// Returns the number of loci redrawn; a redraw may land on the same symbol.
func Mutate(c *Chromosome, rate float64, rng *rand.Rand) int {
	mutated := 0
	for i := range c.genes {
		if rng.Float64() < rate {
			c.genes[i] = RandomGene(rng)
			mutated++
		}
	}
	return mutated
}
