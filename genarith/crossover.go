package genarith

import (
	"fmt"
	"math/rand"
)

// Crossover, with probability rate, swaps the genes of a and b from a uniformly drawn
// locus through the end. Returns whether the parents were crossed.
func Crossover(a, b *Chromosome, rate float64, rng *rand.Rand) bool {
	if rng.Float64() >= rate {
		return false
	}

	if err := CrossoverAt(a, b, rng.Intn(len(a.genes))); err != nil {
		// Only reachable with chromosomes of different lengths
		panic(err)
	}
	return true
}

// CrossoverAt swaps the genes of a and b in place from locus through the end
func CrossoverAt(a, b *Chromosome, locus int) error {
	if len(a.genes) != len(b.genes) {
		return fmt.Errorf("expected number of genes in both chromosomes to match (%d != %d)", len(a.genes), len(b.genes))
	}
	if locus < 0 || locus >= len(a.genes) {
		return fmt.Errorf("crossover locus %d must be within [0, %d)", locus, len(a.genes))
	}

	for i := locus; i < len(a.genes); i++ {
		a.genes[i], b.genes[i] = b.genes[i], a.genes[i]
	}
	return nil
}
