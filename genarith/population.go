package genarith

import (
	"math/rand"
	"sort"

	"github.com/campoy/unique"
	"gonum.org/v1/gonum/stat"
)

type Population []*Chromosome

func RandomPopulation(size, numGenes int, rng *rand.Rand) Population {
	pop := make(Population, size)
	for i := range pop {
		pop[i] = RandomChromosome(numGenes, rng)
	}
	return pop
}

// TotalFitness sums every member's fitness, signs included
func (pop Population) TotalFitness() float64 {
	total := 0.0
	for _, c := range pop {
		total += c.fitness
	}
	return total
}

// Fittest returns the member with the highest fitness, the earliest one on ties
func (pop Population) Fittest() *Chromosome {
	var fittest *Chromosome
	for _, c := range pop {
		if fittest == nil || c.fitness > fittest.fitness {
			fittest = c
		}
	}
	return fittest
}

type PopulationStats struct {
	MeanFitness   float64
	StdDevFitness float64

	// Number of distinct gene sequences
	Distinct int
}

func (pop Population) Stats() PopulationStats {
	fitnesses := make([]float64, len(pop))
	sequences := make([]string, len(pop))
	for i, c := range pop {
		fitnesses[i] = c.fitness
		sequences[i] = c.String()
	}

	mean, std := stat.MeanStdDev(fitnesses, nil)

	sort.Strings(sequences)
	unique.Slice(&sequences, func(i, j int) bool { return sequences[i] < sequences[j] })

	return PopulationStats{
		MeanFitness:   mean,
		StdDevFitness: std,
		Distinct:      len(sequences),
	}
}
