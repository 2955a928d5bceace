package genarith

import (
	"fmt"
	"math/rand"
	"strings"
)

type Chromosome struct {
	genes []Gene

	// Stamped by the Evaluator; only meaningful for the generation that evaluated them
	fitness float64
	result  int64
}

func NewChromosome(numGenes int) *Chromosome {
	return &Chromosome{
		genes: make([]Gene, numGenes),
	}
}

// RandomChromosome creates a Chromosome whose genes are drawn uniformly from the alphabet
func RandomChromosome(numGenes int, rng *rand.Rand) *Chromosome {
	chromosome := NewChromosome(numGenes)
	for i := range chromosome.genes {
		chromosome.genes[i] = RandomGene(rng)
	}
	return chromosome
}

// EncodeChromosome builds a Chromosome from a string of gene symbols, e.g. "3*4+2".
// Spaces are ignored.
func EncodeChromosome(expression string) (*Chromosome, error) {
	expression = strings.ReplaceAll(expression, " ", "")
	chromosome := NewChromosome(len(expression))
	for i := 0; i < len(expression); i++ {
		gene, err := GeneFromSymbol(expression[i])
		if err != nil {
			return nil, fmt.Errorf("position %d of %q: %w", i, expression, err)
		}
		chromosome.genes[i] = gene
	}
	return chromosome, nil
}

// MustEncodeChromosome is like EncodeChromosome but panics on malformed input
func MustEncodeChromosome(expression string) *Chromosome {
	chromosome, err := EncodeChromosome(expression)
	if err != nil {
		panic(err)
	}
	return chromosome
}

// String returns one symbol per gene, including genes the decoder would skip
func (c *Chromosome) String() string {
	buf := make([]byte, len(c.genes))
	for i, gene := range c.genes {
		buf[i] = gene.Symbol()
	}
	return string(buf)
}

// Copy returns a Chromosome sharing no storage with c
func (c *Chromosome) Copy() *Chromosome {
	copied := &Chromosome{
		genes:   make([]Gene, len(c.genes)),
		fitness: c.fitness,
		result:  c.result,
	}
	copy(copied.genes, c.genes)
	return copied
}

func (c *Chromosome) Genes() []Gene {
	return c.genes
}

func (c *Chromosome) Len() int {
	return len(c.genes)
}

func (c *Chromosome) Fitness() float64 {
	return c.fitness
}

// Result is the value stamped by the last evaluation, or InvalidResult
func (c *Chromosome) Result() int64 {
	return c.result
}
