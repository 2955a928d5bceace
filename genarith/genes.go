package genarith

import (
	"fmt"
	"math/rand"
)

// Gene is a single chromosome position: a digit 0-9 or one of the four operators
type Gene byte

const (
	Add Gene = iota + 10
	Subtract
	Multiply
	Divide

	// NumGenes is the size of the gene alphabet
	NumGenes = 14
)

var GeneValues = [NumGenes]byte{
	'0', '1', '2', '3', '4', '5', '6', '7', '8', '9',
	'+', '-', '*', '/',
}

var ValueGenes map[byte]Gene

func init() {
	ValueGenes = make(map[byte]Gene, NumGenes)
	for gene, value := range GeneValues {
		ValueGenes[value] = Gene(gene)
	}
}

func (g Gene) IsValid() bool {
	return g < NumGenes
}

func (g Gene) IsDigit() bool {
	return g < Add
}

func (g Gene) IsOperator() bool {
	return g >= Add && g < NumGenes
}

// Symbol returns the printable character for the gene, or '?' for out-of-alphabet values
func (g Gene) Symbol() byte {
	if !g.IsValid() {
		return '?'
	}
	return GeneValues[g]
}

func (g Gene) String() string {
	return string(g.Symbol())
}

// GeneFromSymbol returns the gene printed as c
func GeneFromSymbol(c byte) (Gene, error) {
	if gene, ok := ValueGenes[c]; ok {
		return gene, nil
	}
	return 0, fmt.Errorf("unrecognized gene symbol %q", c)
}

// RandomGene draws uniformly from the whole alphabet
func RandomGene(rng *rand.Rand) Gene {
	return Gene(rng.Intn(NumGenes))
}
