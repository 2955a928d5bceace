package genarith

import (
	"math"

	lru "github.com/hashicorp/golang-lru"
)

// InvalidResult is the result of a sequence ending on an operator with no digit after it,
// or whose total does not fit in an int64
const InvalidResult int64 = math.MinInt32

type DecodeResult struct {
	Result int64

	// False when the sequence ended while expecting a number or the total overflowed;
	// Result is InvalidResult then
	Valid bool

	// Loci of Divide genes whose divisor was zero. These were evaluated as Add.
	Repaired []int
}

// noOperator marks that no operator has been consumed yet
const noOperator Gene = NumGenes

// Decode evaluates genes strictly left to right, skipping any gene of the wrong category.
// genes is never modified; see Chromosome.DecodeAndRepair.
func Decode(genes []Gene) DecodeResult {
	var repaired []int

	sum := 0.0
	expectsNumber := true
	op := noOperator
	opLocus := -1

	for i, gene := range genes {
		if expectsNumber {
			if !gene.IsDigit() {
				continue
			}

			digit := float64(gene)
			switch op {
			case noOperator:
				sum = digit
			case Add:
				sum += digit
			case Subtract:
				sum -= digit
			case Multiply:
				sum *= digit
			case Divide:
				if gene == 0 {
					repaired = append(repaired, opLocus)
					sum += digit
				} else {
					sum /= digit
				}
			}

			expectsNumber = false
		} else {
			if !gene.IsOperator() {
				continue
			}

			op = gene
			opLocus = i
			expectsNumber = true
		}
	}

	if expectsNumber {
		return DecodeResult{Result: InvalidResult, Repaired: repaired}
	}

	result, ok := truncate(sum)
	if !ok {
		return DecodeResult{Result: InvalidResult, Repaired: repaired}
	}
	return DecodeResult{Result: result, Valid: true, Repaired: repaired}
}

// truncate converts a running total to an integer, rounding toward zero. Totals that are
// NaN or don't fit strictly inside the int64 range are not representable.
func truncate(sum float64) (int64, bool) {
	if math.IsNaN(sum) || sum >= math.MaxInt64 || sum <= math.MinInt64 {
		return 0, false
	}
	return int64(sum), true
}

// DecodeAndRepair decodes c and rewrites every zero-divisor Divide gene to Add, so the
// stored sequence reads the way it was evaluated
func (c *Chromosome) DecodeAndRepair() DecodeResult {
	decoded := Decode(c.genes)
	c.applyRepairs(decoded.Repaired)
	return decoded
}

func (c *Chromosome) applyRepairs(loci []int) {
	for _, i := range loci {
		c.genes[i] = Add
	}
}

// decodeCache memoizes DecodeResults by gene sequence
type decodeCache struct {
	cache *lru.Cache
}

func newDecodeCache(size int) (*decodeCache, error) {
	cache, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &decodeCache{cache: cache}, nil
}

func (d *decodeCache) DecodeAndRepair(c *Chromosome) DecodeResult {
	key := c.String()
	if cached, ok := d.cache.Get(key); ok {
		decoded := cached.(DecodeResult)
		c.applyRepairs(decoded.Repaired)
		return decoded
	}

	decoded := c.DecodeAndRepair()
	d.cache.Add(key, decoded)
	return decoded
}

func (d *decodeCache) Len() int {
	return d.cache.Len()
}
