package genarith

import (
	"fmt"
	"math"
	"strings"
)

// FitnessShaping selects how distance to the target is turned into a fitness score
type FitnessShaping int

const (
	// FitnessReciprocal scores 1 / (target - result). Results above the target score
	// negative, which the roulette wheel handles through its fallback.
	FitnessReciprocal FitnessShaping = iota

	// FitnessAbsolute scores 1 / |target - result|, keeping every weight positive
	FitnessAbsolute
)

var fitnessShapingNames = map[FitnessShaping]string{
	FitnessReciprocal: "reciprocal",
	FitnessAbsolute:   "absolute",
}

func (s FitnessShaping) String() string {
	if name, ok := fitnessShapingNames[s]; ok {
		return name
	}
	return fmt.Sprintf("FitnessShaping(%d)", int(s))
}

func ParseFitnessShaping(name string) (FitnessShaping, error) {
	for shaping, shapingName := range fitnessShapingNames {
		if strings.EqualFold(name, shapingName) {
			return shaping, nil
		}
	}
	return 0, fmt.Errorf("unknown fitness shaping %q (expected reciprocal or absolute)", name)
}

// MarshalText and UnmarshalText let FitnessShaping appear by name in config files
func (s FitnessShaping) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *FitnessShaping) UnmarshalText(text []byte) error {
	shaping, err := ParseFitnessShaping(string(text))
	if err != nil {
		return err
	}
	*s = shaping
	return nil
}

// Set lets FitnessShaping be used as a flag.Value
func (s *FitnessShaping) Set(name string) error {
	return s.UnmarshalText([]byte(name))
}

// Evaluator decodes chromosomes and stamps their result and fitness
type Evaluator struct {
	Target  int64
	Shaping FitnessShaping

	cache *decodeCache
}

// NewEvaluator creates an Evaluator. A positive cacheSize memoizes decoding by gene sequence.
func NewEvaluator(target int64, shaping FitnessShaping, cacheSize int) (*Evaluator, error) {
	e := &Evaluator{
		Target:  target,
		Shaping: shaping,
	}

	if cacheSize > 0 {
		cache, err := newDecodeCache(cacheSize)
		if err != nil {
			return nil, fmt.Errorf("creating decode cache: %w", err)
		}
		e.cache = cache
	}

	return e, nil
}

// Evaluate decodes c (repairing zero divisors), stamps its result and fitness, and
// reports whether c evaluates exactly to the target
func (e *Evaluator) Evaluate(c *Chromosome) bool {
	var decoded DecodeResult
	if e.cache != nil {
		decoded = e.cache.DecodeAndRepair(c)
	} else {
		decoded = c.DecodeAndRepair()
	}

	c.result = decoded.Result
	if decoded.Valid && c.result == e.Target {
		c.fitness = math.Inf(1)
		return true
	}

	c.fitness = e.fitnessOf(c.result)
	return false
}

func (e *Evaluator) fitnessOf(result int64) float64 {
	distance := float64(e.Target) - float64(result)
	if distance == 0 {
		// Distinct values near the int64 bounds can round to the same float64
		distance = 1
		if result > e.Target {
			distance = -1
		}
	}
	if e.Shaping == FitnessAbsolute {
		distance = math.Abs(distance)
	}
	return 1 / distance
}
