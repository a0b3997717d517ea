package world

import (
	"fmt"
	"math/rand"
	"time"
)

// RandomNumberGenerator is a sequential random source with range and dice draws.
type RandomNumberGenerator struct {
	rng *rand.Rand
}

// NewRandomNumberGenerator creates a generator seeded from the clock.
func NewRandomNumberGenerator() *RandomNumberGenerator {
	return NewRandomNumberGeneratorWithSeed(time.Now().UnixNano())
}

// NewRandomNumberGeneratorWithSeed creates a reproducible generator.
func NewRandomNumberGeneratorWithSeed(seed int64) *RandomNumberGenerator {
	return &RandomNumberGenerator{rng: rand.New(rand.NewSource(seed))}
}

// Range returns a random integer in [lo, hi].
func (r *RandomNumberGenerator) Range(lo, hi int) int {
	if hi < lo {
		panic(fmt.Sprintf("world: invalid range [%d, %d]", lo, hi))
	}
	return lo + r.rng.Intn(hi-lo+1)
}

// RollDice returns the sum of n rolls of a die with the given number of sides.
func (r *RandomNumberGenerator) RollDice(n, sides int) int {
	if n < 0 || sides < 1 {
		panic(fmt.Sprintf("world: invalid dice %dd%d", n, sides))
	}
	total := 0
	for i := 0; i < n; i++ {
		total += 1 + r.rng.Intn(sides)
	}
	return total
}
