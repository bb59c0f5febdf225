// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService wraps Go's random number generator so that the whole game can
// run on a single predictable (seeded) source.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService creates a new service with the given seed. A zero seed
// falls back to the current time.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{rng: rand.New(rand.NewSource(seed))}
}

// Intn returns a random int in [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 returns a random float64 in [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Jitter returns a random offset in [-amount, amount].
func (s *PRNGService) Jitter(amount float64) float64 {
	return (s.rng.Float64()*2 - 1) * amount
}

// Rand exposes the underlying generator for code that takes *rand.Rand.
func (s *PRNGService) Rand() *rand.Rand {
	return s.rng
}
