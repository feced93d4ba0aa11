// Package util provides deterministic random generation helpers shared by
// the Random constructor and the property tests.
package util

import "math/rand"

// RNG struct encapsulates the random number generator and seed.
type RNG struct {
	rand *rand.Rand
	seed int64
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// RandomWords generates n random 32-bit words using the given RNG.
func (r *RNG) RandomWords(n int) []uint32 {
	words := make([]uint32, n)
	for i := range words {
		words[i] = r.rand.Uint32()
	}
	return words
}

// RandomIndexes generates n random bit indexes below limit. Duplicates are
// possible and fine for set construction.
func (r *RNG) RandomIndexes(n, limit int) []int {
	idxs := make([]int, n)
	for i := range idxs {
		idxs[i] = r.rand.Intn(limit)
	}
	return idxs
}
