package services

import (
	"math/rand/v2"
	"strconv"
	"sync"
)

const (
	minSecretKey = 100000
	maxSecretKey = 999999
)

// SecretKeyGenerator issues 6-digit secret keys uniformly from
// [100000, 999999]. It is safe for concurrent use.
type SecretKeyGenerator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewSecretKeyGenerator draws keys from rnd. A seeded source makes the
// sequence reproducible.
func NewSecretKeyGenerator(rnd *rand.Rand) *SecretKeyGenerator {
	return &SecretKeyGenerator{rnd: rnd}
}

// NewSeededSecretKeyGenerator is NewSecretKeyGenerator over a PCG source.
func NewSeededSecretKeyGenerator(seed1, seed2 uint64) *SecretKeyGenerator {
	return NewSecretKeyGenerator(rand.New(rand.NewPCG(seed1, seed2)))
}

func (g *SecretKeyGenerator) Next() string {
	g.mu.Lock()
	n := minSecretKey + g.rnd.IntN(maxSecretKey-minSecretKey+1)
	g.mu.Unlock()
	return strconv.Itoa(n)
}
