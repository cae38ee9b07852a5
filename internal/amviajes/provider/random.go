package provider

import (
	"crypto/rand"
	"math/big"
	mrand "math/rand/v2"
	"sync"
)

// Rand is the randomness the generator draws from. Intn returns a value in
// [0, n); it returns 0 when n <= 0.
type Rand interface {
	Intn(n int) int
}

// SafeRand reads from crypto/rand and is safe for concurrent use.
type SafeRand struct{}

func NewSafeRand() *SafeRand {
	return &SafeRand{}
}

func (s *SafeRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	max := big.NewInt(int64(n))
	value, err := rand.Int(rand.Reader, max)
	if err != nil {
		return 0
	}
	return int(value.Int64())
}

// SeededRand replays the same sequence for the same seed.
type SeededRand struct {
	mu  sync.Mutex
	rng *mrand.Rand
}

func NewSeededRand(seed uint64) *SeededRand {
	return &SeededRand{rng: mrand.New(mrand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *SeededRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}
