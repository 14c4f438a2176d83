package crypto

import (
	"crypto/rand"
	"fmt"
	"math/big"
	mathrand "math/rand/v2"
)

// Source produces uniformly distributed indices in [0, n).
type Source interface {
	Intn(n int) int
}

type cryptoSource struct{}

// CryptoSource returns a Source backed by crypto/rand.
func CryptoSource() Source {
	return cryptoSource{}
}

func (cryptoSource) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(fmt.Errorf("reading random index: %w", err))
	}
	return int(v.Int64())
}

type seededSource struct {
	r *mathrand.Rand
}

// NewSeededSource returns a deterministic, non-cryptographic Source.
// Two sources with the same seed yield the same sequence.
func NewSeededSource(seed uint64) Source {
	return &seededSource{r: mathrand.New(mathrand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *seededSource) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return s.r.IntN(n)
}
