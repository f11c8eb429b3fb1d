package crypto

import (
	"crypto/rand"
	"math/big"
	mrand "math/rand/v2"
)

// Source draws uniformly distributed indexes in [0, n).
type Source interface {
	Intn(n int) (int, error)
}

// CryptoSource draws from crypto/rand.
type CryptoSource struct{}

// Intn returns a uniform random int in [0, n) using crypto/rand.
func (CryptoSource) Intn(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}

// MathSource draws from a seeded math/rand/v2 generator. Not safe for
// concurrent use; intended for reproducible runs and tests.
type MathSource struct {
	r *mrand.Rand
}

// NewMathSource returns a MathSource seeded with the given values.
func NewMathSource(seed1, seed2 uint64) *MathSource {
	return &MathSource{r: mrand.New(mrand.NewPCG(seed1, seed2))}
}

// Intn returns a uniform random int in [0, n).
func (s *MathSource) Intn(n int) (int, error) {
	return s.r.IntN(n), nil
}
