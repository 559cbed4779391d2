package passgen

import (
	"crypto/rand"
	"math/big"
	mathrand "math/rand/v2"
	"sync"
)

// Source yields uniform integers in [0, n). n is always positive.
type Source interface {
	IntN(n int) int
}

type mathSource struct{}

func (mathSource) IntN(n int) int { return mathrand.IntN(n) }

// MathSource returns the default non-cryptographic source. It is safe for
// concurrent use.
func MathSource() Source { return mathSource{} }

type cryptoSource struct{}

func (cryptoSource) IntN(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand only fails when the OS generator is unavailable.
		panic("passgen: reading crypto/rand: " + err.Error())
	}
	return int(v.Int64())
}

// CryptoSource returns a source backed by crypto/rand.
func CryptoSource() Source { return cryptoSource{} }

type seededSource struct {
	mu  sync.Mutex
	rng *mathrand.Rand
}

func (s *seededSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}

// SeededSource returns a deterministic source, mainly for tests.
func SeededSource(seed uint64) Source {
	return &seededSource{rng: mathrand.New(mathrand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// SourceByName maps a configuration value to a Source. Anything other than
// "crypto" selects MathSource.
func SourceByName(name string) Source {
	if name == "crypto" {
		return CryptoSource()
	}
	return MathSource()
}
