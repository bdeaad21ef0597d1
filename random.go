package passgen

import (
	"crypto/rand"
	"math/big"

	"github.com/pkg/errors"
	"github.com/pochard/commons/randstr"
)

// Source supplies uniformly distributed indexes in [0, n). *math/rand.Rand
// satisfies it, which is handy for reproducible tests.
type Source interface {
	Intn(n int) int
}

// CryptoSource draws from crypto/rand. It is safe for concurrent use and is
// the default Source of every Generator.
type CryptoSource struct{}

func (CryptoSource) Intn(n int) int {
	if n <= 0 {
		panic("passgen: invalid argument to Intn")
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(errors.Wrap(err, "passgen: reading crypto/rand"))
	}
	return int(v.Int64())
}

// coin flips a fair coin.
func coin(src Source) bool {
	return src.Intn(2) == 1
}

// Numeric Generates a pure number whose length is drawn from the candidate set
func (g *Generator) Numeric() string {
	n := g.target()
	pw := randstr.RandomNumeric(n)
	g.generated(PolicyNumeric, n, pw)
	return pw
}

// Alphanumeric Generates letters and numbers whose length is drawn from the candidate set
func (g *Generator) Alphanumeric() string {
	n := g.target()
	pw := randstr.RandomAlphanumeric(n)
	g.generated(PolicyAlphanumeric, n, pw)
	return pw
}
