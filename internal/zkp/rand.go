package zkp

import (
	"crypto/rand"
	"math/big"
)

// Source supplies the randomness the protocol consumes: uniform field
// elements for nonces and challenges, and opaque tokens used as lookup
// keys. It is injected rather than read from a hidden global so tests can
// substitute a deterministic implementation.
type Source interface {
	// IntBelow returns a uniform random integer in [0, bound).
	IntBelow(bound *big.Int) (*big.Int, error)

	// Token returns a random alphanumeric string of length n. The
	// generator performs no collision detection; that is the caller's
	// concern.
	Token(n int) (string, error)
}

const tokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// CryptoSource draws from crypto/rand. It is the production Source.
type CryptoSource struct{}

func (CryptoSource) IntBelow(bound *big.Int) (*big.Int, error) {
	return rand.Int(rand.Reader, bound)
}

func (CryptoSource) Token(n int) (string, error) {
	alphabetLen := big.NewInt(int64(len(tokenAlphabet)))
	b := make([]byte, n)
	for i := range b {
		idx, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", err
		}
		b[i] = tokenAlphabet[idx.Int64()]
	}
	return string(b), nil
}
