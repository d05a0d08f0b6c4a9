package zkp

import (
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCryptoSource_IntBelow_StaysInRange(t *testing.T) {
	src := CryptoSource{}
	bound := big.NewInt(11)

	for i := 0; i < 100; i++ {
		n, err := src.IntBelow(bound)
		require.NoError(t, err)
		assert.True(t, n.Sign() >= 0, "negative value %v", n)
		assert.True(t, n.Cmp(bound) < 0, "value %v not below bound", n)
	}
}

func TestCryptoSource_Token(t *testing.T) {
	src := CryptoSource{}

	tok, err := src.Token(12)
	require.NoError(t, err)
	assert.Len(t, tok, 12)

	for _, r := range tok {
		assert.True(t, strings.ContainsRune(tokenAlphabet, r), "unexpected rune %q", r)
	}

	other, err := src.Token(12)
	require.NoError(t, err)
	assert.NotEqual(t, tok, other)

	empty, err := src.Token(0)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
