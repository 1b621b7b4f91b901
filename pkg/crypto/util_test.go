package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomBytes(t *testing.T) {
	a, err := RandomBytes(32)
	require.NoError(t, err)
	assert.Len(t, a, 32)

	b, err := RandomBytes(32)
	require.NoError(t, err)
	assert.NotEqual(t, a, b, "two draws should differ")
}

func TestRandomHex(t *testing.T) {
	s, err := RandomHex(32)
	require.NoError(t, err)
	assert.Len(t, s, 64)
	assert.Equal(t, strings.ToLower(s), s, "hex encoding is lowercase")

	other, err := RandomHex(32)
	require.NoError(t, err)
	assert.NotEqual(t, s, other)
}

func TestRandomPassword(t *testing.T) {
	t.Run("length and alphabet", func(t *testing.T) {
		p, err := RandomPassword(25)
		require.NoError(t, err)
		assert.Len(t, p, 25)
		for _, c := range p {
			assert.Contains(t, passwordAlphabet, string(c))
		}
	})

	t.Run("consecutive generations differ", func(t *testing.T) {
		a, err := RandomPassword(25)
		require.NoError(t, err)
		b, err := RandomPassword(25)
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
	})

	t.Run("rejects non-positive length", func(t *testing.T) {
		_, err := RandomPassword(0)
		assert.Error(t, err)
	})
}
