package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcrypt(t *testing.T) {
	b := NewBcrypt(bcrypt.MinCost)

	hash, err := b.Hash("password")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$2a$04$"), "unexpected hash format %q", hash)

	t.Run("matching password", func(t *testing.T) {
		ok, err := b.Verify("password", hash)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("wrong password", func(t *testing.T) {
		ok, err := b.Verify("Password", hash)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("malformed hash", func(t *testing.T) {
		ok, err := b.Verify("password", "not-a-bcrypt-hash")
		assert.Error(t, err)
		assert.False(t, ok)
	})

	t.Run("same password hashes differently", func(t *testing.T) {
		other, err := b.Hash("password")
		require.NoError(t, err)
		assert.NotEqual(t, hash, other)
	})
}

func TestBcrypt_InvalidCostFallsBackToDefault(t *testing.T) {
	hash, err := NewBcrypt(1).Hash("password")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
