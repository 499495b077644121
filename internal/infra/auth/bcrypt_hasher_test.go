package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher()

	hash, err := hasher.Hash("Password123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "Password123", hash)

	assert.True(t, hasher.Check("Password123", hash))
	assert.False(t, hasher.Check("Password124", hash))
}

func TestBcryptHasher_CheckAgainstGarbageHash(t *testing.T) {
	hasher := NewBcryptHasher()

	assert.False(t, hasher.Check("Password123", "not-a-bcrypt-hash"))
}
