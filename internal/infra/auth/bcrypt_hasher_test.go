package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher()

	hash, err := hasher.Hash("correct")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	// The encoded form carries the fixed work factor.
	assert.True(t, strings.HasPrefix(hash, "$2a$12$"), "hash should encode cost 12, got %q", hash)

	assert.True(t, hasher.Check("correct", hash))
	assert.False(t, hasher.Check("wrong", hash))
}

func TestBcryptHasher_HashesAreSalted(t *testing.T) {
	hasher := NewBcryptHasher()

	first, err := hasher.Hash("same-password")
	require.NoError(t, err)
	second, err := hasher.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "two hashes of the same password must differ by salt")
	assert.True(t, hasher.Check("same-password", first))
	assert.True(t, hasher.Check("same-password", second))
}

func TestBcryptHasher_MalformedHashIsVerificationFailure(t *testing.T) {
	hasher := NewBcryptHasher()

	assert.False(t, hasher.Check("anything", ""))
	assert.False(t, hasher.Check("anything", "not-a-bcrypt-hash"))
	assert.False(t, hasher.Check("anything", "$2a$12$truncated"))
}
