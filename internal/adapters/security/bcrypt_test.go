package security_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acardosi/stockroom-be/internal/adapters/security"
)

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	hasher := security.NewBcryptHasher(4)

	hash, err := hasher.Hash("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, hasher.Verify("correct horse battery staple", hash))
	assert.False(t, hasher.Verify("wrong password", hash))
	assert.False(t, hasher.Verify("correct horse battery staple", "not-a-bcrypt-hash"))
}

func TestBcryptHasher_InvalidCostFallsBack(t *testing.T) {
	hasher := security.NewBcryptHasher(99)

	hash, err := hasher.Hash("pw")
	require.NoError(t, err)
	assert.True(t, hasher.Verify("pw", hash))
}
