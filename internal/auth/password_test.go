package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/trinesolutions/website-backend/internal/auth"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := auth.HashPassword("s3cret-pass", bcrypt.MinCost)
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.True(t, auth.VerifyPassword(hash, "s3cret-pass"))
	assert.False(t, auth.VerifyPassword(hash, "wrong-pass"))
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	h1, err := auth.HashPassword("same-input", bcrypt.MinCost)
	require.NoError(t, err)
	h2, err := auth.HashPassword("same-input", bcrypt.MinCost)
	require.NoError(t, err)

	// bcrypt embeds a random salt, so two hashes of the same input differ
	// while both still verify.
	assert.NotEqual(t, h1, h2)
	assert.True(t, auth.VerifyPassword(h1, "same-input"))
	assert.True(t, auth.VerifyPassword(h2, "same-input"))
}

func TestVerifyPassword_FailsClosedOnMalformedHash(t *testing.T) {
	assert.False(t, auth.VerifyPassword("", "anything"))
	assert.False(t, auth.VerifyPassword("not-a-bcrypt-hash", "anything"))
	assert.False(t, auth.VerifyPassword("$2a$broken", "anything"))
}
