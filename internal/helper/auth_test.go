package helper

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	auth := SetupAuth("unit-secret", time.Hour)

	token, err := auth.GenerateToken("user-1", "a@b.com", true)
	require.NoError(t, err)

	claims, err := auth.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "a@b.com", claims.Email)
	assert.True(t, claims.IsAdmin)

	// bearer prefix is accepted too
	claims, err = auth.VerifyToken("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
}

func TestVerifyTokenFailsClosed(t *testing.T) {
	auth := SetupAuth("unit-secret", time.Hour)
	other := SetupAuth("other-secret", time.Hour)

	token, err := other.GenerateToken("user-1", "a@b.com", false)
	require.NoError(t, err)

	_, err = auth.VerifyToken(token)
	assert.Error(t, err)

	_, err = auth.VerifyToken("")
	assert.Error(t, err)

	_, err = auth.VerifyToken("Bearer ")
	assert.Error(t, err)

	_, err = auth.VerifyToken("not-a-jwt")
	assert.Error(t, err)
}

func TestExpiredTokenRejected(t *testing.T) {
	auth := SetupAuth("unit-secret", -time.Minute)

	token, err := auth.GenerateToken("user-1", "a@b.com", false)
	require.NoError(t, err)

	_, err = auth.VerifyToken(token)
	assert.Error(t, err)
}

// Passwords that differ only past byte 72 hash and verify identically:
// truncation is applied on both paths.
func TestBcryptTruncationSymmetry(t *testing.T) {
	auth := SetupAuth("unit-secret", time.Hour)

	base := strings.Repeat("a", 72)
	long := base + "tail-that-bcrypt-never-sees"

	hashed, err := auth.HashPassword(long)
	require.NoError(t, err)

	assert.NoError(t, auth.VerifyPassword(long, hashed))
	assert.NoError(t, auth.VerifyPassword(base+"different-tail", hashed))
	assert.NoError(t, auth.VerifyPassword(base, hashed))

	// differences inside the first 72 bytes still matter
	assert.Error(t, auth.VerifyPassword(strings.Repeat("b", 72), hashed))
}

func TestVerifyPasswordWrong(t *testing.T) {
	auth := SetupAuth("unit-secret", time.Hour)

	hashed, err := auth.HashPassword("correct horse")
	require.NoError(t, err)

	assert.NoError(t, auth.VerifyPassword("correct horse", hashed))
	assert.Error(t, auth.VerifyPassword("battery staple", hashed))
}
