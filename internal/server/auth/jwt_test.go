package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wheelmarket/wheelmarket/internal/common"
)

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateToken("seller@example.com", secret, time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	email, err := GetUserEmailFromToken(token, secret)
	require.NoError(t, err)
	assert.Equal(t, "seller@example.com", email)
}

func TestExpiredToken(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateToken("seller@example.com", secret, -time.Minute)
	require.NoError(t, err)

	_, err = GetUserEmailFromToken(token, secret)
	assert.ErrorIs(t, err, common.ErrTokenExpired)
}

func TestWrongSecret(t *testing.T) {
	token, err := GenerateToken("seller@example.com", []byte("one"), time.Minute)
	require.NoError(t, err)

	_, err = GetUserEmailFromToken(token, []byte("another"))
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("seller123")
	require.NoError(t, err)
	assert.NotEqual(t, "seller123", hash)

	assert.True(t, CheckPassword(hash, "seller123"))
	assert.False(t, CheckPassword(hash, "wrong"))
}
