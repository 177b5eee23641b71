package utils

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	signed, err := GenerateToken(123, "doctor")
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	token, err := ValidateToken(signed)
	require.NoError(t, err)
	assert.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)

	// JWT numbers come back as float64
	assert.Equal(t, float64(123), claims["user_id"])
	assert.Equal(t, "doctor", claims["role"])
	assert.NotNil(t, claims["exp"])
}

func TestTamperedTokenRejected(t *testing.T) {
	signed, err := GenerateToken(123, "nurse")
	require.NoError(t, err)

	tampered := signed[:len(signed)-2] + "xx"
	token, err := ValidateToken(tampered)
	if err == nil {
		assert.False(t, token.Valid)
	} else {
		assert.Error(t, err)
	}
}

func TestGarbageTokenRejected(t *testing.T) {
	_, err := ValidateToken("definitely-not-a-jwt")
	assert.Error(t, err)
}
