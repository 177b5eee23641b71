package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("ward-secret-123")
	require.NoError(t, err)
	assert.NotEqual(t, "ward-secret-123", hash)

	assert.True(t, CheckPassword("ward-secret-123", hash))
	assert.False(t, CheckPassword("wrong-password", hash))
}

func TestHashesAreSalted(t *testing.T) {
	h1, err := HashPassword("same-password")
	require.NoError(t, err)
	h2, err := HashPassword("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}
