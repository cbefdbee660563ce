package crypto

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("super-secret")
	require.NoError(t, err)
	require.NotEqual(t, "super-secret", hash)

	require.True(t, VerifyPassword("super-secret", hash))
	require.False(t, VerifyPassword("wrong", hash))
	require.False(t, VerifyPassword("super-secret", "not-a-hash"))
}
