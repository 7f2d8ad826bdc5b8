package credentials

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyRoundTrip(t *testing.T) {
	hash, err := Hash("hunter2x")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	require.True(t, Verify(hash, "hunter2x"))
	require.False(t, Verify(hash, "hunter2y"))
	require.False(t, Verify(hash, ""))
}

func TestHashIsSalted(t *testing.T) {
	first, err := Hash("hunter2x")
	require.NoError(t, err)

	second, err := Hash("hunter2x")
	require.NoError(t, err)

	require.NotEqual(t, first, second)
	require.True(t, Verify(first, "hunter2x"))
	require.True(t, Verify(second, "hunter2x"))
}

func TestVerifyMalformedHash(t *testing.T) {
	require.False(t, Verify("", "hunter2x"))
	require.False(t, Verify("not-a-bcrypt-hash", "hunter2x"))
	require.False(t, Verify("$2a$10$tooshort", "hunter2x"))
}
