package jwthelper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	t.Parallel()

	token, err := GenerateToken("test-signing-key", 42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken("test-signing-key", token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
}

func TestParseToken_WrongKey(t *testing.T) {
	t.Parallel()

	token, err := GenerateToken("test-signing-key", 42)
	require.NoError(t, err)

	_, err = ParseToken("another-key", token)
	assert.Error(t, err)
}

func TestParseToken_Garbage(t *testing.T) {
	t.Parallel()

	_, err := ParseToken("test-signing-key", "not.a.token")
	assert.Error(t, err)
}
