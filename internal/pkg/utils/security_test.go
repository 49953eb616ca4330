package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("Sup3rSecret!")
	require.NoError(t, err)
	assert.NotEqual(t, "Sup3rSecret!", hash)

	assert.True(t, CheckPasswordHash("Sup3rSecret!", hash))
	assert.False(t, CheckPasswordHash("WrongPassword!", hash))
}

func TestSessionJWTRoundTrip(t *testing.T) {
	const secret = "test-secret"

	sessionID := GenerateSessionID()
	token, err := GenerateSessionJWT(sessionID, secret, 1)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsedSessionID, err := ParseJWT(token, secret)
	require.NoError(t, err)
	assert.Equal(t, sessionID, parsedSessionID)
}

func TestParseJWT_WrongSecret(t *testing.T) {
	token, err := GenerateSessionJWT(GenerateSessionID(), "right-secret", 1)
	require.NoError(t, err)

	_, err = ParseJWT(token, "wrong-secret")
	assert.Error(t, err)
}

func TestParseJWT_Garbage(t *testing.T) {
	_, err := ParseJWT("not.a.jwt", "secret")
	assert.Error(t, err)
}
