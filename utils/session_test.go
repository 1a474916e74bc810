package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	token, err := GenerateSessionToken("anna", false)
	require.NoError(t, err)

	login, gosc, err := ParseSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, "anna", login)
	assert.False(t, gosc)
}

func TestSessionTokenGuestFlag(t *testing.T) {
	token, err := GenerateSessionToken("Gość", true)
	require.NoError(t, err)

	login, gosc, err := ParseSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, "Gość", login)
	assert.True(t, gosc)
}

func TestParseSessionTokenInvalid(t *testing.T) {
	_, _, err := ParseSessionToken("nie-token")
	assert.Error(t, err)

	token, err := GenerateSessionToken("anna", false)
	require.NoError(t, err)
	_, _, err = ParseSessionToken(token + "x")
	assert.Error(t, err)
}
