package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("sekret123")
	require.NoError(t, err)
	assert.NotEqual(t, "sekret123", hash)

	assert.True(t, CheckPasswordHash("sekret123", hash))
	assert.False(t, CheckPasswordHash("zlehaslo", hash))
	assert.False(t, CheckPasswordHash("sekret123", ""))
}
