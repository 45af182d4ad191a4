package hash

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	h, err := HashPassword("password123")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(h, "$2"))
	assert.NotContains(t, h, "password123")

	assert.True(t, CheckPassword(h, "password123"))
	assert.False(t, CheckPassword(h, "password124"))
	assert.False(t, CheckPassword("", "password123"))
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	h1, err := HashPassword("password123")
	require.NoError(t, err)
	h2, err := HashPassword("password123")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}
