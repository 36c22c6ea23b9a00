package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("Admin123!")
	require.NoError(t, err)
	assert.NotEqual(t, "Admin123!", hash)

	assert.True(t, CheckPassword(hash, "Admin123!"))
	assert.False(t, CheckPassword(hash, "WrongPass1!"))
	assert.False(t, CheckPassword("", "Admin123!"))
}
