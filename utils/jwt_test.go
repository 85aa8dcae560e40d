package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken(42, "supervisor")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ParseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "supervisor", claims.Role)
}

func TestParseTokenGarbage(t *testing.T) {
	_, err := ParseToken("not-a-token")
	assert.Error(t, err)
}

func TestBlacklistedTokenRejected(t *testing.T) {
	token, err := GenerateToken(7, "manager")
	assert.NoError(t, err)

	_, err = ParseToken(token)
	assert.NoError(t, err)

	BlacklistToken(token)
	_, err = ParseToken(token)
	assert.Error(t, err)
}
