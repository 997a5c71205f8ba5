package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	InitJWT("test-access-secret", "test-refresh-secret", 15*time.Minute, 168*time.Hour)

	token, err := GenerateAccessToken(42, "doctor")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "doctor", claims.Role)
}

func TestValidateAccessTokenRejectsGarbage(t *testing.T) {
	InitJWT("test-access-secret", "test-refresh-secret", 15*time.Minute, 168*time.Hour)

	_, err := ValidateAccessToken("not-a-token")
	assert.Error(t, err)
}

func TestValidateAccessTokenRejectsWrongSecret(t *testing.T) {
	InitJWT("secret-one", "test-refresh-secret", 15*time.Minute, 168*time.Hour)
	token, err := GenerateAccessToken(1, "admin")
	require.NoError(t, err)

	InitJWT("secret-two", "test-refresh-secret", 15*time.Minute, 168*time.Hour)
	_, err = ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestValidateAccessTokenRejectsExpired(t *testing.T) {
	InitJWT("test-access-secret", "test-refresh-secret", -time.Minute, 168*time.Hour)
	token, err := GenerateAccessToken(7, "nurse")
	require.NoError(t, err)

	_, err = ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestHashRefreshToken(t *testing.T) {
	token, err := GenerateRefreshToken()
	require.NoError(t, err)
	require.NotEmpty(t, token)

	hash := HashRefreshToken(token)
	assert.Len(t, hash, 64)
	assert.Equal(t, hash, HashRefreshToken(token))
	assert.NotEqual(t, hash, HashRefreshToken(token+"x"))
}
