package utils_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vidtube/vidtube_backend/internal/utils"
)

const testSecret = "test-secret-key-that-is-long-enough"

func TestGenerateJWT_RoundTrip(t *testing.T) {
	userID := uuid.NewString()

	token, err := utils.GenerateJWT(userID, testSecret, time.Hour, "vidtube-test")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := utils.ParseAndValidateJWT(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.Subject)
	assert.Equal(t, "vidtube-test", claims.Issuer)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestParseAndValidateJWT_WrongSecret(t *testing.T) {
	token, err := utils.GenerateJWT(uuid.NewString(), testSecret, time.Hour, "vidtube-test")
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(token, "a-different-secret")
	assert.Error(t, err)
}

func TestParseAndValidateJWT_Expired(t *testing.T) {
	token, err := utils.GenerateJWT(uuid.NewString(), testSecret, -time.Minute, "vidtube-test")
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(token, testSecret)
	assert.Error(t, err)
}

func TestParseAndValidateJWT_Garbage(t *testing.T) {
	_, err := utils.ParseAndValidateJWT("not.a.jwt", testSecret)
	assert.Error(t, err)
}

func TestHashRefreshToken_Deterministic(t *testing.T) {
	token := "some-refresh-token"

	first := utils.HashRefreshToken(token)
	second := utils.HashRefreshToken(token)

	assert.Equal(t, first, second)
	assert.Len(t, first, 64) // hex-encoded SHA256
	assert.NotEqual(t, token, first)
}

func TestCompareRefreshTokenHash(t *testing.T) {
	token := "some-refresh-token"
	hash := utils.HashRefreshToken(token)

	assert.True(t, utils.CompareRefreshTokenHash(token, hash))
	assert.False(t, utils.CompareRefreshTokenHash("another-token", hash))
	assert.False(t, utils.CompareRefreshTokenHash(token, "not-a-hash"))
}

func TestCheckPasswordHash(t *testing.T) {
	hash, err := utils.HashPassword("s3cretpass")
	require.NoError(t, err)
	require.NotEqual(t, "s3cretpass", hash)

	assert.True(t, utils.CheckPasswordHash("s3cretpass", hash))
	assert.False(t, utils.CheckPasswordHash("wrongpass", hash))
}

func TestGenerateSecureRandomString(t *testing.T) {
	first, err := utils.GenerateSecureRandomString(32)
	require.NoError(t, err)
	assert.Len(t, first, 64)

	second, err := utils.GenerateSecureRandomString(32)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	_, err = utils.GenerateSecureRandomString(0)
	assert.Error(t, err)
}
