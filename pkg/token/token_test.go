package token

import (
	"testing"
	"time"

	"crypto_casino/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")
	user := &model.User{ID: 42, Login: "vasya"}

	tok, err := GenerateAccessToken(user, secret, time.Minute)
	require.NoError(t, err)

	claims, err := VerifyToken(tok, secret)
	require.NoError(t, err)
	assert.Equal(t, "42", claims.ID)
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	tok, err := GenerateAccessToken(&model.User{ID: 1}, []byte("secret-a"), time.Minute)
	require.NoError(t, err)

	_, err = VerifyToken(tok, []byte("secret-b"))
	assert.Error(t, err)
}

func TestVerifyToken_Expired(t *testing.T) {
	secret := []byte("test-secret")
	tok, err := GenerateAccessToken(&model.User{ID: 1}, secret, -time.Minute)
	require.NoError(t, err)

	_, err = VerifyToken(tok, secret)
	assert.Error(t, err)
}

func TestRefreshToken(t *testing.T) {
	tok, err := GenerateRefreshToken()
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	hash := HashRefreshToken(tok)
	assert.NotEqual(t, tok, hash)
	assert.True(t, VerifyRefreshToken(tok, hash))
	assert.False(t, VerifyRefreshToken("forged", hash))

	// Два токена подряд не совпадают
	tok2, err := GenerateRefreshToken()
	require.NoError(t, err)
	assert.NotEqual(t, tok, tok2)
}
