package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	secret := []byte("secret")
	token, err := GenerateJWT(secret, "admin@studio.test", "admin", time.Hour)
	require.NoError(t, err)

	claims, err := ParseJWT(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "admin@studio.test", claims.Subject)
	assert.Equal(t, "admin", claims.Role)

	_, err = ParseJWT([]byte("other"), token)
	assert.True(t, errors.Is(err, jwt.ErrTokenSignatureInvalid))
}

func TestJWTExpired(t *testing.T) {
	secret := []byte("secret")
	token, err := GenerateJWT(secret, "admin@studio.test", "admin", -time.Minute)
	require.NoError(t, err)

	_, err = ParseJWT(secret, token)
	assert.True(t, errors.Is(err, jwt.ErrTokenExpired))
}
