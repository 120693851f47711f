package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("backend-secret"))
	require.NoError(t, err)
	return token
}

func TestTokenExpired(t *testing.T) {
	t.Run("expired jwt", func(t *testing.T) {
		tok := signedToken(t, jwt.MapClaims{"exp": time.Now().Add(-time.Hour).Unix()})
		assert.True(t, TokenExpired(tok))
	})

	t.Run("live jwt", func(t *testing.T) {
		tok := signedToken(t, jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()})
		assert.False(t, TokenExpired(tok))
	})

	t.Run("jwt without exp", func(t *testing.T) {
		tok := signedToken(t, jwt.MapClaims{"sub": "u1"})
		assert.False(t, TokenExpired(tok))
	})

	t.Run("opaque token", func(t *testing.T) {
		assert.False(t, TokenExpired("not-a-jwt"))
	})

	t.Run("empty token", func(t *testing.T) {
		assert.False(t, TokenExpired(""))
	})
}
