package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expiresIn(d time.Duration) *jwt.NumericDate {
	return jwt.NewNumericDate(time.Now().Add(d))
}

func signToken(t *testing.T, claims jwt.Claims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("backend_secret_the_client_never_sees"))
	require.NoError(t, err)

	return token
}

func TestJWTInspector_Inspect(t *testing.T) {
	inspector := NewJWTInspector()

	token := signToken(t, storefrontClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "u_1", ExpiresAt: expiresIn(time.Hour)},
		Role:             "admin",
	})

	info, err := inspector.Inspect(token)
	require.NoError(t, err)
	assert.Equal(t, "u_1", info.Subject)
	assert.Equal(t, "admin", info.Role)
	require.NotNil(t, info.ExpiresAt)
	assert.False(t, info.Expired(time.Now()))
}

func TestJWTInspector_ExpiredTokenStillDecodes(t *testing.T) {
	token := signToken(t, storefrontClaims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: expiresIn(-time.Minute)},
		UserID:           "665f1c2e",
	})

	info, err := NewJWTInspector().Inspect(token)
	require.NoError(t, err)
	assert.Equal(t, "665f1c2e", info.Subject)
	assert.True(t, info.Expired(time.Now()))
}

func TestJWTInspector_NoExpiry(t *testing.T) {
	token := signToken(t, storefrontClaims{Role: "user"})

	info, err := NewJWTInspector().Inspect(token)
	require.NoError(t, err)
	assert.Nil(t, info.ExpiresAt)
	assert.False(t, info.Expired(time.Now()))
}

func TestJWTInspector_InvalidTokens(t *testing.T) {
	inspector := NewJWTInspector()

	for _, token := range []string{"", "opaque-session-token", "a.b.c"} {
		_, err := inspector.Inspect(token)
		assert.Error(t, err, token)
	}
}
