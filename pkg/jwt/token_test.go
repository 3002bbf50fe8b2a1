package jwtPkg

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignCarriesClaims(t *testing.T) {
	t.Setenv("JWT_ACCESS_TOKEN_SECRET", "test-secret")

	token, expired, err := Sign(map[string]interface{}{
		"id":    "114093136720708312345",
		"email": "admin@automatrix.dev",
		"name":  "Admin",
	}, time.Hour)
	require.NoError(t, err)
	assert.Greater(t, expired, time.Now().Unix())

	parsed, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "114093136720708312345", claims["id"])
	assert.Equal(t, "admin@automatrix.dev", claims["email"])
	assert.Equal(t, "Admin", claims["name"])
}

func TestSignWithoutSecret(t *testing.T) {
	t.Setenv("JWT_ACCESS_TOKEN_SECRET", "")

	_, _, err := Sign(map[string]interface{}{"id": "1"}, time.Hour)
	assert.Error(t, err)
}
