package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccessToken(t *testing.T) {
	tok, err := NewAccessToken("secret", "pvr-ops", "THEATRE_OWNER", 7, 30)
	require.NoError(t, err)
	assert.NotEmpty(t, tok.Token)
	assert.WithinDuration(t, time.Now().UTC().Add(30*time.Minute), tok.Exp, 5*time.Second)

	parsed, err := jwt.Parse(tok.Token, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, "pvr-ops", claims["sub"])
	assert.Equal(t, "THEATRE_OWNER", claims["role"])
	assert.Equal(t, float64(7), claims["partner_id"])
}

func TestNewAccessTokenOmitsZeroPartner(t *testing.T) {
	tok, err := NewAccessToken("secret", "root", "ADMIN", 0, 30)
	require.NoError(t, err)

	parsed, err := jwt.Parse(tok.Token, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	require.NoError(t, err)

	claims := parsed.Claims.(jwt.MapClaims)
	_, present := claims["partner_id"]
	assert.False(t, present)
}
