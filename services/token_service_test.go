package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Parallel()

	tokens := NewTokenService("super-secret", 7)
	userID := "64f1a2b3c4d5e6f708192a3b"

	token, err := tokens.Issue(userID)
	require.NoError(t, err)

	got, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestVerifyExpiredToken(t *testing.T) {
	t.Parallel()

	tokens := &TokenService{secret: []byte("super-secret"), ttl: -time.Second}

	token, err := tokens.Issue("64f1a2b3c4d5e6f708192a3b")
	require.NoError(t, err)

	_, err = tokens.Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyWrongSecret(t *testing.T) {
	t.Parallel()

	token, err := NewTokenService("right-secret", 7).Issue("64f1a2b3c4d5e6f708192a3b")
	require.NoError(t, err)

	_, err = NewTokenService("wrong-secret", 7).Verify(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyMalformedToken(t *testing.T) {
	t.Parallel()

	_, err := NewTokenService("secret", 7).Verify("not.a.jwt")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTTLMatchesConfiguredDays(t *testing.T) {
	t.Parallel()

	tokens := NewTokenService("secret", 3)
	assert.Equal(t, 72*time.Hour, tokens.TTL())
}
