package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenInvalid covers malformed, tampered or wrongly-signed tokens.
	ErrTokenInvalid = errors.New("token is invalid")
	// ErrTokenExpired covers correctly-signed tokens past their expiry.
	ErrTokenExpired = errors.New("token is expired")
)

type sessionClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"_id"`
}

// TokenService mints and verifies the signed session tokens carried by the
// userToken cookie.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService builds a service signing with secret; tokens live for
// expiresDays days.
func NewTokenService(secret string, expiresDays int) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		ttl:    time.Duration(expiresDays) * 24 * time.Hour,
	}
}

// TTL is the validity window of freshly issued tokens.
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

// Issue signs a token asserting userID, expiring TTL from now.
func (s *TokenService) Issue(userID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID: userID,
	})
	return token.SignedString(s.secret)
}

// Verify validates signature and expiry and returns the asserted user id.
// Expired-but-genuine tokens return ErrTokenExpired, everything else that
// fails validation returns ErrTokenInvalid.
func (s *TokenService) Verify(tokenString string) (string, error) {
	claims := &sessionClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrTokenInvalid
	}

	if !token.Valid || claims.UserID == "" {
		return "", ErrTokenInvalid
	}

	return claims.UserID, nil
}
