package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is the single rejection for any token failure. Expired,
// forged, and malformed tokens are deliberately indistinguishable to callers.
var ErrInvalidToken = errors.New("invalid token")

// Identity is the authenticated subject of a request.
type Identity struct {
	UserID string
	Email  string
}

// Claims is the JWT claim set carried by issued tokens.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// TokenManager issues and verifies signed, time-bounded identity tokens.
// It holds only immutable configuration and is safe for concurrent use.
type TokenManager struct {
	secret   []byte
	lifetime time.Duration
}

func NewTokenManager(secret string, lifetime time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), lifetime: lifetime}
}

// Issue creates a signed HS256 token asserting the given user until
// now + lifetime.
func (m *TokenManager) Issue(userID, email string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.lifetime)),
		},
		Email: email,
	})
	return token.SignedString(m.secret)
}

// Verify checks signature and expiry and returns the asserted identity.
// Any failure returns ErrInvalidToken.
func (m *TokenManager) Verify(tokenString string) (*Identity, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return &Identity{UserID: claims.Subject, Email: claims.Email}, nil
}
