package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// ErrInvalidToken is returned when a token fails signature verification, has
// expired, or does not carry a user id claim.
var ErrInvalidToken = errors.New("invalid token")

// Claims are the JWT claims carried by a bearer token. The user id claim is
// named "id" on the wire.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"id"`
}

// Tokens signs and verifies bearer tokens. Tokens carry an expiry claim:
// unbounded-lifetime tokens are a liability, so the lifetime is explicit and
// configurable instead.
type Tokens struct {
	secret   []byte
	lifetime time.Duration
}

func NewTokens(secret []byte, lifetime time.Duration) *Tokens {
	return &Tokens{secret: secret, lifetime: lifetime}
}

// Issue produces an HS256-signed token embedding userID.
func (t *Tokens) Issue(userID string) (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.lifetime)),
		},
		UserID: userID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks the signature and expiry of tokenString and returns the
// embedded user id. Any failure, including a payload without an id claim,
// yields ErrInvalidToken.
func (t *Tokens) Verify(tokenString string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(tok *jwt.Token) (interface{}, error) {
			if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", tok.Header["alg"])
			}
			return t.secret, nil
		},
	)
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	if claims.UserID == "" {
		return "", ErrInvalidToken
	}
	return claims.UserID, nil
}
