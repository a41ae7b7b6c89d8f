package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/niksmo/warehouse/internal/core/port"
)

var _ port.TokenIssuer = (*JWT)(nil)

var ErrEmptySecret = errors.New("signing secret is empty")

const DefaultTTL = 24 * time.Hour

// JWT issues HS256-signed tokens with sub, iat and exp claims.
type JWT struct {
	secret []byte
	ttl    time.Duration
}

// NewJWT requires a non-empty secret: there is no built-in
// fallback value.
func NewJWT(secret string, ttl time.Duration) (JWT, error) {
	const op = "NewJWT"

	if secret == "" {
		return JWT{}, fmt.Errorf("%s: %w", op, ErrEmptySecret)
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return JWT{[]byte(secret), ttl}, nil
}

func (j JWT) Issue(subject string) (string, error) {
	const op = "JWT.Issue"

	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString(j.secret)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return signed, nil
}
