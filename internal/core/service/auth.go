package service

import (
	"context"
	"crypto/subtle"
	"fmt"

	"github.com/niksmo/warehouse/internal/core/domain"
	"github.com/niksmo/warehouse/internal/core/port"
)

var _ port.Authenticator = (*Auth)(nil)

// AuthCredentials is the single admin credential pair
// sourced from the configuration.
type AuthCredentials struct {
	Username string
	Password string
}

type Auth struct {
	creds  AuthCredentials
	issuer port.TokenIssuer
}

func NewAuth(creds AuthCredentials, issuer port.TokenIssuer) Auth {
	return Auth{creds, issuer}
}

func (s Auth) Authenticate(
	ctx context.Context, username, password string,
) (string, error) {
	const op = "Auth.Authenticate"

	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	if !s.match(username, password) {
		return "", fmt.Errorf("%s: %w", op, domain.ErrInvalidCredentials)
	}

	token, err := s.issuer.Issue(username)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return token, nil
}

func (s Auth) match(username, password string) bool {
	userOK := subtle.ConstantTimeCompare(
		[]byte(username), []byte(s.creds.Username),
	) == 1
	passOK := subtle.ConstantTimeCompare(
		[]byte(password), []byte(s.creds.Password),
	) == 1
	return userOK && passOK
}
