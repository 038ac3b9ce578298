package services

import (
	"context"

	authgen "edgecam/gen/auth"

	"edgecam/internal/auth"
)

// AuthImplementation implements the auth service.
type AuthImplementation struct {
	authenticator *auth.Authenticator
}

// NewAuthService constructs the auth service.
func NewAuthService(authenticator *auth.Authenticator) authgen.Service {
	return &AuthImplementation{authenticator: authenticator}
}

// Login exchanges the shared operator credential for a bearer JWT.
func (a *AuthImplementation) Login(ctx context.Context, p *authgen.LoginPayload) (*authgen.LoginResult, error) {
	token, expiresAt, err := a.authenticator.Authenticate(p.Username, p.Password)
	if err != nil {
		return nil, &authgen.UnauthorizedError{Message: err.Error()}
	}
	return &authgen.LoginResult{Token: token, ExpiresAt: expiresAt}, nil
}
