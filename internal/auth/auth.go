// Package auth guards the agent's admin HTTP surface (camera and roster
// services) with a single shared operator credential exchanged for a bearer
// JWT. The deployment model is a LAN-only edge host with one operator, so
// there is no user store: username and password come from the environment,
// and AUTH_ENABLED=false (the default) leaves the surface open for lab use.
package auth

import (
	"errors"
	"os"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAuthDisabled       = errors.New("authentication is disabled")
)

// Authenticator validates the operator credential and issues tokens.
type Authenticator struct {
	enabled      bool
	username     string
	passwordHash []byte
	jwtManager   *JWTManager
}

// NewAuthenticator reads AUTH_ENABLED, AUTH_USERNAME and AUTH_PASSWORD from
// the environment. AUTH_PASSWORD may be either plaintext or an existing
// bcrypt hash.
func NewAuthenticator() *Authenticator {
	enabled := os.Getenv("AUTH_ENABLED") == "true"

	username := os.Getenv("AUTH_USERNAME")
	if username == "" {
		username = "admin"
	}

	password := os.Getenv("AUTH_PASSWORD")
	var passwordHash []byte
	if enabled && password != "" {
		if len(password) == 60 && password[0] == '$' {
			passwordHash = []byte(password)
		} else {
			if hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost); err == nil {
				passwordHash = hash
			}
		}
	}

	return &Authenticator{
		enabled:      enabled,
		username:     username,
		passwordHash: passwordHash,
		jwtManager:   NewJWTManager(),
	}
}

// IsEnabled reports whether authentication is enforced.
func (a *Authenticator) IsEnabled() bool {
	return a.enabled
}

// Authenticate validates the operator credential and returns a signed token
// plus its expiry as unix seconds.
func (a *Authenticator) Authenticate(username, password string) (string, int64, error) {
	if !a.enabled {
		return "", 0, ErrAuthDisabled
	}
	if username != a.username {
		return "", 0, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(a.passwordHash, []byte(password)); err != nil {
		return "", 0, ErrInvalidCredentials
	}

	token, expiresAt, err := a.jwtManager.GenerateToken(username)
	if err != nil {
		return "", 0, err
	}
	return token, expiresAt.Unix(), nil
}

// ValidateToken checks a bearer token and returns its claims.
func (a *Authenticator) ValidateToken(token string) (*Claims, error) {
	return a.jwtManager.ValidateToken(token)
}
