// Package middleware holds the HTTP middleware shared by the goa-mounted
// admin services.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"edgecam/internal/auth"
)

// ContextKey scopes this package's context values.
type ContextKey string

// UserContextKey carries the validated operator claims.
const UserContextKey ContextKey = "user"

// AuthMiddleware enforces a Bearer JWT on the wrapped handler. When the
// authenticator is disabled the middleware passes everything through, so a
// lab deployment needs no token plumbing.
func AuthMiddleware(authenticator *auth.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !authenticator.IsEnabled() {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, `{"error": "missing authorization header"}`, http.StatusUnauthorized)
				return
			}
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				http.Error(w, `{"error": "invalid authorization header format"}`, http.StatusUnauthorized)
				return
			}

			claims, err := authenticator.ValidateToken(parts[1])
			if err != nil {
				if err == auth.ErrExpiredToken {
					http.Error(w, `{"error": "token has expired"}`, http.StatusUnauthorized)
				} else {
					http.Error(w, `{"error": "invalid token"}`, http.StatusUnauthorized)
				}
				return
			}

			ctx := context.WithValue(r.Context(), UserContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OperatorFromContext returns the claims AuthMiddleware stored, or nil when
// the request was not authenticated (auth disabled).
func OperatorFromContext(ctx context.Context) *auth.Claims {
	claims, ok := ctx.Value(UserContextKey).(*auth.Claims)
	if !ok {
		return nil
	}
	return claims
}
