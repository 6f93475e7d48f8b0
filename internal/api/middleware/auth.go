package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/oldthorntonians/matchday/internal/api/apierr"
	"github.com/oldthorntonians/matchday/internal/model"
	"github.com/oldthorntonians/matchday/internal/services/auth"
)

type contextKey string

const claimsContextKey contextKey = "claims"

// Auth creates authentication middleware that verifies the bearer token and
// puts the resolved claims in the request context
func Auth(authService *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				apierr.WriteError(w, apierr.NewUnauthorizedError())
				return
			}

			claims, err := authService.ValidateToken(token)
			if err != nil {
				apierr.WriteError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), claimsContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractToken extracts the bearer token from the request. The legacy
// x-auth-token header is accepted alongside the Authorization header.
func extractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	return r.Header.Get("x-auth-token")
}

// GetClaims returns the verified token claims from the request context
func GetClaims(ctx context.Context) *auth.Claims {
	claims, _ := ctx.Value(claimsContextKey).(*auth.Claims)
	return claims
}

// MustGetUserID returns the authenticated user id or panics
func MustGetUserID(ctx context.Context) model.UserID {
	claims := GetClaims(ctx)
	if claims == nil {
		panic("no claims in context - auth middleware not applied?")
	}
	return claims.UserID
}
