package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	jwtinfra "github.com/notification-types-api/internal/infrastructure/jwt"
	"github.com/notification-types-api/internal/metrics"
)

type contextKey string

const ClaimsKey contextKey = "claims"

// publicPrefixes are the path prefixes exempt from authentication: the
// health check, the API documentation and the machine-readable schema.
var publicPrefixes = []string{"/health", "/docs", "/openapi.json"}

// User-facing authentication failure messages. These are a stable API
// contract; clients match on them.
const (
	msgAuthRequired = "Authentication required. Please log in."
	msgExpired      = "Session expired. Please log in again."
	msgInvalid      = "Invalid authentication token."
	msgAuthFailed   = "Authentication failed. Please log in."
)

// Auth returns middleware that validates the Bearer JWT on every request
// outside the public allow-list and injects the claims into the request
// context. Failure reasons are logged and counted; the token itself never
// is.
func Auth(provider *jwtinfra.Provider, m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				slog.Info("missing or malformed authorization header", "path", r.URL.Path)
				m.IncAuthFailure("missing_credentials")
				writeJSONError(w, http.StatusUnauthorized, msgAuthRequired)
				return
			}

			claims, err := provider.Verify(strings.TrimPrefix(authHeader, "Bearer "))
			if err != nil {
				reason, msg := classify(err)
				slog.Info("authentication rejected", "reason", reason, "path", r.URL.Path)
				m.IncAuthFailure(reason)
				writeJSONError(w, http.StatusUnauthorized, msg)
				return
			}

			ctx := context.WithValue(r.Context(), ClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func classify(err error) (reason, msg string) {
	switch {
	case errors.Is(err, jwtinfra.ErrExpired):
		return "expired", msgExpired
	case errors.Is(err, jwtinfra.ErrInvalid):
		return "invalid", msgInvalid
	default:
		return "verification_failed", msgAuthFailed
	}
}

func isPublicPath(path string) bool {
	for _, prefix := range publicPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// ClaimsFromContext extracts JWT claims from the request context. Handlers
// mounted outside the Auth middleware must treat ok == false as an
// unauthorized request.
func ClaimsFromContext(ctx context.Context) (*jwtinfra.Claims, bool) {
	c, ok := ctx.Value(ClaimsKey).(*jwtinfra.Claims)
	return c, ok
}
