package middleware

import (
	"context"
	"net/http"
	"strings"

	"galaxi-backend/auth"
)

// Key type for context
type contextKey string

const IdentityContextKey = contextKey("identity")

// AuthGate verifies bearer tokens against the identity provider and
// attaches the verified identity to the request context. A missing or
// malformed Authorization header is rejected without calling the provider.
func AuthGate(verifier auth.Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Authorization header missing", http.StatusUnauthorized)
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				http.Error(w, "Invalid Authorization header format", http.StatusUnauthorized)
				return
			}

			identity, err := verifier.Verify(r.Context(), parts[1])
			if err != nil {
				http.Error(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), IdentityContextKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFromContext returns the identity attached by AuthGate, if any.
func IdentityFromContext(ctx context.Context) (*auth.Identity, bool) {
	identity, ok := ctx.Value(IdentityContextKey).(*auth.Identity)
	return identity, ok
}
