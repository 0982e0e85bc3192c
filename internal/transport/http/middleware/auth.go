package middleware

import (
	"context"
	"net/http"

	jwtinfra "github.com/promo-api-nosql/internal/infrastructure/jwt"
)

// TokenHeader is the fixed custom header the identity token travels in.
const TokenHeader = "token"

type contextKey string

const ClaimsKey contextKey = "claims"

// Auth returns middleware that validates the identity token from the
// `token` header and injects its claims into the request context.
func Auth(provider *jwtinfra.Provider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := r.Header.Get(TokenHeader)
			if tokenStr == "" {
				writeJSONError(w, http.StatusUnauthorized, "missing token header")
				return
			}
			claims, err := provider.Verify(tokenStr)
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}
			ctx := context.WithValue(r.Context(), ClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromContext extracts token claims from the request context.
func ClaimsFromContext(ctx context.Context) (*jwtinfra.Claims, bool) {
	c, ok := ctx.Value(ClaimsKey).(*jwtinfra.Claims)
	return c, ok
}
