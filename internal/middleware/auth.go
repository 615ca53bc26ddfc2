package middleware

import (
	"context"
	"net/http"
	"os"
	"strings"

	"airease/backend/internal/logging"

	"github.com/golang-jwt/jwt/v5"
)

type authClaimsKey struct{}

// AuthClaims is the subset of the JWT the API cares about.
type AuthClaims struct {
	UserID string
	Email  string
}

func jwtSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev-secret-change-me"
	}
	return []byte(secret)
}

// OptionalAuthMiddleware parses a Bearer token when one is present.
// Requests without a token, or with an invalid one, continue as
// anonymous: they only lose access to the full result list.
func OptionalAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			next.ServeHTTP(w, r)
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return jwtSecret(), nil
		})
		if err != nil || !token.Valid {
			logging.Debug("ignoring invalid bearer token", "error", err)
			next.ServeHTTP(w, r)
			return
		}

		claims := AuthClaims{}
		if mapClaims, ok := token.Claims.(jwt.MapClaims); ok {
			if sub, err := mapClaims.GetSubject(); err == nil {
				claims.UserID = sub
			}
			if email, ok := mapClaims["email"].(string); ok {
				claims.Email = email
			}
		}

		ctx := context.WithValue(r.Context(), authClaimsKey{}, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ClaimsFromContext returns the authenticated claims, if any.
func ClaimsFromContext(ctx context.Context) (AuthClaims, bool) {
	claims, ok := ctx.Value(authClaimsKey{}).(AuthClaims)
	return claims, ok
}

// IsAuthenticated reports whether the request carried a valid token.
func IsAuthenticated(ctx context.Context) bool {
	_, ok := ClaimsFromContext(ctx)
	return ok
}
