// Package middleware provides the session gate and request instrumentation
// for the gateway's protected routes.
package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"insurance-backoffice/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims carries the identity fields inside tokens issued by the auth
// service.
type SessionClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

type contextKey string

const sessionKey contextKey = "session"

// SessionFrom extracts the authenticated identity placed by Auth.
func SessionFrom(ctx context.Context) (model.UserInfo, bool) {
	info, ok := ctx.Value(sessionKey).(model.UserInfo)
	return info, ok
}

// WithSession returns a context carrying the identity; exposed for handler
// tests.
func WithSession(ctx context.Context, info model.UserInfo) context.Context {
	return context.WithValue(ctx, sessionKey, info)
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// Auth validates the Bearer token against the shared signing secret and
// places the session identity into the request context.
func Auth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				unauthorized(w, "missing or invalid Authorization header")
				return
			}
			tokenString := strings.TrimPrefix(header, "Bearer ")

			claims := &SessionClaims{}
			token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				unauthorized(w, "invalid or expired token")
				return
			}

			ctx := WithSession(r.Context(), model.UserInfo{Username: claims.Username, Role: claims.Role})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRoles ensures the authenticated session has one of the allowed roles.
func RequireRoles(allowed ...string) func(http.Handler) http.Handler {
	roleSet := map[string]struct{}{}
	for _, role := range allowed {
		roleSet[role] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			info, ok := SessionFrom(r.Context())
			if !ok {
				unauthorized(w, "missing or invalid Authorization header")
				return
			}
			if _, ok := roleSet[info.Role]; !ok {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "forbidden: insufficient role"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
