// internal/handlers/middleware/auth.go
package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/adesina-labs/pharmhub-be/internal/core/domain"
	"github.com/adesina-labs/pharmhub-be/internal/pkg/logger"
)

type authContextKey string

const (
	// ContextKeyRole holds the authenticated user's role
	ContextKeyRole authContextKey = "auth_role"
	// ContextKeyEmail holds the authenticated user's email
	ContextKeyEmail authContextKey = "auth_email"
)

// Authenticate validates the Bearer token and enriches the request context
// with the caller's identity. Requests without a valid token get 401.
func Authenticate(secret []byte, slogger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				unauthorized(w, "Missing bearer token")
				return
			}
			tokenStr := strings.TrimPrefix(auth, "Bearer ")

			claims := jwt.MapClaims{}
			token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
				}
				return secret, nil
			})
			if err != nil || !token.Valid {
				slogger.DebugContext(r.Context(), "token rejected",
					slog.String("error", fmt.Sprintf("%v", err)))
				unauthorized(w, "Invalid or expired token")
				return
			}

			roleStr, _ := claims["role"].(string)
			role, err := domain.ParseRole(roleStr)
			if err != nil {
				unauthorized(w, "Invalid or expired token")
				return
			}

			ctx := r.Context()
			ctx = context.WithValue(ctx, ContextKeyRole, role)
			if email, ok := claims["email"].(string); ok {
				ctx = context.WithValue(ctx, ContextKeyEmail, email)
			}
			if sub, ok := claims["sub"].(string); ok {
				ctx = context.WithValue(ctx, logger.ContextKeyUserID, sub)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireCapability rejects requests whose role lacks the capability.
// It must run after Authenticate.
func RequireCapability(cap domain.Capability) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := RoleFromContext(r.Context())
			if !ok {
				unauthorized(w, "Missing bearer token")
				return
			}
			if !role.Can(cap) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				w.Write([]byte(`{"error":"Insufficient permissions"}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RoleFromContext returns the authenticated role, if any.
func RoleFromContext(ctx context.Context) (domain.Role, bool) {
	role, ok := ctx.Value(ContextKeyRole).(domain.Role)
	return role, ok
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"error":"` + message + `"}`))
}
