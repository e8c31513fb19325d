package http

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/tair/shop-admin/pkg/auth"
	"github.com/tair/shop-admin/pkg/logger"
)

type contextKey string

const (
	UserIDKey   contextKey = "user_id"
	UsernameKey contextKey = "username"
	RoleKey     contextKey = "role"
)

// IdentityMiddleware resolves the caller identity from the gateway's
// X-User-ID / X-Username / X-User-Role headers, falling back to a direct
// Bearer token.
func IdentityMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, username, role, ok := callerIdentity(r)
		if !ok {
			logger.Logger.Warn().Msg("Missing caller identity")
			respondError(w, http.StatusUnauthorized, "Authentication required")
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, userID)
		ctx = context.WithValue(ctx, UsernameKey, username)
		ctx = context.WithValue(ctx, RoleKey, role)

		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// AdminMiddleware checks if the caller has the admin role
func AdminMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return IdentityMiddleware(func(w http.ResponseWriter, r *http.Request) {
		role, ok := r.Context().Value(RoleKey).(string)
		if !ok || role != "admin" {
			logger.Logger.Warn().
				Str("role", role).
				Msg("Admin access denied")
			respondError(w, http.StatusForbidden, "Admin access required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func callerIdentity(r *http.Request) (uint, string, string, bool) {
	if raw := r.Header.Get("X-User-ID"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || id == 0 {
			return 0, "", "", false
		}
		return uint(id), r.Header.Get("X-Username"), r.Header.Get("X-User-Role"), true
	}

	parts := strings.Split(r.Header.Get("Authorization"), " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return 0, "", "", false
	}

	claims, err := auth.ValidateToken(parts[1])
	if err != nil {
		logger.Logger.Warn().Err(err).Msg("Invalid token")
		return 0, "", "", false
	}

	return claims.UserID, claims.Username, claims.Role, true
}

// Helper function for error responses
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, Response{
		Success: false,
		Error:   message,
	})
}
