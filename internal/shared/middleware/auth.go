package middleware

import (
	"context"
	"net/http"
	"strings"

	"solidadmin/internal/shared/auth"
)

type contextKey string

// AdminIDKey is the request-context key holding the authenticated admin's id.
const AdminIDKey contextKey = "adminID"

// AdminRoleKey is the request-context key holding the authenticated admin's role.
const AdminRoleKey contextKey = "adminRole"

// Auth requires a valid admin JWT, taken from the access_token cookie or an
// Authorization: Bearer header. On success the admin id and role are placed
// in the request context.
func Auth(jwt *auth.JWT) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			claims, err := jwt.Validate(token)
			if err != nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), AdminIDKey, claims.AdminID)
			ctx = context.WithValue(ctx, AdminRoleKey, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractToken(r *http.Request) string {
	if cookie, err := r.Cookie("access_token"); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	if header := r.Header.Get("Authorization"); strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

// AdminID returns the authenticated admin id from the request context.
func AdminID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(AdminIDKey).(string)
	return id, ok
}
