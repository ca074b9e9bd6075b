// Package middleware implements the request access gate: authentication
// resolves a Bearer token to an identity, authorization checks that
// identity's role against the roles a route permits. Each request is
// evaluated independently and statelessly.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/schooldesk/school-api/internal/api/shared"
	"github.com/schooldesk/school-api/internal/domain"
	"github.com/schooldesk/school-api/internal/platform/logger"
	"github.com/schooldesk/school-api/internal/service/auth"
)

// AuthMiddleware provides JWT authentication and role authorization for
// routes.
type AuthMiddleware struct {
	jwtService auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

// Authenticate validates the Bearer token from the Authorization header and
// attaches the caller's id and role to the request context. Token
// verification is the only credential check performed per request;
// passwords are never re-checked here.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "No token provided. Please log in.")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "No token provided. Please log in.")
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), parts[1])
		if err != nil {
			switch err {
			case auth.ErrExpiredToken:
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Token expired. Please log in again.")
			default:
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token. Please log in again.")
			}
			return
		}

		ctx := context.WithValue(r.Context(), shared.UserIDContextKey, claims.UserID)
		ctx = context.WithValue(ctx, shared.UserRoleContextKey, claims.Role)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole restricts a route to the given roles. It must run after
// Authenticate: a request with no identity in context is rejected as
// unauthenticated, a role outside the allowed set as forbidden. The check
// is a pure predicate with no side effects.
func (m *AuthMiddleware) RequireRole(roles ...domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := GetUserRole(r)
			if !ok {
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
				return
			}

			for _, allowed := range roles {
				if role == allowed {
					next.ServeHTTP(w, r)
					return
				}
			}

			logger.FromContext(r.Context()).Debug("role not permitted",
				"role", role,
				"path", r.URL.Path)
			shared.RespondWithError(w, r, http.StatusForbidden,
				"You do not have permission to perform this action")
		})
	}
}

// GetUserID extracts the authenticated user's ID from the request context.
// Returns the ID and a boolean indicating if it was found.
func GetUserID(r *http.Request) (uuid.UUID, bool) {
	userID, ok := r.Context().Value(shared.UserIDContextKey).(uuid.UUID)
	return userID, ok
}

// GetUserRole extracts the authenticated user's role from the request
// context. Returns the role and a boolean indicating if it was found.
func GetUserRole(r *http.Request) (domain.Role, bool) {
	role, ok := r.Context().Value(shared.UserRoleContextKey).(domain.Role)
	return role, ok
}
