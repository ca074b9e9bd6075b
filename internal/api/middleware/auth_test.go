package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schooldesk/school-api/internal/api/shared"
	"github.com/schooldesk/school-api/internal/domain"
	"github.com/schooldesk/school-api/internal/mocks"
	"github.com/schooldesk/school-api/internal/service/auth"
)

func TestAuthMiddleware_Authenticate(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	tests := []struct {
		name            string
		authHeader      string
		validateErr     error
		claims          *auth.Claims
		expectedStatus  int
		expectedMessage string
		expectedUserID  uuid.UUID
		expectedRole    domain.Role
	}{
		{
			name:           "valid token",
			authHeader:     "Bearer valid-token",
			validateErr:    nil,
			claims:         &auth.Claims{UserID: userID, Role: domain.RoleAdmin},
			expectedStatus: http.StatusOK,
			expectedUserID: userID,
			expectedRole:   domain.RoleAdmin,
		},
		{
			name:            "missing auth header",
			authHeader:      "",
			validateErr:     nil,
			claims:          nil,
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "No token provided. Please log in.",
		},
		{
			name:            "invalid auth format",
			authHeader:      "InvalidFormat",
			validateErr:     nil,
			claims:          nil,
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "No token provided. Please log in.",
		},
		{
			name:            "wrong scheme",
			authHeader:      "Basic dXNlcjpwYXNz",
			validateErr:     nil,
			claims:          nil,
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "No token provided. Please log in.",
		},
		{
			name:            "expired token",
			authHeader:      "Bearer expired-token",
			validateErr:     auth.ErrExpiredToken,
			claims:          nil,
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "Token expired. Please log in again.",
		},
		{
			name:            "invalid token",
			authHeader:      "Bearer invalid-token",
			validateErr:     auth.ErrInvalidToken,
			claims:          nil,
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "Invalid token. Please log in again.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Create mock JWT service
			jwtService := &mocks.MockJWTService{
				ValidateErr: tt.validateErr,
				Claims:      tt.claims,
			}

			// Create middleware
			middleware := NewAuthMiddleware(jwtService)

			// Create test handler
			var capturedUserID uuid.UUID
			var capturedRole domain.Role
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if id, ok := GetUserID(r); ok {
					capturedUserID = id
				}
				if role, ok := GetUserRole(r); ok {
					capturedRole = role
				}
				w.WriteHeader(http.StatusOK)
			})

			// Create request
			req := httptest.NewRequest("GET", "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Add("Authorization", tt.authHeader)
			}

			recorder := httptest.NewRecorder()

			// Run middleware
			middleware.Authenticate(nextHandler).ServeHTTP(recorder, req)

			assert.Equal(t, tt.expectedStatus, recorder.Code)

			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, tt.expectedUserID, capturedUserID)
				assert.Equal(t, tt.expectedRole, capturedRole)
			} else {
				var body shared.ErrorResponse
				require.NoError(t, json.NewDecoder(recorder.Body).Decode(&body))
				assert.Equal(t, tt.expectedMessage, body.Message)
			}
		})
	}
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	t.Parallel()

	middleware := NewAuthMiddleware(&mocks.MockJWTService{})

	tests := []struct {
		name            string
		contextRole     domain.Role
		allowedRoles    []domain.Role
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:           "admin allowed on admin route",
			contextRole:    domain.RoleAdmin,
			allowedRoles:   []domain.Role{domain.RoleAdmin},
			expectedStatus: http.StatusOK,
		},
		{
			name:            "user forbidden on admin route",
			contextRole:     domain.RoleUser,
			allowedRoles:    []domain.Role{domain.RoleAdmin},
			expectedStatus:  http.StatusForbidden,
			expectedMessage: "You do not have permission to perform this action",
		},
		{
			name:           "user allowed when route permits both roles",
			contextRole:    domain.RoleUser,
			allowedRoles:   []domain.Role{domain.RoleUser, domain.RoleAdmin},
			expectedStatus: http.StatusOK,
		},
		{
			name:            "no identity in context",
			contextRole:     "",
			allowedRoles:    []domain.Role{domain.RoleAdmin},
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "Authentication required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest("DELETE", "/students/some-id", nil)
			if tt.contextRole != "" {
				ctx := context.WithValue(req.Context(), shared.UserIDContextKey, uuid.New())
				ctx = context.WithValue(ctx, shared.UserRoleContextKey, tt.contextRole)
				req = req.WithContext(ctx)
			}

			recorder := httptest.NewRecorder()

			middleware.RequireRole(tt.allowedRoles...)(nextHandler).ServeHTTP(recorder, req)

			assert.Equal(t, tt.expectedStatus, recorder.Code)

			if tt.expectedMessage != "" {
				var body shared.ErrorResponse
				require.NoError(t, json.NewDecoder(recorder.Body).Decode(&body))
				assert.Equal(t, tt.expectedMessage, body.Message)
			}
		})
	}
}

func TestGetUserID(t *testing.T) {
	t.Parallel()

	testUserID := uuid.New()

	t.Run("context with user ID", func(t *testing.T) {
		req, err := http.NewRequest("GET", "/", nil)
		require.NoError(t, err)
		ctx := context.WithValue(req.Context(), shared.UserIDContextKey, testUserID)
		req = req.WithContext(ctx)

		userID, ok := GetUserID(req)

		assert.True(t, ok)
		assert.Equal(t, testUserID, userID)
	})

	t.Run("context without user ID", func(t *testing.T) {
		req, err := http.NewRequest("GET", "/", nil)
		require.NoError(t, err)

		userID, ok := GetUserID(req)

		assert.False(t, ok)
		assert.Equal(t, uuid.Nil, userID)
	})
}
