package api

import (
	"bytes"
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
)

func TestRegister(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		payload      map[string]interface{}
		wantStatus   int
		wantToken    bool
		wantRole     domain.Role
		wantErrCount int
	}{
		{
			name: "valid registration defaults to user role",
			payload: map[string]interface{}{
				"username": "alice",
				"email":    "alice@example.com",
				"password": "password123",
			},
			wantStatus: http.StatusCreated,
			wantToken:  true,
			wantRole:   domain.RoleUser,
		},
		{
			name: "explicit admin role",
			payload: map[string]interface{}{
				"username": "admin",
				"email":    "admin@example.com",
				"password": "password123",
				"role":     "admin",
			},
			wantStatus: http.StatusCreated,
			wantToken:  true,
			wantRole:   domain.RoleAdmin,
		},
		{
			name: "invalid email",
			payload: map[string]interface{}{
				"username": "alice",
				"email":    "invalid-email",
				"password": "password123",
			},
			wantStatus:   http.StatusBadRequest,
			wantErrCount: 1,
		},
		{
			name: "unknown role",
			payload: map[string]interface{}{
				"username": "alice",
				"email":    "alice@example.com",
				"password": "password123",
				"role":     "superuser",
			},
			wantStatus:   http.StatusBadRequest,
			wantErrCount: 1,
		},
		{
			name: "all violations reported together",
			payload: map[string]interface{}{
				"username": "ab",
				"email":    "invalid-email",
				"password": "short",
			},
			wantStatus:   http.StatusBadRequest,
			wantErrCount: 3,
		},
		{
			name:         "empty payload",
			payload:      map[string]interface{}{},
			wantStatus:   http.StatusBadRequest,
			wantErrCount: 3,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			userStore := mocks.NewMockUserStore()
			jwtService := &mocks.MockJWTService{Token: "test-token"}
			passwordVerifier := &mocks.MockPasswordVerifier{ShouldSucceed: true}
			handler := NewAuthHandler(userStore, jwtService, passwordVerifier)

			payloadBytes, err := json.Marshal(tt.payload)
			require.NoError(t, err)

			req := httptest.NewRequest("POST", "/auth/register", bytes.NewBuffer(payloadBytes))
			req.Header.Set("Content-Type", "application/json")
			recorder := httptest.NewRecorder()

			handler.Register(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)

			if tt.wantToken {
				var authResp AuthResponse
				require.NoError(t, json.NewDecoder(recorder.Body).Decode(&authResp))
				assert.Equal(t, "User registered successfully", authResp.Message)
				assert.Equal(t, "test-token", authResp.Token)
				assert.NotEqual(t, uuid.Nil, authResp.User.ID)
				assert.Equal(t, tt.wantRole, authResp.User.Role)

				// The stored user carries the hash, never the plaintext
				stored, err := userStore.GetByEmail(context.Background(),
					tt.payload["email"].(string))
				require.NoError(t, err)
				assert.Empty(t, stored.Password)
				assert.NotEmpty(t, stored.HashedPassword)
			}

			if tt.wantErrCount > 0 {
				var body shared.ValidationErrorResponse
				require.NoError(t, json.NewDecoder(recorder.Body).Decode(&body))
				assert.Equal(t, "Validation Error", body.Message)
				assert.Len(t, body.Errors, tt.wantErrCount)
			}
		})
	}
}

func TestRegister_Duplicates(t *testing.T) {
	t.Parallel()

	register := func(t *testing.T, handler *AuthHandler, payload map[string]interface{}) *httptest.ResponseRecorder {
		t.Helper()
		payloadBytes, err := json.Marshal(payload)
		require.NoError(t, err)
		req := httptest.NewRequest("POST", "/auth/register", bytes.NewBuffer(payloadBytes))
		recorder := httptest.NewRecorder()
		handler.Register(recorder, req)
		return recorder
	}

	t.Run("duplicate email", func(t *testing.T) {
		t.Parallel()
		handler := NewAuthHandler(
			mocks.NewMockUserStore(),
			&mocks.MockJWTService{Token: "test-token"},
			&mocks.MockPasswordVerifier{ShouldSucceed: true},
		)

		first := register(t, handler, map[string]interface{}{
			"username": "alice",
			"email":    "alice@example.com",
			"password": "password123",
		})
		require.Equal(t, http.StatusCreated, first.Code)

		second := register(t, handler, map[string]interface{}{
			"username": "alice2",
			"email":    "alice@example.com",
			"password": "password123",
		})
		assert.Equal(t, http.StatusConflict, second.Code)

		var body shared.ErrorResponse
		require.NoError(t, json.NewDecoder(second.Body).Decode(&body))
		assert.Equal(t, "User with this email or username already exists", body.Message)
	})

	t.Run("duplicate username", func(t *testing.T) {
		t.Parallel()
		handler := NewAuthHandler(
			mocks.NewMockUserStore(),
			&mocks.MockJWTService{Token: "test-token"},
			&mocks.MockPasswordVerifier{ShouldSucceed: true},
		)

		first := register(t, handler, map[string]interface{}{
			"username": "alice",
			"email":    "alice@example.com",
			"password": "password123",
		})
		require.Equal(t, http.StatusCreated, first.Code)

		second := register(t, handler, map[string]interface{}{
			"username": "alice",
			"email":    "other@example.com",
			"password": "password123",
		})
		assert.Equal(t, http.StatusConflict, second.Code)
	})
}

func TestLogin(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	seedUser := func() *mocks.MockUserStore {
		userStore := mocks.NewMockUserStore()
		userStore.Users["alice@example.com"] = &domain.User{
			ID:             userID,
			Username:       "alice",
			Email:          "alice@example.com",
			HashedPassword: "hashed:password123",
			Role:           domain.RoleUser,
		}
		return userStore
	}

	tests := []struct {
		name             string
		payload          map[string]interface{}
		passwordVerifier *mocks.MockPasswordVerifier
		wantStatus       int
		wantMessage      string
	}{
		{
			name: "valid credentials",
			payload: map[string]interface{}{
				"email":    "alice@example.com",
				"password": "password123",
			},
			passwordVerifier: &mocks.MockPasswordVerifier{ShouldSucceed: true},
			wantStatus:       http.StatusOK,
		},
		{
			name: "wrong password",
			payload: map[string]interface{}{
				"email":    "alice@example.com",
				"password": "wrong-password",
			},
			passwordVerifier: &mocks.MockPasswordVerifier{ShouldSucceed: false},
			wantStatus:       http.StatusUnauthorized,
			wantMessage:      "Invalid email or password",
		},
		{
			name: "unknown email gets the same message",
			payload: map[string]interface{}{
				"email":    "nobody@example.com",
				"password": "password123",
			},
			passwordVerifier: &mocks.MockPasswordVerifier{ShouldSucceed: true},
			wantStatus:       http.StatusUnauthorized,
			wantMessage:      "Invalid email or password",
		},
		{
			name: "missing password",
			payload: map[string]interface{}{
				"email": "alice@example.com",
			},
			passwordVerifier: &mocks.MockPasswordVerifier{ShouldSucceed: true},
			wantStatus:       http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			handler := NewAuthHandler(
				seedUser(),
				&mocks.MockJWTService{Token: "test-token"},
				tt.passwordVerifier,
			)

			payloadBytes, err := json.Marshal(tt.payload)
			require.NoError(t, err)

			req := httptest.NewRequest("POST", "/auth/login", bytes.NewBuffer(payloadBytes))
			recorder := httptest.NewRecorder()

			handler.Login(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)

			if tt.wantStatus == http.StatusOK {
				var authResp AuthResponse
				require.NoError(t, json.NewDecoder(recorder.Body).Decode(&authResp))
				assert.Equal(t, "Login successful", authResp.Message)
				assert.Equal(t, "test-token", authResp.Token)
				assert.Equal(t, userID, authResp.User.ID)
			}

			if tt.wantMessage != "" {
				var body shared.ErrorResponse
				require.NoError(t, json.NewDecoder(recorder.Body).Decode(&body))
				assert.Equal(t, tt.wantMessage, body.Message)
			}
		})
	}
}

func TestProfile(t *testing.T) {
	t.Parallel()

	userStore := mocks.NewMockUserStore()
	user := &domain.User{
		ID:             uuid.New(),
		Username:       "alice",
		Email:          "alice@example.com",
		HashedPassword: "hashed:password123",
		Role:           domain.RoleAdmin,
	}
	userStore.Users[user.Email] = user

	handler := NewAuthHandler(userStore, &mocks.MockJWTService{}, &mocks.MockPasswordVerifier{})

	t.Run("returns the authenticated user", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest("GET", "/auth/profile", nil)
		ctx := context.WithValue(req.Context(), shared.UserIDContextKey, user.ID)
		req = req.WithContext(ctx)
		recorder := httptest.NewRecorder()

		handler.Profile(recorder, req)

		require.Equal(t, http.StatusOK, recorder.Code)
		var resp ProfileResponse
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
		assert.Equal(t, user.ID, resp.User.ID)
		assert.Equal(t, "alice", resp.User.Username)
		assert.Equal(t, domain.RoleAdmin, resp.User.Role)
	})

	t.Run("no identity in context", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest("GET", "/auth/profile", nil)
		recorder := httptest.NewRecorder()

		handler.Profile(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("unknown user id", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest("GET", "/auth/profile", nil)
		ctx := context.WithValue(req.Context(), shared.UserIDContextKey, uuid.New())
		req = req.WithContext(ctx)
		recorder := httptest.NewRecorder()

		handler.Profile(recorder, req)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}
