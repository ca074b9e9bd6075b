package api

import (
	"errors"
	"net/http"

	"github.com/schooldesk/school-api/internal/api/middleware"
	"github.com/schooldesk/school-api/internal/api/shared"
	"github.com/schooldesk/school-api/internal/domain"
	"github.com/schooldesk/school-api/internal/platform/logger"
	"github.com/schooldesk/school-api/internal/service/auth"
	"github.com/schooldesk/school-api/internal/store"
)

// AuthHandler handles registration, login, and profile requests. It is the
// only place passwords are checked; every other route relies on token
// verification alone.
type AuthHandler struct {
	userStore        store.UserStore
	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	userStore store.UserStore,
	jwtService auth.JWTService,
	passwordVerifier auth.PasswordVerifier,
) *AuthHandler {
	return &AuthHandler{
		userStore:        userStore,
		jwtService:       jwtService,
		passwordVerifier: passwordVerifier,
	}
}

// Register handles POST /auth/register. Username and email must both be
// unused; the check runs before the insert, so a concurrent registration
// with the same key can slip through (documented limitation).
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.checkUserUnique(r, req.Email, req.Username); err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	user, err := domain.NewUser(req.Username, req.Email, req.Password, domain.Role(req.Role))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	hashed, err := h.passwordVerifier.Hash(user.Password)
	if err != nil {
		logger.FromContext(r.Context()).Error("failed to hash password", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to create user")
		return
	}
	user.HashedPassword = hashed
	user.Password = ""

	if err := h.userStore.Create(r.Context(), user); err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), user.ID, user.Role)
	if err != nil {
		logger.FromContext(r.Context()).Error("failed to generate token",
			"error", err,
			"user_id", user.ID)
		shared.RespondWithError(w, r, http.StatusInternalServerError,
			"Failed to generate authentication token")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, AuthResponse{
		Message: "User registered successfully",
		Token:   token,
		User:    newUserInfo(user),
	})
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.userStore.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Same response as a bad password; existence of the account
			// is not revealed.
			RespondWithMappedError(w, r, auth.ErrInvalidCredentials)
			return
		}
		RespondWithMappedError(w, r, err)
		return
	}

	if err := h.passwordVerifier.Compare(user.HashedPassword, req.Password); err != nil {
		RespondWithMappedError(w, r, auth.ErrInvalidCredentials)
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), user.ID, user.Role)
	if err != nil {
		logger.FromContext(r.Context()).Error("failed to generate token",
			"error", err,
			"user_id", user.ID)
		shared.RespondWithError(w, r, http.StatusInternalServerError,
			"Failed to generate authentication token")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, AuthResponse{
		Message: "Login successful",
		Token:   token,
		User:    newUserInfo(user),
	})
}

// Profile handles GET /auth/profile for the authenticated user.
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	user, err := h.userStore.GetByID(r.Context(), userID)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	info := newUserInfo(user)
	info.CreatedAt = &user.CreatedAt
	shared.RespondWithJSON(w, r, http.StatusOK, ProfileResponse{User: info})
}

// checkUserUnique runs the registration uniqueness lookups over both the
// email and username namespaces.
func (h *AuthHandler) checkUserUnique(r *http.Request, email, username string) error {
	if _, err := h.userStore.GetByEmail(r.Context(), email); err == nil {
		return store.ErrUserExists
	} else if !errors.Is(err, store.ErrNotFound) {
		return err
	}

	if _, err := h.userStore.GetByUsername(r.Context(), username); err == nil {
		return store.ErrUserExists
	} else if !errors.Is(err, store.ErrNotFound) {
		return err
	}

	return nil
}
