// Package auth provides the token authority and credential verification
// used by the login and registration paths. Tokens are signed, time-limited
// assertions of identity; request-time checks only ever verify tokens and
// never re-check passwords.
package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/schooldesk/school-api/internal/domain"
)

// JWTService defines operations for issuing and verifying identity tokens.
type JWTService interface {
	// GenerateToken creates a signed token embedding the user's id and role.
	// Returns the token string or an error if signing fails.
	GenerateToken(ctx context.Context, userID uuid.UUID, role domain.Role) (string, error)

	// ValidateToken verifies the provided token string and extracts the
	// claims. Returns ErrExpiredToken when the token is past its expiry and
	// ErrInvalidToken when the signature or payload is bad.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the verified content of an identity token.
type Claims struct {
	// UserID is the unique identifier of the user the token was issued for.
	UserID uuid.UUID `json:"uid,omitempty"`

	// Role is the permission level the token asserts.
	Role domain.Role `json:"role,omitempty"`

	// Standard registered JWT claims
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
