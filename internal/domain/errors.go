package domain

import "errors"

// Common validation errors shared by entity constructors.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidEmail is returned when an email address is malformed.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrInvalidRole is returned when a role is not one of the known roles.
	ErrInvalidRole = errors.New("invalid role")

	// ErrEmptyID is returned when an entity ID is missing.
	ErrEmptyID = errors.New("ID cannot be empty")
)
