package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the
	// store. Entity-specific variants below wrap it.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g., a user with the same email).
	ErrDuplicate = errors.New("entity already exists")

	// ErrUnavailable is returned when the storage backend cannot be reached.
	// It fails the current request only; the process keeps serving.
	ErrUnavailable = errors.New("storage unavailable")

	// Entity-specific "not found" errors

	// ErrUserNotFound indicates that the requested user does not exist.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// ErrStudentNotFound indicates that the requested student does not exist.
	ErrStudentNotFound = fmt.Errorf("%w: student", ErrNotFound)

	// ErrTeacherNotFound indicates that the requested teacher does not exist.
	ErrTeacherNotFound = fmt.Errorf("%w: teacher", ErrNotFound)

	// ErrCourseNotFound indicates that the requested course does not exist.
	ErrCourseNotFound = fmt.Errorf("%w: course", ErrNotFound)

	// Entity-specific "duplicate" errors

	// ErrUserExists indicates that a user with the given email or username
	// already exists.
	ErrUserExists = fmt.Errorf("%w: user email or username", ErrDuplicate)

	// ErrStudentEmailExists indicates that a student with the given email
	// already exists.
	ErrStudentEmailExists = fmt.Errorf("%w: student email", ErrDuplicate)

	// ErrTeacherEmailExists indicates that a teacher with the given email
	// already exists.
	ErrTeacherEmailExists = fmt.Errorf("%w: teacher email", ErrDuplicate)

	// ErrCourseCodeExists indicates that a course with the given code
	// already exists.
	ErrCourseCodeExists = fmt.Errorf("%w: course code", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
