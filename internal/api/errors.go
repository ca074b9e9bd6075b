package api

import (
	"errors"
	"net/http"

	"github.com/schooldesk/school-api/internal/api/shared"
	"github.com/schooldesk/school-api/internal/platform/logger"
	"github.com/schooldesk/school-api/internal/service/auth"
	"github.com/schooldesk/school-api/internal/service/school"
	"github.com/schooldesk/school-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes. The
// mapping is the single error boundary of the API: domain and service code
// returns sentinel errors and never touches status codes itself.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrInvalidCredentials):
		return http.StatusUnauthorized

	// Not found errors
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	// Storage unreachable: fails this request only
	case errors.Is(err, store.ErrUnavailable):
		return http.StatusServiceUnavailable

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-facing message for the
// error. Internal detail never reaches clients.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		return "Invalid email or password"

	case errors.Is(err, auth.ErrExpiredToken):
		return "Token expired. Please log in again."

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrMissingToken):
		return "Invalid token. Please log in again."

	// The enrollment variant must be checked before the generic course
	// lookup failure; both unwrap to store.ErrCourseNotFound.
	case errors.Is(err, school.ErrEnrollCourseNotFound):
		return "Cannot enroll: Course not found"

	case errors.Is(err, store.ErrStudentNotFound):
		return "Student not found"

	case errors.Is(err, store.ErrTeacherNotFound):
		return "Teacher not found"

	case errors.Is(err, store.ErrCourseNotFound):
		return "Course not found"

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrUserExists):
		return "User with this email or username already exists"

	// Update-time conflicts wrap the create-time sentinels, so they must be
	// checked first.
	case errors.Is(err, school.ErrStudentEmailTaken):
		return "Email is already taken by another student"

	case errors.Is(err, school.ErrTeacherEmailTaken):
		return "Email is already taken by another teacher"

	case errors.Is(err, school.ErrCourseCodeInUse):
		return "Course code is already in use"

	case errors.Is(err, store.ErrStudentEmailExists):
		return "Student with this email already exists"

	case errors.Is(err, store.ErrTeacherEmailExists):
		return "Teacher with this email already exists"

	case errors.Is(err, store.ErrCourseCodeExists):
		return "Course with this code already exists"

	case errors.Is(err, store.ErrUnavailable):
		return "Service Unavailable: Database Connection Failed"

	default:
		return "An unexpected error occurred"
	}
}

// RespondWithMappedError converts an error to its response via the
// boundary mapping and writes it. Unexpected errors are logged with detail
// before the sanitized message goes out.
func RespondWithMappedError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)
	if status >= http.StatusInternalServerError {
		logger.FromContext(r.Context()).Error("request failed",
			"error", err,
			"path", r.URL.Path,
			"method", r.Method)
	}
	shared.RespondWithError(w, r, status, GetSafeErrorMessage(err))
}
