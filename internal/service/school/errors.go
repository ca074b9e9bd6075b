package school

import (
	"fmt"

	"github.com/schooldesk/school-api/internal/store"
)

// ErrEnrollCourseNotFound indicates an enrollment named a course that does
// not exist. Distinct from store.ErrCourseNotFound so the API layer can
// report the enrollment context; it still unwraps to store.ErrNotFound.
var ErrEnrollCourseNotFound = fmt.Errorf("cannot enroll: %w", store.ErrCourseNotFound)

// Update-time uniqueness conflicts. Distinct from the create-time variants
// so the API layer can word them differently; each still unwraps to
// store.ErrDuplicate.
var (
	ErrStudentEmailTaken = fmt.Errorf("update: %w", store.ErrStudentEmailExists)
	ErrTeacherEmailTaken = fmt.Errorf("update: %w", store.ErrTeacherEmailExists)
	ErrCourseCodeInUse   = fmt.Errorf("update: %w", store.ErrCourseCodeExists)
)
