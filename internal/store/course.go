package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/schooldesk/school-api/internal/domain"
)

// CourseStore defines the interface for course data persistence.
type CourseStore interface {
	// Create saves a new course to the store.
	Create(ctx context.Context, course *domain.Course) error

	// GetByID retrieves a course by its unique ID.
	// Returns ErrCourseNotFound if the course does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Course, error)

	// GetByCode retrieves a course by its unique code.
	// Returns ErrCourseNotFound if no course carries the code.
	GetByCode(ctx context.Context, code string) (*domain.Course, error)

	// GetByIDs retrieves the courses whose ids appear in ids, in no
	// particular order. Ids that do not resolve are silently skipped, so the
	// result may be shorter than the input; callers use this to expand
	// course-id sets that may contain dangling references.
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Course, error)

	// List retrieves all courses.
	List(ctx context.Context) ([]domain.Course, error)

	// Update persists the given course state over the stored record.
	// Returns ErrCourseNotFound if the course does not exist.
	Update(ctx context.Context, course *domain.Course) error

	// Delete removes a course by its ID. Deletion does not touch student or
	// teacher course sets that reference the course.
	// Returns ErrCourseNotFound if the course does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
