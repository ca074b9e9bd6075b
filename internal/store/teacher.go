package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/schooldesk/school-api/internal/domain"
)

// TeacherStore defines the interface for teacher data persistence.
type TeacherStore interface {
	// Create saves a new teacher to the store.
	Create(ctx context.Context, teacher *domain.Teacher) error

	// GetByID retrieves a teacher by their unique ID.
	// Returns ErrTeacherNotFound if the teacher does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Teacher, error)

	// GetByEmail retrieves a teacher by their email address.
	// Returns ErrTeacherNotFound if the teacher does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.Teacher, error)

	// List retrieves all teachers.
	List(ctx context.Context) ([]domain.Teacher, error)

	// Update persists the given teacher state over the stored record,
	// including the course-id set.
	// Returns ErrTeacherNotFound if the teacher does not exist.
	Update(ctx context.Context, teacher *domain.Teacher) error

	// Delete removes a teacher by their ID.
	// Returns ErrTeacherNotFound if the teacher does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
