package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/schooldesk/school-api/internal/domain"
)

// StudentStore defines the interface for student data persistence.
type StudentStore interface {
	// Create saves a new student to the store.
	Create(ctx context.Context, student *domain.Student) error

	// GetByID retrieves a student by their unique ID.
	// Returns ErrStudentNotFound if the student does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Student, error)

	// GetByEmail retrieves a student by their email address.
	// Returns ErrStudentNotFound if the student does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.Student, error)

	// List retrieves all students.
	List(ctx context.Context) ([]domain.Student, error)

	// Update persists the given student state over the stored record,
	// including the course-id set.
	// Returns ErrStudentNotFound if the student does not exist.
	Update(ctx context.Context, student *domain.Student) error

	// Delete removes a student by their ID.
	// Returns ErrStudentNotFound if the student does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
