package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/schooldesk/school-api/internal/domain"
	"github.com/schooldesk/school-api/internal/store"
)

// MockTeacherStore implements store.TeacherStore for testing
type MockTeacherStore struct {
	// Function fields for customizable behavior
	CreateFn     func(ctx context.Context, teacher *domain.Teacher) error
	GetByIDFn    func(ctx context.Context, id uuid.UUID) (*domain.Teacher, error)
	GetByEmailFn func(ctx context.Context, email string) (*domain.Teacher, error)
	ListFn       func(ctx context.Context) ([]domain.Teacher, error)
	UpdateFn     func(ctx context.Context, teacher *domain.Teacher) error
	DeleteFn     func(ctx context.Context, id uuid.UUID) error

	// Data for default implementation, keyed by id
	Teachers    map[uuid.UUID]*domain.Teacher
	CreateError error
	UpdateError error
}

// NewMockTeacherStore creates a new mock store with initialized defaults
func NewMockTeacherStore() *MockTeacherStore {
	return &MockTeacherStore{
		Teachers: make(map[uuid.UUID]*domain.Teacher),
	}
}

// Create implements the TeacherStore interface
func (m *MockTeacherStore) Create(ctx context.Context, teacher *domain.Teacher) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, teacher)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	m.Teachers[teacher.ID] = teacher
	return nil
}

// GetByID implements the TeacherStore interface
func (m *MockTeacherStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Teacher, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	teacher, exists := m.Teachers[id]
	if !exists {
		return nil, store.ErrTeacherNotFound
	}

	return teacher, nil
}

// GetByEmail implements the TeacherStore interface
func (m *MockTeacherStore) GetByEmail(ctx context.Context, email string) (*domain.Teacher, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}

	for _, teacher := range m.Teachers {
		if teacher.Email == email {
			return teacher, nil
		}
	}

	return nil, store.ErrTeacherNotFound
}

// List implements the TeacherStore interface
func (m *MockTeacherStore) List(ctx context.Context) ([]domain.Teacher, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	teachers := make([]domain.Teacher, 0, len(m.Teachers))
	for _, teacher := range m.Teachers {
		teachers = append(teachers, *teacher)
	}

	return teachers, nil
}

// Update implements the TeacherStore interface
func (m *MockTeacherStore) Update(ctx context.Context, teacher *domain.Teacher) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, teacher)
	}

	if m.UpdateError != nil {
		return m.UpdateError
	}

	if _, exists := m.Teachers[teacher.ID]; !exists {
		return store.ErrTeacherNotFound
	}

	m.Teachers[teacher.ID] = teacher
	return nil
}

// Delete implements the TeacherStore interface
func (m *MockTeacherStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, exists := m.Teachers[id]; !exists {
		return store.ErrTeacherNotFound
	}

	delete(m.Teachers, id)
	return nil
}
