package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/schooldesk/school-api/internal/domain"
	"github.com/schooldesk/school-api/internal/store"
)

// MockCourseStore implements store.CourseStore for testing
type MockCourseStore struct {
	// Function fields for customizable behavior
	CreateFn    func(ctx context.Context, course *domain.Course) error
	GetByIDFn   func(ctx context.Context, id uuid.UUID) (*domain.Course, error)
	GetByCodeFn func(ctx context.Context, code string) (*domain.Course, error)
	GetByIDsFn  func(ctx context.Context, ids []uuid.UUID) ([]domain.Course, error)
	ListFn      func(ctx context.Context) ([]domain.Course, error)
	UpdateFn    func(ctx context.Context, course *domain.Course) error
	DeleteFn    func(ctx context.Context, id uuid.UUID) error

	// Data for default implementation, keyed by id
	Courses     map[uuid.UUID]*domain.Course
	CreateError error
}

// NewMockCourseStore creates a new mock store with initialized defaults
func NewMockCourseStore() *MockCourseStore {
	return &MockCourseStore{
		Courses: make(map[uuid.UUID]*domain.Course),
	}
}

// Create implements the CourseStore interface
func (m *MockCourseStore) Create(ctx context.Context, course *domain.Course) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, course)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	m.Courses[course.ID] = course
	return nil
}

// GetByID implements the CourseStore interface
func (m *MockCourseStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Course, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	course, exists := m.Courses[id]
	if !exists {
		return nil, store.ErrCourseNotFound
	}

	return course, nil
}

// GetByCode implements the CourseStore interface
func (m *MockCourseStore) GetByCode(ctx context.Context, code string) (*domain.Course, error) {
	if m.GetByCodeFn != nil {
		return m.GetByCodeFn(ctx, code)
	}

	for _, course := range m.Courses {
		if course.Code == code {
			return course, nil
		}
	}

	return nil, store.ErrCourseNotFound
}

// GetByIDs implements the CourseStore interface
func (m *MockCourseStore) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Course, error) {
	if m.GetByIDsFn != nil {
		return m.GetByIDsFn(ctx, ids)
	}

	courses := make([]domain.Course, 0, len(ids))
	for _, id := range ids {
		if course, exists := m.Courses[id]; exists {
			courses = append(courses, *course)
		}
	}

	return courses, nil
}

// List implements the CourseStore interface
func (m *MockCourseStore) List(ctx context.Context) ([]domain.Course, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	courses := make([]domain.Course, 0, len(m.Courses))
	for _, course := range m.Courses {
		courses = append(courses, *course)
	}

	return courses, nil
}

// Update implements the CourseStore interface
func (m *MockCourseStore) Update(ctx context.Context, course *domain.Course) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, course)
	}

	if _, exists := m.Courses[course.ID]; !exists {
		return store.ErrCourseNotFound
	}

	m.Courses[course.ID] = course
	return nil
}

// Delete implements the CourseStore interface
func (m *MockCourseStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, exists := m.Courses[id]; !exists {
		return store.ErrCourseNotFound
	}

	delete(m.Courses, id)
	return nil
}
