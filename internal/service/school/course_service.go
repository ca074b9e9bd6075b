package school

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/schooldesk/school-api/internal/domain"
	"github.com/schooldesk/school-api/internal/platform/logger"
	"github.com/schooldesk/school-api/internal/store"
)

// CourseUpdate describes a partial update to a course. Nil fields are left
// unchanged.
type CourseUpdate struct {
	Title   *string
	Code    *string
	Credits *int
}

// CourseService manages the course collection and its code-uniqueness rule.
type CourseService struct {
	courses store.CourseStore
}

// NewCourseService creates a CourseService backed by the given store.
func NewCourseService(courses store.CourseStore) *CourseService {
	return &CourseService{courses: courses}
}

// Create adds a new course after checking that no course carries the same
// code. Returns store.ErrCourseCodeExists on a collision.
func (s *CourseService) Create(
	ctx context.Context,
	title, code string,
	credits int,
) (*domain.Course, error) {
	if _, err := s.courses.GetByCode(ctx, code); err == nil {
		return nil, store.ErrCourseCodeExists
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("course code lookup failed: %w", err)
	}

	course, err := domain.NewCourse(title, code, credits)
	if err != nil {
		return nil, err
	}

	if err := s.courses.Create(ctx, course); err != nil {
		return nil, fmt.Errorf("failed to create course: %w", err)
	}

	logger.FromContext(ctx).Info("course created",
		"course_id", course.ID,
		"code", course.Code)

	return course, nil
}

// List returns all courses.
func (s *CourseService) List(ctx context.Context) ([]domain.Course, error) {
	return s.courses.List(ctx)
}

// Get returns the course with the given id, or store.ErrCourseNotFound.
func (s *CourseService) Get(ctx context.Context, id uuid.UUID) (*domain.Course, error) {
	return s.courses.GetByID(ctx, id)
}

// Update applies a partial update. When the update touches the code, the
// uniqueness lookup runs first, excluding the course's own id; a self-match
// is not a conflict. The uniqueness check deliberately precedes the
// existence check, since it needs no target record.
func (s *CourseService) Update(
	ctx context.Context,
	id uuid.UUID,
	update CourseUpdate,
) (*domain.Course, error) {
	if update.Code != nil {
		existing, err := s.courses.GetByCode(ctx, *update.Code)
		switch {
		case err == nil && existing.ID != id:
			return nil, ErrCourseCodeInUse
		case err != nil && !errors.Is(err, store.ErrNotFound):
			return nil, fmt.Errorf("course code lookup failed: %w", err)
		}
	}

	course, err := s.courses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		course.Title = *update.Title
	}
	if update.Code != nil {
		course.Code = *update.Code
	}
	if update.Credits != nil {
		course.Credits = *update.Credits
	}
	course.UpdatedAt = time.Now().UTC()

	if err := course.Validate(); err != nil {
		return nil, err
	}

	if err := s.courses.Update(ctx, course); err != nil {
		return nil, err
	}

	return course, nil
}

// Delete removes the course. Course-id sets on students and teachers are
// not touched; a dangling id is dropped when the set is next expanded.
func (s *CourseService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.courses.Delete(ctx, id); err != nil {
		return err
	}

	logger.FromContext(ctx).Info("course deleted", "course_id", id)
	return nil
}
