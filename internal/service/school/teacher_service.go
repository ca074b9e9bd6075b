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

// TeacherUpdate describes a partial update to a teacher. Nil fields are
// left unchanged.
type TeacherUpdate struct {
	Name  *string
	Email *string
}

// TeacherDetail is a teacher with its course-id set expanded to full
// course records.
type TeacherDetail struct {
	Teacher *domain.Teacher
	Courses []domain.Course
}

// TeacherService manages teachers and their course assignments. The
// enrollment protocol is identical to the student one; teachers and
// students are independent email namespaces.
type TeacherService struct {
	teachers store.TeacherStore
	courses  store.CourseStore
}

// NewTeacherService creates a TeacherService backed by the given stores.
func NewTeacherService(teachers store.TeacherStore, courses store.CourseStore) *TeacherService {
	return &TeacherService{teachers: teachers, courses: courses}
}

// Create adds a new teacher after checking that no teacher carries the
// same email. Returns store.ErrTeacherEmailExists on a collision.
func (s *TeacherService) Create(ctx context.Context, name, email string) (*domain.Teacher, error) {
	if _, err := s.teachers.GetByEmail(ctx, email); err == nil {
		return nil, store.ErrTeacherEmailExists
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("teacher email lookup failed: %w", err)
	}

	teacher, err := domain.NewTeacher(name, email)
	if err != nil {
		return nil, err
	}

	if err := s.teachers.Create(ctx, teacher); err != nil {
		return nil, fmt.Errorf("failed to create teacher: %w", err)
	}

	logger.FromContext(ctx).Info("teacher created", "teacher_id", teacher.ID)
	return teacher, nil
}

// List returns all teachers with their course sets expanded.
func (s *TeacherService) List(ctx context.Context) ([]TeacherDetail, error) {
	teachers, err := s.teachers.List(ctx)
	if err != nil {
		return nil, err
	}

	details := make([]TeacherDetail, 0, len(teachers))
	for i := range teachers {
		detail, err := s.expand(ctx, &teachers[i])
		if err != nil {
			return nil, err
		}
		details = append(details, *detail)
	}
	return details, nil
}

// Get returns the teacher with the given id and their expanded course set,
// or store.ErrTeacherNotFound.
func (s *TeacherService) Get(ctx context.Context, id uuid.UUID) (*TeacherDetail, error) {
	teacher, err := s.teachers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.expand(ctx, teacher)
}

// Update applies a partial update with the same uniqueness-before-existence
// ordering as the student update.
func (s *TeacherService) Update(
	ctx context.Context,
	id uuid.UUID,
	update TeacherUpdate,
) (*TeacherDetail, error) {
	if update.Email != nil {
		existing, err := s.teachers.GetByEmail(ctx, *update.Email)
		switch {
		case err == nil && existing.ID != id:
			return nil, ErrTeacherEmailTaken
		case err != nil && !errors.Is(err, store.ErrNotFound):
			return nil, fmt.Errorf("teacher email lookup failed: %w", err)
		}
	}

	teacher, err := s.teachers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		teacher.Name = *update.Name
	}
	if update.Email != nil {
		teacher.Email = *update.Email
	}
	teacher.UpdatedAt = time.Now().UTC()

	if err := teacher.Validate(); err != nil {
		return nil, err
	}

	if err := s.teachers.Update(ctx, teacher); err != nil {
		return nil, err
	}

	return s.expand(ctx, teacher)
}

// Enroll adds courseID to the teacher's course set; the course must exist
// at assignment time. Duplicate adds are absorbed.
func (s *TeacherService) Enroll(
	ctx context.Context,
	teacherID, courseID uuid.UUID,
) (*TeacherDetail, error) {
	if _, err := s.courses.GetByID(ctx, courseID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrEnrollCourseNotFound
		}
		return nil, err
	}

	teacher, err := s.teachers.GetByID(ctx, teacherID)
	if err != nil {
		return nil, err
	}

	if !teacher.Assigned(courseID) {
		teacher.AddCourse(courseID)
		teacher.UpdatedAt = time.Now().UTC()
		if err := s.teachers.Update(ctx, teacher); err != nil {
			return nil, err
		}

		logger.FromContext(ctx).Info("teacher assigned to course",
			"teacher_id", teacherID,
			"course_id", courseID)
	}

	return s.expand(ctx, teacher)
}

// Unenroll removes courseID from the teacher's course set; absence is not
// an error.
func (s *TeacherService) Unenroll(
	ctx context.Context,
	teacherID, courseID uuid.UUID,
) (*TeacherDetail, error) {
	teacher, err := s.teachers.GetByID(ctx, teacherID)
	if err != nil {
		return nil, err
	}

	if teacher.Assigned(courseID) {
		teacher.RemoveCourse(courseID)
		teacher.UpdatedAt = time.Now().UTC()
		if err := s.teachers.Update(ctx, teacher); err != nil {
			return nil, err
		}

		logger.FromContext(ctx).Info("teacher removed from course",
			"teacher_id", teacherID,
			"course_id", courseID)
	}

	return s.expand(ctx, teacher)
}

// Delete removes the teacher.
func (s *TeacherService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.teachers.Delete(ctx, id); err != nil {
		return err
	}

	logger.FromContext(ctx).Info("teacher deleted", "teacher_id", id)
	return nil
}

func (s *TeacherService) expand(
	ctx context.Context,
	teacher *domain.Teacher,
) (*TeacherDetail, error) {
	courses, err := s.courses.GetByIDs(ctx, teacher.CourseIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to expand course references: %w", err)
	}
	return &TeacherDetail{Teacher: teacher, Courses: courses}, nil
}
